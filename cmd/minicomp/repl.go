package main

import (
	"bytes"
	"errors"
	"fmt"
	goio "io"
	"os"
	"path/filepath"
	"strings"

	"github.com/k0kubun/pp/v3"
	"github.com/peterh/liner"
	"github.com/spf13/cobra"

	"github.com/ezrec/minicomp/asm"
	"github.com/ezrec/minicomp/emulator"
	"github.com/ezrec/minicomp/style"
)

const (
	replPrompt  = "minicomp> "
	historyFile = ".minicomp_history"
)

const replHelp = `Enter source lines to assemble them, one at a time.
  :labels   show the label table
  :format   show the session source in the configured style
  :list     show the image, by source line
  :run      run the session program, printers to stdout
  :reset    forget every line
  :quit     leave
`

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Assemble interactively",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		ses := &session{Style: loadStyle(), Out: os.Stdout}

		home, _ := os.UserHomeDir()
		histPath := filepath.Join(home, historyFile)

		ln := liner.NewLiner()
		defer ln.Close()
		ln.SetCtrlCAborts(true)

		if inf, err := os.Open(histPath); err == nil {
			_, _ = ln.ReadHistory(inf)
			_ = inf.Close()
		}

		fmt.Print(replHelp)
		for {
			line, err := ln.Prompt(replPrompt)
			if err != nil {
				fmt.Println()
				break
			}
			if strings.TrimSpace(line) != "" {
				ln.AppendHistory(line)
			}
			if ses.Enter(line) {
				break
			}
		}

		if ouf, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(ouf)
			_ = ouf.Close()
		}
	},
}

func init() {
	rootCmd.AddCommand(replCmd)
}

// session is the state of an interactive assembly session.
type session struct {
	Style  style.Style
	Out    goio.Writer
	source []string
	prog   *asm.Program
}

// assemble reassembles the whole session source.
func (ses *session) assemble() {
	assembler := &asm.Assembler{Verbose: verbose}
	ses.prog, _ = assembler.Assemble(strings.NewReader(strings.Join(ses.source, "\n")))
}

// Enter handles one line of input, returning true when the session is over.
func (ses *session) Enter(line string) (quit bool) {
	if strings.HasPrefix(strings.TrimSpace(line), ":") {
		return ses.command(line)
	}

	lineno := len(ses.source) + 1
	_, err := asm.ParseLine(line, lineno)
	if err != nil {
		fmt.Fprintln(ses.Out, err)
		return
	}

	ses.source = append(ses.source, line)
	ses.assemble()

	for _, op := range ses.prog.Opcodes {
		if op.Line.LineNo == lineno && len(op.Bytes) != 0 {
			fmt.Fprintf(ses.Out, "%02x: % x\n", op.Offset, op.Bytes)
		}
	}

	// Earlier lines may still be waiting on a label; only report this one.
	for _, diag := range ses.prog.Errors {
		var line_err *asm.ErrLine
		if errors.As(diag, &line_err) && line_err.LineNo == lineno {
			fmt.Fprintln(ses.Out, diag)
		}
	}

	return
}

func (ses *session) command(line string) (quit bool) {
	fields := strings.Fields(line)

	switch strings.ToLower(fields[0]) {
	case ":quit", ":exit":
		quit = true
	case ":help":
		fmt.Fprint(ses.Out, replHelp)
	case ":reset":
		ses.source = nil
		ses.prog = nil
		fmt.Fprintln(ses.Out, "session reset.")
	case ":labels":
		if ses.prog != nil {
			pp.Fprintln(ses.Out, ses.prog.Labels)
		}
	case ":format":
		if ses.prog != nil {
			fmt.Fprintln(ses.Out, ses.prog.Format(ses.Style))
		}
	case ":list":
		if ses.prog == nil {
			break
		}
		for _, op := range ses.prog.Opcodes {
			if len(op.Bytes) == 0 {
				continue
			}
			fmt.Fprintf(ses.Out, "%02x: %-12s %s\n", op.Offset, fmt.Sprintf("% x", op.Bytes), op.Line.Render(ses.Style))
		}
	case ":run":
		ses.run()
	default:
		fmt.Fprintf(ses.Out, "unknown command %v, try :help\n", fields[0])
	}

	return
}

// run executes the session program, with no keyboard input.
func (ses *session) run() {
	if ses.prog == nil || ses.prog.Image == nil {
		if ses.prog != nil {
			fmt.Fprintln(ses.Out, ses.prog.Err())
		}
		return
	}

	emu := emulator.NewEmulator()
	emu.Verbose = verbose
	emu.MaxTicks = replMaxTicks
	emu.SetInput(&bytes.Buffer{})
	emu.SetOutput(ses.Out)

	err := emu.Load(ses.prog)
	if err == nil {
		err = emu.Run()
	}
	fmt.Fprintln(ses.Out)
	if err != nil {
		fmt.Fprintln(ses.Out, err)
	}
}

// replMaxTicks bounds `:run`, so a program that never terminates returns
// to the prompt.
const replMaxTicks = 1_000_000
