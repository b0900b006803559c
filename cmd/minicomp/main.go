// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Command minicomp assembles, formats and runs programs for the minicomp
// 8-bit CPU.
package main

import (
	"fmt"
	goio "io"
	"log"
	"os"

	"github.com/k0kubun/pp/v3"
	"github.com/spf13/cobra"

	"github.com/ezrec/minicomp/asm"
	"github.com/ezrec/minicomp/style"
)

var (
	configPath string
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "minicomp",
	Short: "Assembler, formatter and emulator for the minicomp CPU",
	Long: `Minicomp processes source for the minicomp 8-bit CPU.

Source may be written in the C-like dialect ("ra = 5", "rc &= rb") or the
assembly dialect ("data ra 5", "and rb rc"), freely mixed. The formatter
rewrites a file into a single dialect, chosen by the style configuration
file (see --config).
`,
	SilenceUsage: true,
}

func init() {
	log.SetFlags(0)

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&configPath, "config", "c", style.DefaultPath, "style configuration file, JSON or .star")
	flags.BoolVarP(&verbose, "verbose", "v", false, "verbose mode")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadStyle loads the configured style, or the default style when the
// configuration file does not exist.
func loadStyle() style.Style {
	st, err := style.LoadOrDefault(configPath)
	if err != nil {
		log.Fatalf("%v", err)
	}

	if verbose {
		pp.Fprintln(os.Stderr, st)
	}

	return st
}

// assembleFile assembles the file at path. Every diagnostic is printed,
// and the process exits, on failure.
func assembleFile(path string) (prog *asm.Program) {
	inf, err := os.Open(path)
	if err != nil {
		log.Fatalf("%v: %v", path, err)
	}
	defer inf.Close()

	prog, err = assembleSource(inf)
	checkProgram(path, prog, err)

	return
}

// assembleSource runs both assembler passes over input.
func assembleSource(input goio.Reader) (prog *asm.Program, err error) {
	assembler := &asm.Assembler{Verbose: verbose}
	prog, err = assembler.Assemble(input)
	return
}

// checkProgram exits after printing every diagnostic of prog, if it has any.
func checkProgram(path string, prog *asm.Program, err error) {
	if prog == nil {
		log.Fatalf("%v: %v", path, err)
	}

	if len(prog.Errors) != 0 {
		for _, diag := range prog.Errors {
			fmt.Fprintf(os.Stderr, "%v: %v\n", path, diag)
		}
		os.Exit(1)
	}

	if verbose {
		pp.Fprintf(os.Stderr, "labels: %v\n", prog.Labels)
		for _, pos := range prog.Positions {
			fmt.Fprintf(os.Stderr, "%v:%d: printpos %d\n", path, pos.LineNo, pos.Offset)
		}
	}
}
