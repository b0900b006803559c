package main

import (
	"fmt"
	goio "io"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/ezrec/minicomp/asm"
	"github.com/ezrec/minicomp/style"
)

var formatInPlace bool

var formatCmd = &cobra.Command{
	Use:   "format FILE",
	Short: "Reformat a source file",
	Long: `Format prints the source file rewritten in the configured style.
With --in-place the file itself is rewritten instead. The file must
assemble cleanly; on any diagnostic nothing is formatted.`,

	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		path := args[0]
		st := loadStyle()

		inf, err := os.Open(path)
		if err != nil {
			log.Fatalf("%v: %v", path, err)
		}
		text, prog, err := formatSource(inf, st)
		inf.Close()
		checkProgram(path, prog, err)

		if !formatInPlace {
			fmt.Print(text)
			return
		}

		info, err := os.Stat(path)
		if err != nil {
			log.Fatalf("%v: %v", path, err)
		}
		err = os.WriteFile(path, []byte(text), info.Mode().Perm())
		if err != nil {
			log.Fatalf("%v: %v", path, err)
		}
	},
}

func init() {
	formatCmd.Flags().BoolVarP(&formatInPlace, "in-place", "i", false, "rewrite FILE in place")
	rootCmd.AddCommand(formatCmd)
}

// formatSource assembles input and renders it under st. text is only set
// when there are no diagnostics.
func formatSource(input goio.Reader, st style.Style) (text string, prog *asm.Program, err error) {
	prog, err = assembleSource(input)
	if err != nil {
		return
	}

	text = prog.Format(st)
	return
}
