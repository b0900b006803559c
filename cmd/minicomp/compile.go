package main

import (
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/ezrec/minicomp/cpu"
)

var compilePad bool

var compileCmd = &cobra.Command{
	Use:   "compile FILE OUT",
	Short: "Assemble a source file into a binary image",
	Long: `Compile assembles FILE and writes the raw machine image to OUT.
Nothing is written if there are any diagnostics.`,

	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		prog := assembleFile(args[0])

		image := prog.Image
		if compilePad {
			image = make([]byte, cpu.RAM_SIZE)
			copy(image, prog.Image)
		}

		err := os.WriteFile(args[1], image, 0o644)
		if err != nil {
			log.Fatalf("%v: %v", args[1], err)
		}
	},
}

func init() {
	compileCmd.Flags().BoolVar(&compilePad, "pad", false, "zero pad the image to the full 256 bytes of RAM")
	rootCmd.AddCommand(compileCmd)
}
