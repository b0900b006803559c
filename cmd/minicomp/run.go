package main

import (
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/ezrec/minicomp/asm"
	"github.com/ezrec/minicomp/emulator"
)

var (
	runBinary   bool
	runMaxTicks int
)

var runCmd = &cobra.Command{
	Use:   "run FILE",
	Short: "Run a program on the emulator",
	Long: `Run assembles FILE, or loads it as a raw image with --binary, and
executes it. The keyboard reads from stdin, and both printers write to
stdout. The program runs until it writes to the terminate device.`,

	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		path := args[0]

		var prog *asm.Program
		if runBinary {
			image, err := os.ReadFile(path)
			if err != nil {
				log.Fatalf("%v: %v", path, err)
			}
			prog = &asm.Program{Image: image}
		} else {
			prog = assembleFile(path)
		}

		emu := emulator.NewEmulator()
		emu.Verbose = verbose
		emu.MaxTicks = runMaxTicks
		emu.SetInput(os.Stdin)
		emu.SetOutput(os.Stdout)

		err := emu.Load(prog)
		if err != nil {
			log.Fatalf("%v: %v", path, err)
		}

		err = emu.Run()
		if verbose {
			log.Printf("%v", emu.Cpu)
			log.Printf("ticks: %d", emu.Ticks())
		}
		if err != nil {
			log.Fatalf("%v: %v", path, err)
		}
	},
}

func init() {
	runCmd.Flags().BoolVar(&runBinary, "binary", false, "FILE is a raw machine image")
	runCmd.Flags().IntVar(&runMaxTicks, "max-ticks", 0, "stop with an error after this many clock cycles (0 for no limit)")
	rootCmd.AddCommand(runCmd)
}
