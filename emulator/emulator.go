// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	goio "io"
	"log"

	"github.com/ezrec/minicomp/asm"
	"github.com/ezrec/minicomp/cpu"
	"github.com/ezrec/minicomp/io"
)

// Emulator state. CPU + peripherals + the program being run.
type Emulator struct {
	Verbose  bool         // If set, enables verbose logging.
	*cpu.Cpu              // Reference to the CPU simulation.
	Program  *asm.Program // Currently loaded program listing.
	MaxTicks int          // Clock cycle limit per run, or 0 for none.

	Keyboard       io.Keyboard       // Device at io.ADDR_KEYBOARD.
	AsciiPrinter   io.AsciiPrinter   // Device at io.ADDR_ASCII_PRINTER.
	IntegerPrinter io.IntegerPrinter // Device at io.ADDR_INTEGER_PRINTER.
	Random         io.Random         // Device at io.ADDR_RANDOM.
}

// NewEmulator creates a new emulator with the standard peripherals
// attached. Input reads as zero, and output is discarded, until
// SetInput and SetOutput are called.
func NewEmulator() (emu *Emulator) {
	emu = &Emulator{
		Cpu:     cpu.NewCpu(),
		Program: &asm.Program{},
	}

	emu.SetOutput(goio.Discard)

	emu.Cpu.SetInput(io.ADDR_KEYBOARD, &emu.Keyboard)
	emu.Cpu.SetOutput(io.ADDR_ASCII_PRINTER, &emu.AsciiPrinter)
	emu.Cpu.SetOutput(io.ADDR_INTEGER_PRINTER, &emu.IntegerPrinter)
	emu.Cpu.SetOutput(io.ADDR_TERMINATE, io.Terminator{})
	emu.Cpu.SetInput(io.ADDR_RANDOM, &emu.Random)

	return
}

// SetInput sets the keyboard stream.
func (emu *Emulator) SetInput(r goio.Reader) {
	emu.Keyboard.Reader = r
}

// SetOutput sets the stream shared by both printers.
func (emu *Emulator) SetOutput(w goio.Writer) {
	emu.AsciiPrinter.Writer = w
	emu.IntegerPrinter.Writer = w
}

// Load replaces the program, and resets the emulator.
func (emu *Emulator) Load(prog *asm.Program) (err error) {
	emu.Program = prog
	err = emu.Reset()
	return
}

// Reset the CPU, and reload the program image.
func (emu *Emulator) Reset() (err error) {
	if emu.Program == nil || emu.Program.Image == nil {
		err = ErrNoImage
		return
	}

	emu.Cpu.Verbose = emu.Verbose
	emu.Cpu.Reset()

	err = emu.Cpu.Load(emu.Program.Image)
	return
}

// Ticks returns the total clock cycles since a reset.
func (emu *Emulator) Ticks() int {
	return emu.Cpu.Ticks
}

// Iar returns the address of the next instruction.
func (emu *Emulator) Iar() int {
	return int(emu.Cpu.Iar)
}

// Code returns the instruction at the current address.
func (emu *Emulator) Code() cpu.Code {
	return cpu.Code(emu.Cpu.Ram[emu.Cpu.Iar])
}

// LineNo returns the source line of the current instruction, or 0 if the
// address was not emitted by the program.
func (emu *Emulator) LineNo() int {
	if emu.Program == nil {
		return 0
	}

	dbg := emu.Program.Debug(emu.Iar())
	if dbg.Opcode == nil {
		return 0
	}

	return dbg.Line.LineNo
}

// Tick runs a single instruction. done is set once the CPU has stopped.
func (emu *Emulator) Tick() (done bool, err error) {
	emu.Cpu.Verbose = emu.Verbose

	if !emu.Cpu.Running {
		done = true
		return
	}

	lineno := emu.LineNo()
	defer func() {
		if err != nil {
			err = &ErrRuntime{LineNo: lineno, Err: err}
		}
	}()

	if emu.MaxTicks > 0 && emu.Cpu.Ticks >= emu.MaxTicks {
		err = ErrTickLimit
		return
	}

	if emu.Verbose {
		log.Printf("%v: %02x %v", lineno, emu.Iar(), emu.Code())
	}

	err = emu.Cpu.Step()
	if err != nil {
		return
	}

	done = !emu.Cpu.Running
	return
}

// Run ticks until the CPU stops.
func (emu *Emulator) Run() (err error) {
	for {
		var done bool
		done, err = emu.Tick()
		if done || err != nil {
			return
		}
	}
}
