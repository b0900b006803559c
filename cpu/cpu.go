package cpu

import (
	"errors"
	"fmt"
	"log"

	"github.com/ezrec/minicomp/io"
)

const (
	RAM_SIZE     = 256 // Bytes of RAM, and of the I/O address space.
	REG_COUNT    = 4   // General registers.
	INSTR_CYCLES = 7   // Clock cycles per instruction.
)

// Cpu is the simulation context for the minicomp processor.
type Cpu struct {
	Verbose bool // Set to enable verbose logging.

	Ram      [RAM_SIZE]byte  // Main memory.
	Register [REG_COUNT]byte // General registers, ra..rd.

	Ir     byte // Instruction register.
	Iar    byte // Instruction address register.
	Mar    byte // Memory address register.
	Tmp    byte // ALU second operand.
	Acc    byte // ALU accumulator.
	Flags  byte // ALU flags, see FLAG_ZERO and friends.
	IoAddr byte // Selected I/O address.

	Ticks   int  // Clock cycle counter.
	Running bool // Cleared when the terminate device is written.

	input  [RAM_SIZE]io.Input
	output [RAM_SIZE]io.Output
}

// NewCpu creates a new, reset, CPU with no devices attached.
func NewCpu() (cpu *Cpu) {
	cpu = &Cpu{}
	cpu.Reset()
	return
}

// Reset clears memory and registers, and restarts execution at address
// zero. Attached devices are kept.
func (cpu *Cpu) Reset() {
	if cpu.Verbose {
		log.Printf("cpu: reset")
	}

	clear(cpu.Ram[:])
	clear(cpu.Register[:])
	cpu.Ir = 0
	cpu.Iar = 0
	cpu.Mar = 0
	cpu.Tmp = 0
	cpu.Acc = 0
	cpu.Flags = 0
	cpu.IoAddr = 0
	cpu.Ticks = 0
	cpu.Running = true
}

// Load copies image into RAM, starting at address zero.
func (cpu *Cpu) Load(image []byte) (err error) {
	if len(image) > len(cpu.Ram) {
		err = ErrImageSize
		return
	}

	copy(cpu.Ram[:], image)
	return
}

// SetInput attaches an input device at addr. A nil device detaches.
func (cpu *Cpu) SetInput(addr byte, dev io.Input) {
	cpu.input[addr] = dev
}

// SetOutput attaches an output device at addr. A nil device detaches.
func (cpu *Cpu) SetOutput(addr byte, dev io.Output) {
	cpu.output[addr] = dev
}

// Flag returns the value, 0 or 1, of a flag bit.
func (cpu *Cpu) Flag(bit int) byte {
	return (cpu.Flags >> bit) & 1
}

// String returns the current CPU state as a string.
func (cpu *Cpu) String() (text string) {
	regs := []string{
		"iar", "ir",
		"ra", "rb", "rc", "rd",
		"mar", "tmp", "acc",
		"flags", "ioaddr",
	}
	for _, reg := range regs {
		var strval string
		switch reg {
		case "iar":
			strval = fmt.Sprintf("%02X", cpu.Iar)
		case "ir":
			strval = fmt.Sprintf("%02X (%v)", cpu.Ir, Code(cpu.Ir))
		case "ra", "rb", "rc", "rd":
			strval = fmt.Sprintf("%02X", cpu.Register[reg[1]-'a'])
		case "mar":
			strval = fmt.Sprintf("%02X", cpu.Mar)
		case "tmp":
			strval = fmt.Sprintf("%02X", cpu.Tmp)
		case "acc":
			strval = fmt.Sprintf("%02X", cpu.Acc)
		case "flags":
			strval = fmt.Sprintf("%04b [%v]", cpu.Flags, flagString(cpu.Flags))
		case "ioaddr":
			strval = fmt.Sprintf("%02X", cpu.IoAddr)
		}
		text += fmt.Sprintf("% 6s: %v\n", reg, strval)
	}

	return
}

// alu computes `a op b`, returning the result and the new flags. acc is
// returned unchanged by ALU_OP_CMP.
func alu(op CodeAluOp, a, b, carry, acc byte) (c byte, flags byte) {
	switch {
	case a > b:
		flags |= 1 << FLAG_A_LARGER
	case a == b:
		flags |= 1 << FLAG_EQUAL
	}

	c = acc
	switch op {
	case ALU_OP_ADD:
		sum := int(a) + int(b) + int(carry)
		if sum > 0xff {
			flags |= 1 << FLAG_CARRY
		}
		c = byte(sum)
	case ALU_OP_SHL:
		if a&0x80 != 0 {
			flags |= 1 << FLAG_CARRY
		}
		c = a<<1 | carry
	case ALU_OP_SHR:
		if a&1 != 0 {
			flags |= 1 << FLAG_CARRY
		}
		c = a>>1 | carry<<7
	case ALU_OP_NOT:
		c = ^a
	case ALU_OP_AND:
		c = a & b
	case ALU_OP_OR:
		c = a | b
	case ALU_OP_XOR:
		c = a ^ b
	case ALU_OP_CMP:
		// Flags only.
	}

	if c == 0 {
		flags |= 1 << FLAG_ZERO
	}

	return
}

// increment returns v+1, through the ALU.
func increment(v byte) byte {
	c, _ := alu(ALU_OP_ADD, v, 1, 0, 0)
	return c
}

// Tick executes a single clock cycle.
func (cpu *Cpu) Tick() (err error) {
	if !cpu.Running {
		err = ErrHalted
		return
	}

	step := cpu.Ticks % INSTR_CYCLES
	cpu.Ticks++

	switch step {
	case 0:
		cpu.Mar = cpu.Iar
		cpu.Acc = increment(cpu.Iar)
	case 1:
		cpu.Ir = cpu.Ram[cpu.Mar]
		if cpu.Verbose {
			log.Printf("%02x: %v", cpu.Mar, Code(cpu.Ir))
		}
	case 2:
		cpu.Iar = cpu.Acc
	case 3, 4, 5:
		err = cpu.execute(step)
	}

	return
}

// Step runs clock cycles up to the end of the current instruction.
func (cpu *Cpu) Step() (err error) {
	for {
		err = cpu.Tick()
		if err != nil {
			return
		}
		if !cpu.Running || cpu.Ticks%INSTR_CYCLES == 0 {
			return
		}
	}
}

// execute runs one execute cycle, step 3 to 5, of the instruction in IR.
func (cpu *Cpu) execute(step int) (err error) {
	code := Code(cpu.Ir)
	a := code.A()
	b := code.B()

	switch code.Class() {
	case OP_ALU:
		op, _, _ := code.AluDecode()
		switch step {
		case 3:
			cpu.Tmp = cpu.Register[b]
		case 4:
			cpu.Acc, cpu.Flags = alu(op, cpu.Register[a], cpu.Tmp, cpu.Flag(FLAG_CARRY), cpu.Acc)
		case 5:
			if op != ALU_OP_CMP {
				cpu.Register[b] = cpu.Acc
			}
		}
	case OP_LD:
		switch step {
		case 3:
			cpu.Mar = cpu.Register[a]
		case 4:
			cpu.Register[b] = cpu.Ram[cpu.Mar]
		}
	case OP_ST:
		switch step {
		case 3:
			cpu.Mar = cpu.Register[a]
		case 4:
			cpu.Ram[cpu.Mar] = cpu.Register[b]
		}
	case OP_DATA:
		switch step {
		case 3:
			cpu.Acc = increment(cpu.Iar)
			cpu.Mar = cpu.Iar
		case 4:
			cpu.Register[b] = cpu.Ram[cpu.Mar]
		case 5:
			cpu.Iar = cpu.Acc
		}
	case OP_JMPR:
		if step == 3 {
			cpu.Iar = cpu.Register[b]
		}
	case OP_JMP:
		switch step {
		case 3:
			cpu.Mar = cpu.Iar
		case 4:
			cpu.Iar = cpu.Ram[cpu.Mar]
		}
	case OP_JXXX:
		switch step {
		case 3:
			cpu.Acc = increment(cpu.Iar)
			cpu.Mar = cpu.Iar
		case 4:
			cpu.Iar = cpu.Acc
		case 5:
			if cpu.Flags&code.Flags() != 0 {
				cpu.Iar = cpu.Ram[cpu.Mar]
			}
		}
	case OP_CLF:
		if step == 3 {
			_, cpu.Flags = alu(ALU_OP_ADD, 0, 1, 0, 0)
		}
	case OP_IO:
		op, _ := code.IoDecode()
		switch {
		case step == 3 && op == IO_OP_OUTA:
			cpu.IoAddr = cpu.Register[b]
		case step == 3 && op == IO_OP_OUTD:
			err = cpu.deviceOutput(cpu.Register[b])
		case step == 4 && op == IO_OP_IND:
			err = cpu.deviceInput(&cpu.Register[b])
		}
	}

	return
}

// deviceOutput writes value to the selected device.
func (cpu *Cpu) deviceOutput(value byte) (err error) {
	dev := cpu.output[cpu.IoAddr]
	if dev == nil {
		if cpu.Verbose {
			log.Printf("cpu: no output device at 0x%02x", cpu.IoAddr)
		}
		return
	}

	err = dev.Output(value)
	if errors.Is(err, io.ErrHalt) {
		if cpu.Verbose {
			log.Printf("cpu: halt")
		}
		cpu.Running = false
		err = nil
		return
	}
	if err != nil {
		err = &ErrDevice{Addr: cpu.IoAddr, Err: err}
	}

	return
}

// deviceInput reads from the selected device into reg. A missing device
// leaves reg untouched.
func (cpu *Cpu) deviceInput(reg *byte) (err error) {
	dev := cpu.input[cpu.IoAddr]
	if dev == nil {
		if cpu.Verbose {
			log.Printf("cpu: no input device at 0x%02x", cpu.IoAddr)
		}
		return
	}

	value, err := dev.Input()
	if err != nil {
		err = &ErrDevice{Addr: cpu.IoAddr, Err: err}
		return
	}

	*reg = value
	return
}
