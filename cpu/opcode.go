package cpu

import (
	"fmt"
	"strings"
)

// CodeClass is the instruction class, the high nibble of an opcode.
type CodeClass int

//go:generate go tool stringer -linecomment -type=CodeClass
const (
	OP_LD   = CodeClass(0) // ld
	OP_ST   = CodeClass(1) // st
	OP_DATA = CodeClass(2) // data
	OP_JMPR = CodeClass(3) // jmpr
	OP_JMP  = CodeClass(4) // jmp
	OP_JXXX = CodeClass(5) // jxxx
	OP_CLF  = CodeClass(6) // clf
	OP_IO   = CodeClass(7) // io
	OP_ALU  = CodeClass(8) // alu
)

// CodeAluOp is an ALU operation.
type CodeAluOp int

//go:generate go tool stringer -linecomment -type=CodeAluOp
const (
	ALU_OP_ADD = CodeAluOp(0) // add
	ALU_OP_SHR = CodeAluOp(1) // shr
	ALU_OP_SHL = CodeAluOp(2) // shl
	ALU_OP_NOT = CodeAluOp(3) // not
	ALU_OP_AND = CodeAluOp(4) // and
	ALU_OP_OR  = CodeAluOp(5) // or
	ALU_OP_XOR = CodeAluOp(6) // xor
	ALU_OP_CMP = CodeAluOp(7) // cmp
)

// CodeIoOp is an I/O operation.
type CodeIoOp int

//go:generate go tool stringer -linecomment -type=CodeIoOp
const (
	IO_OP_IND  = CodeIoOp(0) // ind
	IO_OP_INA  = CodeIoOp(1) // ina
	IO_OP_OUTD = CodeIoOp(2) // outd
	IO_OP_OUTA = CodeIoOp(3) // outa
)

// Flag bit positions.
const (
	FLAG_ZERO     = 0
	FLAG_EQUAL    = 1
	FLAG_A_LARGER = 2
	FLAG_CARRY    = 3
)

// flagNames are indexed by flag bit.
const flagNames = "zeac"

var regNames = [REG_COUNT]string{"ra", "rb", "rc", "rd"}

// Code is a single opcode byte.
type Code byte

// MakeCodeAlu creates an ALU instruction, `b = a op b`.
func MakeCodeAlu(op CodeAluOp, a, b int) Code {
	return Code(0x80 | int(op)<<4 | (a&3)<<2 | b&3)
}

// MakeCodeIo creates an I/O instruction.
func MakeCodeIo(op CodeIoOp, reg int) Code {
	return Code(int(OP_IO)<<4 | int(op)<<2 | reg&3)
}

// MakeCode creates a non-ALU instruction from its class and low nibble.
func MakeCode(class CodeClass, low int) Code {
	return Code(int(class)<<4 | low&0xf)
}

// Class returns the instruction class.
func (code Code) Class() CodeClass {
	if code&0x80 != 0 {
		return OP_ALU
	}
	return CodeClass(code >> 4)
}

// A returns the register selected by bits 3..2.
func (code Code) A() int {
	return int(code>>2) & 3
}

// B returns the register selected by bits 1..0.
func (code Code) B() int {
	return int(code) & 3
}

// AluDecode decodes an ALU instruction.
func (code Code) AluDecode() (op CodeAluOp, a, b int) {
	op = CodeAluOp(code>>4) & 7
	a = code.A()
	b = code.B()
	return
}

// IoDecode decodes an I/O instruction.
func (code Code) IoDecode() (op CodeIoOp, reg int) {
	op = CodeIoOp(code.A())
	reg = code.B()
	return
}

// Flags returns the flag mask tested by a conditional jump.
func (code Code) Flags() byte {
	return byte(code) & 0xf
}

// Size returns the instruction length in bytes.
func (code Code) Size() int {
	switch code.Class() {
	case OP_DATA, OP_JMP, OP_JXXX:
		return 2
	}
	return 1
}

// flagString spells a flag mask, in `zeac` order.
func flagString(flags byte) string {
	var sb strings.Builder
	for bit := range len(flagNames) {
		if flags&(1<<bit) != 0 {
			sb.WriteByte(flagNames[bit])
		}
	}
	return sb.String()
}

// String disassembles the opcode. The immediate of a two byte instruction
// is not part of the opcode, and is not shown.
func (code Code) String() string {
	a := regNames[code.A()]
	b := regNames[code.B()]

	switch code.Class() {
	case OP_ALU:
		op, _, _ := code.AluDecode()
		return fmt.Sprintf("%v %v %v", op, a, b)
	case OP_LD, OP_ST:
		return fmt.Sprintf("%v %v %v", code.Class(), a, b)
	case OP_DATA, OP_JMPR:
		return fmt.Sprintf("%v %v", code.Class(), b)
	case OP_JXXX:
		return "j" + flagString(code.Flags())
	case OP_IO:
		op, _ := code.IoDecode()
		return fmt.Sprintf("%v %v", op, b)
	default:
		return code.Class().String()
	}
}
