package asm

// Kind is an instruction or directive variant. Kinds are recognized in
// declaration order; the first kind whose templates accept a line wins.
type Kind int

//go:generate go tool stringer -linecomment -type=Kind
const (
	KIND_DATA     = Kind(0)  // data
	KIND_EMPTY    = Kind(1)  // empty
	KIND_BYTE     = Kind(2)  // byte
	KIND_LABEL    = Kind(3)  // label
	KIND_SETPOS   = Kind(4)  // setpos
	KIND_POS      = Kind(5)  // pos
	KIND_PRINTPOS = Kind(6)  // printpos
	KIND_OUTD     = Kind(7)  // outd
	KIND_IND      = Kind(8)  // ind
	KIND_OUTA     = Kind(9)  // outa
	KIND_INA      = Kind(10) // ina
	KIND_JMP      = Kind(11) // jmp
	KIND_JMPR     = Kind(12) // jmpr
	KIND_JXXX     = Kind(13) // jxxx
	KIND_AND      = Kind(14) // and
	KIND_OR       = Kind(15) // or
	KIND_XOR      = Kind(16) // xor
	KIND_NOT      = Kind(17) // not
	KIND_ADD      = Kind(18) // add
	KIND_SHL      = Kind(19) // shl
	KIND_SHR      = Kind(20) // shr
	KIND_CLF      = Kind(21) // clf
	KIND_CMP      = Kind(22) // cmp
	KIND_LD       = Kind(23) // ld
	KIND_ST       = Kind(24) // st

	KIND_COUNT = 25
)

// Opcode class, high nibble of the first instruction byte.
const (
	CLASS_LD   = 0x0
	CLASS_ST   = 0x1
	CLASS_DATA = 0x2
	CLASS_JMPR = 0x3
	CLASS_JMP  = 0x4
	CLASS_JXXX = 0x5
	CLASS_CLF  = 0x6
	CLASS_IO   = 0x7
	CLASS_ALU  = 0x8 // ALU ops set the top bit; bits 6..4 select the op.
)

// ALU operations, bits 6..4 of an ALU instruction.
const (
	ALU_ADD = 0
	ALU_SHR = 1
	ALU_SHL = 2
	ALU_NOT = 3
	ALU_AND = 4
	ALU_OR  = 5
	ALU_XOR = 6
	ALU_CMP = 7
)

// I/O operations, bits 3..2 of an I/O instruction.
const (
	IO_IN_DATA  = 0
	IO_IN_ADDR  = 1
	IO_OUT_DATA = 2
	IO_OUT_ADDR = 3
)

// Conditional jump flags, by mnemonic letter. Bit n of the low nibble
// selects flag n.
const jumpFlags = "zeac"
