package asm

import (
	"errors"
	"iter"
	"strings"

	"github.com/ezrec/minicomp/style"
)

// Opcode is the code emitted for a single source line.
type Opcode struct {
	Line   *Line
	Offset int    // Image offset of the first byte.
	Bytes  []byte // Emitted bytes, possibly empty.
}

// Position is an offset reported by `pragma printpos`.
type Position struct {
	LineNo int
	Offset int
}

// Program is a parsed, and possibly assembled, source file.
type Program struct {
	Lines     []*Line        // Successfully parsed lines, in source order.
	Labels    map[string]int // Case folded label name to image offset.
	Image     []byte         // Machine image; nil unless assembly succeeded.
	Opcodes   []Opcode       // Per line emission record.
	Positions []Position     // Reports from `pragma printpos`.
	Errors    []error        // Every diagnostic, in source walk order.
}

// Err returns all diagnostics joined, or nil.
func (prog *Program) Err() error {
	return errors.Join(prog.Errors...)
}

// Format renders every line under st, newline joined.
func (prog *Program) Format(st style.Style) string {
	text := make([]string, 0, len(prog.Lines))
	for _, line := range prog.Lines {
		text = append(text, line.Render(st))
	}

	return strings.Join(text, "\n")
}

type Debug struct {
	*Opcode
	Index int // Byte index within the opcode.
}

// Debug finds the opcode that emitted the byte at addr. The Opcode is nil
// if there is none.
func (prog *Program) Debug(addr int) (dbg Debug) {
	for n, op := range prog.Opcodes {
		if addr >= op.Offset && addr < op.Offset+len(op.Bytes) {
			dbg = Debug{
				Opcode: &prog.Opcodes[n],
				Index:  addr - op.Offset,
			}
			break
		}
	}

	return
}

// Bytes iterates over the emitted image bytes by address.
func (prog *Program) Bytes() iter.Seq2[int, byte] {
	return func(yield func(addr int, code byte) bool) {
		for _, op := range prog.Opcodes {
			for n, code := range op.Bytes {
				if !yield(op.Offset+n, code) {
					return
				}
			}
		}
	}
}
