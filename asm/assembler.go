// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package asm

import (
	"io"
	"log"
	"slices"

	"github.com/ezrec/minicomp/internal"
)

// Assembler is a two pass assembler. The first pass lays out label
// offsets, the second emits the image.
type Assembler struct {
	Verbose bool // If set, verbosely logs the assembler actions.
}

// Parse parses every line of input without assembling it. Lines that fail
// to parse are left out of prog.Lines and reported in prog.Errors.
func (asm *Assembler) Parse(input io.Reader) (prog *Program, err error) {
	data, err := io.ReadAll(input)
	if err != nil {
		return
	}

	prog = &Program{}
	for lineno, text := range internal.NumberedLines(string(data)) {
		if asm.Verbose {
			log.Printf("%v: %v\n", lineno, text)
		}

		line, line_err := ParseLine(text, lineno)
		if line_err != nil {
			prog.Errors = append(prog.Errors, line_err)
			continue
		}
		prog.Lines = append(prog.Lines, line)
	}

	err = prog.Err()
	return
}

// Assemble parses and assembles input. prog.Image is only set when there
// were no diagnostics at all.
func (asm *Assembler) Assemble(input io.Reader) (prog *Program, err error) {
	prog, err = asm.Parse(input)
	if prog == nil {
		return
	}

	labels, layout_errs := asm.layout(prog.Lines)
	image, emit_errs := asm.emit(prog, labels)

	prog.Labels = labels
	prog.Errors = slices.Collect(internal.IterSeqConcat(
		slices.Values(prog.Errors),
		slices.Values(layout_errs),
		slices.Values(emit_errs),
	))

	err = prog.Err()
	if err == nil {
		prog.Image = image
	}

	return
}

// layout walks lines, binding each label to its offset.
func (asm *Assembler) layout(lines []*Line) (labels map[string]int, errs []error) {
	labels = map[string]int{}

	offset := 0
	for _, line := range lines {
		ins := line.Instruction
		if ins.Kind == KIND_LABEL {
			pos := offset
			if ins.Double {
				pos++
			}
			if pos >= 0x100 {
				errs = append(errs, line.wrap(ErrLabelRange{Label: ins.Label, Offset: pos}))
			} else {
				labels[ins.Key()] = pos
				if asm.Verbose {
					log.Printf("%v: label %v = %d\n", line.LineNo, ins.Label, pos)
				}
			}
		}

		size, err := ins.Size(offset)
		if err != nil {
			errs = append(errs, line.wrap(err))
			continue
		}
		offset += size
	}

	return
}

// emit encodes every line against the completed label table. A line that
// fails to encode contributes no bytes.
func (asm *Assembler) emit(prog *Program, labels map[string]int) (image []byte, errs []error) {
	image = []byte{}

	for _, line := range prog.Lines {
		offset := len(image)

		next, err := line.Instruction.Encode(image, labels)
		if err != nil {
			errs = append(errs, line.wrap(err))
			continue
		}

		if line.Instruction.Kind == KIND_PRINTPOS {
			prog.Positions = append(prog.Positions, Position{LineNo: line.LineNo, Offset: offset})
			if asm.Verbose {
				log.Printf("%v: pragma printpos: %d\n", line.LineNo, offset)
			}
		}

		prog.Opcodes = append(prog.Opcodes, Opcode{
			Line:   line,
			Offset: offset,
			Bytes:  slices.Clone(next[offset:]),
		})
		image = next
	}

	return
}
