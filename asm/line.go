package asm

import (
	"strings"

	"github.com/ezrec/minicomp/style"
)

// Line is a single parsed source line.
type Line struct {
	LineNo      int    // 1-based source line number.
	Raw         string // Source text.
	Indent      int    // Count of leading spaces.
	Instruction Instruction
	Comment     string // Trailing comment, or empty.
}

// ParseLine parses a source line. A line that no instruction kind accepts
// is an ErrSyntax, wrapped in an *ErrLine.
func ParseLine(text string, lineno int) (line *Line, err error) {
	body := strings.TrimLeft(text, " ")
	toks := Tokenize(body)

	ins, ok := ParseInstruction(toks)
	if !ok {
		err = &ErrLine{LineNo: lineno, Line: text, Err: ErrSyntax}
		return
	}

	line = &Line{
		LineNo:      lineno,
		Raw:         text,
		Indent:      len(text) - len(body),
		Instruction: ins,
		Comment:     toks.Comment,
	}

	return
}

// Render returns the line spelled for st.
func (line *Line) Render(st style.Style) string {
	var sb strings.Builder

	if st.IncludeIndent {
		sb.WriteString(strings.Repeat(" ", line.Indent))
	}

	sb.WriteString(line.Instruction.Render(st))

	if st.IncludeComments {
		sb.WriteString(line.Comment)
	}

	return sb.String()
}

// wrap locates err on this line.
func (line *Line) wrap(err error) error {
	return &ErrLine{LineNo: line.LineNo, Line: line.Raw, Err: err}
}
