package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/minicomp/asm"
	"github.com/ezrec/minicomp/style"
)

func TestFormatSource(t *testing.T) {
	assert := assert.New(t)

	st := style.Default()
	st.AsmStyle = style.DIALECT_ASM

	text, prog, err := formatSource(strings.NewReader("ra = 5\nloop:\n  jmp $loop\n"), st)
	assert.NoError(err)
	assert.NotNil(prog.Image)
	assert.Equal("data ra 5\nloop:\n  jmp $loop\n", text)
}

func TestFormatSourceDiagnostics(t *testing.T) {
	assert := assert.New(t)

	table := []struct {
		source string
		err    error
	}{
		{"jmp $nowhere", asm.ErrLabelMissing("")},
		{"clf\npragma setpos 0", asm.ErrPosition{}},
		{"clf\npragma pos 0", asm.ErrPosition{}},
		{"data ra 300", asm.ErrOverflow(0)},
		{"frobnicate ra", asm.ErrSyntax},
	}

	for _, entry := range table {
		text, prog, err := formatSource(strings.NewReader(entry.source), style.Default())
		assert.ErrorIs(err, entry.err, entry.source)
		assert.NotEmpty(prog.Errors, entry.source)
		assert.Equal("", text, entry.source)
	}
}
