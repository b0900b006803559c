package asm

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func assemble(source ...string) (*Program, error) {
	asm := &Assembler{}
	return asm.Assemble(strings.NewReader(strings.Join(source, "\n")))
}

func TestAssemblerEmpty(t *testing.T) {
	assert := assert.New(t)

	prog, err := assemble("")
	assert.NoError(err)
	assert.Equal([]byte{}, prog.Image)
	assert.Len(prog.Lines, 1)
	assert.Empty(prog.Labels)
}

func TestAssemblerForwardReference(t *testing.T) {
	assert := assert.New(t)

	prog, err := assemble(
		"jmp $end",
		"data ra 5",
		"end:",
	)
	assert.NoError(err)
	assert.Equal([]byte{0x40, 0x04, 0x20, 0x05}, prog.Image)
	assert.Equal(map[string]int{"end": 4}, prog.Labels)
}

func TestAssemblerLabels(t *testing.T) {
	assert := assert.New(t)

	table := []struct {
		source []string
		labels map[string]int
		image  []byte
	}{
		{[]string{"Start:", "jmp $START"}, map[string]int{"start": 0}, []byte{0x40, 0x00}},
		{[]string{"clf", "next::", ". $next"}, map[string]int{"next": 2}, []byte{0x60, 0x02}},
		{[]string{"a:", "data ra $a", "a:"}, map[string]int{"a": 2}, []byte{0x20, 0x02}},
		{[]string{"pragma setpos 255", "last:", ". $last"}, map[string]int{"last": 255}, append(make([]byte, 255), 0xff)},
	}

	for _, entry := range table {
		prog, err := assemble(entry.source...)
		assert.NoError(err, entry.source)
		assert.Equal(entry.labels, prog.Labels, entry.source)
		assert.Equal(entry.image, prog.Image, entry.source)
	}
}

func TestAssemblerOverflow(t *testing.T) {
	assert := assert.New(t)

	prog, err := assemble("data ra 300")
	assert.ErrorIs(err, ErrOverflow(0))
	assert.Nil(prog.Image)
	assert.Len(prog.Errors, 1)

	prog, err = assemble("pragma setpos 256", ". 1")
	assert.ErrorIs(err, ErrOverflow(0))
	assert.Nil(prog.Image)
	assert.Len(prog.Errors, 1)

	for _, text := range []string{"data ra 99999999999999999999", "jmp 0x1ffffffffffffffff", ". -99999999999999999999"} {
		prog, err = assemble(text)
		assert.ErrorIs(err, ErrOverflow(0), text)
		assert.NotErrorIs(err, ErrSyntax, text)
		assert.Nil(prog.Image, text)
		assert.Len(prog.Errors, 1, text)
	}
}

func TestAssemblerSetpos(t *testing.T) {
	assert := assert.New(t)

	prog, err := assemble(
		"data ra 1",
		"pragma setpos 5",
		"here:",
		". 9",
	)
	assert.NoError(err)
	assert.Equal([]byte{0x20, 0x01, 0, 0, 0, 0x09}, prog.Image)
	assert.Equal(5, prog.Labels["here"])

	prog, err = assemble(
		"data ra 1",
		"pragma setpos 1",
		"here:",
	)
	assert.ErrorIs(err, ErrPosition{})
	assert.Nil(prog.Image)
	// The walk continues from the offset before the pragma.
	assert.Equal(2, prog.Labels["here"])
}

func TestAssemblerPos(t *testing.T) {
	assert := assert.New(t)

	_, err := assemble("data ra 1", "pragma pos 2")
	assert.NoError(err)

	prog, err := assemble("data ra 1", "pragma pos 3")
	assert.ErrorIs(err, ErrPosition{})
	assert.Len(prog.Errors, 1)
}

func TestAssemblerPrintpos(t *testing.T) {
	assert := assert.New(t)

	prog, err := assemble(
		"pragma printpos",
		"data ra 1",
		"pragma printpos",
	)
	assert.NoError(err)
	assert.Equal([]Position{{LineNo: 1, Offset: 0}, {LineNo: 3, Offset: 2}}, prog.Positions)
}

func TestAssemblerAccumulate(t *testing.T) {
	assert := assert.New(t)

	prog, err := assemble(
		"jmp $nowhere",
		"frobnicate ra",
		"data ra 1",
	)
	assert.Error(err)
	assert.Nil(prog.Image)
	assert.Len(prog.Errors, 2)
	assert.ErrorIs(err, ErrSyntax)
	assert.ErrorIs(err, ErrLabelMissing(""))

	var lineErr *ErrLine
	assert.True(errors.As(prog.Errors[0], &lineErr))
	assert.Equal(2, lineErr.LineNo)
	assert.Equal("frobnicate ra", lineErr.Line)
	assert.Equal("line 2 'frobnicate ra' invalid line", lineErr.Error())

	assert.True(errors.As(prog.Errors[1], &lineErr))
	assert.Equal(1, lineErr.LineNo)
	assert.Equal(ErrLabelMissing("nowhere"), lineErr.Err)

	// Lines that parsed are still available.
	assert.Len(prog.Lines, 2)
}

func TestAssemblerLabelRange(t *testing.T) {
	assert := assert.New(t)

	table := [][]string{
		{"pragma setpos 256", "end:"},
		{"pragma setpos 255", "end::"},
	}

	for _, source := range table {
		prog, err := assemble(source...)
		assert.ErrorIs(err, ErrLabelRange{}, source)
		assert.Len(prog.Errors, 1, source)
		assert.Nil(prog.Image, source)
		assert.NotContains(prog.Labels, "end", source)
	}
}

func TestProgramListing(t *testing.T) {
	assert := assert.New(t)

	prog, err := assemble(
		"top:",
		"  data ra 5",
		"  outd ra",
		"  jmp $top",
	)
	assert.NoError(err)
	assert.Len(prog.Opcodes, 4)

	dbg := prog.Debug(1)
	assert.NotNil(dbg.Opcode)
	assert.Equal(2, dbg.Line.LineNo)
	assert.Equal(1, dbg.Index)

	dbg = prog.Debug(4)
	assert.Equal(4, dbg.Line.LineNo)
	assert.Equal(1, dbg.Index)

	dbg = prog.Debug(10)
	assert.Nil(dbg.Opcode)

	var addrs []int
	for addr, code := range prog.Bytes() {
		addrs = append(addrs, addr)
		assert.Equal(prog.Image[addr], code)
	}
	assert.Equal([]int{0, 1, 2, 3, 4}, addrs)
}

func TestAssemblerParseOnly(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}
	prog, err := asm.Parse(strings.NewReader("data ra 300\njmp $nowhere\n"))
	assert.NoError(err)
	assert.Len(prog.Lines, 3)
	assert.Nil(prog.Image)
	assert.Nil(prog.Labels)
}
