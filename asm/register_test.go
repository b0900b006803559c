package asm

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/minicomp/style"
)

func TestParseRegister(t *testing.T) {
	assert := assert.New(t)

	table := []struct {
		text string
		ok   bool
		reg  Register
	}{
		{"ra", true, Register{Index: 0}},
		{"RB-count", true, Register{Index: 1, Annotation: "count"}},
		{"rd-", true, Register{Index: 3}},
		{"*rc", true, Register{Index: 2, Mode: REG_POINTER}},
		{"~rd-mask", true, Register{Index: 3, Annotation: "mask", Mode: REG_INVERTED, Prefix: '~'}},
		{"!ra", true, Register{Index: 0, Mode: REG_INVERTED, Prefix: '!'}},
		{"rx", false, Register{}},
		{"ra5", false, Register{}},
		{"r", false, Register{}},
		{"*", false, Register{}},
		{"**ra", false, Register{}},
		{"", false, Register{}},
	}

	for _, entry := range table {
		reg, ok := ParseRegister(entry.text)
		assert.Equal(entry.ok, ok, entry.text)
		if ok {
			assert.Equal(entry.reg, reg, entry.text)
		}
	}
}

func TestRegisterPromote(t *testing.T) {
	assert := assert.New(t)

	reg, ok := ParseRegister("rc-ptr")
	assert.True(ok)

	ptr := reg.Pointer()
	assert.Equal(REG_POINTER, ptr.Mode)
	assert.Equal(2, ptr.Index)
	assert.Equal("ptr", ptr.Annotation)

	inv := reg.Inverted('!')
	assert.Equal(REG_INVERTED, inv.Mode)
	assert.Equal(byte('!'), inv.Prefix)

	assert.Equal(REG_DIRECT, reg.Mode)
}

func TestRegisterRender(t *testing.T) {
	assert := assert.New(t)

	c := style.Default()
	asm := style.Default()
	asm.AsmStyle = style.DIALECT_ASM
	bare := style.Default()
	bare.IncludeRegSubname = false

	table := []struct {
		text string
		st   style.Style
		out  string
	}{
		{"RB-count", c, "rb-count"},
		{"RB-count", bare, "rb"},
		{"*rc", c, "*rc"},
		{"*rc-p", asm, "rc-p"},
		{"!rd", c, "!rd"},
		{"~rd", c, "~rd"},
		{"!rd", asm, "rd"},
	}

	for _, entry := range table {
		reg, ok := ParseRegister(entry.text)
		assert.True(ok, entry.text)
		assert.Equal(entry.out, reg.Render(entry.st), entry.text)
	}
}
