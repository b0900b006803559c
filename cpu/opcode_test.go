package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCodeString(t *testing.T) {
	assert := assert.New(t)

	table := []struct {
		code Code
		text string
	}{
		{MakeCodeAlu(ALU_OP_ADD, 1, 0), "add rb ra"},
		{MakeCodeAlu(ALU_OP_CMP, 0, 1), "cmp ra rb"},
		{MakeCodeAlu(ALU_OP_SHL, 3, 3), "shl rd rd"},
		{MakeCodeIo(IO_OP_OUTD, 1), "outd rb"},
		{MakeCodeIo(IO_OP_INA, 0), "ina ra"},
		{MakeCode(OP_DATA, 0), "data ra"},
		{MakeCode(OP_JMPR, 3), "jmpr rd"},
		{MakeCode(OP_JMP, 0), "jmp"},
		{MakeCode(OP_JXXX, 0xc), "jac"},
		{MakeCode(OP_JXXX, 0xf), "jzeac"},
		{MakeCode(OP_CLF, 0), "clf"},
		{Code(0x02), "ld ra rc"},
		{Code(0x11), "st ra rb"},
	}

	for _, entry := range table {
		assert.Equal(entry.text, entry.code.String(), "%02x", byte(entry.code))
	}
}

func TestCodeSize(t *testing.T) {
	assert := assert.New(t)

	for n := range 256 {
		code := Code(n)
		expected := 1
		switch n >> 4 {
		case 0x2, 0x4, 0x5:
			expected = 2
		}
		assert.Equal(expected, code.Size(), "%v", code)
	}
}

func TestCodeDecode(t *testing.T) {
	assert := assert.New(t)

	op, a, b := MakeCodeAlu(ALU_OP_XOR, 2, 1).AluDecode()
	assert.Equal(ALU_OP_XOR, op)
	assert.Equal(2, a)
	assert.Equal(1, b)

	io_op, reg := MakeCodeIo(IO_OP_OUTA, 3).IoDecode()
	assert.Equal(IO_OP_OUTA, io_op)
	assert.Equal(3, reg)

	assert.Equal("ze", flagString(0x3))
	assert.Equal("", flagString(0))
}
