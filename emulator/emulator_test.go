package emulator

import (
	"bytes"
	"errors"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/minicomp/asm"
	"github.com/ezrec/minicomp/cpu"
)

func TestEmulator(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()

	assert.False(emu.Verbose)
	assert.NotNil(emu.Cpu)
	assert.ErrorIs(emu.Reset(), ErrNoImage)
	assert.Equal(0, emu.LineNo())
}

func load(t *testing.T, emu *Emulator, program []string) {
	assembler := &asm.Assembler{}
	prog, err := assembler.Assemble(strings.NewReader(strings.Join(program, "\n")))
	if err != nil {
		t.Fatal(err)
	}

	err = emu.Load(prog)
	if err != nil {
		t.Fatal(err)
	}
}

func doRun(t *testing.T, program []string, input string) (emu *Emulator, output string) {
	emu = NewEmulator()
	load(t, emu, program)

	out := &bytes.Buffer{}
	emu.SetInput(strings.NewReader(input))
	emu.SetOutput(out)

	err := emu.Run()
	if err != nil {
		t.Fatal(err)
	}

	output = out.String()
	return
}

var helloProgram = []string{
	"ra = 2",
	"outa ra",
	"rb = 'H'",
	"outd rb",
	"data rb 'i'",
	"outd rb",
	"ra = 4",
	"outa ra",
	"outd ra",
}

func TestEmulatorHello(t *testing.T) {
	assert := assert.New(t)

	emu, output := doRun(t, helloProgram, "")
	assert.Equal("Hi", output)
	assert.False(emu.Cpu.Running)
	assert.Equal(len(helloProgram)*cpu.INSTR_CYCLES, emu.Ticks())
}

func TestEmulatorLineNo(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()
	load(t, emu, helloProgram)

	for n := range helloProgram {
		assert.Equal(n+1, emu.LineNo(), helloProgram[n])
		done, err := emu.Tick()
		assert.NoError(err, helloProgram[n])
		assert.Equal(n == len(helloProgram)-1, done, helloProgram[n])
	}

	// Further ticks are no-ops.
	done, err := emu.Tick()
	assert.NoError(err)
	assert.True(done)
}

func TestEmulatorCountdown(t *testing.T) {
	assert := assert.New(t)

	program := []string{
		"  ra = 3",
		"  rd = 0xff   # minus one",
		"  rc = 3",
		"  outa rc",
		"loop:",
		"  outd ra",
		"  clf",
		"  ra += rd",
		"  jz $done",
		"  jmp $loop",
		"done:",
		"  rc = 4",
		"  outa rc",
		"  outd rc",
	}

	_, output := doRun(t, program, "")
	assert.Equal("321", output)
}

func TestEmulatorEcho(t *testing.T) {
	assert := assert.New(t)

	program := []string{
		"data ra 1",
		"data rb 2",
		"data rd 0",
		"loop:",
		"outa ra",
		"ind rc",
		"rc == rd",
		"je $done",
		"outa rb",
		"outd rc",
		"jmp $loop",
		"done:",
		"data rd 4",
		"outa rd",
		"outd rd",
	}

	_, output := doRun(t, program, "abc")
	assert.Equal("abc", output)
}

func TestEmulatorRandom(t *testing.T) {
	assert := assert.New(t)

	program := []string{
		"ra = 5",
		"outa ra",
		"ind rb",
		"ra = 4",
		"outa ra",
		"outd ra",
	}

	emu := NewEmulator()
	emu.Random.Rand = rand.New(rand.NewPCG(1, 2))
	load(t, emu, program)
	assert.NoError(emu.Run())

	expected := byte(rand.New(rand.NewPCG(1, 2)).Uint32())
	assert.Equal(expected, emu.Cpu.Register[1])
}

func TestEmulatorTickLimit(t *testing.T) {
	assert := assert.New(t)

	program := []string{
		"clf",
		"loop:",
		"jmp $loop",
	}

	emu := NewEmulator()
	emu.MaxTicks = 10 * cpu.INSTR_CYCLES
	load(t, emu, program)

	err := emu.Run()
	assert.ErrorIs(err, ErrTickLimit)

	var rt *ErrRuntime
	assert.True(errors.As(err, &rt))
	assert.Equal(3, rt.LineNo)
	assert.Equal(emu.MaxTicks, emu.Ticks())
}

type failWriter struct{}

var errFail = errors.New("fail")

func (failWriter) Write(data []byte) (int, error) {
	return 0, errFail
}

func TestEmulatorDeviceError(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()
	load(t, emu, helloProgram)
	emu.SetOutput(failWriter{})

	err := emu.Run()
	assert.ErrorIs(err, errFail)

	var dev *cpu.ErrDevice
	assert.True(errors.As(err, &dev))
	var rt *ErrRuntime
	assert.True(errors.As(err, &rt))
	assert.Equal(4, rt.LineNo)
	assert.Equal("line 4 "+dev.Error(), rt.Error())
}

func TestEmulatorReset(t *testing.T) {
	assert := assert.New(t)

	emu, output := doRun(t, helloProgram, "")
	assert.Equal("Hi", output)

	out := &bytes.Buffer{}
	emu.SetOutput(out)
	assert.NoError(emu.Reset())
	assert.True(emu.Cpu.Running)
	assert.Equal(0, emu.Ticks())
	assert.NoError(emu.Run())
	assert.Equal("Hi", out.String())
}
