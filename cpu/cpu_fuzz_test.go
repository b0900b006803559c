package cpu

import (
	"testing"
)

// refAlu is a straightforward model of the ALU, checked against the
// clocked implementation.
func refAlu(op CodeAluOp, a, b, carry byte) (result byte, write bool, flags byte) {
	wide := 0
	write = true
	switch op {
	case ALU_OP_ADD:
		wide = int(a) + int(b) + int(carry)
	case ALU_OP_SHL:
		wide = int(a)<<1 | int(carry)
	case ALU_OP_SHR:
		wide = int(a) >> 1
		if carry != 0 {
			wide |= 0x80
		}
		if a&1 != 0 {
			flags |= 1 << FLAG_CARRY
		}
	case ALU_OP_NOT:
		wide = int(^a)
	case ALU_OP_AND:
		wide = int(a & b)
	case ALU_OP_OR:
		wide = int(a | b)
	case ALU_OP_XOR:
		wide = int(a ^ b)
	case ALU_OP_CMP:
		write = false
	}

	if op != ALU_OP_SHR && wide > 0xff {
		flags |= 1 << FLAG_CARRY
	}
	result = byte(wide)

	if a > b {
		flags |= 1 << FLAG_A_LARGER
	}
	if a == b {
		flags |= 1 << FLAG_EQUAL
	}

	return
}

func FuzzCpuAlu(f *testing.F) {
	f.Add(byte(0x81), byte(5), byte(3), byte(0), byte(0), byte(0))
	f.Add(byte(0xa0), byte(0x81), byte(0), byte(0), byte(0), byte(0x8))
	f.Add(byte(0xf5), byte(1), byte(1), byte(1), byte(1), byte(0))

	f.Fuzz(func(t *testing.T, opcode, ra, rb, rc, rd, flags byte) {
		opcode |= 0x80
		flags &= 0xf

		cpu := NewCpu()
		cpu.Ram[0] = opcode
		cpu.Register = [REG_COUNT]byte{ra, rb, rc, rd}
		cpu.Flags = flags

		expected := cpu.Register
		op, a, b := Code(opcode).AluDecode()
		result, write, want_flags := refAlu(op, expected[a], expected[b], (flags>>FLAG_CARRY)&1)

		if err := cpu.Step(); err != nil {
			t.Fatal(err)
		}

		if write {
			expected[b] = result
			if result == 0 {
				want_flags |= 1 << FLAG_ZERO
			}
		} else {
			// The accumulator still holds the incremented IAR.
			if cpu.Acc == 0 {
				want_flags |= 1 << FLAG_ZERO
			}
		}

		if cpu.Register != expected {
			t.Errorf("%v: expected %v, got %v", Code(opcode), expected, cpu.Register)
		}
		if cpu.Flags != want_flags {
			t.Errorf("%v: expected flags %04b, got %04b", Code(opcode), want_flags, cpu.Flags)
		}
		if cpu.Iar != 1 || cpu.Ticks != INSTR_CYCLES {
			t.Errorf("%v: expected iar 1 after 7 ticks, got %d after %d", Code(opcode), cpu.Iar, cpu.Ticks)
		}
	})
}

func FuzzCpuJump(f *testing.F) {
	f.Add(byte(0x0f), byte(0x3), byte(0x80))
	f.Add(byte(0x00), byte(0xf), byte(0x10))

	f.Fuzz(func(t *testing.T, mask, flags, target byte) {
		mask &= 0xf
		flags &= 0xf

		cpu := NewCpu()
		cpu.Ram[0] = byte(MakeCode(OP_JXXX, int(mask)))
		cpu.Ram[1] = target
		cpu.Flags = flags

		if err := cpu.Step(); err != nil {
			t.Fatal(err)
		}

		expected := byte(2)
		if mask&flags != 0 {
			expected = target
		}
		if cpu.Iar != expected {
			t.Errorf("j%v with flags %04b: expected %02x, got %02x", flagString(mask), flags, expected, cpu.Iar)
		}
		if cpu.Flags != flags {
			t.Errorf("jump changed flags")
		}
	})
}
