package asm

import (
	"strings"

	"github.com/ezrec/minicomp/style"
)

// RegisterMode is how an instruction uses a register operand.
type RegisterMode int

const (
	REG_DIRECT   = RegisterMode(0) // direct
	REG_POINTER  = RegisterMode(1) // pointer
	REG_INVERTED = RegisterMode(2) // inverted
)

// registerNames are indexed by register number.
var registerNames = [4]string{"ra", "rb", "rc", "rd"}

// Register is a register operand.
type Register struct {
	Index      int          // Register number, 0..3.
	Annotation string       // Free-text suffix after '-', documentation only.
	Mode       RegisterMode // Operand mode.
	Prefix     byte         // '~' or '!' for REG_INVERTED.
}

// parseDirect parses `ra`, `rb-count`, ...
func parseDirect(text string) (reg Register, ok bool) {
	if len(text) < 2 {
		return
	}

	reg.Index = -1
	for n, name := range registerNames {
		if strings.EqualFold(text[:2], name) {
			reg.Index = n
			break
		}
	}
	if reg.Index < 0 {
		return
	}

	if len(text) > 2 {
		if text[2] != '-' {
			return
		}
		reg.Annotation = text[3:]
	}

	ok = true
	return
}

// ParseRegister parses a register token in any of its modes: `ra`, `*ra`,
// `~ra` or `!ra`.
func ParseRegister(text string) (reg Register, ok bool) {
	if len(text) == 0 {
		return
	}

	switch text[0] {
	case '*':
		reg, ok = parseDirect(text[1:])
		reg = reg.Pointer()
	case '~', '!':
		reg, ok = parseDirect(text[1:])
		reg = reg.Inverted(text[0])
	default:
		reg, ok = parseDirect(text)
	}

	return
}

// Pointer promotes the register to a pointer operand.
func (reg Register) Pointer() Register {
	reg.Mode = REG_POINTER
	reg.Prefix = 0
	return reg
}

// Inverted promotes the register to an inverted-read operand, spelled
// with prefix in the C dialect.
func (reg Register) Inverted(prefix byte) Register {
	reg.Mode = REG_INVERTED
	reg.Prefix = prefix
	return reg
}

// Name returns the canonical register name, without annotation.
func (reg Register) Name() string {
	return registerNames[reg.Index&3]
}

// Render returns the register spelled for st.
func (reg Register) Render(st style.Style) string {
	text := reg.Name()
	if reg.Annotation != "" && st.IncludeRegSubname {
		text += "-" + reg.Annotation
	}

	if st.C() {
		switch reg.Mode {
		case REG_POINTER:
			text = "*" + text
		case REG_INVERTED:
			text = string(reg.Prefix) + text
		}
	}

	return text
}
