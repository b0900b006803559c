package asm

import (
	"errors"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"
)

// LiteralKind tags a Literal as a number or a pending label reference.
type LiteralKind int

const (
	LITERAL_NUMBER = LiteralKind(0) // number
	LITERAL_LABEL  = LiteralKind(1) // label
)

// quoteEscape is the spelling of the apostrophe character literal.
const quoteEscape = `'\''`

// Literal is a byte value operand. It keeps its source spelling so that
// rendering reproduces the input exactly.
type Literal struct {
	Kind  LiteralKind
	Text  string // Source spelling.
	Value int    // Numeric value, for LITERAL_NUMBER.
	Label string // Case folded label name, for LITERAL_LABEL.
}

// ParseLiteral parses a literal token. ok is false if the token is not a
// literal at all.
func ParseLiteral(text string) (lit Literal, ok bool) {
	lit = Literal{Text: text}

	lower := strings.ToLower(text)
	switch {
	case text == quoteEscape:
		lit.Value = '\''
	case strings.HasPrefix(text, "'"):
		r, size := utf8.DecodeRuneInString(text[1:])
		if r == utf8.RuneError || len(text) != size+2 || text[size+1] != '\'' {
			return
		}
		lit.Value = int(r)
	case strings.HasPrefix(lower, "0x"):
		lit.Value, ok = parseInteger(text[2:], 16)
		if !ok {
			return
		}
	case strings.HasPrefix(lower, "0b"):
		lit.Value, ok = parseInteger(text[2:], 2)
		if !ok {
			return
		}
	case len(text) == 8 && strings.Trim(text, "01") == "":
		value, err := strconv.ParseUint(text, 2, 8)
		if err != nil {
			return
		}
		lit.Value = int(value)
	case strings.HasPrefix(text, "$"):
		if len(text) == 1 {
			return
		}
		lit.Kind = LITERAL_LABEL
		lit.Label = strings.ToLower(text[1:])
	default:
		lit.Value, ok = parseInteger(text, 10)
		if !ok {
			return
		}
	}

	ok = true
	return
}

// parseInteger parses a signed integer in base. A value too large for an
// int still parses, saturated, so that it is reported as an overflow.
func parseInteger(text string, base int) (value int, ok bool) {
	n, err := strconv.ParseInt(text, base, 64)
	switch {
	case errors.Is(err, strconv.ErrRange):
		value = math.MaxInt
		if n < 0 {
			value = math.MinInt
		}
	case err != nil:
		return
	case n > math.MaxInt:
		value = math.MaxInt
	case n < math.MinInt:
		value = math.MinInt
	default:
		value = int(n)
	}

	ok = true
	return
}

// String returns the source spelling.
func (lit Literal) String() string {
	return lit.Text
}

// Resolve returns the byte value of the literal, looking up label
// references in labels.
func (lit Literal) Resolve(labels map[string]int) (value byte, err error) {
	n := lit.Value
	if lit.Kind == LITERAL_LABEL {
		var ok bool
		n, ok = labels[lit.Label]
		if !ok {
			err = ErrLabelMissing(lit.Label)
			return
		}
	}

	if n < 0 || n > 0xff {
		err = ErrOverflow(n)
		return
	}

	value = byte(n)
	return
}
