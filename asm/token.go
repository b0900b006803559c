package asm

import (
	"strings"
	"unicode/utf8"
)

// TokenClass is the classification of a surface token.
type TokenClass int

//go:generate go tool stringer -linecomment -type=TokenClass
const (
	TOKEN_SYMBOL = TokenClass(0) // symbol
	TOKEN_REG    = TokenClass(1) // reg
	TOKEN_REGP   = TokenClass(2) // *reg
	TOKEN_REGT   = TokenClass(3) // ~reg
	TOKEN_NUMBER = TokenClass(4) // number
)

// Token is a single whitespace delimited word of a source line.
type Token struct {
	Text     string
	Class    TokenClass
	Register Register // Valid for TOKEN_REG, TOKEN_REGP and TOKEN_REGT.
	Literal  Literal  // Valid for TOKEN_NUMBER.
}

// NewToken classifies a word.
func NewToken(text string) (tok Token) {
	tok.Text = text

	reg, ok := ParseRegister(text)
	if ok {
		tok.Register = reg
		switch reg.Mode {
		case REG_POINTER:
			tok.Class = TOKEN_REGP
		case REG_INVERTED:
			tok.Class = TOKEN_REGT
		default:
			tok.Class = TOKEN_REG
		}
		return
	}

	lit, ok := ParseLiteral(text)
	if ok {
		tok.Literal = lit
		tok.Class = TOKEN_NUMBER
		return
	}

	tok.Class = TOKEN_SYMBOL
	return
}

// Tokens is a tokenized line body.
type Tokens struct {
	Words   []Token
	Comment string // Trailing comment, with the whitespace that preceded it.
}

// quotedLength returns the length of the quoted character literal at the
// start of text, or 0 if there is none.
func quotedLength(text string) int {
	if strings.HasPrefix(text, quoteEscape) {
		return len(quoteEscape)
	}
	if len(text) < 3 || text[0] != '\'' {
		return 0
	}
	r, size := utf8.DecodeRuneInString(text[1:])
	if r == utf8.RuneError || len(text) < size+2 || text[size+1] != '\'' {
		return 0
	}
	return size + 2
}

// Tokenize splits a line body on runs of spaces and tabs. A quoted
// character literal is always a single token, even if it holds a space or
// a '#'. Any other '#' starts the trailing comment.
func Tokenize(text string) (toks Tokens) {
	start := -1     // Start of the current word.
	spaceStart := 0 // Start of the whitespace run before the next word.

	flush := func(end int) {
		if start >= 0 {
			toks.Words = append(toks.Words, NewToken(text[start:end]))
			start = -1
		}
	}

	for idx := 0; idx < len(text); {
		c := text[idx]
		switch {
		case c == ' ' || c == '\t':
			if start >= 0 {
				flush(idx)
				spaceStart = idx
			}
			idx++
		case c == '#':
			if start >= 0 {
				flush(idx)
				spaceStart = idx
			}
			toks.Comment = strings.TrimRight(text[spaceStart:], " \t")
			return
		case c == '\'' && start < 0:
			size := quotedLength(text[idx:])
			if size == 0 {
				start = idx
				idx++
				continue
			}
			toks.Words = append(toks.Words, NewToken(text[idx:idx+size]))
			idx += size
			spaceStart = idx
		default:
			if start < 0 {
				start = idx
			}
			idx++
		}
	}

	flush(len(text))

	return
}

// Len returns the number of words.
func (toks Tokens) Len() int {
	return len(toks.Words)
}

// Word returns the case folded text of word n.
func (toks Tokens) Word(n int) string {
	return strings.ToLower(toks.Words[n].Text)
}

// Reg returns the register of word n.
func (toks Tokens) Reg(n int) Register {
	return toks.Words[n].Register
}

// Lit returns the literal of word n.
func (toks Tokens) Lit(n int) Literal {
	return toks.Words[n].Literal
}

// Match returns true if the words have the shape of pattern. Each pattern
// entry is either a TokenClass or a keyword string compared, case
// insensitively, against a TOKEN_SYMBOL word.
func (toks Tokens) Match(pattern ...any) bool {
	if len(toks.Words) != len(pattern) {
		return false
	}

	for n, want := range pattern {
		tok := toks.Words[n]
		switch want := want.(type) {
		case TokenClass:
			if tok.Class != want {
				return false
			}
		case string:
			if tok.Class != TOKEN_SYMBOL || !strings.EqualFold(tok.Text, want) {
				return false
			}
		default:
			return false
		}
	}

	return true
}
