package asm

import (
	"errors"

	"github.com/ezrec/minicomp/translate"
)

var f = translate.From

var (
	ErrSyntax = errors.New(f("invalid line"))
)

// ErrOverflow is a value or image offset outside of the 256 byte address space.
type ErrOverflow int

func (err ErrOverflow) Error() string {
	return f("value %d out of range 0..255", int(err))
}

func (err ErrOverflow) Is(target error) (ok bool) {
	_, ok = target.(ErrOverflow)
	return
}

// ErrLabelMissing is a label reference that was never bound.
type ErrLabelMissing string

func (err ErrLabelMissing) Error() string {
	return f("label %v missing", string(err))
}

func (err ErrLabelMissing) Is(target error) (ok bool) {
	_, ok = target.(ErrLabelMissing)
	return
}

// ErrLabelRange is a label bound past the end of the address space.
type ErrLabelRange struct {
	Label  string
	Offset int
}

func (err ErrLabelRange) Error() string {
	return f("label %v points at offset %d >= 256", err.Label, err.Offset)
}

func (err ErrLabelRange) Is(target error) (ok bool) {
	_, ok = target.(ErrLabelRange)
	return
}

// ErrPosition is a position pragma that does not agree with the current offset.
type ErrPosition struct {
	Pragma string // Either "pos" or "setpos".
	Want   int    // Offset named by the pragma.
	Have   int    // Offset at the pragma.
}

func (err ErrPosition) Error() string {
	if err.Pragma == "setpos" {
		return f("pragma setpos %d is behind offset %d", err.Want, err.Have)
	}
	return f("pragma pos %d does not match offset %d", err.Want, err.Have)
}

func (err ErrPosition) Is(target error) (ok bool) {
	_, ok = target.(ErrPosition)
	return
}

// ErrLine locates an error on a source line.
type ErrLine struct {
	LineNo int
	Line   string
	Err    error
}

func (err *ErrLine) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err *ErrLine) Unwrap() error {
	return err.Err
}
