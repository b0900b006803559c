package emulator

import (
	"errors"

	"github.com/ezrec/minicomp/translate"
)

var f = translate.From

var (
	ErrNoImage   = errors.New(f("program has no image"))
	ErrTickLimit = errors.New(f("tick limit exceeded"))
)

// ErrRuntime indicates the location of a runtime error.
type ErrRuntime struct {
	LineNo int
	Err    error
}

func (err *ErrRuntime) Error() string {
	if err.LineNo == 0 {
		return f("address unknown %v", err.Err)
	}
	return f("line %d %v", err.LineNo, err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}
