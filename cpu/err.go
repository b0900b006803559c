package cpu

import (
	"errors"

	"github.com/ezrec/minicomp/translate"
)

var f = translate.From

var (
	// Cpu errors
	ErrHalted    = errors.New(f("cpu halted"))
	ErrImageSize = errors.New(f("image larger than ram"))
)

// ErrDevice is a failure of the device at an I/O address.
type ErrDevice struct {
	Addr byte
	Err  error
}

func (err *ErrDevice) Error() string {
	return f("device 0x%02x %v", err.Addr, err.Err)
}

func (err *ErrDevice) Unwrap() error {
	return err.Err
}
