package style

import (
	"errors"

	"github.com/ezrec/minicomp/translate"
)

var f = translate.From

var (
	ErrOptionType = errors.New(f("option has the wrong type"))
)

// ErrOptionUnknown is returned for a configuration key that is not a style option.
type ErrOptionUnknown string

func (err ErrOptionUnknown) Error() string {
	return f("unknown style option '%v'", string(err))
}

// ErrDialect is returned for an unsupported asm_style value.
type ErrDialect string

func (err ErrDialect) Error() string {
	return f("asm_style '%v' is not one of \"c\" or \"asm\"", string(err))
}

// ErrConfig locates a configuration error in a file.
type ErrConfig struct {
	Path string
	Err  error
}

func (err *ErrConfig) Error() string {
	return f("%v: %v", err.Path, err.Err)
}

func (err *ErrConfig) Unwrap() error {
	return err.Err
}
