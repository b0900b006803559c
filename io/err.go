package io

import (
	"errors"

	"github.com/ezrec/minicomp/translate"
)

var f = translate.From

var (
	// Device errors
	ErrHalt = errors.New(f("halt requested"))
)
