package io

import (
	"errors"
	"fmt"
	"io"
)

// Keyboard reads bytes from a stream. When no input is available it reads
// as zero, like an idle keyboard.
type Keyboard struct {
	Reader io.Reader
}

var _ Input = (*Keyboard)(nil)

// Input returns the next byte of input, or zero at end of stream.
func (kb *Keyboard) Input() (value byte, err error) {
	if kb.Reader == nil {
		return
	}

	var one [1]byte
	n, err := kb.Reader.Read(one[:])
	if n == 1 {
		value = one[0]
		err = nil
		return
	}
	if errors.Is(err, io.EOF) {
		err = nil
	}

	return
}

// AsciiPrinter writes each byte as a character.
type AsciiPrinter struct {
	Writer io.Writer
}

var _ Output = (*AsciiPrinter)(nil)

func (ap *AsciiPrinter) Output(value byte) (err error) {
	_, err = ap.Writer.Write([]byte{value})
	return
}

// IntegerPrinter writes each byte as an unsigned decimal number, with no
// separator.
type IntegerPrinter struct {
	Writer io.Writer
}

var _ Output = (*IntegerPrinter)(nil)

func (ip *IntegerPrinter) Output(value byte) (err error) {
	_, err = fmt.Fprintf(ip.Writer, "%d", value)
	return
}
