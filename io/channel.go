// Package io provides the peripherals of the minicomp CPU. Each device sits
// at a fixed I/O address, selected with `outa`, and moves one byte per
// `ind` or `outd`.
package io

// I/O addresses of the standard peripherals.
const (
	ADDR_KEYBOARD        = byte(1)
	ADDR_ASCII_PRINTER   = byte(2)
	ADDR_INTEGER_PRINTER = byte(3)
	ADDR_TERMINATE       = byte(4)
	ADDR_RANDOM          = byte(5)
)

// Input is a device read by `ind`.
type Input interface {
	// Input returns the next byte from the device.
	Input() (value byte, err error)
}

// Output is a device written by `outd`.
type Output interface {
	// Output sends a byte to the device. A device that stops the CPU
	// returns ErrHalt.
	Output(value byte) error
}
