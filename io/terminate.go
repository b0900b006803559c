package io

import (
	"math/rand/v2"
)

// Terminator stops the CPU on any write.
type Terminator struct{}

var _ Output = Terminator{}

func (Terminator) Output(value byte) error {
	return ErrHalt
}

// Random reads as a random byte.
type Random struct {
	Rand *rand.Rand // Source of randomness, or nil for the global source.
}

var _ Input = (*Random)(nil)

func (rnd *Random) Input() (value byte, err error) {
	if rnd.Rand == nil {
		value = byte(rand.Uint32())
		return
	}

	value = byte(rnd.Rand.Uint32())
	return
}
