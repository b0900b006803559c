// Package cpu implements the minicomp 8-bit processor.
//
// The CPU has 256 bytes of RAM, four 8-bit general registers (ra-rd), and
// the internal IR, IAR, MAR, TMP and ACC registers. Every instruction takes
// seven clock cycles: three to fetch and up to three to execute. The flags
// register holds the zero, equal, a-larger and carry results of the last
// ALU operation, and is tested by the conditional jumps.
package cpu
