// Package asm implements the two-pass assembler and source formatter for
// the minicomp 8-bit CPU.
//
// The CPU has four 8-bit general-purpose registers (ra, rb, rc, rd) and a
// 256 byte address space. Every instruction has two equivalent spellings:
// an assembly-style mnemonic form (`add rb ra`) and a C-style operator form
// (`ra += rb`). Source is parsed one line at a time into a Line holding a
// single Instruction; the Assembler lays the lines out to bind labels, then
// encodes them into a byte image. The same parsed lines can be rendered
// back to text in either dialect under a style.Style.
//
// Diagnostics never stop the assembler: every line error from both passes
// is collected in Program.Errors.
package asm
