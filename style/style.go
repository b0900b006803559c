// Package style holds the rendering options shared by the minicomp
// formatter and assembler, and loads them from configuration files.
package style

// Dialect selects the surface syntax used when rendering instructions.
type Dialect string

const (
	DIALECT_C   = Dialect("c")   // Operator form, e.g. `ra += rb`.
	DIALECT_ASM = Dialect("asm") // Mnemonic form, e.g. `add rb ra`.
)

// Valid returns true for a known dialect.
func (d Dialect) Valid() bool {
	return d == DIALECT_C || d == DIALECT_ASM
}

// Style configures how parsed source is rendered back to text.
// The zero value hides everything and is not useful; start from Default().
type Style struct {
	IncludeComments   bool    `json:"include_comments"`    // Emit trailing comments.
	IncludeIndent     bool    `json:"include_indent"`      // Emit leading indentation.
	IncludeRegSubname bool    `json:"include_reg_subname"` // Emit register annotations (`ra-count`).
	AsmStyle          Dialect `json:"asm_style"`           // Surface dialect.
}

// Default returns the style used when no configuration is supplied.
func Default() Style {
	return Style{
		IncludeComments:   true,
		IncludeIndent:     true,
		IncludeRegSubname: true,
		AsmStyle:          DIALECT_C,
	}
}

// C reports whether the C-style operator dialect is active.
func (st Style) C() bool {
	return st.AsmStyle != DIALECT_ASM
}
