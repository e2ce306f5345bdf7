package bits

import (
	"errors"

	"gen-bits-header/internal/genxml"
)

// ErrInvalidBits is returned when a field's bit range is unusable.
var ErrInvalidBits = errors.New("invalid bit range")

// Field is one generation's declaration of a surface pitch field.
type Field struct {
	Gen genxml.Generation
	// Container is the sanitized owning container name.
	Container string
	// Name is the field name as declared, e.g. "MCS Surface Pitch".
	Name string
	// Start and End are inclusive bit positions.
	Start int
	End   int
	// Comment is set on synthesized alias entries only.
	Comment string
}

// Bits returns the field width.
func (f Field) Bits() int {
	return f.End - f.Start + 1
}

// TokenBasename is the generation-independent identity of the field.
func (f Field) TokenBasename() string {
	return SafeToken(f.Container) + "_" + SafeToken(f.Name) + "_" + bitsSuffix
}

// TokenName is the macro name emitted for this generation.
func (f Field) TokenName() string {
	return f.Gen.Prefix(f.TokenBasename())
}
