package genxml

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrMalformed is returned for descriptor input that cannot be used at all.
var ErrMalformed = errors.New("malformed genxml")

// Generation is a hardware generation in tenths: 80 is gen 8, 75 is gen 7.5.
type Generation int

// truncEpsilon keeps values like 7.3*10 from truncating to 72.
const truncEpsilon = 1e-9

// NewGeneration encodes a numeric generation. Values below 10 are taken as
// whole generations and scaled by ten; larger values are already in tenths.
func NewGeneration(v float64) (Generation, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return 0, fmt.Errorf("%w: generation %v is not a positive number", ErrMalformed, v)
	}

	if v < 10 {
		v *= 10
	}

	tenths := int(math.Floor(v + truncEpsilon))
	if tenths <= 0 {
		return 0, fmt.Errorf("%w: generation %v encodes to %d", ErrMalformed, v, tenths)
	}

	return Generation(tenths), nil
}

// ParseGeneration encodes a generation given as text, e.g. "8" or "7.5".
func ParseGeneration(s string) (Generation, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: generation %q: %w", ErrMalformed, s, err)
	}

	return NewGeneration(v)
}

// Tenths returns the raw encoding.
func (g Generation) Tenths() int {
	return int(g)
}

func (g Generation) label(sep string) string {
	whole, frac := int(g)/10, int(g)%10
	if frac == 0 {
		return strconv.Itoa(whole)
	}

	return strconv.Itoa(whole) + sep + strconv.Itoa(frac)
}

// String returns the generation the way hardware docs spell it: "8", "7.5".
func (g Generation) String() string {
	return g.label(".")
}

// Prefix returns token prefixed with the generation's C spelling, e.g.
// "GEN8_token" or "GEN7_5_token". A single leading underscore on token is
// dropped so sanitized names like "_3DSTATE" don't double up.
func (g Generation) Prefix(token string) string {
	token = strings.TrimPrefix(token, "_")

	return "GEN" + g.label("_") + "_" + token
}
