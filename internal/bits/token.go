package bits

import "strings"

const (
	pitchSuffix  = "Surface Pitch"
	qpitchSuffix = "Surface QPitch"
	bitsSuffix   = "bits"
)

// SafeToken turns a descriptor name into a C identifier fragment: spaces
// are removed and a leading digit gets an underscore.
func SafeToken(s string) string {
	s = strings.ReplaceAll(s, " ", "")
	if s != "" && s[0] >= '0' && s[0] <= '9' {
		s = "_" + s
	}

	return s
}

// IsPitchField reports whether a field name belongs to the surface pitch
// family. The match is case-sensitive and anchored at the end of the name.
func IsPitchField(name string) bool {
	return strings.HasSuffix(name, pitchSuffix) || strings.HasSuffix(name, qpitchSuffix)
}
