package bits

import (
	"fmt"
	"regexp"
	"strconv"

	"gen-bits-header/internal/diagnostic"
	"gen-bits-header/internal/genxml"
)

// Streamout containers describe an unrelated feature and never carry
// fields we emit.
var defaultExclude = regexp.MustCompile(`STREAMOUT|3DSTATE_SO`)

// AliasRule adds a second field named Alias wherever a field named Field is
// declared, with the same generation, container and bits.
type AliasRule struct {
	Field   string
	Alias   string
	Comment string
}

// MCSAlias covers older generations, where the auxiliary surface pitch is
// declared under its MCS name only.
var MCSAlias = AliasRule{
	Field:   "MCS Surface Pitch",
	Alias:   "Auxiliary Surface Pitch",
	Comment: "alias of MCSSurfacePitch",
}

// Rules controls which containers are skipped and which aliases are added.
type Rules struct {
	Exclude []*regexp.Regexp
	Aliases []AliasRule
}

// DefaultRules returns the built-in exclusion and alias rules.
func DefaultRules() Rules {
	return Rules{
		Exclude: []*regexp.Regexp{defaultExclude},
		Aliases: []AliasRule{MCSAlias},
	}
}

// Extractor pulls surface pitch fields out of genxml documents.
type Extractor struct {
	rules Rules
}

// NewExtractor creates an Extractor applying rules.
func NewExtractor(rules Rules) *Extractor {
	return &Extractor{rules: rules}
}

// Extract adds every matching field of doc to reg. Nothing is added when an
// error is returned.
func (e *Extractor) Extract(doc *genxml.Document, reg *Registry) (diagnostic.Diagnostics, error) {
	var (
		diags  diagnostic.Diagnostics
		fields []Field
	)

	for _, c := range doc.Containers {
		if e.excluded(c.Name) {
			diags.AddInfo("container_excluded",
				fmt.Sprintf("%s skipped by exclusion rules", c.Kind), doc.Source, c.Name)

			continue
		}

		container := SafeToken(c.Name)

		for _, raw := range c.Fields {
			if raw.Name == "" || !IsPitchField(raw.Name) {
				continue
			}

			start, end, err := parseBits(raw)
			if err != nil {
				return diags, fmt.Errorf("%s: %s %s: field %q (line %d): %w",
					sourceName(doc), c.Kind, c.Name, raw.Name, raw.Line, err)
			}

			f := Field{
				Gen:       doc.Gen,
				Container: container,
				Name:      raw.Name,
				Start:     start,
				End:       end,
			}
			fields = append(fields, f)

			for _, a := range e.rules.Aliases {
				if raw.Name != a.Field {
					continue
				}

				alias := f
				alias.Name = a.Alias
				alias.Comment = a.Comment
				fields = append(fields, alias)
			}
		}
	}

	for _, f := range fields {
		reg.Add(f)
	}

	return diags, nil
}

func (e *Extractor) excluded(container string) bool {
	for _, re := range e.rules.Exclude {
		if re.MatchString(container) {
			return true
		}
	}

	return false
}

func parseBits(f genxml.Field) (int, int, error) {
	start, err := strconv.Atoi(f.Start)
	if err != nil || start < 0 {
		return 0, 0, fmt.Errorf("%w: start %q", ErrInvalidBits, f.Start)
	}

	end, err := strconv.Atoi(f.End)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: end %q", ErrInvalidBits, f.End)
	}

	if end < start {
		return 0, 0, fmt.Errorf("%w: end %d before start %d", ErrInvalidBits, end, start)
	}

	return start, end, nil
}

func sourceName(doc *genxml.Document) string {
	if doc.Source != "" {
		return doc.Source
	}

	return "<genxml gen=" + doc.Gen.String() + ">"
}
