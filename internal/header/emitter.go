package header

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"gen-bits-header/internal/bits"
)

// StdoutName is the logical output name used to derive the guard when the
// header goes to standard output.
const StdoutName = "stdout"

// Emitter renders headers.
type Emitter struct {
	// Guard is the include guard macro.
	Guard string
	// Copyright is the first line of the license preamble.
	Copyright string
}

// NewEmitter creates an Emitter with the given guard and the default
// copyright line.
func NewEmitter(guard string) *Emitter {
	return &Emitter{Guard: guard, Copyright: DefaultCopyright}
}

type accessor struct {
	Name   string
	Fields []bits.Field
}

type templateData struct {
	Guard       string
	Copyright   string
	Generations []bits.GenerationGroup
	Accessors   []accessor
}

// Render returns the complete header for reg.
func (e *Emitter) Render(reg *bits.Registry) ([]byte, error) {
	if e.Guard == "" {
		return nil, errors.New("include guard is empty")
	}

	data := templateData{
		Guard:       e.Guard,
		Copyright:   e.Copyright,
		Generations: reg.ByGeneration(),
	}

	for _, g := range reg.ByBasename() {
		data.Accessors = append(data.Accessors, accessor{
			Name:   bits.SafeToken(g.Basename),
			Fields: g.Fields,
		})
	}

	var buf bytes.Buffer
	if err := headerTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}

	return buf.Bytes(), nil
}

// Emit renders reg and writes it to w in one call, so a render failure
// leaves w untouched.
func (e *Emitter) Emit(reg *bits.Registry, w io.Writer) error {
	content, err := e.Render(reg)
	if err != nil {
		return err
	}

	if _, err := w.Write(content); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	return nil
}

func macroLine(f bits.Field) string {
	line := fmt.Sprintf("#define %-*s %2d", macroWidth, f.TokenName(), f.Bits())
	if f.Comment != "" {
		line += " /* " + f.Comment + " */"
	}

	return line
}

// GuardFromName derives an include guard from an output file name:
// "gen_pitch_bits.h" becomes "GEN_PITCH_BITS_H".
func GuardFromName(name string) string {
	base := strings.ToUpper(filepath.Base(name))

	var b strings.Builder

	b.Grow(len(base) + 1)

	for i, r := range base {
		switch {
		case r >= 'A' && r <= 'Z', r == '_':
		case r >= '0' && r <= '9':
			if i == 0 {
				b.WriteByte('_')
			}
		default:
			r = '_'
		}

		b.WriteRune(r)
	}

	return b.String()
}
