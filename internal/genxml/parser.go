package genxml

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

const (
	rootElement  = "genxml"
	fieldElement = "field"
)

// Document is one parsed descriptor source.
type Document struct {
	// Source is the file the document was read from, if any.
	Source string
	// Name is the platform name from the root element (e.g. "BDW").
	Name string
	Gen  Generation
	// Containers in declaration order.
	Containers []Container
}

// Container is an instruction, struct or register and the fields declared
// anywhere beneath it.
type Container struct {
	Kind   ContainerKind
	Name   string
	Fields []Field
}

// Field is a field element with its attributes as written.
type Field struct {
	Name  string
	Start string
	End   string
	// Line is where the field's start tag ends, for error messages.
	Line int
}

// LoadFile reads and parses the genxml file at path.
func LoadFile(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read genxml file %s: %w", path, err)
	}
	defer f.Close()

	doc, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse genxml file %s: %w", path, err)
	}

	doc.Source = path

	return doc, nil
}

// Parse reads one genxml document from r.
func Parse(r io.Reader) (*Document, error) {
	dec := xml.NewDecoder(r)

	var (
		doc    *Document
		cur    *Container
		closed bool
	)

	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			name := t.Name.Local
			if closed {
				return nil, errContentAfterRoot(dec)
			}

			if name == rootElement {
				if doc != nil {
					return nil, fmt.Errorf("%w: nested <%s> element", ErrMalformed, rootElement)
				}

				doc, err = startDocument(t)
				if err != nil {
					return nil, err
				}

				continue
			}

			if kind, ok := ContainerKindOf(name); ok {
				if doc == nil {
					return nil, fmt.Errorf("%w: <%s> outside <%s>", ErrMalformed, name, rootElement)
				}

				if cur != nil {
					return nil, fmt.Errorf("%w: <%s> nested inside %s %q", ErrMalformed, name, cur.Kind, cur.Name)
				}

				cname := attr(t, "name")
				if cname == "" {
					line, _ := dec.InputPos()
					return nil, fmt.Errorf("%w: line %d: <%s> without a name", ErrMalformed, line, name)
				}

				cur = &Container{Kind: kind, Name: cname}

				continue
			}

			if name == fieldElement && cur != nil {
				line, _ := dec.InputPos()
				cur.Fields = append(cur.Fields, Field{
					Name:  attr(t, "name"),
					Start: attr(t, "start"),
					End:   attr(t, "end"),
					Line:  line,
				})
			}

		case xml.EndElement:
			if t.Name.Local == rootElement && cur == nil {
				closed = true
				continue
			}

			if _, ok := ContainerKindOf(t.Name.Local); ok && cur != nil {
				doc.Containers = append(doc.Containers, *cur)
				cur = nil
			}

		case xml.CharData:
			if closed && len(strings.TrimSpace(string(t))) > 0 {
				return nil, errContentAfterRoot(dec)
			}
		}
	}

	if doc == nil {
		return nil, fmt.Errorf("%w: missing <%s> root element", ErrMalformed, rootElement)
	}

	return doc, nil
}

func errContentAfterRoot(dec *xml.Decoder) error {
	line, _ := dec.InputPos()
	return fmt.Errorf("%w: line %d: content after </%s>", ErrMalformed, line, rootElement)
}

func startDocument(t xml.StartElement) (*Document, error) {
	raw := attr(t, "gen")
	if raw == "" {
		return nil, fmt.Errorf("%w: <%s> has no gen attribute", ErrMalformed, rootElement)
	}

	gen, err := ParseGeneration(raw)
	if err != nil {
		return nil, err
	}

	return &Document{Name: attr(t, "name"), Gen: gen}, nil
}

func attr(t xml.StartElement, name string) string {
	for _, a := range t.Attr {
		if a.Name.Local == name {
			return a.Value
		}
	}

	return ""
}
