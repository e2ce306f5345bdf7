package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"gen-bits-header/internal/bits"
)

// LoadFile loads and parses a YAML config file from the given path.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return f, nil
}

// Parse parses YAML data into a File.
func Parse(data []byte) (*File, error) {
	var f File

	err := yaml.Unmarshal(data, &f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	applyDefaults(&f)

	return &f, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(f *File) {
	if f.Version == "" {
		f.Version = CurrentVersion
	}

	for i := range f.Aliases {
		a := &f.Aliases[i]
		if a.Comment == "" && a.Field != "" {
			a.Comment = "alias of " + bits.SafeToken(a.Field)
		}
	}
}
