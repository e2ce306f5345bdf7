package config

import (
	"fmt"
	"regexp"

	"gen-bits-header/internal/bits"
	"gen-bits-header/internal/diagnostic"
)

// CurrentVersion is the only config version understood.
const CurrentVersion = "1"

// File is the YAML configuration.
type File struct {
	Version string `yaml:"version"`
	// Guard overrides the include guard derived from the output name.
	Guard string `yaml:"guard,omitempty"`
	// Copyright replaces the first line of the license preamble.
	Copyright string `yaml:"copyright,omitempty"`
	// Exclude lists extra container name patterns to skip.
	Exclude []string `yaml:"exclude,omitempty"`
	Aliases []Alias  `yaml:"aliases,omitempty"`
}

// Alias declares that Alias should also be emitted wherever Field is.
type Alias struct {
	Field   string `yaml:"field"`
	Alias   string `yaml:"alias"`
	Comment string `yaml:"comment,omitempty"`
}

// Default returns the configuration used when no file is given.
func Default() *File {
	return &File{Version: CurrentVersion}
}

// Validate checks the file and reports every problem at once.
func (f *File) Validate() *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}

	if f.Version != CurrentVersion {
		res.AddError("unknown_version", fmt.Sprintf("unsupported config version %q", f.Version), "", "version")
	}

	for i, pattern := range f.Exclude {
		if _, err := regexp.Compile(pattern); err != nil {
			res.AddError("bad_exclude", err.Error(), "", fmt.Sprintf("exclude[%d]", i))
		}
	}

	for i, a := range f.Aliases {
		subject := fmt.Sprintf("aliases[%d]", i)

		switch {
		case a.Field == "" || a.Alias == "":
			res.AddError("empty_alias", "alias needs both field and alias names", "", subject)
		case !bits.IsPitchField(a.Field):
			res.AddError("alias_not_pitch", fmt.Sprintf("field %q is not a surface pitch field", a.Field), "", subject)
		case !bits.IsPitchField(a.Alias):
			res.AddError("alias_not_pitch", fmt.Sprintf("alias %q is not a surface pitch field", a.Alias), "", subject)
		case a.Field == a.Alias:
			res.AddError("alias_of_itself", fmt.Sprintf("%q aliases itself", a.Field), "", subject)
		}
	}

	return res
}

// Rules returns the built-in extraction rules extended by the file.
func (f *File) Rules() (bits.Rules, error) {
	if err := f.Validate().Error(); err != nil {
		return bits.Rules{}, fmt.Errorf("invalid config: %w", err)
	}

	rules := bits.DefaultRules()

	for _, pattern := range f.Exclude {
		rules.Exclude = append(rules.Exclude, regexp.MustCompile(pattern))
	}

	for _, a := range f.Aliases {
		rule := bits.AliasRule{Field: a.Field, Alias: a.Alias, Comment: a.Comment}
		if !hasAlias(rules.Aliases, rule) {
			rules.Aliases = append(rules.Aliases, rule)
		}
	}

	return rules, nil
}

func hasAlias(rules []bits.AliasRule, rule bits.AliasRule) bool {
	for _, r := range rules {
		if r.Field == rule.Field && r.Alias == rule.Alias {
			return true
		}
	}

	return false
}
