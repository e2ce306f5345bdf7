package bits

import (
	"cmp"
	"maps"
	"slices"

	"gen-bits-header/internal/genxml"
)

// Registry aggregates fields from every source of a run. Fields are never
// merged or deduplicated; each Add is one entry in both indexes.
type Registry struct {
	byGen      map[genxml.Generation][]Field
	byBasename map[string][]Field
	count      int
}

// GenerationGroup is every field declared at one generation, in the order
// they were added.
type GenerationGroup struct {
	Gen    genxml.Generation
	Fields []Field
}

// BasenameGroup is every generation's declaration of one field, newest
// generation first.
type BasenameGroup struct {
	Basename string
	Fields   []Field
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		byGen:      make(map[genxml.Generation][]Field),
		byBasename: make(map[string][]Field),
	}
}

// Add records f under its generation and its basename.
func (r *Registry) Add(f Field) {
	r.byGen[f.Gen] = append(r.byGen[f.Gen], f)

	basename := f.TokenBasename()
	r.byBasename[basename] = append(r.byBasename[basename], f)

	r.count++
}

// Len returns the number of fields added.
func (r *Registry) Len() int {
	return r.count
}

// ByGeneration returns the generation index, newest generation first.
func (r *Registry) ByGeneration() []GenerationGroup {
	gens := slices.SortedFunc(maps.Keys(r.byGen), func(a, b genxml.Generation) int {
		return cmp.Compare(b, a)
	})

	groups := make([]GenerationGroup, 0, len(gens))
	for _, g := range gens {
		groups = append(groups, GenerationGroup{Gen: g, Fields: slices.Clone(r.byGen[g])})
	}

	return groups
}

// ByBasename returns the basename index in ascending basename order. Within
// a group, fields run from newest generation to oldest; fields sharing a
// generation keep the order they were added.
func (r *Registry) ByBasename() []BasenameGroup {
	names := slices.Sorted(maps.Keys(r.byBasename))

	groups := make([]BasenameGroup, 0, len(names))
	for _, name := range names {
		fields := slices.Clone(r.byBasename[name])
		slices.SortStableFunc(fields, func(a, b Field) int {
			return cmp.Compare(b.Gen, a.Gen)
		})

		groups = append(groups, BasenameGroup{Basename: name, Fields: fields})
	}

	return groups
}

// Duplicates returns, in ascending order, the token names that were added
// more than once.
func (r *Registry) Duplicates() []string {
	seen := make(map[string]int)

	for _, fields := range r.byGen {
		for _, f := range fields {
			seen[f.TokenName()]++
		}
	}

	var dups []string

	for token, n := range seen {
		if n > 1 {
			dups = append(dups, token)
		}
	}

	slices.Sort(dups)

	return dups
}
