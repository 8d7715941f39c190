package scriptdoc

import (
	"fmt"

	serrors "git.home.luguber.info/inful/scriptdoc/internal/scriptdoc/errors"
)

// Groups partitions entries by category. Every known category has a key, even when empty.
type Groups map[Category][]Entry

// NewGroups returns Groups with an empty bucket for every category.
func NewGroups() Groups {
	g := make(Groups, len(categoryOrder))
	for _, c := range categoryOrder {
		g[c] = []Entry{}
	}
	return g
}

// Group assigns each entry to the category named by the first segment of its
// include path. Paths without a directory go to the base category. An entry under
// an unknown directory is an error: the category set is closed.
func Group(entries []Entry) (Groups, error) {
	groups := NewGroups()
	for _, e := range entries {
		c, segment, ok := categoryFor(e.IncludePath)
		if !ok {
			return nil, fmt.Errorf("%w: %q (script %s at %s)", serrors.ErrUnknownCategory, segment, e.Command, e.IncludePath)
		}
		groups[c] = append(groups[c], e)
	}
	return groups, nil
}

// Total returns the number of entries across all categories.
func (g Groups) Total() int {
	n := 0
	for _, entries := range g {
		n += len(entries)
	}
	return n
}

// Counts returns the number of entries per category.
func (g Groups) Counts() map[Category]int {
	out := make(map[Category]int, len(g))
	for c, entries := range g {
		out[c] = len(entries)
	}
	return out
}
