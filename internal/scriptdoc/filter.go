package scriptdoc

import (
	"fmt"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	serrors "git.home.luguber.info/inful/scriptdoc/internal/scriptdoc/errors"
)

// Filter decides whether a path under the scripts root takes part in a scan.
type Filter struct {
	exclude []string
}

// NewFilter constructs a Filter from slash-style glob patterns relative to the scripts root.
// Patterns support ** for any number of directories.
func NewFilter(excludeGlobs []string) (*Filter, error) {
	out := make([]string, 0, len(excludeGlobs))
	for _, g := range excludeGlobs {
		g = strings.TrimSpace(g)
		if g == "" {
			continue
		}
		if !doublestar.ValidatePattern(g) {
			return nil, fmt.Errorf("%w: %s", serrors.ErrInvalidExcludePattern, g)
		}
		out = append(out, g)
	}
	return &Filter{exclude: out}, nil
}

// Excluded reports whether the relative path matches any exclude pattern together
// with the pattern that matched.
func (f *Filter) Excluded(rel string) (bool, string) {
	if f == nil || rel == "" {
		return false, ""
	}
	for _, pat := range f.exclude {
		if ok, _ := doublestar.Match(pat, rel); ok {
			return true, pat
		}
	}
	return false, ""
}
