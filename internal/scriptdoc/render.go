package scriptdoc

import (
	"cmp"
	"fmt"
	"path"
	"slices"
	"strings"
)

// RenderOptions controls how include targets are written.
type RenderOptions struct {
	// IncludeRoot is the directory, relative to the documentation source root,
	// that include paths are resolved against (e.g. "scripts").
	IncludeRoot string
}

const directiveTemplate = `.. _%s:

.. include:: %s
   :start-after: %s
   :end-before: %s
`

// SortEntries returns a copy of entries ordered by command, then include path.
func SortEntries(entries []Entry) []Entry {
	sorted := slices.Clone(entries)
	slices.SortFunc(sorted, func(a, b Entry) int {
		if c := cmp.Compare(a.Command, b.Command); c != 0 {
			return c
		}
		return cmp.Compare(a.IncludePath, b.IncludePath)
	})
	return sorted
}

// Render produces the reStructuredText page for one category.
func Render(c Category, entries []Entry, opts RenderOptions) []byte {
	var b strings.Builder
	b.WriteString(renderTitle(c, opts))

	for i, e := range SortEntries(entries) {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(renderDirective(e, opts))
	}
	return []byte(b.String())
}

func renderTitle(c Category, opts RenderOptions) string {
	title := c.Title()
	rule := strings.Repeat("#", len(title))
	return fmt.Sprintf(".. _%s:\n\n%s\n%s\n%s\n\n.. include:: %s\n\n.. contents::\n\n",
		c, rule, title, rule, includeTarget(opts.IncludeRoot, c.AboutPath()))
}

func renderDirective(e Entry, opts RenderOptions) string {
	return fmt.Sprintf(directiveTemplate,
		e.Command,
		includeTarget(opts.IncludeRoot, e.IncludePath),
		e.Tokens.Start,
		e.Tokens.End)
}

// includeTarget builds an absolute (source-root relative) include path.
func includeTarget(root, rel string) string {
	root = strings.Trim(root, "/")
	if root == "" {
		return "/" + rel
	}
	return "/" + path.Join(root, rel)
}
