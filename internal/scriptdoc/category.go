package scriptdoc

import "strings"

// Category classifies a script by the top-level directory it lives under.
type Category string

const (
	CategoryBase     Category = "base"
	CategoryDevel    Category = "devel"
	CategoryFix      Category = "fix"
	CategoryGUI      Category = "gui"
	CategoryModtools Category = "modtools"
)

// categoryOrder is the fixed rendering order of the generated pages.
var categoryOrder = []Category{
	CategoryBase,
	CategoryDevel,
	CategoryFix,
	CategoryGUI,
	CategoryModtools,
}

var categoryTitles = map[Category]string{
	CategoryBase:     "Basic Scripts",
	CategoryDevel:    "Development Scripts",
	CategoryFix:      "Bugfixing Scripts",
	CategoryGUI:      "GUI Scripts",
	CategoryModtools: "Scripts for Modders",
}

// Categories returns every known category in rendering order.
func Categories() []Category {
	out := make([]Category, len(categoryOrder))
	copy(out, categoryOrder)
	return out
}

// ParseCategory maps a directory name to its category.
func ParseCategory(name string) (Category, bool) {
	c := Category(name)
	if _, ok := categoryTitles[c]; ok {
		return c, true
	}
	return "", false
}

// Title returns the page heading for the category.
func (c Category) Title() string {
	return categoryTitles[c]
}

// AboutPath returns the location of the category blurb relative to the include root.
func (c Category) AboutPath() string {
	if c == CategoryBase {
		return "about.txt"
	}
	return string(c) + "/about.txt"
}

// FileName is the name of the generated page for the category.
func (c Category) FileName() string {
	return string(c) + ".rst"
}

// categoryFor derives the category from the first segment of a slash-separated include path.
func categoryFor(includePath string) (Category, string, bool) {
	first, _, found := strings.Cut(includePath, "/")
	if !found {
		return CategoryBase, "", true
	}
	c, ok := ParseCategory(first)
	return c, first, ok
}
