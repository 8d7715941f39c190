package scriptdoc

import "strings"

const (
	extLua  = ".lua"
	extRuby = ".rb"
)

// Entry is one documented script found during a scan.
type Entry struct {
	// Command is the script name declared above the title underline.
	Command string
	// IncludePath is the slash-separated path relative to the scripts root.
	IncludePath string
	// Tokens delimit the documentation block in the file.
	Tokens TokenPair
}

// Category returns the category the entry belongs to. The second return value
// is false when the first path segment is not a known category.
func (e Entry) Category() (Category, bool) {
	c, _, ok := categoryFor(e.IncludePath)
	return c, ok
}

func isScriptFile(ext string) bool {
	return ext == extLua || ext == extRuby
}

// normalizeIncludePath turns an OS relative path into the include form.
func normalizeIncludePath(rel string) string {
	p := strings.ReplaceAll(rel, "\\", "/")
	for strings.HasPrefix(p, "../") {
		p = strings.TrimPrefix(p, "../")
	}
	if p == "." {
		return ""
	}
	return strings.TrimPrefix(p, "./")
}
