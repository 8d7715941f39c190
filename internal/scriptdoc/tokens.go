package scriptdoc

import "strings"

// TokenStyle names one of the two documentation marker conventions.
type TokenStyle int

const (
	// StyleRuby uses ruby block comments: =begin ... =end.
	StyleRuby TokenStyle = iota
	// StyleLuaLongBracket uses lua long-bracket strings: [====[ ... ]====].
	StyleLuaLongBracket
)

const (
	rubyBegin        = "=begin"
	rubyEnd          = "=end"
	longBracketOpen  = "[====["
	longBracketClose = "]====]"
)

// TokenPair delimits the documentation block inside a script.
type TokenPair struct {
	Start string
	End   string
}

// Pair returns the start/end markers for the style.
func (s TokenStyle) Pair() TokenPair {
	if s == StyleLuaLongBracket {
		return TokenPair{Start: longBracketOpen, End: longBracketClose}
	}
	return TokenPair{Start: rubyBegin, End: rubyEnd}
}

func (s TokenStyle) String() string {
	switch s {
	case StyleRuby:
		return "ruby"
	case StyleLuaLongBracket:
		return "lua-long-bracket"
	default:
		return "unknown"
	}
}

// SelectStyle picks the marker convention for a file. Lua scripts default to the
// ruby markers (legacy third-party scripts use them) unless a long-bracket opener
// appears on any line. Ruby scripts always use the ruby markers.
func SelectStyle(ext string, lines []string) TokenStyle {
	if ext != extLua {
		return StyleRuby
	}
	for _, line := range lines {
		if strings.Contains(line, longBracketOpen) {
			return StyleLuaLongBracket
		}
	}
	return StyleRuby
}
