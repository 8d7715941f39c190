package scriptdoc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSelectStyle(t *testing.T) {
	withBracket := []string{"-- a script", "local doc = [====[", "doc", "]====]"}
	plain := []string{"foo", "===", "=begin", "doc", "=end"}

	tests := []struct {
		name  string
		ext   string
		lines []string
		want  TokenStyle
	}{
		{"lua with long bracket", ".lua", withBracket, StyleLuaLongBracket},
		{"lua without long bracket", ".lua", plain, StyleRuby},
		{"ruby ignores long bracket", ".rb", withBracket, StyleRuby},
		{"ruby plain", ".rb", plain, StyleRuby},
		{"shorter bracket does not count", ".lua", []string{"x = [==[ y ]==]"}, StyleRuby},
		{"no lines", ".lua", nil, StyleRuby},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, SelectStyle(tc.ext, tc.lines))
		})
	}
}

func TestTokenStylePair(t *testing.T) {
	assert.Equal(t, TokenPair{Start: "=begin", End: "=end"}, StyleRuby.Pair())
	assert.Equal(t, TokenPair{Start: "[====[", End: "]====]"}, StyleLuaLongBracket.Pair())
	assert.Equal(t, "ruby", StyleRuby.String())
	assert.Equal(t, "lua-long-bracket", StyleLuaLongBracket.String())
	assert.Equal(t, "unknown", TokenStyle(42).String())
}
