package scriptdoc

import (
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var updateGolden = flag.Bool("update-golden", false, "update golden test files")

func verifyGolden(t *testing.T, name string, actual []byte) {
	t.Helper()
	goldenPath := filepath.Join("testdata", name)

	if *updateGolden {
		require.NoError(t, os.WriteFile(goldenPath, actual, 0o600))
		t.Logf("Updated golden file: %s", goldenPath)
		return
	}

	// #nosec G304 -- test utility reading from testdata
	expected, err := os.ReadFile(goldenPath)
	require.NoError(t, err, "failed to read golden file")
	assert.Equal(t, string(expected), string(actual))
}

func TestSortEntries(t *testing.T) {
	input := []Entry{
		{Command: "zeta", IncludePath: "a/b"},
		{Command: "alpha", IncludePath: "a/b"},
		{Command: "alpha", IncludePath: "a/a"},
	}

	sorted := SortEntries(input)

	got := make([]string, 0, len(sorted))
	for _, e := range sorted {
		got = append(got, e.Command+"/"+e.IncludePath)
	}
	assert.Equal(t, []string{"alpha/a/a", "alpha/a/b", "zeta/a/b"}, got)
	assert.Equal(t, "zeta", input[0].Command, "input must not be reordered")
}

func TestSortEntries_Ordinal(t *testing.T) {
	sorted := SortEntries([]Entry{
		{Command: "gui/b"},
		{Command: "Gui/z"},
		{Command: "gui/B"},
	})
	// Upper case sorts before lower case in byte order.
	assert.Equal(t, []string{"Gui/z", "gui/B", "gui/b"}, commands(sorted))
}

func TestRender_Golden(t *testing.T) {
	entries := []Entry{
		{Command: "zeta", IncludePath: "gui/zeta.lua", Tokens: StyleRuby.Pair()},
		{Command: "alpha", IncludePath: "gui/alpha.lua", Tokens: StyleLuaLongBracket.Pair()},
	}

	verifyGolden(t, "gui.rst.golden", Render(CategoryGUI, entries, RenderOptions{IncludeRoot: "scripts"}))
}

func TestRender_EmptyCategory(t *testing.T) {
	verifyGolden(t, "base_empty.rst.golden", Render(CategoryBase, nil, RenderOptions{IncludeRoot: "scripts/"}))
}

func TestRender_Deterministic(t *testing.T) {
	a := []Entry{
		{Command: "b", IncludePath: "fix/b.lua", Tokens: StyleRuby.Pair()},
		{Command: "a", IncludePath: "fix/a.lua", Tokens: StyleRuby.Pair()},
	}
	b := []Entry{a[1], a[0]}

	opts := RenderOptions{IncludeRoot: "scripts"}
	assert.Equal(t, Render(CategoryFix, a, opts), Render(CategoryFix, b, opts))
}

func TestIncludeTarget(t *testing.T) {
	assert.Equal(t, "/gui/x.lua", includeTarget("", "gui/x.lua"))
	assert.Equal(t, "/scripts/gui/x.lua", includeTarget("scripts", "gui/x.lua"))
	assert.Equal(t, "/scripts/gui/x.lua", includeTarget("/scripts/", "gui/x.lua"))
	assert.Equal(t, "/lib/scripts/x.rb", includeTarget("lib/scripts", "x.rb"))
}
