package scriptdoc

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrite_CreatesOutputAndAllPages(t *testing.T) {
	out := filepath.Join(t.TempDir(), "docs", "_auto")
	groups := NewGroups()
	groups[CategoryGUI] = []Entry{{Command: "gui/foo", IncludePath: "gui/foo.lua", Tokens: StyleRuby.Pair()}}

	files, err := Write(out, groups, RenderOptions{IncludeRoot: "scripts"})
	require.NoError(t, err)

	require.Len(t, files, len(Categories()))
	for i, c := range Categories() {
		assert.Equal(t, filepath.Join(out, c.FileName()), files[i])
		assert.FileExists(t, files[i])
	}

	data, err := os.ReadFile(filepath.Join(out, "gui.rst"))
	require.NoError(t, err)
	assert.Contains(t, string(data), ".. _gui/foo:")
	assert.Contains(t, string(data), ".. include:: /scripts/gui/foo.lua")
}

func TestWrite_OverwritesAndIsIdempotent(t *testing.T) {
	out := t.TempDir()
	stale := filepath.Join(out, "fix.rst")
	require.NoError(t, os.WriteFile(stale, []byte("stale content that is much longer than the new page\n\n\n\n\n\n\n\n\n\n\n\n\n\n\n\n\n\n\n\n"), 0o644))

	groups := NewGroups()
	groups[CategoryFix] = []Entry{{Command: "fix/a", IncludePath: "fix/a.lua", Tokens: StyleRuby.Pair()}}
	opts := RenderOptions{IncludeRoot: "scripts"}

	_, err := Write(out, groups, opts)
	require.NoError(t, err)
	first, err := os.ReadFile(stale)
	require.NoError(t, err)
	assert.NotContains(t, string(first), "stale")
	assert.Equal(t, Render(CategoryFix, groups[CategoryFix], opts), first)

	_, err = Write(out, groups, opts)
	require.NoError(t, err)
	second, err := os.ReadFile(stale)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
