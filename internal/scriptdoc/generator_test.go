package scriptdoc

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/scriptdoc/internal/config"
	serrors "git.home.luguber.info/inful/scriptdoc/internal/scriptdoc/errors"
)

func testConfig(root, out string) *config.Config {
	cfg := config.Default()
	cfg.Scripts.Root = root
	cfg.Output.Directory = out
	return cfg
}

func TestGenerator_Generate(t *testing.T) {
	root := writeTree(t, map[string]string{
		"quicksave.lua":       "quicksave\n=========\n=begin\nSaves.\n=end\n",
		"gui/foo.lua":         "gui/foo\n=======\n=begin\nFoo.\n=end\n",
		"3rdparty/legacy.lua": "legacy\n======\n",
		"gui/about.txt":       "blurb\n",
	})
	out := filepath.Join(t.TempDir(), "_auto")

	res, err := NewGenerator(testConfig(root, out)).Generate(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, res.Entries)
	assert.Equal(t, 1, res.Counts[CategoryBase])
	assert.Equal(t, 1, res.Counts[CategoryGUI])
	assert.Equal(t, 0, res.Counts[CategoryModtools])
	assert.Len(t, res.Files, 5)

	base, err := os.ReadFile(filepath.Join(out, "base.rst"))
	require.NoError(t, err)
	assert.Contains(t, string(base), ".. include:: /scripts/quicksave.lua")
}

func TestGenerator_UnknownCategoryWritesNothing(t *testing.T) {
	root := writeTree(t, map[string]string{
		"gui/foo.lua":     "gui/foo\n=======\n",
		"plugins/bar.lua": "bar\n===\n",
	})
	out := filepath.Join(t.TempDir(), "_auto")

	_, err := NewGenerator(testConfig(root, out)).Generate(context.Background())
	require.ErrorIs(t, err, serrors.ErrUnknownCategory)
	assert.NoDirExists(t, out)
}

func TestGenerator_CancelledContext(t *testing.T) {
	root := writeTree(t, map[string]string{"a.lua": "a\n=\n"})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewGenerator(testConfig(root, t.TempDir())).Generate(ctx)
	require.ErrorIs(t, err, context.Canceled)
}

func TestGenerator_Discover(t *testing.T) {
	root := writeTree(t, map[string]string{
		"devel/x.rb": "devel/x\n=======\n",
	})

	groups, err := NewGenerator(testConfig(root, t.TempDir())).Discover(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"devel/x"}, commands(groups[CategoryDevel]))
}

func TestGenerator_LogsFailedStage(t *testing.T) {
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { slog.SetDefault(prev) })

	root := writeTree(t, map[string]string{"plugins/bar.lua": "bar\n===\n"})
	_, err := NewGenerator(testConfig(root, t.TempDir())).Generate(context.Background())
	require.Error(t, err)
	assert.Contains(t, buf.String(), "stage=generate")
	assert.Contains(t, buf.String(), "stage=group")
}
