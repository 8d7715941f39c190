package integration

import (
	"context"
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/scriptdoc/internal/config"
	"git.home.luguber.info/inful/scriptdoc/internal/scriptdoc"
)

var updateGolden = flag.Bool("update-golden", false, "Update golden files")

// TestGolden_ProjectGeneration runs the whole pipeline against the fixture
// project and compares every generated page with testdata/golden.
func TestGolden_ProjectGeneration(t *testing.T) {
	goldenDir, err := filepath.Abs(filepath.Join("testdata", "golden"))
	require.NoError(t, err)
	fixture, err := filepath.Abs(filepath.Join("testdata", "project"))
	require.NoError(t, err)

	dir := setupProject(t, fixture)
	chdir(t, dir)

	cfg, err := config.Load(config.DefaultPath)
	require.NoError(t, err)
	assert.Equal(t, "0.40.24-r3", cfg.Site.Version)

	res, err := scriptdoc.NewGenerator(cfg).Generate(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 5, res.Entries)
	assert.Equal(t, 2, res.Counts[scriptdoc.CategoryDevel])
	assert.Equal(t, 0, res.Counts[scriptdoc.CategoryModtools])

	actual := readTree(t, filepath.Join(dir, "docs", "_auto"))

	if *updateGolden {
		require.NoError(t, os.MkdirAll(goldenDir, 0o750))
		for name, content := range actual {
			require.NoError(t, os.WriteFile(filepath.Join(goldenDir, name), []byte(content), 0o600))
		}
		t.Logf("Updated golden files in %s", goldenDir)
		return
	}

	expected := readTree(t, goldenDir)
	assert.Equal(t, expected, actual)
}

// TestGolden_Idempotent checks that a second run with unchanged inputs
// produces byte-identical pages.
func TestGolden_Idempotent(t *testing.T) {
	fixture, err := filepath.Abs(filepath.Join("testdata", "project"))
	require.NoError(t, err)
	dir := setupProject(t, fixture)
	chdir(t, dir)

	cfg, err := config.Load(config.DefaultPath)
	require.NoError(t, err)
	gen := scriptdoc.NewGenerator(cfg)

	_, err = gen.Generate(context.Background())
	require.NoError(t, err)
	first := readTree(t, cfg.Output.Directory)

	_, err = gen.Generate(context.Background())
	require.NoError(t, err)
	second := readTree(t, cfg.Output.Directory)

	assert.Equal(t, first, second)
	assert.Len(t, second, len(scriptdoc.Categories()))
}

// TestGolden_VendoredScriptsNeedExclusion shows that dropping the default
// exclusion makes the run fail instead of silently losing scripts.
func TestGolden_VendoredScriptsNeedExclusion(t *testing.T) {
	fixture, err := filepath.Abs(filepath.Join("testdata", "project"))
	require.NoError(t, err)
	dir := setupProject(t, fixture)
	chdir(t, dir)

	require.NoError(t, os.WriteFile(config.DefaultPath, []byte("scripts:\n  exclude: []\n"), 0o644))
	cfg, err := config.Load(config.DefaultPath)
	require.NoError(t, err)

	_, err = scriptdoc.NewGenerator(cfg).Generate(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "3rdparty")
	assert.NoDirExists(t, filepath.Join(dir, "docs", "_auto"))
}
