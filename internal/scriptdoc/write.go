package scriptdoc

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"git.home.luguber.info/inful/scriptdoc/internal/logfields"
	serrors "git.home.luguber.info/inful/scriptdoc/internal/scriptdoc/errors"
)

// Write renders every category page into outDir, creating it when missing.
// Existing pages are overwritten. It returns the written paths in category order.
func Write(outDir string, groups Groups, opts RenderOptions) ([]string, error) {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return nil, fmt.Errorf("%w: create %s: %w", serrors.ErrOutputWriteFailed, outDir, err)
	}

	written := make([]string, 0, len(categoryOrder))
	for _, c := range categoryOrder {
		target := filepath.Join(outDir, c.FileName())
		content := Render(c, groups[c], opts)
		if err := os.WriteFile(target, content, 0o644); err != nil {
			return written, fmt.Errorf("%w: %s: %w", serrors.ErrOutputWriteFailed, target, err)
		}
		slog.Debug("Wrote category page",
			logfields.Category(string(c)),
			logfields.Path(target),
			logfields.Count(len(groups[c])))
		written = append(written, target)
	}
	return written, nil
}
