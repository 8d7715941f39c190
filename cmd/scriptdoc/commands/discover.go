package commands

import (
	"context"
	"fmt"
	"io"

	derrors "git.home.luguber.info/inful/scriptdoc/internal/errors"
	"git.home.luguber.info/inful/scriptdoc/internal/scriptdoc"
)

// DiscoverCmd implements the 'discover' command.
type DiscoverCmd struct {
	Root     string `short:"r" help:"Scripts root directory (overrides config)"`
	Category string `short:"k" help:"Only list this category (base, devel, fix, gui, modtools)"`
}

func (d *DiscoverCmd) Run(global *Global, root *CLI) error {
	cfg, err := LoadConfig(root)
	if err != nil {
		return err
	}
	if d.Root != "" {
		cfg.Scripts.Root = d.Root
	}

	cats := scriptdoc.Categories()
	if d.Category != "" {
		c, ok := scriptdoc.ParseCategory(d.Category)
		if !ok {
			return derrors.ValidationFailed("category", fmt.Sprintf("unknown category %q", d.Category))
		}
		cats = []scriptdoc.Category{c}
	}

	groups, err := scriptdoc.NewGenerator(cfg).Discover(context.Background())
	if err != nil {
		return ClassifyGenerationError("discover", err)
	}
	printGroups(global.stdout(), groups, cats)
	return nil
}

func printGroups(w io.Writer, groups scriptdoc.Groups, cats []scriptdoc.Category) {
	for _, c := range cats {
		entries := scriptdoc.SortEntries(groups[c])
		_, _ = fmt.Fprintf(w, "%s (%s): %d\n", c, c.Title(), len(entries))
		for _, e := range entries {
			_, _ = fmt.Fprintf(w, "  %-32s %s  [%s %s]\n", e.Command, e.IncludePath, e.Tokens.Start, e.Tokens.End)
		}
	}
}
