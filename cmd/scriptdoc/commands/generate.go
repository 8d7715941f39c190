package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os/signal"
	"syscall"
	"time"

	"git.home.luguber.info/inful/scriptdoc/internal/config"
	derrors "git.home.luguber.info/inful/scriptdoc/internal/errors"
	"git.home.luguber.info/inful/scriptdoc/internal/logfields"
	"git.home.luguber.info/inful/scriptdoc/internal/scriptdoc"
	"git.home.luguber.info/inful/scriptdoc/internal/watch"
)

// GenerateCmd implements the 'generate' command.
type GenerateCmd struct {
	Root     string        `short:"r" help:"Scripts root directory (overrides config)"`
	Output   string        `short:"o" help:"Output directory for generated pages (overrides config)"`
	Watch    bool          `short:"w" help:"Regenerate whenever the scripts tree changes"`
	Debounce time.Duration `help:"Quiet period before regenerating in watch mode" default:"300ms"`
}

func (g *GenerateCmd) Run(global *Global, root *CLI) error {
	cfg, err := LoadConfig(root)
	if err != nil {
		return err
	}
	g.applyOverrides(cfg)

	if !g.Watch {
		return RunGenerate(context.Background(), global, cfg)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// Initial run; failures are reported but the watcher still starts unless
	// the scripts root itself is unusable.
	if err := RunGenerate(ctx, global, cfg); err != nil {
		if derrors.IsCategory(err, derrors.CategoryConfig) {
			return err
		}
		slog.Error("Initial generation failed", logfields.Error(err))
	}
	w := watch.New(cfg.Scripts.Root, g.Debounce, func(ctx context.Context) error {
		return RunGenerate(ctx, global, cfg)
	})
	if err := w.Run(ctx); err != nil {
		return ClassifyGenerationError("watch", err)
	}
	return nil
}

func (g *GenerateCmd) applyOverrides(cfg *config.Config) {
	if g.Root != "" {
		cfg.Scripts.Root = g.Root
	}
	if g.Output != "" {
		cfg.Output.Directory = g.Output
	}
}

// RunGenerate performs one complete regeneration.
func RunGenerate(ctx context.Context, global *Global, cfg *config.Config) error {
	res, err := scriptdoc.NewGenerator(cfg).Generate(ctx)
	if err != nil {
		return ClassifyGenerationError("generate", err)
	}
	_, _ = fmt.Fprintf(global.stdout(), "Generated %d script entries into %d pages in %s\n",
		res.Entries, len(res.Files), cfg.Output.Directory)
	return nil
}
