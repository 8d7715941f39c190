package scriptdoc

import (
	"context"
	"log/slog"
	"time"

	"git.home.luguber.info/inful/scriptdoc/internal/config"
	"git.home.luguber.info/inful/scriptdoc/internal/logfields"
)

// Result summarizes one generation run.
type Result struct {
	Entries  int
	Counts   map[Category]int
	Files    []string
	Duration time.Duration
}

// Generator runs the scan, group and write steps for a configuration.
type Generator struct {
	cfg *config.Config
}

// NewGenerator creates a generator for the given configuration.
func NewGenerator(cfg *config.Config) *Generator {
	return &Generator{cfg: cfg}
}

// Discover scans and groups scripts without writing anything.
func (g *Generator) Discover(ctx context.Context) (Groups, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	entries, err := Scan(g.cfg.Scripts.Root, ScanOptions{Exclude: g.cfg.Scripts.Exclude})
	if err != nil {
		slog.Debug("Stage failed", logfields.Stage("scan"), logfields.Error(err))
		return nil, err
	}
	groups, err := Group(entries)
	if err != nil {
		slog.Debug("Stage failed", logfields.Stage("group"), logfields.Error(err))
		return nil, err
	}
	return groups, nil
}

// Generate regenerates every category page from scratch.
func (g *Generator) Generate(ctx context.Context) (*Result, error) {
	start := time.Now()
	slog.Info("Generating script reference pages",
		logfields.Stage("generate"),
		logfields.Root(g.cfg.Scripts.Root),
		logfields.Output(g.cfg.Output.Directory))

	groups, err := g.Discover(ctx)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	files, err := Write(g.cfg.Output.Directory, groups, RenderOptions{IncludeRoot: g.cfg.Scripts.IncludeRoot})
	if err != nil {
		slog.Debug("Stage failed", logfields.Stage("write"), logfields.Error(err))
		return nil, err
	}

	res := &Result{
		Entries:  groups.Total(),
		Counts:   groups.Counts(),
		Files:    files,
		Duration: time.Since(start),
	}
	slog.Info("Script reference pages generated",
		logfields.Stage("generate"),
		logfields.Count(res.Entries),
		slog.Int("files", len(files)),
		logfields.DurationMS(float64(res.Duration.Microseconds())/1000))
	return res, nil
}
