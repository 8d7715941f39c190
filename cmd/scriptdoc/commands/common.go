package commands

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/scriptdoc/internal/config"
	derrors "git.home.luguber.info/inful/scriptdoc/internal/errors"
	serrors "git.home.luguber.info/inful/scriptdoc/internal/scriptdoc/errors"
)

// Global context passed to subcommands.
type Global struct {
	Out io.Writer
}

// stdout returns the writer for user-facing output.
func (g *Global) stdout() io.Writer {
	if g == nil || g.Out == nil {
		return os.Stdout
	}
	return g.Out
}

// CLI definition & global flags - used by commands that need access to root config.
type CLI struct {
	Config  string           `short:"c" help:"Configuration file path" default:"scriptdoc.yaml"`
	Verbose bool             `short:"v" help:"Enable verbose logging"`
	Version kong.VersionFlag `name:"version" help:"Show version and exit"`

	Generate       GenerateCmd       `cmd:"" default:"withargs" help:"Generate the per-category script reference pages"`
	Discover       DiscoverCmd       `cmd:"" help:"List documented scripts by category without writing pages"`
	ProjectVersion ProjectVersionCmd `cmd:"" name:"project-version" help:"Print the project version read from build metadata"`
	Site           SiteCmd           `cmd:"" help:"Write the documentation engine configuration as YAML"`
	Init           InitCmd           `cmd:"" help:"Initialize a new configuration file"`
}

// AfterApply runs after flag parsing; setup logging once.
// nolint:unparam // AfterApply currently never returns an error.
func (c *CLI) AfterApply() error {
	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return nil
}

// LoadConfig loads the configuration named by the global --config flag.
func LoadConfig(root *CLI) (*config.Config, error) {
	cfg, err := config.Load(root.Config)
	if err != nil {
		if errors.Is(err, config.ErrInvalidConfig) {
			return nil, derrors.Wrap(err, derrors.CategoryValidation, derrors.SeverityFatal, "configuration is invalid").
				WithContext("path", root.Config)
		}
		return nil, derrors.ConfigLoadFailed(root.Config, err)
	}
	return cfg, nil
}

// ClassifyGenerationError maps scan/group/write failures onto structured CLI errors.
func ClassifyGenerationError(stage string, err error) error {
	if err == nil {
		return nil
	}
	var sde *derrors.ScriptDocError
	if errors.As(err, &sde) {
		return err
	}

	switch {
	case errors.Is(err, context.Canceled):
		return derrors.Wrap(err, derrors.CategoryRuntime, derrors.SeverityInfo, "interrupted").WithContext("stage", stage)
	case errors.Is(err, serrors.ErrRootNotFound),
		errors.Is(err, serrors.ErrRootNotDirectory),
		errors.Is(err, serrors.ErrInvalidExcludePattern):
		return derrors.Wrap(err, derrors.CategoryConfig, derrors.SeverityFatal, "scripts root is misconfigured").
			WithContext("stage", stage)
	case errors.Is(err, serrors.ErrInvalidRelativePath):
		return derrors.InternalError("script path could not be resolved under the root", err).
			WithContext("stage", stage)
	case errors.Is(err, serrors.ErrUnknownCategory):
		return derrors.Wrap(err, derrors.CategoryValidation, derrors.SeverityFatal, "script found outside the known categories").
			WithContext("stage", stage)
	case errors.Is(err, serrors.ErrDecodeFailed),
		errors.Is(err, serrors.ErrFileReadFailed),
		errors.Is(err, serrors.ErrWalkFailed),
		errors.Is(err, serrors.ErrOutputWriteFailed):
		return derrors.FileSystemError(stage, err)
	default:
		return derrors.GenerationFailed(stage, err)
	}
}
