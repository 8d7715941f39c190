package commands

import (
	"fmt"

	"git.home.luguber.info/inful/scriptdoc/internal/config"
	derrors "git.home.luguber.info/inful/scriptdoc/internal/errors"
)

// SiteCmd implements the 'site' command.
type SiteCmd struct {
	Output string `short:"o" help:"Destination file (overrides output.site_file)"`
}

func (s *SiteCmd) Run(global *Global, root *CLI) error {
	cfg, err := LoadConfig(root)
	if err != nil {
		return err
	}
	target := cfg.Output.SiteFile
	if s.Output != "" {
		target = s.Output
	}
	if err := config.WriteSiteConfig(cfg, target); err != nil {
		return derrors.FileSystemError("write site config", err)
	}
	_, _ = fmt.Fprintf(global.stdout(), "Wrote site configuration for %s %s to %s\n", cfg.Site.Project, cfg.Site.Version, target)
	return nil
}
