package commands

import (
	"fmt"

	"git.home.luguber.info/inful/scriptdoc/internal/buildmeta"
)

// ProjectVersionCmd implements the 'project-version' command.
type ProjectVersionCmd struct {
	File string `short:"f" help:"Build metadata file (overrides config)"`
}

func (p *ProjectVersionCmd) Run(global *Global, root *CLI) error {
	path := p.File
	if path == "" {
		cfg, err := LoadConfig(root)
		if err != nil {
			return err
		}
		path = cfg.BuildMetadata
	}
	_, err := fmt.Fprintln(global.stdout(), buildmeta.ReadVersion(path))
	return err
}
