package commands

import (
	"errors"
	"fmt"
	"path/filepath"

	"git.home.luguber.info/inful/scriptdoc/internal/config"
	derrors "git.home.luguber.info/inful/scriptdoc/internal/errors"
)

// InitCmd implements the 'init' command.
type InitCmd struct {
	Force  bool   `help:"Overwrite existing configuration file"`
	Output string `short:"o" name:"output" help:"Output directory for generated config file"`
}

func (i *InitCmd) Run(global *Global, root *CLI) error {
	// If the user specified an output directory, place the config there under the default name.
	if i.Output != "" {
		return RunInit(global, filepath.Join(i.Output, config.DefaultPath), i.Force)
	}
	return RunInit(global, root.Config, i.Force)
}

func RunInit(global *Global, configPath string, force bool) error {
	out := global.stdout()
	_, _ = fmt.Fprintf(out, "Writing configuration to %s\n", configPath)
	if err := config.Init(configPath, force); err != nil {
		if errors.Is(err, config.ErrConfigExists) {
			return derrors.ConfigExists(configPath)
		}
		return derrors.FileSystemError("write config", err)
	}
	_, _ = fmt.Fprintln(out, "initialized successfully")
	return nil
}
