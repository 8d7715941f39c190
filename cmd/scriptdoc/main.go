package main

import (
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/scriptdoc/cmd/scriptdoc/commands"
	derrors "git.home.luguber.info/inful/scriptdoc/internal/errors"
	"git.home.luguber.info/inful/scriptdoc/internal/version"
)

func main() {
	cli := &commands.CLI{}
	parser := kong.Parse(cli,
		kong.Name("scriptdoc"),
		kong.Description("Generate reStructuredText reference pages from documented lua and ruby scripts."),
		kong.UsageOnError(),
		kong.Vars{"version": version.String()},
	)

	global := &commands.Global{Out: os.Stdout}
	if err := parser.Run(global, cli); err != nil {
		derrors.NewCLIErrorAdapter(cli.Verbose, slog.Default()).HandleError(err)
	}
}
