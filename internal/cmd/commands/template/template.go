package template

import (
	"github.com/mitchellh/cli"

	"github.com/access-grid/accessgrid-go/internal/cmd/base"
)

// Command groups the template subcommands.
type Command struct {
	*base.Command
}

func (c *Command) Synopsis() string {
	return "Manage card templates"
}

func (c *Command) Help() string {
	return `Usage: accessgrid template <subcommand> [options] [args]

  This command groups subcommands for creating and inspecting card templates
  in the enterprise console, and for reading their event logs.`
}

func (c *Command) Run(args []string) int {
	return cli.RunResultHelp
}
