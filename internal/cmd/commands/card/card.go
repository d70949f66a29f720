package card

import (
	"github.com/mitchellh/cli"

	"github.com/access-grid/accessgrid-go/internal/cmd/base"
)

// Command groups the card subcommands.
type Command struct {
	*base.Command
}

func (c *Command) Synopsis() string {
	return "Provision and manage access cards"
}

func (c *Command) Help() string {
	return `Usage: accessgrid card <subcommand> [options] [args]

  This command groups subcommands for issuing NFC access cards and managing
  their lifecycle.`
}

func (c *Command) Run(args []string) int {
	return cli.RunResultHelp
}
