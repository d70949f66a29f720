package card

import (
	"flag"
	"fmt"

	"github.com/access-grid/accessgrid-go/internal/cmd/base"
)

// GetCommand prints a single card.
type GetCommand struct {
	*base.Command

	flagConfig string
}

func (c *GetCommand) Synopsis() string {
	return "Show an access card"
}

func (c *GetCommand) Help() string {
	return `Usage: accessgrid card get [options] CARD_ID

  Prints the card with the given id, including its devices.` + c.Flags().Help()
}

func (c *GetCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("card get", flag.ContinueOnError))
	base.ConfigFlag(f, &c.flagConfig)
	return f
}

func (c *GetCommand) Run(args []string) int {
	f := c.Flags()
	if err := f.Parse(args); err != nil {
		c.UI.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}
	id, ok := c.SingleArg(f, "CARD_ID")
	if !ok {
		return 1
	}

	client, _ := c.NewClient(c.flagConfig)
	if client == nil {
		return 1
	}

	card, err := client.AccessCards().Get(c.Context(), id)
	if err != nil {
		return c.Fail("error getting card", err)
	}

	if err := c.PrintJSON(card); err != nil {
		return c.Fail("error printing card", err)
	}
	return 0
}
