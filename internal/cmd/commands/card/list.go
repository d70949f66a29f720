package card

import (
	"flag"
	"fmt"

	"github.com/access-grid/accessgrid-go/internal/cmd/base"
	"github.com/access-grid/accessgrid-go/pkg/accessgrid"
)

// ListCommand prints the cards matching the template and state filters.
type ListCommand struct {
	*base.Command

	flagConfig string
	filters    accessgrid.ListCardsFilters
}

func (c *ListCommand) Synopsis() string {
	return "List access cards"
}

func (c *ListCommand) Help() string {
	return `Usage: accessgrid card list [options]

  Lists issued cards, optionally narrowed to one template or state.` + c.Flags().Help()
}

func (c *ListCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("card list", flag.ContinueOnError))

	base.ConfigFlag(f, &c.flagConfig)
	f.StringVar(&c.filters.TemplateID, "template-id", "", "Only list cards issued from this template")
	f.StringVar(&c.filters.State, "state", "", "Only list cards in this state, e.g. active or suspended")

	return f
}

func (c *ListCommand) Run(args []string) int {
	f := c.Flags()
	if err := f.Parse(args); err != nil {
		c.UI.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}
	if f.NArg() != 0 {
		c.UI.Error("card list takes no arguments")
		return 1
	}

	client, _ := c.NewClient(c.flagConfig)
	if client == nil {
		return 1
	}

	cards, err := client.AccessCards().List(c.Context(), &c.filters)
	if err != nil {
		return c.Fail("error listing cards", err)
	}

	c.Log.Debug("listed cards", "count", len(cards))

	if err := c.PrintJSON(cards); err != nil {
		return c.Fail("error printing cards", err)
	}
	return 0
}
