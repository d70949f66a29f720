package template

import (
	"flag"
	"fmt"

	"github.com/access-grid/accessgrid-go/internal/cmd/base"
)

// GetCommand prints a single template.
type GetCommand struct {
	*base.Command

	flagConfig string
}

func (c *GetCommand) Synopsis() string {
	return "Show a card template"
}

func (c *GetCommand) Help() string {
	return `Usage: accessgrid template get [options] TEMPLATE_ID` + c.Flags().Help()
}

func (c *GetCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("template get", flag.ContinueOnError))
	base.ConfigFlag(f, &c.flagConfig)
	return f
}

func (c *GetCommand) Run(args []string) int {
	f := c.Flags()
	if err := f.Parse(args); err != nil {
		c.UI.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}
	id, ok := c.SingleArg(f, "TEMPLATE_ID")
	if !ok {
		return 1
	}

	client, _ := c.NewClient(c.flagConfig)
	if client == nil {
		return 1
	}

	tmpl, err := client.Console().ReadTemplate(c.Context(), id)
	if err != nil {
		return c.Fail("error reading template", err)
	}

	if err := c.PrintJSON(tmpl); err != nil {
		return c.Fail("error printing template", err)
	}
	return 0
}
