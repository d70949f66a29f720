package template

import (
	"flag"
	"fmt"

	"github.com/access-grid/accessgrid-go/internal/cmd/base"
	"github.com/access-grid/accessgrid-go/internal/requestfile"
	"github.com/access-grid/accessgrid-go/pkg/accessgrid"
)

// UpdateCommand replaces the settings of a template from a request file.
type UpdateCommand struct {
	*base.Command

	flagConfig string
	flagFile   string
}

func (c *UpdateCommand) Synopsis() string {
	return "Update a card template"
}

func (c *UpdateCommand) Help() string {
	return `Usage: accessgrid template update -file FILE [options] TEMPLATE_ID

  Replaces the settings of a template with those in a YAML or JSON document.
  The flag and device counts are always sent, so omitting them resets them.` + c.Flags().Help()
}

func (c *UpdateCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("template update", flag.ContinueOnError))

	base.ConfigFlag(f, &c.flagConfig)
	f.StringVar(&c.flagFile, "file", "", "(Required) Path to a YAML or JSON template update")

	return f
}

func (c *UpdateCommand) Run(args []string) int {
	f := c.Flags()
	if err := f.Parse(args); err != nil {
		c.UI.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}
	id, ok := c.SingleArg(f, "TEMPLATE_ID")
	if !ok {
		return 1
	}
	if c.flagFile == "" {
		c.UI.Error("file flag is required")
		return 1
	}

	req, err := requestfile.LoadOne[accessgrid.UpdateTemplateRequest](c.FS(), c.flagFile)
	if err != nil {
		c.UI.Error(err.Error())
		return 1
	}
	req.CardTemplateID = id
	if err := req.Validate(); err != nil {
		return c.Fail("invalid template update", err)
	}

	client, _ := c.NewClient(c.flagConfig)
	if client == nil {
		return 1
	}

	tmpl, err := client.Console().UpdateTemplate(c.Context(), &req)
	if err != nil {
		return c.Fail("error updating template", err)
	}

	if err := c.PrintJSON(tmpl); err != nil {
		return c.Fail("error printing template", err)
	}
	return 0
}
