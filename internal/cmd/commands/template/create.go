package template

import (
	"flag"
	"fmt"

	"github.com/access-grid/accessgrid-go/internal/cmd/base"
	"github.com/access-grid/accessgrid-go/internal/requestfile"
	"github.com/access-grid/accessgrid-go/pkg/accessgrid"
)

// CreateCommand creates a template from a request file.
type CreateCommand struct {
	*base.Command

	flagConfig string
	flagFile   string
}

func (c *CreateCommand) Synopsis() string {
	return "Create a card template"
}

func (c *CreateCommand) Help() string {
	return `Usage: accessgrid template create -file FILE [options]

  Creates a card template from a YAML or JSON document using the API field
  names, for example:

    name: Employee Access Pass
    platform: apple
    use_case: employee_badge
    protocol: desfire
    allow_on_multiple_devices: true
    watch_count: 2
    iphone_count: 3
    design:
      background_color: "#FFFFFF"
    support_info:
      support_email: support@yourcompany.com` + c.Flags().Help()
}

func (c *CreateCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("template create", flag.ContinueOnError))

	base.ConfigFlag(f, &c.flagConfig)
	f.StringVar(&c.flagFile, "file", "", "(Required) Path to a YAML or JSON template definition")

	return f
}

func (c *CreateCommand) Run(args []string) int {
	f := c.Flags()
	if err := f.Parse(args); err != nil {
		c.UI.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}
	if c.flagFile == "" {
		c.UI.Error("file flag is required")
		return 1
	}

	req, err := requestfile.LoadOne[accessgrid.CreateTemplateRequest](c.FS(), c.flagFile)
	if err != nil {
		c.UI.Error(err.Error())
		return 1
	}
	if err := req.Validate(); err != nil {
		return c.Fail("invalid template", err)
	}

	client, _ := c.NewClient(c.flagConfig)
	if client == nil {
		return 1
	}

	tmpl, err := client.Console().CreateTemplate(c.Context(), &req)
	if err != nil {
		return c.Fail("error creating template", err)
	}

	c.Log.Info("created template", "id", tmpl.ID, "name", tmpl.Name)

	if err := c.PrintJSON(tmpl); err != nil {
		return c.Fail("error printing template", err)
	}
	return 0
}
