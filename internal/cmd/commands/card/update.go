package card

import (
	"flag"
	"fmt"

	"github.com/access-grid/accessgrid-go/internal/cmd/base"
	"github.com/access-grid/accessgrid-go/internal/requestfile"
	"github.com/access-grid/accessgrid-go/pkg/accessgrid"
)

// UpdateCommand changes the holder details of an issued card.
type UpdateCommand struct {
	*base.Command

	flagConfig string
	flagFile   string
	req        accessgrid.UpdateCardRequest
}

func (c *UpdateCommand) Synopsis() string {
	return "Update the holder details of an access card"
}

func (c *UpdateCommand) Help() string {
	return `Usage: accessgrid card update [options] CARD_ID

  Updates an issued card. Fields come from flags, or from -file, a YAML or
  JSON document using the API field names. Flags override the file.` + c.Flags().Help()
}

func (c *UpdateCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("card update", flag.ContinueOnError))

	base.ConfigFlag(f, &c.flagConfig)
	f.StringVar(&c.flagFile, "file", "", "Path to a YAML or JSON update request")
	f.StringVar(&c.req.EmployeeID, "employee-id", "", "Employee id")
	f.StringVar(&c.req.FullName, "full-name", "", "Full name of the card holder")
	f.StringVar(&c.req.Classification, "classification", "", "Holder classification")
	f.StringVar(&c.req.ExpirationDate, "expiration-date", "", "Date the card expires")
	f.StringVar(&c.req.EmployeePhoto, "employee-photo", "", "Base64 encoded photo or photo URL")

	return f
}

func (c *UpdateCommand) Run(args []string) int {
	f := c.Flags()
	if err := f.Parse(args); err != nil {
		c.UI.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}
	id, ok := c.SingleArg(f, "CARD_ID")
	if !ok {
		return 1
	}

	req := c.req
	if c.flagFile != "" {
		fromFile, err := requestfile.LoadOne[accessgrid.UpdateCardRequest](c.FS(), c.flagFile)
		if err != nil {
			c.UI.Error(err.Error())
			return 1
		}
		req = merge(fromFile, c.req)
	}
	req.CardID = id

	var err error
	if req.ExpirationDate, err = base.NormalizeDate(req.ExpirationDate); err != nil {
		return c.Fail("invalid update request", err)
	}
	if err := req.Validate(); err != nil {
		return c.Fail("invalid update request", err)
	}

	client, _ := c.NewClient(c.flagConfig)
	if client == nil {
		return 1
	}

	card, err := client.AccessCards().Update(c.Context(), &req)
	if err != nil {
		return c.Fail("error updating card", err)
	}

	if err := c.PrintJSON(card); err != nil {
		return c.Fail("error printing card", err)
	}
	return 0
}

// merge overlays the non-empty fields of flags onto req.
func merge(req, flags accessgrid.UpdateCardRequest) accessgrid.UpdateCardRequest {
	set := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}
	set(&req.EmployeeID, flags.EmployeeID)
	set(&req.FullName, flags.FullName)
	set(&req.Classification, flags.Classification)
	set(&req.ExpirationDate, flags.ExpirationDate)
	set(&req.EmployeePhoto, flags.EmployeePhoto)
	return req
}
