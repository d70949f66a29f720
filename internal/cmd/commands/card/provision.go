package card

import (
	"flag"
	"fmt"

	"github.com/hashicorp/go-multierror"

	"github.com/access-grid/accessgrid-go/internal/cmd/base"
	"github.com/access-grid/accessgrid-go/internal/requestfile"
	"github.com/access-grid/accessgrid-go/pkg/accessgrid"
)

// ProvisionCommand issues one card, or a batch of cards from a request file.
type ProvisionCommand struct {
	*base.Command

	flagConfig string
	flagFile   string
	req        accessgrid.ProvisionCardRequest
}

func (c *ProvisionCommand) Synopsis() string {
	return "Issue a new access card"
}

func (c *ProvisionCommand) Help() string {
	return `Usage: accessgrid card provision [options]

  Issues an access card from a template. The request comes either from flags
  or from -file, a YAML or JSON document that may hold a list of requests to
  provision in one run. Dates may be given in any common layout and are sent
  as RFC 3339.` + c.Flags().Help()
}

func (c *ProvisionCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("card provision", flag.ContinueOnError))

	base.ConfigFlag(f, &c.flagConfig)
	f.StringVar(
		&c.flagFile, "file", "",
		"Path to a YAML or JSON file with one or more provision requests",
	)
	f.StringVar(&c.req.CardTemplateID, "template-id", "", "Card template id")
	f.StringVar(&c.req.EmployeeID, "employee-id", "", "Employee id")
	f.StringVar(&c.req.TagID, "tag-id", "", "Tag id")
	f.StringVar(&c.req.FullName, "full-name", "", "Full name of the card holder")
	f.StringVar(&c.req.Email, "email", "", "Email address of the card holder")
	f.StringVar(&c.req.PhoneNumber, "phone-number", "", "Phone number of the card holder")
	f.StringVar(&c.req.Classification, "classification", "", "Holder classification, e.g. full_time")
	f.StringVar(&c.req.StartDate, "start-date", "", "Date the card becomes valid")
	f.StringVar(&c.req.ExpirationDate, "expiration-date", "", "Date the card expires")
	f.StringVar(&c.req.EmployeePhoto, "employee-photo", "", "Base64 encoded photo or photo URL")

	return f
}

func (c *ProvisionCommand) Run(args []string) int {
	f := c.Flags()
	if err := f.Parse(args); err != nil {
		c.UI.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}

	reqs := []accessgrid.ProvisionCardRequest{c.req}
	if c.flagFile != "" {
		var err error
		reqs, err = requestfile.Load[accessgrid.ProvisionCardRequest](c.FS(), c.flagFile)
		if err != nil {
			c.UI.Error(err.Error())
			return 1
		}
	}

	// Check every request before sending any of them.
	var result *multierror.Error
	for i := range reqs {
		if err := prepare(&reqs[i]); err != nil {
			result = multierror.Append(result, fmt.Errorf("request %d: %w", i+1, err))
		}
	}
	if err := result.ErrorOrNil(); err != nil {
		c.UI.Error(fmt.Sprintf("invalid provision request: %v", err))
		return 1
	}

	client, _ := c.NewClient(c.flagConfig)
	if client == nil {
		return 1
	}

	ctx := c.Context()
	issued := make([]accessgrid.ProvisionResult, 0, len(reqs))
	for i := range reqs {
		res, err := client.AccessCards().Provision(ctx, &reqs[i])
		if err != nil {
			c.Log.Error("error provisioning card",
				"request", i+1,
				"employee_id", reqs[i].EmployeeID,
				"error", err,
			)
			result = multierror.Append(result, fmt.Errorf("request %d: %w", i+1, err))
			continue
		}
		issued = append(issued, res)
	}

	if len(reqs) == 1 && len(issued) == 1 {
		if err := c.PrintJSON(issued[0]); err != nil {
			return c.Fail("error printing result", err)
		}
	} else if len(issued) > 0 {
		if err := c.PrintJSON(issued); err != nil {
			return c.Fail("error printing result", err)
		}
	}

	if err := result.ErrorOrNil(); err != nil {
		c.UI.Error(fmt.Sprintf("error provisioning cards: %v", err))
		return 1
	}

	return 0
}

func prepare(req *accessgrid.ProvisionCardRequest) error {
	var err error
	if req.StartDate, err = base.NormalizeDate(req.StartDate); err != nil {
		return fmt.Errorf("start_date: %w", err)
	}
	if req.ExpirationDate, err = base.NormalizeDate(req.ExpirationDate); err != nil {
		return fmt.Errorf("expiration_date: %w", err)
	}
	return req.Validate()
}
