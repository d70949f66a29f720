package card

import (
	"context"
	"flag"
	"fmt"

	"github.com/access-grid/accessgrid-go/internal/cmd/base"
	"github.com/access-grid/accessgrid-go/pkg/accessgrid"
)

// Lifecycle actions accepted by LifecycleCommand.
const (
	ActionSuspend = "suspend"
	ActionResume  = "resume"
	ActionUnlink  = "unlink"
	ActionDelete  = "delete"
)

var lifecycleSynopses = map[string]string{
	ActionSuspend: "Temporarily suspend an access card",
	ActionResume:  "Resume a suspended access card",
	ActionUnlink:  "Unlink an access card from its devices",
	ActionDelete:  "Permanently delete an access card",
}

// LifecycleCommand runs one card state transition.
type LifecycleCommand struct {
	*base.Command

	Action string

	flagConfig string
}

func (c *LifecycleCommand) Synopsis() string {
	return lifecycleSynopses[c.Action]
}

func (c *LifecycleCommand) Help() string {
	return fmt.Sprintf(`Usage: accessgrid card %s [options] CARD_ID

  %s and print its new state.`, c.Action, lifecycleSynopses[c.Action]) + c.Flags().Help()
}

func (c *LifecycleCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("card "+c.Action, flag.ContinueOnError))
	base.ConfigFlag(f, &c.flagConfig)
	return f
}

func (c *LifecycleCommand) Run(args []string) int {
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

	var run func(context.Context, string) (*accessgrid.Card, error)
	cards := client.AccessCards()
	switch c.Action {
	case ActionSuspend:
		run = cards.Suspend
	case ActionResume:
		run = cards.Resume
	case ActionUnlink:
		run = cards.Unlink
	case ActionDelete:
		run = cards.Delete
	default:
		c.UI.Error(fmt.Sprintf("unknown card action %q", c.Action))
		return 1
	}

	card, err := run(c.Context(), id)
	if err != nil {
		return c.Fail(fmt.Sprintf("error running %s", c.Action), err)
	}

	if err := c.PrintJSON(card); err != nil {
		return c.Fail("error printing card", err)
	}
	return 0
}
