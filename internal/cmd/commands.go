package cmd

import (
	"context"

	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/cli"
	"github.com/spf13/afero"

	"github.com/access-grid/accessgrid-go/internal/cmd/base"
	"github.com/access-grid/accessgrid-go/internal/cmd/commands/card"
	"github.com/access-grid/accessgrid-go/internal/cmd/commands/template"
	"github.com/access-grid/accessgrid-go/internal/cmd/commands/version"
)

// Commands is the mapping of all available accessgrid commands.
var Commands map[string]cli.CommandFactory

func initCommands(ctx context.Context, log hclog.Logger, ui cli.Ui) {
	b := &base.Command{
		Log: log,
		UI:  ui,
		Fs:  afero.NewOsFs(),
		Ctx: ctx,
	}

	Commands = map[string]cli.CommandFactory{
		"card": func() (cli.Command, error) {
			return &card.Command{Command: b}, nil
		},
		"card provision": func() (cli.Command, error) {
			return &card.ProvisionCommand{Command: b}, nil
		},
		"card get": func() (cli.Command, error) {
			return &card.GetCommand{Command: b}, nil
		},
		"card list": func() (cli.Command, error) {
			return &card.ListCommand{Command: b}, nil
		},
		"card update": func() (cli.Command, error) {
			return &card.UpdateCommand{Command: b}, nil
		},

		"template": func() (cli.Command, error) {
			return &template.Command{Command: b}, nil
		},
		"template create": func() (cli.Command, error) {
			return &template.CreateCommand{Command: b}, nil
		},
		"template get": func() (cli.Command, error) {
			return &template.GetCommand{Command: b}, nil
		},
		"template update": func() (cli.Command, error) {
			return &template.UpdateCommand{Command: b}, nil
		},
		"template logs": func() (cli.Command, error) {
			return &template.LogsCommand{Command: b}, nil
		},

		"version": func() (cli.Command, error) {
			return &version.Command{Command: b}, nil
		},
	}

	for _, action := range []string{card.ActionSuspend, card.ActionResume, card.ActionUnlink, card.ActionDelete} {
		Commands["card "+action] = func() (cli.Command, error) {
			return &card.LifecycleCommand{Command: b, Action: action}, nil
		}
	}
}
