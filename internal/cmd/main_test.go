package cmd

import (
	"context"
	"sort"
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/cli"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitCommands(t *testing.T) {
	initCommands(context.Background(), hclog.NewNullLogger(), cli.NewMockUi())

	names := make([]string, 0, len(Commands))
	for name, factory := range Commands {
		names = append(names, name)

		c, err := factory()
		require.NoError(t, err, name)
		assert.NotEmpty(t, c.Synopsis(), name)
		assert.NotEmpty(t, c.Help(), name)
	}
	sort.Strings(names)

	assert.Equal(t, []string{
		"card",
		"card delete",
		"card get",
		"card list",
		"card provision",
		"card resume",
		"card suspend",
		"card unlink",
		"card update",
		"template",
		"template create",
		"template get",
		"template logs",
		"template update",
		"version",
	}, names)
}

func TestMain_Version(t *testing.T) {
	assert.Equal(t, 0, Main([]string{"accessgrid", "-version"}))
	assert.Equal(t, 0, Main([]string{"accessgrid", "version"}))
}

func TestMain_UnknownCommand(t *testing.T) {
	assert.Equal(t, 127, Main([]string{"accessgrid", "bogus"}))
}
