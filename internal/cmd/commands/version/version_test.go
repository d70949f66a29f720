package version

import (
	"testing"

	"github.com/mitchellh/cli"
	"github.com/stretchr/testify/assert"

	"github.com/access-grid/accessgrid-go/internal/cmd/base"
	"github.com/access-grid/accessgrid-go/internal/version"
)

func TestCommand(t *testing.T) {
	ui := cli.NewMockUi()
	c := &Command{Command: &base.Command{UI: ui}}

	assert.Equal(t, 0, c.Run(nil))
	assert.Contains(t, ui.OutputWriter.String(), "accessgrid v"+version.Version)
}
