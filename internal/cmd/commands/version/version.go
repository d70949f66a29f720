package version

import (
	"fmt"
	"runtime"

	"github.com/access-grid/accessgrid-go/internal/cmd/base"
	"github.com/access-grid/accessgrid-go/internal/version"
)

// Command prints the build version.
type Command struct {
	*base.Command
}

func (c *Command) Synopsis() string {
	return "Print the accessgrid version"
}

func (c *Command) Help() string {
	return `Usage: accessgrid version

  Prints the version of this build.`
}

func (c *Command) Run(args []string) int {
	c.UI.Output(fmt.Sprintf("accessgrid v%s (%s/%s)", version.Version, runtime.GOOS, runtime.GOARCH))
	return 0
}
