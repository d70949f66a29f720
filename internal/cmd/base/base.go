package base

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/cli"
	"github.com/spf13/afero"

	"github.com/access-grid/accessgrid-go/internal/config"
	"github.com/access-grid/accessgrid-go/pkg/accessgrid"
)

// EnvConfigPath is the default for the -config flag.
const EnvConfigPath = "ACCESSGRID_CONFIG"

// Command is embedded by every accessgrid subcommand.
type Command struct {
	Log hclog.Logger
	UI  cli.Ui
	Fs  afero.Fs

	// Ctx is canceled when the process receives an interrupt.
	Ctx context.Context
}

// Context returns the command's context, never nil.
func (c *Command) Context() context.Context {
	if c.Ctx == nil {
		return context.Background()
	}
	return c.Ctx
}

// FS returns the filesystem commands read config and request files from.
func (c *Command) FS() afero.Fs {
	if c.Fs == nil {
		return afero.NewOsFs()
	}
	return c.Fs
}

// ConfigFlag registers the -config flag shared by every API command.
func ConfigFlag(f *FlagSet, p *string) {
	f.StringVar(
		p, "config", os.Getenv(EnvConfigPath),
		fmt.Sprintf("[%s] Path to an HCL config file. When empty, %s and %s are read from the environment.",
			EnvConfigPath, config.EnvAccountID, config.EnvSecretKey),
	)
}

// LoadConfig parses the config file at path and applies env overrides.
func (c *Command) LoadConfig(path string) (*config.Config, error) {
	cfg, err := config.Load(c.FS(), path)
	if err != nil {
		return nil, err
	}
	cfg.AccessGrid.Logger = c.Log
	if cfg.AuditExport != nil {
		cfg.AuditExport.Logger = c.Log
	}
	return cfg, nil
}

// NewClient builds an API client from the config at path, reporting any
// failure through the UI. It returns nil on failure.
func (c *Command) NewClient(path string) (*accessgrid.Client, *config.Config) {
	cfg, err := c.LoadConfig(path)
	if err != nil {
		c.UI.Error(fmt.Sprintf("error parsing config: %v", err))
		return nil, nil
	}

	client, err := accessgrid.NewClient(cfg.AccessGrid)
	if err != nil {
		c.UI.Error(fmt.Sprintf("error creating client: %v", err))
		return nil, nil
	}

	return client, cfg
}

// SingleArg returns the one positional argument left after flag parsing.
func (c *Command) SingleArg(f *FlagSet, name string) (string, bool) {
	if f.NArg() != 1 {
		c.UI.Error(fmt.Sprintf("expected exactly one argument: %s", name))
		return "", false
	}
	return f.Arg(0), true
}

// PrintJSON writes v to the UI as indented JSON.
func (c *Command) PrintJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("error encoding output: %w", err)
	}
	c.UI.Output(string(out))
	return nil
}

// Fail reports an API or usage error and returns the exit code for it.
func (c *Command) Fail(msg string, err error) int {
	c.UI.Error(fmt.Sprintf("%s: %v", msg, err))
	return 1
}
