package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsimple"
	"github.com/spf13/afero"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"

	"github.com/access-grid/accessgrid-go/pkg/accessgrid"
	"github.com/access-grid/accessgrid-go/pkg/auditexport"
)

// Environment variables that override values from the config file.
const (
	EnvAccountID = "ACCESSGRID_ACCOUNT_ID"
	EnvSecretKey = "ACCESSGRID_SECRET_KEY"
	EnvBaseURL   = "ACCESSGRID_BASE_URL"
	EnvBrokers   = "ACCESSGRID_KAFKA_BROKERS"
)

// Config is the operator configuration of the accessgrid CLI.
type Config struct {
	AccessGrid  *accessgrid.Config
	AuditExport *auditexport.Config
}

// file mirrors the HCL layout of a config file:
//
//	access_grid {
//	  account_id = "acct-123"
//	  api_secret = env("ACCESSGRID_SECRET_KEY")
//	  base_url   = "https://api.accessgrid.com/v1"
//	  timeout    = "30s"
//	}
//
//	audit_export {
//	  brokers = ["localhost:9092"]
//	  topic   = "accessgrid.events"
//	}
type file struct {
	AccessGrid  *accessGridBlock  `hcl:"access_grid,block"`
	AuditExport *auditExportBlock `hcl:"audit_export,block"`
}

type accessGridBlock struct {
	AccountID string `hcl:"account_id,optional"`
	APISecret string `hcl:"api_secret,optional"`
	BaseURL   string `hcl:"base_url,optional"`
	Timeout   string `hcl:"timeout,optional"`
}

type auditExportBlock struct {
	Brokers []string `hcl:"brokers"`
	Topic   string   `hcl:"topic,optional"`
}

// envFunc implements env("NAME") inside config files so secrets can stay in
// the environment.
var envFunc = function.New(&function.Spec{
	Params: []function.Parameter{
		{Name: "name", Type: cty.String},
	},
	Type: function.StaticReturnType(cty.String),
	Impl: func(args []cty.Value, retType cty.Type) (cty.Value, error) {
		return cty.StringVal(os.Getenv(args[0].AsString())), nil
	},
})

// Load reads the config file at path from fs and applies environment
// overrides. An empty path configures the CLI from the environment alone.
// Config files must use the .hcl or .json extension.
func Load(fs afero.Fs, path string) (*Config, error) {
	var f file

	if path != "" {
		src, err := afero.ReadFile(fs, path)
		if err != nil {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}

		ctx := &hcl.EvalContext{
			Functions: map[string]function.Function{
				"env": envFunc,
			},
		}
		if err := hclsimple.Decode(path, src, ctx, &f); err != nil {
			return nil, fmt.Errorf("error decoding config file: %w", err)
		}
	}

	cfg := &Config{
		AccessGrid: accessgrid.DefaultConfig(),
	}

	if ag := f.AccessGrid; ag != nil {
		cfg.AccessGrid.AccountID = ag.AccountID
		cfg.AccessGrid.APISecret = ag.APISecret
		if ag.BaseURL != "" {
			cfg.AccessGrid.BaseURL = ag.BaseURL
		}
		if ag.Timeout != "" {
			d, err := time.ParseDuration(ag.Timeout)
			if err != nil {
				return nil, fmt.Errorf("error parsing access_grid.timeout: %w", err)
			}
			cfg.AccessGrid.Timeout = d
		}
	}

	if ae := f.AuditExport; ae != nil {
		cfg.AuditExport = &auditexport.Config{
			Brokers: ae.Brokers,
			Topic:   ae.Topic,
		}
	}

	// Environment variables take precedence over the file.
	if v, ok := os.LookupEnv(EnvAccountID); ok && v != "" {
		cfg.AccessGrid.AccountID = v
	}
	if v, ok := os.LookupEnv(EnvSecretKey); ok && v != "" {
		cfg.AccessGrid.APISecret = v
	}
	if v, ok := os.LookupEnv(EnvBaseURL); ok && v != "" {
		cfg.AccessGrid.BaseURL = v
	}
	if v, ok := os.LookupEnv(EnvBrokers); ok && v != "" {
		if cfg.AuditExport == nil {
			cfg.AuditExport = &auditexport.Config{}
		}
		cfg.AuditExport.Brokers = SplitBrokers(v)
	}

	return cfg, nil
}

// SplitBrokers parses a comma separated broker list, dropping empty entries.
func SplitBrokers(s string) []string {
	var brokers []string
	for _, b := range strings.Split(s, ",") {
		if b = strings.TrimSpace(b); b != "" {
			brokers = append(brokers, b)
		}
	}
	return brokers
}
