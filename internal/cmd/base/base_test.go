package base

import (
	"flag"
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/cli"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/access-grid/accessgrid-go/internal/config"
)

func TestNormalizeDate(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"2025-01-01", "2025-01-01T00:00:00Z"},
		{"2025-02-22T21:04:03Z", "2025-02-22T21:04:03Z"},
		{"2025-02-22T21:04:03+02:00", "2025-02-22T19:04:03Z"},
		{"03/15/2025", "2025-03-15T00:00:00Z"},
		{"March 15, 2025", "2025-03-15T00:00:00Z"},
	}

	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := NormalizeDate(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}

	_, err := NormalizeDate("not a date")
	assert.ErrorContains(t, err, `invalid date "not a date"`)
}

func TestFlagSetHelp(t *testing.T) {
	var s string
	var b bool
	f := NewFlagSet(flag.NewFlagSet("test", flag.ContinueOnError))
	f.StringVar(&s, "name", "bob", "Name to use")
	f.BoolVar(&b, "dry-run", false, "Do nothing")

	help := f.Help()
	assert.Contains(t, help, "Options:")
	assert.Contains(t, help, "-name=bob\n      Name to use")
	assert.Contains(t, help, "-dry-run\n      Do nothing")

	empty := NewFlagSet(flag.NewFlagSet("empty", flag.ContinueOnError))
	assert.Equal(t, "", empty.Help())
}

func TestCommand_NewClient(t *testing.T) {
	t.Setenv(config.EnvAccountID, "")
	t.Setenv(config.EnvSecretKey, "")
	t.Setenv(config.EnvBaseURL, "")
	t.Setenv(config.EnvBrokers, "")

	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "ag.hcl", []byte(`
access_grid {
  account_id = "acct-123"
  api_secret = "shh"
}
`), 0o600))

	ui := cli.NewMockUi()
	c := &Command{Log: hclog.NewNullLogger(), UI: ui, Fs: fs}

	client, cfg := c.NewClient("ag.hcl")
	require.NotNil(t, client)
	assert.Equal(t, "acct-123", client.AccountID())
	assert.Equal(t, c.Log, cfg.AccessGrid.Logger)

	client, _ = c.NewClient("")
	assert.Nil(t, client)
	assert.Contains(t, ui.ErrorWriter.String(), "error creating client")

	client, _ = c.NewClient("missing.hcl")
	assert.Nil(t, client)
	assert.Contains(t, ui.ErrorWriter.String(), "error parsing config")
}

func TestCommand_PrintJSON(t *testing.T) {
	ui := cli.NewMockUi()
	c := &Command{UI: ui}

	require.NoError(t, c.PrintJSON(map[string]string{"id": "abc123"}))
	assert.Equal(t, "{\n  \"id\": \"abc123\"\n}\n", ui.OutputWriter.String())
}
