package accessgrid

import (
	"fmt"
	"net"
	"net/http"
	"net/url"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/hashicorp/go-hclog"
)

const (
	// DefaultBaseURL is the production Access Grid API origin.
	DefaultBaseURL = "https://api.accessgrid.com/v1"

	// DefaultTimeout is the connect timeout applied to every request.
	DefaultTimeout = 30 * time.Second
)

// Config contains configuration for the Access Grid client. Only AccountID
// and APISecret are required.
type Config struct {
	// AccountID is the public account identifier sent in the X-ACCT-ID header.
	AccountID string `json:"accountId"`

	// APISecret is the HMAC key used to sign payloads. It never leaves the
	// process.
	APISecret string `json:"-"`

	// BaseURL of the API, without a trailing slash.
	// Default: https://api.accessgrid.com/v1
	BaseURL string `json:"baseUrl,omitempty"`

	// Timeout is the connect timeout for the shared transport.
	// Default: 30 seconds
	Timeout time.Duration `json:"timeout,omitempty"`

	// Logger receives request-level debug logs. Default: null logger.
	Logger hclog.Logger `json:"-"`

	// HTTPClient replaces the client built by NewHTTPClient when set.
	HTTPClient *http.Client `json:"-"`
}

// DefaultConfig returns a Config with the production base URL and timeout.
func DefaultConfig() *Config {
	return &Config{
		BaseURL: DefaultBaseURL,
		Timeout: DefaultTimeout,
	}
}

func (c *Config) applyDefaults() {
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	if c.Timeout == 0 {
		c.Timeout = DefaultTimeout
	}
	if c.Logger == nil {
		c.Logger = hclog.NewNullLogger()
	}
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.AccountID, validation.Required),
		validation.Field(&c.APISecret, validation.Required),
		validation.Field(&c.BaseURL, validation.Required, validation.By(validateBaseURL)),
		validation.Field(&c.Timeout, validation.Min(time.Duration(1)).Error("must be positive")),
	)
}

func validateBaseURL(value interface{}) error {
	s, _ := value.(string)
	u, err := url.Parse(s)
	if err != nil {
		return fmt.Errorf("invalid url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("must use http or https scheme, got: %q", u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("missing host")
	}
	return nil
}

// NewHTTPClient creates the pooled HTTP client shared by every call made
// through a Client. Timeout bounds connection establishment only.
func (c *Config) NewHTTPClient() *http.Client {
	dialer := &net.Dialer{
		Timeout:   c.Timeout,
		KeepAlive: 30 * time.Second,
	}

	transport := &http.Transport{
		Proxy:               http.ProxyFromEnvironment,
		DialContext:         dialer.DialContext,
		ForceAttemptHTTP2:   true,
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 10 * time.Second,
	}

	return &http.Client{
		Transport: transport,
	}
}
