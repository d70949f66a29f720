package accessgrid

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/hashicorp/go-hclog"
)

// Client talks to the Access Grid API. It holds no mutable state after
// construction and is safe for concurrent use.
type Client struct {
	accountID string
	baseURL   string
	signer    *Signer
	client    *http.Client
	logger    hclog.Logger
}

// NewClient creates a new Access Grid client. AccountID and APISecret are
// required; everything else falls back to DefaultConfig values.
func NewClient(cfg *Config) (*Client, error) {
	if cfg == nil {
		return nil, fmt.Errorf("access grid config is required")
	}

	// Work on a copy so the caller's config is left untouched.
	c := *cfg
	c.applyDefaults()

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("invalid access grid config: %w", err)
	}

	httpClient := c.HTTPClient
	if httpClient == nil {
		httpClient = c.NewHTTPClient()
	}

	return &Client{
		accountID: c.AccountID,
		baseURL:   strings.TrimRight(c.BaseURL, "/"),
		signer:    NewSigner(c.APISecret),
		client:    httpClient,
		logger:    c.Logger.Named("accessgrid"),
	}, nil
}

// AccountID returns the account identifier the client signs requests for.
func (c *Client) AccountID() string {
	return c.accountID
}

// AccessCards returns the card (NFC key) operations.
func (c *Client) AccessCards() AccessCards {
	return AccessCards{client: c}
}

// Console returns the template and event log operations.
func (c *Client) Console() Console {
	return Console{client: c}
}

// Sign serializes v the same way outbound payloads are serialized and returns
// the JSON bytes together with their signature.
func (c *Client) Sign(v any) ([]byte, string, error) {
	payload, err := json.Marshal(v)
	if err != nil {
		return nil, "", fmt.Errorf("failed to marshal payload: %w", err)
	}
	return payload, c.signer.Sign(payload), nil
}
