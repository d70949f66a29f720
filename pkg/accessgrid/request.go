package accessgrid

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

const (
	headerAccountID   = "X-ACCT-ID"
	headerSignature   = "X-PAYLOAD-SIG"
	headerContentType = "Content-Type"

	// sigPayloadParam carries the signed payload of bodyless requests.
	sigPayloadParam = "sig_payload"
)

// carriesBody reports whether the signed payload of a request with this
// method travels as the body rather than as the sig_payload query parameter.
func carriesBody(method string) bool {
	switch method {
	case http.MethodGet, http.MethodHead:
		return false
	default:
		return true
	}
}

// newSignedRequest builds an authenticated request for path. payload must be
// the exact bytes that were produced by the single serialization of the
// request object; they are signed and then sent unchanged, either as the body
// or as the sig_payload query parameter. query holds any additional query
// parameters.
func (c *Client) newSignedRequest(ctx context.Context, method, path string, payload []byte, query url.Values) (*http.Request, error) {
	u, err := url.Parse(c.baseURL + path)
	if err != nil {
		return nil, fmt.Errorf("invalid request path %q: %w", path, err)
	}

	signature := c.signer.Sign(payload)

	var body io.Reader
	q := u.Query()
	for k, vs := range query {
		for _, v := range vs {
			q.Add(k, v)
		}
	}
	if carriesBody(method) {
		body = bytes.NewReader(payload)
	} else {
		q.Set(sigPayloadParam, string(payload))
	}
	if len(q) > 0 {
		u.RawQuery = q.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	// Assigned directly so the header names go out exactly as the API
	// documents them instead of in canonical MIME form.
	req.Header[headerAccountID] = []string{c.accountID}
	req.Header[headerSignature] = []string{signature}
	req.Header.Set(headerContentType, "application/json")

	return req, nil
}
