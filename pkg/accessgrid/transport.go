package accessgrid

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"
)

// errNotInitialized is returned by facades that were not obtained from a
// Client.
var errNotInitialized = errors.New("client is not initialized")

// call serializes payload once, signs it, sends it, and returns the raw
// response body of a 2xx response. Any failure is returned as *Error.
func (c *Client) call(ctx context.Context, op, method, path string, payload any, query url.Values) ([]byte, error) {
	if c == nil {
		return nil, &Error{Op: op, Err: errNotInitialized}
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, &Error{Op: op, Err: fmt.Errorf("failed to marshal request: %w", err)}
	}

	req, err := c.newSignedRequest(ctx, method, path, body, query)
	if err != nil {
		return nil, &Error{Op: op, Err: err}
	}
	c.logger.Trace("signed request payload",
		"op", op,
		"payload_bytes", len(body),
		"signature_length", len(req.Header[headerSignature][0]),
	)

	return c.do(op, req)
}

// do executes req exactly once and reads the full response body. Statuses
// outside [200,300) carry the body text unmodified.
func (c *Client) do(op string, req *http.Request) ([]byte, error) {
	logger := c.logger.With(
		"request_id", uuid.NewString(),
		"method", req.Method,
		"path", req.URL.Path,
	)
	start := time.Now()

	logger.Debug("sending request")

	resp, err := c.client.Do(req)
	if err != nil {
		logger.Debug("request failed", "error", err)
		return nil, &Error{Op: op, Err: fmt.Errorf("request failed: %w", err)}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &Error{
			Op:         op,
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("failed to read response: %w", err),
		}
	}

	logger.Debug("received response",
		"status", resp.StatusCode,
		"duration", time.Since(start),
		"content_length", len(respBody),
	)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &Error{
			Op:         op,
			StatusCode: resp.StatusCode,
			Body:       string(respBody),
		}
	}

	return respBody, nil
}

// decode unmarshals a successful response body into v. An empty or null
// body is an error.
func decode(op string, body []byte, v any) error {
	if isEmptyJSON(body) {
		return &Error{
			Op:   op,
			Body: string(body),
			Err:  fmt.Errorf("failed to decode response: empty response body"),
		}
	}
	if err := json.Unmarshal(body, v); err != nil {
		return &Error{
			Op:   op,
			Body: string(body),
			Err:  fmt.Errorf("failed to decode response: %w", err),
		}
	}
	return nil
}

func isEmptyJSON(body []byte) bool {
	trimmed := bytes.TrimSpace(body)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}
