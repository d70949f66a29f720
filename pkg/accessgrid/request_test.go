package accessgrid

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newOfflineClient(t *testing.T) *Client {
	t.Helper()

	client, err := NewClient(&Config{
		AccountID: testAccountID,
		APISecret: testSecret,
		BaseURL:   "https://api.example.test/v1",
	})
	require.NoError(t, err)
	return client
}

func TestNewSignedRequest_Get(t *testing.T) {
	client := newOfflineClient(t)
	payload := []byte(`{"id":"abc123"}`)

	req, err := client.newSignedRequest(context.Background(), http.MethodGet, "/nfc-keys/abc123", payload, nil)
	require.NoError(t, err)

	assert.Equal(t, http.MethodGet, req.Method)
	assert.Equal(t,
		"https://api.example.test/v1/nfc-keys/abc123?sig_payload=%7B%22id%22%3A%22abc123%22%7D",
		req.URL.String())
	assert.Nil(t, req.Body)

	assert.Equal(t, []string{testAccountID}, req.Header["X-ACCT-ID"])
	assert.Equal(t, []string{"8877f2c859e7a945b755742f6f7c4e2e6300f2512450e82879ce0c7dddacc433"}, req.Header["X-PAYLOAD-SIG"])
	assert.Equal(t, "application/json", req.Header.Get("Content-Type"))

	// The decoded query parameter is the signed payload, byte for byte.
	assert.Equal(t, string(payload), req.URL.Query().Get(sigPayloadParam))
}

func TestNewSignedRequest_PostBodyIsSignedBytes(t *testing.T) {
	client := newOfflineClient(t)
	payload := []byte(`{"card_template_id":"0xd3adb00b5","employee_id":"123456789","full_name":"Employee name"}`)

	req, err := client.newSignedRequest(context.Background(), http.MethodPost, "/nfc-keys", payload, nil)
	require.NoError(t, err)

	assert.Equal(t, "https://api.example.test/v1/nfc-keys", req.URL.String())
	assert.Empty(t, req.URL.Query().Get(sigPayloadParam))

	body, err := io.ReadAll(req.Body)
	require.NoError(t, err)
	assert.Equal(t, payload, body)
	assert.Equal(t, int64(len(payload)), req.ContentLength)

	assert.Equal(t, []string{"d613bbf63f157ac46174231659613a5dda53f23325dbdd922160138933034b52"}, req.Header["X-PAYLOAD-SIG"])
	assert.Equal(t, []string{testAccountID}, req.Header["X-ACCT-ID"])
	assert.Equal(t, "application/json", req.Header.Get("Content-Type"))
}

func TestNewSignedRequest_ArbitraryMethodsCarryBody(t *testing.T) {
	client := newOfflineClient(t)
	payload := []byte(`{"id":"abc123"}`)

	for _, method := range []string{http.MethodPut, http.MethodPatch, http.MethodDelete} {
		t.Run(method, func(t *testing.T) {
			req, err := client.newSignedRequest(context.Background(), method, "/nfc-keys/abc123", payload, nil)
			require.NoError(t, err)

			body, err := io.ReadAll(req.Body)
			require.NoError(t, err)
			assert.Equal(t, payload, body)
			assert.Empty(t, req.URL.RawQuery)
		})
	}
}

func TestNewSignedRequest_GetWithExtraQuery(t *testing.T) {
	client := newOfflineClient(t)
	payload := []byte(`{"id":"tmpl-1"}`)

	query := url.Values{}
	query.Set("event_type", "install")
	query.Set("device", "mobile")

	req, err := client.newSignedRequest(context.Background(), http.MethodGet, "/enterprise/templates/tmpl-1/logs", payload, query)
	require.NoError(t, err)

	q := req.URL.Query()
	assert.Equal(t, "install", q.Get("event_type"))
	assert.Equal(t, "mobile", q.Get("device"))
	assert.Equal(t, string(payload), q.Get(sigPayloadParam))
	assert.Equal(t, "/v1/enterprise/templates/tmpl-1/logs", req.URL.Path)
}

func TestNewSignedRequest_PathWithExistingQuery(t *testing.T) {
	client := newOfflineClient(t)
	payload := []byte(`{}`)

	req, err := client.newSignedRequest(context.Background(), http.MethodGet, "/nfc-keys?state=active", payload, nil)
	require.NoError(t, err)

	q := req.URL.Query()
	assert.Equal(t, "active", q.Get("state"))
	assert.Equal(t, "{}", q.Get(sigPayloadParam))
}

func TestNewSignedRequest_SpecialCharactersInPayload(t *testing.T) {
	client := newOfflineClient(t)
	payload := []byte(`{"id":"a b&c=d+e/f"}`)

	req, err := client.newSignedRequest(context.Background(), http.MethodGet, "/nfc-keys/x", payload, nil)
	require.NoError(t, err)

	assert.Equal(t, string(payload), req.URL.Query().Get(sigPayloadParam))
	assert.Contains(t, req.URL.RawQuery, "sig_payload=%7B%22id%22%3A%22a+b%26c%3Dd%2Be%2Ff%22%7D")
}
