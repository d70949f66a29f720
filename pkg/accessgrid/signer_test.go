package accessgrid

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testAccountID = "test-account-id"
	testSecret    = "test-secret-key"
)

func TestSigner_Sign_Golden(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		want    string
	}{
		{
			name:    "id payload",
			payload: `{"id":"abc123"}`,
			want:    "8877f2c859e7a945b755742f6f7c4e2e6300f2512450e82879ce0c7dddacc433",
		},
		{
			name:    "provision payload",
			payload: `{"card_template_id":"0xd3adb00b5","employee_id":"123456789","full_name":"Employee name"}`,
			want:    "d613bbf63f157ac46174231659613a5dda53f23325dbdd922160138933034b52",
		},
	}

	s := NewSigner(testSecret)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, s.Sign([]byte(tt.payload)))
		})
	}
}

func TestSigner_Sign_MatchesDefinition(t *testing.T) {
	payload := []byte(`{"full_name":"Zoë Ångström","email":"z@example.com"}`)

	mac := hmac.New(sha256.New, []byte(testSecret))
	mac.Write([]byte(base64.StdEncoding.EncodeToString(payload)))
	want := hex.EncodeToString(mac.Sum(nil))

	got := NewSigner(testSecret).Sign(payload)
	assert.Equal(t, want, got)
	assert.Len(t, got, 64)
	assert.Regexp(t, `^[0-9a-f]{64}$`, got)
}

func TestSigner_Sign_Deterministic(t *testing.T) {
	s := NewSigner(testSecret)
	payload := []byte(`{"id":"abc123"}`)

	first := s.Sign(payload)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, s.Sign(payload))
	}

	assert.NotEqual(t, first, NewSigner("another-secret").Sign(payload))
	assert.NotEqual(t, first, s.Sign([]byte(`{"id":"abc124"}`)))
}

func TestClient_Sign_StructurallyEqualPayloads(t *testing.T) {
	client, err := NewClient(&Config{AccountID: testAccountID, APISecret: testSecret})
	require.NoError(t, err)

	a := &ProvisionCardRequest{CardTemplateID: "tmpl", FullName: "Test Employee"}
	b := &ProvisionCardRequest{CardTemplateID: "tmpl", FullName: "Test Employee"}

	payloadA, sigA, err := client.Sign(a)
	require.NoError(t, err)
	payloadB, sigB, err := client.Sign(b)
	require.NoError(t, err)

	assert.Equal(t, string(payloadA), string(payloadB))
	assert.Equal(t, sigA, sigB)
	assert.Equal(t, `{"card_template_id":"tmpl","full_name":"Test Employee"}`, string(payloadA))
}

func TestSignature_IndependentOfMethod(t *testing.T) {
	client, err := NewClient(&Config{AccountID: testAccountID, APISecret: testSecret})
	require.NoError(t, err)

	payload, want, err := client.Sign(idPayload{ID: "abc123"})
	require.NoError(t, err)
	assert.Equal(t, `{"id":"abc123"}`, string(payload))

	for _, method := range []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch} {
		req, err := client.newSignedRequest(context.Background(), method, "/nfc-keys/abc123", payload, nil)
		require.NoError(t, err)
		assert.Equal(t, want, req.Header[headerSignature][0], method)
	}
}
