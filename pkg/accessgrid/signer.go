package accessgrid

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
)

// Signer computes payload signatures for the X-PAYLOAD-SIG header.
//
// The signature of a payload is the lowercase hex HMAC-SHA256 of its standard
// base64 encoding, keyed with the raw bytes of the API secret. It depends only
// on the payload bytes, never on the HTTP method.
type Signer struct {
	key []byte
}

// NewSigner returns a Signer keyed with secret.
func NewSigner(secret string) *Signer {
	return &Signer{key: []byte(secret)}
}

// Sign returns the signature of payload.
func (s *Signer) Sign(payload []byte) string {
	encoded := base64.StdEncoding.EncodeToString(payload)

	mac := hmac.New(sha256.New, s.key)
	mac.Write([]byte(encoded))

	return hex.EncodeToString(mac.Sum(nil))
}
