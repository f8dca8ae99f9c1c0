package signer

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
)

// HeaderName is the request header the provider reads the signature from.
const HeaderName = "hmac-signature"

// Signer computes a keyed HMAC-SHA256 signature over serialized request
// bodies. The key is provisioned once; a malformed key is a configuration
// defect surfaced at construction, not a per-request failure.
type Signer struct {
	key []byte
}

func New(key string) (*Signer, error) {
	if key == "" {
		return nil, errors.New("signing key must not be empty")
	}
	return &Signer{key: []byte(key)}, nil
}

// Sign returns the hex-encoded HMAC-SHA256 of body. Pure function over
// (key, body); safe for concurrent use.
func (s *Signer) Sign(body []byte) string {
	h := hmac.New(sha256.New, s.key)
	h.Write(body)
	return hex.EncodeToString(h.Sum(nil))
}
