package logic

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"net/url"
	"skimbox/shared"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_signer.go -package mocks skimbox/logic ISigner

const nonceLen = 16
const nonceAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// ISigner produces and verifies the HMAC-signed payloads behind action links.
//
// A link carries no rights beyond what its parameters encode, and holding a
// valid link means holding the right: there is no expiry and no single-use
// nonce consumption, so a link replays indefinitely. That is a deliberate
// trade-off in favor of long-lived links that keep working from old emails.
type ISigner interface {
	Sign(payload string) string
	Verify(payload, sig string) bool
	BuildPayload(userId, nonce, action, itemId string) string
	NewNonce() string
}

type signer struct {
	key []byte
}

func NewSigner(cfg *shared.Config) ISigner {
	return &signer{key: []byte(cfg.Secrets.HmacKey)}
}

// Sign computes an HMAC-SHA256 over the exact payload bytes and returns it
// base64-encoded.
func (s *signer) Sign(payload string) string {
	mac := hmac.New(sha256.New, s.key)
	mac.Write([]byte(payload))
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}

// Verify recomputes the expected signature and compares in constant time.
// Any decode error or length mismatch is a plain rejection, never an error.
func (s *signer) Verify(payload, sig string) bool {
	expected := s.Sign(payload)
	if len(expected) != len(sig) {
		return false
	}
	expectedBytes, err := base64.StdEncoding.DecodeString(expected)
	if err != nil {
		return false
	}
	sigBytes, err := base64.StdEncoding.DecodeString(sig)
	if err != nil {
		return false
	}
	if len(expectedBytes) != len(sigBytes) {
		return false
	}
	return subtle.ConstantTimeCompare(expectedBytes, sigBytes) == 1
}

// BuildPayload serializes the action parameters as a canonical query string
// in fixed field order: u, t, act, then id if present. Signing and
// verification must both go through here; the raw query string a client
// sends is never signed directly.
func (s *signer) BuildPayload(userId, nonce, action, itemId string) string {
	res := "u=" + url.QueryEscape(userId) +
		"&t=" + url.QueryEscape(nonce) +
		"&act=" + url.QueryEscape(action)
	if itemId != "" {
		res += "&id=" + url.QueryEscape(itemId)
	}
	return res
}

// NewNonce returns a random 16-character alphanumeric token. It only adds
// entropy and traceability to links; the signature is what protects them.
func (s *signer) NewNonce() string {
	buf := make([]byte, nonceLen)
	if _, err := rand.Read(buf); err != nil {
		panic(err)
	}
	res := make([]byte, nonceLen)
	for i, b := range buf {
		res[i] = nonceAlphabet[int(b)%len(nonceAlphabet)]
	}
	return string(res)
}
