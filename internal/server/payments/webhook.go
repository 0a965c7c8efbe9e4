package payments

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// SignatureHeader is the request header carrying the webhook HMAC.
const SignatureHeader = "X-IntaSend-Signature"

// StateComplete marks a successfully settled payment. Webhooks in any other
// state are acknowledged but ignored.
const StateComplete = "COMPLETE"

// WebhookEvent is the payload the provider posts to the callback URL.
type WebhookEvent struct {
	State    string `json:"state"`
	Metadata struct {
		EntryID string `json:"entry_id"`
		Product string `json:"product"`
	} `json:"metadata"`
}

// Sign computes the hex-encoded HMAC-SHA256 of payload under secret.
func Sign(payload []byte, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(payload)
	return hex.EncodeToString(mac.Sum(nil))
}

// VerifySignature reports whether signature matches payload under secret,
// using a constant-time comparison.
func VerifySignature(payload []byte, signature, secret string) bool {
	return hmac.Equal([]byte(signature), []byte(Sign(payload, secret)))
}
