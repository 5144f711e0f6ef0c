// Package crypto implements the two HMAC-SHA256 signatures the gateway
// produces: the order signature over canonical order JSON, and the
// upstream request-authentication signature. Both share one primitive
// but are exposed as distinct typed operations so a key cannot be used
// with the wrong message.
package crypto

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"
)

// isoTimestamp is the upstream's expected timestamp layout: RFC 3339 UTC
// with millisecond precision.
const isoTimestamp = "2006-01-02T15:04:05.000Z"

// HMACAuth holds the pre-shared credentials for authenticated requests
// against the Polymarket CLOB order endpoint.
type HMACAuth struct {
	Key        string // API key
	Secret     string // API secret, the HMAC key for request signatures
	Passphrase string // API passphrase
}

// Complete reports whether all three credentials are present. Submission
// must not be attempted with a partial credential set.
func (h *HMACAuth) Complete() bool {
	return h != nil && h.Key != "" && h.Secret != "" && h.Passphrase != ""
}

// OrderHeaders returns the authentication headers for an order-submission
// request with the given serialized body. The signature is HMAC-SHA256
// over timestamp+method+path+body, hex-encoded.
//
// Returned header keys:
//   - POLYMARKET-API-KEY
//   - POLYMARKET-API-PASSPHRASE
//   - POLYMARKET-API-TIMESTAMP
//   - POLYMARKET-API-SIGNATURE
func (h *HMACAuth) OrderHeaders(body string) map[string]string {
	return h.OrderHeadersAt(body, time.Now())
}

// OrderHeadersAt is like OrderHeaders but lets the caller supply the
// timestamp (useful for deterministic testing).
func (h *HMACAuth) OrderHeadersAt(body string, at time.Time) map[string]string {
	ts := at.UTC().Format(isoTimestamp)

	message := ts + "POST" + "/orders" + body
	sig := hmacSHA256Hex([]byte(h.Secret), message)

	return map[string]string{
		"POLYMARKET-API-KEY":        h.Key,
		"POLYMARKET-API-PASSPHRASE": h.Passphrase,
		"POLYMARKET-API-TIMESTAMP":  ts,
		"POLYMARKET-API-SIGNATURE":  sig,
	}
}

// String returns a redacted representation suitable for logging.
func (h *HMACAuth) String() string {
	redact := func(s string) string {
		if len(s) <= 4 {
			return "****"
		}
		return s[:4] + "****"
	}
	return fmt.Sprintf("HMACAuth{key=%s, secret=%s}", redact(h.Key), redact(h.Secret))
}

// hmacSHA256Hex computes HMAC-SHA256 of message using key and returns the
// lower-case hex encoding of the raw digest.
func hmacSHA256Hex(key []byte, message string) string {
	mac := hmac.New(sha256.New, key)
	mac.Write([]byte(message))
	return hex.EncodeToString(mac.Sum(nil))
}
