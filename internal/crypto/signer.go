package crypto

import (
	"bytes"
	"encoding/json"
	"sort"

	"github.com/alanyoungcy/polygateway/internal/domain"
)

// OrderSigner produces deterministic HMAC-SHA256 signatures over the
// canonical JSON form of an order. The same logical order always signs
// identically regardless of how it was constructed, because the payload
// keys are serialized in sorted order.
type OrderSigner struct {
	key []byte
}

// NewOrderSigner creates an OrderSigner with the given signing secret.
func NewOrderSigner(key string) *OrderSigner {
	return &OrderSigner{key: []byte(key)}
}

// Sign returns the lower-case hex HMAC-SHA256 signature of the order's
// canonical JSON payload.
func (s *OrderSigner) Sign(order domain.Order) string {
	return hmacSHA256Hex(s.key, string(CanonicalJSON(order.Fields())))
}

// CanonicalJSON serializes fields as a JSON object with keys in
// lexicographic order. String values are escaped with encoding/json so
// the output is always valid JSON.
func CanonicalJSON(fields map[string]string) []byte {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		writeJSONString(&buf, k)
		buf.WriteByte(':')
		writeJSONString(&buf, fields[k])
	}
	buf.WriteByte('}')
	return buf.Bytes()
}

func writeJSONString(buf *bytes.Buffer, s string) {
	// Marshal of a string cannot fail.
	b, _ := json.Marshal(s)
	buf.Write(b)
}
