package domain

// Side indicates whether a trade buys or sells the outcome token.
type Side string

const (
	SideBuy  Side = "buy"
	SideSell Side = "sell"
)

// Valid reports whether the side is one of the two known values.
func (s Side) Valid() bool {
	return s == SideBuy || s == SideSell
}

// TradeIntent is the normalized, per-request trade request. It is built
// from an untyped JSON body by trade.Normalize and checked by
// trade.Validate; it never outlives the request that carried it.
type TradeIntent struct {
	MarketID      string
	TokenID       string
	Side          Side
	Size          float64 // outcome tokens, must be finite and > 0
	Price         float64 // probability price, must be finite and in (0, 1)
	Slippage      float64 // tolerance fraction, must be finite and in [0, 0.2]
	Paper         bool
	ClientOrderID string
	TimeInForce   string // defaults to "GTC"
}

// Order is the canonical order representation submitted upstream. All
// numeric fields are fixed 6-decimal strings so the signed bytes and the
// submitted bytes cannot drift through float re-encoding.
type Order struct {
	MarketID      string `json:"market_id"`
	TokenID       string `json:"token_id"`
	Side          string `json:"side"` // upper-cased
	Size          string `json:"size"`
	Price         string `json:"price"` // slippage-adjusted
	TimeInForce   string `json:"time_in_force"`
	ClientOrderID string `json:"client_order_id,omitempty"`
}

// Fields returns the order's business fields as a flat map, the input to
// canonical sorted-key serialization for signing. ClientOrderID is
// omitted entirely when empty, matching its omitempty wire behavior.
func (o Order) Fields() map[string]string {
	fields := map[string]string{
		"market_id":     o.MarketID,
		"token_id":      o.TokenID,
		"side":          o.Side,
		"size":          o.Size,
		"price":         o.Price,
		"time_in_force": o.TimeInForce,
	}
	if o.ClientOrderID != "" {
		fields["client_order_id"] = o.ClientOrderID
	}
	return fields
}

// SignedOrder is an Order plus its HMAC signature, as submitted to the
// upstream order endpoint and echoed back to paper-mode callers. The
// signature covers the Order fields only, never itself.
type SignedOrder struct {
	Order
	Signature string `json:"signature"`
}

// UpstreamResponse carries an upstream HTTP verdict back to the trade
// pipeline without committing to a body shape; upstream error bodies are
// not guaranteed to be JSON.
type UpstreamResponse struct {
	StatusCode int
	Body       []byte
}

// OK reports whether the upstream accepted the request (2xx).
func (r UpstreamResponse) OK() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}
