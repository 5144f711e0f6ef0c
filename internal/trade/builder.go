package trade

import (
	"strconv"
	"strings"

	"github.com/alanyoungcy/polygateway/internal/domain"
)

// Limit prices are clamped into this range after slippage adjustment so
// an extreme tolerance cannot push the order outside the valid
// probability interval. Clamping, not rejection: callers requesting
// extreme slippage get the best representable price.
const (
	MinLimitPrice = 0.0001
	MaxLimitPrice = 0.9999
)

// ApplySlippage widens the limit price in the fill-favorable direction:
// buys pay up to price*(1+slippage), sells accept down to
// price*(1-slippage). The result is clamped to
// [MinLimitPrice, MaxLimitPrice].
func ApplySlippage(price float64, side domain.Side, slippage float64) float64 {
	factor := 1 - slippage
	if side == domain.SideBuy {
		factor = 1 + slippage
	}
	adjusted := price * factor

	if adjusted < MinLimitPrice {
		return MinLimitPrice
	}
	if adjusted > MaxLimitPrice {
		return MaxLimitPrice
	}
	return adjusted
}

// FormatNumber renders v as a fixed 6-decimal-place string. All numeric
// order fields travel as strings so the signed payload and the submitted
// payload cannot diverge through float re-encoding.
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', 6, 64)
}

// BuildOrder assembles the canonical order from a validated intent and
// its slippage-adjusted limit price. client_order_id is included only
// when non-empty to keep the signed payload compact and stable.
func BuildOrder(intent domain.TradeIntent, limitPrice float64) domain.Order {
	tif := intent.TimeInForce
	if tif == "" {
		tif = "GTC"
	}
	return domain.Order{
		MarketID:      intent.MarketID,
		TokenID:       intent.TokenID,
		Side:          strings.ToUpper(string(intent.Side)),
		Size:          FormatNumber(intent.Size),
		Price:         FormatNumber(limitPrice),
		TimeInForce:   strings.ToUpper(tif),
		ClientOrderID: intent.ClientOrderID,
	}
}
