package trade

import (
	"math"

	"github.com/alanyoungcy/polygateway/internal/domain"
)

// MaxSlippage is the largest accepted slippage tolerance (20%).
const MaxSlippage = 0.2

// Validate checks a normalized intent against the payload constraints and
// returns one message per violated rule. It accumulates instead of
// short-circuiting so a caller can fix every field in one round trip. An
// empty result means the intent is safe to build and sign.
func Validate(intent domain.TradeIntent) []string {
	var errs []string

	if intent.MarketID == "" {
		errs = append(errs, "marketId is required")
	}
	if intent.TokenID == "" {
		errs = append(errs, "tokenId is required")
	}
	if !intent.Side.Valid() {
		errs = append(errs, "side must be buy or sell")
	}
	if !isFinite(intent.Size) || intent.Size <= 0 {
		errs = append(errs, "size must be > 0")
	}
	// A price at or beyond the interval boundary is categorically invalid
	// for a probability-denominated market.
	if !isFinite(intent.Price) || intent.Price <= 0 || intent.Price >= 1 {
		errs = append(errs, "price must be between 0 and 1")
	}
	if !isFinite(intent.Slippage) || intent.Slippage < 0 || intent.Slippage > MaxSlippage {
		errs = append(errs, "slippage must be between 0 and 0.2")
	}

	return errs
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
