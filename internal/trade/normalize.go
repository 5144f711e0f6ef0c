// Package trade implements the order construction-and-signing pipeline:
// payload normalization, validation, slippage-adjusted order assembly,
// signing, and upstream submission.
package trade

import (
	"strings"

	"github.com/alanyoungcy/polygateway/internal/domain"
)

// Normalize converts an arbitrary decoded JSON object into a TradeIntent.
// It is total: missing or wrong-typed fields coerce to safe zero values
// (empty string, 0, false) instead of failing, and all rejection is
// deferred to Validate so the caller sees every problem at once.
func Normalize(raw map[string]any) domain.TradeIntent {
	intent := domain.TradeIntent{
		MarketID:      stringField(raw, "marketId"),
		TokenID:       stringField(raw, "tokenId"),
		Side:          domain.Side(strings.ToLower(stringField(raw, "side"))),
		Size:          numberField(raw, "size"),
		Price:         numberField(raw, "price"),
		Slippage:      numberField(raw, "slippage"),
		Paper:         boolField(raw, "paper"),
		ClientOrderID: stringField(raw, "clientOrderId"),
		TimeInForce:   stringField(raw, "timeInForce"),
	}
	if intent.TimeInForce == "" {
		intent.TimeInForce = "GTC"
	}
	return intent
}

func stringField(raw map[string]any, key string) string {
	if v, ok := raw[key].(string); ok {
		return v
	}
	return ""
}

func numberField(raw map[string]any, key string) float64 {
	if v, ok := raw[key].(float64); ok {
		return v
	}
	return 0
}

func boolField(raw map[string]any, key string) bool {
	if v, ok := raw[key].(bool); ok {
		return v
	}
	return false
}
