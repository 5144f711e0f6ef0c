package trade

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/alanyoungcy/polygateway/internal/crypto"
	"github.com/alanyoungcy/polygateway/internal/domain"
)

// Statuses reported to the caller in Result.Status.
const (
	StatusPaper     = "paper"
	StatusSubmitted = "submitted"
	StatusRejected  = "rejected"
)

// Submitter sends a serialized signed order to the upstream order
// endpoint and reports the upstream's verdict. A transport-level failure
// is an error; a business rejection is a non-2xx UpstreamResponse.
type Submitter interface {
	SubmitOrder(ctx context.Context, body []byte) (domain.UpstreamResponse, error)
}

// Result is the trade endpoint's response envelope. HTTPStatus and
// Response are present only after a live submission; Order and Message
// only in paper mode.
type Result struct {
	Status     string              `json:"status"`
	Order      *domain.SignedOrder `json:"order,omitempty"`
	Message    string              `json:"message,omitempty"`
	HTTPStatus int                 `json:"httpStatus,omitempty"`
	Response   any                 `json:"response,omitempty"`
}

// Executor runs the trade pipeline for one validated intent: build the
// canonical order, sign it, and either short-circuit in paper mode or
// submit it upstream with authenticated headers. It holds only read-only
// configuration; every call is independent.
type Executor struct {
	signingKey string
	auth       *crypto.HMACAuth
	submitter  Submitter
	logger     *slog.Logger
}

// NewExecutor creates an Executor. signingKey may be empty and auth may
// be incomplete; Execute reports those as configuration errors at the
// latest point the pipeline can proceed without them.
func NewExecutor(signingKey string, auth *crypto.HMACAuth, submitter Submitter, logger *slog.Logger) *Executor {
	return &Executor{
		signingKey: signingKey,
		auth:       auth,
		submitter:  submitter,
		logger:     logger,
	}
}

// Execute runs the pipeline for an already-validated intent. Errors wrap
// domain.ErrMissingSecret for deployment problems and domain.ErrUpstream
// for transport failures; the handler layer maps those to 500 and 502.
func (e *Executor) Execute(ctx context.Context, intent domain.TradeIntent) (*Result, error) {
	limitPrice := ApplySlippage(intent.Price, intent.Side, intent.Slippage)
	order := BuildOrder(intent, limitPrice)

	if e.signingKey == "" {
		return nil, fmt.Errorf("POLYMARKET_PRIVATE_KEY is not configured: %w", domain.ErrMissingSecret)
	}

	signed := domain.SignedOrder{
		Order:     order,
		Signature: crypto.NewOrderSigner(e.signingKey).Sign(order),
	}

	if intent.Paper {
		e.logger.InfoContext(ctx, "trade: paper order built",
			slog.String("market_id", order.MarketID),
			slog.String("side", order.Side),
			slog.String("price", order.Price),
		)
		return &Result{
			Status:  StatusPaper,
			Order:   &signed,
			Message: "Paper mode enabled. No live order submitted.",
		}, nil
	}

	if !e.auth.Complete() {
		return nil, fmt.Errorf("POLYMARKET_API_KEY, POLYMARKET_API_SECRET and POLYMARKET_API_PASSPHRASE must be configured: %w", domain.ErrMissingSecret)
	}

	body, err := json.Marshal(signed)
	if err != nil {
		return nil, fmt.Errorf("trade: marshal order: %w", err)
	}

	resp, err := e.submitter.SubmitOrder(ctx, body)
	if err != nil {
		return nil, fmt.Errorf("trade: submit order: %w: %w", domain.ErrUpstream, err)
	}

	status := StatusSubmitted
	if !resp.OK() {
		status = StatusRejected
		e.logger.WarnContext(ctx, "trade: order rejected upstream",
			slog.String("market_id", order.MarketID),
			slog.Int("http_status", resp.StatusCode),
		)
	}

	return &Result{
		Status:     status,
		HTTPStatus: resp.StatusCode,
		Response:   decodeUpstreamBody(resp.Body),
	}, nil
}

// decodeUpstreamBody attempts a JSON parse of the upstream body and falls
// back to the raw text, since upstream error bodies are not guaranteed to
// be JSON.
func decodeUpstreamBody(body []byte) any {
	var v any
	if err := json.Unmarshal(body, &v); err != nil {
		return string(body)
	}
	return v
}
