package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/alanyoungcy/polygateway/internal/domain"
	"github.com/alanyoungcy/polygateway/internal/trade"
)

// maxTradeBody caps the trade request body. It is deliberately smaller
// than the proxy cap: a trade intent is a small structured payload.
const maxTradeBody = 64 << 10 // 64 KiB

// TradeExecutor runs the construction/signing/submission pipeline for a
// validated intent.
type TradeExecutor interface {
	Execute(ctx context.Context, intent domain.TradeIntent) (*trade.Result, error)
}

// TradeHandler serves POST /api/trade/execute.
type TradeHandler struct {
	executor TradeExecutor
	logger   *slog.Logger
}

// NewTradeHandler creates a TradeHandler with the given executor and
// logger.
func NewTradeHandler(executor TradeExecutor, logger *slog.Logger) *TradeHandler {
	return &TradeHandler{
		executor: executor,
		logger:   logger,
	}
}

// ServeHTTP runs one trade request through the pipeline. Each failure
// layer maps to its own status: 405 method, 413 cap, 400 parse, 422
// validation, 500 configuration, 502 upstream. The outer status of a
// completed submission reflects the upstream verdict (200 submitted,
// 502 rejected) while httpStatus inside the envelope preserves the
// upstream's own code.
func (h *TradeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, maxTradeBody+1))
	if err != nil {
		writeError(w, http.StatusBadRequest, "unable to read request body")
		return
	}
	if len(body) > maxTradeBody {
		writeError(w, http.StatusRequestEntityTooLarge, "Body too large")
		return
	}
	if len(bytes.TrimSpace(body)) == 0 {
		writeError(w, http.StatusBadRequest, "Empty body")
		return
	}

	var raw map[string]any
	if err := json.Unmarshal(body, &raw); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}

	intent := trade.Normalize(raw)
	if details := trade.Validate(intent); len(details) > 0 {
		writeInvalidPayload(w, details)
		return
	}

	result, err := h.executor.Execute(r.Context(), intent)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrMissingSecret):
			// A deployment error, not a caller error.
			writeError(w, http.StatusInternalServerError, err.Error())
		case errors.Is(err, domain.ErrUpstream):
			writeError(w, http.StatusBadGateway, err.Error())
		default:
			h.logger.ErrorContext(r.Context(), "handler: trade execute failed",
				slog.String("error", err.Error()),
			)
			writeError(w, http.StatusInternalServerError, "internal server error")
		}
		return
	}

	status := http.StatusOK
	if result.Status == trade.StatusRejected {
		status = http.StatusBadGateway
	}
	writeJSON(w, status, result)
}
