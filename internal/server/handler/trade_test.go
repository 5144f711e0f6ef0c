package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alanyoungcy/polygateway/internal/domain"
	"github.com/alanyoungcy/polygateway/internal/trade"
)

// fakeExecutor records intents and replays a canned result.
type fakeExecutor struct {
	calls  int
	intent domain.TradeIntent
	res    *trade.Result
	err    error
}

func (f *fakeExecutor) Execute(_ context.Context, intent domain.TradeIntent) (*trade.Result, error) {
	f.calls++
	f.intent = intent
	return f.res, f.err
}

func doTrade(exec TradeExecutor, body string) *httptest.ResponseRecorder {
	h := NewTradeHandler(exec, discardLogger())
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/trade/execute", strings.NewReader(body)))
	return rec
}

const validTradeBody = `{"marketId":"m1","tokenId":"t1","side":"buy","size":10,"price":0.5,"slippage":0.1}`

func TestTradeHandler_MethodNotAllowed(t *testing.T) {
	f := &fakeExecutor{}
	h := NewTradeHandler(f, discardLogger())

	for _, method := range []string{http.MethodGet, http.MethodPut, http.MethodDelete, http.MethodHead} {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(method, "/api/trade/execute", nil))
		assert.Equal(t, http.StatusMethodNotAllowed, rec.Code, method)
	}
	assert.Zero(t, f.calls)
}

func TestTradeHandler_EmptyBody(t *testing.T) {
	for _, body := range []string{"", "   ", "\n\t"} {
		rec := doTrade(&fakeExecutor{}, body)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Empty body", errorBody(t, rec))
	}
}

func TestTradeHandler_MalformedJSON(t *testing.T) {
	for _, body := range []string{"{", `"just a string"`, "[1,2]"} {
		rec := doTrade(&fakeExecutor{}, body)
		assert.Equal(t, http.StatusBadRequest, rec.Code, body)
	}
}

func TestTradeHandler_BodyTooLarge(t *testing.T) {
	f := &fakeExecutor{}
	h := NewTradeHandler(f, discardLogger())

	big := bytes.Repeat([]byte("x"), maxTradeBody+1)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/trade/execute", bytes.NewReader(big)))

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	assert.Zero(t, f.calls)
}

func TestTradeHandler_ValidationFailureListsEveryViolation(t *testing.T) {
	f := &fakeExecutor{}
	rec := doTrade(f, `{"side":"hodl","size":10,"price":0.5,"tokenId":"t1"}`)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Zero(t, f.calls, "invalid payloads must not reach the executor")

	var out struct {
		Error   string   `json:"error"`
		Details []string `json:"details"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.Equal(t, "Invalid payload", out.Error)
	assert.Len(t, out.Details, 2) // marketId missing + bad side
}

func TestTradeHandler_PassesNormalizedIntent(t *testing.T) {
	f := &fakeExecutor{res: &trade.Result{Status: trade.StatusPaper}}
	rec := doTrade(f, `{"marketId":"m1","tokenId":"t1","side":"SELL","size":2,"price":0.3,"paper":true}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, 1, f.calls)
	assert.Equal(t, domain.SideSell, f.intent.Side)
	assert.True(t, f.intent.Paper)
	assert.Equal(t, "GTC", f.intent.TimeInForce)
}

func TestTradeHandler_ErrorMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"missing secret is operator error", fmt.Errorf("key not set: %w", domain.ErrMissingSecret), http.StatusInternalServerError},
		{"upstream failure", fmt.Errorf("submit: %w: boom", domain.ErrUpstream), http.StatusBadGateway},
		{"unknown error", fmt.Errorf("surprise"), http.StatusInternalServerError},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec := doTrade(&fakeExecutor{err: tc.err}, validTradeBody)
			assert.Equal(t, tc.want, rec.Code)
		})
	}
}

func TestTradeHandler_RejectedSubmissionIs502(t *testing.T) {
	f := &fakeExecutor{res: &trade.Result{
		Status:     trade.StatusRejected,
		HTTPStatus: 400,
		Response:   map[string]any{"error": "bad order"},
	}}
	rec := doTrade(f, validTradeBody)

	assert.Equal(t, http.StatusBadGateway, rec.Code)

	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.Equal(t, "rejected", out["status"])
	assert.Equal(t, float64(400), out["httpStatus"], "upstream's own code preserved for diagnostics")
}

func TestTradeHandler_SubmittedIs200(t *testing.T) {
	f := &fakeExecutor{res: &trade.Result{
		Status:     trade.StatusSubmitted,
		HTTPStatus: 200,
		Response:   map[string]any{"orderId": "o-1"},
	}}
	rec := doTrade(f, validTradeBody)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "no-store", rec.Header().Get("Cache-Control"))
}
