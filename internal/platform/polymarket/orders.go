package polymarket

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/alanyoungcy/polygateway/internal/crypto"
	"github.com/alanyoungcy/polygateway/internal/domain"
)

const (
	tradeUserAgent = "polygateway/trade-execute"
	ordersPath     = "/orders"
)

// OrdersClient submits signed orders to the CLOB order endpoint with
// pre-shared-secret authentication headers on every call.
type OrdersClient struct {
	baseURL    string
	httpClient *http.Client
	auth       *crypto.HMACAuth
}

// NewOrdersClient creates an order-submission client for the given CLOB
// origin. The caller is responsible for checking auth completeness
// before submitting; the client assumes usable credentials.
func NewOrdersClient(baseURL string, timeout time.Duration, auth *crypto.HMACAuth) *OrdersClient {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &OrdersClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		auth: auth,
	}
}

// SubmitOrder POSTs the serialized signed order to /orders and returns
// the upstream status and body without judging them; the trade pipeline
// decides what counts as a rejection.
func (c *OrdersClient) SubmitOrder(ctx context.Context, body []byte) (domain.UpstreamResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+ordersPath, bytes.NewReader(body))
	if err != nil {
		return domain.UpstreamResponse{}, fmt.Errorf("polymarket/orders: build request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", tradeUserAgent)
	for k, v := range c.auth.OrderHeaders(string(body)) {
		req.Header.Set(k, v)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return domain.UpstreamResponse{}, fmt.Errorf("polymarket/orders: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return domain.UpstreamResponse{}, fmt.Errorf("polymarket/orders: read response: %w", err)
	}

	return domain.UpstreamResponse{
		StatusCode: resp.StatusCode,
		Body:       respBody,
	}, nil
}
