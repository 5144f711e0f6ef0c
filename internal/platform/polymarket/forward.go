// Package polymarket contains the REST clients for the two Polymarket
// upstreams: a transparent forwarder used by the proxy routes, and the
// authenticated order-submission client used by the trade pipeline.
package polymarket

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const proxyUserAgent = "polygateway/proxy"

// ForwardRequest describes one allow-listed request to pass through to an
// upstream origin. Path is the already-validated remainder after the
// route prefix; RawQuery is forwarded untouched.
type ForwardRequest struct {
	Method   string
	Path     string
	RawQuery string
	Body     []byte // non-nil only for POST
}

// ForwardResult is the upstream's verbatim answer: status, headers, and
// body, for the caller to relay with its own CORS headers applied.
type ForwardResult struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// Forwarder passes allow-listed requests through to one upstream origin.
// Only the accept, content-type (POST), and user-agent headers are ever
// sent; caller-supplied headers never cross the trust boundary.
type Forwarder struct {
	baseURL    string
	httpClient *http.Client
}

// NewForwarder creates a Forwarder for the given origin, e.g.
// "https://clob.polymarket.com". A timeout of zero falls back to 30s.
func NewForwarder(baseURL string, timeout time.Duration) *Forwarder {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Forwarder{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Forward sends the request upstream and returns the response verbatim.
// Any transport-level failure (DNS, TLS, timeout, cancellation) is
// returned as an error; non-2xx upstream statuses are not errors.
func (f *Forwarder) Forward(ctx context.Context, fr ForwardRequest) (*ForwardResult, error) {
	target := f.baseURL + "/" + fr.Path
	if fr.RawQuery != "" {
		target += "?" + fr.RawQuery
	}
	if _, err := url.Parse(target); err != nil {
		return nil, fmt.Errorf("polymarket/forward: bad upstream url: %w", err)
	}

	var body io.Reader
	if fr.Method == http.MethodPost && fr.Body != nil {
		body = bytes.NewReader(fr.Body)
	}

	req, err := http.NewRequestWithContext(ctx, fr.Method, target, body)
	if err != nil {
		return nil, fmt.Errorf("polymarket/forward: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", proxyUserAgent)
	if fr.Method == http.MethodPost {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("polymarket/forward: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("polymarket/forward: read response: %w", err)
	}

	return &ForwardResult{
		StatusCode: resp.StatusCode,
		Header:     resp.Header.Clone(),
		Body:       respBody,
	}, nil
}
