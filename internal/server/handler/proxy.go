package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/alanyoungcy/polygateway/internal/platform/polymarket"
)

// Exact per-route method lists, advertised via CORS and enforced by the
// handlers.
const (
	ClobMethods  = "GET,POST,OPTIONS"
	GammaMethods = "GET,OPTIONS"
	TradeMethods = "POST,OPTIONS"
)

// maxProxyBody caps proxied POST bodies so the gateway cannot be used to
// amplify large uploads.
const maxProxyBody = 256 << 10 // 256 KiB

// UpstreamForwarder is the transport the proxy handler forwards through.
type UpstreamForwarder interface {
	Forward(ctx context.Context, fr polymarket.ForwardRequest) (*polymarket.ForwardResult, error)
}

// ProxyHandler serves one allow-listed passthrough route (clob or
// gamma). It enforces the route's allowlist, method set, and body cap,
// then relays the upstream response verbatim.
type ProxyHandler struct {
	route     string
	prefix    string
	allow     Allowlist
	allowPost bool
	forwarder UpstreamForwarder
	logger    *slog.Logger
}

// NewClobProxy creates the proxy handler for /api/clob (GET and POST).
func NewClobProxy(allow Allowlist, forwarder UpstreamForwarder, logger *slog.Logger) *ProxyHandler {
	return &ProxyHandler{
		route:     "clob",
		prefix:    "/api/clob",
		allow:     allow,
		allowPost: true,
		forwarder: forwarder,
		logger:    logger,
	}
}

// NewGammaProxy creates the proxy handler for /api/gamma (GET only).
func NewGammaProxy(allow Allowlist, forwarder UpstreamForwarder, logger *slog.Logger) *ProxyHandler {
	return &ProxyHandler{
		route:     "gamma",
		prefix:    "/api/gamma",
		allow:     allow,
		allowPost: false,
		forwarder: forwarder,
		logger:    logger,
	}
}

// ServeHTTP dispatches one proxied request. OPTIONS never reaches this
// handler; the CORS middleware answers preflights.
func (h *ProxyHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	rest := strings.TrimPrefix(r.URL.Path, h.prefix)
	segments := splitPath(rest)

	top := ""
	if len(segments) > 0 {
		top = strings.ToLower(segments[0])
	}
	if !h.allow.Contains(top) {
		h.logger.WarnContext(r.Context(), "proxy: blocked path",
			slog.String("route", h.route),
			slog.String("segment", top),
		)
		writeError(w, http.StatusForbidden, "Blocked path: "+top)
		return
	}

	if r.Method != http.MethodGet && !(r.Method == http.MethodPost && h.allowPost) {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	var body []byte
	if r.Method == http.MethodPost {
		b, err := io.ReadAll(io.LimitReader(r.Body, maxProxyBody+1))
		if err != nil {
			writeError(w, http.StatusBadRequest, "unable to read request body")
			return
		}
		if len(b) > maxProxyBody {
			writeError(w, http.StatusRequestEntityTooLarge, "Body too large")
			return
		}
		body = b
	}

	res, err := h.forwarder.Forward(r.Context(), polymarket.ForwardRequest{
		Method:   r.Method,
		Path:     strings.Join(segments, "/"),
		RawQuery: r.URL.RawQuery,
		Body:     body,
	})
	if err != nil {
		h.logger.ErrorContext(r.Context(), "proxy: upstream failure",
			slog.String("route", h.route),
			slog.String("error", err.Error()),
		)
		writeError(w, http.StatusBadGateway, err.Error())
		return
	}

	relayUpstream(w, res)
}

// relayUpstream copies the upstream response through verbatim. CORS
// headers already set by the middleware are preserved; any the upstream
// sent are dropped so the gateway's own policy always wins. Hop-by-hop
// and length headers are recomputed by the local server.
func relayUpstream(w http.ResponseWriter, res *polymarket.ForwardResult) {
	for k, vs := range res.Header {
		if skipRelayHeader(k) {
			continue
		}
		for _, v := range vs {
			w.Header().Add(k, v)
		}
	}
	w.WriteHeader(res.StatusCode)
	w.Write(res.Body)
}

func skipRelayHeader(key string) bool {
	switch http.CanonicalHeaderKey(key) {
	case "Content-Length", "Transfer-Encoding", "Connection":
		return true
	}
	return strings.HasPrefix(http.CanonicalHeaderKey(key), "Access-Control-")
}

// splitPath splits on "/" and drops empty segments.
func splitPath(p string) []string {
	parts := strings.Split(p, "/")
	out := parts[:0]
	for _, s := range parts {
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}
