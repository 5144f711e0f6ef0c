// Package server assembles the gateway's HTTP surface: path-prefix
// dispatch to the two allow-listed proxy routes and the trade endpoint,
// with static assets as the fallback.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/alanyoungcy/polygateway/internal/server/handler"
	"github.com/alanyoungcy/polygateway/internal/server/middleware"
)

// Config holds the HTTP server configuration.
type Config struct {
	Port      int
	StaticDir string
}

// Deps aggregates the collaborators the router dispatches to.
type Deps struct {
	ClobForwarder  handler.UpstreamForwarder
	GammaForwarder handler.UpstreamForwarder
	Executor       handler.TradeExecutor
}

// Server is the edge gateway HTTP server.
type Server struct {
	httpServer *http.Server
	handler    http.Handler
	logger     *slog.Logger
}

// New creates a Server with all routes registered. The per-route
// allowlists are fixed here, at startup, and injected into the proxy
// handlers; nothing reconstructs them per request.
func New(cfg Config, deps Deps, logger *slog.Logger) *Server {
	mux := http.NewServeMux()

	clob := handler.NewClobProxy(
		handler.NewAllowlist("books", "ok"),
		deps.ClobForwarder, logger,
	)
	gamma := handler.NewGammaProxy(
		handler.NewAllowlist("markets", "events", "tags", "sports", "health"),
		deps.GammaForwarder, logger,
	)
	tradeExecute := handler.NewTradeHandler(deps.Executor, logger)

	// Each API route carries its own exact CORS method list; the bare
	// prefix (no trailing segment) is routed too so it hits the
	// allowlist check rather than the static fallback.
	clobChain := middleware.CORS(handler.ClobMethods)(clob)
	mux.Handle("/api/clob", clobChain)
	mux.Handle("/api/clob/", clobChain)

	gammaChain := middleware.CORS(handler.GammaMethods)(gamma)
	mux.Handle("/api/gamma", gammaChain)
	mux.Handle("/api/gamma/", gammaChain)

	mux.Handle("/api/trade/execute", middleware.CORS(handler.TradeMethods)(tradeExecute))

	mux.Handle("/", handler.NewStaticHandler(cfg.StaticDir, logger))

	var h http.Handler = mux
	h = middleware.Logging(logger)(h)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      h,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return &Server{
		httpServer: srv,
		handler:    h,
		logger:     logger,
	}
}

// Handler exposes the fully-wired handler chain, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Start begins listening for HTTP requests. It blocks until the server
// encounters an error or is shut down.
func (s *Server) Start() error {
	s.logger.Info("server: starting",
		slog.String("addr", s.httpServer.Addr),
	)
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server: listen: %w", err)
	}
	return nil
}

// Shutdown gracefully shuts down the server, waiting for in-flight
// requests to complete within the given context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("server: shutting down")
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server: shutdown: %w", err)
	}
	return nil
}
