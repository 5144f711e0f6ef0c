// Command polygateway is the edge gateway entry point. It loads
// configuration, validates it, wires the proxy forwarders and the trade
// executor, sets up signal handling, and runs the HTTP server until
// interrupted.
package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/alanyoungcy/polygateway/internal/config"
	"github.com/alanyoungcy/polygateway/internal/crypto"
	"github.com/alanyoungcy/polygateway/internal/platform/polymarket"
	"github.com/alanyoungcy/polygateway/internal/server"
	"github.com/alanyoungcy/polygateway/internal/trade"
)

func main() {
	configPath := flag.String("config", "config.toml", "path to configuration file")
	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("failed to load config",
			slog.String("path", *configPath),
			slog.String("error", err.Error()),
		)
		os.Exit(1)
	}

	// Rebuild the logger at the configured level.
	var level slog.Level
	switch cfg.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}
	logger = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	secrets := config.LoadSecrets()
	logger.Info("gateway starting",
		slog.Int("port", cfg.Server.Port),
		slog.String("clob_host", cfg.Polymarket.ClobHost),
		slog.String("gamma_host", cfg.Polymarket.GammaHost),
		slog.String("secrets", secrets.String()),
	)

	upstreamTimeout := time.Duration(cfg.Polymarket.UpstreamTimeoutSec) * time.Second
	auth := &crypto.HMACAuth{
		Key:        secrets.APIKey,
		Secret:     secrets.APISecret,
		Passphrase: secrets.APIPassphrase,
	}

	executor := trade.NewExecutor(
		secrets.SigningKey,
		auth,
		polymarket.NewOrdersClient(cfg.Polymarket.ClobHost, upstreamTimeout, auth),
		logger,
	)

	srv := server.New(
		server.Config{
			Port:      cfg.Server.Port,
			StaticDir: cfg.Server.StaticDir,
		},
		server.Deps{
			ClobForwarder:  polymarket.NewForwarder(cfg.Polymarket.ClobHost, upstreamTimeout),
			GammaForwarder: polymarket.NewForwarder(cfg.Polymarket.GammaHost, upstreamTimeout),
			Executor:       executor,
		},
		logger,
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(srv.Start)
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("gateway exited with error", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("gateway stopped")
}
