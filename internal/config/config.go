// Package config defines the gateway configuration and provides loading
// and validation helpers. Non-secret settings come from TOML with
// GATEWAY_* environment overrides; secrets come only from the
// environment and never from files.
package config

import (
	"fmt"
	"net/url"
)

// Config is the root configuration structure. Fields are populated from a
// TOML file and then optionally overridden by GATEWAY_* environment
// variables.
type Config struct {
	Server     ServerConfig     `toml:"server"`
	Polymarket PolymarketConfig `toml:"polymarket"`
	LogLevel   string           `toml:"log_level"`
}

// ServerConfig holds the HTTP listener configuration.
type ServerConfig struct {
	Port      int    `toml:"port"`
	StaticDir string `toml:"static_dir"` // asset fallback root; empty disables asset serving
}

// PolymarketConfig holds the upstream origins and the per-call deadline.
type PolymarketConfig struct {
	ClobHost           string `toml:"clob_host"`
	GammaHost          string `toml:"gamma_host"`
	UpstreamTimeoutSec int    `toml:"upstream_timeout_sec"`
}

// Defaults returns the built-in configuration used when the TOML file
// omits a field.
func Defaults() Config {
	return Config{
		Server: ServerConfig{
			Port: 8787,
		},
		Polymarket: PolymarketConfig{
			ClobHost:           "https://clob.polymarket.com",
			GammaHost:          "https://gamma-api.polymarket.com",
			UpstreamTimeoutSec: 30,
		},
		LogLevel: "info",
	}
}

// Validate checks the configuration for values the gateway cannot run
// with. It returns the first problem found.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("config: server.port %d out of range", c.Server.Port)
	}
	if err := validOrigin(c.Polymarket.ClobHost); err != nil {
		return fmt.Errorf("config: polymarket.clob_host: %w", err)
	}
	if err := validOrigin(c.Polymarket.GammaHost); err != nil {
		return fmt.Errorf("config: polymarket.gamma_host: %w", err)
	}
	if c.Polymarket.UpstreamTimeoutSec <= 0 {
		return fmt.Errorf("config: polymarket.upstream_timeout_sec must be positive")
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config: unknown log_level %q", c.LogLevel)
	}
	return nil
}

func validOrigin(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("origin %q must be http or https", raw)
	}
	if u.Host == "" {
		return fmt.Errorf("origin %q has no host", raw)
	}
	return nil
}
