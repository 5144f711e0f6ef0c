package config

import (
	"os"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Load reads a TOML configuration file at path (if it exists), merges it
// on top of the built-in defaults, applies GATEWAY_* environment variable
// overrides, and returns the final Config. The returned Config has NOT
// been validated; the caller should invoke Config.Validate() after Load.
func Load(path string) (*Config, error) {
	cfg := Defaults()

	if _, err := os.Stat(path); err == nil {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return nil, err
		}
	}

	// Load .env file if present (silently ignore if missing).
	_ = godotenv.Load()

	applyEnvOverrides(&cfg)

	return &cfg, nil
}

// applyEnvOverrides reads well-known GATEWAY_* environment variables and
// overwrites the corresponding Config fields when a variable is set. This
// lets operators configure a deployment without touching the TOML file.
func applyEnvOverrides(cfg *Config) {
	setInt(&cfg.Server.Port, "GATEWAY_SERVER_PORT")
	setStr(&cfg.Server.StaticDir, "GATEWAY_SERVER_STATIC_DIR")

	setStr(&cfg.Polymarket.ClobHost, "GATEWAY_POLYMARKET_CLOB_HOST")
	setStr(&cfg.Polymarket.GammaHost, "GATEWAY_POLYMARKET_GAMMA_HOST")
	setInt(&cfg.Polymarket.UpstreamTimeoutSec, "GATEWAY_POLYMARKET_UPSTREAM_TIMEOUT_SEC")

	setStr(&cfg.LogLevel, "GATEWAY_LOG_LEVEL")
}

func setStr(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func setInt(dst *int, key string) {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			*dst = n
		}
	}
}
