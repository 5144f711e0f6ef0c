package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultsWhenFileMissing(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	require.NoError(t, err)

	assert.Equal(t, 8787, cfg.Server.Port)
	assert.Equal(t, "https://clob.polymarket.com", cfg.Polymarket.ClobHost)
	assert.Equal(t, "https://gamma-api.polymarket.com", cfg.Polymarket.GammaHost)
	assert.Equal(t, 30, cfg.Polymarket.UpstreamTimeoutSec)
	assert.Equal(t, "info", cfg.LogLevel)
	require.NoError(t, cfg.Validate())
}

func TestLoad_FileAndEnvOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
log_level = "debug"

[server]
port = 9000

[polymarket]
clob_host = "http://clob.local"
`), 0o600))

	t.Setenv("GATEWAY_SERVER_PORT", "9100")
	t.Setenv("GATEWAY_POLYMARKET_GAMMA_HOST", "http://gamma.local")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9100, cfg.Server.Port, "env override beats file")
	assert.Equal(t, "http://clob.local", cfg.Polymarket.ClobHost)
	assert.Equal(t, "http://gamma.local", cfg.Polymarket.GammaHost)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestValidate_Rejections(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"bad port", func(c *Config) { c.Server.Port = 0 }},
		{"bad clob scheme", func(c *Config) { c.Polymarket.ClobHost = "ftp://clob" }},
		{"empty gamma host", func(c *Config) { c.Polymarket.GammaHost = "" }},
		{"zero timeout", func(c *Config) { c.Polymarket.UpstreamTimeoutSec = 0 }},
		{"unknown log level", func(c *Config) { c.LogLevel = "loud" }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Defaults()
			tc.mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestLoadSecrets(t *testing.T) {
	t.Setenv(EnvSigningKey, "sk")
	t.Setenv(EnvAPIKey, "ak")
	t.Setenv(EnvAPISecret, "as")
	t.Setenv(EnvAPIPassphrase, "ap")

	s := LoadSecrets()
	assert.Equal(t, "sk", s.SigningKey)
	assert.Equal(t, "ak", s.APIKey)
	assert.Equal(t, "as", s.APISecret)
	assert.Equal(t, "ap", s.APIPassphrase)
}

func TestSecrets_StringNeverLeaks(t *testing.T) {
	// Values must never appear, only the field labels and the mask.
	s := Secrets{SigningKey: "sk-0xdeadbeef", APIKey: "ak-11111111", APISecret: "s3cr3t-value", APIPassphrase: "hunter2"}
	out := s.String()
	assert.Equal(t, "Secrets{signing_key=***, api_key=***, api_secret=***, api_passphrase=***}", out)
	assert.NotContains(t, out, "sk-0xdeadbeef")
	assert.NotContains(t, out, "s3cr3t-value")
	assert.NotContains(t, out, "hunter2")

	assert.Contains(t, Secrets{}.String(), "unset")
}
