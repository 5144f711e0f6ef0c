package config

import (
	"fmt"
	"os"
)

// Environment variable names for the gateway's secrets. These arrive only
// through the deployment environment's secret store, never through TOML,
// and are never logged or echoed.
const (
	EnvSigningKey    = "POLYMARKET_PRIVATE_KEY"
	EnvAPIKey        = "POLYMARKET_API_KEY"
	EnvAPISecret     = "POLYMARKET_API_SECRET"
	EnvAPIPassphrase = "POLYMARKET_API_PASSPHRASE"
)

// Secrets holds the order-signing key and the upstream API credentials
// for the process lifetime. Fields may be empty; the trade pipeline
// reports a missing secret as a configuration error at the point it is
// actually needed, so a paper-only deployment can run without API
// credentials.
type Secrets struct {
	SigningKey    string
	APIKey        string
	APISecret     string
	APIPassphrase string
}

// LoadSecrets reads all gateway secrets from the environment.
func LoadSecrets() Secrets {
	return Secrets{
		SigningKey:    os.Getenv(EnvSigningKey),
		APIKey:        os.Getenv(EnvAPIKey),
		APISecret:     os.Getenv(EnvAPISecret),
		APIPassphrase: os.Getenv(EnvAPIPassphrase),
	}
}

// String returns a redacted representation suitable for logging.
func (s Secrets) String() string {
	present := func(v string) string {
		if v == "" {
			return "unset"
		}
		return "***"
	}
	return fmt.Sprintf("Secrets{signing_key=%s, api_key=%s, api_secret=%s, api_passphrase=%s}",
		present(s.SigningKey), present(s.APIKey), present(s.APISecret), present(s.APIPassphrase))
}
