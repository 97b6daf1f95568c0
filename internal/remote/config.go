package remote

import (
	"os"
	"strconv"
)

// Config holds configuration for the remote profile document store.
type Config struct {
	Enabled   bool
	Endpoint  string
	TimeoutMs int
}

// DefaultConfig returns a Config with sync disabled. A missing endpoint means
// the app runs purely against the local cache.
func DefaultConfig() Config {
	return Config{
		Enabled:   false,
		Endpoint:  "",
		TimeoutMs: 8000,
	}
}

// LoadConfig reads sync configuration from environment variables. Setting
// STRICTO_SYNC_URL implies enabled unless STRICTO_SYNC_ENABLED says otherwise.
func LoadConfig() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("STRICTO_SYNC_URL"); v != "" {
		cfg.Endpoint = v
		cfg.Enabled = true
	}
	if v := os.Getenv("STRICTO_SYNC_ENABLED"); v != "" {
		cfg.Enabled, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("STRICTO_SYNC_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.TimeoutMs = n
		}
	}
	return cfg
}
