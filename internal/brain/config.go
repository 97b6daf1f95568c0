package brain

import (
	"os"
	"strconv"
)

// Config holds all configuration for the task-generation backend.
type Config struct {
	Endpoint   string
	LogCalls   bool
	TimeoutMs  int
	MaxRetries int
}

// DefaultConfig returns a Config pointing at a local brain server.
func DefaultConfig() Config {
	return Config{
		Endpoint:   "http://127.0.0.1:5000",
		LogCalls:   false,
		TimeoutMs:  10000,
		MaxRetries: 1,
	}
}

// LoadConfig reads brain configuration from environment variables,
// falling back to defaults for any unset values.
func LoadConfig() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("STRICTO_BRAIN_URL"); v != "" {
		cfg.Endpoint = v
	}
	if v := os.Getenv("STRICTO_BRAIN_LOG_CALLS"); v != "" {
		cfg.LogCalls, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("STRICTO_BRAIN_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.TimeoutMs = n
		}
	}
	if v := os.Getenv("STRICTO_BRAIN_MAX_RETRIES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.MaxRetries = n
		}
	}
	return cfg
}
