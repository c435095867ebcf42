package menu

import (
	"os"
	"strconv"
)

// Config holds fetch parameters for menu ingestion.
type Config struct {
	TimeoutMs int
	LogCalls  bool
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		TimeoutMs: 15000,
		LogCalls:  false,
	}
}

// LoadConfig reads menu ingestion configuration from environment
// variables, falling back to defaults for any unset values.
func LoadConfig() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("DENJ_MENU_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.TimeoutMs = n
		}
	}
	if v := os.Getenv("DENJ_MENU_LOG_CALLS"); v != "" {
		cfg.LogCalls, _ = strconv.ParseBool(v)
	}

	return cfg
}
