// Package config loads the HTTP server settings from the environment.
package config

import (
	"os"
	"time"
)

// Config holds server configuration loaded from environment variables.
type Config struct {
	Addr            string        // listen address, e.g. ":8080"
	GinMode         string        // debug, release or test
	ShutdownTimeout time.Duration // grace period for in-flight requests
}

// Load reads configuration from environment variables, falling back to defaults.
// ADDR wins over PORT when both are set.
func Load() Config {
	addr := os.Getenv("ADDR")
	if addr == "" {
		addr = ":" + envOrDefault("PORT", "8080")
	}
	return Config{
		Addr:            addr,
		GinMode:         envOrDefault("GIN_MODE", "release"),
		ShutdownTimeout: envOrDefaultDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
	}
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envOrDefaultDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}
