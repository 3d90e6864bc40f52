// Package config loads and validates application configuration from environment variables.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// Config holds all configuration values for the API server.
// Values are populated by Load from environment variables.
type Config struct {
	// Port is the TCP port the HTTP server listens on. Defaults to "8080".
	Port string

	// DatabaseURL is the Postgres connection string. Required.
	DatabaseURL string

	// RedisAddr is the address of the Redis instance backing the plan
	// cache. Optional: when empty, caching is disabled and every
	// optimization request recomputes the sequence.
	RedisAddr string

	// PlanCacheTTL bounds how long a cached plan is served before it is
	// recomputed. Defaults to 1h.
	PlanCacheTTL time.Duration

	// LogLevel controls the minimum log level. Defaults to "info".
	// Valid values: debug, info, warn, error.
	LogLevel string
}

// Load reads configuration from environment variables and returns a Config.
// Returns an error listing any required variables that are not set.
func Load() (Config, error) {
	cfg := Config{
		Port:      getEnv("PORT", "8080"),
		RedisAddr: os.Getenv("REDIS_ADDR"),
		LogLevel:  getEnv("LOG_LEVEL", "info"),
	}

	ttl, err := time.ParseDuration(getEnv("PLAN_CACHE_TTL", "1h"))
	if err != nil {
		return Config{}, fmt.Errorf("config: parse PLAN_CACHE_TTL: %w", err)
	}
	cfg.PlanCacheTTL = ttl

	var missing []string

	cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	if cfg.DatabaseURL == "" {
		missing = append(missing, "DATABASE_URL")
	}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("required environment variables not set: %s", strings.Join(missing, ", "))
	}

	return cfg, nil
}

// getEnv returns the value of the environment variable named by key,
// or fallback if the variable is not set or is empty.
func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
