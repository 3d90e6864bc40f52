package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/optimizer")

	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, "8080", cfg.Port)
	require.Equal(t, "info", cfg.LogLevel)
	require.Empty(t, cfg.RedisAddr)
	require.Equal(t, time.Hour, cfg.PlanCacheTTL)
}

func TestLoadMissingDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")

	_, err := Load()
	require.ErrorContains(t, err, "DATABASE_URL")
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/optimizer")
	t.Setenv("PORT", "9090")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("PLAN_CACHE_TTL", "15m")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, "9090", cfg.Port)
	require.Equal(t, "localhost:6379", cfg.RedisAddr)
	require.Equal(t, 15*time.Minute, cfg.PlanCacheTTL)
	require.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadBadCacheTTL(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/optimizer")
	t.Setenv("PLAN_CACHE_TTL", "soon")

	_, err := Load()
	require.ErrorContains(t, err, "PLAN_CACHE_TTL")
}
