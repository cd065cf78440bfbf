package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadRequiresRedisURL(t *testing.T) {
	_, err := LoadForTests(map[string]string{
		"REDIS_URL": "",
	})
	require.ErrorContains(t, err, "REDIS_URL is required")
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := LoadForTests(map[string]string{
		"REDIS_URL":            "redis://localhost:6379/0",
		"PORT":                 "",
		"APP_ENV":              "",
		"CURRENCY_CODE":        "",
		"IDEMPOTENCY_TTL":      "",
		"SAVE_TIMEOUT":         "",
		"RATE_LIMIT":           "",
		"CORS_ALLOWED_ORIGINS": "",
	})
	require.NoError(t, err)
	require.Equal(t, "development", cfg.AppEnv)
	require.Equal(t, ":8080", cfg.HTTPAddr())
	require.Equal(t, "KES", cfg.CurrencyCode)
	require.Equal(t, 2*time.Hour, cfg.IdempotencyTTL)
	require.Equal(t, 5*time.Second, cfg.SaveTimeout)
	require.Equal(t, "100-M", cfg.RateLimit)
	require.Nil(t, cfg.CORSAllowedOrigins)
}

func TestLoadParsesOverrides(t *testing.T) {
	cfg, err := LoadForTests(map[string]string{
		"REDIS_URL":            "redis://localhost:6379/1",
		"PORT":                 "9090",
		"CORS_ALLOWED_ORIGINS": "http://localhost:5173, https://pos.duka.example",
		"IDEMPOTENCY_TTL":      "30m",
		"STORE_NAME":           "Jengo Traders",
	})
	require.NoError(t, err)
	require.Equal(t, ":9090", cfg.HTTPAddr())
	require.Equal(t, []string{"http://localhost:5173", "https://pos.duka.example"}, cfg.CORSAllowedOrigins)
	require.Equal(t, 30*time.Minute, cfg.IdempotencyTTL)
	require.Equal(t, "Jengo Traders", cfg.StoreName)
}

func TestParseDurationFallsBackOnGarbage(t *testing.T) {
	require.Equal(t, 5*time.Second, parseDuration("not-a-duration", "5s"))
}
