package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	halving, err := cfg.Cycle.Halving()
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 4, 20, 0, 0, 0, 0, time.UTC), halving)
	assert.Equal(t, "extended", cfg.Policy)
	assert.Equal(t, 5*time.Minute, cfg.Cache.TTL())
}

func TestLoadOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	data := `
policy: basic
cycle:
  halving_date: "2028-03-15"
server:
  host: 0.0.0.0
  port: 9090
  read_timeout_seconds: 5
  write_timeout_seconds: 5
  idle_timeout_seconds: 30
cache:
  redis_addr: localhost:6379
  ttl_seconds: 60
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "basic", cfg.Policy)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "localhost:6379", cfg.Cache.RedisAddr)
	assert.Equal(t, time.Minute, cfg.Cache.TTL())

	halving, err := cfg.Cycle.Halving()
	require.NoError(t, err)
	assert.Equal(t, 2028, halving.Year())

	// Defaults survive for untouched sections.
	assert.Equal(t, "https://api.coingecko.com/api/v3", cfg.Providers.CoinGecko.BaseURL)
}

func TestLoadRejectsBadConfig(t *testing.T) {
	dir := t.TempDir()

	testCases := []struct {
		name string
		yaml string
	}{
		{"bad_policy", "policy: aggressive\n"},
		{"bad_port", "server:\n  port: -1\n"},
		{"bad_halving_date", "cycle:\n  halving_date: \"not-a-date\"\n"},
		{"bad_ttl", "cache:\n  ttl_seconds: 0\n"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(dir, tc.name+".yaml")
			require.NoError(t, os.WriteFile(path, []byte(tc.yaml), 0o644))
			_, err := Load(path)
			assert.Error(t, err)
		})
	}
}

func TestAPIKeysComeFromEnv(t *testing.T) {
	t.Setenv("COINGLASS_API_KEY", "secret-key")
	t.Setenv("NEWSAPI_KEY", "news-key")
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "secret-key", cfg.Providers.CoinGlass.APIKey)
	assert.Equal(t, "news-key", cfg.Providers.News.APIKey)
}
