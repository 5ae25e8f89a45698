package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLoad_DefaultValues tests that hardcoded defaults are applied correctly.
func TestLoad_DefaultValues(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "daily-wisdom", cfg.App.Name)
	assert.Equal(t, "dev", cfg.App.Version)
	assert.Equal(t, "local", cfg.App.Environment)
	assert.Equal(t, DefaultServerPort, cfg.Server.Port)
	assert.Equal(t, "127.0.0.1", cfg.Server.Host)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "https://api.freeapi.app/api/v1/public", cfg.Services.Quote.BaseURL)
}

func TestLoad_DefaultsAreValid(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.NoError(t, cfg.Validate())
}

func TestLoad_DomainDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 10, cfg.Quotes.RandomPageMax)
	assert.Equal(t, 10, cfg.Quotes.PageLimit)
	assert.Equal(t, 20, cfg.Resolver.MaxPages)
	assert.Equal(t, 10, cfg.Resolver.PageSize)
	assert.Equal(t, 1, cfg.Resolver.Concurrency)
	assert.Equal(t, DefaultResolverCacheSize, cfg.Resolver.CacheSize)
	assert.Equal(t, time.Hour, cfg.Resolver.CacheTTL)
	assert.Equal(t, "file", cfg.Storage.Driver)
	assert.Equal(t, DefaultStorageDir, cfg.Storage.Dir)
	assert.Empty(t, cfg.Share.Command)
	assert.Equal(t, "Inspiring Quote", cfg.Share.Title)
	assert.Equal(t, "/dev/tty", cfg.Share.TTYPath)
}

// TestLoad_EnvVarOverrides tests that environment variables override defaults.
func TestLoad_EnvVarOverrides(t *testing.T) {
	t.Setenv("APP_SERVER_PORT", "9090")
	t.Setenv("APP_LOG_LEVEL", "warn")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoad_EnvVarOverridesKeysWithUnderscores(t *testing.T) {
	t.Setenv("APP_RESOLVER_MAX_PAGES", "5")
	t.Setenv("APP_STORAGE_SQLITE_PATH", "/tmp/favorites.db")
	t.Setenv("APP_CLIENT_RATE_LIMIT_RPS", "2.5")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 5, cfg.Resolver.MaxPages)
	assert.Equal(t, "/tmp/favorites.db", cfg.Storage.SQLitePath)
	assert.InDelta(t, 2.5, cfg.Client.RateLimit.RequestsPerSecond, 0.0001)
}

func TestLoad_BoolEnvVar(t *testing.T) {
	t.Setenv("APP_TELEMETRY_ENABLED", "true")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.True(t, cfg.Telemetry.Enabled)
}

// TestLoad_DurationParsing tests that duration strings are parsed correctly.
func TestLoad_DurationParsing(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 60*time.Second, cfg.Server.WriteTimeout)
	assert.Equal(t, 45*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, 100*time.Millisecond, cfg.Client.Retry.InitialInterval)
	assert.Equal(t, 2*time.Second, cfg.Client.Retry.MaxInterval)
	assert.Equal(t, 10*time.Second, cfg.Client.Timeout)
}

func TestLoad_NonExistentProfile(t *testing.T) {
	cfg, err := Load("nonexistent")
	require.NoError(t, err)

	assert.Equal(t, "daily-wisdom", cfg.App.Name)
}

func TestEnvKeyMapper(t *testing.T) {
	mapper := envKeyMapper([]string{"resolver.max_pages", "server.port"})

	tests := []struct {
		env  string
		want string
	}{
		{"APP_RESOLVER_MAX_PAGES", "resolver.max_pages"},
		{"APP_SERVER_PORT", "server.port"},
		{"APP_UNKNOWN_THING", "unknown.thing"},
	}

	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			assert.Equal(t, tt.want, mapper(tt.env))
		})
	}
}

// TestDefaults tests that the defaults map contains expected values.
func TestDefaults(t *testing.T) {
	d := defaults()

	assert.Equal(t, "daily-wisdom", d["app.name"])
	assert.Equal(t, DefaultServerPort, d["server.port"])
	assert.Equal(t, DefaultClientRetryMaxAttempts, d["client.retry.max_attempts"])
	assert.Equal(t, DefaultClientRateLimitRPS, d["client.rate_limit.rps"])
	assert.Equal(t, DefaultResolverMaxPages, d["resolver.max_pages"])
	assert.Equal(t, "file", d["storage.driver"])
}
