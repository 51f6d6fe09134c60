package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("VENDIFY_DATABASE_URL", "postgres://localhost:5432/vendify_test")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 3000, cfg.Server.Port)
	assert.Equal(t, "info", cfg.Server.LogLevel)
	assert.Equal(t, "development", cfg.Server.Env)
	assert.Equal(t, "postgres://localhost:5432/vendify_test", cfg.Database.URL)
	assert.Equal(t, []string{"http://localhost:5173"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, 900, cfg.RateLimit.WindowSeconds)
	assert.Equal(t, 300, cfg.RateLimit.Max)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("VENDIFY_DATABASE_URL", "postgres://localhost:5432/vendify_test")
	t.Setenv("VENDIFY_SERVER_PORT", "8080")
	t.Setenv("VENDIFY_SERVER_LOG_LEVEL", "debug")
	t.Setenv("VENDIFY_SERVER_ENV", "production")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Server.LogLevel)
	assert.Equal(t, "production", cfg.Server.Env)
}

func TestLoadRejectsInvalidLogLevel(t *testing.T) {
	t.Setenv("VENDIFY_DATABASE_URL", "postgres://localhost:5432/vendify_test")
	t.Setenv("VENDIFY_SERVER_LOG_LEVEL", "verbose")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadRequiresDatabaseURL(t *testing.T) {
	t.Setenv("VENDIFY_DATABASE_URL", "")

	_, err := Load()
	assert.Error(t, err)
}

func TestCORSOrigins(t *testing.T) {
	t.Parallel()

	cfg := CORSConfig{
		AllowedOrigins: []string{"http://localhost:5173"},
		FrontendURL:    "https://app.example.com",
	}
	assert.Equal(t,
		[]string{"http://localhost:5173", "https://app.example.com"},
		cfg.Origins())

	noFrontend := CORSConfig{AllowedOrigins: []string{"http://localhost:5173"}}
	assert.Equal(t, []string{"http://localhost:5173"}, noFrontend.Origins())
}
