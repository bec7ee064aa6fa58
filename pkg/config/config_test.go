package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("INTENT_PROVIDER", "")
	t.Setenv("INTENT_MODEL_TIMEOUT", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "auto", cfg.Intent.Provider)
	assert.Equal(t, 8*time.Second, cfg.Intent.Timeout)
	assert.Equal(t, 40.0, cfg.Search.DefaultRadiusKm)
	assert.Equal(t, 200.0, cfg.Search.MaxRadiusKm)
	assert.Equal(t, 20, cfg.Search.DefaultLimit)
	assert.Equal(t, 100, cfg.Search.MaxLimit)
	assert.Equal(t, []string{"*"}, cfg.Server.AllowedOrigins)
}

func TestLoad_IntentConfig(t *testing.T) {
	t.Setenv("INTENT_PROVIDER", "Gemini")
	t.Setenv("INTENT_MODEL_TIMEOUT", "3")
	t.Setenv("INTENT_CACHE_TTL", "90m")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "gemini", cfg.Intent.Provider)
	assert.Equal(t, 3*time.Second, cfg.Intent.Timeout)
	assert.Equal(t, 90*time.Minute, cfg.Intent.CacheTTL)
}

func TestLoad_InvalidProvider(t *testing.T) {
	t.Setenv("INTENT_PROVIDER", "claude")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_InvalidSearchBounds(t *testing.T) {
	t.Setenv("SEARCH_DEFAULT_LIMIT", "500")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_AllowedOrigins(t *testing.T) {
	t.Setenv("ALLOWED_ORIGINS", "https://a.example, ,https://b.example")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.Server.AllowedOrigins)
}

func TestDatabaseDSN(t *testing.T) {
	db := DatabaseConfig{Host: "db", Port: 5433, User: "u", Password: "p", Database: "costs", SSLMode: "disable"}
	assert.Equal(t, "host=db port=5433 user=u password=p dbname=costs sslmode=disable", db.DatabaseDSN())
}
