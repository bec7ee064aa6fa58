package bootstrap

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zatekoja/costnavigator/internal/infrastructure/clients/openai"
	"github.com/zatekoja/costnavigator/pkg/config"
)

func TestNewCompletionProvider(t *testing.T) {
	ctx := context.Background()

	cfg := &config.Config{Intent: config.IntentConfig{Provider: "auto"}}
	p, err := newCompletionProvider(ctx, cfg)
	require.NoError(t, err)
	assert.Nil(t, p)

	cfg.OpenAI.APIKey = "sk-test"
	p, err = newCompletionProvider(ctx, cfg)
	require.NoError(t, err)
	assert.IsType(t, &openai.Client{}, p)

	cfg.Intent.Provider = "rules"
	p, err = newCompletionProvider(ctx, cfg)
	require.NoError(t, err)
	assert.Nil(t, p)

	cfg.Intent.Provider = "gemini"
	_, err = newCompletionProvider(ctx, cfg)
	assert.Error(t, err)
}

func TestNewIntentParser_RulesOnly(t *testing.T) {
	cfg := &config.Config{Intent: config.IntentConfig{Provider: "rules"}}

	parser, err := NewIntentParser(context.Background(), cfg, nil, zerolog.Nop())
	require.NoError(t, err)

	d := parser.Parse(context.Background(), "cheapest drg 470 near 10001")
	assert.Equal(t, "rules", d.Source)
}

func TestSearchLimits(t *testing.T) {
	cfg := &config.Config{Search: config.SearchConfig{DefaultRadiusKm: 25, MaxRadiusKm: 100, DefaultLimit: 10, MaxLimit: 50}}

	limits := SearchLimits(cfg)
	assert.Equal(t, 25.0, limits.DefaultRadiusKm)
	assert.Equal(t, 1.0, limits.MinRadiusKm)
	assert.Equal(t, 50, limits.MaxLimit)
}

func TestNewCache_MemoryFallbackKeepsPerEntryTTL(t *testing.T) {
	cfg := &config.Config{
		Redis:  config.RedisConfig{Enabled: false},
		Cache:  config.CacheConfig{LocalSize: 16, ZipTTL: time.Hour},
		Intent: config.IntentConfig{CacheTTL: 20 * time.Millisecond},
	}
	app := &App{logger: zerolog.Nop()}
	c := app.newCache(context.Background(), cfg)

	ctx := context.Background()
	require.NoError(t, c.Set(ctx, "zip:v1:10001", []byte(`{"zip":"10001"}`), int(cfg.Cache.ZipTTL.Seconds())))

	// outlive the intent TTL; the ZIP entry must survive on its own TTL
	time.Sleep(60 * time.Millisecond)

	got, err := c.Get(ctx, "zip:v1:10001")
	require.NoError(t, err)
	assert.JSONEq(t, `{"zip":"10001"}`, string(got))
}
