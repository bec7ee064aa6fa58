// Package bootstrap wires configuration, clients, adapters and services
// into the object graph shared by the server and the command line tools.
package bootstrap

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/zatekoja/costnavigator/internal/adapters/cache"
	"github.com/zatekoja/costnavigator/internal/adapters/database"
	"github.com/zatekoja/costnavigator/internal/application/services"
	"github.com/zatekoja/costnavigator/internal/domain/providers"
	"github.com/zatekoja/costnavigator/internal/infrastructure/clients/gemini"
	"github.com/zatekoja/costnavigator/internal/infrastructure/clients/openai"
	"github.com/zatekoja/costnavigator/internal/infrastructure/clients/postgres"
	"github.com/zatekoja/costnavigator/internal/infrastructure/clients/redis"
	"github.com/zatekoja/costnavigator/pkg/config"
)

// App is the fully wired application
type App struct {
	Search *services.SearchService
	Ask    *services.AskService
	Parser *services.IntentParser
	Cache  providers.CacheProvider

	closers []func() error
	logger  zerolog.Logger
}

// New connects to the store and cache and builds every service
func New(ctx context.Context, cfg *config.Config, logger zerolog.Logger) (*App, error) {
	app := &App{logger: logger}

	pgClient, err := postgres.NewClient(ctx, &cfg.Database, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize PostgreSQL client: %w", err)
	}
	app.closers = append(app.closers, pgClient.Close)

	app.Cache = app.newCache(ctx, cfg)

	parser, err := NewIntentParser(ctx, cfg, app.Cache, logger)
	if err != nil {
		app.Close()
		return nil, err
	}
	app.Parser = parser

	zipAdapter := database.NewCachedZipCodeAdapter(
		database.NewZipCodeAdapter(pgClient),
		app.Cache,
		cfg.Cache.ZipTTL,
		logger,
	)
	geoResolver := services.NewGeoResolver(zipAdapter)
	procedureResolver := services.NewProcedureResolver(database.NewProcedureAdapter(pgClient))

	app.Search = services.NewSearchService(
		geoResolver,
		procedureResolver,
		database.NewProviderSearchAdapter(pgClient),
		SearchLimits(cfg),
	)
	app.Ask = services.NewAskService(parser, geoResolver, procedureResolver, app.Search, logger)

	return app, nil
}

// SearchLimits converts the configured search bounds
func SearchLimits(cfg *config.Config) services.SearchLimits {
	limits := services.DefaultSearchLimits()
	limits.DefaultRadiusKm = cfg.Search.DefaultRadiusKm
	limits.MaxRadiusKm = cfg.Search.MaxRadiusKm
	limits.DefaultLimit = cfg.Search.DefaultLimit
	limits.MaxLimit = cfg.Search.MaxLimit
	return limits
}

// newCache prefers Redis and falls back to a bounded in-process LRU
func (a *App) newCache(ctx context.Context, cfg *config.Config) providers.CacheProvider {
	if cfg.Redis.Enabled {
		redisClient, err := redis.NewClient(ctx, &cfg.Redis)
		if err == nil {
			a.closers = append(a.closers, redisClient.Close)
			a.logger.Info().Str("addr", cfg.Redis.RedisAddr()).Msg("redis cache enabled")
			return cache.NewRedisAdapter(redisClient, "costnav:")
		}
		a.logger.Warn().Err(err).Msg("redis unavailable, using in-process cache")
	}
	// no LRU-wide cap: ZIP and intent entries carry their own TTLs
	return cache.NewMemoryAdapter(cfg.Cache.LocalSize, 0)
}

// Close releases every connection opened by New, in reverse order
func (a *App) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			a.logger.Warn().Err(err).Msg("error during close")
		}
	}
	a.closers = nil
}

// NewIntentParser selects the primary strategy from INTENT_PROVIDER.
// auto picks OpenAI, then Gemini, by whichever key is configured and
// otherwise uses the rules alone. Naming a provider without its key is an error.
func NewIntentParser(ctx context.Context, cfg *config.Config, cacheProvider providers.CacheProvider, logger zerolog.Logger) (*services.IntentParser, error) {
	provider, err := newCompletionProvider(ctx, cfg)
	if err != nil {
		return nil, err
	}
	if provider == nil {
		logger.Info().Msg("intent parsing uses rules only")
		return services.NewIntentParser(nil, logger), nil
	}

	logger.Info().Str("model", provider.Name()).Msg("intent parsing uses language model with rules fallback")
	strategy := services.NewModelStrategy(provider, services.ModelStrategyOptions{
		Timeout:  cfg.Intent.Timeout,
		Cache:    cacheProvider,
		CacheTTL: cfg.Intent.CacheTTL,
		Logger:   logger,
	})
	return services.NewIntentParser(strategy, logger), nil
}

func newCompletionProvider(ctx context.Context, cfg *config.Config) (providers.CompletionProvider, error) {
	switch cfg.Intent.Provider {
	case "rules":
		return nil, nil
	case "openai":
		return openai.NewClient(&cfg.OpenAI)
	case "gemini":
		return gemini.NewClient(ctx, &cfg.Gemini)
	}

	switch {
	case cfg.OpenAI.APIKey != "":
		return openai.NewClient(&cfg.OpenAI)
	case cfg.Gemini.APIKey != "":
		return gemini.NewClient(ctx, &cfg.Gemini)
	}
	return nil, nil
}
