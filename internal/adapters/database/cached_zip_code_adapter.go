package database

import (
	"context"
	"encoding/json"
	"time"

	"github.com/rs/zerolog"

	"github.com/zatekoja/costnavigator/internal/domain/entities"
	"github.com/zatekoja/costnavigator/internal/domain/providers"
	"github.com/zatekoja/costnavigator/internal/domain/repositories"
	"github.com/zatekoja/costnavigator/internal/infrastructure/observability"
)

// CachedZipCodeAdapter wraps a ZipCodeRepository with a read-through cache.
// Cache failures degrade to a store read and are never returned to callers.
type CachedZipCodeAdapter struct {
	adapter repositories.ZipCodeRepository
	cache   providers.CacheProvider
	ttl     time.Duration
	logger  zerolog.Logger
}

// NewCachedZipCodeAdapter creates a new cached ZIP adapter
func NewCachedZipCodeAdapter(adapter repositories.ZipCodeRepository, cache providers.CacheProvider, ttl time.Duration, logger zerolog.Logger) *CachedZipCodeAdapter {
	return &CachedZipCodeAdapter{
		adapter: adapter,
		cache:   cache,
		ttl:     ttl,
		logger:  logger.With().Str("component", "zip_cache").Logger(),
	}
}

func zipCacheKey(zip string) string {
	return "zip:v1:" + zip
}

// GetByZip retrieves a centroid, consulting the cache first
func (a *CachedZipCodeAdapter) GetByZip(ctx context.Context, zip string) (*entities.ZipCode, error) {
	cacheKey := zipCacheKey(zip)

	if cached, err := a.cache.Get(ctx, cacheKey); err == nil {
		var z entities.ZipCode
		if err := json.Unmarshal(cached, &z); err == nil {
			observability.RecordCacheHit(ctx, "zip")
			return &z, nil
		}
		a.logger.Warn().Err(err).Str("zip", zip).Msg("discarding undecodable cached centroid")
	}
	observability.RecordCacheMiss(ctx, "zip")

	z, err := a.adapter.GetByZip(ctx, zip)
	if err != nil {
		return nil, err
	}

	// populate off the request path
	data, err := json.Marshal(z)
	if err == nil {
		go func() {
			bgCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			if err := a.cache.Set(bgCtx, cacheKey, data, int(a.ttl.Seconds())); err != nil {
				a.logger.Debug().Err(err).Str("zip", zip).Msg("failed to cache centroid")
			}
		}()
	}

	return z, nil
}
