package middleware

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/zatekoja/costnavigator/internal/domain/providers"
	"github.com/zatekoja/costnavigator/internal/infrastructure/observability"
)

// CacheMiddleware caches successful GET responses for configured routes
type CacheMiddleware struct {
	cache  providers.CacheProvider
	routes map[string]time.Duration
	logger zerolog.Logger
}

// NewCacheMiddleware creates a cache middleware. routes maps exact paths to a TTL.
func NewCacheMiddleware(cache providers.CacheProvider, routes map[string]time.Duration, logger zerolog.Logger) *CacheMiddleware {
	return &CacheMiddleware{
		cache:  cache,
		routes: routes,
		logger: logger.With().Str("component", "http_cache").Logger(),
	}
}

// Middleware returns the cache middleware handler
func (m *CacheMiddleware) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || m.cache == nil {
			next.ServeHTTP(w, r)
			return
		}

		ttl, ok := m.routes[r.URL.Path]
		if !ok || ttl <= 0 {
			next.ServeHTTP(w, r)
			return
		}

		cacheKey := responseCacheKey(r)

		if cached, err := m.cache.Get(r.Context(), cacheKey); err == nil {
			// the mux is skipped, so name the route here; configured paths are exact
			if ri, ok := r.Context().Value(routeKey{}).(*routeInfo); ok {
				ri.pattern = r.Method + " " + r.URL.Path
			}
			observability.RecordCacheHit(r.Context(), "http")
			w.Header().Set("X-Cache", "HIT")
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write(cached)
			return
		}
		observability.RecordCacheMiss(r.Context(), "http")
		w.Header().Set("X-Cache", "MISS")

		recorder := &responseRecorder{
			ResponseWriter: w,
			statusCode:     http.StatusOK,
			body:           &bytes.Buffer{},
		}
		next.ServeHTTP(recorder, r)

		// only successes are cached; 4xx depend on input validation that may change
		if recorder.statusCode == http.StatusOK && recorder.body.Len() > 0 {
			if err := m.cache.Set(r.Context(), cacheKey, recorder.body.Bytes(), int(ttl.Seconds())); err != nil {
				m.logger.Warn().Err(err).Str("path", r.URL.Path).Msg("failed to cache response")
			}
		}
	})
}

// responseCacheKey hashes the path and the query with parameters in sorted order
func responseCacheKey(r *http.Request) string {
	key := r.Method + ":" + r.URL.Path
	if q := r.URL.Query(); len(q) > 0 {
		key += "?" + q.Encode()
	}
	hash := sha256.Sum256([]byte(key))
	return "http:v1:" + hex.EncodeToString(hash[:])
}

// responseRecorder captures the response for caching
type responseRecorder struct {
	http.ResponseWriter
	statusCode int
	body       *bytes.Buffer
	written    bool
}

// WriteHeader captures the status code
func (r *responseRecorder) WriteHeader(statusCode int) {
	if !r.written {
		r.statusCode = statusCode
		r.ResponseWriter.WriteHeader(statusCode)
		r.written = true
	}
}

// Write captures the response body and writes to the client
func (r *responseRecorder) Write(data []byte) (int, error) {
	if !r.written {
		r.WriteHeader(http.StatusOK)
	}
	r.body.Write(data)
	return r.ResponseWriter.Write(data)
}
