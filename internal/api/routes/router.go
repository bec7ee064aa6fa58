package routes

import (
	"net/http"

	"github.com/rs/zerolog"

	"github.com/zatekoja/costnavigator/internal/api/handlers"
	"github.com/zatekoja/costnavigator/internal/api/middleware"
)

// Router holds all route handlers
type Router struct {
	mux *http.ServeMux

	providerHandler *handlers.ProviderHandler
	askHandler      *handlers.AskHandler

	cacheMiddleware *middleware.CacheMiddleware
	allowedOrigins  []string
	logger          zerolog.Logger
}

// NewRouter creates a new router; cacheMiddleware may be nil
func NewRouter(
	providerHandler *handlers.ProviderHandler,
	askHandler *handlers.AskHandler,
	cacheMiddleware *middleware.CacheMiddleware,
	allowedOrigins []string,
	logger zerolog.Logger,
) *Router {
	return &Router{
		mux:             http.NewServeMux(),
		providerHandler: providerHandler,
		askHandler:      askHandler,
		cacheMiddleware: cacheMiddleware,
		allowedOrigins:  allowedOrigins,
		logger:          logger,
	}
}

func (r *Router) handle(pattern string, h http.HandlerFunc) {
	r.mux.HandleFunc(pattern, middleware.RecordRoute(h))
}

// SetupRoutes configures all application routes
func (r *Router) SetupRoutes() http.Handler {
	r.handle("GET /health", handlers.Health)

	r.handle("GET /api/providers", r.providerHandler.SearchProviders)
	r.handle("POST /api/ask", r.askHandler.Ask)

	// Apply middleware in reverse order (last middleware wraps first)
	var handler http.Handler = r.mux

	if r.cacheMiddleware != nil {
		handler = r.cacheMiddleware.Middleware(handler)
	}

	// logging sits outside the cache so hits still get a request id and an access line
	handler = middleware.LoggingMiddleware(r.logger)(handler)

	handler = middleware.ObservabilityMiddleware(handler)
	handler = middleware.Compression(handler)

	// CORS wraps everything so headers are set even on cache hits
	handler = middleware.CORSMiddleware(r.allowedOrigins)(handler)

	return handler
}
