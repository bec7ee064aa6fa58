package middleware

import (
	"context"
	"net/http"
)

type routeKey struct{}

type routeInfo struct {
	pattern string
}

// withRouteInfo makes sure r carries a route holder that RecordRoute can fill in.
// Outer middlewares share the holder installed by the outermost one.
func withRouteInfo(r *http.Request) (*http.Request, *routeInfo) {
	if ri, ok := r.Context().Value(routeKey{}).(*routeInfo); ok {
		return r, ri
	}
	ri := &routeInfo{}
	return r.WithContext(context.WithValue(r.Context(), routeKey{}, ri)), ri
}

func (ri *routeInfo) route(fallback string) string {
	if ri.pattern == "" {
		return fallback
	}
	return ri.pattern
}

// RecordRoute publishes the mux pattern that matched to the surrounding middlewares
func RecordRoute(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if ri, ok := r.Context().Value(routeKey{}).(*routeInfo); ok {
			ri.pattern = r.Pattern
		}
		next(w, r)
	}
}
