package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/zatekoja/costnavigator/internal/application/services"
	"github.com/zatekoja/costnavigator/internal/domain/entities"
)

// ProviderSearcher runs a structured provider search
type ProviderSearcher interface {
	SearchProviders(ctx context.Context, params services.ProviderSearchParams) ([]entities.ProviderResult, error)
}

// ProviderHandler handles structured provider search requests
type ProviderHandler struct {
	searcher ProviderSearcher
}

// NewProviderHandler creates a new provider handler
func NewProviderHandler(searcher ProviderSearcher) *ProviderHandler {
	return &ProviderHandler{searcher: searcher}
}

// SearchProviders handles GET /api/providers?drg=&zip=&radius_km=&limit=&sort=
func (h *ProviderHandler) SearchProviders(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	params := services.ProviderSearchParams{
		DRG:  q.Get("drg"),
		Zip:  q.Get("zip"),
		Sort: q.Get("sort"),
	}

	if raw := q.Get("radius_km"); raw != "" {
		radius, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			respondWithError(w, http.StatusBadRequest, "radius_km must be a number")
			return
		}
		params.RadiusKm = &radius
	}

	if raw := q.Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			respondWithError(w, http.StatusBadRequest, "limit must be an integer")
			return
		}
		params.Limit = &limit
	}

	results, err := h.searcher.SearchProviders(r.Context(), params)
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}
	if results == nil {
		results = []entities.ProviderResult{}
	}

	respondWithJSON(w, http.StatusOK, results)
}
