package repositories

import (
	"context"

	"github.com/zatekoja/costnavigator/internal/domain/entities"
	"github.com/zatekoja/costnavigator/pkg/geo"
)

// CandidateFilter narrows the store query for a search
type CandidateFilter struct {
	ProcedureCode int
	// Bounds is an optional prefilter; it must contain every point inside the search radius.
	Bounds *geo.BoundingBox
}

// ProviderSearchRepository fetches located providers that bill for a DRG,
// each joined with its average star rating
type ProviderSearchRepository interface {
	FindCandidates(ctx context.Context, filter CandidateFilter) ([]entities.Candidate, error)
}
