package services

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/zatekoja/costnavigator/internal/domain/entities"
	"github.com/zatekoja/costnavigator/internal/domain/repositories"
	"github.com/zatekoja/costnavigator/internal/infrastructure/observability"
	apperrors "github.com/zatekoja/costnavigator/pkg/errors"
	"github.com/zatekoja/costnavigator/pkg/geo"
)

// SearchLimits bounds structured search parameters
type SearchLimits struct {
	DefaultRadiusKm float64
	MinRadiusKm     float64
	MaxRadiusKm     float64
	DefaultLimit    int
	MaxLimit        int
}

// DefaultSearchLimits returns the public API bounds: radius 1-200 km (default 40), limit 1-100 (default 20)
func DefaultSearchLimits() SearchLimits {
	return SearchLimits{
		DefaultRadiusKm: 40,
		MinRadiusKm:     1,
		MaxRadiusKm:     200,
		DefaultLimit:    20,
		MaxLimit:        100,
	}
}

// ProviderSearchParams are the raw structured-search inputs; nil means "use the default"
type ProviderSearchParams struct {
	DRG      string
	Zip      string
	RadiusKm *float64
	Limit    *int
	Sort     string
}

// SearchService resolves and ranks providers for a DRG around a ZIP
type SearchService struct {
	geo        *GeoResolver
	procedures *ProcedureResolver
	providers  repositories.ProviderSearchRepository
	limits     SearchLimits
}

// NewSearchService creates a new search service
func NewSearchService(geoResolver *GeoResolver, procedures *ProcedureResolver, providers repositories.ProviderSearchRepository, limits SearchLimits) *SearchService {
	return &SearchService{
		geo:        geoResolver,
		procedures: procedures,
		providers:  providers,
		limits:     limits,
	}
}

// BuildQuery validates params and fills defaults. It never touches the store.
func (s *SearchService) BuildQuery(params ProviderSearchParams) (entities.SearchQuery, error) {
	q := entities.SearchQuery{
		RadiusKm: s.limits.DefaultRadiusKm,
		Limit:    s.limits.DefaultLimit,
		Sort:     entities.SortByCost,
	}

	drg := strings.TrimSpace(params.DRG)
	if drg == "" {
		return q, apperrors.NewValidationError("drg is required")
	}
	if isDigits(drg) {
		code, err := strconv.Atoi(drg)
		if err != nil || code <= 0 {
			return q, apperrors.NewValidationError("drg code must be a positive integer")
		}
		q.ProcedureCode = &code
	} else {
		q.ProcedureText = drg
	}

	q.Zip = strings.TrimSpace(params.Zip)
	if q.Zip == "" {
		return q, apperrors.NewValidationError("zip is required")
	}

	if params.RadiusKm != nil {
		r := *params.RadiusKm
		if math.IsNaN(r) || r < s.limits.MinRadiusKm || r > s.limits.MaxRadiusKm {
			return q, apperrors.NewValidationError(fmt.Sprintf("radius_km must be between %g and %g", s.limits.MinRadiusKm, s.limits.MaxRadiusKm))
		}
		q.RadiusKm = r
	}

	if params.Limit != nil {
		l := *params.Limit
		if l < 1 || l > s.limits.MaxLimit {
			return q, apperrors.NewValidationError(fmt.Sprintf("limit must be between 1 and %d", s.limits.MaxLimit))
		}
		q.Limit = l
	}

	if strings.TrimSpace(params.Sort) != "" {
		sort, err := entities.ParseSortMode(params.Sort)
		if err != nil {
			return q, apperrors.NewValidationError(err.Error())
		}
		q.Sort = sort
	}

	return q, nil
}

// SearchProviders validates params, resolves the origin and procedure, and returns ranked providers
func (s *SearchService) SearchProviders(ctx context.Context, params ProviderSearchParams) ([]entities.ProviderResult, error) {
	q, err := s.BuildQuery(params)
	if err != nil {
		return nil, err
	}

	origin, err := s.geo.ResolveOrigin(ctx, q.Zip)
	if err != nil {
		return nil, err
	}

	code, err := s.procedures.ResolveProcedure(ctx, q.ProcedureCode, q.ProcedureText)
	if err != nil {
		return nil, err
	}

	return s.Search(ctx, origin, code, q.RadiusKm, q.Limit, q.Sort)
}

// Search fetches candidates billing for code and ranks them around origin
func (s *SearchService) Search(ctx context.Context, origin geo.Point, code int, radiusKm float64, limit int, sort entities.SortMode) ([]entities.ProviderResult, error) {
	ctx, span := observability.StartSpan(ctx, "search.providers",
		attribute.Int("drg.code", code),
		attribute.Float64("search.radius_km", radiusKm),
		attribute.Int("search.limit", limit),
		attribute.String("search.sort", string(sort)),
	)
	defer span.End()

	filter := repositories.CandidateFilter{ProcedureCode: code}
	if box, ok := geo.BoundingBoxAround(origin, radiusKm); ok {
		filter.Bounds = &box
	}

	start := time.Now()
	candidates, err := s.providers.FindCandidates(ctx, filter)
	observability.RecordDBMetric(ctx, "find_candidates", time.Since(start))
	if err != nil {
		observability.RecordError(span, err)
		return nil, err
	}

	results := RankCandidates(origin, candidates, radiusKm, limit, sort)
	span.SetAttributes(
		attribute.Int("search.candidates", len(candidates)),
		attribute.Int("search.results", len(results)),
	)
	observability.RecordSearchResults(ctx, string(sort), len(results))
	return results, nil
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}
