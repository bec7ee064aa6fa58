package services

import (
	"context"

	"github.com/zatekoja/costnavigator/internal/domain/entities"
	"github.com/zatekoja/costnavigator/internal/domain/repositories"
	apperrors "github.com/zatekoja/costnavigator/pkg/errors"
	"github.com/zatekoja/costnavigator/pkg/geo"
)

// ErrZipNotFound is the message carried by every unresolvable ZIP
const ErrZipNotFound = "ZIP not found"

// GeoResolver maps a ZIP code to its centroid
type GeoResolver struct {
	zips repositories.ZipCodeRepository
}

// NewGeoResolver creates a new geo resolver
func NewGeoResolver(zips repositories.ZipCodeRepository) *GeoResolver {
	return &GeoResolver{zips: zips}
}

// ResolveOrigin returns the centroid of zip after normalizing it to five digits.
// A missing row or a row without coordinates is a not found error.
func (r *GeoResolver) ResolveOrigin(ctx context.Context, zip string) (geo.Point, error) {
	normalized := entities.NormalizeZip(zip)
	if normalized == "" {
		return geo.Point{}, apperrors.NewNotFoundError(ErrZipNotFound)
	}

	z, err := r.zips.GetByZip(ctx, normalized)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return geo.Point{}, apperrors.NewNotFoundError(ErrZipNotFound)
		}
		return geo.Point{}, err
	}

	origin, ok := z.Location()
	if !ok {
		return geo.Point{}, apperrors.NewNotFoundError(ErrZipNotFound)
	}
	return origin, nil
}
