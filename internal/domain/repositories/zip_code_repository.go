package repositories

import (
	"context"

	"github.com/zatekoja/costnavigator/internal/domain/entities"
)

// ZipCodeRepository defines read access to ZIP centroids
type ZipCodeRepository interface {
	// GetByZip retrieves the centroid for a normalized five-digit ZIP
	GetByZip(ctx context.Context, zip string) (*entities.ZipCode, error)
}
