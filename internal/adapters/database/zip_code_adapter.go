package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/doug-martin/goqu/v9"

	"github.com/zatekoja/costnavigator/internal/domain/entities"
	"github.com/zatekoja/costnavigator/internal/domain/repositories"
	"github.com/zatekoja/costnavigator/internal/infrastructure/clients/postgres"
	apperrors "github.com/zatekoja/costnavigator/pkg/errors"
)

// ZipCodeAdapter implements ZipCodeRepository
type ZipCodeAdapter struct {
	client *postgres.Client
	db     *goqu.Database
}

// NewZipCodeAdapter creates a new ZIP centroid adapter
func NewZipCodeAdapter(client *postgres.Client) repositories.ZipCodeRepository {
	return &ZipCodeAdapter{
		client: client,
		db:     newGoqu(client),
	}
}

// GetByZip retrieves the centroid for a normalized ZIP
func (a *ZipCodeAdapter) GetByZip(ctx context.Context, zip string) (*entities.ZipCode, error) {
	query, args, err := a.db.From("zip_codes").
		Prepared(true).
		Select("zip", "city", "state", "latitude", "longitude").
		Where(goqu.C("zip").Eq(zip)).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build query", err)
	}

	z := &entities.ZipCode{}
	var city, state sql.NullString
	var lat, lon sql.NullFloat64

	err = a.client.DB().QueryRowContext(ctx, query, args...).Scan(&z.Zip, &city, &state, &lat, &lon)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("zip %s not found", zip))
	}
	if err != nil {
		return nil, apperrors.NewInternalError("failed to get zip code", err)
	}

	if city.Valid {
		z.City = &city.String
	}
	if state.Valid {
		z.State = &state.String
	}
	if lat.Valid {
		z.Latitude = &lat.Float64
	}
	if lon.Valid {
		z.Longitude = &lon.Float64
	}
	return z, nil
}
