package database

import (
	"context"
	"database/sql"

	"github.com/doug-martin/goqu/v9"
	"github.com/shopspring/decimal"

	"github.com/zatekoja/costnavigator/internal/domain/entities"
	"github.com/zatekoja/costnavigator/internal/domain/repositories"
	"github.com/zatekoja/costnavigator/internal/infrastructure/clients/postgres"
	apperrors "github.com/zatekoja/costnavigator/pkg/errors"
	"github.com/zatekoja/costnavigator/pkg/geo"
)

// ProviderSearchAdapter implements ProviderSearchRepository
type ProviderSearchAdapter struct {
	client *postgres.Client
	db     *goqu.Database
}

// NewProviderSearchAdapter creates a new provider search adapter
func NewProviderSearchAdapter(client *postgres.Client) repositories.ProviderSearchRepository {
	return &ProviderSearchAdapter{
		client: client,
		db:     newGoqu(client),
	}
}

type candidateRow struct {
	ProviderID              string              `db:"provider_id"`
	ProviderName            string              `db:"provider_name"`
	ProviderCity            sql.NullString      `db:"provider_city"`
	ProviderState           sql.NullString      `db:"provider_state"`
	ProviderZipCode         sql.NullString      `db:"provider_zip_code"`
	Latitude                float64             `db:"latitude"`
	Longitude               float64             `db:"longitude"`
	DRGCode                 int                 `db:"drg_code"`
	DRGDescription          sql.NullString      `db:"drg_description"`
	AverageCoveredCharges   decimal.NullDecimal `db:"average_covered_charges"`
	AverageTotalPayments    decimal.NullDecimal `db:"average_total_payments"`
	AverageMedicarePayments decimal.NullDecimal `db:"average_medicare_payments"`
	AvgRating               sql.NullFloat64     `db:"avg_rating"`
}

func (r *candidateRow) toEntity() entities.Candidate {
	c := entities.Candidate{
		ProviderID:              r.ProviderID,
		ProviderName:            r.ProviderName,
		ProviderCity:            r.ProviderCity.String,
		ProviderState:           r.ProviderState.String,
		ProviderZipCode:         r.ProviderZipCode.String,
		Location:                geo.Point{Latitude: r.Latitude, Longitude: r.Longitude},
		DRGCode:                 r.DRGCode,
		DRGDescription:          r.DRGDescription.String,
		AverageCoveredCharges:   decimalPtr(r.AverageCoveredCharges),
		AverageTotalPayments:    decimalPtr(r.AverageTotalPayments),
		AverageMedicarePayments: decimalPtr(r.AverageMedicarePayments),
	}
	if r.AvgRating.Valid {
		v := r.AvgRating.Float64
		c.AvgRating = &v
	}
	return c
}

func decimalPtr(d decimal.NullDecimal) *float64 {
	if !d.Valid {
		return nil
	}
	v := d.Decimal.InexactFloat64()
	return &v
}

// FindCandidates returns every located provider with a price row for the DRG.
// Distance filtering and ordering happen in the ranker, not in SQL.
func (a *ProviderSearchAdapter) FindCandidates(ctx context.Context, filter repositories.CandidateFilter) ([]entities.Candidate, error) {
	ratings := a.db.From("star_ratings").
		Select(goqu.C("provider_id"), goqu.AVG("rating").As("avg_rating")).
		GroupBy("provider_id")

	ds := a.db.From(goqu.T("providers").As("p")).
		Prepared(true).
		Select(
			goqu.I("p.provider_id"),
			goqu.I("p.provider_name"),
			goqu.I("p.provider_city"),
			goqu.I("p.provider_state"),
			goqu.I("p.provider_zip_code"),
			goqu.I("p.latitude"),
			goqu.I("p.longitude"),
			goqu.I("d.code").As("drg_code"),
			goqu.I("d.description").As("drg_description"),
			goqu.I("pr.average_covered_charges"),
			goqu.I("pr.average_total_payments"),
			goqu.I("pr.average_medicare_payments"),
			goqu.I("r.avg_rating"),
		).
		InnerJoin(goqu.T("prices").As("pr"), goqu.On(goqu.I("pr.provider_id").Eq(goqu.I("p.id")))).
		InnerJoin(goqu.T("drgs").As("d"), goqu.On(goqu.I("d.code").Eq(goqu.I("pr.drg_code")))).
		LeftJoin(ratings.As("r"), goqu.On(goqu.I("r.provider_id").Eq(goqu.I("p.id")))).
		Where(
			goqu.I("pr.drg_code").Eq(filter.ProcedureCode),
			goqu.I("p.latitude").IsNotNull(),
			goqu.I("p.longitude").IsNotNull(),
		)

	if b := filter.Bounds; b != nil {
		ds = ds.Where(
			goqu.I("p.latitude").Between(goqu.Range(b.MinLat, b.MaxLat)),
			goqu.I("p.longitude").Between(goqu.Range(b.MinLon, b.MaxLon)),
		)
	}

	query, args, err := ds.ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build candidate query", err)
	}

	var rows []candidateRow
	if err := a.client.DBX().SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, apperrors.NewInternalError("failed to query candidates", err)
	}

	candidates := make([]entities.Candidate, 0, len(rows))
	for i := range rows {
		candidates = append(candidates, rows[i].toEntity())
	}
	return candidates, nil
}
