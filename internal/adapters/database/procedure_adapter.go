package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/doug-martin/goqu/v9"

	"github.com/zatekoja/costnavigator/internal/domain/entities"
	"github.com/zatekoja/costnavigator/internal/domain/repositories"
	"github.com/zatekoja/costnavigator/internal/infrastructure/clients/postgres"
	apperrors "github.com/zatekoja/costnavigator/pkg/errors"
)

// ProcedureAdapter implements ProcedureRepository over the drgs table
type ProcedureAdapter struct {
	client *postgres.Client
	db     *goqu.Database
}

// NewProcedureAdapter creates a new procedure adapter
func NewProcedureAdapter(client *postgres.Client) repositories.ProcedureRepository {
	return &ProcedureAdapter{
		client: client,
		db:     newGoqu(client),
	}
}

// GetByCode retrieves a DRG by code
func (a *ProcedureAdapter) GetByCode(ctx context.Context, code int) (*entities.Procedure, error) {
	ds := a.db.From("drgs").
		Prepared(true).
		Select("code", "description").
		Where(goqu.C("code").Eq(code))

	return a.getOne(ctx, ds, fmt.Sprintf("drg %d not found", code))
}

// FindByDescription returns the lowest-coded DRG whose description contains fragment
func (a *ProcedureAdapter) FindByDescription(ctx context.Context, fragment string) (*entities.Procedure, error) {
	fragment = strings.TrimSpace(fragment)
	if fragment == "" {
		return nil, apperrors.NewNotFoundError("please specify a procedure")
	}

	ds := a.db.From("drgs").
		Prepared(true).
		Select("code", "description").
		Where(goqu.C("description").ILike("%" + escapeLike(fragment) + "%")).
		Order(goqu.C("code").Asc()).
		Limit(1)

	return a.getOne(ctx, ds, fmt.Sprintf("no drg matches %q", fragment))
}

func (a *ProcedureAdapter) getOne(ctx context.Context, ds *goqu.SelectDataset, notFound string) (*entities.Procedure, error) {
	query, args, err := ds.ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build query", err)
	}

	p := &entities.Procedure{}
	var description sql.NullString
	err = a.client.DB().QueryRowContext(ctx, query, args...).Scan(&p.Code, &description)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.NewNotFoundError(notFound)
	}
	if err != nil {
		return nil, apperrors.NewInternalError("failed to get drg", err)
	}
	p.Description = description.String
	return p, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike makes LIKE metacharacters in user text match literally
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
