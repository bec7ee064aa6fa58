package services

import (
	"context"
	"strings"

	"github.com/zatekoja/costnavigator/internal/domain/repositories"
	apperrors "github.com/zatekoja/costnavigator/pkg/errors"
)

// ErrProcedureNotFound is the message carried when neither a code nor a matching description is available
const ErrProcedureNotFound = "please specify a procedure"

// ProcedureResolver turns a DRG code or description fragment into a DRG code
type ProcedureResolver struct {
	procedures repositories.ProcedureRepository
}

// NewProcedureResolver creates a new procedure resolver
func NewProcedureResolver(procedures repositories.ProcedureRepository) *ProcedureResolver {
	return &ProcedureResolver{procedures: procedures}
}

// ResolveProcedure returns code unchanged when present. Otherwise the lowest
// code whose description contains text (case-insensitively) wins.
func (r *ProcedureResolver) ResolveProcedure(ctx context.Context, code *int, text string) (int, error) {
	if code != nil {
		return *code, nil
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return 0, apperrors.NewNotFoundError(ErrProcedureNotFound)
	}

	p, err := r.procedures.FindByDescription(ctx, text)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return 0, apperrors.NewNotFoundError(ErrProcedureNotFound)
		}
		return 0, err
	}
	return p.Code, nil
}
