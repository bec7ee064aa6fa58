package repositories

import (
	"context"

	"github.com/zatekoja/costnavigator/internal/domain/entities"
)

// ProcedureRepository defines read access to the DRG catalogue
type ProcedureRepository interface {
	// GetByCode retrieves a DRG by its numeric code
	GetByCode(ctx context.Context, code int) (*entities.Procedure, error)

	// FindByDescription returns the lowest-coded DRG whose description contains
	// fragment, case-insensitively. Returns a not found error when nothing matches.
	FindByDescription(ctx context.Context, fragment string) (*entities.Procedure, error)
}
