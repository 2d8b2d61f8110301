package ports

import (
	"context"

	"github.com/josecarlosjccf/crud-clientes/internal/core/domain"
)

// ReferenceRepository loads the static state and city lookup tables. The
// tables are read-only; there are no mutation methods.
type ReferenceRepository interface {
	States(ctx context.Context) ([]domain.State, error)
	Cities(ctx context.Context) ([]domain.City, error)
}
