package ports

import (
	"context"

	"github.com/josecarlosjccf/crud-clientes/internal/core/domain"
)

// ReferenceService serves the state and city lookup lists, alphabetically
// sorted for display.
type ReferenceService interface {
	States(ctx context.Context) ([]domain.State, error)
	Cities(ctx context.Context, stateID string) ([]domain.City, error)
}
