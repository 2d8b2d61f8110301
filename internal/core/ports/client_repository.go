package ports

import (
	"context"

	"github.com/josecarlosjccf/crud-clientes/internal/core/domain"
)

// ClientRepository defines persistence for client records. Every mutation is
// a full load-mutate-persist cycle over the backing file; callers get no
// transaction boundary beyond a single call.
type ClientRepository interface {
	List(ctx context.Context) ([]domain.Client, error)
	FindByID(ctx context.Context, id string) (*domain.Client, error)
	Insert(ctx context.Context, client *domain.Client) error
	// Replace swaps the record currently stored under id for client, whose
	// own id may differ. Returns domain.ErrClientNotFound when id is absent.
	Replace(ctx context.Context, id string, client *domain.Client) error
	// Delete removes the record and returns it for cascade cleanup.
	Delete(ctx context.Context, id string) (*domain.Client, error)
}
