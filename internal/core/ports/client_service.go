package ports

import (
	"context"

	"github.com/josecarlosjccf/crud-clientes/internal/core/domain"
)

// ClientInput carries the client fields accepted on create and update.
type ClientInput struct {
	ID                string
	Type              domain.ClientType
	FiscalCode        string
	Name              string
	Date              string
	Address           domain.Address
	StateRegistration string
	TradeName         string
}

// DecoratedClient is a client record enriched with display names resolved
// from the reference tables.
type DecoratedClient struct {
	domain.Client
	StateName string `json:"state_name"`
	CityName  string `json:"city_name"`
}

// ClientService orchestrates client CRUD, duplicate validation, and image
// asset management.
type ClientService interface {
	Create(ctx context.Context, input ClientInput, upload *Upload) (*domain.Client, error)
	Update(ctx context.Context, id string, input ClientInput, upload *Upload) (*domain.Client, error)
	Delete(ctx context.Context, id string) (*domain.Client, error)
	Get(ctx context.Context, id string) (*domain.Client, error)
	List(ctx context.Context) ([]DecoratedClient, error)
}
