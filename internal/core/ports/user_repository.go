package ports

import (
	"context"

	"github.com/josecarlosjccf/crud-clientes/internal/core/domain"
)

// UserRepository defines persistence for user accounts. Users are never
// deleted.
type UserRepository interface {
	List(ctx context.Context) ([]domain.User, error)
	Insert(ctx context.Context, user *domain.User) error
	// Replace swaps the record stored under id. Returns
	// domain.ErrUserNotFound when id is absent.
	Replace(ctx context.Context, id int64, user *domain.User) error
}
