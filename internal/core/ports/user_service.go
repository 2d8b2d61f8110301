package ports

import (
	"context"

	"github.com/josecarlosjccf/crud-clientes/internal/core/domain"
)

// UserUpdateInput carries the fields accepted by the edit-profile flow.
// PasswordIsHash is set when Password already holds a stored digest that
// must be carried over unchanged instead of re-hashed.
type UserUpdateInput struct {
	Name           string
	Email          string
	Password       string
	PasswordIsHash bool
}

// UserService manages sign-up, login, and profile editing.
type UserService interface {
	Register(ctx context.Context, name, email, password string) (*domain.User, error)
	Authenticate(ctx context.Context, email, password string) (*domain.User, error)
	Update(ctx context.Context, id int64, input UserUpdateInput) (*domain.User, error)
	// Current returns the most recently created user. The registry has no
	// session concept, so the newest account stands in for "current" in the
	// edit-profile flow.
	Current(ctx context.Context) (*domain.User, error)
}
