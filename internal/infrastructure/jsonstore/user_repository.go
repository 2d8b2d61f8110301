package jsonstore

import (
	"context"
	"time"

	"github.com/josecarlosjccf/crud-clientes/internal/core/domain"
)

const usersFile = "users.json"

// storedUser is the on-disk user shape. The domain type hides the password
// digest from JSON rendering, so persistence needs its own mapping.
type storedUser struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"password_hash"`
	CreatedAt    time.Time `json:"created_at"`
}

// UserRepository persists user accounts in users.json.
type UserRepository struct {
	store *Store
}

func NewUserRepository(store *Store) *UserRepository {
	return &UserRepository{store: store}
}

func (r *UserRepository) List(_ context.Context) ([]domain.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return r.load()
}

func (r *UserRepository) Insert(_ context.Context, user *domain.User) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	users, err := r.load()
	if err != nil {
		return err
	}
	users = append(users, *user)
	return r.save(users)
}

func (r *UserRepository) Replace(_ context.Context, id int64, user *domain.User) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	users, err := r.load()
	if err != nil {
		return err
	}
	for i := range users {
		if users[i].ID == id {
			users[i] = *user
			return r.save(users)
		}
	}
	return domain.ErrUserNotFound
}

func (r *UserRepository) load() ([]domain.User, error) {
	stored := []storedUser{}
	if err := r.store.readFile(usersFile, &stored); err != nil {
		return nil, err
	}

	users := make([]domain.User, 0, len(stored))
	for _, su := range stored {
		users = append(users, domain.User{
			ID:           su.ID,
			Name:         su.Name,
			Email:        su.Email,
			PasswordHash: su.PasswordHash,
			CreatedAt:    su.CreatedAt,
		})
	}
	return users, nil
}

func (r *UserRepository) save(users []domain.User) error {
	stored := make([]storedUser, 0, len(users))
	for _, u := range users {
		stored = append(stored, storedUser{
			ID:           u.ID,
			Name:         u.Name,
			Email:        u.Email,
			PasswordHash: u.PasswordHash,
			CreatedAt:    u.CreatedAt,
		})
	}
	return r.store.writeFile(usersFile, stored)
}
