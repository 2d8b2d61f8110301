package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/josecarlosjccf/crud-clientes/internal/core/domain"
	"github.com/josecarlosjccf/crud-clientes/internal/core/ports"
)

type stubUserRepo struct {
	users []domain.User
}

func (r *stubUserRepo) List(_ context.Context) ([]domain.User, error) {
	out := make([]domain.User, len(r.users))
	copy(out, r.users)
	return out, nil
}

func (r *stubUserRepo) Insert(_ context.Context, user *domain.User) error {
	r.users = append(r.users, *user)
	return nil
}

func (r *stubUserRepo) Replace(_ context.Context, id int64, user *domain.User) error {
	for i := range r.users {
		if r.users[i].ID == id {
			r.users[i] = *user
			return nil
		}
	}
	return domain.ErrUserNotFound
}

func newUserService(repo *stubUserRepo) *UserService {
	return NewUserService(repo, zerolog.Nop())
}

func TestUserService_Register_Success(t *testing.T) {
	repo := &stubUserRepo{}
	svc := newUserService(repo)

	user, err := svc.Register(context.Background(), "Bob", "bob@x.com", "pw123")
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if user.ID == 0 {
		t.Fatalf("expected a time-based id")
	}
	if user.PasswordHash == "pw123" {
		t.Fatalf("expected password to be hashed")
	}
	if user.PasswordHash != domain.HashPassword("pw123") {
		t.Fatalf("stored digest does not verify")
	}
	if user.CreatedAt.IsZero() {
		t.Fatalf("expected created_at to be stamped")
	}
}

func TestUserService_Register_MissingFields(t *testing.T) {
	svc := newUserService(&stubUserRepo{})

	if _, err := svc.Register(context.Background(), "Bob", "", "pw"); !errors.Is(err, domain.ErrMissingField) {
		t.Fatalf("expected ErrMissingField, got %v", err)
	}
	if _, err := svc.Register(context.Background(), "", "bob@x.com", "pw"); !errors.Is(err, domain.ErrMissingField) {
		t.Fatalf("expected ErrMissingField, got %v", err)
	}
}

func TestUserService_Register_DuplicateEmailCaseInsensitive(t *testing.T) {
	svc := newUserService(&stubUserRepo{})

	if _, err := svc.Register(context.Background(), "Bob", "bob@x.com", "pw123"); err != nil {
		t.Fatalf("first register failed: %v", err)
	}
	if _, err := svc.Register(context.Background(), "Robert", "BOB@X.COM", "other"); !errors.Is(err, domain.ErrConflict) {
		t.Fatalf("expected ErrConflict on folded email, got %v", err)
	}
}

func TestUserService_Authenticate(t *testing.T) {
	svc := newUserService(&stubUserRepo{})

	if _, err := svc.Register(context.Background(), "Bob", "bob@x.com", "pw123"); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	if _, err := svc.Authenticate(context.Background(), "bob@x.com", "pw123"); err != nil {
		t.Fatalf("expected successful login, got %v", err)
	}
	if _, err := svc.Authenticate(context.Background(), "bob@x.com", "wrong"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials on bad password, got %v", err)
	}
	// Unknown email maps to the same error as a bad password.
	if _, err := svc.Authenticate(context.Background(), "ghost@x.com", "pw123"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials on unknown email, got %v", err)
	}
}

func TestUserService_Update_NotFound(t *testing.T) {
	svc := newUserService(&stubUserRepo{})

	input := ports.UserUpdateInput{Name: "Bob", Email: "bob@x.com", Password: "pw"}
	if _, err := svc.Update(context.Background(), 42, input); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserService_Update_EmailConflictExcludesSelf(t *testing.T) {
	repo := &stubUserRepo{users: []domain.User{
		{ID: 1, Name: "Bob", Email: "bob@x.com", PasswordHash: domain.HashPassword("pw")},
		{ID: 2, Name: "Ana", Email: "ana@x.com", PasswordHash: domain.HashPassword("pw")},
	}}
	svc := newUserService(repo)

	// Keeping one's own email is never a conflict.
	if _, err := svc.Update(context.Background(), 1, ports.UserUpdateInput{Name: "Bob", Email: "bob@x.com", Password: "new"}); err != nil {
		t.Fatalf("own email must not conflict: %v", err)
	}

	// Taking another user's email is.
	input := ports.UserUpdateInput{Name: "Bob", Email: "ana@x.com", Password: "new"}
	if _, err := svc.Update(context.Background(), 1, input); !errors.Is(err, domain.ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
}

func TestUserService_Update_PasswordHashPassThrough(t *testing.T) {
	storedHash := domain.HashPassword("original")
	repo := &stubUserRepo{users: []domain.User{
		{ID: 1, Name: "Bob", Email: "bob@x.com", PasswordHash: storedHash, CreatedAt: time.Now().UTC()},
	}}
	svc := newUserService(repo)

	// With the flag set, the digest is carried over unchanged.
	user, err := svc.Update(context.Background(), 1, ports.UserUpdateInput{
		Name: "Bob", Email: "bob@x.com", Password: storedHash, PasswordIsHash: true,
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if user.PasswordHash != storedHash {
		t.Fatalf("expected digest pass-through, got %q", user.PasswordHash)
	}

	// Without the flag, even a hash-shaped value is treated as plaintext.
	user, err = svc.Update(context.Background(), 1, ports.UserUpdateInput{
		Name: "Bob", Email: "bob@x.com", Password: storedHash,
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if user.PasswordHash != domain.HashPassword(storedHash) {
		t.Fatalf("expected re-hash of flagless value")
	}
}

func TestUserService_Current(t *testing.T) {
	now := time.Now().UTC()
	repo := &stubUserRepo{users: []domain.User{
		{ID: 1, Name: "Old", Email: "old@x.com", CreatedAt: now.Add(-time.Hour)},
		{ID: 2, Name: "New", Email: "new@x.com", CreatedAt: now},
	}}
	svc := newUserService(repo)

	user, err := svc.Current(context.Background())
	if err != nil {
		t.Fatalf("Current returned error: %v", err)
	}
	if user.ID != 2 {
		t.Fatalf("expected the newest user, got id %d", user.ID)
	}
}

func TestUserService_Current_Empty(t *testing.T) {
	svc := newUserService(&stubUserRepo{})

	if _, err := svc.Current(context.Background()); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound on empty store, got %v", err)
	}
}
