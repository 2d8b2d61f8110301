package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/josecarlosjccf/crud-clientes/internal/core/domain"
	"github.com/josecarlosjccf/crud-clientes/internal/core/ports"
)

// UserService implements sign-up, login, and profile editing over the
// flat-file user repository. Emails are stored lower-cased and compared
// case-insensitively.
type UserService struct {
	repo   ports.UserRepository
	logger zerolog.Logger
}

func NewUserService(repo ports.UserRepository, logger zerolog.Logger) *UserService {
	return &UserService{repo: repo, logger: logger}
}

func (s *UserService) Register(ctx context.Context, name, email, password string) (*domain.User, error) {
	name = strings.TrimSpace(name)
	email = normalizeEmail(email)
	if name == "" || email == "" || password == "" {
		return nil, fmt.Errorf("%w: name, email and password are required", domain.ErrMissingField)
	}

	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if findByEmail(users, email) != nil {
		return nil, fmt.Errorf("%w: email is already registered", domain.ErrConflict)
	}

	user := &domain.User{
		ID:           time.Now().UnixMilli(),
		Name:         name,
		Email:        email,
		PasswordHash: domain.HashPassword(password),
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.repo.Insert(ctx, user); err != nil {
		s.logger.Error().Err(err).Str("email", email).Msg("failed to persist user")
		return nil, err
	}

	s.logger.Info().Int64("user_id", user.ID).Msg("user registered")
	return user, nil
}

// Authenticate verifies the credentials. Unknown email and wrong password
// both yield domain.ErrInvalidCredentials so the response does not leak
// which part failed.
func (s *UserService) Authenticate(ctx context.Context, email, password string) (*domain.User, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return nil, fmt.Errorf("%w: email and password are required", domain.ErrMissingField)
	}

	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	user := findByEmail(users, email)
	if user == nil || !user.CheckPassword(password) {
		return nil, domain.ErrInvalidCredentials
	}

	s.logger.Info().Int64("user_id", user.ID).Msg("user authenticated")
	return user, nil
}

func (s *UserService) Update(ctx context.Context, id int64, input ports.UserUpdateInput) (*domain.User, error) {
	name := strings.TrimSpace(input.Name)
	email := normalizeEmail(input.Email)
	if name == "" || email == "" || input.Password == "" {
		return nil, fmt.Errorf("%w: name, email and password are required", domain.ErrMissingField)
	}

	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	var prior *domain.User
	for i := range users {
		if users[i].ID == id {
			prior = &users[i]
			break
		}
	}
	if prior == nil {
		return nil, domain.ErrUserNotFound
	}

	if other := findByEmail(users, email); other != nil && other.ID != id {
		return nil, fmt.Errorf("%w: email is already used by another user", domain.ErrConflict)
	}

	hash := domain.HashPassword(input.Password)
	if input.PasswordIsHash {
		hash = input.Password
	}

	user := &domain.User{
		ID:           id,
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    prior.CreatedAt,
	}

	if err := s.repo.Replace(ctx, id, user); err != nil {
		s.logger.Error().Err(err).Int64("user_id", id).Msg("failed to persist user update")
		return nil, err
	}

	s.logger.Info().Int64("user_id", id).Msg("user updated")
	return user, nil
}

// Current returns the most recently created account.
func (s *UserService) Current(ctx context.Context) (*domain.User, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(users) == 0 {
		return nil, domain.ErrUserNotFound
	}

	newest := &users[0]
	for i := range users {
		if users[i].CreatedAt.After(newest.CreatedAt) {
			newest = &users[i]
		}
	}
	out := *newest
	return &out, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func findByEmail(users []domain.User, email string) *domain.User {
	for i := range users {
		if strings.EqualFold(users[i].Email, email) {
			return &users[i]
		}
	}
	return nil
}
