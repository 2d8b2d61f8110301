package service

import (
	"context"
	"sort"
	"strings"

	"github.com/josecarlosjccf/crud-clientes/internal/core/domain"
	"github.com/josecarlosjccf/crud-clientes/internal/core/ports"
)

// ReferenceService serves the static state and city lookup tables, sorted
// alphabetically for display.
type ReferenceService struct {
	repo ports.ReferenceRepository
}

func NewReferenceService(repo ports.ReferenceRepository) *ReferenceService {
	return &ReferenceService{repo: repo}
}

func (s *ReferenceService) States(ctx context.Context) ([]domain.State, error) {
	states, err := s.repo.States(ctx)
	if err != nil {
		return nil, err
	}
	sort.Slice(states, func(i, j int) bool {
		return strings.ToLower(states[i].Name) < strings.ToLower(states[j].Name)
	})
	return states, nil
}

func (s *ReferenceService) Cities(ctx context.Context, stateID string) ([]domain.City, error) {
	cities, err := s.repo.Cities(ctx)
	if err != nil {
		return nil, err
	}

	filtered := make([]domain.City, 0)
	for _, c := range cities {
		if c.StateID == stateID {
			filtered = append(filtered, c)
		}
	}
	sort.Slice(filtered, func(i, j int) bool {
		return strings.ToLower(filtered[i].Name) < strings.ToLower(filtered[j].Name)
	})
	return filtered, nil
}
