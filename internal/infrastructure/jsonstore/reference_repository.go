package jsonstore

import (
	"context"

	"github.com/josecarlosjccf/crud-clientes/internal/core/domain"
)

const (
	statesFile = "states.json"
	citiesFile = "cities.json"
)

// ReferenceRepository reads the static state and city lookup tables. The
// files are shipped with the deployment and never written by this process.
type ReferenceRepository struct {
	store *Store
}

func NewReferenceRepository(store *Store) *ReferenceRepository {
	return &ReferenceRepository{store: store}
}

func (r *ReferenceRepository) States(_ context.Context) ([]domain.State, error) {
	states := []domain.State{}
	if err := r.store.readFile(statesFile, &states); err != nil {
		return nil, err
	}
	return states, nil
}

func (r *ReferenceRepository) Cities(_ context.Context) ([]domain.City, error) {
	cities := []domain.City{}
	if err := r.store.readFile(citiesFile, &cities); err != nil {
		return nil, err
	}
	return cities, nil
}
