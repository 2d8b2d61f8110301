package jsonstore

import (
	"context"

	"github.com/josecarlosjccf/crud-clientes/internal/core/domain"
)

const clientsFile = "clients.json"

// ClientRepository persists client records in clients.json.
type ClientRepository struct {
	store *Store
}

func NewClientRepository(store *Store) *ClientRepository {
	return &ClientRepository{store: store}
}

func (r *ClientRepository) List(_ context.Context) ([]domain.Client, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return r.load()
}

func (r *ClientRepository) FindByID(_ context.Context, id string) (*domain.Client, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	clients, err := r.load()
	if err != nil {
		return nil, err
	}
	for i := range clients {
		if clients[i].ID == id {
			c := clients[i]
			return &c, nil
		}
	}
	return nil, domain.ErrClientNotFound
}

func (r *ClientRepository) Insert(_ context.Context, client *domain.Client) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	clients, err := r.load()
	if err != nil {
		return err
	}
	clients = append(clients, *client)
	return r.store.writeFile(clientsFile, clients)
}

func (r *ClientRepository) Replace(_ context.Context, id string, client *domain.Client) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	clients, err := r.load()
	if err != nil {
		return err
	}
	for i := range clients {
		if clients[i].ID == id {
			clients[i] = *client
			return r.store.writeFile(clientsFile, clients)
		}
	}
	return domain.ErrClientNotFound
}

func (r *ClientRepository) Delete(_ context.Context, id string) (*domain.Client, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	clients, err := r.load()
	if err != nil {
		return nil, err
	}
	for i := range clients {
		if clients[i].ID == id {
			removed := clients[i]
			clients = append(clients[:i], clients[i+1:]...)
			if err := r.store.writeFile(clientsFile, clients); err != nil {
				return nil, err
			}
			return &removed, nil
		}
	}
	return nil, domain.ErrClientNotFound
}

func (r *ClientRepository) load() ([]domain.Client, error) {
	clients := []domain.Client{}
	if err := r.store.readFile(clientsFile, &clients); err != nil {
		return nil, err
	}
	return clients, nil
}
