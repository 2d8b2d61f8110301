package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/josecarlosjccf/crud-clientes/internal/api/metrics"
	"github.com/josecarlosjccf/crud-clientes/internal/core/domain"
	"github.com/josecarlosjccf/crud-clientes/internal/core/ports"
)

// ClientService implements client CRUD over the flat-file repository,
// running duplicate validation before every write and keeping the image
// asset in step with the record.
type ClientService struct {
	repo   ports.ClientRepository
	refs   ports.ReferenceRepository
	assets ports.AssetStore
	logger zerolog.Logger
}

func NewClientService(repo ports.ClientRepository, refs ports.ReferenceRepository, assets ports.AssetStore, logger zerolog.Logger) *ClientService {
	return &ClientService{repo: repo, refs: refs, assets: assets, logger: logger}
}

func (s *ClientService) Create(ctx context.Context, input ports.ClientInput, upload *ports.Upload) (*domain.Client, error) {
	if input.ID == "" || input.FiscalCode == "" || input.Name == "" {
		return nil, fmt.Errorf("%w: id, fiscal code and name are required", domain.ErrMissingField)
	}

	existing, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	client := clientFromInput(input)
	if conflicts := domain.FindConflicts(existing, client); len(conflicts) > 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrConflict, conflicts[0].Message)
	}

	if upload != nil {
		path, err := s.assets.Save(ctx, client.ID, *upload)
		if err != nil {
			metrics.IconUploadsTotal.WithLabelValues("rejected").Inc()
			return nil, err
		}
		client.IconPath = path
		metrics.IconUploadsTotal.WithLabelValues("stored").Inc()
	}

	client.CreatedAt = time.Now().UTC()

	if err := s.repo.Insert(ctx, client); err != nil {
		s.logger.Error().Err(err).Str("client_id", client.ID).Msg("failed to persist client")
		return nil, err
	}

	metrics.ClientsTotal.WithLabelValues("created").Inc()
	s.logger.Info().Str("client_id", client.ID).Str("type", string(client.Type)).Msg("client created")
	return client, nil
}

func (s *ClientService) Update(ctx context.Context, id string, input ports.ClientInput, upload *ports.Upload) (*domain.Client, error) {
	existing, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	prior := findByID(existing, id)
	if prior == nil {
		return nil, domain.ErrClientNotFound
	}

	client := clientFromInput(input)
	if client.ID == "" {
		client.ID = id
	}

	// The record under edit must not conflict with itself.
	others := make([]domain.Client, 0, len(existing)-1)
	for i := range existing {
		if existing[i].ID != id {
			others = append(others, existing[i])
		}
	}
	if conflicts := domain.FindConflicts(others, client); len(conflicts) > 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrConflict, conflicts[0].Message)
	}

	client.IconPath = prior.IconPath
	if client.ID != id && prior.IconPath != "" {
		path, found, err := s.assets.Rename(ctx, id, client.ID)
		if err != nil {
			return nil, err
		}
		if found {
			client.IconPath = path
		}
	}
	if upload != nil {
		// Drop any previous asset first so a changed extension cannot
		// leave a stale file behind.
		if err := s.assets.Remove(ctx, client.ID); err != nil {
			s.logger.Warn().Err(err).Str("client_id", client.ID).Msg("failed to remove previous icon")
		}
		path, err := s.assets.Save(ctx, client.ID, *upload)
		if err != nil {
			metrics.IconUploadsTotal.WithLabelValues("rejected").Inc()
			return nil, err
		}
		client.IconPath = path
		metrics.IconUploadsTotal.WithLabelValues("stored").Inc()
	}

	client.CreatedAt = prior.CreatedAt
	now := time.Now().UTC()
	client.UpdatedAt = &now

	if err := s.repo.Replace(ctx, id, client); err != nil {
		s.logger.Error().Err(err).Str("client_id", id).Msg("failed to persist client update")
		return nil, err
	}

	metrics.ClientsTotal.WithLabelValues("updated").Inc()
	s.logger.Info().Str("client_id", client.ID).Msg("client updated")
	return client, nil
}

func (s *ClientService) Delete(ctx context.Context, id string) (*domain.Client, error) {
	removed, err := s.repo.Delete(ctx, id)
	if err != nil {
		return nil, err
	}

	// Asset cleanup is best-effort: a leftover file must not fail the
	// delete that already persisted.
	if removed.IconPath != "" {
		if err := s.assets.Remove(ctx, id); err != nil {
			s.logger.Warn().Err(err).Str("client_id", id).Msg("failed to remove client icon")
		}
	}

	metrics.ClientsTotal.WithLabelValues("deleted").Inc()
	s.logger.Info().Str("client_id", id).Msg("client deleted")
	return removed, nil
}

func (s *ClientService) Get(ctx context.Context, id string) (*domain.Client, error) {
	return s.repo.FindByID(ctx, id)
}

// List returns all clients decorated with state and city display names. A
// lookup miss yields an empty name, never an error.
func (s *ClientService) List(ctx context.Context) ([]ports.DecoratedClient, error) {
	clients, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	states, err := s.refs.States(ctx)
	if err != nil {
		return nil, err
	}
	cities, err := s.refs.Cities(ctx)
	if err != nil {
		return nil, err
	}

	stateNames := make(map[string]string, len(states))
	for _, st := range states {
		stateNames[st.ID] = st.Name
	}
	cityNames := make(map[string]string, len(cities))
	for _, ct := range cities {
		cityNames[ct.ID] = ct.Name
	}

	decorated := make([]ports.DecoratedClient, 0, len(clients))
	for _, c := range clients {
		decorated = append(decorated, ports.DecoratedClient{
			Client:    c,
			StateName: stateNames[c.Address.StateID],
			CityName:  cityNames[c.Address.CityID],
		})
	}
	return decorated, nil
}

func clientFromInput(input ports.ClientInput) *domain.Client {
	client := &domain.Client{
		ID:         input.ID,
		Type:       input.Type,
		FiscalCode: input.FiscalCode,
		Name:       input.Name,
		Date:       input.Date,
		Address:    input.Address,
	}
	if client.Type == "" {
		client.Type = domain.TypeIndividual
	}
	if client.IsBusiness() {
		client.StateRegistration = input.StateRegistration
		client.TradeName = input.TradeName
	}
	return client
}

func findByID(clients []domain.Client, id string) *domain.Client {
	for i := range clients {
		if clients[i].ID == id {
			return &clients[i]
		}
	}
	return nil
}
