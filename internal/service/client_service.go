package service

import (
	"context"
	"errors"

	"fitcoach/fitness-platform/internal/domain"
	"fitcoach/fitness-platform/internal/repository"
)

// --- Error Definitions ---
var (
	ErrClientNotFound = errors.New("client not found")
)

// ClientUpdate carries a partial update: nil fields are left untouched.
type ClientUpdate struct {
	Name *string
	Age  *int
	Goal *string
}

// ClientService manages a trainer's roster. Every operation is scoped to
// the calling trainer; a client owned by someone else is reported as
// ErrClientNotFound, indistinguishable from a client that does not exist.
type ClientService interface {
	Create(ctx context.Context, trainer *domain.Trainer, name string, age int, goal string) (*domain.Client, error)
	List(ctx context.Context, trainer *domain.Trainer) ([]domain.Client, error)
	Get(ctx context.Context, trainer *domain.Trainer, clientID uint) (*domain.Client, error)
	Update(ctx context.Context, trainer *domain.Trainer, clientID uint, update ClientUpdate) (*domain.Client, error)
	Delete(ctx context.Context, trainer *domain.Trainer, clientID uint) error
}

// clientService implements the ClientService interface.
type clientService struct {
	clientRepo repository.ClientRepository
}

// NewClientService creates a new instance of clientService.
func NewClientService(clientRepo repository.ClientRepository) ClientService {
	return &clientService{clientRepo: clientRepo}
}

// Create inserts a new client owned by the calling trainer. Age carries
// no range check beyond being an integer; that gap is documented rather
// than silently tightened.
func (s *clientService) Create(ctx context.Context, trainer *domain.Trainer, name string, age int, goal string) (*domain.Client, error) {
	client := &domain.Client{
		Name:      name,
		Age:       age,
		Goal:      goal,
		TrainerID: trainer.ID,
		IsActive:  true,
	}

	if err := s.clientRepo.Create(ctx, client); err != nil {
		return nil, err
	}
	return client, nil
}

// List returns all active clients of the calling trainer. Unlike the
// trainer directory this is unpaginated.
func (s *clientService) List(ctx context.Context, trainer *domain.Trainer) ([]domain.Client, error) {
	clients, err := s.clientRepo.ListByTrainer(ctx, trainer.ID)
	if err != nil {
		return nil, err
	}
	if clients == nil {
		clients = []domain.Client{}
	}
	return clients, nil
}

// Get fetches one active, owned client.
func (s *clientService) Get(ctx context.Context, trainer *domain.Trainer, clientID uint) (*domain.Client, error) {
	client, err := s.clientRepo.GetOwned(ctx, clientID, trainer.ID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrClientNotFound
		}
		return nil, err
	}
	return client, nil
}

// Update applies the non-nil fields of the update to the active, owned
// client and returns the result. Concurrent updates are last-write-wins.
func (s *clientService) Update(ctx context.Context, trainer *domain.Trainer, clientID uint, update ClientUpdate) (*domain.Client, error) {
	client, err := s.Get(ctx, trainer, clientID)
	if err != nil {
		return nil, err
	}

	if update.Name != nil {
		client.Name = *update.Name
	}
	if update.Age != nil {
		client.Age = *update.Age
	}
	if update.Goal != nil {
		client.Goal = *update.Goal
	}

	if err := s.clientRepo.Update(ctx, client); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrClientNotFound
		}
		return nil, err
	}
	return client, nil
}

// Delete soft-deletes the active, owned client. The row stays in the
// store but becomes invisible to every later operation, for every caller.
func (s *clientService) Delete(ctx context.Context, trainer *domain.Trainer, clientID uint) error {
	err := s.clientRepo.SoftDelete(ctx, clientID, trainer.ID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrClientNotFound
		}
		return err
	}
	return nil
}
