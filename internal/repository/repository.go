package repository

import (
	"context"

	"fitcoach/fitness-platform/internal/domain"
)

// Error constants for the repository layer.
var (
	ErrNotFound       = RepositoryError("not found")
	ErrDuplicateEmail = RepositoryError("email already registered")
)

// RepositoryError helps distinguish repository errors
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// TrainerRepository defines the interface for interacting with trainer data.
type TrainerRepository interface {
	Create(ctx context.Context, trainer *domain.Trainer) error
	GetByEmail(ctx context.Context, email string) (*domain.Trainer, error)
	GetByID(ctx context.Context, id uint) (*domain.Trainer, error)
	// List returns one page of trainers in creation order plus the total
	// count. The count and the slice are two queries with no consistency
	// guarantee between them under concurrent writes.
	List(ctx context.Context, offset, limit int) ([]domain.Trainer, int64, error)
}

// ClientRepository defines the interface for interacting with client data.
// Every read and mutation except Create is scoped to the owning trainer
// and to active rows; a row that exists but is owned by someone else (or
// was soft-deleted) is reported as ErrNotFound.
type ClientRepository interface {
	Create(ctx context.Context, client *domain.Client) error
	GetOwned(ctx context.Context, id, trainerID uint) (*domain.Client, error)
	ListByTrainer(ctx context.Context, trainerID uint) ([]domain.Client, error)
	Update(ctx context.Context, client *domain.Client) error
	SoftDelete(ctx context.Context, id, trainerID uint) error
}
