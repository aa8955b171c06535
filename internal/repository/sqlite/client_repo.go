package sqlite

import (
	"context"
	"errors"

	"fitcoach/fitness-platform/internal/domain"
	"fitcoach/fitness-platform/internal/repository"

	"gorm.io/gorm"
)

// sqliteClientRepository implements repository.ClientRepository on GORM.
type sqliteClientRepository struct {
	db *gorm.DB
}

// NewClientRepository creates a new client repository backed by the given
// GORM connection.
func NewClientRepository(db *gorm.DB) repository.ClientRepository {
	return &sqliteClientRepository{db: db}
}

// ownedActive is the shared ownership scope: rows belonging to the given
// trainer that have not been soft-deleted. Every read and mutation except
// Create goes through this filter, so "not yours" and "already deleted"
// are indistinguishable from "does not exist".
func (r *sqliteClientRepository) ownedActive(ctx context.Context, trainerID uint) *gorm.DB {
	return r.db.WithContext(ctx).
		Model(&domain.Client{}).
		Where("trainer_id = ? AND is_active = ?", trainerID, true)
}

// Create inserts a new client row. TrainerID must already be set to the
// owning trainer by the caller.
func (r *sqliteClientRepository) Create(ctx context.Context, client *domain.Client) error {
	if client.TrainerID == 0 {
		return errors.New("client trainer ID is required")
	}
	return r.db.WithContext(ctx).Create(client).Error
}

// GetOwned retrieves an active client by id within the trainer's scope.
func (r *sqliteClientRepository) GetOwned(ctx context.Context, id, trainerID uint) (*domain.Client, error) {
	var client domain.Client
	err := r.ownedActive(ctx, trainerID).Where("id = ?", id).First(&client).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &client, nil
}

// ListByTrainer returns all active clients owned by the trainer in
// creation order.
func (r *sqliteClientRepository) ListByTrainer(ctx context.Context, trainerID uint) ([]domain.Client, error) {
	var clients []domain.Client
	err := r.ownedActive(ctx, trainerID).Order("id").Find(&clients).Error
	if err != nil {
		return nil, err
	}
	return clients, nil
}

// Update persists the full client row. The caller is expected to have
// loaded the row through GetOwned first, so the ownership check has
// already happened; last write wins between concurrent updates.
func (r *sqliteClientRepository) Update(ctx context.Context, client *domain.Client) error {
	result := r.ownedActive(ctx, client.TrainerID).
		Where("id = ?", client.ID).
		Updates(map[string]interface{}{
			"name": client.Name,
			"age":  client.Age,
			"goal": client.Goal,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// SoftDelete flips is_active to false on the active, owned client. The
// row itself is never removed.
func (r *sqliteClientRepository) SoftDelete(ctx context.Context, id, trainerID uint) error {
	result := r.ownedActive(ctx, trainerID).
		Where("id = ?", id).
		Update("is_active", false)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return repository.ErrNotFound
	}
	return nil
}
