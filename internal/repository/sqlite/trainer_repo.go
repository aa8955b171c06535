package sqlite

import (
	"context"
	"errors"

	"fitcoach/fitness-platform/internal/domain"
	"fitcoach/fitness-platform/internal/repository"

	"gorm.io/gorm"
)

// sqliteTrainerRepository implements repository.TrainerRepository on GORM.
type sqliteTrainerRepository struct {
	db *gorm.DB
}

// NewTrainerRepository creates a new trainer repository backed by the
// given GORM connection.
func NewTrainerRepository(db *gorm.DB) repository.TrainerRepository {
	return &sqliteTrainerRepository{db: db}
}

// Create inserts a new trainer. A unique-index violation on email maps to
// repository.ErrDuplicateEmail; the assigned ID and CreatedAt are written
// back onto the passed-in struct.
func (r *sqliteTrainerRepository) Create(ctx context.Context, trainer *domain.Trainer) error {
	if trainer.Email == "" || trainer.PasswordHash == "" {
		return errors.New("trainer email and password hash are required")
	}

	err := r.db.WithContext(ctx).Create(trainer).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return repository.ErrDuplicateEmail
		}
		return err
	}
	return nil
}

// GetByEmail retrieves a trainer by their login email.
func (r *sqliteTrainerRepository) GetByEmail(ctx context.Context, email string) (*domain.Trainer, error) {
	var trainer domain.Trainer
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&trainer).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &trainer, nil
}

// GetByID retrieves a trainer by primary key.
func (r *sqliteTrainerRepository) GetByID(ctx context.Context, id uint) (*domain.Trainer, error) {
	var trainer domain.Trainer
	err := r.db.WithContext(ctx).First(&trainer, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &trainer, nil
}

// List returns trainers in creation order along with the total count.
func (r *sqliteTrainerRepository) List(ctx context.Context, offset, limit int) ([]domain.Trainer, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&domain.Trainer{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var trainers []domain.Trainer
	err := r.db.WithContext(ctx).
		Order("id").
		Offset(offset).
		Limit(limit).
		Find(&trainers).Error
	if err != nil {
		return nil, 0, err
	}

	return trainers, total, nil
}
