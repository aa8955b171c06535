package service

import (
	"context"

	"fitcoach/fitness-platform/internal/domain"
	"fitcoach/fitness-platform/internal/repository"
)

// TrainerPage is one page of the trainer directory. Total is the overall
// row count, not the page length.
type TrainerPage struct {
	Total int64
	Page  int
	Size  int
	Items []domain.Trainer
}

// TrainerService exposes the public trainer directory.
type TrainerService interface {
	// List returns the page-th page (1-based) of trainers in creation
	// order. Size must be between 1 and 100.
	List(ctx context.Context, page, size int) (*TrainerPage, error)
}

type trainerService struct {
	trainerRepo repository.TrainerRepository
}

// NewTrainerService creates a new instance of trainerService.
func NewTrainerService(trainerRepo repository.TrainerRepository) TrainerService {
	return &trainerService{trainerRepo: trainerRepo}
}

func (s *trainerService) List(ctx context.Context, page, size int) (*TrainerPage, error) {
	// Handlers validate the bounds; this is a backstop so a bad caller
	// can't request a negative offset or an unbounded page.
	if page < 1 {
		page = 1
	}
	if size < 1 {
		size = 10
	}
	if size > 100 {
		size = 100
	}

	offset := (page - 1) * size
	trainers, total, err := s.trainerRepo.List(ctx, offset, size)
	if err != nil {
		return nil, err
	}

	if trainers == nil {
		trainers = []domain.Trainer{}
	}

	return &TrainerPage{
		Total: total,
		Page:  page,
		Size:  size,
		Items: trainers,
	}, nil
}
