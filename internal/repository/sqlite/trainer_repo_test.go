package sqlite

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"

	"fitcoach/fitness-platform/internal/domain"
	"fitcoach/fitness-platform/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) repository.TrainerRepository {
	t.Helper()
	db, err := Connect(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	return NewTrainerRepository(db)
}

func TestTrainerCreateSetsDefaults(t *testing.T) {
	repo := openTestDB(t)
	ctx := context.Background()

	trainer := &domain.Trainer{Name: "Elena", Email: "e@x.com", PasswordHash: "h", IsActive: true}
	require.NoError(t, repo.Create(ctx, trainer))
	assert.NotZero(t, trainer.ID)
	assert.False(t, trainer.CreatedAt.IsZero())
}

func TestTrainerDuplicateEmail(t *testing.T) {
	repo := openTestDB(t)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &domain.Trainer{Name: "A", Email: "dup@x.com", PasswordHash: "h", IsActive: true}))

	err := repo.Create(ctx, &domain.Trainer{Name: "B", Email: "dup@x.com", PasswordHash: "h", IsActive: true})
	assert.ErrorIs(t, err, repository.ErrDuplicateEmail)
}

func TestTrainerGetByEmailNotFound(t *testing.T) {
	repo := openTestDB(t)

	_, err := repo.GetByEmail(context.Background(), "ghost@x.com")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestTrainerListPagination(t *testing.T) {
	repo := openTestDB(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		trainer := &domain.Trainer{
			Name:         fmt.Sprintf("Trainer %d", i),
			Email:        fmt.Sprintf("t%d@x.com", i),
			PasswordHash: "h",
			IsActive:     true,
		}
		require.NoError(t, repo.Create(ctx, trainer))
	}

	page, total, err := repo.List(ctx, 2, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
	require.Len(t, page, 2)
	assert.Equal(t, "t2@x.com", page[0].Email)
	assert.Equal(t, "t3@x.com", page[1].Email)

	// Offset past the end: empty slice, same total.
	page, total, err = repo.List(ctx, 10, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
	assert.Empty(t, page)
}
