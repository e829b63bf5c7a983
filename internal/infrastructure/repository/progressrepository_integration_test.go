package repository

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edulane/edulane/internal/infrastructure/persistence/models"
	apperrors "github.com/edulane/edulane/internal/shared/errors"
)

func TestProgressRepository_UpsertCompletion(t *testing.T) {
	db := setupTestDB(t)
	repo := NewProgressRepository(db)
	ctx := context.Background()
	watchedAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("first write creates the record", func(t *testing.T) {
		record, first, err := repo.UpsertCompletion(ctx, 1, 42, 7, false, 120, watchedAt)
		require.NoError(t, err)

		assert.False(t, first)
		assert.NotZero(t, record.ID())
		assert.False(t, record.Completed())
		assert.Equal(t, 120, record.LastPosition())
	})

	t.Run("completion is reported exactly once", func(t *testing.T) {
		_, first, err := repo.UpsertCompletion(ctx, 2, 42, 7, true, 0, watchedAt)
		require.NoError(t, err)
		assert.True(t, first)

		_, first, err = repo.UpsertCompletion(ctx, 2, 42, 7, true, 0, watchedAt)
		require.NoError(t, err)
		assert.False(t, first)
	})

	t.Run("creating with completed true counts as the first completion", func(t *testing.T) {
		_, first, err := repo.UpsertCompletion(ctx, 3, 42, 7, true, 600, watchedAt)
		require.NoError(t, err)
		assert.True(t, first)
	})

	t.Run("position update never reverts completed", func(t *testing.T) {
		_, first, err := repo.UpsertCompletion(ctx, 4, 42, 7, true, 0, watchedAt)
		require.NoError(t, err)
		require.True(t, first)

		record, first, err := repo.UpsertCompletion(ctx, 4, 42, 7, false, 30, watchedAt.Add(time.Hour))
		require.NoError(t, err)

		assert.False(t, first)
		assert.True(t, record.Completed())
		assert.Equal(t, 30, record.LastPosition())
	})
}

func TestProgressRepository_ListByStudentAndCourse(t *testing.T) {
	db := setupTestDB(t)
	repo := NewProgressRepository(db)
	ctx := context.Background()
	watchedAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	_, _, err := repo.UpsertCompletion(ctx, 1, 41, 7, true, 0, watchedAt)
	require.NoError(t, err)
	_, _, err = repo.UpsertCompletion(ctx, 1, 42, 7, false, 90, watchedAt)
	require.NoError(t, err)
	_, _, err = repo.UpsertCompletion(ctx, 1, 51, 8, true, 0, watchedAt)
	require.NoError(t, err)
	_, _, err = repo.UpsertCompletion(ctx, 2, 41, 7, true, 0, watchedAt)
	require.NoError(t, err)

	records, err := repo.ListByStudentAndCourse(ctx, 1, 7)
	require.NoError(t, err)
	assert.Len(t, records, 2)
	for _, record := range records {
		assert.Equal(t, uint(1), record.StudentID())
		assert.Equal(t, uint(7), record.CourseID())
	}
}

// Concurrent completions of the same lesson must credit the reward exactly
// once. The pool is pinned to one connection so the statements interleave on a
// single in-memory database.
func TestProgressRepository_ConcurrentCompletionAwardsOnce(t *testing.T) {
	db := setupTestDB(t)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	repo := NewProgressRepository(db)
	userRepo := NewUserRepository(db)
	ctx := context.Background()
	watchedAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	require.NoError(t, db.Create(&models.UserModel{
		ID:           1,
		Email:        "student@example.com",
		Name:         "Student",
		Role:         "student",
		PasswordHash: "x",
	}).Error)

	const workers = 16
	const points = int64(10)

	var firstCount int64
	errCh := make(chan error, workers)
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			_, first, err := repo.UpsertCompletion(ctx, 1, 42, 7, true, 0, watchedAt)
			if err != nil {
				errCh <- err
				return
			}
			if first {
				atomic.AddInt64(&firstCount, 1)
				if err := userRepo.IncrementRewardPoints(ctx, 1, points); err != nil {
					errCh <- err
				}
			}
		}()
	}
	wg.Wait()
	close(errCh)
	for err := range errCh {
		require.NoError(t, err)
	}

	assert.Equal(t, int64(1), firstCount)

	var model models.UserModel
	require.NoError(t, db.First(&model, 1).Error)
	assert.Equal(t, points, model.RewardPoints)

	var progressCount int64
	require.NoError(t, db.Model(&models.ProgressModel{}).
		Where("student_id = ? AND lesson_id = ?", 1, 42).
		Count(&progressCount).Error)
	assert.Equal(t, int64(1), progressCount)
}

func TestUserRepository_IncrementRewardPoints(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	t.Run("missing user is not found", func(t *testing.T) {
		err := repo.IncrementRewardPoints(ctx, 99, 10)
		assert.True(t, apperrors.IsNotFoundError(err))
	})

	t.Run("increments accumulate", func(t *testing.T) {
		require.NoError(t, db.Create(&models.UserModel{
			ID:           1,
			Email:        "student@example.com",
			Name:         "Student",
			Role:         "student",
			PasswordHash: "x",
		}).Error)

		require.NoError(t, repo.IncrementRewardPoints(ctx, 1, 10))
		require.NoError(t, repo.IncrementRewardPoints(ctx, 1, 10))

		var model models.UserModel
		require.NoError(t, db.First(&model, 1).Error)
		assert.Equal(t, int64(20), model.RewardPoints)
	})
}
