package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/edulane/edulane/internal/domain/access"
	vo "github.com/edulane/edulane/internal/domain/access/valueobjects"
	"github.com/edulane/edulane/internal/infrastructure/persistence/models"
	apperrors "github.com/edulane/edulane/internal/shared/errors"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(&models.AccessRecordModel{}, &models.ProgressModel{}, &models.UserModel{})
	require.NoError(t, err)

	return db
}

func createTestRequest(t *testing.T, studentID, courseID uint) *access.AccessRecord {
	record, err := access.NewAccessRequest(studentID, courseID, time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	return record
}

func TestAccessRecordRepository_Create(t *testing.T) {
	db := setupTestDB(t)
	repo := NewAccessRecordRepository(db)
	ctx := context.Background()

	t.Run("create assigns ID", func(t *testing.T) {
		record := createTestRequest(t, 1, 7)

		err := repo.Create(ctx, record)
		assert.NoError(t, err)
		assert.NotZero(t, record.ID())
	})

	t.Run("duplicate pair hits the unique index", func(t *testing.T) {
		first := createTestRequest(t, 2, 7)
		require.NoError(t, repo.Create(ctx, first))

		second := createTestRequest(t, 2, 7)
		err := repo.Create(ctx, second)
		assert.Error(t, err)
		assert.True(t, apperrors.IsDuplicateError(err))
	})

	t.Run("same student on another course is fine", func(t *testing.T) {
		first := createTestRequest(t, 3, 7)
		require.NoError(t, repo.Create(ctx, first))

		second := createTestRequest(t, 3, 8)
		assert.NoError(t, repo.Create(ctx, second))
	})
}

func TestAccessRecordRepository_Update(t *testing.T) {
	db := setupTestDB(t)
	repo := NewAccessRecordRepository(db)
	ctx := context.Background()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("approval round-trips status and window", func(t *testing.T) {
		record := createTestRequest(t, 1, 7)
		require.NoError(t, repo.Create(ctx, record))

		end := now.AddDate(0, 3, 0)
		require.NoError(t, record.Approve(9, access.Window{Start: now, End: &end}, now))
		require.NoError(t, repo.Update(ctx, record))

		found, err := repo.GetByStudentAndCourse(ctx, 1, 7)
		require.NoError(t, err)
		require.NotNil(t, found)

		assert.Equal(t, vo.StatusApproved, found.Status())
		assert.Equal(t, 2, found.Version())
		require.NotNil(t, found.ApprovedBy())
		assert.Equal(t, uint(9), *found.ApprovedBy())
		require.NotNil(t, found.AccessStart())
		assert.WithinDuration(t, now, *found.AccessStart(), time.Second)
		require.NotNil(t, found.AccessEnd())
		assert.WithinDuration(t, end, *found.AccessEnd(), time.Second)
	})

	t.Run("rejection clears window columns", func(t *testing.T) {
		record := createTestRequest(t, 2, 7)
		require.NoError(t, repo.Create(ctx, record))

		end := now.AddDate(0, 1, 0)
		require.NoError(t, record.Approve(9, access.Window{Start: now, End: &end}, now))
		require.NoError(t, repo.Update(ctx, record))

		require.NoError(t, record.Reject(now.Add(time.Hour)))
		require.NoError(t, repo.Update(ctx, record))

		found, err := repo.GetByStudentAndCourse(ctx, 2, 7)
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, vo.StatusRejected, found.Status())
		assert.Nil(t, found.ApprovedBy())
		assert.Nil(t, found.AccessStart())
		assert.Nil(t, found.AccessEnd())
	})
}

func TestAccessRecordRepository_Upsert(t *testing.T) {
	db := setupTestDB(t)
	repo := NewAccessRecordRepository(db)
	ctx := context.Background()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("inserts when the pair is new", func(t *testing.T) {
		record, err := access.NewApprovedAccessRecord(1, 7, nil, access.Window{Start: now}, now)
		require.NoError(t, err)

		require.NoError(t, repo.Upsert(ctx, record))
		assert.NotZero(t, record.ID())
	})

	t.Run("replaces the existing row for the pair", func(t *testing.T) {
		existing := createTestRequest(t, 2, 7)
		require.NoError(t, repo.Create(ctx, existing))

		adminID := uint(9)
		end := now.AddDate(1, 0, 0)
		replacement, err := access.NewApprovedAccessRecord(2, 7, &adminID, access.Window{Start: now, End: &end}, now)
		require.NoError(t, err)
		require.NoError(t, repo.Upsert(ctx, replacement))

		var count int64
		require.NoError(t, db.Model(&models.AccessRecordModel{}).
			Where("student_id = ? AND course_id = ?", 2, 7).
			Count(&count).Error)
		assert.Equal(t, int64(1), count)

		found, err := repo.GetByStudentAndCourse(ctx, 2, 7)
		require.NoError(t, err)
		assert.Equal(t, vo.StatusApproved, found.Status())
		require.NotNil(t, found.ApprovedBy())
		assert.Equal(t, adminID, *found.ApprovedBy())
	})
}

func TestAccessRecordRepository_Get(t *testing.T) {
	db := setupTestDB(t)
	repo := NewAccessRecordRepository(db)
	ctx := context.Background()

	t.Run("missing pair returns nil without error", func(t *testing.T) {
		found, err := repo.GetByStudentAndCourse(ctx, 99, 99)
		assert.NoError(t, err)
		assert.Nil(t, found)
	})
}

func TestAccessRecordRepository_List(t *testing.T) {
	db := setupTestDB(t)
	repo := NewAccessRecordRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, createTestRequest(t, 1, 7)))
	require.NoError(t, repo.Create(ctx, createTestRequest(t, 1, 8)))
	require.NoError(t, repo.Create(ctx, createTestRequest(t, 2, 7)))

	t.Run("by student", func(t *testing.T) {
		records, err := repo.ListByStudent(ctx, 1)
		require.NoError(t, err)
		assert.Len(t, records, 2)
	})

	t.Run("by course", func(t *testing.T) {
		records, err := repo.ListByCourse(ctx, 7)
		require.NoError(t, err)
		assert.Len(t, records, 2)
	})
}

func TestAccessRecordRepository_Delete(t *testing.T) {
	db := setupTestDB(t)
	repo := NewAccessRecordRepository(db)
	ctx := context.Background()

	t.Run("deletes the pair", func(t *testing.T) {
		require.NoError(t, repo.Create(ctx, createTestRequest(t, 1, 7)))

		require.NoError(t, repo.DeleteByStudentAndCourse(ctx, 1, 7))

		found, err := repo.GetByStudentAndCourse(ctx, 1, 7)
		require.NoError(t, err)
		assert.Nil(t, found)
	})

	t.Run("missing pair is not found", func(t *testing.T) {
		err := repo.DeleteByStudentAndCourse(ctx, 99, 99)
		assert.True(t, apperrors.IsNotFoundError(err))
	})
}
