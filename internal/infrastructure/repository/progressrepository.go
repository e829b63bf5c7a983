package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/edulane/edulane/internal/domain/progress"
	"github.com/edulane/edulane/internal/infrastructure/persistence/mappers"
	"github.com/edulane/edulane/internal/infrastructure/persistence/models"
	shareddb "github.com/edulane/edulane/internal/shared/db"
	apperrors "github.com/edulane/edulane/internal/shared/errors"
)

type ProgressRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.ProgressMapper
}

func NewProgressRepository(db *gorm.DB) progress.Repository {
	return &ProgressRepositoryImpl{
		db:     db,
		mapper: mappers.NewProgressMapper(),
	}
}

func (r *ProgressRepositoryImpl) GetByStudentAndLesson(ctx context.Context, studentID, lessonID uint) (*progress.Record, error) {
	var model models.ProgressModel

	err := r.db.WithContext(ctx).
		Where("student_id = ? AND lesson_id = ?", studentID, lessonID).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get progress record: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *ProgressRepositoryImpl) ListByStudentAndCourse(ctx context.Context, studentID, courseID uint) ([]*progress.Record, error) {
	var modelList []*models.ProgressModel

	err := r.db.WithContext(ctx).
		Where("student_id = ? AND course_id = ?", studentID, courseID).
		Find(&modelList).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list progress records: %w", err)
	}

	return r.mapper.ToEntities(modelList)
}

// UpsertCompletion writes progress and detects the false-to-true completion
// transition in the store. The guard is the conditional UPDATE on
// completed = false: under any interleaving of concurrent callers, exactly
// one statement affects a row with completed still false.
func (r *ProgressRepositoryImpl) UpsertCompletion(
	ctx context.Context,
	studentID, lessonID, courseID uint,
	completed bool,
	lastPosition int,
	watchedAt time.Time,
) (*progress.Record, bool, error) {
	db := shareddb.GetTxFromContext(ctx, r.db)

	var model models.ProgressModel
	err := db.Where("student_id = ? AND lesson_id = ?", studentID, lessonID).First(&model).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		model = models.ProgressModel{
			StudentID:    studentID,
			LessonID:     lessonID,
			CourseID:     courseID,
			Completed:    completed,
			LastPosition: lastPosition,
			WatchedAt:    watchedAt,
		}
		if createErr := db.Create(&model).Error; createErr != nil {
			if !apperrors.IsDuplicateError(createErr) {
				return nil, false, fmt.Errorf("failed to create progress record: %w", createErr)
			}
			// A concurrent insert won the race; reload and continue on the
			// update path, where the conditional guard decides first completion.
			if err := db.Where("student_id = ? AND lesson_id = ?", studentID, lessonID).First(&model).Error; err != nil {
				return nil, false, fmt.Errorf("failed to reload progress record: %w", err)
			}
		} else {
			entity, mapErr := r.mapper.ToEntity(&model)
			if mapErr != nil {
				return nil, false, mapErr
			}
			return entity, completed, nil
		}
	case err != nil:
		return nil, false, fmt.Errorf("failed to get progress record: %w", err)
	}

	firstCompletion := false
	if completed {
		result := db.Model(&models.ProgressModel{}).
			Where("id = ? AND completed = ?", model.ID, false).
			Updates(map[string]interface{}{
				"completed":     true,
				"last_position": lastPosition,
				"watched_at":    watchedAt,
			})
		if result.Error != nil {
			return nil, false, fmt.Errorf("failed to mark completion: %w", result.Error)
		}
		firstCompletion = result.RowsAffected == 1
	}

	if !firstCompletion {
		// Position refresh only. A completed lesson never reverts; completed
		// stays out of this update.
		result := db.Model(&models.ProgressModel{}).
			Where("id = ?", model.ID).
			Updates(map[string]interface{}{
				"last_position": lastPosition,
				"watched_at":    watchedAt,
			})
		if result.Error != nil {
			return nil, false, fmt.Errorf("failed to update progress record: %w", result.Error)
		}
	}

	if err := db.First(&model, model.ID).Error; err != nil {
		return nil, false, fmt.Errorf("failed to reload progress record: %w", err)
	}

	entity, err := r.mapper.ToEntity(&model)
	if err != nil {
		return nil, false, err
	}
	return entity, firstCompletion, nil
}
