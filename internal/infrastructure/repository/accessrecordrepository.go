package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/edulane/edulane/internal/domain/access"
	"github.com/edulane/edulane/internal/infrastructure/persistence/mappers"
	"github.com/edulane/edulane/internal/infrastructure/persistence/models"
	apperrors "github.com/edulane/edulane/internal/shared/errors"
)

type AccessRecordRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.AccessRecordMapper
}

func NewAccessRecordRepository(db *gorm.DB) access.Repository {
	return &AccessRecordRepositoryImpl{
		db:     db,
		mapper: mappers.NewAccessRecordMapper(),
	}
}

func (r *AccessRecordRepositoryImpl) Create(ctx context.Context, record *access.AccessRecord) error {
	model, err := r.mapper.ToModel(record)
	if err != nil {
		return fmt.Errorf("failed to map access record entity to model: %w", err)
	}

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create access record: %w", err)
	}

	if err := record.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set access record ID: %w", err)
	}

	return nil
}

// Update writes the full row in one statement; status and window can never be
// observed out of sync.
func (r *AccessRecordRepositoryImpl) Update(ctx context.Context, record *access.AccessRecord) error {
	model, err := r.mapper.ToModel(record)
	if err != nil {
		return fmt.Errorf("failed to map access record entity to model: %w", err)
	}

	result := r.db.WithContext(ctx).Save(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update access record: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("access record not found")
	}

	return nil
}

// Upsert creates or replaces the record for its (student, course) pair in one
// statement, keyed on the unique pair index.
func (r *AccessRecordRepositoryImpl) Upsert(ctx context.Context, record *access.AccessRecord) error {
	model, err := r.mapper.ToModel(record)
	if err != nil {
		return fmt.Errorf("failed to map access record entity to model: %w", err)
	}

	err = r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "student_id"}, {Name: "course_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"status", "requested_at", "approved_at", "approved_by",
			"access_start", "access_end", "version", "updated_at",
		}),
	}).Create(model).Error
	if err != nil {
		return fmt.Errorf("failed to upsert access record: %w", err)
	}

	if record.ID() == 0 && model.ID != 0 {
		if err := record.SetID(model.ID); err != nil {
			return fmt.Errorf("failed to set access record ID: %w", err)
		}
	}

	return nil
}

func (r *AccessRecordRepositoryImpl) GetByStudentAndCourse(ctx context.Context, studentID, courseID uint) (*access.AccessRecord, error) {
	var model models.AccessRecordModel

	err := r.db.WithContext(ctx).
		Where("student_id = ? AND course_id = ?", studentID, courseID).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get access record: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *AccessRecordRepositoryImpl) ListByStudent(ctx context.Context, studentID uint) ([]*access.AccessRecord, error) {
	var modelList []*models.AccessRecordModel

	err := r.db.WithContext(ctx).
		Where("student_id = ?", studentID).
		Order("created_at DESC").
		Find(&modelList).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list access records by student: %w", err)
	}

	return r.mapper.ToEntities(modelList)
}

func (r *AccessRecordRepositoryImpl) ListByCourse(ctx context.Context, courseID uint) ([]*access.AccessRecord, error) {
	var modelList []*models.AccessRecordModel

	err := r.db.WithContext(ctx).
		Where("course_id = ?", courseID).
		Order("created_at DESC").
		Find(&modelList).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list access records by course: %w", err)
	}

	return r.mapper.ToEntities(modelList)
}

func (r *AccessRecordRepositoryImpl) DeleteByStudentAndCourse(ctx context.Context, studentID, courseID uint) error {
	result := r.db.WithContext(ctx).
		Where("student_id = ? AND course_id = ?", studentID, courseID).
		Delete(&models.AccessRecordModel{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete access record: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("access record not found")
	}

	return nil
}
