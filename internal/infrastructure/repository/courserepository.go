package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/edulane/edulane/internal/domain/course"
	"github.com/edulane/edulane/internal/infrastructure/persistence/mappers"
	"github.com/edulane/edulane/internal/infrastructure/persistence/models"
	apperrors "github.com/edulane/edulane/internal/shared/errors"
)

type CourseRepositoryImpl struct {
	db           *gorm.DB
	courseMapper mappers.CourseMapper
	lessonMapper mappers.LessonMapper
}

func NewCourseRepository(db *gorm.DB) course.Repository {
	return &CourseRepositoryImpl{
		db:           db,
		courseMapper: mappers.NewCourseMapper(),
		lessonMapper: mappers.NewLessonMapper(),
	}
}

func (r *CourseRepositoryImpl) Create(ctx context.Context, crs *course.Course) error {
	model, err := r.courseMapper.ToModel(crs)
	if err != nil {
		return fmt.Errorf("failed to map course entity to model: %w", err)
	}

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create course: %w", err)
	}

	if err := crs.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set course ID: %w", err)
	}

	return nil
}

func (r *CourseRepositoryImpl) Update(ctx context.Context, crs *course.Course) error {
	model, err := r.courseMapper.ToModel(crs)
	if err != nil {
		return fmt.Errorf("failed to map course entity to model: %w", err)
	}

	result := r.db.WithContext(ctx).Save(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update course: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("course not found")
	}

	return nil
}

func (r *CourseRepositoryImpl) GetByID(ctx context.Context, id uint) (*course.Course, error) {
	var model models.CourseModel

	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get course by ID: %w", err)
	}

	return r.courseMapper.ToEntity(&model)
}

func (r *CourseRepositoryImpl) List(ctx context.Context, visibleOnly bool) ([]*course.Course, error) {
	var modelList []*models.CourseModel

	query := r.db.WithContext(ctx).Order("created_at DESC")
	if visibleOnly {
		query = query.Where("visible = ?", true)
	}

	if err := query.Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to list courses: %w", err)
	}

	return r.courseMapper.ToEntities(modelList)
}

func (r *CourseRepositoryImpl) CreateLesson(ctx context.Context, lesson *course.Lesson) error {
	model, err := r.lessonMapper.ToModel(lesson)
	if err != nil {
		return fmt.Errorf("failed to map lesson entity to model: %w", err)
	}

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create lesson: %w", err)
	}

	if err := lesson.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set lesson ID: %w", err)
	}

	return nil
}

func (r *CourseRepositoryImpl) GetLessonByID(ctx context.Context, id uint) (*course.Lesson, error) {
	var model models.LessonModel

	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get lesson by ID: %w", err)
	}

	return r.lessonMapper.ToEntity(&model)
}

func (r *CourseRepositoryImpl) ListLessonsByCourse(ctx context.Context, courseID uint) ([]*course.Lesson, error) {
	var modelList []*models.LessonModel

	err := r.db.WithContext(ctx).
		Where("course_id = ?", courseID).
		Order("position ASC, id ASC").
		Find(&modelList).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list lessons by course: %w", err)
	}

	return r.lessonMapper.ToEntities(modelList)
}
