package mappers

import (
	"fmt"

	"github.com/edulane/edulane/internal/domain/course"
	"github.com/edulane/edulane/internal/infrastructure/persistence/models"
	"github.com/edulane/edulane/internal/shared/mapper"
)

type LessonMapper interface {
	ToEntity(model *models.LessonModel) (*course.Lesson, error)
	ToModel(entity *course.Lesson) (*models.LessonModel, error)
	ToEntities(models []*models.LessonModel) ([]*course.Lesson, error)
}

type LessonMapperImpl struct{}

func NewLessonMapper() LessonMapper {
	return &LessonMapperImpl{}
}

func (m *LessonMapperImpl) ToEntity(model *models.LessonModel) (*course.Lesson, error) {
	if model == nil {
		return nil, nil
	}

	entity, err := course.ReconstructLesson(
		model.ID,
		model.CourseID,
		model.Title,
		model.Content,
		model.VideoURL,
		model.Position,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct lesson entity: %w", err)
	}

	return entity, nil
}

func (m *LessonMapperImpl) ToModel(entity *course.Lesson) (*models.LessonModel, error) {
	if entity == nil {
		return nil, nil
	}

	return &models.LessonModel{
		ID:        entity.ID(),
		CourseID:  entity.CourseID(),
		Title:     entity.Title(),
		Content:   entity.Content(),
		VideoURL:  entity.VideoURL(),
		Position:  entity.Position(),
		CreatedAt: entity.CreatedAt(),
		UpdatedAt: entity.UpdatedAt(),
	}, nil
}

func (m *LessonMapperImpl) ToEntities(modelList []*models.LessonModel) ([]*course.Lesson, error) {
	return mapper.MapSlicePtrWithID(modelList, m.ToEntity, func(model *models.LessonModel) uint { return model.ID })
}
