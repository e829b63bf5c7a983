package mappers

import (
	"fmt"

	"github.com/edulane/edulane/internal/domain/progress"
	"github.com/edulane/edulane/internal/infrastructure/persistence/models"
	"github.com/edulane/edulane/internal/shared/mapper"
)

type ProgressMapper interface {
	ToEntity(model *models.ProgressModel) (*progress.Record, error)
	ToModel(entity *progress.Record) (*models.ProgressModel, error)
	ToEntities(models []*models.ProgressModel) ([]*progress.Record, error)
}

type ProgressMapperImpl struct{}

func NewProgressMapper() ProgressMapper {
	return &ProgressMapperImpl{}
}

func (m *ProgressMapperImpl) ToEntity(model *models.ProgressModel) (*progress.Record, error) {
	if model == nil {
		return nil, nil
	}

	entity, err := progress.ReconstructRecord(
		model.ID,
		model.StudentID,
		model.LessonID,
		model.CourseID,
		model.Completed,
		model.LastPosition,
		model.WatchedAt,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct progress record entity: %w", err)
	}

	return entity, nil
}

func (m *ProgressMapperImpl) ToModel(entity *progress.Record) (*models.ProgressModel, error) {
	if entity == nil {
		return nil, nil
	}

	return &models.ProgressModel{
		ID:           entity.ID(),
		StudentID:    entity.StudentID(),
		LessonID:     entity.LessonID(),
		CourseID:     entity.CourseID(),
		Completed:    entity.Completed(),
		LastPosition: entity.LastPosition(),
		WatchedAt:    entity.WatchedAt(),
		CreatedAt:    entity.CreatedAt(),
		UpdatedAt:    entity.UpdatedAt(),
	}, nil
}

func (m *ProgressMapperImpl) ToEntities(modelList []*models.ProgressModel) ([]*progress.Record, error) {
	return mapper.MapSlicePtrWithID(modelList, m.ToEntity, func(model *models.ProgressModel) uint { return model.ID })
}
