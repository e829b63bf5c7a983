package mappers

import (
	"fmt"

	"github.com/edulane/edulane/internal/domain/access"
	vo "github.com/edulane/edulane/internal/domain/access/valueobjects"
	"github.com/edulane/edulane/internal/infrastructure/persistence/models"
	"github.com/edulane/edulane/internal/shared/mapper"
)

type AccessRecordMapper interface {
	ToEntity(model *models.AccessRecordModel) (*access.AccessRecord, error)
	ToModel(entity *access.AccessRecord) (*models.AccessRecordModel, error)
	ToEntities(models []*models.AccessRecordModel) ([]*access.AccessRecord, error)
}

type AccessRecordMapperImpl struct{}

func NewAccessRecordMapper() AccessRecordMapper {
	return &AccessRecordMapperImpl{}
}

func (m *AccessRecordMapperImpl) ToEntity(model *models.AccessRecordModel) (*access.AccessRecord, error) {
	if model == nil {
		return nil, nil
	}

	entity, err := access.ReconstructAccessRecord(
		model.ID,
		model.StudentID,
		model.CourseID,
		vo.Status(model.Status),
		model.RequestedAt,
		model.ApprovedAt,
		model.ApprovedBy,
		model.AccessStart,
		model.AccessEnd,
		model.Version,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct access record entity: %w", err)
	}

	return entity, nil
}

func (m *AccessRecordMapperImpl) ToModel(entity *access.AccessRecord) (*models.AccessRecordModel, error) {
	if entity == nil {
		return nil, nil
	}

	return &models.AccessRecordModel{
		ID:          entity.ID(),
		StudentID:   entity.StudentID(),
		CourseID:    entity.CourseID(),
		Status:      string(entity.Status()),
		RequestedAt: entity.RequestedAt(),
		ApprovedAt:  entity.ApprovedAt(),
		ApprovedBy:  entity.ApprovedBy(),
		AccessStart: entity.AccessStart(),
		AccessEnd:   entity.AccessEnd(),
		Version:     entity.Version(),
		CreatedAt:   entity.CreatedAt(),
		UpdatedAt:   entity.UpdatedAt(),
	}, nil
}

func (m *AccessRecordMapperImpl) ToEntities(modelList []*models.AccessRecordModel) ([]*access.AccessRecord, error) {
	return mapper.MapSlicePtrWithID(modelList, m.ToEntity, func(model *models.AccessRecordModel) uint { return model.ID })
}
