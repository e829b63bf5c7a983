package mappers

import (
	"fmt"

	"github.com/edulane/edulane/internal/domain/notification"
	"github.com/edulane/edulane/internal/infrastructure/persistence/models"
	"github.com/edulane/edulane/internal/shared/mapper"
)

type NotificationMapper interface {
	ToEntity(model *models.NotificationModel) (*notification.Notification, error)
	ToModel(entity *notification.Notification) (*models.NotificationModel, error)
	ToEntities(models []*models.NotificationModel) ([]*notification.Notification, error)
}

type NotificationMapperImpl struct{}

func NewNotificationMapper() NotificationMapper {
	return &NotificationMapperImpl{}
}

func (m *NotificationMapperImpl) ToEntity(model *models.NotificationModel) (*notification.Notification, error) {
	if model == nil {
		return nil, nil
	}

	entity, err := notification.ReconstructNotification(
		model.ID,
		model.UUID,
		model.RecipientID,
		notification.EventType(model.EventType),
		model.Title,
		model.Message,
		model.Read,
		model.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct notification entity: %w", err)
	}

	return entity, nil
}

func (m *NotificationMapperImpl) ToModel(entity *notification.Notification) (*models.NotificationModel, error) {
	if entity == nil {
		return nil, nil
	}

	return &models.NotificationModel{
		ID:          entity.ID(),
		UUID:        entity.UUID(),
		RecipientID: entity.RecipientID(),
		EventType:   string(entity.EventType()),
		Title:       entity.Title(),
		Message:     entity.Message(),
		Read:        entity.Read(),
		CreatedAt:   entity.CreatedAt(),
	}, nil
}

func (m *NotificationMapperImpl) ToEntities(modelList []*models.NotificationModel) ([]*notification.Notification, error) {
	return mapper.MapSlicePtrWithID(modelList, m.ToEntity, func(model *models.NotificationModel) uint { return model.ID })
}
