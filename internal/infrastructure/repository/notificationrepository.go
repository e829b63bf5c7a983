package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/edulane/edulane/internal/domain/notification"
	"github.com/edulane/edulane/internal/infrastructure/persistence/mappers"
	"github.com/edulane/edulane/internal/infrastructure/persistence/models"
)

type NotificationRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.NotificationMapper
}

func NewNotificationRepository(db *gorm.DB) notification.Repository {
	return &NotificationRepositoryImpl{
		db:     db,
		mapper: mappers.NewNotificationMapper(),
	}
}

func (r *NotificationRepositoryImpl) Create(ctx context.Context, n *notification.Notification) error {
	model, err := r.mapper.ToModel(n)
	if err != nil {
		return fmt.Errorf("failed to map notification entity to model: %w", err)
	}

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create notification: %w", err)
	}

	if err := n.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set notification ID: %w", err)
	}

	return nil
}

func (r *NotificationRepositoryImpl) ListByRecipient(ctx context.Context, recipientID uint, unreadOnly bool) ([]*notification.Notification, error) {
	var modelList []*models.NotificationModel

	query := r.db.WithContext(ctx).
		Where("recipient_id = ?", recipientID).
		Order("created_at DESC")
	if unreadOnly {
		query = query.Where("read = ?", false)
	}

	if err := query.Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}

	return r.mapper.ToEntities(modelList)
}

// MarkRead is scoped by recipient so one user cannot touch another's rows.
func (r *NotificationRepositoryImpl) MarkRead(ctx context.Context, recipientID, notificationID uint) error {
	result := r.db.WithContext(ctx).
		Model(&models.NotificationModel{}).
		Where("id = ? AND recipient_id = ?", notificationID, recipientID).
		Update("read", true)

	if result.Error != nil {
		return fmt.Errorf("failed to mark notification as read: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return notification.ErrNotificationNotFound
	}

	return nil
}
