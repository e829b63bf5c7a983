package usecases

import (
	"context"
	"fmt"

	"github.com/edulane/edulane/internal/domain/notification"
	"github.com/edulane/edulane/internal/shared/logger"
)

type ListNotificationsUseCase struct {
	notificationRepo notification.Repository
	logger           logger.Interface
}

func NewListNotificationsUseCase(notificationRepo notification.Repository, logger logger.Interface) *ListNotificationsUseCase {
	return &ListNotificationsUseCase{notificationRepo: notificationRepo, logger: logger}
}

func (uc *ListNotificationsUseCase) Execute(ctx context.Context, recipientID uint, unreadOnly bool) ([]*notification.Notification, error) {
	notifications, err := uc.notificationRepo.ListByRecipient(ctx, recipientID, unreadOnly)
	if err != nil {
		uc.logger.Errorw("failed to list notifications", "error", err, "recipient_id", recipientID)
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	return notifications, nil
}
