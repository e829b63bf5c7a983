package usecases

import (
	"context"
	"errors"
	"fmt"

	"github.com/edulane/edulane/internal/domain/notification"
	apperrors "github.com/edulane/edulane/internal/shared/errors"
	"github.com/edulane/edulane/internal/shared/logger"
)

type MarkReadUseCase struct {
	notificationRepo notification.Repository
	logger           logger.Interface
}

func NewMarkReadUseCase(notificationRepo notification.Repository, logger logger.Interface) *MarkReadUseCase {
	return &MarkReadUseCase{notificationRepo: notificationRepo, logger: logger}
}

// Execute marks one of the caller's notifications as read. The recipient scope
// keeps users from touching each other's notifications.
func (uc *MarkReadUseCase) Execute(ctx context.Context, recipientID, notificationID uint) error {
	if err := uc.notificationRepo.MarkRead(ctx, recipientID, notificationID); err != nil {
		if errors.Is(err, notification.ErrNotificationNotFound) {
			return apperrors.NewNotFoundError("notification not found")
		}
		uc.logger.Errorw("failed to mark notification read", "error", err, "notification_id", notificationID)
		return fmt.Errorf("failed to mark notification read: %w", err)
	}
	return nil
}
