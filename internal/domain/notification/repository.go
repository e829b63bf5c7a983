package notification

import "context"

// Repository persists in-app notifications.
type Repository interface {
	Create(ctx context.Context, n *Notification) error
	ListByRecipient(ctx context.Context, recipientID uint, unreadOnly bool) ([]*Notification, error)
	MarkRead(ctx context.Context, recipientID, notificationID uint) error
}
