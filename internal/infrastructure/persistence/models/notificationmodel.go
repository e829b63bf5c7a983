package models

import (
	"time"

	"github.com/edulane/edulane/internal/shared/constants"
)

type NotificationModel struct {
	ID          uint      `gorm:"primaryKey"`
	UUID        string    `gorm:"size:36;not null;uniqueIndex"`
	RecipientID uint      `gorm:"not null;index:idx_recipient_read"`
	EventType   string    `gorm:"size:50;not null"`
	Title       string    `gorm:"size:255;not null"`
	Message     string    `gorm:"type:longtext"`
	Read        bool      `gorm:"not null;default:false;index:idx_recipient_read"`
	CreatedAt   time.Time `gorm:"index"`
	UpdatedAt   time.Time
}

func (NotificationModel) TableName() string {
	return constants.TableNotifications
}
