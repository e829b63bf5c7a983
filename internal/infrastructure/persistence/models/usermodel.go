package models

import (
	"time"

	"github.com/edulane/edulane/internal/shared/constants"
)

type UserModel struct {
	ID           uint   `gorm:"primaryKey"`
	Email        string `gorm:"size:255;not null;uniqueIndex"`
	Name         string `gorm:"size:255;not null"`
	Role         string `gorm:"size:20;not null;default:'student'"`
	PasswordHash string `gorm:"size:255;not null"`
	RewardPoints int64  `gorm:"not null;default:0"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (UserModel) TableName() string {
	return constants.TableUsers
}
