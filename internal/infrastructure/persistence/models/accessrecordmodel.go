package models

import (
	"time"

	"github.com/edulane/edulane/internal/shared/constants"
)

// AccessRecordModel carries the status and the window in one row so every
// state change lands as a single atomic update.
type AccessRecordModel struct {
	ID          uint   `gorm:"primaryKey"`
	StudentID   uint   `gorm:"not null;uniqueIndex:idx_student_course"`
	CourseID    uint   `gorm:"not null;uniqueIndex:idx_student_course;index"`
	Status      string `gorm:"size:20;not null;default:'pending'"`
	RequestedAt time.Time
	ApprovedAt  *time.Time
	ApprovedBy  *uint
	AccessStart *time.Time
	AccessEnd   *time.Time
	Version     int `gorm:"not null;default:1"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (AccessRecordModel) TableName() string {
	return constants.TableAccessRecords
}
