package models

import (
	"time"

	"github.com/edulane/edulane/internal/shared/constants"
)

type ProgressModel struct {
	ID           uint `gorm:"primaryKey"`
	StudentID    uint `gorm:"not null;uniqueIndex:idx_student_lesson"`
	LessonID     uint `gorm:"not null;uniqueIndex:idx_student_lesson"`
	CourseID     uint `gorm:"not null;index:idx_student_course_progress"`
	Completed    bool `gorm:"not null;default:false"`
	LastPosition int  `gorm:"not null;default:0"`
	WatchedAt    time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (ProgressModel) TableName() string {
	return constants.TableProgress
}
