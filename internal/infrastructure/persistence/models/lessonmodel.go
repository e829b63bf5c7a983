package models

import (
	"time"

	"github.com/edulane/edulane/internal/shared/constants"
)

type LessonModel struct {
	ID        uint   `gorm:"primaryKey"`
	CourseID  uint   `gorm:"not null;index"`
	Title     string `gorm:"size:255;not null"`
	Content   string `gorm:"type:longtext"`
	VideoURL  string `gorm:"size:512"`
	Position  int    `gorm:"not null;default:0"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (LessonModel) TableName() string {
	return constants.TableLessons
}
