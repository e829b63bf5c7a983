package models

import (
	"time"

	"gorm.io/datatypes"

	"github.com/edulane/edulane/internal/shared/constants"
)

type CourseModel struct {
	ID               uint   `gorm:"primaryKey"`
	OwnerID          uint   `gorm:"not null;index"`
	Title            string `gorm:"size:255;not null"`
	Description      string `gorm:"type:longtext"`
	DescriptionHTML  string `gorm:"type:longtext"`
	Price            int64  `gorm:"not null;default:0"`
	SubscriptionType string `gorm:"size:20;not null;default:''"`
	TrialPeriodDays  *uint
	TrialLessonID    *uint
	Prices           datatypes.JSON // period token -> price in cents
	Visible          bool           `gorm:"not null;default:false;index"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func (CourseModel) TableName() string {
	return constants.TableCourses
}
