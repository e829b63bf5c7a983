package migration

import (
	"github.com/edulane/edulane/internal/infrastructure/persistence/models"
)

func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.UserModel{},
		&models.CourseModel{},
		&models.LessonModel{},
		&models.AccessRecordModel{},
		&models.ProgressModel{},
		&models.NotificationModel{},
	}
}
