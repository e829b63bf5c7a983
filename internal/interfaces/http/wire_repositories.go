package http

import (
	"github.com/edulane/edulane/internal/domain/access"
	"github.com/edulane/edulane/internal/domain/course"
	"github.com/edulane/edulane/internal/domain/notification"
	"github.com/edulane/edulane/internal/domain/progress"
	"github.com/edulane/edulane/internal/domain/user"
	"github.com/edulane/edulane/internal/infrastructure/cache"
	"github.com/edulane/edulane/internal/infrastructure/repository"
)

// repositories holds all repository instances behind their domain interfaces.
type repositories struct {
	userRepo         user.Repository
	courseRepo       course.Repository
	accessRecordRepo access.Repository
	progressRepo     progress.Repository
	notificationRepo notification.Repository
}

func (c *Container) initRepositories() {
	courseRepo := repository.NewCourseRepository(c.db)
	if c.redis != nil {
		courseRepo = cache.NewCachedCourseRepository(courseRepo, c.redis, c.log)
	}

	c.repos = &repositories{
		userRepo:         repository.NewUserRepository(c.db),
		courseRepo:       courseRepo,
		accessRecordRepo: repository.NewAccessRecordRepository(c.db),
		progressRepo:     repository.NewProgressRepository(c.db),
		notificationRepo: repository.NewNotificationRepository(c.db),
	}
}
