package http

import (
	"github.com/edulane/edulane/internal/interfaces/http/handlers"
)

// allHandlers holds all HTTP handler instances.
type allHandlers struct {
	authHandler         *handlers.AuthHandler
	courseHandler       *handlers.CourseHandler
	accessHandler       *handlers.AccessHandler
	progressHandler     *handlers.ProgressHandler
	notificationHandler *handlers.NotificationHandler
}

func (c *Container) initHandlers() {
	c.hdlrs = &allHandlers{
		authHandler: handlers.NewAuthHandler(
			c.ucs.registerUC,
			c.ucs.loginUC,
			c.ucs.getProfileUC,
		),
		courseHandler: handlers.NewCourseHandler(
			c.ucs.createCourseUC,
			c.ucs.updateCourseUC,
			c.ucs.setPricingUC,
			c.ucs.addLessonUC,
			c.ucs.getCourseUC,
			c.ucs.getLessonUC,
			c.ucs.listCoursesUC,
		),
		accessHandler: handlers.NewAccessHandler(
			c.ucs.requestAccessUC,
			c.ucs.decideAccessUC,
			c.ucs.assignAccessUC,
			c.ucs.revokeAccessUC,
			c.ucs.extendSubscriptionUC,
			c.ucs.checkAccessUC,
			c.ucs.listStudentAccessUC,
			c.ucs.listCourseAccessUC,
		),
		progressHandler: handlers.NewProgressHandler(
			c.ucs.markCompletionUC,
			c.ucs.getCourseProgressUC,
		),
		notificationHandler: handlers.NewNotificationHandler(
			c.ucs.listNotificationsUC,
			c.ucs.markReadUC,
		),
	}
}
