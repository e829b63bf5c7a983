package http

import (
	accessUsecases "github.com/edulane/edulane/internal/application/access/usecases"
	courseUsecases "github.com/edulane/edulane/internal/application/course/usecases"
	notificationUsecases "github.com/edulane/edulane/internal/application/notification/usecases"
	progressUsecases "github.com/edulane/edulane/internal/application/progress/usecases"
	userUsecases "github.com/edulane/edulane/internal/application/user/usecases"
	"github.com/edulane/edulane/internal/infrastructure/notifier"
)

// allUseCases holds all use case instances used by the application.
type allUseCases struct {
	// User / Auth
	registerUC   *userUsecases.RegisterUseCase
	loginUC      *userUsecases.LoginUseCase
	getProfileUC *userUsecases.GetProfileUseCase

	// Course
	createCourseUC *courseUsecases.CreateCourseUseCase
	updateCourseUC *courseUsecases.UpdateCourseUseCase
	setPricingUC   *courseUsecases.SetPricingUseCase
	addLessonUC    *courseUsecases.AddLessonUseCase
	getCourseUC    *courseUsecases.GetCourseUseCase
	getLessonUC    *courseUsecases.GetLessonUseCase
	listCoursesUC  *courseUsecases.ListCoursesUseCase

	// Access
	requestAccessUC      *accessUsecases.RequestAccessUseCase
	decideAccessUC       *accessUsecases.DecideAccessRequestUseCase
	assignAccessUC       *accessUsecases.AssignAccessUseCase
	revokeAccessUC       *accessUsecases.RevokeAccessUseCase
	extendSubscriptionUC *accessUsecases.ExtendSubscriptionUseCase
	checkAccessUC        *accessUsecases.CheckAccessUseCase
	listStudentAccessUC  *accessUsecases.ListStudentAccessUseCase
	listCourseAccessUC   *accessUsecases.ListCourseAccessUseCase

	// Progress
	markCompletionUC    *progressUsecases.MarkCompletionUseCase
	getCourseProgressUC *progressUsecases.GetCourseProgressUseCase

	// Notification
	listNotificationsUC *notificationUsecases.ListNotificationsUseCase
	markReadUC          *notificationUsecases.MarkReadUseCase
}

func (c *Container) initUseCases() {
	c.accessNotifier = notifier.New(
		c.repos.notificationRepo,
		c.repos.userRepo,
		c.emailService,
		c.clock,
		c.log,
	)

	ucs := &allUseCases{}

	ucs.registerUC = userUsecases.NewRegisterUseCase(c.repos.userRepo, c.passwordHasher, c.log)
	ucs.loginUC = userUsecases.NewLoginUseCase(c.repos.userRepo, c.passwordHasher, c.jwtService, c.log)
	ucs.getProfileUC = userUsecases.NewGetProfileUseCase(c.repos.userRepo, c.log)

	ucs.checkAccessUC = accessUsecases.NewCheckAccessUseCase(c.repos.accessRecordRepo, c.repos.courseRepo, c.clock, c.log)

	ucs.createCourseUC = courseUsecases.NewCreateCourseUseCase(c.repos.courseRepo, c.markdownSvc, c.log)
	ucs.updateCourseUC = courseUsecases.NewUpdateCourseUseCase(c.repos.courseRepo, c.markdownSvc, c.log)
	ucs.setPricingUC = courseUsecases.NewSetPricingUseCase(c.repos.courseRepo, c.log)
	ucs.addLessonUC = courseUsecases.NewAddLessonUseCase(c.repos.courseRepo, c.markdownSvc, c.log)
	ucs.getCourseUC = courseUsecases.NewGetCourseUseCase(c.repos.courseRepo, c.log)
	ucs.getLessonUC = courseUsecases.NewGetLessonUseCase(c.repos.courseRepo, ucs.checkAccessUC, c.log)
	ucs.listCoursesUC = courseUsecases.NewListCoursesUseCase(c.repos.courseRepo, c.log)

	ucs.requestAccessUC = accessUsecases.NewRequestAccessUseCase(c.repos.accessRecordRepo, c.repos.courseRepo, c.clock, c.log)
	ucs.requestAccessUC.SetNotifier(c.accessNotifier)
	ucs.decideAccessUC = accessUsecases.NewDecideAccessRequestUseCase(c.repos.accessRecordRepo, c.repos.courseRepo, c.clock, c.log)
	ucs.decideAccessUC.SetNotifier(c.accessNotifier)
	ucs.assignAccessUC = accessUsecases.NewAssignAccessUseCase(c.repos.accessRecordRepo, c.repos.courseRepo, c.clock, c.log)
	ucs.assignAccessUC.SetNotifier(c.accessNotifier)
	ucs.revokeAccessUC = accessUsecases.NewRevokeAccessUseCase(c.repos.accessRecordRepo, c.repos.courseRepo, c.clock, c.log)
	ucs.revokeAccessUC.SetNotifier(c.accessNotifier)
	ucs.extendSubscriptionUC = accessUsecases.NewExtendSubscriptionUseCase(c.repos.accessRecordRepo, c.repos.courseRepo, c.clock, c.log)
	ucs.extendSubscriptionUC.SetNotifier(c.accessNotifier)
	ucs.listStudentAccessUC = accessUsecases.NewListStudentAccessUseCase(c.repos.accessRecordRepo, c.log)
	ucs.listCourseAccessUC = accessUsecases.NewListCourseAccessUseCase(c.repos.accessRecordRepo, c.repos.courseRepo, c.log)

	ucs.markCompletionUC = progressUsecases.NewMarkCompletionUseCase(
		c.repos.progressRepo,
		c.repos.courseRepo,
		c.repos.userRepo,
		ucs.checkAccessUC,
		c.txManager,
		int64(c.cfg.Reward.PointsPerLesson),
		c.clock,
		c.log,
	)
	ucs.getCourseProgressUC = progressUsecases.NewGetCourseProgressUseCase(c.repos.progressRepo, c.repos.courseRepo, c.log)

	ucs.listNotificationsUC = notificationUsecases.NewListNotificationsUseCase(c.repos.notificationRepo, c.log)
	ucs.markReadUC = notificationUsecases.NewMarkReadUseCase(c.repos.notificationRepo, c.log)

	c.ucs = ucs
}
