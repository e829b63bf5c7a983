package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/edulane/edulane/internal/interfaces/http/middleware"
)

// SetupRoutes configures all HTTP routes.
func (c *Container) SetupRoutes() {
	c.engine.Use(middleware.Logger(c.log))
	c.engine.Use(middleware.Recovery())
	c.engine.Use(middleware.CORS(c.cfg.Server.AllowedOrigins))

	c.engine.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	c.setupAuthRoutes()
	c.setupCourseRoutes()
	c.setupLessonRoutes()
	c.setupMeRoutes()
	c.setupNotificationRoutes()
}

func (c *Container) setupAuthRoutes() {
	auth := c.engine.Group("/auth")
	{
		auth.POST("/register", c.hdlrs.authHandler.Register)
		auth.POST("/login", c.hdlrs.authHandler.Login)
		auth.GET("/me", c.authMiddleware.RequireAuth(), c.hdlrs.authHandler.Profile)
	}
}

func (c *Container) setupCourseRoutes() {
	courses := c.engine.Group("/courses")
	{
		// Public reads run behind OptionalAuth: anonymous visitors browse the
		// catalog and trial lessons, authenticated callers get owner visibility.
		coursesPublic := courses.Group("")
		coursesPublic.Use(c.authMiddleware.OptionalAuth())
		{
			coursesPublic.GET("", c.hdlrs.courseHandler.List)
			coursesPublic.GET("/:id", c.hdlrs.courseHandler.Get)
			coursesPublic.GET("/:id/access/check", c.hdlrs.accessHandler.Check)
		}

		coursesAuth := courses.Group("")
		coursesAuth.Use(c.authMiddleware.RequireAuth())
		{
			coursesAuth.POST("", c.hdlrs.courseHandler.Create)
			coursesAuth.PUT("/:id", c.hdlrs.courseHandler.Update)
			coursesAuth.PUT("/:id/pricing", c.hdlrs.courseHandler.SetPricing)
			coursesAuth.POST("/:id/lessons", c.hdlrs.courseHandler.AddLesson)

			coursesAuth.POST("/:id/access-requests", c.hdlrs.accessHandler.Request)
			coursesAuth.POST("/:id/access-requests/decide", c.hdlrs.accessHandler.Decide)
			coursesAuth.GET("/:id/access", c.hdlrs.accessHandler.ListForCourse)
			coursesAuth.POST("/:id/access", c.hdlrs.accessHandler.Assign)
			coursesAuth.DELETE("/:id/access/:studentId", c.hdlrs.accessHandler.Revoke)
			coursesAuth.POST("/:id/subscription/extend", c.hdlrs.accessHandler.Extend)

			coursesAuth.GET("/:id/progress", c.hdlrs.progressHandler.CourseProgress)
		}
	}
}

func (c *Container) setupLessonRoutes() {
	lessons := c.engine.Group("/lessons")
	{
		lessons.GET("/:id", c.authMiddleware.OptionalAuth(), c.hdlrs.courseHandler.GetLesson)
		lessons.POST("/:id/progress", c.authMiddleware.RequireAuth(), c.hdlrs.progressHandler.Mark)
	}
}

func (c *Container) setupMeRoutes() {
	me := c.engine.Group("/me")
	me.Use(c.authMiddleware.RequireAuth())
	{
		me.GET("/access", c.hdlrs.accessHandler.ListMine)
	}
}

func (c *Container) setupNotificationRoutes() {
	notifications := c.engine.Group("/notifications")
	notifications.Use(c.authMiddleware.RequireAuth())
	{
		notifications.GET("", c.hdlrs.notificationHandler.List)
		notifications.POST("/:id/read", c.hdlrs.notificationHandler.MarkRead)
	}
}
