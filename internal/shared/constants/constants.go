// Package constants defines shared constant values used across the application.
package constants

// Environment names
const (
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"
)

// User roles
const (
	RoleStudent = "student"
	RoleTeacher = "teacher"
	RoleAdmin   = "admin"
)

// Context keys for gin
const (
	ContextKeyUserID   = "user_id"
	ContextKeyUserRole = "user_role"
)

// Table names
const (
	TableUsers         = "users"
	TableCourses       = "courses"
	TableLessons       = "lessons"
	TableAccessRecords = "access_records"
	TableProgress      = "lesson_progress"
	TableNotifications = "notifications"
)
