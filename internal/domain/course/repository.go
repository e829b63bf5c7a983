package course

import "context"

// Repository provides access to courses and lessons. The access engine only
// uses the read side; the write side belongs to course management.
type Repository interface {
	Create(ctx context.Context, course *Course) error
	Update(ctx context.Context, course *Course) error
	GetByID(ctx context.Context, id uint) (*Course, error)
	List(ctx context.Context, visibleOnly bool) ([]*Course, error)

	CreateLesson(ctx context.Context, lesson *Lesson) error
	GetLessonByID(ctx context.Context, id uint) (*Lesson, error)
	ListLessonsByCourse(ctx context.Context, courseID uint) ([]*Lesson, error)
}
