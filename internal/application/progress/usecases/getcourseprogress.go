package usecases

import (
	"context"
	"fmt"

	"github.com/edulane/edulane/internal/domain/course"
	"github.com/edulane/edulane/internal/domain/progress"
	"github.com/edulane/edulane/internal/shared/logger"
)

type GetCourseProgressCommand struct {
	StudentID uint
	CourseID  uint
}

type CourseProgress struct {
	Records          []*progress.Record
	TotalLessons     int
	CompletedLessons int
}

// GetCourseProgressUseCase summarizes a student's standing in one course.
type GetCourseProgressUseCase struct {
	progressRepo progress.Repository
	courseRepo   course.Repository
	logger       logger.Interface
}

func NewGetCourseProgressUseCase(
	progressRepo progress.Repository,
	courseRepo course.Repository,
	logger logger.Interface,
) *GetCourseProgressUseCase {
	return &GetCourseProgressUseCase{
		progressRepo: progressRepo,
		courseRepo:   courseRepo,
		logger:       logger,
	}
}

func (uc *GetCourseProgressUseCase) Execute(ctx context.Context, cmd GetCourseProgressCommand) (*CourseProgress, error) {
	lessons, err := uc.courseRepo.ListLessonsByCourse(ctx, cmd.CourseID)
	if err != nil {
		uc.logger.Errorw("failed to list lessons", "error", err, "course_id", cmd.CourseID)
		return nil, fmt.Errorf("failed to list lessons: %w", err)
	}

	records, err := uc.progressRepo.ListByStudentAndCourse(ctx, cmd.StudentID, cmd.CourseID)
	if err != nil {
		uc.logger.Errorw("failed to list progress", "error", err, "student_id", cmd.StudentID, "course_id", cmd.CourseID)
		return nil, fmt.Errorf("failed to list progress: %w", err)
	}

	completed := 0
	for _, r := range records {
		if r.Completed() {
			completed++
		}
	}

	return &CourseProgress{
		Records:          records,
		TotalLessons:     len(lessons),
		CompletedLessons: completed,
	}, nil
}
