package usecases

import (
	"context"
	"fmt"

	"github.com/edulane/edulane/internal/domain/course"
	sharedauth "github.com/edulane/edulane/internal/shared/auth"
	apperrors "github.com/edulane/edulane/internal/shared/errors"
	"github.com/edulane/edulane/internal/shared/logger"
)

type GetCourseCommand struct {
	CallerID   uint
	CallerRole string
	CourseID   uint
}

type CourseDetail struct {
	Course  *course.Course
	Lessons []*course.Lesson
}

// GetCourseUseCase returns a course with its lesson outline. Hidden courses
// exist only for their owner and admins.
type GetCourseUseCase struct {
	courseRepo course.Repository
	logger     logger.Interface
}

func NewGetCourseUseCase(courseRepo course.Repository, logger logger.Interface) *GetCourseUseCase {
	return &GetCourseUseCase{courseRepo: courseRepo, logger: logger}
}

func (uc *GetCourseUseCase) Execute(ctx context.Context, cmd GetCourseCommand) (*CourseDetail, error) {
	crs, err := uc.courseRepo.GetByID(ctx, cmd.CourseID)
	if err != nil {
		uc.logger.Errorw("failed to get course", "error", err, "course_id", cmd.CourseID)
		return nil, fmt.Errorf("failed to get course: %w", err)
	}
	if crs == nil {
		return nil, apperrors.NewNotFoundError("course not found")
	}
	if !crs.Visible() && !sharedauth.CanManageCourse(cmd.CallerID, cmd.CallerRole, crs.OwnerID()) {
		return nil, apperrors.NewNotFoundError("course not found")
	}

	lessons, err := uc.courseRepo.ListLessonsByCourse(ctx, cmd.CourseID)
	if err != nil {
		uc.logger.Errorw("failed to list lessons", "error", err, "course_id", cmd.CourseID)
		return nil, fmt.Errorf("failed to list lessons: %w", err)
	}

	return &CourseDetail{Course: crs, Lessons: lessons}, nil
}
