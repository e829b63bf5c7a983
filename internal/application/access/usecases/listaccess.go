package usecases

import (
	"context"
	"fmt"

	"github.com/edulane/edulane/internal/domain/access"
	"github.com/edulane/edulane/internal/domain/course"
	sharedauth "github.com/edulane/edulane/internal/shared/auth"
	apperrors "github.com/edulane/edulane/internal/shared/errors"
	"github.com/edulane/edulane/internal/shared/logger"
)

// ListStudentAccessUseCase returns every access record a student holds.
type ListStudentAccessUseCase struct {
	recordRepo access.Repository
	logger     logger.Interface
}

func NewListStudentAccessUseCase(recordRepo access.Repository, logger logger.Interface) *ListStudentAccessUseCase {
	return &ListStudentAccessUseCase{recordRepo: recordRepo, logger: logger}
}

func (uc *ListStudentAccessUseCase) Execute(ctx context.Context, studentID uint) ([]*access.AccessRecord, error) {
	records, err := uc.recordRepo.ListByStudent(ctx, studentID)
	if err != nil {
		uc.logger.Errorw("failed to list access records", "error", err, "student_id", studentID)
		return nil, fmt.Errorf("failed to list access records: %w", err)
	}
	return records, nil
}

// ListCourseAccessUseCase returns every access record for a course. Only the
// course owner or an admin may see the roster.
type ListCourseAccessUseCase struct {
	recordRepo access.Repository
	courseRepo course.Repository
	logger     logger.Interface
}

func NewListCourseAccessUseCase(recordRepo access.Repository, courseRepo course.Repository, logger logger.Interface) *ListCourseAccessUseCase {
	return &ListCourseAccessUseCase{recordRepo: recordRepo, courseRepo: courseRepo, logger: logger}
}

type ListCourseAccessCommand struct {
	CallerID   uint
	CallerRole string
	CourseID   uint
}

func (uc *ListCourseAccessUseCase) Execute(ctx context.Context, cmd ListCourseAccessCommand) ([]*access.AccessRecord, error) {
	crs, err := uc.courseRepo.GetByID(ctx, cmd.CourseID)
	if err != nil {
		uc.logger.Errorw("failed to get course", "error", err, "course_id", cmd.CourseID)
		return nil, fmt.Errorf("failed to get course: %w", err)
	}
	if crs == nil {
		return nil, apperrors.NewNotFoundError("course not found")
	}
	if !sharedauth.CanManageCourse(cmd.CallerID, cmd.CallerRole, crs.OwnerID()) {
		return nil, apperrors.NewForbiddenError("only the course owner or an admin may list access records")
	}

	records, err := uc.recordRepo.ListByCourse(ctx, cmd.CourseID)
	if err != nil {
		uc.logger.Errorw("failed to list access records", "error", err, "course_id", cmd.CourseID)
		return nil, fmt.Errorf("failed to list access records: %w", err)
	}
	return records, nil
}
