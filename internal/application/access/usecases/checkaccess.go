package usecases

import (
	"context"
	"fmt"

	"github.com/edulane/edulane/internal/domain/access"
	vo "github.com/edulane/edulane/internal/domain/access/valueobjects"
	"github.com/edulane/edulane/internal/domain/course"
	sharedauth "github.com/edulane/edulane/internal/shared/auth"
	"github.com/edulane/edulane/internal/shared/clock"
	apperrors "github.com/edulane/edulane/internal/shared/errors"
	"github.com/edulane/edulane/internal/shared/logger"
)

type CheckAccessCommand struct {
	CallerID   uint
	CallerRole string
	CourseID   uint
	// LessonID narrows the check to one lesson, enabling the trial-lesson
	// override. Zero means a course-level check.
	LessonID uint
}

// CheckAccessUseCase answers "may this user consume this content right now".
// It is the single read-side entry point for entitlement; handlers and the
// progress pipeline both go through it.
type CheckAccessUseCase struct {
	recordRepo access.Repository
	courseRepo course.Repository
	clock      clock.Clock
	logger     logger.Interface
}

func NewCheckAccessUseCase(
	recordRepo access.Repository,
	courseRepo course.Repository,
	clk clock.Clock,
	logger logger.Interface,
) *CheckAccessUseCase {
	return &CheckAccessUseCase{
		recordRepo: recordRepo,
		courseRepo: courseRepo,
		clock:      clk,
		logger:     logger,
	}
}

// Execute evaluates entitlement in precedence order: trial-lesson override,
// then owner/admin bypass, then the access record's state machine and window.
func (uc *CheckAccessUseCase) Execute(ctx context.Context, cmd CheckAccessCommand) (access.Decision, error) {
	crs, err := uc.courseRepo.GetByID(ctx, cmd.CourseID)
	if err != nil {
		uc.logger.Errorw("failed to get course", "error", err, "course_id", cmd.CourseID)
		return access.Decision{}, fmt.Errorf("failed to get course: %w", err)
	}
	if crs == nil {
		return access.Decision{}, apperrors.NewNotFoundError("course not found")
	}

	// The designated preview lesson is open to everyone, including anonymous
	// visitors, regardless of record state.
	if cmd.LessonID != 0 && crs.IsTrialLesson(cmd.LessonID) {
		return access.Granted(), nil
	}

	if sharedauth.CanManageCourse(cmd.CallerID, cmd.CallerRole, crs.OwnerID()) {
		return access.Granted(), nil
	}

	if cmd.CallerID == 0 {
		return access.Denied(vo.ReasonNoRecord), nil
	}

	record, err := uc.recordRepo.GetByStudentAndCourse(ctx, cmd.CallerID, cmd.CourseID)
	if err != nil {
		uc.logger.Errorw("failed to get access record", "error", err, "student_id", cmd.CallerID, "course_id", cmd.CourseID)
		return access.Decision{}, fmt.Errorf("failed to get access record: %w", err)
	}
	if record == nil {
		return access.Denied(vo.ReasonNoRecord), nil
	}

	return record.DecideAt(uc.clock.Now()), nil
}
