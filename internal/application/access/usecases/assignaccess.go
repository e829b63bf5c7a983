package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/edulane/edulane/internal/domain/access"
	"github.com/edulane/edulane/internal/domain/course"
	"github.com/edulane/edulane/internal/domain/notification"
	sharedauth "github.com/edulane/edulane/internal/shared/auth"
	"github.com/edulane/edulane/internal/shared/clock"
	apperrors "github.com/edulane/edulane/internal/shared/errors"
	"github.com/edulane/edulane/internal/shared/logger"
)

type AssignAccessCommand struct {
	CallerID   uint
	CallerRole string
	StudentID  uint
	CourseID   uint
	// Start defaults to the assignment instant when nil; a past Start
	// backdates the grant. End nil means unbounded access.
	Start *time.Time
	End   *time.Time
}

// AssignAccessUseCase grants access directly with an explicit window,
// skipping the request step. Any existing record for the pair is
// overwritten with a fresh approval.
type AssignAccessUseCase struct {
	recordRepo access.Repository
	courseRepo course.Repository
	notifier   AccessNotifier
	clock      clock.Clock
	logger     logger.Interface
}

func NewAssignAccessUseCase(
	recordRepo access.Repository,
	courseRepo course.Repository,
	clk clock.Clock,
	logger logger.Interface,
) *AssignAccessUseCase {
	return &AssignAccessUseCase{
		recordRepo: recordRepo,
		courseRepo: courseRepo,
		clock:      clk,
		logger:     logger,
	}
}

// SetNotifier sets the access notifier (optional).
func (uc *AssignAccessUseCase) SetNotifier(notifier AccessNotifier) {
	uc.notifier = notifier
}

func (uc *AssignAccessUseCase) Execute(ctx context.Context, cmd AssignAccessCommand) (*access.AccessRecord, error) {
	crs, err := uc.courseRepo.GetByID(ctx, cmd.CourseID)
	if err != nil {
		uc.logger.Errorw("failed to get course", "error", err, "course_id", cmd.CourseID)
		return nil, fmt.Errorf("failed to get course: %w", err)
	}
	if crs == nil {
		return nil, apperrors.NewNotFoundError("course not found")
	}

	if !sharedauth.CanManageCourse(cmd.CallerID, cmd.CallerRole, crs.OwnerID()) {
		return nil, apperrors.NewForbiddenError("only the course owner or an admin may assign access")
	}

	now := uc.clock.Now()
	start := now
	if cmd.Start != nil {
		start = *cmd.Start
	}
	window := access.Window{Start: start, End: cmd.End}
	if err := window.Validate(); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	adminID := cmd.CallerID
	record, err := access.NewApprovedAccessRecord(cmd.StudentID, cmd.CourseID, &adminID, window, now)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if err := uc.recordRepo.Upsert(ctx, record); err != nil {
		uc.logger.Errorw("failed to upsert access record", "error", err, "student_id", cmd.StudentID, "course_id", cmd.CourseID)
		return nil, fmt.Errorf("failed to upsert access record: %w", err)
	}

	uc.logger.Infow("access assigned",
		"student_id", cmd.StudentID,
		"course_id", cmd.CourseID,
		"assigned_by", cmd.CallerID,
	)

	uc.dispatch(ctx, []notification.Effect{{
		RecipientID: cmd.StudentID,
		EventType:   notification.EventAccessApproved,
		Title:       "Access granted",
		Message:     fmt.Sprintf("You were granted access to %q", crs.Title()),
	}})
	return record, nil
}

func (uc *AssignAccessUseCase) dispatch(ctx context.Context, effects []notification.Effect) {
	if uc.notifier == nil || len(effects) == 0 {
		return
	}
	uc.notifier.Dispatch(ctx, effects)
}
