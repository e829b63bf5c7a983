package usecases

import (
	"context"
	"fmt"

	"github.com/edulane/edulane/internal/domain/access"
	"github.com/edulane/edulane/internal/domain/course"
	"github.com/edulane/edulane/internal/domain/notification"
	sharedauth "github.com/edulane/edulane/internal/shared/auth"
	"github.com/edulane/edulane/internal/shared/clock"
	apperrors "github.com/edulane/edulane/internal/shared/errors"
	"github.com/edulane/edulane/internal/shared/logger"
)

type RevokeAccessCommand struct {
	CallerID   uint
	CallerRole string
	StudentID  uint
	CourseID   uint
}

// RevokeAccessUseCase withdraws access by deleting the record for the pair.
// After revocation the student stands exactly where a stranger does: checks
// report no_record and a fresh request goes through the normal workflow.
type RevokeAccessUseCase struct {
	recordRepo access.Repository
	courseRepo course.Repository
	notifier   AccessNotifier
	clock      clock.Clock
	logger     logger.Interface
}

func NewRevokeAccessUseCase(
	recordRepo access.Repository,
	courseRepo course.Repository,
	clk clock.Clock,
	logger logger.Interface,
) *RevokeAccessUseCase {
	return &RevokeAccessUseCase{
		recordRepo: recordRepo,
		courseRepo: courseRepo,
		clock:      clk,
		logger:     logger,
	}
}

// SetNotifier sets the access notifier (optional).
func (uc *RevokeAccessUseCase) SetNotifier(notifier AccessNotifier) {
	uc.notifier = notifier
}

func (uc *RevokeAccessUseCase) Execute(ctx context.Context, cmd RevokeAccessCommand) error {
	crs, err := uc.courseRepo.GetByID(ctx, cmd.CourseID)
	if err != nil {
		uc.logger.Errorw("failed to get course", "error", err, "course_id", cmd.CourseID)
		return fmt.Errorf("failed to get course: %w", err)
	}
	if crs == nil {
		return apperrors.NewNotFoundError("course not found")
	}

	if !sharedauth.CanManageCourse(cmd.CallerID, cmd.CallerRole, crs.OwnerID()) {
		return apperrors.NewForbiddenError("only the course owner or an admin may revoke access")
	}

	record, err := uc.recordRepo.GetByStudentAndCourse(ctx, cmd.StudentID, cmd.CourseID)
	if err != nil {
		uc.logger.Errorw("failed to get access record", "error", err, "student_id", cmd.StudentID, "course_id", cmd.CourseID)
		return fmt.Errorf("failed to get access record: %w", err)
	}
	if record == nil {
		return apperrors.NewNotFoundError("access record not found")
	}

	if err := uc.recordRepo.DeleteByStudentAndCourse(ctx, cmd.StudentID, cmd.CourseID); err != nil {
		uc.logger.Errorw("failed to delete access record", "error", err, "record_id", record.ID())
		return fmt.Errorf("failed to delete access record: %w", err)
	}

	uc.logger.Infow("access revoked",
		"student_id", cmd.StudentID,
		"course_id", cmd.CourseID,
		"revoked_by", cmd.CallerID,
	)

	uc.dispatch(ctx, []notification.Effect{{
		RecipientID: cmd.StudentID,
		EventType:   notification.EventAccessRevoked,
		Title:       "Access revoked",
		Message:     fmt.Sprintf("Your access to %q was revoked", crs.Title()),
	}})
	return nil
}

func (uc *RevokeAccessUseCase) dispatch(ctx context.Context, effects []notification.Effect) {
	if uc.notifier == nil || len(effects) == 0 {
		return
	}
	uc.notifier.Dispatch(ctx, effects)
}
