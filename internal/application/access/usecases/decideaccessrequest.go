package usecases

import (
	"context"
	"fmt"

	"github.com/edulane/edulane/internal/domain/access"
	vo "github.com/edulane/edulane/internal/domain/access/valueobjects"
	"github.com/edulane/edulane/internal/domain/course"
	"github.com/edulane/edulane/internal/domain/notification"
	sharedauth "github.com/edulane/edulane/internal/shared/auth"
	"github.com/edulane/edulane/internal/shared/clock"
	apperrors "github.com/edulane/edulane/internal/shared/errors"
	"github.com/edulane/edulane/internal/shared/logger"
)

type DecideAccessRequestCommand struct {
	CallerID   uint
	CallerRole string
	StudentID  uint
	CourseID   uint
	Approve    bool
	// Period selects the paid subscription length for an approval. Optional;
	// a paid course approved without one gets an open-ended window.
	Period *vo.PeriodToken
}

type DecideAccessRequestUseCase struct {
	recordRepo access.Repository
	courseRepo course.Repository
	notifier   AccessNotifier
	clock      clock.Clock
	logger     logger.Interface
}

func NewDecideAccessRequestUseCase(
	recordRepo access.Repository,
	courseRepo course.Repository,
	clk clock.Clock,
	logger logger.Interface,
) *DecideAccessRequestUseCase {
	return &DecideAccessRequestUseCase{
		recordRepo: recordRepo,
		courseRepo: courseRepo,
		clock:      clk,
		logger:     logger,
	}
}

// SetNotifier sets the access notifier (optional).
func (uc *DecideAccessRequestUseCase) SetNotifier(notifier AccessNotifier) {
	uc.notifier = notifier
}

// Execute approves or rejects a student's access request. Approval computes
// the validity window from the course's subscription model anchored at the
// decision instant; status and window land in one atomic record update.
func (uc *DecideAccessRequestUseCase) Execute(ctx context.Context, cmd DecideAccessRequestCommand) (*access.AccessRecord, error) {
	crs, err := uc.courseRepo.GetByID(ctx, cmd.CourseID)
	if err != nil {
		uc.logger.Errorw("failed to get course", "error", err, "course_id", cmd.CourseID)
		return nil, fmt.Errorf("failed to get course: %w", err)
	}
	if crs == nil {
		return nil, apperrors.NewNotFoundError("course not found")
	}

	if !sharedauth.CanManageCourse(cmd.CallerID, cmd.CallerRole, crs.OwnerID()) {
		return nil, apperrors.NewForbiddenError("only the course owner or an admin may decide access requests")
	}

	record, err := uc.recordRepo.GetByStudentAndCourse(ctx, cmd.StudentID, cmd.CourseID)
	if err != nil {
		uc.logger.Errorw("failed to get access record", "error", err, "student_id", cmd.StudentID, "course_id", cmd.CourseID)
		return nil, fmt.Errorf("failed to get access record: %w", err)
	}
	if record == nil {
		return nil, apperrors.NewNotFoundError("access request not found")
	}

	now := uc.clock.Now()
	var effect notification.Effect

	if cmd.Approve {
		window, err := access.ComputeWindow(crs.SubscriptionType(), crs.TrialPeriodDays(), cmd.Period, now)
		if err != nil {
			return nil, apperrors.NewValidationError(err.Error())
		}
		if err := record.Approve(cmd.CallerID, window, now); err != nil {
			return nil, apperrors.NewValidationError(err.Error())
		}
		effect = notification.Effect{
			RecipientID: cmd.StudentID,
			EventType:   notification.EventAccessApproved,
			Title:       "Access approved",
			Message:     fmt.Sprintf("Your access to %q was approved", crs.Title()),
		}
	} else {
		if err := record.Reject(now); err != nil {
			return nil, apperrors.NewValidationError(err.Error())
		}
		effect = notification.Effect{
			RecipientID: cmd.StudentID,
			EventType:   notification.EventAccessRejected,
			Title:       "Access declined",
			Message:     fmt.Sprintf("Your request for %q was declined", crs.Title()),
		}
	}

	if err := uc.recordRepo.Update(ctx, record); err != nil {
		uc.logger.Errorw("failed to update access record", "error", err, "record_id", record.ID())
		return nil, fmt.Errorf("failed to update access record: %w", err)
	}

	uc.logger.Infow("access request decided",
		"student_id", cmd.StudentID,
		"course_id", cmd.CourseID,
		"approved", cmd.Approve,
		"decided_by", cmd.CallerID,
	)

	uc.dispatch(ctx, []notification.Effect{effect})
	return record, nil
}

func (uc *DecideAccessRequestUseCase) dispatch(ctx context.Context, effects []notification.Effect) {
	if uc.notifier == nil || len(effects) == 0 {
		return
	}
	uc.notifier.Dispatch(ctx, effects)
}
