package usecases

import (
	"context"
	"fmt"

	"github.com/edulane/edulane/internal/domain/access"
	vo "github.com/edulane/edulane/internal/domain/access/valueobjects"
	"github.com/edulane/edulane/internal/domain/course"
	"github.com/edulane/edulane/internal/domain/notification"
	"github.com/edulane/edulane/internal/shared/clock"
	apperrors "github.com/edulane/edulane/internal/shared/errors"
	"github.com/edulane/edulane/internal/shared/logger"
)

type ExtendSubscriptionCommand struct {
	StudentID uint
	CourseID  uint
	Period    vo.PeriodToken
}

type ExtendSubscriptionResult struct {
	Record *access.AccessRecord
	// PriceCents is the configured price charged for the purchased period.
	PriceCents int64
}

// ExtendSubscriptionUseCase applies a purchased subscription period to an
// existing enrollment. Active subscriptions stack the new period onto the
// current end date; expired ones restart from the purchase instant. A pair
// with no record cannot buy time, the student has to request access first.
type ExtendSubscriptionUseCase struct {
	recordRepo access.Repository
	courseRepo course.Repository
	notifier   AccessNotifier
	clock      clock.Clock
	logger     logger.Interface
}

func NewExtendSubscriptionUseCase(
	recordRepo access.Repository,
	courseRepo course.Repository,
	clk clock.Clock,
	logger logger.Interface,
) *ExtendSubscriptionUseCase {
	return &ExtendSubscriptionUseCase{
		recordRepo: recordRepo,
		courseRepo: courseRepo,
		clock:      clk,
		logger:     logger,
	}
}

// SetNotifier sets the access notifier (optional).
func (uc *ExtendSubscriptionUseCase) SetNotifier(notifier AccessNotifier) {
	uc.notifier = notifier
}

func (uc *ExtendSubscriptionUseCase) Execute(ctx context.Context, cmd ExtendSubscriptionCommand) (*ExtendSubscriptionResult, error) {
	if !cmd.Period.IsValid() {
		return nil, apperrors.NewValidationError(fmt.Sprintf("invalid subscription period: %s", cmd.Period))
	}

	crs, err := uc.courseRepo.GetByID(ctx, cmd.CourseID)
	if err != nil {
		uc.logger.Errorw("failed to get course", "error", err, "course_id", cmd.CourseID)
		return nil, fmt.Errorf("failed to get course: %w", err)
	}
	if crs == nil || !crs.Visible() {
		return nil, apperrors.NewNotFoundError("course not found")
	}
	if !crs.SubscriptionType().IsPaid() {
		return nil, apperrors.NewValidationError("course does not sell subscriptions")
	}

	price, ok := crs.PriceFor(cmd.Period)
	if !ok {
		return nil, apperrors.NewValidationError(fmt.Sprintf("no price configured for period %s", cmd.Period))
	}

	now := uc.clock.Now()

	record, err := uc.recordRepo.GetByStudentAndCourse(ctx, cmd.StudentID, cmd.CourseID)
	if err != nil {
		uc.logger.Errorw("failed to get access record", "error", err, "student_id", cmd.StudentID, "course_id", cmd.CourseID)
		return nil, fmt.Errorf("failed to get access record: %w", err)
	}
	if record == nil {
		// Purchases extend an enrollment, they never open one.
		return nil, apperrors.NewNotFoundError("no enrollment for this course, request access first")
	}

	// Anchor at the current end while the subscription is still running so no
	// paid-for days are lost; anchor at now once it has lapsed.
	anchor := now
	if w, ok := record.CurrentWindow(); ok && record.Status() == vo.StatusApproved {
		if w.End != nil && w.End.After(now) {
			anchor = *w.End
		}
	}
	newEnd := cmd.Period.AddTo(anchor)

	if err := record.Extend(newEnd, now); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if err := uc.recordRepo.Update(ctx, record); err != nil {
		uc.logger.Errorw("failed to persist access record", "error", err, "student_id", cmd.StudentID, "course_id", cmd.CourseID)
		return nil, fmt.Errorf("failed to persist access record: %w", err)
	}

	uc.logger.Infow("subscription extended",
		"student_id", cmd.StudentID,
		"course_id", cmd.CourseID,
		"period", cmd.Period,
		"access_end", newEnd,
	)

	uc.dispatch(ctx, []notification.Effect{{
		RecipientID: cmd.StudentID,
		EventType:   notification.EventSubscriptionExtended,
		Title:       "Subscription extended",
		Message:     fmt.Sprintf("Your subscription to %q now runs until %s", crs.Title(), newEnd.Format("2006-01-02")),
	}})

	return &ExtendSubscriptionResult{Record: record, PriceCents: price}, nil
}

func (uc *ExtendSubscriptionUseCase) dispatch(ctx context.Context, effects []notification.Effect) {
	if uc.notifier == nil || len(effects) == 0 {
		return
	}
	uc.notifier.Dispatch(ctx, effects)
}
