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

type RequestAccessCommand struct {
	StudentID uint
	CourseID  uint
}

type RequestAccessUseCase struct {
	recordRepo access.Repository
	courseRepo course.Repository
	notifier   AccessNotifier
	clock      clock.Clock
	logger     logger.Interface
}

func NewRequestAccessUseCase(
	recordRepo access.Repository,
	courseRepo course.Repository,
	clk clock.Clock,
	logger logger.Interface,
) *RequestAccessUseCase {
	return &RequestAccessUseCase{
		recordRepo: recordRepo,
		courseRepo: courseRepo,
		clock:      clk,
		logger:     logger,
	}
}

// SetNotifier sets the access notifier (optional).
func (uc *RequestAccessUseCase) SetNotifier(notifier AccessNotifier) {
	uc.notifier = notifier
}

// Execute creates an access request for a course. Free courses are approved
// on the spot with an unbounded window; everything else waits for a decision.
func (uc *RequestAccessUseCase) Execute(ctx context.Context, cmd RequestAccessCommand) (*access.AccessRecord, error) {
	crs, err := uc.courseRepo.GetByID(ctx, cmd.CourseID)
	if err != nil {
		uc.logger.Errorw("failed to get course", "error", err, "course_id", cmd.CourseID)
		return nil, fmt.Errorf("failed to get course: %w", err)
	}
	if crs == nil || !crs.Visible() {
		return nil, apperrors.NewNotFoundError("course not found")
	}

	now := uc.clock.Now()

	existing, err := uc.recordRepo.GetByStudentAndCourse(ctx, cmd.StudentID, cmd.CourseID)
	if err != nil {
		uc.logger.Errorw("failed to get access record", "error", err, "student_id", cmd.StudentID, "course_id", cmd.CourseID)
		return nil, fmt.Errorf("failed to get access record: %w", err)
	}

	if existing != nil {
		switch existing.Status() {
		case vo.StatusPending, vo.StatusApproved:
			return nil, apperrors.NewConflictError("access request already exists",
				fmt.Sprintf("current status: %s", existing.Status()))
		case vo.StatusRejected:
			// A rejected student may ask again. Free courses never queue, so a
			// repeat request there is approved on the spot; paid courses return
			// to pending and wait for a fresh decision.
			if crs.IsFree() {
				if err := existing.Approve(0, access.Window{Start: now}, now); err != nil {
					return nil, fmt.Errorf("failed to approve access request: %w", err)
				}
			} else if err := existing.Reopen(now); err != nil {
				return nil, fmt.Errorf("failed to reopen access request: %w", err)
			}
			if err := uc.recordRepo.Update(ctx, existing); err != nil {
				uc.logger.Errorw("failed to update access record", "error", err, "record_id", existing.ID())
				return nil, fmt.Errorf("failed to update access record: %w", err)
			}
			if crs.IsFree() {
				uc.dispatch(ctx, []notification.Effect{{
					RecipientID: cmd.StudentID,
					EventType:   notification.EventAccessApproved,
					Title:       "Enrollment confirmed",
					Message:     fmt.Sprintf("You now have access to %q", crs.Title()),
				}})
			} else {
				uc.dispatch(ctx, []notification.Effect{{
					RecipientID: crs.OwnerID(),
					EventType:   notification.EventAccessRequested,
					Title:       "New access request",
					Message:     fmt.Sprintf("A student requested access to %q again", crs.Title()),
				}})
			}
			return existing, nil
		}
	}

	var record *access.AccessRecord
	var effects []notification.Effect

	if crs.IsFree() {
		// Free-course shortcut: born approved, unbounded, approved by system.
		record, err = access.NewApprovedAccessRecord(cmd.StudentID, cmd.CourseID, nil, access.Window{Start: now}, now)
		if err != nil {
			return nil, fmt.Errorf("failed to create access record: %w", err)
		}
		effects = append(effects, notification.Effect{
			RecipientID: cmd.StudentID,
			EventType:   notification.EventAccessApproved,
			Title:       "Enrollment confirmed",
			Message:     fmt.Sprintf("You now have access to %q", crs.Title()),
		})
	} else {
		record, err = access.NewAccessRequest(cmd.StudentID, cmd.CourseID, now)
		if err != nil {
			return nil, fmt.Errorf("failed to create access request: %w", err)
		}
		effects = append(effects, notification.Effect{
			RecipientID: crs.OwnerID(),
			EventType:   notification.EventAccessRequested,
			Title:       "New access request",
			Message:     fmt.Sprintf("A student requested access to %q", crs.Title()),
		})
	}

	if err := uc.recordRepo.Create(ctx, record); err != nil {
		if apperrors.IsDuplicateError(err) {
			// Lost a race against a concurrent request for the same pair.
			return nil, apperrors.NewConflictError("access request already exists")
		}
		uc.logger.Errorw("failed to create access record", "error", err, "student_id", cmd.StudentID, "course_id", cmd.CourseID)
		return nil, fmt.Errorf("failed to create access record: %w", err)
	}

	uc.logger.Infow("access requested",
		"student_id", cmd.StudentID,
		"course_id", cmd.CourseID,
		"status", record.Status(),
	)

	uc.dispatch(ctx, effects)
	return record, nil
}

func (uc *RequestAccessUseCase) dispatch(ctx context.Context, effects []notification.Effect) {
	if uc.notifier == nil || len(effects) == 0 {
		return
	}
	uc.notifier.Dispatch(ctx, effects)
}
