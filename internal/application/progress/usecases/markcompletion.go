package usecases

import (
	"context"
	"fmt"

	accessusecases "github.com/edulane/edulane/internal/application/access/usecases"
	"github.com/edulane/edulane/internal/domain/course"
	"github.com/edulane/edulane/internal/domain/progress"
	"github.com/edulane/edulane/internal/domain/user"
	"github.com/edulane/edulane/internal/shared/clock"
	"github.com/edulane/edulane/internal/shared/db"
	apperrors "github.com/edulane/edulane/internal/shared/errors"
	"github.com/edulane/edulane/internal/shared/logger"
)

type MarkCompletionCommand struct {
	StudentID    uint
	StudentRole  string
	LessonID     uint
	Completed    bool
	LastPosition int
}

type MarkCompletionResult struct {
	Record *progress.Record
	// PointsAwarded is non-zero only on the first completion of the lesson.
	PointsAwarded int64
}

// MarkCompletionUseCase records lesson progress and credits reward points on
// the first completion. The progress write and the reward increment commit or
// roll back together; re-completions and position updates award nothing.
type MarkCompletionUseCase struct {
	progressRepo    progress.Repository
	courseRepo      course.Repository
	userRepo        user.Repository
	checkAccess     *accessusecases.CheckAccessUseCase
	txManager       *db.TransactionManager
	pointsPerLesson int64
	clock           clock.Clock
	logger          logger.Interface
}

func NewMarkCompletionUseCase(
	progressRepo progress.Repository,
	courseRepo course.Repository,
	userRepo user.Repository,
	checkAccess *accessusecases.CheckAccessUseCase,
	txManager *db.TransactionManager,
	pointsPerLesson int64,
	clk clock.Clock,
	logger logger.Interface,
) *MarkCompletionUseCase {
	return &MarkCompletionUseCase{
		progressRepo:    progressRepo,
		courseRepo:      courseRepo,
		userRepo:        userRepo,
		checkAccess:     checkAccess,
		txManager:       txManager,
		pointsPerLesson: pointsPerLesson,
		clock:           clk,
		logger:          logger,
	}
}

func (uc *MarkCompletionUseCase) Execute(ctx context.Context, cmd MarkCompletionCommand) (*MarkCompletionResult, error) {
	if cmd.LastPosition < 0 {
		return nil, apperrors.NewValidationError("position cannot be negative")
	}

	lesson, err := uc.courseRepo.GetLessonByID(ctx, cmd.LessonID)
	if err != nil {
		uc.logger.Errorw("failed to get lesson", "error", err, "lesson_id", cmd.LessonID)
		return nil, fmt.Errorf("failed to get lesson: %w", err)
	}
	if lesson == nil {
		return nil, apperrors.NewNotFoundError("lesson not found")
	}

	decision, err := uc.checkAccess.Execute(ctx, accessusecases.CheckAccessCommand{
		CallerID:   cmd.StudentID,
		CallerRole: cmd.StudentRole,
		CourseID:   lesson.CourseID(),
		LessonID:   cmd.LessonID,
	})
	if err != nil {
		return nil, err
	}
	if !decision.Granted {
		return nil, apperrors.NewForbiddenError(fmt.Sprintf("no access to this lesson: %s", decision.Reason))
	}

	now := uc.clock.Now()
	result := &MarkCompletionResult{}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		record, firstCompletion, err := uc.progressRepo.UpsertCompletion(
			txCtx, cmd.StudentID, cmd.LessonID, lesson.CourseID(), cmd.Completed, cmd.LastPosition, now,
		)
		if err != nil {
			return fmt.Errorf("failed to upsert progress: %w", err)
		}
		result.Record = record

		if firstCompletion && uc.pointsPerLesson > 0 {
			if err := uc.userRepo.IncrementRewardPoints(txCtx, cmd.StudentID, uc.pointsPerLesson); err != nil {
				return fmt.Errorf("failed to credit reward points: %w", err)
			}
			result.PointsAwarded = uc.pointsPerLesson
		}
		return nil
	})
	if err != nil {
		uc.logger.Errorw("failed to record completion", "error", err, "student_id", cmd.StudentID, "lesson_id", cmd.LessonID)
		return nil, err
	}

	if result.PointsAwarded > 0 {
		uc.logger.Infow("lesson completed",
			"student_id", cmd.StudentID,
			"lesson_id", cmd.LessonID,
			"points_awarded", result.PointsAwarded,
		)
	}
	return result, nil
}
