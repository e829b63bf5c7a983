package usecases

import (
	"context"
	"fmt"

	accessusecases "github.com/edulane/edulane/internal/application/access/usecases"
	"github.com/edulane/edulane/internal/domain/course"
	apperrors "github.com/edulane/edulane/internal/shared/errors"
	"github.com/edulane/edulane/internal/shared/logger"
)

type GetLessonCommand struct {
	CallerID   uint
	CallerRole string
	LessonID   uint
}

// GetLessonUseCase returns lesson content gated by the access decision. The
// trial-lesson override inside the check keeps the preview lesson open to all.
type GetLessonUseCase struct {
	courseRepo  course.Repository
	checkAccess *accessusecases.CheckAccessUseCase
	logger      logger.Interface
}

func NewGetLessonUseCase(
	courseRepo course.Repository,
	checkAccess *accessusecases.CheckAccessUseCase,
	logger logger.Interface,
) *GetLessonUseCase {
	return &GetLessonUseCase{courseRepo: courseRepo, checkAccess: checkAccess, logger: logger}
}

func (uc *GetLessonUseCase) Execute(ctx context.Context, cmd GetLessonCommand) (*course.Lesson, error) {
	lesson, err := uc.courseRepo.GetLessonByID(ctx, cmd.LessonID)
	if err != nil {
		uc.logger.Errorw("failed to get lesson", "error", err, "lesson_id", cmd.LessonID)
		return nil, fmt.Errorf("failed to get lesson: %w", err)
	}
	if lesson == nil {
		return nil, apperrors.NewNotFoundError("lesson not found")
	}

	decision, err := uc.checkAccess.Execute(ctx, accessusecases.CheckAccessCommand{
		CallerID:   cmd.CallerID,
		CallerRole: cmd.CallerRole,
		CourseID:   lesson.CourseID(),
		LessonID:   cmd.LessonID,
	})
	if err != nil {
		return nil, err
	}
	if !decision.Granted {
		return nil, apperrors.NewForbiddenError(fmt.Sprintf("no access to this lesson: %s", decision.Reason))
	}

	return lesson, nil
}
