package usecases

import (
	"context"
	"fmt"

	"github.com/edulane/edulane/internal/domain/course"
	sharedauth "github.com/edulane/edulane/internal/shared/auth"
	apperrors "github.com/edulane/edulane/internal/shared/errors"
	"github.com/edulane/edulane/internal/shared/logger"
	"github.com/edulane/edulane/internal/shared/services/markdown"
)

type AddLessonCommand struct {
	CallerID   uint
	CallerRole string
	CourseID   uint
	Title      string
	Content    string
	VideoURL   string
	Position   int
	// Trial designates the lesson as the course's always-open preview.
	Trial bool
}

type AddLessonUseCase struct {
	courseRepo course.Repository
	markdown   markdown.Service
	logger     logger.Interface
}

func NewAddLessonUseCase(courseRepo course.Repository, md markdown.Service, logger logger.Interface) *AddLessonUseCase {
	return &AddLessonUseCase{courseRepo: courseRepo, markdown: md, logger: logger}
}

func (uc *AddLessonUseCase) Execute(ctx context.Context, cmd AddLessonCommand) (*course.Lesson, error) {
	crs, err := uc.courseRepo.GetByID(ctx, cmd.CourseID)
	if err != nil {
		uc.logger.Errorw("failed to get course", "error", err, "course_id", cmd.CourseID)
		return nil, fmt.Errorf("failed to get course: %w", err)
	}
	if crs == nil {
		return nil, apperrors.NewNotFoundError("course not found")
	}
	if !sharedauth.CanManageCourse(cmd.CallerID, cmd.CallerRole, crs.OwnerID()) {
		return nil, apperrors.NewForbiddenError("only the course owner or an admin may add lessons")
	}

	content, err := uc.markdown.ToHTMLSanitized(cmd.Content)
	if err != nil {
		return nil, apperrors.NewValidationError("invalid lesson markdown")
	}

	lesson, err := course.NewLesson(cmd.CourseID, cmd.Title, content, cmd.VideoURL, cmd.Position)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if err := uc.courseRepo.CreateLesson(ctx, lesson); err != nil {
		uc.logger.Errorw("failed to create lesson", "error", err, "course_id", cmd.CourseID)
		return nil, fmt.Errorf("failed to create lesson: %w", err)
	}

	if cmd.Trial {
		id := lesson.ID()
		crs.SetTrialLesson(&id)
		if err := uc.courseRepo.Update(ctx, crs); err != nil {
			uc.logger.Errorw("failed to set trial lesson", "error", err, "course_id", cmd.CourseID, "lesson_id", id)
			return nil, fmt.Errorf("failed to set trial lesson: %w", err)
		}
	}

	uc.logger.Infow("lesson added", "course_id", cmd.CourseID, "lesson_id", lesson.ID(), "trial", cmd.Trial)
	return lesson, nil
}
