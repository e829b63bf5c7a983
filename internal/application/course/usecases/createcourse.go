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

type CreateCourseCommand struct {
	CallerID    uint
	CallerRole  string
	Title       string
	Description string
	PriceCents  int64
}

type CreateCourseUseCase struct {
	courseRepo course.Repository
	markdown   markdown.Service
	logger     logger.Interface
}

func NewCreateCourseUseCase(courseRepo course.Repository, md markdown.Service, logger logger.Interface) *CreateCourseUseCase {
	return &CreateCourseUseCase{courseRepo: courseRepo, markdown: md, logger: logger}
}

func (uc *CreateCourseUseCase) Execute(ctx context.Context, cmd CreateCourseCommand) (*course.Course, error) {
	if !sharedauth.IsTeacher(cmd.CallerRole) && !sharedauth.IsAdmin(cmd.CallerRole) {
		return nil, apperrors.NewForbiddenError("only teachers may create courses")
	}

	descriptionHTML, err := uc.markdown.ToHTMLSanitized(cmd.Description)
	if err != nil {
		return nil, apperrors.NewValidationError("invalid description markdown")
	}

	crs, err := course.NewCourse(cmd.CallerID, cmd.Title, cmd.Description, descriptionHTML, cmd.PriceCents)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if err := uc.courseRepo.Create(ctx, crs); err != nil {
		uc.logger.Errorw("failed to create course", "error", err, "owner_id", cmd.CallerID)
		return nil, fmt.Errorf("failed to create course: %w", err)
	}

	uc.logger.Infow("course created", "course_id", crs.ID(), "owner_id", cmd.CallerID)
	return crs, nil
}
