package usecases

import (
	"context"
	"fmt"

	"github.com/edulane/edulane/internal/domain/course"
	vo "github.com/edulane/edulane/internal/domain/course/valueobjects"
	sharedauth "github.com/edulane/edulane/internal/shared/auth"
	apperrors "github.com/edulane/edulane/internal/shared/errors"
	"github.com/edulane/edulane/internal/shared/logger"
	"github.com/edulane/edulane/internal/shared/services/markdown"
)

type UpdateCourseCommand struct {
	CallerID    uint
	CallerRole  string
	CourseID    uint
	Title       string
	Description string
	PriceCents  int64
	// SubscriptionType switches the course's access model when non-nil.
	SubscriptionType *vo.SubscriptionType
	TrialPeriodDays  *uint
	Visible          *bool
}

type UpdateCourseUseCase struct {
	courseRepo course.Repository
	markdown   markdown.Service
	logger     logger.Interface
}

func NewUpdateCourseUseCase(courseRepo course.Repository, md markdown.Service, logger logger.Interface) *UpdateCourseUseCase {
	return &UpdateCourseUseCase{courseRepo: courseRepo, markdown: md, logger: logger}
}

func (uc *UpdateCourseUseCase) Execute(ctx context.Context, cmd UpdateCourseCommand) (*course.Course, error) {
	crs, err := uc.courseRepo.GetByID(ctx, cmd.CourseID)
	if err != nil {
		uc.logger.Errorw("failed to get course", "error", err, "course_id", cmd.CourseID)
		return nil, fmt.Errorf("failed to get course: %w", err)
	}
	if crs == nil {
		return nil, apperrors.NewNotFoundError("course not found")
	}
	if !sharedauth.CanManageCourse(cmd.CallerID, cmd.CallerRole, crs.OwnerID()) {
		return nil, apperrors.NewForbiddenError("only the course owner or an admin may update the course")
	}

	descriptionHTML, err := uc.markdown.ToHTMLSanitized(cmd.Description)
	if err != nil {
		return nil, apperrors.NewValidationError("invalid description markdown")
	}

	if err := crs.UpdateInfo(cmd.Title, cmd.Description, descriptionHTML, cmd.PriceCents); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}
	if cmd.SubscriptionType != nil {
		if err := crs.ConfigureSubscription(*cmd.SubscriptionType, cmd.TrialPeriodDays); err != nil {
			return nil, apperrors.NewValidationError(err.Error())
		}
	}
	if cmd.Visible != nil {
		crs.SetVisible(*cmd.Visible)
	}

	if err := uc.courseRepo.Update(ctx, crs); err != nil {
		uc.logger.Errorw("failed to update course", "error", err, "course_id", cmd.CourseID)
		return nil, fmt.Errorf("failed to update course: %w", err)
	}

	uc.logger.Infow("course updated", "course_id", cmd.CourseID, "updated_by", cmd.CallerID)
	return crs, nil
}
