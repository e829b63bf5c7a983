package usecases

import (
	"context"
	"fmt"

	accessvo "github.com/edulane/edulane/internal/domain/access/valueobjects"
	"github.com/edulane/edulane/internal/domain/course"
	sharedauth "github.com/edulane/edulane/internal/shared/auth"
	apperrors "github.com/edulane/edulane/internal/shared/errors"
	"github.com/edulane/edulane/internal/shared/logger"
)

type SetPricingCommand struct {
	CallerID   uint
	CallerRole string
	CourseID   uint
	// Prices maps subscription periods to prices in cents. Replaces the whole
	// table; periods absent from the map become unavailable.
	Prices map[accessvo.PeriodToken]int64
}

// SetPricingUseCase replaces a course's subscription price table.
type SetPricingUseCase struct {
	courseRepo course.Repository
	logger     logger.Interface
}

func NewSetPricingUseCase(courseRepo course.Repository, logger logger.Interface) *SetPricingUseCase {
	return &SetPricingUseCase{courseRepo: courseRepo, logger: logger}
}

func (uc *SetPricingUseCase) Execute(ctx context.Context, cmd SetPricingCommand) (*course.Course, error) {
	crs, err := uc.courseRepo.GetByID(ctx, cmd.CourseID)
	if err != nil {
		uc.logger.Errorw("failed to get course", "error", err, "course_id", cmd.CourseID)
		return nil, fmt.Errorf("failed to get course: %w", err)
	}
	if crs == nil {
		return nil, apperrors.NewNotFoundError("course not found")
	}
	if !sharedauth.CanManageCourse(cmd.CallerID, cmd.CallerRole, crs.OwnerID()) {
		return nil, apperrors.NewForbiddenError("only the course owner or an admin may set pricing")
	}

	if err := crs.SetPrices(cmd.Prices); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if err := uc.courseRepo.Update(ctx, crs); err != nil {
		uc.logger.Errorw("failed to update course", "error", err, "course_id", cmd.CourseID)
		return nil, fmt.Errorf("failed to update course: %w", err)
	}

	uc.logger.Infow("course pricing updated", "course_id", cmd.CourseID, "periods", len(cmd.Prices))
	return crs, nil
}
