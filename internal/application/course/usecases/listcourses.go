package usecases

import (
	"context"
	"fmt"

	"github.com/edulane/edulane/internal/domain/course"
	sharedauth "github.com/edulane/edulane/internal/shared/auth"
	"github.com/edulane/edulane/internal/shared/logger"
)

// ListCoursesUseCase returns the course catalog. Admins see hidden courses too.
type ListCoursesUseCase struct {
	courseRepo course.Repository
	logger     logger.Interface
}

func NewListCoursesUseCase(courseRepo course.Repository, logger logger.Interface) *ListCoursesUseCase {
	return &ListCoursesUseCase{courseRepo: courseRepo, logger: logger}
}

func (uc *ListCoursesUseCase) Execute(ctx context.Context, callerRole string) ([]*course.Course, error) {
	visibleOnly := !sharedauth.IsAdmin(callerRole)
	courses, err := uc.courseRepo.List(ctx, visibleOnly)
	if err != nil {
		uc.logger.Errorw("failed to list courses", "error", err)
		return nil, fmt.Errorf("failed to list courses: %w", err)
	}
	return courses, nil
}
