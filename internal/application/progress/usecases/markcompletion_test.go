package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	accessusecases "github.com/edulane/edulane/internal/application/access/usecases"
	"github.com/edulane/edulane/internal/shared/clock"
	apperrors "github.com/edulane/edulane/internal/shared/errors"
)

const testPointsPerLesson = 10

func setupMarkCompletion(t *testing.T) (*MarkCompletionUseCase, *fakeProgressRepo, *fakeUserRepo, *fakeAccessRepo, *fakeCourseRepo) {
	t.Helper()
	progressRepo := newFakeProgressRepo()
	userRepo := newFakeUserRepo()
	accessRepo := newFakeAccessRepo()
	courseRepo := newFakeCourseRepo()

	checkAccess := accessusecases.NewCheckAccessUseCase(accessRepo, courseRepo, clock.Fixed(testNow), testLogger())
	uc := NewMarkCompletionUseCase(
		progressRepo, courseRepo, userRepo, checkAccess,
		testTxManager(t), testPointsPerLesson,
		clock.Fixed(testNow), testLogger(),
	)
	return uc, progressRepo, userRepo, accessRepo, courseRepo
}

func TestMarkCompletion_NegativePosition(t *testing.T) {
	uc, _, _, _, _ := setupMarkCompletion(t)

	_, err := uc.Execute(context.Background(), MarkCompletionCommand{
		StudentID:    1,
		LessonID:     42,
		LastPosition: -1,
	})
	assert.True(t, apperrors.IsValidationError(err))
}

func TestMarkCompletion_MissingLesson(t *testing.T) {
	uc, _, _, _, _ := setupMarkCompletion(t)

	_, err := uc.Execute(context.Background(), MarkCompletionCommand{
		StudentID: 1,
		LessonID:  404,
		Completed: true,
	})
	assert.True(t, apperrors.IsNotFoundError(err))
}

func TestMarkCompletion_DeniedWithoutAccess(t *testing.T) {
	uc, _, userRepo, _, courseRepo := setupMarkCompletion(t)
	seedFreeCourse(t, courseRepo, 7)
	seedLesson(t, courseRepo, 42, 7, 1)

	_, err := uc.Execute(context.Background(), MarkCompletionCommand{
		StudentID: 1,
		LessonID:  42,
		Completed: true,
	})
	assert.True(t, apperrors.IsForbiddenError(err))
	assert.Zero(t, userRepo.balance(1))
}

func TestMarkCompletion_FirstCompletionAwardsPoints(t *testing.T) {
	uc, progressRepo, userRepo, accessRepo, courseRepo := setupMarkCompletion(t)
	seedFreeCourse(t, courseRepo, 7)
	seedLesson(t, courseRepo, 42, 7, 1)
	seedApprovedAccess(t, accessRepo, 1, 7)

	result, err := uc.Execute(context.Background(), MarkCompletionCommand{
		StudentID:    1,
		LessonID:     42,
		Completed:    true,
		LastPosition: 300,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(testPointsPerLesson), result.PointsAwarded)
	assert.True(t, result.Record.Completed())
	assert.Equal(t, 300, result.Record.LastPosition())
	assert.Equal(t, int64(testPointsPerLesson), userRepo.balance(1))

	stored, err := progressRepo.GetByStudentAndLesson(context.Background(), 1, 42)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.True(t, stored.Completed())
}

func TestMarkCompletion_RecompletionAwardsNothing(t *testing.T) {
	uc, _, userRepo, accessRepo, courseRepo := setupMarkCompletion(t)
	seedFreeCourse(t, courseRepo, 7)
	seedLesson(t, courseRepo, 42, 7, 1)
	seedApprovedAccess(t, accessRepo, 1, 7)

	_, err := uc.Execute(context.Background(), MarkCompletionCommand{
		StudentID: 1,
		LessonID:  42,
		Completed: true,
	})
	require.NoError(t, err)

	result, err := uc.Execute(context.Background(), MarkCompletionCommand{
		StudentID:    1,
		LessonID:     42,
		Completed:    true,
		LastPosition: 500,
	})
	require.NoError(t, err)

	assert.Zero(t, result.PointsAwarded)
	assert.Equal(t, int64(testPointsPerLesson), userRepo.balance(1))
}

func TestMarkCompletion_PositionOnlyUpdateAwardsNothing(t *testing.T) {
	uc, progressRepo, userRepo, accessRepo, courseRepo := setupMarkCompletion(t)
	seedFreeCourse(t, courseRepo, 7)
	seedLesson(t, courseRepo, 42, 7, 1)
	seedApprovedAccess(t, accessRepo, 1, 7)

	result, err := uc.Execute(context.Background(), MarkCompletionCommand{
		StudentID:    1,
		LessonID:     42,
		Completed:    false,
		LastPosition: 120,
	})
	require.NoError(t, err)

	assert.Zero(t, result.PointsAwarded)
	assert.False(t, result.Record.Completed())
	assert.Zero(t, userRepo.balance(1))

	stored, err := progressRepo.GetByStudentAndLesson(context.Background(), 1, 42)
	require.NoError(t, err)
	assert.Equal(t, 120, stored.LastPosition())
}

func TestMarkCompletion_CompletedStateNeverReverts(t *testing.T) {
	uc, progressRepo, _, accessRepo, courseRepo := setupMarkCompletion(t)
	seedFreeCourse(t, courseRepo, 7)
	seedLesson(t, courseRepo, 42, 7, 1)
	seedApprovedAccess(t, accessRepo, 1, 7)

	_, err := uc.Execute(context.Background(), MarkCompletionCommand{
		StudentID: 1,
		LessonID:  42,
		Completed: true,
	})
	require.NoError(t, err)

	// A later position-only update keeps the completed flag set.
	result, err := uc.Execute(context.Background(), MarkCompletionCommand{
		StudentID:    1,
		LessonID:     42,
		Completed:    false,
		LastPosition: 60,
	})
	require.NoError(t, err)
	assert.True(t, result.Record.Completed())

	stored, err := progressRepo.GetByStudentAndLesson(context.Background(), 1, 42)
	require.NoError(t, err)
	assert.True(t, stored.Completed())
}

func TestMarkCompletion_TrialLessonWithoutRecord(t *testing.T) {
	uc, _, userRepo, _, courseRepo := setupMarkCompletion(t)

	trialLessonID := uint(42)
	seedPaidCourseWithTrialLesson(t, courseRepo, 7, trialLessonID)
	seedLesson(t, courseRepo, 42, 7, 1)
	seedLesson(t, courseRepo, 43, 7, 2)

	// Trial lesson is open, so progress counts and the reward is credited.
	result, err := uc.Execute(context.Background(), MarkCompletionCommand{
		StudentID: 1,
		LessonID:  42,
		Completed: true,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(testPointsPerLesson), result.PointsAwarded)
	assert.Equal(t, int64(testPointsPerLesson), userRepo.balance(1))

	// The rest of the course stays closed.
	_, err = uc.Execute(context.Background(), MarkCompletionCommand{
		StudentID: 1,
		LessonID:  43,
		Completed: true,
	})
	assert.True(t, apperrors.IsForbiddenError(err))
}
