package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edulane/edulane/internal/domain/access"
	vo "github.com/edulane/edulane/internal/domain/access/valueobjects"
	coursevo "github.com/edulane/edulane/internal/domain/course/valueobjects"
	"github.com/edulane/edulane/internal/domain/notification"
	"github.com/edulane/edulane/internal/shared/clock"
	apperrors "github.com/edulane/edulane/internal/shared/errors"
)

func setupExtend(t *testing.T) (*ExtendSubscriptionUseCase, *fakeAccessRepo, *fakeCourseRepo, *recordingNotifier) {
	t.Helper()
	accessRepo := newFakeAccessRepo()
	courseRepo := newFakeCourseRepo()
	notifier := &recordingNotifier{}
	uc := NewExtendSubscriptionUseCase(accessRepo, courseRepo, clock.Fixed(testNow), testLogger())
	uc.SetNotifier(notifier)

	courseRepo.courses[7] = buildCourse(t, courseSpec{
		id:               7,
		ownerID:          2,
		subscriptionType: coursevo.SubscriptionPaid,
		prices: map[vo.PeriodToken]int64{
			vo.Period30Days:  1500,
			vo.Period3Months: 4000,
		},
		visible: true,
	})
	return uc, accessRepo, courseRepo, notifier
}

func TestExtendSubscription_InvalidPeriod(t *testing.T) {
	uc, _, _, _ := setupExtend(t)

	_, err := uc.Execute(context.Background(), ExtendSubscriptionCommand{
		StudentID: 1,
		CourseID:  7,
		Period:    vo.PeriodToken("2_weeks"),
	})
	assert.True(t, apperrors.IsValidationError(err))
}

func TestExtendSubscription_NonPaidCourse(t *testing.T) {
	uc, _, courseRepo, _ := setupExtend(t)
	courseRepo.courses[8] = buildCourse(t, courseSpec{
		id:               8,
		subscriptionType: coursevo.SubscriptionFree,
		visible:          true,
	})

	_, err := uc.Execute(context.Background(), ExtendSubscriptionCommand{
		StudentID: 1,
		CourseID:  8,
		Period:    vo.Period30Days,
	})
	assert.True(t, apperrors.IsValidationError(err))
}

func TestExtendSubscription_UnpricedPeriod(t *testing.T) {
	uc, _, _, _ := setupExtend(t)

	_, err := uc.Execute(context.Background(), ExtendSubscriptionCommand{
		StudentID: 1,
		CourseID:  7,
		Period:    vo.Period1Year,
	})
	assert.True(t, apperrors.IsValidationError(err))
}

func TestExtendSubscription_NoRecordIsNotFound(t *testing.T) {
	uc, accessRepo, _, notifier := setupExtend(t)

	// A purchase never opens an enrollment; the student must request first.
	_, err := uc.Execute(context.Background(), ExtendSubscriptionCommand{
		StudentID: 1,
		CourseID:  7,
		Period:    vo.Period30Days,
	})
	assert.True(t, apperrors.IsNotFoundError(err))

	stored, err := accessRepo.GetByStudentAndCourse(context.Background(), 1, 7)
	require.NoError(t, err)
	assert.Nil(t, stored)
	assert.Empty(t, notifier.all())
}

func TestExtendSubscription_ActiveRecordStacksOnCurrentEnd(t *testing.T) {
	uc, accessRepo, _, notifier := setupExtend(t)

	currentEnd := testNow.AddDate(0, 0, 10)
	start := testNow.AddDate(0, -1, 0)
	record := approvedRecord(t, 1, 7, access.Window{Start: start, End: &currentEnd})
	require.NoError(t, accessRepo.Create(context.Background(), record))

	result, err := uc.Execute(context.Background(), ExtendSubscriptionCommand{
		StudentID: 1,
		CourseID:  7,
		Period:    vo.Period3Months,
	})
	require.NoError(t, err)

	// No paid-for days lost: the new window extends the current end.
	require.NotNil(t, result.Record.AccessEnd())
	assert.Equal(t, currentEnd.AddDate(0, 3, 0), *result.Record.AccessEnd())
	require.NotNil(t, result.Record.AccessStart())
	assert.Equal(t, start, *result.Record.AccessStart())
	assert.Equal(t, int64(4000), result.PriceCents)

	effects := notifier.all()
	require.Len(t, effects, 1)
	assert.Equal(t, notification.EventSubscriptionExtended, effects[0].EventType)
}

func TestExtendSubscription_LapsedRecordAnchorsAtNow(t *testing.T) {
	uc, accessRepo, _, _ := setupExtend(t)

	expiredEnd := testNow.AddDate(0, 0, -5)
	start := testNow.AddDate(0, -2, 0)
	record := approvedRecord(t, 1, 7, access.Window{Start: start, End: &expiredEnd})
	require.NoError(t, accessRepo.Create(context.Background(), record))

	result, err := uc.Execute(context.Background(), ExtendSubscriptionCommand{
		StudentID: 1,
		CourseID:  7,
		Period:    vo.Period30Days,
	})
	require.NoError(t, err)

	require.NotNil(t, result.Record.AccessEnd())
	assert.Equal(t, testNow.AddDate(0, 0, 30), *result.Record.AccessEnd())
	// The historical start survives the renewal.
	require.NotNil(t, result.Record.AccessStart())
	assert.Equal(t, start, *result.Record.AccessStart())
}

func TestExtendSubscription_RejectedRecordReactivates(t *testing.T) {
	uc, accessRepo, _, _ := setupExtend(t)

	record, err := access.NewAccessRequest(1, 7, testNow.AddDate(0, 0, -3))
	require.NoError(t, err)
	require.NoError(t, record.Reject(testNow.AddDate(0, 0, -3)))
	require.NoError(t, accessRepo.Create(context.Background(), record))

	result, err := uc.Execute(context.Background(), ExtendSubscriptionCommand{
		StudentID: 1,
		CourseID:  7,
		Period:    vo.Period30Days,
	})
	require.NoError(t, err)

	assert.Equal(t, vo.StatusApproved, result.Record.Status())
	assert.Nil(t, result.Record.ApprovedBy())
	require.NotNil(t, result.Record.AccessEnd())
	assert.Equal(t, testNow.AddDate(0, 0, 30), *result.Record.AccessEnd())
}

func TestExtendSubscription_BackToBackPurchasesStack(t *testing.T) {
	uc, accessRepo, _, _ := setupExtend(t)

	expiredEnd := testNow.AddDate(0, 0, -1)
	record := approvedRecord(t, 1, 7, access.Window{Start: testNow.AddDate(0, -1, 0), End: &expiredEnd})
	require.NoError(t, accessRepo.Create(context.Background(), record))

	first, err := uc.Execute(context.Background(), ExtendSubscriptionCommand{
		StudentID: 1,
		CourseID:  7,
		Period:    vo.Period30Days,
	})
	require.NoError(t, err)

	second, err := uc.Execute(context.Background(), ExtendSubscriptionCommand{
		StudentID: 1,
		CourseID:  7,
		Period:    vo.Period30Days,
	})
	require.NoError(t, err)

	require.NotNil(t, second.Record.AccessEnd())
	assert.Equal(t, first.Record.AccessEnd().AddDate(0, 0, 30), *second.Record.AccessEnd())
	assert.Equal(t, testNow.AddDate(0, 0, 60), *second.Record.AccessEnd())
}
