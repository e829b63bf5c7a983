package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edulane/edulane/internal/domain/access"
	vo "github.com/edulane/edulane/internal/domain/access/valueobjects"
	coursevo "github.com/edulane/edulane/internal/domain/course/valueobjects"
	"github.com/edulane/edulane/internal/shared/clock"
	"github.com/edulane/edulane/internal/shared/constants"
	apperrors "github.com/edulane/edulane/internal/shared/errors"
)

func uintPtr(v uint) *uint { return &v }

func setupCheckAccess(t *testing.T, now time.Time) (*CheckAccessUseCase, *fakeAccessRepo, *fakeCourseRepo) {
	t.Helper()
	accessRepo := newFakeAccessRepo()
	courseRepo := newFakeCourseRepo()
	uc := NewCheckAccessUseCase(accessRepo, courseRepo, clock.Fixed(now), testLogger())
	return uc, accessRepo, courseRepo
}

func approvedRecord(t *testing.T, studentID, courseID uint, window access.Window) *access.AccessRecord {
	t.Helper()
	record, err := access.NewApprovedAccessRecord(studentID, courseID, nil, window, window.Start)
	require.NoError(t, err)
	return record
}

func TestCheckAccess_CourseNotFound(t *testing.T) {
	uc, _, _ := setupCheckAccess(t, testNow)

	_, err := uc.Execute(context.Background(), CheckAccessCommand{CallerID: 1, CourseID: 404})
	assert.True(t, apperrors.IsNotFoundError(err))
}

func TestCheckAccess_TrialLessonOpenToAnonymous(t *testing.T) {
	uc, _, courseRepo := setupCheckAccess(t, testNow)
	courseRepo.courses[7] = buildCourse(t, courseSpec{
		id:               7,
		subscriptionType: coursevo.SubscriptionPaid,
		trialLessonID:    uintPtr(42),
		visible:          true,
	})

	decision, err := uc.Execute(context.Background(), CheckAccessCommand{
		CallerID: 0,
		CourseID: 7,
		LessonID: 42,
	})
	require.NoError(t, err)
	assert.True(t, decision.Granted)
}

func TestCheckAccess_TrialLessonOverridesRejectedRecord(t *testing.T) {
	uc, accessRepo, courseRepo := setupCheckAccess(t, testNow)
	courseRepo.courses[7] = buildCourse(t, courseSpec{
		id:               7,
		subscriptionType: coursevo.SubscriptionPaid,
		trialLessonID:    uintPtr(42),
		visible:          true,
	})

	record, err := access.NewAccessRequest(1, 7, testNow)
	require.NoError(t, err)
	require.NoError(t, record.Reject(testNow))
	require.NoError(t, accessRepo.Create(context.Background(), record))

	decision, err := uc.Execute(context.Background(), CheckAccessCommand{
		CallerID: 1,
		CourseID: 7,
		LessonID: 42,
	})
	require.NoError(t, err)
	assert.True(t, decision.Granted)

	// The same caller is denied on any other lesson.
	decision, err = uc.Execute(context.Background(), CheckAccessCommand{
		CallerID: 1,
		CourseID: 7,
		LessonID: 43,
	})
	require.NoError(t, err)
	assert.False(t, decision.Granted)
	assert.Equal(t, vo.ReasonRejected, decision.Reason)
}

func TestCheckAccess_OwnerAndAdminBypass(t *testing.T) {
	uc, _, courseRepo := setupCheckAccess(t, testNow)
	courseRepo.courses[7] = buildCourse(t, courseSpec{
		id:               7,
		ownerID:          2,
		subscriptionType: coursevo.SubscriptionPaid,
		visible:          true,
	})

	owner, err := uc.Execute(context.Background(), CheckAccessCommand{
		CallerID:   2,
		CallerRole: constants.RoleTeacher,
		CourseID:   7,
	})
	require.NoError(t, err)
	assert.True(t, owner.Granted)

	admin, err := uc.Execute(context.Background(), CheckAccessCommand{
		CallerID:   99,
		CallerRole: constants.RoleAdmin,
		CourseID:   7,
	})
	require.NoError(t, err)
	assert.True(t, admin.Granted)

	otherTeacher, err := uc.Execute(context.Background(), CheckAccessCommand{
		CallerID:   3,
		CallerRole: constants.RoleTeacher,
		CourseID:   7,
	})
	require.NoError(t, err)
	assert.False(t, otherTeacher.Granted)
}

func TestCheckAccess_NoRecord(t *testing.T) {
	uc, _, courseRepo := setupCheckAccess(t, testNow)
	courseRepo.courses[7] = buildCourse(t, courseSpec{
		id:               7,
		subscriptionType: coursevo.SubscriptionFree,
		visible:          true,
	})

	decision, err := uc.Execute(context.Background(), CheckAccessCommand{CallerID: 1, CourseID: 7})
	require.NoError(t, err)
	assert.False(t, decision.Granted)
	assert.Equal(t, vo.ReasonNoRecord, decision.Reason)
}

func TestCheckAccess_WindowBoundaries(t *testing.T) {
	start := testNow.Add(-24 * time.Hour)
	end := testNow.Add(24 * time.Hour)

	tests := []struct {
		name       string
		now        time.Time
		wantGrant  bool
		wantReason vo.DenialReason
	}{
		{"inside window", testNow, true, vo.ReasonGranted},
		{"at start", start, true, vo.ReasonGranted},
		{"one second before end", end.Add(-time.Second), true, vo.ReasonGranted},
		{"exactly at end", end, false, vo.ReasonExpired},
		{"after end", end.Add(time.Hour), false, vo.ReasonExpired},
		{"before start", start.Add(-time.Second), false, vo.ReasonNotStarted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, accessRepo, courseRepo := setupCheckAccess(t, tt.now)
			courseRepo.courses[7] = buildCourse(t, courseSpec{
				id:               7,
				subscriptionType: coursevo.SubscriptionPaid,
				visible:          true,
			})
			record := approvedRecord(t, 1, 7, access.Window{Start: start, End: &end})
			require.NoError(t, accessRepo.Create(context.Background(), record))

			decision, err := uc.Execute(context.Background(), CheckAccessCommand{CallerID: 1, CourseID: 7})
			require.NoError(t, err)
			assert.Equal(t, tt.wantGrant, decision.Granted)
			assert.Equal(t, tt.wantReason, decision.Reason)
		})
	}
}

func TestCheckAccess_UnboundedWindowNeverExpires(t *testing.T) {
	farFuture := testNow.AddDate(50, 0, 0)
	uc, accessRepo, courseRepo := setupCheckAccess(t, farFuture)
	courseRepo.courses[7] = buildCourse(t, courseSpec{
		id:               7,
		subscriptionType: coursevo.SubscriptionFree,
		visible:          true,
	})
	record := approvedRecord(t, 1, 7, access.Window{Start: testNow})
	require.NoError(t, accessRepo.Create(context.Background(), record))

	decision, err := uc.Execute(context.Background(), CheckAccessCommand{CallerID: 1, CourseID: 7})
	require.NoError(t, err)
	assert.True(t, decision.Granted)
}
