package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedProgress(t *testing.T, repo *fakeProgressRepo, studentID, lessonID, courseID uint, completed bool, at time.Time) {
	t.Helper()
	_, _, err := repo.UpsertCompletion(context.Background(), studentID, lessonID, courseID, completed, 0, at)
	require.NoError(t, err)
}

func TestGetCourseProgress_Summary(t *testing.T) {
	progressRepo := newFakeProgressRepo()
	courseRepo := newFakeCourseRepo()
	uc := NewGetCourseProgressUseCase(progressRepo, courseRepo, testLogger())

	seedFreeCourse(t, courseRepo, 7)
	for i := uint(1); i <= 5; i++ {
		seedLesson(t, courseRepo, 40+i, 7, int(i))
	}

	seedProgress(t, progressRepo, 1, 41, 7, true, testNow)
	seedProgress(t, progressRepo, 1, 42, 7, true, testNow)
	seedProgress(t, progressRepo, 1, 43, 7, false, testNow)
	// Another student's progress must not leak into the summary.
	seedProgress(t, progressRepo, 2, 41, 7, true, testNow)

	summary, err := uc.Execute(context.Background(), GetCourseProgressCommand{StudentID: 1, CourseID: 7})
	require.NoError(t, err)

	assert.Equal(t, 5, summary.TotalLessons)
	assert.Equal(t, 2, summary.CompletedLessons)
	assert.Len(t, summary.Records, 3)
	for _, record := range summary.Records {
		assert.Equal(t, uint(1), record.StudentID())
	}
}

func TestGetCourseProgress_EmptyCourse(t *testing.T) {
	progressRepo := newFakeProgressRepo()
	courseRepo := newFakeCourseRepo()
	uc := NewGetCourseProgressUseCase(progressRepo, courseRepo, testLogger())

	seedFreeCourse(t, courseRepo, 7)

	summary, err := uc.Execute(context.Background(), GetCourseProgressCommand{StudentID: 1, CourseID: 7})
	require.NoError(t, err)

	assert.Zero(t, summary.TotalLessons)
	assert.Zero(t, summary.CompletedLessons)
	assert.Empty(t, summary.Records)
}
