package progress

import (
	"context"
	"time"
)

// Repository persists progress records. UpsertCompletion is the concurrency
// boundary for the reward contract: the store, not application memory, must
// observe the was-it-already-completed check and the write as a unit.
type Repository interface {
	GetByStudentAndLesson(ctx context.Context, studentID, lessonID uint) (*Record, error)
	ListByStudentAndCourse(ctx context.Context, studentID, courseID uint) ([]*Record, error)

	// UpsertCompletion creates or updates the (student, lesson) record and
	// reports whether this call performed the false-to-true completion
	// transition. Exactly one of any number of concurrent callers setting
	// completed=true on a not-yet-completed record sees firstCompletion=true.
	// Runs inside an ambient transaction when the context carries one.
	UpsertCompletion(ctx context.Context, studentID, lessonID, courseID uint, completed bool, lastPosition int, watchedAt time.Time) (record *Record, firstCompletion bool, err error)
}
