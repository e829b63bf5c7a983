package usecases

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/edulane/edulane/internal/domain/access"
	vo "github.com/edulane/edulane/internal/domain/access/valueobjects"
	"github.com/edulane/edulane/internal/domain/course"
	coursevo "github.com/edulane/edulane/internal/domain/course/valueobjects"
	"github.com/edulane/edulane/internal/domain/notification"
	"github.com/edulane/edulane/internal/shared/logger"
)

var testNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

type pairKey struct {
	studentID uint
	courseID  uint
}

// fakeAccessRepo is an in-memory access.Repository. Create enforces the
// unique (student, course) pair the way the store does.
type fakeAccessRepo struct {
	mu      sync.Mutex
	records map[pairKey]*access.AccessRecord
	nextID  uint
}

func newFakeAccessRepo() *fakeAccessRepo {
	return &fakeAccessRepo{records: make(map[pairKey]*access.AccessRecord), nextID: 1}
}

func (r *fakeAccessRepo) Create(ctx context.Context, record *access.AccessRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := pairKey{record.StudentID(), record.CourseID()}
	if _, exists := r.records[key]; exists {
		return errors.New("UNIQUE constraint failed: access_records.student_id, access_records.course_id")
	}
	if record.ID() == 0 {
		if err := record.SetID(r.nextID); err != nil {
			return err
		}
		r.nextID++
	}
	r.records[key] = record
	return nil
}

func (r *fakeAccessRepo) Update(ctx context.Context, record *access.AccessRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records[pairKey{record.StudentID(), record.CourseID()}] = record
	return nil
}

func (r *fakeAccessRepo) Upsert(ctx context.Context, record *access.AccessRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := pairKey{record.StudentID(), record.CourseID()}
	if record.ID() == 0 {
		if existing, ok := r.records[key]; ok {
			_ = record.SetID(existing.ID())
		} else {
			if err := record.SetID(r.nextID); err != nil {
				return err
			}
			r.nextID++
		}
	}
	r.records[key] = record
	return nil
}

func (r *fakeAccessRepo) GetByStudentAndCourse(ctx context.Context, studentID, courseID uint) (*access.AccessRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.records[pairKey{studentID, courseID}], nil
}

func (r *fakeAccessRepo) ListByStudent(ctx context.Context, studentID uint) ([]*access.AccessRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []*access.AccessRecord
	for key, record := range r.records {
		if key.studentID == studentID {
			out = append(out, record)
		}
	}
	return out, nil
}

func (r *fakeAccessRepo) ListByCourse(ctx context.Context, courseID uint) ([]*access.AccessRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []*access.AccessRecord
	for key, record := range r.records {
		if key.courseID == courseID {
			out = append(out, record)
		}
	}
	return out, nil
}

func (r *fakeAccessRepo) DeleteByStudentAndCourse(ctx context.Context, studentID, courseID uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.records, pairKey{studentID, courseID})
	return nil
}

// fakeCourseRepo is an in-memory course.Repository.
type fakeCourseRepo struct {
	courses map[uint]*course.Course
	lessons map[uint]*course.Lesson
}

func newFakeCourseRepo() *fakeCourseRepo {
	return &fakeCourseRepo{
		courses: make(map[uint]*course.Course),
		lessons: make(map[uint]*course.Lesson),
	}
}

func (r *fakeCourseRepo) Create(ctx context.Context, crs *course.Course) error {
	r.courses[crs.ID()] = crs
	return nil
}

func (r *fakeCourseRepo) Update(ctx context.Context, crs *course.Course) error {
	r.courses[crs.ID()] = crs
	return nil
}

func (r *fakeCourseRepo) GetByID(ctx context.Context, id uint) (*course.Course, error) {
	return r.courses[id], nil
}

func (r *fakeCourseRepo) List(ctx context.Context, visibleOnly bool) ([]*course.Course, error) {
	var out []*course.Course
	for _, crs := range r.courses {
		if visibleOnly && !crs.Visible() {
			continue
		}
		out = append(out, crs)
	}
	return out, nil
}

func (r *fakeCourseRepo) CreateLesson(ctx context.Context, lesson *course.Lesson) error {
	r.lessons[lesson.ID()] = lesson
	return nil
}

func (r *fakeCourseRepo) GetLessonByID(ctx context.Context, id uint) (*course.Lesson, error) {
	return r.lessons[id], nil
}

func (r *fakeCourseRepo) ListLessonsByCourse(ctx context.Context, courseID uint) ([]*course.Lesson, error) {
	var out []*course.Lesson
	for _, lesson := range r.lessons {
		if lesson.CourseID() == courseID {
			out = append(out, lesson)
		}
	}
	return out, nil
}

// recordingNotifier captures dispatched effects for assertions.
type recordingNotifier struct {
	mu      sync.Mutex
	effects []notification.Effect
}

func (n *recordingNotifier) Dispatch(ctx context.Context, effects []notification.Effect) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.effects = append(n.effects, effects...)
}

func (n *recordingNotifier) all() []notification.Effect {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]notification.Effect(nil), n.effects...)
}

type courseSpec struct {
	id               uint
	ownerID          uint
	price            int64
	subscriptionType coursevo.SubscriptionType
	trialPeriodDays  *uint
	trialLessonID    *uint
	prices           map[vo.PeriodToken]int64
	visible          bool
}

func buildCourse(t *testing.T, spec courseSpec) *course.Course {
	t.Helper()

	if spec.ownerID == 0 {
		spec.ownerID = 2
	}
	crs, err := course.ReconstructCourse(
		spec.id, spec.ownerID,
		"Go Fundamentals", "desc", "<p>desc</p>",
		spec.price,
		spec.subscriptionType,
		spec.trialPeriodDays,
		spec.trialLessonID,
		spec.prices,
		spec.visible,
		testNow.AddDate(0, -1, 0), testNow.AddDate(0, -1, 0),
	)
	require.NoError(t, err)
	return crs
}

func testLogger() logger.Interface {
	return logger.NewLogger()
}
