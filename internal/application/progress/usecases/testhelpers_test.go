package usecases

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/edulane/edulane/internal/domain/access"
	"github.com/edulane/edulane/internal/domain/course"
	coursevo "github.com/edulane/edulane/internal/domain/course/valueobjects"
	"github.com/edulane/edulane/internal/domain/progress"
	"github.com/edulane/edulane/internal/domain/user"
	"github.com/edulane/edulane/internal/shared/db"
	"github.com/edulane/edulane/internal/shared/logger"
)

var testNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func testLogger() logger.Interface {
	return logger.NewLogger()
}

// testTxManager wraps an in-memory database so RunInTransaction has a real
// transaction to open. The fakes below keep their state in memory and simply
// run inside it.
func testTxManager(t *testing.T) *db.TransactionManager {
	t.Helper()
	gormDB, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	return db.NewTransactionManager(gormDB)
}

type lessonKey struct {
	studentID uint
	lessonID  uint
}

// fakeProgressRepo honors the UpsertCompletion contract: firstCompletion is
// true only on the false-to-true transition.
type fakeProgressRepo struct {
	mu      sync.Mutex
	records map[lessonKey]*progress.Record
	nextID  uint
}

func newFakeProgressRepo() *fakeProgressRepo {
	return &fakeProgressRepo{records: make(map[lessonKey]*progress.Record), nextID: 1}
}

func (r *fakeProgressRepo) GetByStudentAndLesson(ctx context.Context, studentID, lessonID uint) (*progress.Record, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.records[lessonKey{studentID, lessonID}], nil
}

func (r *fakeProgressRepo) ListByStudentAndCourse(ctx context.Context, studentID, courseID uint) ([]*progress.Record, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []*progress.Record
	for key, record := range r.records {
		if key.studentID == studentID && record.CourseID() == courseID {
			out = append(out, record)
		}
	}
	return out, nil
}

func (r *fakeProgressRepo) UpsertCompletion(ctx context.Context, studentID, lessonID, courseID uint, completed bool, lastPosition int, watchedAt time.Time) (*progress.Record, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := lessonKey{studentID, lessonID}
	existing := r.records[key]

	wasCompleted := existing != nil && existing.Completed()
	nowCompleted := wasCompleted || completed

	id := r.nextID
	if existing != nil {
		id = existing.ID()
	} else {
		r.nextID++
	}

	record, err := progress.ReconstructRecord(
		id, studentID, lessonID, courseID,
		nowCompleted, lastPosition, watchedAt, watchedAt, watchedAt,
	)
	if err != nil {
		return nil, false, err
	}
	r.records[key] = record
	return record, completed && !wasCompleted, nil
}

// fakeUserRepo tracks reward balances only.
type fakeUserRepo struct {
	mu     sync.Mutex
	points map[uint]int64
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{points: make(map[uint]int64)}
}

func (r *fakeUserRepo) Create(ctx context.Context, u *user.User) error               { return nil }
func (r *fakeUserRepo) GetByID(ctx context.Context, id uint) (*user.User, error)     { return nil, nil }
func (r *fakeUserRepo) GetByEmail(ctx context.Context, e string) (*user.User, error) { return nil, nil }

func (r *fakeUserRepo) IncrementRewardPoints(ctx context.Context, userID uint, points int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.points[userID] += points
	return nil
}

func (r *fakeUserRepo) balance(userID uint) int64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.points[userID]
}

// fakeAccessRepo holds approved records; tests that need denial just leave it
// empty.
type fakeAccessRepo struct {
	records map[lessonKey]*access.AccessRecord
}

func newFakeAccessRepo() *fakeAccessRepo {
	return &fakeAccessRepo{records: make(map[lessonKey]*access.AccessRecord)}
}

func (r *fakeAccessRepo) Create(ctx context.Context, record *access.AccessRecord) error {
	r.records[lessonKey{record.StudentID(), record.CourseID()}] = record
	return nil
}

func (r *fakeAccessRepo) Update(ctx context.Context, record *access.AccessRecord) error {
	r.records[lessonKey{record.StudentID(), record.CourseID()}] = record
	return nil
}

func (r *fakeAccessRepo) Upsert(ctx context.Context, record *access.AccessRecord) error {
	r.records[lessonKey{record.StudentID(), record.CourseID()}] = record
	return nil
}

func (r *fakeAccessRepo) GetByStudentAndCourse(ctx context.Context, studentID, courseID uint) (*access.AccessRecord, error) {
	return r.records[lessonKey{studentID, courseID}], nil
}

func (r *fakeAccessRepo) ListByStudent(ctx context.Context, studentID uint) ([]*access.AccessRecord, error) {
	return nil, nil
}

func (r *fakeAccessRepo) ListByCourse(ctx context.Context, courseID uint) ([]*access.AccessRecord, error) {
	return nil, nil
}

func (r *fakeAccessRepo) DeleteByStudentAndCourse(ctx context.Context, studentID, courseID uint) error {
	delete(r.records, lessonKey{studentID, courseID})
	return nil
}

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

func seedFreeCourse(t *testing.T, courseRepo *fakeCourseRepo, courseID uint) {
	t.Helper()
	crs, err := course.ReconstructCourse(
		courseID, 2,
		"Go Fundamentals", "desc", "<p>desc</p>",
		0,
		coursevo.SubscriptionFree,
		nil, nil, nil,
		true,
		testNow.AddDate(0, -1, 0), testNow.AddDate(0, -1, 0),
	)
	require.NoError(t, err)
	courseRepo.courses[courseID] = crs
}

func seedPaidCourseWithTrialLesson(t *testing.T, courseRepo *fakeCourseRepo, courseID, trialLessonID uint) {
	t.Helper()
	crs, err := course.ReconstructCourse(
		courseID, 2,
		"Go Fundamentals", "desc", "<p>desc</p>",
		5000,
		coursevo.SubscriptionPaid,
		nil, &trialLessonID, nil,
		true,
		testNow.AddDate(0, -1, 0), testNow.AddDate(0, -1, 0),
	)
	require.NoError(t, err)
	courseRepo.courses[courseID] = crs
}

func seedLesson(t *testing.T, courseRepo *fakeCourseRepo, lessonID, courseID uint, position int) {
	t.Helper()
	lesson, err := course.ReconstructLesson(
		lessonID, courseID,
		"Lesson", "content", "", position,
		testNow.AddDate(0, -1, 0), testNow.AddDate(0, -1, 0),
	)
	require.NoError(t, err)
	courseRepo.lessons[lessonID] = lesson
}

func seedApprovedAccess(t *testing.T, accessRepo *fakeAccessRepo, studentID, courseID uint) {
	t.Helper()
	record, err := access.NewApprovedAccessRecord(studentID, courseID, nil, access.Window{Start: testNow.AddDate(0, -1, 0)}, testNow.AddDate(0, -1, 0))
	require.NoError(t, err)
	require.NoError(t, accessRepo.Create(context.Background(), record))
}
