// Package progress tracks per-lesson viewing state. The completed flag flips
// false to true at most once through the public API; that first transition is
// the only event that triggers a reward.
package progress

import (
	"fmt"
	"time"
)

// Record is one student's progress on one lesson. Exactly one record exists
// per (student, lesson) pair; the store enforces uniqueness.
type Record struct {
	id           uint
	studentID    uint
	lessonID     uint
	courseID     uint
	completed    bool
	lastPosition int // playback position in seconds
	watchedAt    time.Time
	createdAt    time.Time
	updatedAt    time.Time
}

// NewRecord creates a progress record on first contact with a lesson.
func NewRecord(studentID, lessonID, courseID uint, completed bool, lastPosition int, now time.Time) (*Record, error) {
	if studentID == 0 {
		return nil, fmt.Errorf("student ID is required")
	}
	if lessonID == 0 {
		return nil, fmt.Errorf("lesson ID is required")
	}
	if lastPosition < 0 {
		return nil, fmt.Errorf("position cannot be negative")
	}

	return &Record{
		studentID:    studentID,
		lessonID:     lessonID,
		courseID:     courseID,
		completed:    completed,
		lastPosition: lastPosition,
		watchedAt:    now,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

// ReconstructRecord reconstructs a progress record from persistence.
func ReconstructRecord(id, studentID, lessonID, courseID uint, completed bool, lastPosition int, watchedAt, createdAt, updatedAt time.Time) (*Record, error) {
	if id == 0 {
		return nil, fmt.Errorf("progress record ID cannot be zero")
	}
	if studentID == 0 {
		return nil, fmt.Errorf("student ID is required")
	}
	if lessonID == 0 {
		return nil, fmt.Errorf("lesson ID is required")
	}
	return &Record{
		id:           id,
		studentID:    studentID,
		lessonID:     lessonID,
		courseID:     courseID,
		completed:    completed,
		lastPosition: lastPosition,
		watchedAt:    watchedAt,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}, nil
}

func (r *Record) ID() uint             { return r.id }
func (r *Record) StudentID() uint      { return r.studentID }
func (r *Record) LessonID() uint       { return r.lessonID }
func (r *Record) CourseID() uint       { return r.courseID }
func (r *Record) Completed() bool      { return r.completed }
func (r *Record) LastPosition() int    { return r.lastPosition }
func (r *Record) WatchedAt() time.Time { return r.watchedAt }
func (r *Record) CreatedAt() time.Time { return r.createdAt }
func (r *Record) UpdatedAt() time.Time { return r.updatedAt }
