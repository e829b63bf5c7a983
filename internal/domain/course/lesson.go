package course

import (
	"fmt"
	"time"
)

// Lesson is a unit of course content. Ordering within a course follows position.
type Lesson struct {
	id        uint
	courseID  uint
	title     string
	content   string
	videoURL  string
	position  int
	createdAt time.Time
	updatedAt time.Time
}

// NewLesson creates a new lesson within a course.
func NewLesson(courseID uint, title, content, videoURL string, position int) (*Lesson, error) {
	if courseID == 0 {
		return nil, fmt.Errorf("course ID is required")
	}
	if title == "" {
		return nil, fmt.Errorf("title is required")
	}
	if position < 0 {
		return nil, fmt.Errorf("position cannot be negative")
	}

	now := time.Now().UTC()
	return &Lesson{
		courseID:  courseID,
		title:     title,
		content:   content,
		videoURL:  videoURL,
		position:  position,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// ReconstructLesson reconstructs a lesson from persistence.
func ReconstructLesson(id, courseID uint, title, content, videoURL string, position int, createdAt, updatedAt time.Time) (*Lesson, error) {
	if id == 0 {
		return nil, fmt.Errorf("lesson ID cannot be zero")
	}
	if courseID == 0 {
		return nil, fmt.Errorf("course ID is required")
	}
	return &Lesson{
		id:        id,
		courseID:  courseID,
		title:     title,
		content:   content,
		videoURL:  videoURL,
		position:  position,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}, nil
}

func (l *Lesson) ID() uint             { return l.id }
func (l *Lesson) CourseID() uint       { return l.courseID }
func (l *Lesson) Title() string        { return l.title }
func (l *Lesson) Content() string      { return l.content }
func (l *Lesson) VideoURL() string     { return l.videoURL }
func (l *Lesson) Position() int        { return l.position }
func (l *Lesson) CreatedAt() time.Time { return l.createdAt }
func (l *Lesson) UpdatedAt() time.Time { return l.updatedAt }

// SetID sets the lesson ID (only for persistence layer use)
func (l *Lesson) SetID(id uint) error {
	if l.id != 0 {
		return fmt.Errorf("lesson ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("lesson ID cannot be zero")
	}
	l.id = id
	return nil
}
