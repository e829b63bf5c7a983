package access

import "context"

// Repository persists access records. Get returns (nil, nil) when no record
// exists; absence is a domain state (reason no_record), not an error.
type Repository interface {
	Create(ctx context.Context, record *AccessRecord) error
	// Update writes the record as a single atomic row update guarded by the
	// aggregate version; concurrent admin writes resolve last-write-wins
	// without ever exposing a partially applied record.
	Update(ctx context.Context, record *AccessRecord) error
	// Upsert creates or overwrites the record for its (student, course) pair.
	Upsert(ctx context.Context, record *AccessRecord) error
	GetByStudentAndCourse(ctx context.Context, studentID, courseID uint) (*AccessRecord, error)
	ListByStudent(ctx context.Context, studentID uint) ([]*AccessRecord, error)
	ListByCourse(ctx context.Context, courseID uint) ([]*AccessRecord, error)
	DeleteByStudentAndCourse(ctx context.Context, studentID, courseID uint) error
}
