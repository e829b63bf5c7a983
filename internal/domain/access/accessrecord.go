package access

import (
	"fmt"
	"time"

	vo "github.com/edulane/edulane/internal/domain/access/valueobjects"
)

// AccessRecord is the aggregate tracking one student's enrollment in one
// course: the request state machine plus the validity window. Exactly one
// record exists per (student, course) pair; the store enforces uniqueness.
//
// A nil approvedBy on an approved record means the approval was made by the
// system (free-course shortcut or a paid extension), not by an admin.
type AccessRecord struct {
	id          uint
	studentID   uint
	courseID    uint
	status      vo.Status
	requestedAt time.Time
	approvedAt  *time.Time
	approvedBy  *uint
	accessStart *time.Time
	accessEnd   *time.Time
	version     int
	createdAt   time.Time
	updatedAt   time.Time
}

// NewAccessRequest creates a pending record for a student requesting a course.
func NewAccessRequest(studentID, courseID uint, now time.Time) (*AccessRecord, error) {
	if studentID == 0 {
		return nil, fmt.Errorf("student ID is required")
	}
	if courseID == 0 {
		return nil, fmt.Errorf("course ID is required")
	}

	return &AccessRecord{
		studentID:   studentID,
		courseID:    courseID,
		status:      vo.StatusPending,
		requestedAt: now,
		version:     1,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

// NewApprovedAccessRecord creates a record born approved: the free-course
// shortcut and direct admin assignment. approvedBy nil means system.
func NewApprovedAccessRecord(studentID, courseID uint, approvedBy *uint, window Window, now time.Time) (*AccessRecord, error) {
	if studentID == 0 {
		return nil, fmt.Errorf("student ID is required")
	}
	if courseID == 0 {
		return nil, fmt.Errorf("course ID is required")
	}
	if err := window.Validate(); err != nil {
		return nil, err
	}

	start := window.Start
	approvedAt := now
	return &AccessRecord{
		studentID:   studentID,
		courseID:    courseID,
		status:      vo.StatusApproved,
		requestedAt: now,
		approvedAt:  &approvedAt,
		approvedBy:  approvedBy,
		accessStart: &start,
		accessEnd:   window.End,
		version:     1,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

// ReconstructAccessRecord reconstructs a record from persistence.
func ReconstructAccessRecord(
	id, studentID, courseID uint,
	status vo.Status,
	requestedAt time.Time,
	approvedAt *time.Time,
	approvedBy *uint,
	accessStart, accessEnd *time.Time,
	version int,
	createdAt, updatedAt time.Time,
) (*AccessRecord, error) {
	if id == 0 {
		return nil, fmt.Errorf("access record ID cannot be zero")
	}
	if studentID == 0 {
		return nil, fmt.Errorf("student ID is required")
	}
	if courseID == 0 {
		return nil, fmt.Errorf("course ID is required")
	}
	if !vo.ValidStatuses[status] {
		return nil, fmt.Errorf("invalid access status: %s", status)
	}
	if status == vo.StatusApproved && accessStart == nil {
		return nil, fmt.Errorf("approved record must have an access start date")
	}
	if accessStart != nil && accessEnd != nil && accessEnd.Before(*accessStart) {
		return nil, fmt.Errorf("%w: end before start", ErrInvalidWindow)
	}

	return &AccessRecord{
		id:          id,
		studentID:   studentID,
		courseID:    courseID,
		status:      status,
		requestedAt: requestedAt,
		approvedAt:  approvedAt,
		approvedBy:  approvedBy,
		accessStart: accessStart,
		accessEnd:   accessEnd,
		version:     version,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}, nil
}

func (r *AccessRecord) ID() uint                { return r.id }
func (r *AccessRecord) StudentID() uint         { return r.studentID }
func (r *AccessRecord) CourseID() uint          { return r.courseID }
func (r *AccessRecord) Status() vo.Status       { return r.status }
func (r *AccessRecord) RequestedAt() time.Time  { return r.requestedAt }
func (r *AccessRecord) ApprovedAt() *time.Time  { return r.approvedAt }
func (r *AccessRecord) ApprovedBy() *uint       { return r.approvedBy }
func (r *AccessRecord) AccessStart() *time.Time { return r.accessStart }
func (r *AccessRecord) AccessEnd() *time.Time   { return r.accessEnd }
func (r *AccessRecord) Version() int            { return r.version }
func (r *AccessRecord) CreatedAt() time.Time    { return r.createdAt }
func (r *AccessRecord) UpdatedAt() time.Time    { return r.updatedAt }

// SetID sets the record ID (only for persistence layer use)
func (r *AccessRecord) SetID(id uint) error {
	if r.id != 0 {
		return fmt.Errorf("access record ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("access record ID cannot be zero")
	}
	r.id = id
	return nil
}

// Approve moves the record into approved with the computed window. The status
// change and the window are applied together; callers persist the record as a
// single write so no intermediate state is observable.
func (r *AccessRecord) Approve(adminID uint, window Window, now time.Time) error {
	if err := window.Validate(); err != nil {
		return err
	}
	if r.status != vo.StatusApproved && !r.status.CanTransitionTo(vo.StatusApproved) {
		return fmt.Errorf("%w: from %s to %s", ErrInvalidStatusTransition, r.status, vo.StatusApproved)
	}

	start := window.Start
	approvedAt := now
	r.status = vo.StatusApproved
	r.approvedAt = &approvedAt
	if adminID != 0 {
		adminCopy := adminID
		r.approvedBy = &adminCopy
	} else {
		r.approvedBy = nil
	}
	r.accessStart = &start
	r.accessEnd = window.End
	r.updatedAt = now
	r.version++
	return nil
}

// Reject declines the request. Approval metadata and the window are cleared;
// once rejected the window fields carry no authority.
func (r *AccessRecord) Reject(now time.Time) error {
	if r.status == vo.StatusRejected {
		return nil
	}
	if !r.status.CanTransitionTo(vo.StatusRejected) {
		return fmt.Errorf("%w: from %s to %s", ErrInvalidStatusTransition, r.status, vo.StatusRejected)
	}

	r.status = vo.StatusRejected
	r.approvedAt = nil
	r.approvedBy = nil
	r.accessStart = nil
	r.accessEnd = nil
	r.updatedAt = now
	r.version++
	return nil
}

// Reopen returns a rejected record to pending when the student requests again.
// The original requestedAt is kept; it marks the first request.
func (r *AccessRecord) Reopen(now time.Time) error {
	if !r.status.CanTransitionTo(vo.StatusPending) {
		return fmt.Errorf("%w: from %s to %s", ErrInvalidStatusTransition, r.status, vo.StatusPending)
	}

	r.status = vo.StatusPending
	r.approvedAt = nil
	r.approvedBy = nil
	r.accessStart = nil
	r.accessEnd = nil
	r.updatedAt = now
	r.version++
	return nil
}

// Extend applies a purchased period: the window end moves to newEnd and the
// record (re)activates regardless of its previous status. The start date is
// never overwritten once set.
func (r *AccessRecord) Extend(newEnd time.Time, now time.Time) error {
	start := now
	if r.accessStart != nil {
		start = *r.accessStart
	}
	if newEnd.Before(start) {
		return fmt.Errorf("%w: new end %s before start %s", ErrInvalidWindow, newEnd, start)
	}

	if r.status != vo.StatusApproved {
		approvedAt := now
		r.approvedAt = &approvedAt
		// Paid extension is a system action, not an admin decision.
		r.approvedBy = nil
	}
	r.status = vo.StatusApproved
	r.accessStart = &start
	r.accessEnd = &newEnd
	r.updatedAt = now
	r.version++
	return nil
}

// CurrentWindow returns the record's window. Only meaningful when approved.
func (r *AccessRecord) CurrentWindow() (Window, bool) {
	if r.accessStart == nil {
		return Window{}, false
	}
	return Window{Start: *r.accessStart, End: r.accessEnd}, true
}

// DecideAt evaluates the course-level access rules for this record at now.
// Trial-lesson overrides and owner/admin bypass live above this level.
func (r *AccessRecord) DecideAt(now time.Time) Decision {
	switch r.status {
	case vo.StatusPending:
		return Denied(vo.ReasonPending)
	case vo.StatusRejected:
		return Denied(vo.ReasonRejected)
	}

	// Approved: the window decides. Expiry is checked before the start so a
	// lapsed subscriber is told to renew, not to wait.
	window, ok := r.CurrentWindow()
	if !ok || window.Contains(now) {
		return Granted()
	}
	if window.End != nil && !now.Before(*window.End) {
		return Denied(vo.ReasonExpired)
	}
	return Denied(vo.ReasonNotStarted)
}
