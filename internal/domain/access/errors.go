package access

import "errors"

var (
	ErrRecordNotFound          = errors.New("access record not found")
	ErrDuplicateRequest        = errors.New("access request already exists")
	ErrInvalidWindow           = errors.New("invalid access window")
	ErrInvalidPeriodToken      = errors.New("invalid period token")
	ErrInvalidStatusTransition = errors.New("invalid status transition")
)
