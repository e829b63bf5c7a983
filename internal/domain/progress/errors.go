package progress

import "errors"

var (
	ErrRecordNotFound = errors.New("progress record not found")
)
