package course

import "errors"

var (
	ErrCourseNotFound  = errors.New("course not found")
	ErrLessonNotFound  = errors.New("lesson not found")
	ErrCourseHidden    = errors.New("course is not visible")
	ErrPriceNotSet     = errors.New("no price configured for the requested period")
	ErrNotSubscribable = errors.New("course has no paid subscription model")
)
