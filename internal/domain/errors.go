package domain

import "errors"

var (
	ErrEventNotFound      = errors.New("event not found")
	ErrEnrollmentNotFound = errors.New("participant is not enrolled in this event")
	ErrCommentNotFound    = errors.New("comment not found")
	ErrCategoryNotFound   = errors.New("category not found")
)

var (
	ErrAlreadyEnrolled  = errors.New("user is already enrolled in this event")
	ErrCapacityExceeded = errors.New("event has reached its maximum capacity")
)

var (
	ErrAlreadyRated    = errors.New("event has already been rated by this user")
	ErrAlreadyReported = errors.New("target has already been reported by this user")
	ErrAlreadyDisabled = errors.New("target is already disabled")
	ErrNotDisabled     = errors.New("target is not disabled")
)

var (
	ErrPermissionDenied = errors.New("permission denied")
	ErrNotAttended      = errors.New("attendance for this event is required")
)

var (
	ErrValidation = errors.New("validation error")
)
