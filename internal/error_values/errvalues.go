package errorvalues

import "errors"

var (
	ErrInvalidTask         = errors.New("invalid task")
	ErrTaskNotFound        = errors.New("task doesn't exist")
	ErrTaskAlreadyComplete = errors.New("task already completed")
	ErrUserNotFound        = errors.New("user doesn't exists")
	ErrNegativePoints      = errors.New("points total can't be negative")
)
