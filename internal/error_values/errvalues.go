package errorvalues

import "errors"

var (
	ErrParentExists     = errors.New("such parent already exists")
	ErrParentNotFound   = errors.New("parent doesn't exist")
	ErrWrongCredentials = errors.New("wrong name or password")
	ErrInvalidToken     = errors.New("invalid token")

	ErrChildNotFound = errors.New("child doesn't exist")
	ErrWrongOwner    = errors.New("child belongs to a different parent")

	ErrChallengeExists   = errors.New("challenge already assigned for this slot")
	ErrChallengeNotFound = errors.New("challenge doesn't exist")

	// ErrValidation is the base for all input validation failures; field
	// errors are joined onto it so callers can match with errors.Is
	ErrValidation = errors.New("validation error")
)
