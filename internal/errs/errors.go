package errs

import "errors"

// Shared error kinds returned by the core services. Handlers translate
// these into HTTP status codes; anything unrecognized is reported as an
// internal error.
var (
	ErrInvalidInput    = errors.New("invalid input")
	ErrNotFound        = errors.New("not found")
	ErrForbidden       = errors.New("forbidden")
	ErrItemUnavailable = errors.New("item unavailable")
	ErrInvalidState    = errors.New("invalid state")
	ErrInternal        = errors.New("internal error")
)
