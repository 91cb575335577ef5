package shared

import "errors"

var (
	// ErrInvalidCredential indicates the external identity assertion was rejected.
	ErrInvalidCredential = errors.New("invalid credential")
	// ErrUnauthenticated indicates a missing, invalid, or expired session token.
	ErrUnauthenticated = errors.New("unauthenticated")
	// ErrNotFound indicates resource not found.
	ErrNotFound = errors.New("not found")
	// ErrValidation indicates malformed input.
	ErrValidation = errors.New("validation failed")
	// ErrDuplicate indicates a unique constraint violation.
	ErrDuplicate = errors.New("duplicate entry")
)
