// Package apperrors defines the error taxonomy shared by services and handlers.
// Services wrap these sentinels with context; handlers map them to HTTP codes.
package apperrors

import "errors"

var (
	// ErrNotFound - requested record does not exist (404)
	ErrNotFound = errors.New("not found")

	// ErrConflict - uniqueness violation (400)
	ErrConflict = errors.New("already exists")

	// ErrInvalidCredentials - login failed (401)
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrUnauthenticated - no token presented (401)
	ErrUnauthenticated = errors.New("authentication required")

	// ErrInvalidToken - signature, expiry, or principal resolution failed (401)
	ErrInvalidToken = errors.New("invalid token")

	// ErrForbidden - caller does not own the record (403)
	ErrForbidden = errors.New("forbidden")

	// ErrValidation - malformed or missing input (400)
	ErrValidation = errors.New("validation failed")
)
