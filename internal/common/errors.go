// Package common defines shared constants and sentinel errors used across
// the Stakeboard server layers. Callers should use errors.Is to match these
// values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors (generic/internal flow control).
	ErrorInternal = errors.New("internal error")

	// Signup: the email already has an account. Produced both by the
	// pre-insert lookup and by the unique constraint on insert.
	ErrorAlreadyRegistered = errors.New("email already registered")

	// Login: unknown email and wrong password collapse to this single value
	// so responses cannot be used to probe which emails are registered.
	ErrorInvalidCredentials = errors.New("invalid email or password")

	// Auth errors (invalid, malformed or expired token).
	ErrInvalidToken = errors.New("invalid token")
)
