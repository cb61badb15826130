// Package common defines shared constants and sentinel errors used across
// the medtrack client layers. Callers should use errors.Is to match these
// values.
package common

import "errors"

var (
	// Session / gating errors.
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrForbidden       = errors.New("forbidden")

	// Local validation errors, resolved before any network call.
	ErrValidation = errors.New("validation error")
	ErrNotFound   = errors.New("not found")

	// ErrCancelled is returned when the user declines the confirmation
	// prompt guarding a destructive operation.
	ErrCancelled = errors.New("cancelled")
)
