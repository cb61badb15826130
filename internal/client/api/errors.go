package api

import "errors"

var (
	// ErrUnavailable marks transport-level failures: the request never
	// produced a server response.
	ErrUnavailable = errors.New("server unavailable")

	// ErrUnauthorized is returned when the server rejects the bearer
	// credential.
	ErrUnauthorized = errors.New("unauthorized")
)

// RejectedError carries the server's own failure message for a
// non-success response. The message is surfaced verbatim.
type RejectedError struct {
	Message string
}

func (e *RejectedError) Error() string {
	return e.Message
}
