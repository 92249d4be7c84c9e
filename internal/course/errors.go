package course

import (
	"errors"
	"fmt"
)

// ErrUnauthorized is matched (errors.Is) by a StatusError carrying HTTP 401.
var ErrUnauthorized = errors.New("course: unauthorized")

// StatusError is returned when the course service answers with a non-2xx status.
type StatusError struct {
	Op   string // "list" or "delete"
	Code int
	Body string
}

func (e *StatusError) Error() string {
	if e.Body != "" {
		return fmt.Sprintf("course %s: unexpected status %d: %s", e.Op, e.Code, e.Body)
	}
	return fmt.Sprintf("course %s: unexpected status %d", e.Op, e.Code)
}

// Unwrap exposes ErrUnauthorized for 401 responses.
func (e *StatusError) Unwrap() error {
	if e.Code == 401 {
		return ErrUnauthorized
	}
	return nil
}

// IsUnauthorized reports whether err is an authorization-denied response.
func IsUnauthorized(err error) bool {
	return errors.Is(err, ErrUnauthorized)
}
