package models

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned by storage lookups for absent records. Stores wrap
// it with context; callers test with errors.Is.
var ErrNotFound = errors.New("not found")

// ValidationError reports a required profile field that is missing or out of
// its documented range. Raised before any external call is made and never
// retried.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid profile: %s", e.Reason)
}

// ExternalServiceError reports that the text-generation call itself could not
// be completed (transport or auth failure). Malformed content is not an
// error — it degrades to a raw fallback instead.
type ExternalServiceError struct {
	Op  string
	Err error
}

func (e *ExternalServiceError) Error() string {
	return fmt.Sprintf("external service %s failed: %v", e.Op, e.Err)
}

func (e *ExternalServiceError) Unwrap() error {
	return e.Err
}
