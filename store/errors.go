package store

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when a requested row does not exist. Handlers
// map it to a distinct not-found response, never a transport failure.
var ErrNotFound = errors.New("not found")

// ValidationError reports a missing or invalid user-supplied field. The
// write is not attempted.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s is required", e.Field)
}

// UploadError reports a rejected blob upload.
type UploadError struct {
	Reason string
	Err    error
}

func (e *UploadError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("upload failed: %s: %v", e.Reason, e.Err)
	}
	return "upload failed: " + e.Reason
}

func (e *UploadError) Unwrap() error { return e.Err }
