package domain

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound           = errors.New("project not found")
	ErrBackendUnavailable = errors.New("document store credentials missing or invalid")
)

// ValidationError reports a missing or empty required input field.
// It is user-correctable and maps to HTTP 400.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s is required", e.Field)
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// StoreError wraps an unexpected failure from the document store.
// The gateway is the only layer that produces these; callers above it
// never see raw store errors.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error { return e.Err }
