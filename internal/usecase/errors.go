package usecase

import "fmt"

// ValidationError reports caller input that was rejected before any store
// access.
type ValidationError struct {
	Field string
	Msg   string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

// InternalError wraps a store failure. Its message is static so callers can
// surface it without leaking the cause; the cause stays reachable through
// Unwrap for logging.
type InternalError struct {
	Op  string
	Err error
}

func (e *InternalError) Error() string {
	return "there was an error"
}

func (e *InternalError) Unwrap() error {
	return e.Err
}

// Detail is meant for logs only.
func (e *InternalError) Detail() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

var ErrInvalidPage = &ValidationError{
	Field: "page",
	Msg:   "page must be a positive number",
}
