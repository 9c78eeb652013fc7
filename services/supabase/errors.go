package supabase

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	ErrConfigMissing = errors.New("required configuration is missing")
	ErrEmptyResult   = errors.New("no movie returned")
)

// TransportError means the backend could not be reached or the response
// could not be read.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("supabase request failed: %v", e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// DecodeError means the backend answered with a body of unexpected shape.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to decode supabase response: %v", e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// RejectedError carries a non-2xx backend answer. Body is the raw response
// text and is safe to pass through to clients.
type RejectedError struct {
	StatusCode int
	Body       string
}

func (e *RejectedError) Error() string {
	return fmt.Sprintf("supabase rejected request with status %d: %s", e.StatusCode, e.Body)
}

type NotFoundError struct {
	ID int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("movie %d not found", e.ID)
}
