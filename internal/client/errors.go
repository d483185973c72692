package client

import (
	"errors"
	"fmt"
)

// DefaultFailureMessage is used when the endpoint gives no reason.
const DefaultFailureMessage = "Failed to submit form"

var (
	// ErrNotConfigured means no strategy in the chain has usable credentials.
	ErrNotConfigured   = errors.New("client: no contact strategy configured")
	// ErrInvalidResponse: a 2xx answer whose body is not the expected JSON.
	ErrInvalidResponse = errors.New("client: invalid response")
	// ErrUnknownMode: CONTACT_MODE names no known chain.
	ErrUnknownMode     = errors.New("client: unknown contact mode")
)

// RejectedError is returned when an endpoint answers with a non-2xx status.
// Message is safe to show to the visitor.
type RejectedError struct {
	Strategy   string
	StatusCode int
	Message    string
	Err        error
}

// Error returns the user-facing message.
func (e *RejectedError) Error() string {
	return e.Message
}

// Unwrap returns the transport or status error behind the rejection.
func (e *RejectedError) Unwrap() error { return e.Err }

// Detail includes the strategy and status for logs.
func (e *RejectedError) Detail() string {
	return fmt.Sprintf("%s: status %d: %s", e.Strategy, e.StatusCode, e.Message)
}

// AsRejected returns the RejectedError in err's chain, if any.
func AsRejected(err error) (*RejectedError, bool) {
	var re *RejectedError
	if errors.As(err, &re) {
		return re, true
	}
	return nil, false
}
