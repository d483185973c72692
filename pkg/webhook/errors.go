package webhook

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrDeliveryFailed: the endpoint answered non-2xx.
	ErrDeliveryFailed       = errors.New("webhook delivery failed")
	// ErrInvalidConfiguration: signing was requested without a secret.
	ErrInvalidConfiguration = errors.New("invalid webhook configuration")
	// ErrInvalidPayload: the payload could not be encoded.
	ErrInvalidPayload       = errors.New("invalid webhook payload")
	// ErrInvalidURL: the target is not an absolute http(s) URL.
	ErrInvalidURL           = errors.New("invalid webhook URL")
	// ErrTimeout: the request exceeded its deadline.
	ErrTimeout              = errors.New("webhook request timeout")
)

// StatusError is returned when the endpoint answers with a non-2xx status.
type StatusError struct {
	StatusCode int
	Body       []byte
}

// Error includes the status code and a trimmed response body.
func (e *StatusError) Error() string {
	msg := fmt.Sprintf("webhook returned status %d", e.StatusCode)
	if len(e.Body) == 0 {
		return msg
	}
	// Single line keeps log output intact.
	body := strings.ReplaceAll(string(e.Body), "\n", " ")
	if len(body) > 200 {
		body = body[:200] + "..."
	}
	return msg + ": " + body
}

// Unwrap makes StatusError match ErrDeliveryFailed.
func (e *StatusError) Unwrap() error { return ErrDeliveryFailed }
