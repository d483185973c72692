package app

import (
	"errors"
	"net/http"
)

// HTTPError carries a status code, a public message and a hidden cause.
type HTTPError struct {
	// Err is the underlying error. It is logged, never rendered.
	Err error

	// Message is the user-facing error message.
	Message string

	// Code is the HTTP status code.
	Code int
}

// Error returns the client-facing message.
func (e *HTTPError) Error() string {
	return e.Message
}

// Unwrap returns the internal cause, if any.
func (e *HTTPError) Unwrap() error {
	return e.Err
}

// StatusCode returns the HTTP status the error renders with.
func (e *HTTPError) StatusCode() int {
	return e.Code
}

// HTTPErrorOption configures an HTTPError.
type HTTPErrorOption func(*HTTPError)

// WithError attaches the underlying cause.
func WithError(err error) HTTPErrorOption {
	return func(e *HTTPError) {
		e.Err = err
	}
}

// NewHTTPError creates an HTTPError.
func NewHTTPError(code int, message string, opts ...HTTPErrorOption) *HTTPError {
	e := &HTTPError{Code: code, Message: message}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// ErrBadRequest builds a 400 error carrying message.
func ErrBadRequest(message string, opts ...HTTPErrorOption) *HTTPError {
	return NewHTTPError(http.StatusBadRequest, message, opts...)
}

// ErrNotFound builds a 404 error carrying message.
func ErrNotFound(message string, opts ...HTTPErrorOption) *HTTPError {
	return NewHTTPError(http.StatusNotFound, message, opts...)
}

// ErrMethodNotAllowed builds a 405 error carrying message.
func ErrMethodNotAllowed(message string, opts ...HTTPErrorOption) *HTTPError {
	return NewHTTPError(http.StatusMethodNotAllowed, message, opts...)
}

// ErrInternal builds a 500 error carrying message.
// Pass WithCause to keep the underlying error for logs.
func ErrInternal(message string, opts ...HTTPErrorOption) *HTTPError {
	return NewHTTPError(http.StatusInternalServerError, message, opts...)
}

// AsHTTPError returns the first HTTPError in err's chain, or nil.
func AsHTTPError(err error) *HTTPError {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr
	}
	return nil
}

// ErrorBody is the JSON shape of every error response.
type ErrorBody struct {
	Error string `json:"error"`
}

// JSONErrorHandler renders errors as {"error": message}. Errors that are not
// HTTPErrors become 500 "Internal server error". Causes of 5xx responses are
// logged.
func JSONErrorHandler(c Context, err error) error {
	httpErr := AsHTTPError(err)
	if httpErr == nil {
		httpErr = ErrInternal("Internal server error", WithError(err))
	}

	if httpErr.Code >= http.StatusInternalServerError {
		cause := httpErr.Err
		if cause == nil {
			cause = httpErr
		}
		c.LogError("request failed",
			"status", httpErr.Code,
			"method", c.Request().Method,
			"path", c.Request().URL.Path,
			"error", cause.Error(),
		)
	}

	return c.JSON(httpErr.Code, ErrorBody{Error: httpErr.Message})
}
