package health

import "errors"

var (
	// ErrCheckFailed wraps a failing readiness check.
	ErrCheckFailed  = errors.New("health: check failed")
	// ErrCheckTimeout: a check did not return within the timeout.
	ErrCheckTimeout = errors.New("health: check timeout")
)
