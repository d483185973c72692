package statemachine

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidTransition: a transition is missing from, to or event.
	ErrInvalidTransition = errors.New("statemachine: from, to and event are required")
	// ErrInvalidEvent: Fire was called with an empty event.
	ErrInvalidEvent      = errors.New("statemachine: event is required")
	// ErrNoInitialState is returned by New with an empty initial state.
	ErrNoInitialState    = errors.New("statemachine: initial state is required")
)

// NoTransitionError is returned when the current state has no transition for an event.
type NoTransitionError struct {
	State State
	Event Event
}

// Error names the event and the state it was fired in.
func (e *NoTransitionError) Error() string {
	return fmt.Sprintf("statemachine: no transition from %q on %q", e.State, e.Event)
}

// RejectedError is returned when every candidate transition was blocked by a guard.
type RejectedError struct {
	State State
	Event Event
}

// Error names the event and the state that refused it.
func (e *RejectedError) Error() string {
	return fmt.Sprintf("statemachine: transition from %q on %q rejected by guard", e.State, e.Event)
}

// IsNoTransition reports whether err is a *NoTransitionError.
func IsNoTransition(err error) bool {
	var e *NoTransitionError
	return errors.As(err, &e)
}

// IsRejected reports whether err is a *RejectedError.
func IsRejected(err error) bool {
	var e *RejectedError
	return errors.As(err, &e)
}
