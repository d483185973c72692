// Package statemachine provides a small finite-state machine used to model
// UI-like workflows such as the contact form modal.
//
// States and events are plain strings. Transitions are declared up front
// with functional options and looked up by (current state, event).
//
// # Quick Start
//
//	const (
//	    Closed = statemachine.State("closed")
//	    Open   = statemachine.State("open")
//	    Toggle = statemachine.Event("toggle")
//	)
//
//	sm, err := statemachine.New(Closed,
//	    statemachine.WithTransition(Closed, Open, Toggle),
//	    statemachine.WithTransition(Open, Closed, Toggle),
//	)
//	if err != nil {
//	    return err
//	}
//
//	err = sm.Fire(ctx, Toggle, nil) // Closed -> Open
//
// # Guards
//
// WithGuard attaches predicates to a transition; all of them must pass.
// Several transitions may share a (state, event) pair, in which case the
// first one whose guards pass wins:
//
//	statemachine.WithTransition(Editing, Submitting, Submit,
//	    statemachine.WithGuard(func(ctx context.Context, from statemachine.State, ev statemachine.Event, data any) bool {
//	        sub, ok := data.(Submission)
//	        return ok && sub.Complete()
//	    }),
//	)
//
// The data argument of Fire is handed to guards and actions unchanged.
//
// # Actions
//
// WithAction attaches side effects that run in order before the state
// changes. An action error aborts the transition and the machine stays in
// its current state.
//
// # Observers
//
// WithObserver registers callbacks invoked after every successful
// transition with the old and new state. Observers run after the machine
// lock is released, so they may inspect the machine, but they must not
// assume the state is still the one they were handed.
//
// # Errors
//
// Fire distinguishes two refusals:
//
//   - *NoTransitionError: the event is not defined for the current state
//     (see IsNoTransition)
//   - *RejectedError: a transition exists but every guard set refused it
//     (see IsRejected)
//
// CanFire runs the same lookup without changing state, which is handy for
// events that are only sometimes meaningful, such as closing a form that
// may already be closed.
//
// # Concurrency
//
// The machine is safe for concurrent use. Guards and actions run while the
// machine lock is held, so they must not call back into the same machine.
package statemachine
