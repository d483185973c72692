package form

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/ia4it/landing/internal/client"
	"github.com/ia4it/landing/internal/contact"
	"github.com/ia4it/landing/pkg/logger"
	"github.com/ia4it/landing/pkg/statemachine"
)

const (
	// StateIdle: the form is closed.
	StateIdle       statemachine.State = "idle"
	// StateEditing: the form is open and accepts input.
	StateEditing    statemachine.State = "editing"
	// StateSubmitting: a submission is in flight; input is locked.
	StateSubmitting statemachine.State = "submitting"
	// StateSubmitted: the thank-you view is showing until the reset fires.
	StateSubmitted  statemachine.State = "submitted"
)

const (
	// EventOpen shows the form.
	EventOpen    statemachine.Event = "open"
	// EventClose hides the form without sending.
	EventClose   statemachine.Event = "close"
	// EventSubmit starts a send; guarded by field validation.
	EventSubmit  statemachine.Event = "submit"
	// EventSucceed records an accepted submission.
	EventSucceed statemachine.Event = "succeed"
	// EventFail returns to editing with the fields intact.
	EventFail    statemachine.Event = "fail"
	// EventReset clears the fields and closes the form.
	EventReset   statemachine.Event = "reset"
)

// DefaultResetDelay is how long the thank-you view stays up.
const DefaultResetDelay = 3 * time.Second

// Field names match the JSON keys of contact.Submission.
type Field string

// Form fields, in display order.
const (
	FieldFirstName      Field = "firstName"
	FieldLastName       Field = "lastName"
	FieldEmail          Field = "email"
	FieldReferralSource Field = "referralSource"
)

// Submitter delivers a submission. *client.Service implements it.
type Submitter interface {
	Submit(ctx context.Context, sub contact.Submission) (*client.Result, error)
}

// AfterFunc schedules fn after d and returns a function that cancels it.
type AfterFunc func(d time.Duration, fn func()) (stop func() bool)

func timeAfterFunc(d time.Duration, fn func()) func() bool {
	return time.AfterFunc(d, fn).Stop
}

// Snapshot is a read-only view of the form.
type Snapshot struct {
	State      statemachine.State
	Fields     contact.Submission
	Submitting bool
	LastError  error
}

// Form is the contact modal. It is safe for concurrent use.
type Form struct {
	mu         sync.Mutex
	sm         *statemachine.Machine
	submitter  Submitter
	notifier   Notifier
	logger     *slog.Logger
	afterFunc  AfterFunc
	resetDelay time.Duration

	fields    contact.Submission
	lastErr   error
	stopReset func() bool
	// generation invalidates reset timers that fired after a close.
	generation uint64
}

// Option configures a Form.
type Option func(*Form)

// WithNotifier sets where alerts and confirmations go.
// The default is a LogNotifier on the form's logger.
func WithNotifier(n Notifier) Option {
	return func(f *Form) {
		if n != nil {
			f.notifier = n
		}
	}
}

// WithLogger sets the logger for transitions and failures.
func WithLogger(l *slog.Logger) Option {
	return func(f *Form) {
		if l != nil {
			f.logger = l
		}
	}
}

// WithAfterFunc replaces time.AfterFunc, mainly for tests.
func WithAfterFunc(fn AfterFunc) Option {
	return func(f *Form) {
		if fn != nil {
			f.afterFunc = fn
		}
	}
}

// WithResetDelay sets how long the thank-you view stays up
// before the form clears and closes. Zero or negative keeps the default.
func WithResetDelay(d time.Duration) Option {
	return func(f *Form) {
		if d >= 0 {
			f.resetDelay = d
		}
	}
}

// New creates a Form in the Idle state.
func New(submitter Submitter, opts ...Option) (*Form, error) {
	if submitter == nil {
		return nil, ErrNoSubmitter
	}

	f := &Form{
		submitter:  submitter,
		logger:     logger.NewNope(),
		afterFunc:  timeAfterFunc,
		resetDelay: DefaultResetDelay,
	}
	for _, opt := range opts {
		opt(f)
	}
	if f.notifier == nil {
		f.notifier = LogNotifier{Logger: f.logger}
	}

	// Fields are validated the way the browser does before the request
	// leaves: every field filled in and an email-shaped address.
	valid := func(_ context.Context, _ statemachine.State, _ statemachine.Event, data any) bool {
		sub, ok := data.(contact.Submission)
		return ok && sub.Complete() && contact.ValidEmail(sub.Email)
	}

	// Actions run with f.mu held by the caller of Fire.
	clearFields := func(context.Context, statemachine.State, statemachine.State, statemachine.Event, any) error {
		f.cancelReset()
		f.fields = contact.Submission{}
		return nil
	}
	schedule := func(context.Context, statemachine.State, statemachine.State, statemachine.Event, any) error {
		f.scheduleReset()
		return nil
	}

	sm, err := statemachine.New(StateIdle,
		statemachine.WithTransition(StateIdle, StateEditing, EventOpen),
		statemachine.WithTransition(StateEditing, StateIdle, EventClose),
		statemachine.WithTransition(StateEditing, StateSubmitting, EventSubmit, statemachine.WithGuard(valid)),
		statemachine.WithTransition(StateSubmitting, StateSubmitted, EventSucceed, statemachine.WithAction(schedule)),
		statemachine.WithTransition(StateSubmitting, StateEditing, EventFail),
		statemachine.WithTransition(StateSubmitted, StateIdle, EventReset, statemachine.WithAction(clearFields)),
		statemachine.WithTransition(StateSubmitted, StateIdle, EventClose, statemachine.WithAction(clearFields)),
		statemachine.WithObserver(func(ctx context.Context, from, to statemachine.State, event statemachine.Event) {
			f.logger.DebugContext(ctx, "form transition", "from", from, "to", to, "event", event)
		}),
	)
	if err != nil {
		return nil, err
	}
	f.sm = sm
	return f, nil
}

// State returns the current state.
func (f *Form) State() statemachine.State {
	return f.sm.Current()
}

// Snapshot returns the current state, fields and last error.
func (f *Form) Snapshot() Snapshot {
	f.mu.Lock()
	defer f.mu.Unlock()

	state := f.sm.Current()
	return Snapshot{
		State:      state,
		Fields:     f.fields,
		Submitting: state == StateSubmitting,
		LastError:  f.lastErr,
	}
}

// LastError returns the error of the most recent failed submission.
func (f *Form) LastError() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.lastErr
}

// Open shows the form.
func (f *Form) Open(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.sm.Fire(ctx, EventOpen, nil)
}

// SetField updates a single field. Only allowed while editing.
func (f *Form) SetField(field Field, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if !f.sm.Is(StateEditing) {
		return ErrNotEditing
	}

	switch field {
	case FieldFirstName:
		f.fields.FirstName = value
	case FieldLastName:
		f.fields.LastName = value
	case FieldEmail:
		f.fields.Email = value
	case FieldReferralSource:
		if value != "" && !contact.IsReferralSource(value) {
			return ErrInvalidReferralSource
		}
		f.fields.ReferralSource = value
	default:
		return ErrUnknownField
	}
	return nil
}

// Close hides the form. It is a no-op while a submission is in flight or
// when the form is already closed. Closing the thank-you view clears the
// fields and cancels the pending reset.
func (f *Form) Close(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if !f.sm.CanFire(ctx, EventClose, nil) {
		return nil
	}
	return f.sm.Fire(ctx, EventClose, nil)
}

// Submit sends the current fields. On failure the form returns to Editing
// with its fields intact and the visitor is alerted. On success it shows
// the thank-you view and schedules a reset.
func (f *Form) Submit(ctx context.Context) (*client.Result, error) {
	f.mu.Lock()
	sub := f.fields
	if err := f.sm.Fire(ctx, EventSubmit, sub); err != nil {
		f.mu.Unlock()
		switch {
		case statemachine.IsNoTransition(err):
			return nil, errors.Join(ErrNotEditing, err)
		case statemachine.IsRejected(err) && !sub.Complete():
			return nil, errors.Join(ErrIncomplete, err)
		case statemachine.IsRejected(err):
			return nil, errors.Join(contact.ErrInvalidEmail, err)
		}
		return nil, err
	}
	f.lastErr = nil
	f.mu.Unlock()

	res, err := f.submitter.Submit(ctx, sub)

	f.mu.Lock()
	if err != nil {
		f.lastErr = err
		// The transition must not depend on ctx still being live.
		fireErr := f.sm.Fire(context.WithoutCancel(ctx), EventFail, nil)
		f.mu.Unlock()
		if fireErr != nil {
			return nil, errors.Join(err, fireErr)
		}
		f.logger.ErrorContext(ctx, "submission error", "error", err)
		f.notifier.Alert(ErrorAlert)
		return nil, err
	}

	if fireErr := f.sm.Fire(context.WithoutCancel(ctx), EventSucceed, nil); fireErr != nil {
		f.mu.Unlock()
		return nil, fireErr
	}
	f.mu.Unlock()

	f.notifier.Confirm(ThankYouTitle, ThankYouMessage)
	return res, nil
}

// scheduleReset must be called with f.mu held.
func (f *Form) scheduleReset() {
	f.generation++
	gen := f.generation
	f.stopReset = f.afterFunc(f.resetDelay, func() { f.autoReset(gen) })
}

// cancelReset must be called with f.mu held.
func (f *Form) cancelReset() {
	f.generation++
	if f.stopReset != nil {
		f.stopReset()
		f.stopReset = nil
	}
}

func (f *Form) autoReset(gen uint64) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if gen != f.generation || !f.sm.Is(StateSubmitted) {
		return
	}
	if err := f.sm.Fire(context.Background(), EventReset, nil); err != nil {
		f.logger.Error("form reset failed", "error", err)
	}
}
