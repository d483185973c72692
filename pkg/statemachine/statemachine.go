package statemachine

import (
	"context"
	"fmt"
	"sync"
)

// State names a machine state.
type State string

// Event names something that may move the machine to another state.
type Event string

// Guard decides whether a transition may proceed.
type Guard func(ctx context.Context, from State, event Event, data any) bool

// Action runs a side effect during a transition. A non-nil error aborts it.
type Action func(ctx context.Context, from, to State, event Event, data any) error

// Observer is notified after every successful transition.
type Observer func(ctx context.Context, from, to State, event Event)

// Transition describes a single edge of the machine.
type Transition struct {
	From    State
	To      State
	Event   Event
	Guards  []Guard
	Actions []Action
}

// Machine is an in-memory state machine.
// Lookups are keyed by [from][event]; multiple transitions for the same pair
// are evaluated in declaration order and the first one whose guards pass wins.
type Machine struct {
	current     State
	transitions map[State]map[Event][]Transition
	observers   []Observer
	mu          sync.RWMutex
}

// New creates a machine starting in initial.
func New(initial State, opts ...Option) (*Machine, error) {
	if initial == "" {
		return nil, ErrNoInitialState
	}

	m := &Machine{
		current:     initial,
		transitions: make(map[State]map[Event][]Transition),
	}

	for _, opt := range opts {
		if err := opt(m); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// Current returns the current state.
func (m *Machine) Current() State {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

// Is reports whether the machine is currently in s.
func (m *Machine) Is(s State) bool {
	return m.Current() == s
}

// AddTransition registers a transition.
func (m *Machine) AddTransition(t Transition) error {
	if t.From == "" || t.To == "" || t.Event == "" {
		return ErrInvalidTransition
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	byEvent, ok := m.transitions[t.From]
	if !ok {
		byEvent = make(map[Event][]Transition)
		m.transitions[t.From] = byEvent
	}
	byEvent[t.Event] = append(byEvent[t.Event], t)
	return nil
}

// Fire applies event to the current state.
func (m *Machine) Fire(ctx context.Context, event Event, data any) error {
	if event == "" {
		return ErrInvalidEvent
	}

	m.mu.Lock()

	from := m.current
	t, err := m.lookup(ctx, from, event, data)
	if err != nil {
		m.mu.Unlock()
		return err
	}

	for _, action := range t.Actions {
		if err := action(ctx, from, t.To, event, data); err != nil {
			m.mu.Unlock()
			return fmt.Errorf("statemachine: action failed: %w", err)
		}
	}

	m.current = t.To
	observers := m.observers
	m.mu.Unlock()

	for _, obs := range observers {
		obs(ctx, from, t.To, event)
	}
	return nil
}

// CanFire reports whether event would be accepted in the current state.
func (m *Machine) CanFire(ctx context.Context, event Event, data any) bool {
	if event == "" {
		return false
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	_, err := m.lookup(ctx, m.current, event, data)
	return err == nil
}

// lookup must be called with the lock held.
func (m *Machine) lookup(ctx context.Context, from State, event Event, data any) (*Transition, error) {
	candidates := m.transitions[from][event]
	if len(candidates) == 0 {
		return nil, &NoTransitionError{State: from, Event: event}
	}

	for i := range candidates {
		if guardsPass(ctx, candidates[i].Guards, from, event, data) {
			return &candidates[i], nil
		}
	}
	return nil, &RejectedError{State: from, Event: event}
}

func guardsPass(ctx context.Context, guards []Guard, from State, event Event, data any) bool {
	for _, g := range guards {
		if !g(ctx, from, event, data) {
			return false
		}
	}
	return true
}
