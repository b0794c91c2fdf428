/**
 * CONTEXT:   Domain entities for the Pomodoro session event log
 * INPUT:     Session kind, planned duration, and the ordered events that extend it
 * OUTPUT:    Immutable Session/SessionEvent values and the DerivedState view over them
 * BUSINESS:  A session is event-sourced: its only durable state is the append-only log
 * CHANGE:    Initial domain layer
 * RISK:      Low - pure data types with no I/O
 */

package domain

import "time"

// Kind identifies what a session is for.
type Kind string

const (
	KindFocus Kind = "focus"
	KindBreak Kind = "break"
	KindNone  Kind = "none"
)

// EventKind identifies a session lifecycle transition.
type EventKind string

const (
	EventStarted   EventKind = "started"
	EventPaused    EventKind = "paused"
	EventResumed   EventKind = "resumed"
	EventAborted   EventKind = "aborted"
	EventCompleted EventKind = "completed"
)

// Terminal reports whether an event kind ends a session's lifecycle.
func (k EventKind) Terminal() bool {
	return k == EventAborted || k == EventCompleted
}

// State is the derived status of a session at a point in time.
type State string

const (
	StateRunning   State = "running"
	StatePaused    State = "paused"
	StateCompleted State = "completed"
	StateAborted   State = "aborted"
	StateNone      State = "none"
)

// Session is one timed interval. It is created once, together with its
// first "started" event, and is otherwise only extended by events.
type Session struct {
	ID          string
	Kind        Kind
	PlannedSecs int64
	CreatedAt   time.Time
}

// SessionEvent is one durable transition in a session's lifecycle.
type SessionEvent struct {
	ID        string
	Kind      EventKind
	SessionID string
	CreatedAt time.Time
}

// DerivedState is the non-persisted view computed by the reducer.
type DerivedState struct {
	Kind          Kind
	State         State
	PlannedSecs   int64
	ElapsedSecs   int64
	RemainingSecs int64
}

// NoneState is the DerivedState reported when there is no latest session.
func NoneState() DerivedState {
	return DerivedState{Kind: KindNone, State: StateNone}
}
