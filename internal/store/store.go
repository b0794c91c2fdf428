/**
 * CONTEXT:   Event store contract for sessions and session events
 * INPUT:     Session/SessionEvent domain values
 * OUTPUT:    A backend-agnostic interface the session service programs against
 * BUSINESS:  Storage is append-only; the store enforces referential integrity
 *            (invariant 1) but not the session state machine (invariant 3) — that
 *            is the service's job, before it ever calls InsertEvent
 * CHANGE:    Initial implementation
 * RISK:      Low - interface definition only
 */

package store

import (
	"context"
	"errors"

	"github.com/gopomodoro/pomodoro/internal/domain"
)

// ErrNotFound is returned by GetSession/GetLatestSession when no matching
// row exists.
var ErrNotFound = errors.New("store: not found")

// Store persists sessions and session events and queries them in a
// well-defined order.
type Store interface {
	// InsertSessionWithEvent creates a session together with its first
	// "started" event atomically.
	InsertSessionWithEvent(ctx context.Context, session domain.Session, event domain.SessionEvent) error

	// GetLatestSession returns the session with the largest id, or
	// ErrNotFound if the store is empty.
	GetLatestSession(ctx context.Context) (domain.Session, error)

	// GetSession returns a single session by id, or ErrNotFound.
	GetSession(ctx context.Context, id string) (domain.Session, error)

	// ListSessions returns sessions in descending id order.
	ListSessions(ctx context.Context, limit, offset int) ([]domain.Session, error)

	// InsertEvent appends a single event. A foreign-key violation (no
	// matching session) is returned as a wrapped store error.
	InsertEvent(ctx context.Context, event domain.SessionEvent) error

	// ListEventsForSession returns a session's events in ascending id
	// (causal) order — the order the reducer expects.
	ListEventsForSession(ctx context.Context, sessionID string) ([]domain.SessionEvent, error)

	// ListEvents returns events across all sessions in descending id
	// order, honoring the optional session_id filter, limit, and offset.
	ListEvents(ctx context.Context, sessionID string, limit, offset int) ([]domain.SessionEvent, error)

	Close() error
}
