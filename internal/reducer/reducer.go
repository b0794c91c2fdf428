/**
 * CONTEXT:   Pure state reducer folding a session's event log into a derived view
 * INPUT:     A session, its events in ascending id (causal) order, and the current instant
 * OUTPUT:    A well-formed DerivedState, total over every well-formed event log
 * BUSINESS:  The reducer is the single source of truth for "what is the current session
 *            and how much of it remains" — it never fails and never mutates the store
 * CHANGE:    Initial implementation
 * RISK:      Low - pure function, covered by unit tests
 */

package reducer

import (
	"time"

	"github.com/gopomodoro/pomodoro/internal/domain"
)

// walkResult is the intermediate accumulator shared by Reduce and
// ExpiryInstant so both agree on exactly how much time has elapsed.
type walkResult struct {
	elapsed       int64
	runStart      time.Time
	running       bool
	terminal      bool
	terminalState domain.State
}

func walk(events []domain.SessionEvent) walkResult {
	var w walkResult
	for _, ev := range events {
		switch ev.Kind {
		case domain.EventStarted, domain.EventResumed:
			w.runStart = ev.CreatedAt
			w.running = true
		case domain.EventPaused:
			if w.running {
				w.elapsed += int64(ev.CreatedAt.Sub(w.runStart).Seconds())
			}
			w.running = false
		case domain.EventAborted, domain.EventCompleted:
			if w.running {
				w.elapsed += int64(ev.CreatedAt.Sub(w.runStart).Seconds())
				w.running = false
			}
			w.terminal = true
			if ev.Kind == domain.EventAborted {
				w.terminalState = domain.StateAborted
			} else {
				w.terminalState = domain.StateCompleted
			}
		}
	}
	return w
}

// Reduce folds events (ascending by id) for session into a DerivedState as
// of now. It is total: every well-formed input produces a well-formed
// DerivedState.
func Reduce(session domain.Session, events []domain.SessionEvent, now time.Time) domain.DerivedState {
	w := walk(events)

	if w.terminal {
		elapsed := w.elapsed
		if w.terminalState == domain.StateCompleted && elapsed > session.PlannedSecs {
			elapsed = session.PlannedSecs
		}
		return finish(session, w.terminalState, elapsed)
	}

	if w.running {
		provisional := w.elapsed + int64(now.Sub(w.runStart).Seconds())
		if provisional >= session.PlannedSecs {
			// Expired: still "running" until the service auto-completes it
			// on the next status call.
			return finish(session, domain.StateRunning, session.PlannedSecs)
		}
		return finish(session, domain.StateRunning, provisional)
	}

	return finish(session, domain.StatePaused, w.elapsed)
}

// ExpiryInstant returns the first instant at which the session's elapsed
// time reaches its planned duration, for a session currently in its final
// running interval. The second return value is false if the session is not
// presently running (nothing to expire).
//
// Using this deterministic instant — running-start plus the remaining
// budget — rather than "now" means the resulting completed event's
// timestamp does not depend on when the user happens to call status.
func ExpiryInstant(session domain.Session, events []domain.SessionEvent) (time.Time, bool) {
	w := walk(events)
	if w.terminal || !w.running {
		return time.Time{}, false
	}
	remaining := session.PlannedSecs - w.elapsed
	if remaining < 0 {
		remaining = 0
	}
	return w.runStart.Add(time.Duration(remaining) * time.Second), true
}

func finish(session domain.Session, state domain.State, elapsed int64) domain.DerivedState {
	if elapsed < 0 {
		elapsed = 0
	}
	remaining := session.PlannedSecs - elapsed
	if remaining < 0 {
		remaining = 0
	}
	return domain.DerivedState{
		Kind:          session.Kind,
		State:         state,
		PlannedSecs:   session.PlannedSecs,
		ElapsedSecs:   elapsed,
		RemainingSecs: remaining,
	}
}

// Expired reports whether d represents a running session whose elapsed
// time has reached its planned duration — the trigger for
// auto_complete_on_status.
func Expired(d domain.DerivedState) bool {
	return d.State == domain.StateRunning && d.ElapsedSecs >= d.PlannedSecs
}
