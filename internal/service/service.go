/**
 * CONTEXT:   Session service implementing the start/stop state machine
 * INPUT:     Start/Stop requests plus read-only Status queries
 * OUTPUT:    The resulting DerivedState and a human-readable outcome message
 * BUSINESS:  At most one session may be non-terminal at a time (invariant 6); every
 *            transition is decided from the reducer's view of the latest session and
 *            then appended as a single event, with a hook fired after each append
 * CHANGE:    Initial implementation
 * RISK:      Medium - this is the state machine at the center of the whole CLI; every
 *            branch below corresponds to one start/stop/status transition
 */

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/gopomodoro/pomodoro/internal/clock"
	"github.com/gopomodoro/pomodoro/internal/domain"
	"github.com/gopomodoro/pomodoro/internal/hooks"
	"github.com/gopomodoro/pomodoro/internal/idgen"
	"github.com/gopomodoro/pomodoro/internal/reducer"
	"github.com/gopomodoro/pomodoro/internal/store"
)

// Service implements start, stop, and status over a Store.
type Service struct {
	store store.Store
	clk   clock.Clock
	ids   *idgen.Generator
	hooks *hooks.Dispatcher
}

// New builds a Service from its collaborators.
func New(st store.Store, clk clock.Clock, ids *idgen.Generator, dispatcher *hooks.Dispatcher) *Service {
	return &Service{store: st, clk: clk, ids: ids, hooks: dispatcher}
}

// Outcome is the result of a start or stop call: the resulting derived
// state plus a short message describing what happened (including no-ops).
type Outcome struct {
	State   domain.DerivedState
	Message string
}

// Start begins a new session of kind, or resumes/reports on the latest
// session if one already exists in a compatible state.
func (s *Service) Start(ctx context.Context, kind domain.Kind, plannedSecs int64) (Outcome, error) {
	now := s.clk.Now()

	latest, events, derived, err := s.latestDerived(ctx, now)
	if err != nil && err != store.ErrNotFound {
		return Outcome{}, fmt.Errorf("%w: %v", ErrStore, err)
	}

	if err == store.ErrNotFound || derived.State == domain.StateCompleted || derived.State == domain.StateAborted {
		return s.startNew(ctx, kind, plannedSecs, now)
	}

	switch derived.State {
	case domain.StatePaused:
		if derived.Kind != kind {
			return Outcome{}, fmt.Errorf("%w: cannot resume %s; a %s session is paused", ErrStateConflict, kind, derived.Kind)
		}
		return s.emit(ctx, latest, events, domain.EventResumed, now)

	case domain.StateRunning:
		if derived.Kind != kind {
			return Outcome{}, fmt.Errorf("%w: cannot start %s; a %s session is already in progress", ErrStateConflict, kind, derived.Kind)
		}
		return Outcome{State: derived, Message: fmt.Sprintf("%s session already running", kind)}, nil

	default:
		return s.startNew(ctx, kind, plannedSecs, now)
	}
}

func (s *Service) startNew(ctx context.Context, kind domain.Kind, plannedSecs int64, now time.Time) (Outcome, error) {
	session := domain.Session{
		ID:          s.ids.Next(),
		Kind:        kind,
		PlannedSecs: plannedSecs,
		CreatedAt:   now,
	}
	event := domain.SessionEvent{
		ID:        s.ids.Next(),
		Kind:      domain.EventStarted,
		SessionID: session.ID,
		CreatedAt: now,
	}

	if err := s.store.InsertSessionWithEvent(ctx, session, event); err != nil {
		return Outcome{}, fmt.Errorf("%w: %v", ErrStore, err)
	}

	s.hooks.Dispatch(ctx, session, event)

	derived := reducer.Reduce(session, []domain.SessionEvent{event}, now)
	return Outcome{State: derived, Message: fmt.Sprintf("%s session started", kind)}, nil
}

// Stop pauses the running session, or aborts it outright when reset is true.
func (s *Service) Stop(ctx context.Context, reset bool) (Outcome, error) {
	now := s.clk.Now()

	latest, events, derived, err := s.latestDerived(ctx, now)
	if err != nil {
		if err == store.ErrNotFound {
			return Outcome{}, fmt.Errorf("%w: no active session", ErrNotFound)
		}
		return Outcome{}, fmt.Errorf("%w: %v", ErrStore, err)
	}

	switch derived.State {
	case domain.StateRunning:
		kind := domain.EventPaused
		msg := fmt.Sprintf("%s session paused", derived.Kind)
		if reset {
			kind = domain.EventAborted
			msg = fmt.Sprintf("%s session aborted", derived.Kind)
		}
		outcome, err := s.emit(ctx, latest, events, kind, now)
		if err != nil {
			return Outcome{}, err
		}
		outcome.Message = msg
		return outcome, nil

	case domain.StatePaused:
		if !reset {
			return Outcome{State: derived, Message: fmt.Sprintf("%s session already paused", derived.Kind)}, nil
		}
		outcome, err := s.emit(ctx, latest, events, domain.EventAborted, now)
		if err != nil {
			return Outcome{}, err
		}
		outcome.Message = fmt.Sprintf("%s session aborted", derived.Kind)
		return outcome, nil

	default: // completed, aborted
		return Outcome{}, fmt.Errorf("%w: no active session", ErrNotFound)
	}
}

// Status returns the latest session's derived state, auto-completing it
// first if its planned duration has already elapsed.
func (s *Service) Status(ctx context.Context) (domain.DerivedState, error) {
	now := s.clk.Now()

	latest, events, derived, err := s.latestDerived(ctx, now)
	if err != nil {
		if err == store.ErrNotFound {
			return domain.NoneState(), nil
		}
		return domain.DerivedState{}, fmt.Errorf("%w: %v", ErrStore, err)
	}

	if !reducer.Expired(derived) {
		return derived, nil
	}

	expiry, ok := reducer.ExpiryInstant(latest, events)
	if !ok {
		return derived, nil
	}

	completed := domain.SessionEvent{
		ID:        s.ids.Next(),
		Kind:      domain.EventCompleted,
		SessionID: latest.ID,
		CreatedAt: expiry,
	}
	if err := s.store.InsertEvent(ctx, completed); err != nil {
		return domain.DerivedState{}, fmt.Errorf("%w: %v", ErrStore, err)
	}
	s.hooks.Dispatch(ctx, latest, completed)

	return reducer.Reduce(latest, append(events, completed), now), nil
}

// emit appends a single non-creating event (resumed/paused/aborted) to an
// existing session, fires its hook, and returns the refreshed state.
func (s *Service) emit(ctx context.Context, session domain.Session, priorEvents []domain.SessionEvent, kind domain.EventKind, now time.Time) (Outcome, error) {
	event := domain.SessionEvent{
		ID:        s.ids.Next(),
		Kind:      kind,
		SessionID: session.ID,
		CreatedAt: now,
	}
	if err := s.store.InsertEvent(ctx, event); err != nil {
		return Outcome{}, fmt.Errorf("%w: %v", ErrStore, err)
	}
	s.hooks.Dispatch(ctx, session, event)

	derived := reducer.Reduce(session, append(priorEvents, event), now)
	return Outcome{State: derived}, nil
}

// latestDerived fetches the latest session and its events and reduces
// them. It returns store.ErrNotFound unmodified so callers can branch on it.
func (s *Service) latestDerived(ctx context.Context, now time.Time) (domain.Session, []domain.SessionEvent, domain.DerivedState, error) {
	latest, err := s.store.GetLatestSession(ctx)
	if err != nil {
		return domain.Session{}, nil, domain.DerivedState{}, err
	}
	events, err := s.store.ListEventsForSession(ctx, latest.ID)
	if err != nil {
		return domain.Session{}, nil, domain.DerivedState{}, err
	}
	return latest, events, reducer.Reduce(latest, events, now), nil
}
