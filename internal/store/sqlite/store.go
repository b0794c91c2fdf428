/**
 * CONTEXT:   SQLite implementation of the event store interface
 * INPUT:     domain.Session / domain.SessionEvent values, query parameters
 * OUTPUT:    Persisted rows, or wrapped store errors including integrity failures
 * BUSINESS:  "The latest session" is the session whose id is lexicographically
 *            largest, so ordering relies entirely on id, never on created_at alone
 * CHANGE:    Adapted from a work-tracking session repository to the event-sourced
 *            session/session_event pair this specification defines
 * RISK:      Low - prepared statements throughout, no string-built SQL from user input
 */

package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/gopomodoro/pomodoro/internal/domain"
	"github.com/gopomodoro/pomodoro/internal/store"
)

// Repository implements store.Store backed by a *DB.
type Repository struct {
	db *DB
}

// NewRepository wraps an open DB in the store.Store interface.
func NewRepository(db *DB) *Repository {
	return &Repository{db: db}
}

var _ store.Store = (*Repository)(nil)

func (r *Repository) InsertSessionWithEvent(ctx context.Context, session domain.Session, event domain.SessionEvent) error {
	return r.db.WithTransaction(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO session (session_id, session_kind, planned_secs, created_at) VALUES (?, ?, ?, ?)`,
			session.ID, string(session.Kind), session.PlannedSecs, session.CreatedAt.Unix(),
		); err != nil {
			return fmt.Errorf("insert session: %w", err)
		}

		if _, err := tx.ExecContext(ctx,
			`INSERT INTO session_event (session_event_id, session_event_kind, session_id, created_at) VALUES (?, ?, ?, ?)`,
			event.ID, string(event.Kind), event.SessionID, event.CreatedAt.Unix(),
		); err != nil {
			return fmt.Errorf("insert started event: %w", err)
		}
		return nil
	})
}

func (r *Repository) InsertEvent(ctx context.Context, event domain.SessionEvent) error {
	_, err := r.db.conn.ExecContext(ctx,
		`INSERT INTO session_event (session_event_id, session_event_kind, session_id, created_at) VALUES (?, ?, ?, ?)`,
		event.ID, string(event.Kind), event.SessionID, event.CreatedAt.Unix(),
	)
	if err != nil {
		return fmt.Errorf("insert event: %w", err)
	}
	return nil
}

func (r *Repository) GetLatestSession(ctx context.Context) (domain.Session, error) {
	row := r.db.conn.QueryRowContext(ctx,
		`SELECT session_id, session_kind, planned_secs, created_at FROM session ORDER BY session_id DESC LIMIT 1`)
	return scanSession(row)
}

func (r *Repository) GetSession(ctx context.Context, id string) (domain.Session, error) {
	row := r.db.conn.QueryRowContext(ctx,
		`SELECT session_id, session_kind, planned_secs, created_at FROM session WHERE session_id = ?`, id)
	return scanSession(row)
}

func (r *Repository) ListSessions(ctx context.Context, limit, offset int) ([]domain.Session, error) {
	query := `SELECT session_id, session_kind, planned_secs, created_at FROM session ORDER BY session_id DESC`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT ? OFFSET ?`
		args = append(args, limit, offset)
	}

	rows, err := r.db.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	defer rows.Close()

	var out []domain.Session
	for rows.Next() {
		s, err := scanSessionRows(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *Repository) ListEventsForSession(ctx context.Context, sessionID string) ([]domain.SessionEvent, error) {
	rows, err := r.db.conn.QueryContext(ctx,
		`SELECT session_event_id, session_event_kind, session_id, created_at
		 FROM session_event WHERE session_id = ? ORDER BY session_event_id ASC`, sessionID)
	if err != nil {
		return nil, fmt.Errorf("list events for session: %w", err)
	}
	defer rows.Close()

	var out []domain.SessionEvent
	for rows.Next() {
		e, err := scanEventRows(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r *Repository) ListEvents(ctx context.Context, sessionID string, limit, offset int) ([]domain.SessionEvent, error) {
	query := `SELECT session_event_id, session_event_kind, session_id, created_at FROM session_event`
	args := []any{}
	if sessionID != "" {
		query += ` WHERE session_id = ?`
		args = append(args, sessionID)
	}
	query += ` ORDER BY session_event_id DESC`
	if limit > 0 {
		query += ` LIMIT ? OFFSET ?`
		args = append(args, limit, offset)
	}

	rows, err := r.db.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	var out []domain.SessionEvent
	for rows.Next() {
		e, err := scanEventRows(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r *Repository) Close() error {
	return r.db.Close()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSession(row rowScanner) (domain.Session, error) {
	var s domain.Session
	var kind string
	var createdAtUnix int64
	err := row.Scan(&s.ID, &kind, &s.PlannedSecs, &createdAtUnix)
	if err == sql.ErrNoRows {
		return domain.Session{}, store.ErrNotFound
	}
	if err != nil {
		return domain.Session{}, fmt.Errorf("scan session: %w", err)
	}
	s.Kind = domain.Kind(kind)
	s.CreatedAt = unixToUTC(createdAtUnix)
	return s, nil
}

func scanSessionRows(rows *sql.Rows) (domain.Session, error) {
	return scanSession(rows)
}

func scanEventRows(rows *sql.Rows) (domain.SessionEvent, error) {
	var e domain.SessionEvent
	var kind string
	var createdAtUnix int64
	if err := rows.Scan(&e.ID, &kind, &e.SessionID, &createdAtUnix); err != nil {
		return domain.SessionEvent{}, fmt.Errorf("scan event: %w", err)
	}
	e.Kind = domain.EventKind(kind)
	e.CreatedAt = unixToUTC(createdAtUnix)
	return e, nil
}
