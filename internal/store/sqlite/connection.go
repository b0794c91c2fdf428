/**
 * CONTEXT:   SQLite connection management for the Pomodoro event store
 * INPUT:     Database file path
 * OUTPUT:    A configured *sql.DB with foreign keys and WAL mode enabled, schema applied
 * BUSINESS:  The database file is the single local source of truth for session state;
 *            foreign keys must be enforced so invariant 1 (every event references an
 *            existing session) holds at the storage layer
 * CHANGE:    Adapted from a multi-table work-tracking schema down to the two tables
 *            (session, session_event) this specification defines
 * RISK:      Low - standard database/sql usage over mattn/go-sqlite3
 */

package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

//go:embed schema.sql
var schemaFS embed.FS

// DB wraps a SQLite connection configured for single-user, append-only
// event log access.
type DB struct {
	conn   *sql.DB
	path   string
	logger *slog.Logger
}

// Open creates the database directory if needed, opens the connection
// with foreign keys and WAL mode enabled, and applies the schema.
func Open(ctx context.Context, path string, logger *slog.Logger) (*DB, error) {
	if logger == nil {
		logger = slog.Default()
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create database directory: %w", err)
		}
	}

	dsn := path +
		"?_foreign_keys=on" +
		"&_journal_mode=WAL" +
		"&_synchronous=NORMAL" +
		"&_timeout=5000"

	conn, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}
	conn.SetMaxOpenConns(1) // a single local file, serialized writers per invocation

	db := &DB{conn: conn, path: path, logger: logger}
	if err := db.initialize(ctx); err != nil {
		conn.Close()
		return nil, err
	}
	return db, nil
}

func (db *DB) initialize(ctx context.Context) error {
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.conn.PingContext(pingCtx); err != nil {
		return fmt.Errorf("ping database: %w", err)
	}

	schemaSQL, err := schemaFS.ReadFile("schema.sql")
	if err != nil {
		return fmt.Errorf("read embedded schema: %w", err)
	}

	if _, err := db.conn.ExecContext(ctx, string(schemaSQL)); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}

	db.logger.Debug("database initialized", "path", db.path)
	return nil
}

// WithTransaction runs fn inside a single transaction, committing on
// success and rolling back on error or panic. Used by InsertSessionWithEvent
// so a session and its first event are never visible only partially written.
func (db *DB) WithTransaction(ctx context.Context, fn func(*sql.Tx) error) error {
	tx, err := db.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op once committed

	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

func (db *DB) Close() error {
	return db.conn.Close()
}
