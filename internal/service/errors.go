package service

import "errors"

// Sentinel errors the CLI layer classifies with errors.Is and maps to
// exit codes.
var (
	// ErrStateConflict: the requested transition is invalid given the
	// current derived state. Exit 1.
	ErrStateConflict = errors.New("state conflict")

	// ErrNotFound: stop (or an implicit lookup) found no active session.
	// This is a no-op, not a failure: exit 0.
	ErrNotFound = errors.New("no active session")

	// ErrStore: database I/O or integrity failure. Exit 1.
	ErrStore = errors.New("store error")

	// ErrParse: invalid duration, kind, or argument. Exit 2.
	ErrParse = errors.New("parse error")
)
