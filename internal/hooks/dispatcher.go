/**
 * CONTEXT:   Fire-and-forget execution of user-provided hook scripts on session transitions
 * INPUT:     A session and the event that just transitioned it
 * OUTPUT:    None observable to the caller — hook failures never surface
 * BUSINESS:  "started"/"resumed" fire the start hook, "paused"/"aborted"/"completed" fire
 *            the stop hook, each invoked with a JSON payload on stdin and nothing else
 * CHANGE:    Adapted from a lifecycle-hook executor (stdin JSON payload, waited subprocess)
 *            to the two-hook, fire-and-forget contract this specification requires
 * RISK:      Low - a spawn or exit failure is swallowed by design, never returned
 */

package hooks

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"os/exec"
	"time"

	"github.com/gopomodoro/pomodoro/internal/domain"
)

// Dispatcher invokes the configured start/stop hook executables.
type Dispatcher struct {
	startHookPath string
	stopHookPath  string
	logger        *slog.Logger
}

// New returns a Dispatcher for the given hook file paths.
func New(startHookPath, stopHookPath string, logger *slog.Logger) *Dispatcher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Dispatcher{startHookPath: startHookPath, stopHookPath: stopHookPath, logger: logger}
}

type payload struct {
	Session      sessionPayload `json:"session"`
	SessionEvent eventPayload   `json:"session_event"`
}

type sessionPayload struct {
	ID          string `json:"id"`
	Kind        string `json:"kind"`
	PlannedSecs int64  `json:"planned_secs"`
	CreatedAt   string `json:"created_at"`
}

type eventPayload struct {
	ID        string `json:"id"`
	Kind      string `json:"kind"`
	SessionID string `json:"session_id"`
	CreatedAt string `json:"created_at"`
}

// Dispatch selects the hook file for event.Kind and runs it, blocking
// until the child exits so "transition → hook" ordering is observable to
// callers. A missing or non-executable hook file is skipped silently; a
// spawn error or non-zero exit is logged at debug level and otherwise
// ignored.
func (d *Dispatcher) Dispatch(ctx context.Context, session domain.Session, event domain.SessionEvent) {
	path := d.pathFor(event.Kind)
	if path == "" {
		return
	}

	info, err := os.Stat(path)
	if err != nil || info.IsDir() || info.Mode()&0o111 == 0 {
		return
	}

	body, err := json.Marshal(payload{
		Session: sessionPayload{
			ID:          session.ID,
			Kind:        string(session.Kind),
			PlannedSecs: session.PlannedSecs,
			CreatedAt:   isoUTC(session.CreatedAt),
		},
		SessionEvent: eventPayload{
			ID:        event.ID,
			Kind:      string(event.Kind),
			SessionID: event.SessionID,
			CreatedAt: isoUTC(event.CreatedAt),
		},
	})
	if err != nil {
		d.logger.Debug("hook payload marshal failed", "error", err)
		return
	}

	cmd := exec.CommandContext(ctx, path)
	cmd.Stdin = bytes.NewReader(body)
	// Stdout/stderr of the hook are intentionally discarded: the
	// dispatcher ignores everything but completion.
	cmd.Stdout = nil
	cmd.Stderr = nil

	if err := cmd.Run(); err != nil {
		d.logger.Debug("hook run failed", "path", path, "event", event.Kind, "error", err)
	}
}

func (d *Dispatcher) pathFor(kind domain.EventKind) string {
	switch kind {
	case domain.EventStarted, domain.EventResumed:
		return d.startHookPath
	case domain.EventPaused, domain.EventAborted, domain.EventCompleted:
		return d.stopHookPath
	default:
		return ""
	}
}

func isoUTC(t time.Time) string {
	return t.UTC().Format("2006-01-02T15:04:05Z")
}
