package hooks

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gopomodoro/pomodoro/internal/domain"
)

func writeExecutableHook(t *testing.T, dir, name, outPath string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	script := "#!/bin/sh\ncat > " + outPath + "\n"
	require.NoError(t, os.WriteFile(path, []byte(script), 0o755))
	return path
}

func sampleSession() domain.Session {
	return domain.Session{ID: "sess1", Kind: domain.KindFocus, PlannedSecs: 1500, CreatedAt: time.Unix(1000, 0).UTC()}
}

func sampleEvent(kind domain.EventKind) domain.SessionEvent {
	return domain.SessionEvent{ID: "ev1", Kind: kind, SessionID: "sess1", CreatedAt: time.Unix(1001, 0).UTC()}
}

func TestDispatchRunsStartHookOnStarted(t *testing.T) {
	dir := t.TempDir()
	captured := filepath.Join(dir, "captured.json")
	startHook := writeExecutableHook(t, dir, "start", captured)
	stopHook := filepath.Join(dir, "stop") // never created

	d := New(startHook, stopHook, nil)
	d.Dispatch(context.Background(), sampleSession(), sampleEvent(domain.EventStarted))

	body, err := os.ReadFile(captured)
	require.NoError(t, err)

	var p payload
	require.NoError(t, json.Unmarshal(body, &p))
	assert.Equal(t, "sess1", p.Session.ID)
	assert.Equal(t, "focus", p.Session.Kind)
	assert.Equal(t, "started", p.SessionEvent.Kind)
}

func TestDispatchRunsStopHookOnPausedAbortedCompleted(t *testing.T) {
	for _, kind := range []domain.EventKind{domain.EventPaused, domain.EventAborted, domain.EventCompleted} {
		dir := t.TempDir()
		captured := filepath.Join(dir, "captured.json")
		stopHook := writeExecutableHook(t, dir, "stop", captured)
		startHook := filepath.Join(dir, "start")

		d := New(startHook, stopHook, nil)
		d.Dispatch(context.Background(), sampleSession(), sampleEvent(kind))

		_, err := os.Stat(captured)
		assert.NoError(t, err, "expected stop hook to run for %s", kind)
	}
}

func TestDispatchSkipsMissingHookSilently(t *testing.T) {
	dir := t.TempDir()
	d := New(filepath.Join(dir, "no-such-start"), filepath.Join(dir, "no-such-stop"), nil)
	assert.NotPanics(t, func() {
		d.Dispatch(context.Background(), sampleSession(), sampleEvent(domain.EventStarted))
	})
}

func TestDispatchSkipsNonExecutableHook(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "start")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\necho hi\n"), 0o644))

	d := New(path, filepath.Join(dir, "stop"), nil)
	assert.NotPanics(t, func() {
		d.Dispatch(context.Background(), sampleSession(), sampleEvent(domain.EventStarted))
	})
}
