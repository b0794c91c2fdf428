package service

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gopomodoro/pomodoro/internal/clock"
	"github.com/gopomodoro/pomodoro/internal/domain"
	"github.com/gopomodoro/pomodoro/internal/hooks"
	"github.com/gopomodoro/pomodoro/internal/idgen"
	"github.com/gopomodoro/pomodoro/internal/store/sqlite"
)

func newTestService(t *testing.T, clk clock.Clock) *Service {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pomodoro.db")
	db, err := sqlite.Open(context.Background(), path, nil)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	repo := sqlite.NewRepository(db)
	dispatcher := hooks.New(filepath.Join(t.TempDir(), "start"), filepath.Join(t.TempDir(), "stop"), nil)
	return New(repo, clk, idgen.New(), dispatcher)
}

func TestStartWithNoPriorSessionCreatesRunningSession(t *testing.T) {
	clk := clock.NewFake(time.Unix(1000, 0))
	svc := newTestService(t, clk)

	outcome, err := svc.Start(context.Background(), domain.KindFocus, 1500)

	require.NoError(t, err)
	assert.Equal(t, domain.StateRunning, outcome.State.State)
	assert.EqualValues(t, 0, outcome.State.ElapsedSecs)
}

func TestStartWhileSameKindRunningIsNoOp(t *testing.T) {
	clk := clock.NewFake(time.Unix(1000, 0))
	svc := newTestService(t, clk)
	ctx := context.Background()

	_, err := svc.Start(ctx, domain.KindFocus, 1500)
	require.NoError(t, err)

	clk.Advance(10 * time.Second)
	outcome, err := svc.Start(ctx, domain.KindFocus, 1500)
	require.NoError(t, err)
	assert.Contains(t, outcome.Message, "already running")
}

func TestStartDifferentKindWhileRunningConflicts(t *testing.T) {
	clk := clock.NewFake(time.Unix(1000, 0))
	svc := newTestService(t, clk)
	ctx := context.Background()

	_, err := svc.Start(ctx, domain.KindFocus, 1500)
	require.NoError(t, err)

	_, err = svc.Start(ctx, domain.KindBreak, 300)
	assert.ErrorIs(t, err, ErrStateConflict)
}

func TestStopPausesRunningSession(t *testing.T) {
	clk := clock.NewFake(time.Unix(1000, 0))
	svc := newTestService(t, clk)
	ctx := context.Background()

	_, err := svc.Start(ctx, domain.KindFocus, 1500)
	require.NoError(t, err)

	clk.Advance(100 * time.Second)
	outcome, err := svc.Stop(ctx, false)
	require.NoError(t, err)
	assert.Equal(t, domain.StatePaused, outcome.State.State)
	assert.EqualValues(t, 100, outcome.State.ElapsedSecs)
}

func TestStopWithResetAbortsSession(t *testing.T) {
	clk := clock.NewFake(time.Unix(1000, 0))
	svc := newTestService(t, clk)
	ctx := context.Background()

	_, err := svc.Start(ctx, domain.KindFocus, 1500)
	require.NoError(t, err)

	outcome, err := svc.Stop(ctx, true)
	require.NoError(t, err)
	assert.Equal(t, domain.StateAborted, outcome.State.State)
}

func TestStopWithNoActiveSessionReturnsNotFound(t *testing.T) {
	clk := clock.NewFake(time.Unix(1000, 0))
	svc := newTestService(t, clk)

	_, err := svc.Stop(context.Background(), false)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStartResumesPausedSessionOfSameKind(t *testing.T) {
	clk := clock.NewFake(time.Unix(1000, 0))
	svc := newTestService(t, clk)
	ctx := context.Background()

	_, err := svc.Start(ctx, domain.KindFocus, 1500)
	require.NoError(t, err)
	clk.Advance(50 * time.Second)
	_, err = svc.Stop(ctx, false)
	require.NoError(t, err)

	clk.Advance(9999 * time.Second) // time while paused must not count
	outcome, err := svc.Start(ctx, domain.KindFocus, 1500)
	require.NoError(t, err)
	assert.Equal(t, domain.StateRunning, outcome.State.State)
	assert.EqualValues(t, 50, outcome.State.ElapsedSecs)
}

func TestResumePausedSessionOfDifferentKindConflicts(t *testing.T) {
	clk := clock.NewFake(time.Unix(1000, 0))
	svc := newTestService(t, clk)
	ctx := context.Background()

	_, err := svc.Start(ctx, domain.KindFocus, 1500)
	require.NoError(t, err)
	_, err = svc.Stop(ctx, false)
	require.NoError(t, err)

	_, err = svc.Start(ctx, domain.KindBreak, 300)
	assert.ErrorIs(t, err, ErrStateConflict)
}

func TestStatusAutoCompletesExpiredSession(t *testing.T) {
	clk := clock.NewFake(time.Unix(1000, 0))
	svc := newTestService(t, clk)
	ctx := context.Background()

	_, err := svc.Start(ctx, domain.KindFocus, 60)
	require.NoError(t, err)

	clk.Advance(120 * time.Second)
	derived, err := svc.Status(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.StateCompleted, derived.State)
	assert.EqualValues(t, 60, derived.ElapsedSecs)

	// A second status call must not double-complete or error.
	derived2, err := svc.Status(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.StateCompleted, derived2.State)
}

func TestStatusWithNoSessionReturnsNoneState(t *testing.T) {
	clk := clock.NewFake(time.Unix(1000, 0))
	svc := newTestService(t, clk)

	derived, err := svc.Status(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.NoneState(), derived)
}

func TestStartAfterCompletionStartsFreshSession(t *testing.T) {
	clk := clock.NewFake(time.Unix(1000, 0))
	svc := newTestService(t, clk)
	ctx := context.Background()

	_, err := svc.Start(ctx, domain.KindFocus, 60)
	require.NoError(t, err)
	clk.Advance(60 * time.Second)
	_, err = svc.Status(ctx)
	require.NoError(t, err)

	outcome, err := svc.Start(ctx, domain.KindBreak, 300)
	require.NoError(t, err)
	assert.Equal(t, domain.StateRunning, outcome.State.State)
	assert.Equal(t, domain.KindBreak, outcome.State.Kind)
}
