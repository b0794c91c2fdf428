/**
 * CONTEXT:   Application wiring: config, clock, id generator, store, and service
 * INPUT:     An optional config file override and database path override (for tests)
 * OUTPUT:    A ready-to-use App exposing the Service the CLI commands call
 * BUSINESS:  There are no process-wide globals — every component is constructed
 *            here and threaded explicitly into the Service
 * CHANGE:    Initial implementation
 * RISK:      Low - composition root, no business logic of its own
 */

package cliapp

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/gopomodoro/pomodoro/internal/appdir"
	"github.com/gopomodoro/pomodoro/internal/applog"
	"github.com/gopomodoro/pomodoro/internal/clock"
	"github.com/gopomodoro/pomodoro/internal/config"
	"github.com/gopomodoro/pomodoro/internal/hooks"
	"github.com/gopomodoro/pomodoro/internal/idgen"
	"github.com/gopomodoro/pomodoro/internal/service"
	"github.com/gopomodoro/pomodoro/internal/store"
	"github.com/gopomodoro/pomodoro/internal/store/sqlite"
)

// wrap classifies an infrastructure failure using the service error
// taxonomy so the CLI's exit-code mapping applies uniformly to wiring
// failures, not just to Service calls.
func wrap(sentinel error, format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{sentinel}, args...)...)
}

// App bundles the wired collaborators a CLI command needs.
type App struct {
	Config  config.Config
	Dirs    appdir.Dirs
	Logger  *slog.Logger
	Service *service.Service
	Hooks   *hooks.Dispatcher

	db store.Store
}

// Options lets tests override paths and the clock; the CLI entry point
// uses Options{} for defaults.
type Options struct {
	ConfigPath string
	DBPath     string
	Clock      clock.Clock
	Logger     *slog.Logger
}

// New wires a complete App.
func New(ctx context.Context, opts Options) (*App, error) {
	logger := opts.Logger
	if logger == nil {
		logger = applog.New()
	}

	dirs, err := appdir.Resolve()
	if err != nil {
		return nil, wrap(service.ErrStore, "resolve application directories: %v", err)
	}

	configPath := opts.ConfigPath
	if configPath == "" {
		configPath = dirs.ConfigPath()
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, wrap(service.ErrParse, "%v", err)
	}

	dbPath := opts.DBPath
	if dbPath == "" {
		dbPath = os.Getenv("POMODORO_DB_PATH")
	}
	if dbPath == "" {
		if err := dirs.EnsureDataDir(); err != nil {
			return nil, wrap(service.ErrStore, "ensure data directory: %v", err)
		}
		dbPath = dirs.DatabasePath()
	} else if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, wrap(service.ErrStore, "ensure database directory: %v", err)
		}
	}

	db, err := sqlite.Open(ctx, dbPath, logger)
	if err != nil {
		return nil, wrap(service.ErrStore, "open store: %v", err)
	}
	repo := sqlite.NewRepository(db)

	clk := opts.Clock
	if clk == nil {
		clk = clock.System{}
	}

	dispatcher := hooks.New(dirs.HookPath("start"), dirs.HookPath("stop"), logger)
	svc := service.New(repo, clk, idgen.New(), dispatcher)

	return &App{
		Config:  cfg,
		Dirs:    dirs,
		Logger:  logger,
		Service: svc,
		Hooks:   dispatcher,
		db:      repo,
	}, nil
}

func (a *App) Close() error {
	return a.db.Close()
}

// Store exposes the underlying event store for read-only introspection
// commands (history).
func (a *App) Store() store.Store {
	return a.db
}
