/**
 * CONTEXT:   Structured diagnostic logging, kept separate from command output
 * INPUT:     POMODORO_LOG_LEVEL environment variable, terminal capability of stderr
 * OUTPUT:    A *slog.Logger writing colorized records to stderr on a terminal,
 *            plain JSON otherwise
 * BUSINESS:  Command output (status text/JSON/template) is the CLI's contract with
 *            callers and must never be interleaved with diagnostics, so all logging
 *            goes to stderr only
 * CHANGE:    Initial implementation
 * RISK:      Low - logging failures never block command execution
 */

package applog

import (
	"log/slog"
	"os"
	"strings"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
)

// New builds the process-wide logger. Call once from the CLI entry point.
func New() *slog.Logger {
	level := levelFromEnv()

	if isatty.IsTerminal(os.Stderr.Fd()) {
		return slog.New(tint.NewHandler(os.Stderr, &tint.Options{
			Level:      level,
			TimeFormat: "15:04:05",
		}))
	}

	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func levelFromEnv() slog.Level {
	switch strings.ToLower(os.Getenv("POMODORO_LOG_LEVEL")) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	case "warn", "":
		return slog.LevelWarn
	default:
		return slog.LevelWarn
	}
}
