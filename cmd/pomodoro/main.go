/**
 * CONTEXT:   Pomodoro CLI entry point
 * INPUT:     Command-line arguments: start/stop/status/history/hooks subcommands
 * OUTPUT:    Process exit code (0 success/no-op, 1 failure, 2 parse error)
 * BUSINESS:  Each invocation is a short-lived process that recomputes state from the
 *            event log and exits; there is no daemon and no resident state
 * CHANGE:    Initial implementation
 * RISK:      Low - thin entry point delegating to internal/cliapp and internal/service
 */

package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/gopomodoro/pomodoro/internal/service"
)

func main() {
	os.Exit(run())
}

func run() int {
	root := newRootCmd()
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "pomodoro: %v\n", err)
		return exitCodeFor(err)
	}
	return 0
}

func exitCodeFor(err error) int {
	switch {
	case errors.Is(err, service.ErrParse):
		return 2
	case errors.Is(err, service.ErrStateConflict), errors.Is(err, service.ErrStore):
		return 1
	default:
		// Argument/flag errors raised by cobra itself land here; they are
		// parse errors from the user's point of view.
		return 2
	}
}
