package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/gopomodoro/pomodoro/internal/cliapp"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "pomodoro",
		Short:         "A local, single-user Pomodoro timer",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newStartCmd(), newStopCmd(), newStatusCmd(), newHistoryCmd(), newHooksCmd())
	return root
}

// openApp wires a cliapp.App for a command invocation and returns a
// closer the caller must defer.
func openApp(ctx context.Context) (*cliapp.App, func(), error) {
	app, err := cliapp.New(ctx, cliapp.Options{})
	if err != nil {
		return nil, func() {}, err
	}
	return app, func() {
		if cerr := app.Close(); cerr != nil {
			app.Logger.Warn("close store", "error", cerr)
		}
	}, nil
}
