package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/gopomodoro/pomodoro/internal/cliapp"
	"github.com/gopomodoro/pomodoro/internal/service"
)

func newStopCmd() *cobra.Command {
	var reset bool

	cmd := &cobra.Command{
		Use:   "stop",
		Short: "Pause the running session, or abort it with --reset",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			app, closer, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer closer()

			outcome, err := app.Service.Stop(ctx, reset)
			if err != nil {
				if errors.Is(err, service.ErrNotFound) {
					// A no-op, not a failure: nothing to stop exits cleanly.
					cliapp.PrintInfo("no active session")
					return nil
				}
				return err
			}

			cliapp.PrintSuccess(outcome.Message)
			return nil
		},
	}

	cmd.Flags().BoolVar(&reset, "reset", false, "abort the session instead of pausing it")
	return cmd
}
