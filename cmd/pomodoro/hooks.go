/**
 * CONTEXT:   Operator aid for verifying a hook script without running a real session
 * INPUT:     An --event kind (default "started")
 * OUTPUT:    Invokes the same hook the service would for that event kind, with a
 *            synthetic payload
 * CHANGE:    Initial implementation
 * RISK:      Low - writes nothing to the store; only exercises the hook dispatcher
 */

package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/gopomodoro/pomodoro/internal/domain"
	"github.com/gopomodoro/pomodoro/internal/idgen"
	"github.com/gopomodoro/pomodoro/internal/service"
)

func newHooksCmd() *cobra.Command {
	hooks := &cobra.Command{
		Use:   "hooks",
		Short: "Utilities for testing hook scripts",
	}
	hooks.AddCommand(newHooksTestCmd())
	return hooks
}

func newHooksTestCmd() *cobra.Command {
	var event string

	cmd := &cobra.Command{
		Use:   "test",
		Short: "Invoke the configured hook for a synthetic event",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			kind, err := parseEventKind(event)
			if err != nil {
				return err
			}

			app, closer, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer closer()

			ids := idgen.New()
			now := time.Now().UTC()

			session := domain.Session{ID: ids.Next(), Kind: domain.KindFocus, PlannedSecs: 1500, CreatedAt: now}
			sessionEvent := domain.SessionEvent{ID: ids.Next(), Kind: kind, SessionID: session.ID, CreatedAt: now}

			app.Hooks.Dispatch(ctx, session, sessionEvent)
			fmt.Printf("dispatched synthetic %q event\n", kind)
			return nil
		},
	}

	cmd.Flags().StringVar(&event, "event", string(domain.EventStarted), "event kind to simulate")
	return cmd
}

func parseEventKind(s string) (domain.EventKind, error) {
	switch domain.EventKind(s) {
	case domain.EventStarted, domain.EventResumed, domain.EventPaused, domain.EventAborted, domain.EventCompleted:
		return domain.EventKind(s), nil
	default:
		return "", fmt.Errorf("%w: unknown event kind %q", service.ErrParse, s)
	}
}
