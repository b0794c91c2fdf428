/**
 * CONTEXT:   Read-only introspection over the session/session_event tables
 * INPUT:     An optional --limit on how many recent sessions to show
 * OUTPUT:    One line per session with its events, newest session first
 * BUSINESS:  A debugging aid scoped to exactly the session and session_event tables,
 *            deliberately narrower than a full reporting surface
 * CHANGE:    Initial implementation
 * RISK:      Low - read-only command, cannot affect session state
 */

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newHistoryCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recent sessions and their events",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			app, closer, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer closer()

			sessions, err := app.Store().ListSessions(ctx, limit, 0)
			if err != nil {
				return err
			}

			for _, s := range sessions {
				events, err := app.Store().ListEventsForSession(ctx, s.ID)
				if err != nil {
					return err
				}
				fmt.Printf("%s  %-6s  planned=%ds  created=%s\n", s.ID, s.Kind, s.PlannedSecs, s.CreatedAt.Format("2006-01-02T15:04:05Z"))
				for _, e := range events {
					fmt.Printf("    %s  %-10s %s\n", e.ID, e.Kind, e.CreatedAt.Format("2006-01-02T15:04:05Z"))
				}
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 10, "maximum number of sessions to show")
	return cmd
}
