package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gopomodoro/pomodoro/internal/cliapp"
	"github.com/gopomodoro/pomodoro/internal/config"
	"github.com/gopomodoro/pomodoro/internal/domain"
	"github.com/gopomodoro/pomodoro/internal/service"
)

func newStartCmd() *cobra.Command {
	var mode string
	var duration string

	cmd := &cobra.Command{
		Use:   "start",
		Short: "Start, or resume, a focus or break session",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			app, closer, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer closer()

			kind, err := parseKind(mode)
			if err != nil {
				return err
			}

			plannedSecs, err := resolveDuration(app.Config, kind, duration)
			if err != nil {
				return err
			}

			outcome, err := app.Service.Start(ctx, kind, plannedSecs)
			if err != nil {
				return err
			}

			cliapp.PrintSuccess(outcome.Message)
			return nil
		},
	}

	cmd.Flags().StringVar(&mode, "mode", "", "session kind: focus or break (default focus)")
	cmd.Flags().StringVar(&duration, "duration", "", "session length, e.g. 25m or 1h30m (default from config)")
	return cmd
}

func parseKind(mode string) (domain.Kind, error) {
	switch mode {
	case "":
		return domain.KindFocus, nil
	case string(domain.KindFocus), string(domain.KindBreak):
		return domain.Kind(mode), nil
	default:
		return "", fmt.Errorf("%w: --mode must be %q or %q, got %q", service.ErrParse, domain.KindFocus, domain.KindBreak, mode)
	}
}

func resolveDuration(cfg config.Config, kind domain.Kind, raw string) (int64, error) {
	if raw != "" {
		d, err := config.ParseHumanDuration(raw)
		if err != nil {
			return 0, fmt.Errorf("%w: --duration: %v", service.ErrParse, err)
		}
		return int64(d.Seconds()), nil
	}

	if kind == domain.KindBreak {
		return int64(cfg.BreakDuration.Seconds()), nil
	}
	return int64(cfg.FocusDuration.Seconds()), nil
}
