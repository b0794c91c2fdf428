package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gopomodoro/pomodoro/internal/render"
	"github.com/gopomodoro/pomodoro/internal/service"
)

func newStatusCmd() *cobra.Command {
	var output string
	var format string

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Print the current session's state",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			if format != "" && output != "" && output != "text" {
				return fmt.Errorf("%w: --format is only valid with --output text", service.ErrParse)
			}
			if output == "" {
				output = "text"
			}
			if output != "text" && output != "json" {
				return fmt.Errorf("%w: --output must be text or json, got %q", service.ErrParse, output)
			}

			app, closer, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer closer()

			derived, err := app.Service.Status(ctx)
			if err != nil {
				return err
			}

			switch {
			case output == "json":
				out, err := render.JSON(derived)
				if err != nil {
					return err
				}
				fmt.Println(out)

			case format != "":
				tmpl, err := render.CompileTemplate(format)
				if err != nil {
					return fmt.Errorf("%w: %v", service.ErrParse, err)
				}
				out, err := tmpl.Render(derived)
				if err != nil {
					return err
				}
				fmt.Println(out)

			default:
				fmt.Println(render.Text(derived))
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&output, "output", "text", "output mode: text or json")
	cmd.Flags().StringVar(&format, "format", "", "custom template, only valid with --output text")
	return cmd
}
