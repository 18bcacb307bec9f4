package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/imagesearch/internal/logger"
)

func newHealthCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "health",
		Short: "Check that the image search backend is reachable",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newAppContext(flags, logTarget{writer: cmd.ErrOrStderr()})
			if err != nil {
				return err
			}
			defer app.Close()

			started := time.Now()
			if err := app.Client.Health(cmd.Context()); err != nil {
				app.Logger.Error(err, "health check failed")
				return newCommandError("reach backend", app.Client.BaseURL(), err, "Start the backend or run 'imagesearch mock-api'.")
			}

			elapsed := time.Since(started)
			app.Logger.Debug("health check passed", logger.Fields{"duration_ms": elapsed.Milliseconds()})
			fmt.Fprintf(cmd.OutOrStdout(), "Backend %s is healthy (%s)\n", app.Client.BaseURL(), elapsed.Round(time.Millisecond))
			return nil
		},
	}

	return cmd
}
