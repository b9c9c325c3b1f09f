package main

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Poll the source spreadsheet on an interval until interrupted",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg.SourceURL == "" {
			return fmt.Errorf("no source configured; set source_url in config.yaml")
		}

		st, closer, err := openStore()
		if err != nil {
			return err
		}
		defer closer()

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		scheduler := newScheduler(st, cfg.SourceURL)
		log.Info().
			Str("source", cfg.SourceURL).
			Dur("interval", cfg.PollInterval).
			Msg("watching source")
		return scheduler.Run(ctx)
	},
}
