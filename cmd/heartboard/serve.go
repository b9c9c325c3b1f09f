package main

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/section308/heartboard/internal/server"
	"github.com/section308/heartboard/internal/syncd"
)

var flagServeAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the board API, polling the source in the background",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		st, closer, err := openStore()
		if err != nil {
			return err
		}
		defer closer()

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		scheduler := newScheduler(st, cfg.SourceURL)
		if scheduler != nil {
			go func() {
				if err := scheduler.Run(ctx); err != nil && ctx.Err() == nil {
					log.Error().Err(err).Msg("poll loop stopped")
				}
			}()
		}

		webhook := syncd.NewWebhook(cfg.WebhookURL, log)
		srv := server.New(st, webhook, scheduler, cfg.AdminPassword, log)
		return srv.ListenAndServe(ctx, flagServeAddr)
	},
}

func init() {
	serveCmd.Flags().StringVar(&flagServeAddr, "addr", ":8088", "listen address")
}
