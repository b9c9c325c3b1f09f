package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/section308/heartboard/internal/syncd"
)

var litCmd = &cobra.Command{
	Use:   "lit <name>",
	Short: "Light a slot from a share link name",
	Long: `Lit replays a share link: it lights the slot matching the given name,
appends a new lit slot when the name is unknown and room remains, and
quietly does nothing when the board is full.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := strings.Join(args, " ")

		st, closer, err := openStore()
		if err != nil {
			return err
		}
		defer closer()

		rec, changed, err := st.Activate(name)
		if err != nil {
			return err
		}

		if !changed {
			fmt.Println("No change; the slot is already lit or the board is full.")
			return nil
		}

		if cfg.WebhookURL != "" {
			syncd.NewWebhook(cfg.WebhookURL, log).Notify(cmd.Context(), rec)
		}
		return printParticipant(rec)
	},
}
