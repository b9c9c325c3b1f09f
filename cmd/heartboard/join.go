package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/section308/heartboard/internal/syncd"
	"github.com/section308/heartboard/pkg/types"
)

var joinCmd = &cobra.Command{
	Use:   "join <name>",
	Short: "Claim a slot by name and light it",
	Long: `Join lights the slot already reserved under the given name, or claims
a free one when the name is new. A name that is already lit is accepted
again without changing the board.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := strings.Join(args, " ")

		st, closer, err := openStore()
		if err != nil {
			return err
		}
		defer closer()

		rec, changed, err := st.Join(name)
		if errors.Is(err, types.ErrCapacityFull) {
			return fmt.Errorf("the board is full; no spots remain")
		}
		if err != nil {
			return err
		}

		if changed && cfg.WebhookURL != "" {
			syncd.NewWebhook(cfg.WebhookURL, log).Notify(cmd.Context(), rec)
		}

		if flagJSON {
			return printJSON(rec)
		}
		fmt.Println(types.ThankYouMessage())
		printParticipants([]types.Participant{rec})
		return nil
	},
}
