package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	flagResetYes      bool
	flagResetPassword string
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Wipe the stored board and reseed it (operator)",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := checkAdminPassword(flagResetPassword); err != nil {
			return err
		}
		if !flagResetYes {
			return fmt.Errorf("refusing to reset without --yes")
		}

		st, closer, err := openStore()
		if err != nil {
			return err
		}
		defer closer()

		if err := st.Reset(); err != nil {
			return err
		}

		if flagJSON {
			return printJSON(map[string]any{
				"records": st.Len(),
				"lit":     st.LitCount(),
			})
		}
		fmt.Printf("Board reset to the seed: %d records, %d lit\n", st.Len(), st.LitCount())
		return nil
	},
}

func init() {
	resetCmd.Flags().BoolVar(&flagResetYes, "yes", false, "confirm the reset")
	resetCmd.Flags().StringVar(&flagResetPassword, "password", "", "admin password")
}
