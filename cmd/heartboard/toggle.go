package main

import (
	"github.com/spf13/cobra"
)

var flagTogglePassword string

var toggleCmd = &cobra.Command{
	Use:   "toggle <id>",
	Short: "Flip a slot's lit state (operator)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := checkAdminPassword(flagTogglePassword); err != nil {
			return err
		}

		st, closer, err := openStore()
		if err != nil {
			return err
		}
		defer closer()

		rec, err := st.Toggle(args[0])
		if err != nil {
			return err
		}
		return printParticipant(rec)
	},
}

func init() {
	toggleCmd.Flags().StringVar(&flagTogglePassword, "password", "", "admin password")
}
