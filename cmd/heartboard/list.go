package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var flagListSearch string

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the board's participants",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		st, closer, err := openStore()
		if err != nil {
			return err
		}
		defer closer()

		list := st.Snapshot()
		if flagListSearch != "" {
			list = st.Search(flagListSearch)
		}

		if flagJSON {
			return printJSON(list)
		}
		printParticipants(list)
		fmt.Printf("%d records, %d lit, %d remaining\n",
			st.Len(), st.LitCount(), st.Remaining())
		return nil
	},
}

func init() {
	listCmd.Flags().StringVar(&flagListSearch, "search", "", "filter by name substring")
}
