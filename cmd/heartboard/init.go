package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the data directory and seed the board",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		st, closer, err := openStore()
		if err != nil {
			return err
		}
		defer closer()

		if flagJSON {
			return printJSON(map[string]any{
				"backend":  cfg.Backend,
				"data_dir": cfg.DataDir,
				"records":  st.Len(),
				"lit":      st.LitCount(),
			})
		}
		fmt.Printf("Board ready: %d records, %d lit, backend %s at %s\n",
			st.Len(), st.LitCount(), cfg.Backend, cfg.DataDir)
		return nil
	},
}
