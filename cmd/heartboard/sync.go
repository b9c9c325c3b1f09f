package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var flagSyncSource string

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Poll the source spreadsheet once and merge the result",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		sourceURL := cfg.SourceURL
		if flagSyncSource != "" {
			sourceURL = flagSyncSource
			// Remember the source for subsequent sync and watch runs.
			if err := persistConfigValue(cfgKeySourceURL, flagSyncSource); err != nil {
				return err
			}
		}
		if sourceURL == "" {
			return fmt.Errorf("no source configured; pass --source or set source_url in config.yaml")
		}

		st, closer, err := openStore()
		if err != nil {
			return err
		}
		defer closer()

		scheduler := newScheduler(st, sourceURL)
		changed, err := scheduler.SyncOnce(cmd.Context())
		if err != nil {
			return err
		}

		if flagJSON {
			return printJSON(map[string]any{
				"changed": changed,
				"records": st.Len(),
				"lit":     st.LitCount(),
			})
		}
		fmt.Printf("Sync done; board now %d records, %d lit (changed: %v)\n",
			st.Len(), st.LitCount(), changed)
		return nil
	},
}

func init() {
	syncCmd.Flags().StringVar(&flagSyncSource, "source", "", "source URL to poll; persisted to config.yaml")
}
