package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/section308/heartboard/internal/reconcile"
	"github.com/section308/heartboard/internal/sheet"
)

var (
	flagImportURL  string
	flagImportFile string
)

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Merge a CSV roster into the board",
	Long: `Import reads CSV rows from --url, --file, or stdin, parses them into
participant records, and merges them into the board. Rows matching an
unlit slot light it; unknown rows append as lit records.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := readRoster(cmd)
		if err != nil {
			return err
		}

		batch, err := sheet.ParseRoster(text, time.Now())
		if err != nil {
			return err
		}

		st, closer, err := openStore()
		if err != nil {
			return err
		}
		defer closer()

		merged, changed := reconcile.Merge(st.Snapshot(), batch)
		if changed {
			if err := st.Replace(merged); err != nil {
				return err
			}
		}

		if flagJSON {
			return printJSON(map[string]any{
				"rows":    len(batch),
				"changed": changed,
				"records": st.Len(),
				"lit":     st.LitCount(),
			})
		}
		fmt.Printf("Imported %d rows; board now %d records, %d lit (changed: %v)\n",
			len(batch), st.Len(), st.LitCount(), changed)
		return nil
	},
}

// readRoster fetches the CSV text from the chosen input.
func readRoster(cmd *cobra.Command) (string, error) {
	switch {
	case flagImportURL != "":
		return sheet.NewFetcher(fetchTimeout).Fetch(cmd.Context(), flagImportURL)
	case flagImportFile != "":
		data, err := os.ReadFile(flagImportFile)
		if err != nil {
			return "", fmt.Errorf("read roster file: %w", err)
		}
		return string(data), nil
	default:
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}
}

func init() {
	importCmd.Flags().StringVar(&flagImportURL, "url", "", "fetch the roster from a URL (Google Sheets edit links are rewritten to CSV export)")
	importCmd.Flags().StringVar(&flagImportFile, "file", "", "read the roster from a local file")
}
