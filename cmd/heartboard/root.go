// Root command for the heartboard CLI.
package main

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/section308/heartboard/internal/logging"
	"github.com/section308/heartboard/internal/paths"
	"github.com/section308/heartboard/pkg/types"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// Global flag values.
var (
	flagConfigDir string
	flagDataDir   string
	flagJSON      bool
	flagVerbose   bool
)

// cfg and log are initialized by PersistentPreRunE so every subcommand
// can use them.
var (
	cfg types.Config
	log zerolog.Logger
)

var rootCmd = &cobra.Command{
	Use:     "heartboard",
	Short:   "Heartboard runs a community participant board synced from a spreadsheet",
	Version: version,
	Long: `Heartboard manages a heart-shaped participant board: visitors claim
slots by name, an operator imports and reconciles spreadsheet rows, and
a sync daemon keeps the board aligned with a published CSV feed.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		configDir, err := resolveConfigDir()
		if err != nil {
			return err
		}

		v, err := loadConfig(configDir)
		if err != nil {
			return err
		}

		cfg, err = buildConfig(v)
		if err != nil {
			return err
		}

		level := v.GetString(cfgKeyLogLevel)
		if flagVerbose {
			level = "debug"
		}
		log = logging.New(logging.Config{
			Level:  level,
			Format: v.GetString(cfgKeyLogFormat),
		})
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: $(CWD)/.heartboard)")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "data directory (default: $(CWD)/.heartboard-data)")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "output as JSON")
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "debug logging")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(joinCmd)
	rootCmd.AddCommand(litCmd)
	rootCmd.AddCommand(toggleCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(syncCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(serveCmd)
}

// resolveConfigDir returns the configuration directory following the
// precedence chain: --config-dir flag > HEARTBOARD_CONFIG_DIR env >
// platform default.
func resolveConfigDir() (string, error) {
	return paths.ResolveConfigDir(flagConfigDir)
}
