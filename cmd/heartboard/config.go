// Config loading for the heartboard CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/section308/heartboard/internal/paths"
	"github.com/section308/heartboard/pkg/types"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	configFileExt  = "config.yaml"

	// Config keys.
	cfgKeyBackend       = "backend"
	cfgKeyDataDir       = "data_dir"
	cfgKeyStorageKey    = "storage_key"
	cfgKeySourceURL     = "source_url"
	cfgKeyWebhookURL    = "webhook_url"
	cfgKeyPollInterval  = "poll_interval"
	cfgKeyAdminPassword = "admin_password"
	cfgKeyLogLevel      = "log_level"
	cfgKeyLogFormat     = "log_format"

	defaultBackend = types.BackendJSON
)

// defaultConfigYAML is the content written to config.yaml on first run.
const defaultConfigYAML = `# Heartboard configuration

# Backend selection: json or sqlite
backend: json

# Data directory (optional; overridable by --data-dir flag)
# data_dir:

# Key under which the board is stored in the data directory
# storage_key: light-the-heart-data-v1

# Published spreadsheet to poll (CSV export or Google Sheets edit link)
# source_url:

# Endpoint notified when a slot lights up
# webhook_url:

# How often the watch daemon polls the source
# poll_interval: 10s

# Password for operator controls (toggle, reset, serve admin endpoints).
# Leave unset to disable them.
# admin_password:

# Logging
# log_level: info
# log_format: console
`

// loadConfig reads config.yaml from the resolved config directory using
// Viper. It creates the config directory and a default config.yaml on
// first run. A missing config.yaml is not an error.
func loadConfig(configDir string) (*viper.Viper, error) {
	if err := ensureConfigDir(configDir); err != nil {
		return nil, fmt.Errorf("ensure config dir: %w", err)
	}

	if err := ensureDefaultConfigFile(configDir); err != nil {
		return nil, fmt.Errorf("ensure default config: %w", err)
	}

	v := viper.New()
	v.SetDefault(cfgKeyBackend, defaultBackend)
	v.SetDefault(cfgKeyStorageKey, types.DefaultStorageKey)
	v.SetDefault(cfgKeyPollInterval, types.DefaultPollInterval)
	v.SetDefault(cfgKeyLogLevel, "info")
	v.SetDefault(cfgKeyLogFormat, "console")
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return v, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	return v, nil
}

// buildConfig assembles the runtime configuration from the loaded
// config file and the persistent flags, then validates it.
func buildConfig(v *viper.Viper) (types.Config, error) {
	dataDir, err := paths.ResolveDataDir(flagDataDir, v.GetString(cfgKeyDataDir))
	if err != nil {
		return types.Config{}, fmt.Errorf("resolve data dir: %w", err)
	}

	c := types.Config{
		Backend:       v.GetString(cfgKeyBackend),
		DataDir:       dataDir,
		StorageKey:    v.GetString(cfgKeyStorageKey),
		SourceURL:     v.GetString(cfgKeySourceURL),
		WebhookURL:    v.GetString(cfgKeyWebhookURL),
		PollInterval:  v.GetDuration(cfgKeyPollInterval),
		AdminPassword: v.GetString(cfgKeyAdminPassword),
	}
	if err := c.Validate(); err != nil {
		return types.Config{}, err
	}
	return c, nil
}

// persistConfigValue writes a single key back to config.yaml so it
// survives the next invocation.
func persistConfigValue(key, value string) error {
	configDir, err := resolveConfigDir()
	if err != nil {
		return err
	}

	v, err := loadConfig(configDir)
	if err != nil {
		return err
	}

	v.Set(key, value)
	path := filepath.Join(configDir, configFileExt)
	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// ensureConfigDir creates the config directory if it does not exist.
func ensureConfigDir(configDir string) error {
	return os.MkdirAll(configDir, 0o755)
}

// ensureDefaultConfigFile creates a default config.yaml if the file
// does not exist in the config directory.
func ensureDefaultConfigFile(configDir string) error {
	path := filepath.Join(configDir, configFileExt)

	_, err := os.Stat(path)
	if err == nil {
		return nil
	}
	if !os.IsNotExist(err) {
		return fmt.Errorf("stat config file: %w", err)
	}

	return os.WriteFile(path, []byte(defaultConfigYAML), 0o644)
}
