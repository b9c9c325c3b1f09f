package types

import "time"

// Config holds backend selection and sync parameters for the board.
type Config struct {
	Backend       string        `json:"backend" yaml:"backend"`
	DataDir       string        `json:"data_dir" yaml:"data_dir"`
	StorageKey    string        `json:"storage_key" yaml:"storage_key"`
	SourceURL     string        `json:"source_url" yaml:"source_url"`
	WebhookURL    string        `json:"webhook_url" yaml:"webhook_url"`
	PollInterval  time.Duration `json:"poll_interval" yaml:"poll_interval"`
	AdminPassword string        `json:"admin_password" yaml:"admin_password"`
}

// Supported backend names.
const (
	BackendJSON   = "json"
	BackendSQLite = "sqlite"
)

// DefaultStorageKey names the persisted record list. The JSON backend
// stores the array at <data_dir>/<storage_key>.json; the SQLite backend
// uses it as the board name inside the database.
const DefaultStorageKey = "light-the-heart-data-v1"

// DefaultPollInterval is the spreadsheet polling period.
const DefaultPollInterval = 10 * time.Second

// knownBackends lists the backends that Validate accepts.
var knownBackends = map[string]bool{
	BackendJSON:   true,
	BackendSQLite: true,
}

// Validate checks that the Config is well-formed. It returns a sentinel
// error from this package on failure.
func (c Config) Validate() error {
	if c.Backend == "" {
		return ErrBackendEmpty
	}
	if !knownBackends[c.Backend] {
		return ErrBackendUnknown
	}
	if c.StorageKey == "" {
		return ErrStorageKeyEmpty
	}
	if c.PollInterval < 0 {
		return ErrPollIntervalInvalid
	}
	return nil
}
