// Shared helpers for the heartboard subcommands.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/section308/heartboard/internal/sheet"
	"github.com/section308/heartboard/internal/store"
	"github.com/section308/heartboard/internal/syncd"
	"github.com/section308/heartboard/pkg/sqlite"
	"github.com/section308/heartboard/pkg/types"
)

const fetchTimeout = 15 * time.Second

// openStore attaches the configured backend and loads the board.
// The returned closer detaches the backend and must be called before
// the command exits.
func openStore() (*store.Store, func() error, error) {
	switch cfg.Backend {
	case types.BackendSQLite:
		backend := sqlite.NewBackend()
		if err := backend.Attach(cfg); err != nil {
			return nil, nil, fmt.Errorf("attach sqlite backend: %w", err)
		}
		st, err := store.Open(backend)
		if err != nil {
			_ = backend.Detach()
			return nil, nil, fmt.Errorf("open store: %w", err)
		}
		return st, backend.Detach, nil
	default:
		persister, err := store.NewJSONFile(cfg.DataDir, cfg.StorageKey)
		if err != nil {
			return nil, nil, fmt.Errorf("open json backend: %w", err)
		}
		st, err := store.Open(persister)
		if err != nil {
			return nil, nil, fmt.Errorf("open store: %w", err)
		}
		return st, func() error { return nil }, nil
	}
}

// newScheduler builds the poll scheduler for the configured source.
// Returns nil when no source URL is configured.
func newScheduler(st *store.Store, sourceURL string) *syncd.Scheduler {
	if sourceURL == "" {
		return nil
	}
	return syncd.New(st, sheet.NewFetcher(fetchTimeout), sourceURL, cfg.PollInterval, log)
}

// checkAdminPassword compares the supplied password with the configured
// one. Operator commands refuse to run when no password is configured.
func checkAdminPassword(entered string) error {
	if cfg.AdminPassword == "" {
		return fmt.Errorf("no admin password configured; set admin_password in config.yaml")
	}
	if entered != cfg.AdminPassword {
		return fmt.Errorf("admin password does not match")
	}
	return nil
}

// printJSON writes v to stdout as indented JSON.
func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// printParticipants writes one line per record: a lit marker, the ID,
// the name, and the label.
func printParticipants(list []types.Participant) {
	for _, p := range list {
		marker := " "
		if p.Lit {
			marker = "x"
		}
		fmt.Printf("[%s] %-12s %-24s %s\n", marker, p.ID, p.Name, p.Label)
	}
}

// printParticipant prints a single record as JSON or text depending on
// the --json flag.
func printParticipant(p types.Participant) error {
	if flagJSON {
		return printJSON(p)
	}
	printParticipants([]types.Participant{p})
	return nil
}
