// Package sqlite implements the SQLite persistence backend for the
// participant board.
package sqlite

import (
	"database/sql"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	_ "modernc.org/sqlite"

	"github.com/section308/heartboard/pkg/types"
)

//go:embed schema.sql
var schemaSQL string

// dbFileName is the database file created inside the data directory.
const dbFileName = "heartboard.db"

// Backend persists a board's record list in a local SQLite database.
// It satisfies the store's Persister contract: the full list is
// rewritten in one transaction on every save, keyed by the board's
// storage key, so a load always observes a complete list.
type Backend struct {
	mu       sync.Mutex
	attached bool
	db       *sql.DB
	board    string
}

// NewBackend creates an unattached backend; call Attach with a Config
// to open the database.
func NewBackend() *Backend {
	return &Backend{}
}

// Attach validates the config, creates the data directory if needed,
// opens the database, and applies the schema.
// Returns types.ErrAlreadyAttached if called twice.
func (b *Backend) Attach(config types.Config) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.attached {
		return types.ErrAlreadyAttached
	}
	if err := config.Validate(); err != nil {
		return err
	}

	dataDir := config.DataDir
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}

	db, err := sql.Open("sqlite", filepath.Join(dataDir, dbFileName))
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return fmt.Errorf("apply schema: %w", err)
	}

	b.db = db
	b.board = config.StorageKey
	b.attached = true
	return nil
}

// Detach closes the database. Idempotent.
func (b *Backend) Detach() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return nil
	}
	b.attached = false
	if err := b.db.Close(); err != nil {
		return fmt.Errorf("close database: %w", err)
	}
	return nil
}

// Load reads the board's record list in stored order. An empty board
// reports found=false so the store seeds.
func (b *Backend) Load() ([]types.Participant, bool, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return nil, false, types.ErrDetached
	}

	rows, err := b.db.Query(
		`SELECT id, name, origin, timestamp, label, lit
		 FROM participants WHERE board = ? ORDER BY position`, b.board)
	if err != nil {
		return nil, false, fmt.Errorf("query participants: %w", err)
	}
	defer rows.Close()

	var list []types.Participant
	for rows.Next() {
		var p types.Participant
		var lit int
		if err := rows.Scan(&p.ID, &p.Name, &p.Origin, &p.Timestamp, &p.Label, &lit); err != nil {
			return nil, false, fmt.Errorf("scan participant: %w", err)
		}
		p.Lit = lit != 0
		list = append(list, p)
	}
	if err := rows.Err(); err != nil {
		return nil, false, fmt.Errorf("iterate participants: %w", err)
	}
	if len(list) == 0 {
		return nil, false, nil
	}
	return list, true, nil
}

// Save replaces the board's stored list with the given one in a single
// transaction, preserving list order via the position column.
func (b *Backend) Save(list []types.Participant) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return types.ErrDetached
	}

	tx, err := b.db.Begin()
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM participants WHERE board = ?`, b.board); err != nil {
		return fmt.Errorf("clear board: %w", err)
	}
	stmt, err := tx.Prepare(
		`INSERT INTO participants (board, position, id, name, origin, timestamp, label, lit)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, p := range list {
		lit := 0
		if p.Lit {
			lit = 1
		}
		if _, err := stmt.Exec(b.board, i, p.ID, p.Name, p.Origin, p.Timestamp, p.Label, lit); err != nil {
			return fmt.Errorf("insert participant %s: %w", p.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// Clear removes every record for the board.
func (b *Backend) Clear() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return types.ErrDetached
	}
	if _, err := b.db.Exec(`DELETE FROM participants WHERE board = ?`, b.board); err != nil {
		return fmt.Errorf("clear board: %w", err)
	}
	return nil
}
