package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/section308/heartboard/pkg/types"
)

// JSONFile persists the record list as a single JSON array under the
// storage key, one file per board, written atomically.
type JSONFile struct {
	path string
}

// NewJSONFile creates the data directory if needed and returns a
// persister writing to <dataDir>/<storageKey>.json.
func NewJSONFile(dataDir, storageKey string) (*JSONFile, error) {
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	return &JSONFile{path: filepath.Join(dataDir, storageKey+".json")}, nil
}

// Path returns the backing file path.
func (j *JSONFile) Path() string {
	return j.path
}

// Load reads the persisted array. A missing, unreadable, or malformed
// file is not an error; it reports found=false so the caller seeds.
func (j *JSONFile) Load() ([]types.Participant, bool, error) {
	data, err := os.ReadFile(j.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("read %s: %w", j.path, err)
	}

	var list []types.Participant
	if err := json.Unmarshal(data, &list); err != nil {
		// Corrupt prior state falls back to the seed.
		return nil, false, nil
	}
	if len(list) == 0 {
		return nil, false, nil
	}
	return list, true, nil
}

// Save atomically rewrites the full array using the temp-file, rename
// pattern.
func (j *JSONFile) Save(list []types.Participant) error {
	if list == nil {
		list = []types.Participant{}
	}
	data, err := json.MarshalIndent(list, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal list: %w", err)
	}

	dir := filepath.Dir(j.path)
	tmp, err := os.CreateTemp(dir, ".board-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmpName, j.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}

// Clear removes the persisted file. Missing files are fine.
func (j *JSONFile) Clear() error {
	if err := os.Remove(j.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove %s: %w", j.path, err)
	}
	return nil
}
