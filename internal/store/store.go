// Package store holds the authoritative participant list and mirrors
// every change to an injected persister.
package store

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/section308/heartboard/pkg/types"
)

// Persister mirrors the record list to durable storage. Load reports
// found=false when no usable prior state exists, letting the store fall
// back to the seed.
type Persister interface {
	Load() (list []types.Participant, found bool, err error)
	Save(list []types.Participant) error
	Clear() error
}

// Store owns the in-memory participant list. All mutation is whole-list
// replacement under the lock, followed by a full persist, so a reader
// never observes a partial update.
type Store struct {
	mu        sync.RWMutex
	list      []types.Participant
	persister Persister
	capacity  int

	now func() time.Time
}

// Open loads the persisted list through p, falling back to the fixed
// seed when nothing usable is stored, and mirrors the initial state
// back out.
func Open(p Persister) (*Store, error) {
	s := &Store{
		persister: p,
		capacity:  types.Capacity(),
		now:       time.Now,
	}

	list, found, err := p.Load()
	if err != nil {
		return nil, fmt.Errorf("load persisted list: %w", err)
	}
	if !found || len(list) == 0 {
		list = types.SeedParticipants(s.now())
	}
	s.list = list

	if err := p.Save(s.list); err != nil {
		return nil, fmt.Errorf("persist initial list: %w", err)
	}
	return s, nil
}

// Snapshot returns a copy of the current list.
func (s *Store) Snapshot() []types.Participant {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]types.Participant, len(s.list))
	copy(out, s.list)
	return out
}

// Replace installs list as the new store contents and persists it.
func (s *Store) Replace(list []types.Participant) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.replaceLocked(list)
}

func (s *Store) replaceLocked(list []types.Participant) error {
	cp := make([]types.Participant, len(list))
	copy(cp, list)
	s.list = cp
	if err := s.persister.Save(cp); err != nil {
		return fmt.Errorf("persist list: %w", err)
	}
	return nil
}

// Get returns the record with the given ID.
func (s *Store) Get(id string) (types.Participant, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.list {
		if p.ID == id {
			return p, nil
		}
	}
	return types.Participant{}, types.ErrNotFound
}

// Search returns records whose name contains the query,
// case-insensitively. An empty query returns everything.
func (s *Store) Search(query string) []types.Participant {
	q := strings.ToLower(strings.TrimSpace(query))
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []types.Participant
	for _, p := range s.list {
		if q == "" || strings.Contains(strings.ToLower(p.Name), q) {
			out = append(out, p)
		}
	}
	return out
}

// Join records a visitor self-submission. A pending record with the
// same name is lit; an already-lit record is a no-op success; an
// unknown name claims a fresh slot when capacity allows, otherwise
// types.ErrCapacityFull is returned and the store is unchanged.
// The returned bool reports whether the store changed.
func (s *Store) Join(name string) (types.Participant, bool, error) {
	clean := strings.TrimSpace(name)
	if clean == "" {
		return types.Participant{}, false, types.ErrInvalidName
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	working := s.snapshotLocked()
	if idx := findUnlit(working, clean); idx >= 0 {
		working[idx].Light(s.now())
		if err := s.replaceLocked(working); err != nil {
			return types.Participant{}, false, err
		}
		return working[idx], true, nil
	}

	if idx := findLit(working, clean); idx >= 0 {
		// Duplicate submission of a claimed name: success, no change.
		return working[idx], false, nil
	}

	if len(working) >= s.capacity {
		return types.Participant{}, false, types.ErrCapacityFull
	}

	rec := types.Participant{
		ID:        "new-" + uuid.NewString(),
		Name:      clean,
		Origin:    types.OriginNew,
		Timestamp: s.now().UnixMilli(),
		Label:     "Guest",
		Lit:       true,
	}
	working = append(working, rec)
	if err := s.replaceLocked(working); err != nil {
		return types.Participant{}, false, err
	}
	return rec, true, nil
}

// Activate applies a share-link name: a matching record is lit, an
// unknown name is appended as a lit guest when capacity allows, and at
// capacity the activation is silently ignored.
func (s *Store) Activate(name string) (types.Participant, bool, error) {
	clean := strings.TrimSpace(name)
	if clean == "" {
		return types.Participant{}, false, types.ErrInvalidName
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	working := s.snapshotLocked()
	if idx := findByName(working, clean); idx >= 0 {
		if working[idx].Lit {
			return working[idx], false, nil
		}
		working[idx].Light(s.now())
		if err := s.replaceLocked(working); err != nil {
			return types.Participant{}, false, err
		}
		return working[idx], true, nil
	}

	if len(working) >= s.capacity {
		return types.Participant{}, false, nil
	}

	rec := types.Participant{
		ID:        "share-" + uuid.NewString(),
		Name:      clean,
		Origin:    types.OriginNew,
		Timestamp: s.now().UnixMilli(),
		Label:     "Guest",
		Lit:       true,
	}
	working = append(working, rec)
	if err := s.replaceLocked(working); err != nil {
		return types.Participant{}, false, err
	}
	return rec, true, nil
}

// Toggle flips the lit flag of the record with the given ID. This is
// the only path that may unlight a record.
func (s *Store) Toggle(id string) (types.Participant, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	working := s.snapshotLocked()
	for i := range working {
		if working[i].ID != id {
			continue
		}
		working[i].Lit = !working[i].Lit
		working[i].Timestamp = s.now().UnixMilli()
		if err := s.replaceLocked(working); err != nil {
			return types.Participant{}, err
		}
		return working[i], nil
	}
	return types.Participant{}, types.ErrNotFound
}

// Reset discards the current list, restores the fixed seed, and clears
// the persisted copy.
func (s *Store) Reset() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.persister.Clear(); err != nil {
		return fmt.Errorf("clear persisted list: %w", err)
	}
	s.list = types.SeedParticipants(s.now())
	return nil
}

// Len returns the current record count.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.list)
}

// Capacity returns the fixed slot limit.
func (s *Store) Capacity() int {
	return s.capacity
}

// LitCount returns the number of lit records.
func (s *Store) LitCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n := 0
	for _, p := range s.list {
		if p.Lit {
			n++
		}
	}
	return n
}

// Remaining returns the number of unclaimed slots, never negative.
func (s *Store) Remaining() int {
	r := s.capacity - s.LitCount()
	if r < 0 {
		return 0
	}
	return r
}

func (s *Store) snapshotLocked() []types.Participant {
	out := make([]types.Participant, len(s.list))
	copy(out, s.list)
	return out
}

func findByName(list []types.Participant, name string) int {
	for i := range list {
		if types.SameName(list[i].Name, name) {
			return i
		}
	}
	return -1
}

func findUnlit(list []types.Participant, name string) int {
	for i := range list {
		if !list[i].Lit && types.SameName(list[i].Name, name) {
			return i
		}
	}
	return -1
}

func findLit(list []types.Participant, name string) int {
	for i := range list {
		if list[i].Lit && types.SameName(list[i].Name, name) {
			return i
		}
	}
	return -1
}
