package store

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/section308/heartboard/pkg/types"
)

func newTestPersister(t *testing.T) *JSONFile {
	t.Helper()
	p, err := NewJSONFile(t.TempDir(), types.DefaultStorageKey)
	require.NoError(t, err)
	return p
}

// newStoreWith opens a store over a fresh persister and installs list
// as its contents.
func newStoreWith(t *testing.T, list []types.Participant) *Store {
	t.Helper()
	s, err := Open(newTestPersister(t))
	require.NoError(t, err)
	require.NoError(t, s.Replace(list))
	return s
}

func TestOpenSeedsWhenNothingPersisted(t *testing.T) {
	p := newTestPersister(t)
	s, err := Open(p)
	require.NoError(t, err)

	assert.Equal(t, types.Capacity(), s.Len())
	assert.Equal(t, 19, s.LitCount())

	// The initial state is mirrored out immediately.
	_, err = os.Stat(p.Path())
	assert.NoError(t, err)
}

func TestOpenLoadsPersistedList(t *testing.T) {
	dir := t.TempDir()
	list := []types.Participant{
		{ID: "leg-3", Name: "Amy", Origin: types.OriginLegacy, Timestamp: 1, Label: "Week 3", Lit: true},
	}
	data, err := json.Marshal(list)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, types.DefaultStorageKey+".json"), data, 0o644))

	p, err := NewJSONFile(dir, types.DefaultStorageKey)
	require.NoError(t, err)
	s, err := Open(p)
	require.NoError(t, err)

	assert.Equal(t, 1, s.Len())
	got, err := s.Get("leg-3")
	require.NoError(t, err)
	assert.Equal(t, "Amy", got.Name)
}

func TestOpenFallsBackOnCorruptFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, types.DefaultStorageKey+".json"), []byte("{not json"), 0o644))

	p, err := NewJSONFile(dir, types.DefaultStorageKey)
	require.NoError(t, err)
	s, err := Open(p)
	require.NoError(t, err)
	assert.Equal(t, types.Capacity(), s.Len(), "corrupt state falls back to the seed")
}

func TestJoinLightsPendingRecord(t *testing.T) {
	s, err := Open(newTestPersister(t))
	require.NoError(t, err)

	// "Raymond Lu" is a pending seed record.
	rec, changed, err := s.Join("  raymond lu ")
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, "pen-2", rec.ID, "existing record claimed, not duplicated")
	assert.Equal(t, "Raymond Lu", rec.Name, "original casing preserved")
	assert.True(t, rec.Lit)
	assert.Equal(t, types.Capacity(), s.Len())
}

func TestJoinDuplicateLitNameIsNoOpSuccess(t *testing.T) {
	s, err := Open(newTestPersister(t))
	require.NoError(t, err)

	first, changed, err := s.Join("Raymond Lu")
	require.NoError(t, err)
	require.True(t, changed)

	second, changed, err := s.Join("RAYMOND LU")
	require.NoError(t, err)
	assert.False(t, changed)
	assert.Equal(t, first.ID, second.ID)
}

func TestJoinAppendsNewGuestWhenRoomRemains(t *testing.T) {
	s := newStoreWith(t, []types.Participant{
		{ID: "leg-3", Name: "Amy", Origin: types.OriginLegacy, Timestamp: 1, Lit: true},
	})

	rec, changed, err := s.Join("Po")
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, types.OriginNew, rec.Origin)
	assert.Equal(t, "Guest", rec.Label)
	assert.True(t, rec.Lit)
	assert.Contains(t, rec.ID, "new-")
	assert.Equal(t, 2, s.Len())
}

func TestJoinRejectsUnknownNameAtCapacity(t *testing.T) {
	// The full seed occupies every slot; no pending record matches.
	s, err := Open(newTestPersister(t))
	require.NoError(t, err)
	before := s.Snapshot()

	_, _, err = s.Join("Uninvited Guest")
	assert.ErrorIs(t, err, types.ErrCapacityFull)
	assert.Equal(t, before, s.Snapshot(), "store unchanged after rejection")
}

func TestJoinRejectsBlankName(t *testing.T) {
	s, err := Open(newTestPersister(t))
	require.NoError(t, err)
	_, _, err = s.Join("   ")
	assert.ErrorIs(t, err, types.ErrInvalidName)
}

func TestActivateLightsPendingRecord(t *testing.T) {
	s, err := Open(newTestPersister(t))
	require.NoError(t, err)

	rec, changed, err := s.Activate("Felix Zhu")
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, "pen-7", rec.ID)
	assert.True(t, rec.Lit)
}

func TestActivateAppendsNewGuest(t *testing.T) {
	s := newStoreWith(t, []types.Participant{
		{ID: "leg-3", Name: "Amy", Origin: types.OriginLegacy, Timestamp: 1, Lit: true},
	})

	rec, changed, err := s.Activate("NewGuest")
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Contains(t, rec.ID, "share-")
	assert.True(t, rec.Lit)
	assert.Equal(t, 2, s.Len())
}

func TestActivateIgnoredAtCapacity(t *testing.T) {
	s, err := Open(newTestPersister(t))
	require.NoError(t, err)

	_, changed, err := s.Activate("Uninvited Guest")
	require.NoError(t, err, "share links never surface errors")
	assert.False(t, changed)
	assert.Equal(t, types.Capacity(), s.Len())
}

func TestActivateLitRecordIsNoOp(t *testing.T) {
	s, err := Open(newTestPersister(t))
	require.NoError(t, err)

	rec, changed, err := s.Activate("Amy")
	require.NoError(t, err)
	assert.False(t, changed, "already-lit record untouched")
	assert.True(t, rec.Lit)
}

func TestToggle(t *testing.T) {
	s, err := Open(newTestPersister(t))
	require.NoError(t, err)

	rec, err := s.Toggle("leg-3")
	require.NoError(t, err)
	assert.False(t, rec.Lit, "operator toggle may unlight")

	rec, err = s.Toggle("leg-3")
	require.NoError(t, err)
	assert.True(t, rec.Lit)

	_, err = s.Toggle("missing")
	assert.ErrorIs(t, err, types.ErrNotFound)
}

func TestResetRestoresSeedAndClearsPersisted(t *testing.T) {
	p := newTestPersister(t)
	s, err := Open(p)
	require.NoError(t, err)

	_, _, err = s.Join("Raymond Lu")
	require.NoError(t, err)
	require.Equal(t, 20, s.LitCount())

	require.NoError(t, s.Reset())
	assert.Equal(t, 19, s.LitCount())

	_, statErr := os.Stat(p.Path())
	assert.True(t, os.IsNotExist(statErr), "persisted copy cleared")
}

func TestMutationsAreMirrored(t *testing.T) {
	dir := t.TempDir()
	p, err := NewJSONFile(dir, types.DefaultStorageKey)
	require.NoError(t, err)
	s, err := Open(p)
	require.NoError(t, err)

	_, _, err = s.Join("Raymond Lu")
	require.NoError(t, err)

	// A second store over the same file sees the change.
	p2, err := NewJSONFile(dir, types.DefaultStorageKey)
	require.NoError(t, err)
	s2, err := Open(p2)
	require.NoError(t, err)

	got, err := s2.Get("pen-2")
	require.NoError(t, err)
	assert.True(t, got.Lit)
}

func TestSnapshotIsACopy(t *testing.T) {
	s, err := Open(newTestPersister(t))
	require.NoError(t, err)

	snap := s.Snapshot()
	snap[0].Name = "mutated"

	got, err := s.Get(snap[0].ID)
	require.NoError(t, err)
	assert.NotEqual(t, "mutated", got.Name)
}

func TestSearch(t *testing.T) {
	s, err := Open(newTestPersister(t))
	require.NoError(t, err)

	hits := s.Search("wang")
	require.NotEmpty(t, hits)
	for _, p := range hits {
		assert.Contains(t, types.NormalizeName(p.Name), "wang")
	}

	assert.Len(t, s.Search(""), types.Capacity())
	assert.Empty(t, s.Search("zzz-no-such-name"))
}

func TestRemainingNeverNegative(t *testing.T) {
	// Imports may exceed nominal capacity; Remaining clamps at zero.
	list := types.SeedParticipants(time.Now())
	for i := range list {
		list[i].Lit = true
	}
	list = append(list, types.Participant{ID: "import-1", Name: "Overflow Guest", Origin: types.OriginImported, Lit: true})

	s := newStoreWith(t, list)
	assert.Equal(t, 0, s.Remaining())
}
