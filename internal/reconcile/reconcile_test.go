package reconcile

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/section308/heartboard/pkg/types"
)

func participant(id, name, label string, lit bool) types.Participant {
	origin := types.OriginPending
	if lit {
		origin = types.OriginLegacy
	}
	return types.Participant{
		ID:        id,
		Name:      name,
		Origin:    origin,
		Timestamp: time.Now().UnixMilli(),
		Label:     label,
		Lit:       lit,
	}
}

func imported(id, name, label string) types.Participant {
	p := participant(id, name, label, true)
	p.Origin = types.OriginImported
	return p
}

func TestMergeLightsUnlitMatch(t *testing.T) {
	current := []types.Participant{
		participant("pen-1", "Jane Doe", "Presenter", false),
	}
	batch := []types.Participant{
		imported("import-1", " jane doe ", "Week 5"),
	}

	merged, changed := Merge(current, batch)
	require.True(t, changed)
	require.Len(t, merged, 1, "merge must not duplicate the participant")

	got := merged[0]
	assert.Equal(t, "pen-1", got.ID, "identifier preserved")
	assert.Equal(t, "Jane Doe", got.Name, "original casing preserved")
	assert.Equal(t, "Week 5", got.Label, "imported label adopted")
	assert.True(t, got.Lit)
}

func TestMergeKeepsLabelWhenImportedLabelEmpty(t *testing.T) {
	current := []types.Participant{
		participant("pen-1", "Jane Doe", "Presenter", false),
	}
	batch := []types.Participant{
		imported("import-1", "Jane Doe", ""),
	}

	merged, changed := Merge(current, batch)
	require.True(t, changed)
	assert.Equal(t, "Presenter", merged[0].Label)
	assert.True(t, merged[0].Lit)
}

func TestMergeLitMatchUntouched(t *testing.T) {
	current := []types.Participant{
		participant("leg-1", "Jane Doe", "Week 3", true),
	}
	batch := []types.Participant{
		imported("import-1", "jane doe", "Week 9"),
	}

	merged, changed := Merge(current, batch)
	assert.False(t, changed, "re-importing a claimed name is a no-op")
	require.Len(t, merged, 1)
	assert.Equal(t, "Week 3", merged[0].Label, "lit record never overwritten")
}

func TestMergeAppendsUnmatchedAsLit(t *testing.T) {
	current := []types.Participant{
		participant("leg-1", "Amy", "Week 3", true),
	}
	in := imported("import-2", "New Guest", "Week 7")
	in.Lit = false // importer always sets lit; the merge forces it anyway

	merged, changed := Merge(current, []types.Participant{in})
	require.True(t, changed)
	require.Len(t, merged, 2)
	assert.True(t, merged[1].Lit)
	assert.Equal(t, "import-2", merged[1].ID)
}

func TestMergeSuppressesDuplicateIDs(t *testing.T) {
	// An unmatched row appended on an earlier cycle keeps its derived
	// ID; if its name later changes in the sheet, the ID check stops a
	// second append.
	current := []types.Participant{
		participant("import-2", "Old Name", "Week 7", true),
	}
	batch := []types.Participant{
		imported("import-2", "Renamed Guest", "Week 7"),
	}

	merged, changed := Merge(current, batch)
	assert.False(t, changed)
	assert.Len(t, merged, 1)
}

func TestMergeIdempotentReimport(t *testing.T) {
	current := []types.Participant{
		participant("pen-1", "Jane Doe", "Presenter", false),
		participant("leg-1", "Amy", "Week 3", true),
	}
	batch := []types.Participant{
		imported("import-1", "Jane Doe", "Week 5"),
		imported("import-2", "New Guest", "Week 7"),
	}

	once, changed := Merge(current, batch)
	require.True(t, changed)

	twice, changedAgain := Merge(once, batch)
	assert.False(t, changedAgain, "second pass must not change the store")
	assert.Equal(t, once, twice)
}

func TestMergeBatchOrderWithinOneCall(t *testing.T) {
	// Later batch records see earlier ones already merged: the second
	// row matches the first by name and must not append a duplicate.
	batch := []types.Participant{
		imported("import-1", "Solo Guest", "Week 2"),
		imported("import-2", "solo guest", "Week 3"),
	}

	merged, changed := Merge(nil, batch)
	require.True(t, changed)
	require.Len(t, merged, 1)
	assert.Equal(t, "import-1", merged[0].ID)
	assert.Equal(t, "Week 2", merged[0].Label, "lit record from same batch not overwritten")
}

func TestMergeLitMonotonicity(t *testing.T) {
	current := []types.Participant{
		participant("leg-1", "Amy", "Week 3", true),
		participant("pen-1", "Jane Doe", "Presenter", false),
	}
	batches := [][]types.Participant{
		{imported("import-1", "Amy", "Week 9")},
		{imported("import-2", "Jane Doe", "Week 5")},
		{imported("import-3", "Extra Guest", "")},
	}

	list := current
	for _, b := range batches {
		list, _ = Merge(list, b)
		for _, p := range list {
			if p.ID == "leg-1" {
				assert.True(t, p.Lit, "lit status never regresses")
			}
		}
	}

	for _, p := range list {
		if p.ID == "pen-1" || p.ID == "import-3" {
			assert.True(t, p.Lit)
		}
	}
}

func TestMergeNoDuplicateIdentifiersAfterSequence(t *testing.T) {
	list := []types.Participant{
		participant("pen-1", "Jane Doe", "Presenter", false),
	}
	batch := []types.Participant{
		imported("import-1", "Jane Doe", "Week 5"),
		imported("import-2", "Guest A", ""),
		imported("import-3", "Guest B", ""),
	}

	for i := 0; i < 3; i++ {
		list, _ = Merge(list, batch)
	}

	seen := make(map[string]bool)
	for _, p := range list {
		assert.False(t, seen[p.ID], "duplicate ID %s", p.ID)
		seen[p.ID] = true
	}
	assert.Len(t, list, 3)
}

func TestMergeSkipsBlankNames(t *testing.T) {
	batch := []types.Participant{
		imported("import-1", "   ", "Week 1"),
	}
	merged, changed := Merge(nil, batch)
	assert.False(t, changed)
	assert.Empty(t, merged)
}

func TestMergeEmptyBatchLeavesStoreUntouched(t *testing.T) {
	current := []types.Participant{
		participant("leg-1", "Amy", "Week 3", true),
	}
	merged, changed := Merge(current, nil)
	assert.False(t, changed)
	assert.Equal(t, current, merged)
}
