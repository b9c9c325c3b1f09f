// Package reconcile merges imported spreadsheet rows into the current
// record list without duplicating participants or regressing lit status.
package reconcile

import "github.com/section308/heartboard/pkg/types"

// Merge applies a batch of imported records to a working copy of the
// current list and returns the merged list plus whether anything
// changed. Callers replace the store contents only when changed is
// true, avoiding redundant persistence writes.
//
// Records are processed in batch order; each sees the effects of the
// ones merged before it. Matching is name-based (case-insensitive,
// trimmed); the imported record's ID is consulted only to suppress
// re-appending the same unmatched row across repeated polling cycles.
// A record that is already lit is never modified, so re-importing the
// same claimed name is idempotent.
func Merge(current, batch []types.Participant) ([]types.Participant, bool) {
	working := make([]types.Participant, len(current))
	copy(working, current)

	changed := false
	for _, imp := range batch {
		norm := types.NormalizeName(imp.Name)
		if norm == "" {
			continue
		}

		idx := indexByName(working, norm)
		if idx >= 0 {
			existing := &working[idx]
			if existing.Lit {
				continue
			}
			existing.Lit = true
			if imp.Label != "" {
				existing.Label = imp.Label
			}
			changed = true
			continue
		}

		if hasID(working, imp.ID) {
			// Row already appended on an earlier cycle under the same
			// derived ID; never append it twice.
			continue
		}

		imp.Lit = true
		working = append(working, imp)
		changed = true
	}

	return working, changed
}

// indexByName returns the position of the first record whose normalized
// name equals norm, or -1.
func indexByName(list []types.Participant, norm string) int {
	for i := range list {
		if types.NormalizeName(list[i].Name) == norm {
			return i
		}
	}
	return -1
}

// hasID reports whether any record carries the given ID.
func hasID(list []types.Participant, id string) bool {
	for i := range list {
		if list[i].ID == id {
			return true
		}
	}
	return false
}
