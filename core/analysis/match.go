package analysis

import "strings"

// matchKey normalizes a part identifier for joining: trimmed and
// case-insensitive.
func matchKey(partID string) string {
	return strings.ToUpper(strings.TrimSpace(partID))
}

func descKey(description string) string {
	return strings.ToUpper(strings.TrimSpace(description))
}

// Match joins the inventory snapshot against the reference set.
//
// Each inventory record independently searches the full reference set; the
// join is a stateless lookup, not an exclusive bipartite matching, so several
// inventory records may resolve to the same reference part. Per record, the
// policy is ordered and first-hit-wins:
//
//  1. part identifier + description both match -> MatchExact
//  2. part identifier matches some reference record (first in insertion
//     order) -> MatchPartOnly
//  3. otherwise the record lands in UnmatchedInventory
//
// UnmatchedReference lists reference parts that appear in no inventory
// record. It is informational input for the validator and never excludes
// those parts from reporting.
func Match(reference []ReferenceItem, inventory []InventoryItem) MatchResult {
	// Hash indices keep the join linear in the size of both tables.
	exactIndex := make(map[[2]string]int, len(reference))
	partIndex := make(map[string]int, len(reference))
	for i, ref := range reference {
		key := [2]string{matchKey(ref.PartID), descKey(ref.Description)}
		if _, ok := exactIndex[key]; !ok {
			exactIndex[key] = i
		}
		// First reference wins when part identifiers collide.
		if _, ok := partIndex[matchKey(ref.PartID)]; !ok {
			partIndex[matchKey(ref.PartID)] = i
		}
	}

	result := MatchResult{
		Matched:            make([]MatchedRecord, 0, len(inventory)),
		UnmatchedInventory: []InventoryItem{},
		UnmatchedReference: []ReferenceItem{},
	}

	seen := make(map[string]struct{}, len(inventory))
	for _, inv := range inventory {
		key := matchKey(inv.PartID)
		seen[key] = struct{}{}

		if i, ok := exactIndex[[2]string{key, descKey(inv.Description)}]; ok {
			result.Matched = append(result.Matched, MatchedRecord{
				Reference: reference[i],
				Inventory: inv,
				Kind:      MatchExact,
			})
			result.Stats.Exact++
			continue
		}

		if i, ok := partIndex[key]; ok {
			result.Matched = append(result.Matched, MatchedRecord{
				Reference: reference[i],
				Inventory: inv,
				Kind:      MatchPartOnly,
			})
			result.Stats.PartOnly++
			continue
		}

		result.UnmatchedInventory = append(result.UnmatchedInventory, inv)
		result.Stats.NoMatch++
	}

	for _, ref := range reference {
		if _, ok := seen[matchKey(ref.PartID)]; !ok {
			result.UnmatchedReference = append(result.UnmatchedReference, ref)
		}
	}

	return result
}
