package analysis

import "fmt"

// Validate scores match coverage between the two datasets before (or
// alongside) an analysis run.
//
// The datasets are "ready" as soon as at least one analyzable pair exists.
// Partial coverage is expected and acceptable: reference parts missing from
// inventory and inventory parts missing from the reference are surfaced as
// warnings, never as blocking issues. Only zero overlap is a hard issue.
func Validate(reference []ReferenceItem, inventory []InventoryItem) ValidationResult {
	result := ValidationResult{
		Issues:   []string{},
		Warnings: []string{},
	}

	refKeys := make(map[string]struct{}, len(reference))
	for _, ref := range reference {
		refKeys[matchKey(ref.PartID)] = struct{}{}
	}

	invKeys := make(map[string]struct{}, len(inventory))
	zeroQty := 0
	for _, inv := range inventory {
		key := matchKey(inv.PartID)
		invKeys[key] = struct{}{}
		if _, ok := refKeys[key]; ok && inv.OnHandQty == 0 {
			zeroQty++
		}
	}

	overlap := 0
	for key := range refKeys {
		if _, ok := invKeys[key]; ok {
			overlap++
		}
	}

	result.IsReady = overlap > 0
	if len(reference) > 0 {
		result.CoveragePercent = float64(overlap) / float64(len(reference)) * 100
	}

	if !result.IsReady {
		result.Issues = append(result.Issues,
			"no part identifiers overlap between the PFEP reference and the inventory snapshot")
	}

	if missing := len(refKeys) - overlap; missing > 0 {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("%d reference part(s) have no inventory record", missing))
	}
	if extra := len(invKeys) - overlap; extra > 0 {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("%d inventory part(s) are not in the PFEP reference", extra))
	}
	if zeroQty > 0 {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("%d matched inventory record(s) report zero on-hand quantity", zeroQty))
	}

	return result
}
