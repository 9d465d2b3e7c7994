package analysis

import "fmt"

// AllowedTolerances is the tolerance set exposed by the HTTP and CLI
// surfaces. The classifier itself accepts any non-negative value; the
// restriction is an interface convention, not an engine invariant.
var AllowedTolerances = []float64{10, 20, 30, 40, 50}

// DefaultTolerance is the band applied when a caller picks none.
const DefaultTolerance = 30.0

// ValidateTolerance checks a caller-supplied tolerance against the allowed
// interface set.
func ValidateTolerance(tolerance float64) error {
	for _, allowed := range AllowedTolerances {
		if tolerance == allowed {
			return nil
		}
	}
	return fmt.Errorf("tolerance must be one of %v, got %g", AllowedTolerances, tolerance)
}

// Variance computes the percentage and absolute variance of on-hand stock
// against the target. A zero target yields zero percentage variance to guard
// the division; the absolute variance is still reported.
func Variance(onHandQty, targetQty float64) (percent, absolute float64) {
	absolute = onHandQty - targetQty
	if targetQty == 0 {
		return 0, absolute
	}
	return (onHandQty - targetQty) / targetQty * 100, absolute
}

// ClassifyVariance maps a percentage variance onto a status. The band is
// inclusive: a variance of exactly ±tolerance is still within norms.
func ClassifyVariance(variancePercent, tolerance float64) Status {
	switch {
	case variancePercent > tolerance:
		return StatusExcess
	case variancePercent < -tolerance:
		return StatusShort
	default:
		return StatusWithinNorms
	}
}

// Classify produces the analysis result for one matched record at the given
// tolerance. It is a pure function: re-invoking it with a new tolerance never
// requires re-running the matcher.
//
// A part with a zero target quantity always classifies as within norms, even
// with stock on hand. Callers needing stricter semantics for untargeted parts
// must layer it on top.
func Classify(record MatchedRecord, tolerance float64) AnalysisResult {
	percent, absolute := Variance(record.Inventory.OnHandQty, record.Reference.TargetQty)

	description := record.Inventory.Description
	if description == "" {
		description = record.Reference.Description
	}

	return AnalysisResult{
		PartID:           record.Inventory.PartID,
		Description:      description,
		OnHandQty:        record.Inventory.OnHandQty,
		TargetQty:        record.Reference.TargetQty,
		VariancePercent:  percent,
		VarianceAbsolute: absolute,
		Status:           ClassifyVariance(percent, tolerance),
		StockValue:       record.Inventory.StockValue,
		MatchKind:        record.Kind,
		VendorCode:       record.Reference.VendorCode,
		VendorName:       record.Reference.VendorName,
		City:             record.Reference.City,
		State:            record.Reference.State,
	}
}

// ClassifyAll classifies every matched record at the given tolerance.
func ClassifyAll(matched []MatchedRecord, tolerance float64) []AnalysisResult {
	results := make([]AnalysisResult, 0, len(matched))
	for _, record := range matched {
		results = append(results, Classify(record, tolerance))
	}
	return results
}
