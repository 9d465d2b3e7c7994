package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyVariance(t *testing.T) {
	tests := []struct {
		name      string
		variance  float64
		tolerance float64
		want      Status
	}{
		{"Zero variance", 0, 30, StatusWithinNorms},
		{"Inside band positive", 29.9, 30, StatusWithinNorms},
		{"Inside band negative", -29.9, 30, StatusWithinNorms},
		{"Exactly tolerance", 30, 30, StatusWithinNorms},
		{"Exactly negative tolerance", -30, 30, StatusWithinNorms},
		{"Just above tolerance", 30.000001, 30, StatusExcess},
		{"Just below negative tolerance", -30.000001, 30, StatusShort},
		{"Far excess", 120, 10, StatusExcess},
		{"Far short", -95, 50, StatusShort},
		{"Zero tolerance zero variance", 0, 0, StatusWithinNorms},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyVariance(tt.variance, tt.tolerance))
		})
	}
}

func TestVariance(t *testing.T) {
	percent, absolute := Variance(12, 10)
	assert.InDelta(t, 20, percent, 1e-9)
	assert.InDelta(t, 2, absolute, 1e-9)

	percent, absolute = Variance(5, 0)
	assert.Equal(t, 0.0, percent)
	assert.Equal(t, 5.0, absolute)
}

// A matched quantity is always within norms, whatever the tolerance.
func TestClassify_ExactTargetAlwaysWithin(t *testing.T) {
	for _, tolerance := range []float64{0, 10, 20, 30, 40, 50} {
		record := MatchedRecord{
			Reference: ReferenceItem{PartID: "A1", TargetQty: 17},
			Inventory: InventoryItem{PartID: "A1", OnHandQty: 17},
			Kind:      MatchExact,
		}
		result := Classify(record, tolerance)
		assert.Equal(t, StatusWithinNorms, result.Status, "tolerance %g", tolerance)
		assert.Equal(t, 0.0, result.VariancePercent)
	}
}

// Zero target quantity classifies as within norms even with stock on hand.
// Documented simplification carried over from the source system.
func TestClassify_ZeroTarget(t *testing.T) {
	record := MatchedRecord{
		Reference: ReferenceItem{PartID: "A1", TargetQty: 0},
		Inventory: InventoryItem{PartID: "A1", OnHandQty: 42},
		Kind:      MatchPartOnly,
	}

	result := Classify(record, 30)

	assert.Equal(t, StatusWithinNorms, result.Status)
	assert.Equal(t, 0.0, result.VariancePercent)
	assert.Equal(t, 42.0, result.VarianceAbsolute)
}

// Inventory description wins; the reference description fills the gap when
// the snapshot has none.
func TestClassify_DescriptionFallback(t *testing.T) {
	record := MatchedRecord{
		Reference: ReferenceItem{PartID: "A1", Description: "From reference", TargetQty: 10},
		Inventory: InventoryItem{PartID: "A1", Description: "", OnHandQty: 10},
		Kind:      MatchPartOnly,
	}
	assert.Equal(t, "From reference", Classify(record, 30).Description)

	record.Inventory.Description = "From inventory"
	assert.Equal(t, "From inventory", Classify(record, 30).Description)
}

func TestValidateTolerance(t *testing.T) {
	for _, tolerance := range AllowedTolerances {
		assert.NoError(t, ValidateTolerance(tolerance))
	}
	assert.Error(t, ValidateTolerance(15))
	assert.Error(t, ValidateTolerance(-10))
	assert.Error(t, ValidateTolerance(0))
}

func TestClassifyAll_Reclassification(t *testing.T) {
	matched := []MatchedRecord{
		{
			Reference: ReferenceItem{PartID: "A1", TargetQty: 10},
			Inventory: InventoryItem{PartID: "A1", OnHandQty: 12.5},
			Kind:      MatchExact,
		},
	}

	loose := ClassifyAll(matched, 30)
	strict := ClassifyAll(matched, 20)

	assert.Equal(t, StatusWithinNorms, loose[0].Status)
	assert.Equal(t, StatusExcess, strict[0].Status)
	// Variance itself is tolerance-independent.
	assert.Equal(t, loose[0].VariancePercent, strict[0].VariancePercent)
}
