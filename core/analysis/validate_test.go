package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_ZeroOverlap(t *testing.T) {
	reference := []ReferenceItem{{PartID: "A1", TargetQty: 5}}
	inventory := []InventoryItem{{PartID: "Z9", OnHandQty: 5}}

	result := Validate(reference, inventory)

	assert.False(t, result.IsReady)
	require.Len(t, result.Issues, 1)
	assert.Equal(t, 0.0, result.CoveragePercent)
}

func TestValidate_AnyOverlapIsReady(t *testing.T) {
	reference := []ReferenceItem{
		{PartID: "A1", TargetQty: 5},
		{PartID: "B2", TargetQty: 5},
		{PartID: "C3", TargetQty: 5},
		{PartID: "D4", TargetQty: 5},
	}
	inventory := []InventoryItem{{PartID: "a1", OnHandQty: 5}}

	result := Validate(reference, inventory)

	// Partial coverage is acceptable; only zero overlap blocks analysis.
	assert.True(t, result.IsReady)
	assert.Empty(t, result.Issues)
	assert.InDelta(t, 25.0, result.CoveragePercent, 1e-9)
	assert.Contains(t, result.Warnings[0], "3 reference part(s)")
}

func TestValidate_ExtraInventoryIsWarning(t *testing.T) {
	reference := []ReferenceItem{{PartID: "A1", TargetQty: 5}}
	inventory := []InventoryItem{
		{PartID: "A1", OnHandQty: 5},
		{PartID: "Z9", OnHandQty: 1},
	}

	result := Validate(reference, inventory)

	assert.True(t, result.IsReady)
	assert.Empty(t, result.Issues)
	require.Len(t, result.Warnings, 1)
	assert.Contains(t, result.Warnings[0], "1 inventory part(s)")
}

func TestValidate_ZeroQuantityWarning(t *testing.T) {
	reference := []ReferenceItem{{PartID: "A1", TargetQty: 5}}
	inventory := []InventoryItem{{PartID: "A1", OnHandQty: 0}}

	result := Validate(reference, inventory)

	assert.True(t, result.IsReady)
	require.Len(t, result.Warnings, 1)
	assert.Contains(t, result.Warnings[0], "zero on-hand quantity")
}

func TestValidate_EmptyReference(t *testing.T) {
	result := Validate(nil, []InventoryItem{{PartID: "A1", OnHandQty: 5}})

	assert.False(t, result.IsReady)
	assert.Equal(t, 0.0, result.CoveragePercent)
}
