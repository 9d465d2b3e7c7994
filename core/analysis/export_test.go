package analysis

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteCSV(t *testing.T) {
	results := []AnalysisResult{
		{
			PartID: "A1", Description: "Widget", OnHandQty: 12, TargetQty: 10,
			VariancePercent: 20, VarianceAbsolute: 2, Status: StatusWithinNorms,
			StockValue: 100, MatchKind: MatchExact,
			VendorCode: "V001", VendorName: "Vendor_A", City: "Mumbai", State: "Maharashtra",
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, results))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, FlatHeader, records[0])
	assert.Equal(t, []string{
		"A1", "Widget", "12.00", "10.00", "20.00", "2.00",
		"Within Norms", "100", "exact", "V001", "Vendor_A", "Mumbai", "Maharashtra",
	}, records[1])
}

func TestFilterResults(t *testing.T) {
	results := []AnalysisResult{
		{PartID: "A", Status: StatusExcess, VendorName: "Vendor_A"},
		{PartID: "B", Status: StatusShort, VendorName: "Vendor_A"},
		{PartID: "C", Status: StatusExcess, VendorName: "Vendor_B"},
	}

	assert.Len(t, FilterResults(results, "", ""), 3)
	assert.Len(t, FilterResults(results, StatusExcess, ""), 2)
	assert.Len(t, FilterResults(results, StatusExcess, "Vendor_A"), 1)
	assert.Empty(t, FilterResults(results, StatusWithinNorms, ""))
}

func TestSortResults(t *testing.T) {
	results := []AnalysisResult{
		{PartID: "B", VariancePercent: -80, StockValue: 5, OnHandQty: 3},
		{PartID: "A", VariancePercent: 20, StockValue: 9, OnHandQty: 1},
		{PartID: "C", VariancePercent: 50, StockValue: 1, OnHandQty: 7},
	}

	SortResults(results, SortByVariance)
	assert.Equal(t, []string{"B", "C", "A"}, partIDs(results))

	SortResults(results, SortByValue)
	assert.Equal(t, []string{"A", "B", "C"}, partIDs(results))

	SortResults(results, SortByQty)
	assert.Equal(t, []string{"C", "B", "A"}, partIDs(results))

	SortResults(results, SortByPartNo)
	assert.Equal(t, []string{"A", "B", "C"}, partIDs(results))
}

func partIDs(results []AnalysisResult) []string {
	ids := make([]string, len(results))
	for i, r := range results {
		ids[i] = r.PartID
	}
	return ids
}
