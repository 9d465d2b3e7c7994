package analysis

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strconv"
)

// FlatHeader is the column order for flat exports of analysis results.
var FlatHeader = []string{
	"Part_No", "Description", "Current_QTY", "Target_QTY",
	"Variance_%", "Variance_Value", "Status", "Stock_Value",
	"Match_Kind", "Vendor_Code", "Vendor_Name", "City", "State",
}

// FlatRow renders one result as a flat string row in FlatHeader order. Every
// field of an analysis result is representable this way; the presentation
// layer only has to encode rows, never to re-derive values.
func FlatRow(r AnalysisResult) []string {
	return []string{
		r.PartID,
		r.Description,
		strconv.FormatFloat(r.OnHandQty, 'f', 2, 64),
		strconv.FormatFloat(r.TargetQty, 'f', 2, 64),
		strconv.FormatFloat(r.VariancePercent, 'f', 2, 64),
		strconv.FormatFloat(r.VarianceAbsolute, 'f', 2, 64),
		string(r.Status),
		strconv.FormatInt(r.StockValue, 10),
		string(r.MatchKind),
		r.VendorCode,
		r.VendorName,
		r.City,
		r.State,
	}
}

// WriteCSV encodes results as CSV with a header row.
func WriteCSV(w io.Writer, results []AnalysisResult) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(FlatHeader); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, r := range results {
		if err := writer.Write(FlatRow(r)); err != nil {
			return fmt.Errorf("failed to write CSV row for %s: %w", r.PartID, err)
		}
	}
	writer.Flush()
	return writer.Error()
}

// Sort keys accepted by SortResults.
const (
	SortByPartNo   = "part_no"
	SortByVariance = "variance"
	SortByValue    = "value"
	SortByQty      = "qty"
)

// FilterResults returns the results matching the given status and vendor
// name. Empty filter values match everything.
func FilterResults(results []AnalysisResult, status Status, vendor string) []AnalysisResult {
	filtered := make([]AnalysisResult, 0, len(results))
	for _, r := range results {
		if status != "" && r.Status != status {
			continue
		}
		if vendor != "" && r.VendorName != vendor {
			continue
		}
		filtered = append(filtered, r)
	}
	return filtered
}

// SortResults orders results in place. Variance sorts by absolute variance
// descending so the largest deviations surface first; value and quantity also
// sort descending; part number sorts ascending.
func SortResults(results []AnalysisResult, key string) {
	switch key {
	case SortByVariance:
		sort.SliceStable(results, func(i, j int) bool {
			return abs(results[i].VariancePercent) > abs(results[j].VariancePercent)
		})
	case SortByValue:
		sort.SliceStable(results, func(i, j int) bool {
			return results[i].StockValue > results[j].StockValue
		})
	case SortByQty:
		sort.SliceStable(results, func(i, j int) bool {
			return results[i].OnHandQty > results[j].OnHandQty
		})
	default:
		sort.SliceStable(results, func(i, j int) bool {
			return results[i].PartID < results[j].PartID
		})
	}
}

func abs(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}
