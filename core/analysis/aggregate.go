package analysis

import "sort"

// vendorFallback is the grouping key for results with neither a vendor name
// nor a vendor code.
const vendorFallback = "Unknown"

// vendorKey groups by vendor name, falling back to vendor code and finally
// to a literal "Unknown". Comparison is exact; vendor names are not
// case-normalized.
func vendorKey(r AnalysisResult) string {
	if r.VendorName != "" {
		return r.VendorName
	}
	if r.VendorCode != "" {
		return r.VendorCode
	}
	return vendorFallback
}

// Aggregate rolls classified results up into a summary report. All operations
// are order-independent sums and counts; the vendor list is sorted by name so
// serialized reports are deterministic.
func Aggregate(results []AnalysisResult) SummaryReport {
	report := SummaryReport{
		ByStatus: make(map[Status]StatusSummary, len(Statuses)),
	}

	// Pre-seed so absent statuses report zero counts instead of missing keys.
	for _, status := range Statuses {
		report.ByStatus[status] = StatusSummary{}
	}

	vendors := make(map[string]*VendorSummary)
	var varianceSum float64

	for _, r := range results {
		bucket := report.ByStatus[r.Status]
		bucket.Count++
		bucket.TotalValue += r.StockValue
		report.ByStatus[r.Status] = bucket

		key := vendorKey(r)
		vendor, ok := vendors[key]
		if !ok {
			vendor = &VendorSummary{
				VendorName: key,
				VendorCode: r.VendorCode,
				City:       r.City,
				State:      r.State,
			}
			vendors[key] = vendor
		}
		vendor.TotalParts++
		vendor.TotalCurrentQty += r.OnHandQty
		vendor.TotalTargetQty += r.TargetQty
		vendor.TotalValue += r.StockValue

		switch r.Status {
		case StatusExcess:
			vendor.ExcessParts++
			vendor.ExcessValue += r.StockValue
		case StatusShort:
			vendor.ShortParts++
			vendor.ShortValue += r.StockValue
		default:
			vendor.WithinParts++
			vendor.WithinValue += r.StockValue
		}

		report.TotalParts++
		report.TotalValue += r.StockValue
		report.TotalTargetQty += r.TargetQty
		report.TotalOnHandQty += r.OnHandQty
		varianceSum += r.VariancePercent
	}

	if report.TotalTargetQty != 0 {
		report.OverallVariancePercent = (report.TotalOnHandQty - report.TotalTargetQty) / report.TotalTargetQty * 100
	}
	if len(results) > 0 {
		report.AvgVariancePercent = varianceSum / float64(len(results))
	}

	report.Vendors = make([]VendorSummary, 0, len(vendors))
	for _, vendor := range vendors {
		report.Vendors = append(report.Vendors, *vendor)
	}
	sort.Slice(report.Vendors, func(i, j int) bool {
		return report.Vendors[i].VendorName < report.Vendors[j].VendorName
	})

	return report
}
