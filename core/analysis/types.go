package analysis

// Status classifies a matched part's stock level relative to its PFEP target.
type Status string

const (
	// StatusWithinNorms means the variance is inside the tolerance band.
	StatusWithinNorms Status = "Within Norms"
	// StatusExcess means on-hand stock exceeds the target beyond tolerance.
	StatusExcess Status = "Excess Inventory"
	// StatusShort means on-hand stock falls below the target beyond tolerance.
	StatusShort Status = "Short Inventory"
)

// Statuses lists all statuses in reporting order.
var Statuses = []Status{StatusWithinNorms, StatusExcess, StatusShort}

// MatchKind records how an inventory record was joined to the reference set.
type MatchKind string

const (
	// MatchExact means part identifier and description both matched.
	MatchExact MatchKind = "exact"
	// MatchPartOnly means only the part identifier matched.
	MatchPartOnly MatchKind = "part_only"
)

// ReferenceItem is one row of the PFEP master table: the target stock
// quantity for a part plus vendor and location metadata. Items are immutable
// once loaded.
type ReferenceItem struct {
	PartID      string  `json:"part_id"`
	Description string  `json:"description"`
	TargetQty   float64 `json:"target_qty"`
	VendorCode  string  `json:"vendor_code"`
	VendorName  string  `json:"vendor_name"`
	City        string  `json:"city"`
	State       string  `json:"state"`
}

// InventoryItem is one row of the current-inventory snapshot.
type InventoryItem struct {
	PartID      string  `json:"part_id"`
	Description string  `json:"description"`
	OnHandQty   float64 `json:"on_hand_qty"`
	StockValue  int64   `json:"stock_value"`
}

// MatchedRecord pairs an inventory record with the reference record it was
// joined to.
type MatchedRecord struct {
	Reference ReferenceItem `json:"reference"`
	Inventory InventoryItem `json:"inventory"`
	Kind      MatchKind     `json:"match_kind"`
}

// MatchStats counts join outcomes. Observability only; never drives control
// flow.
type MatchStats struct {
	Exact    int `json:"exact"`
	PartOnly int `json:"part_only"`
	NoMatch  int `json:"no_match"`
}

// MatchResult is the full output of the record matcher.
type MatchResult struct {
	Matched            []MatchedRecord `json:"matched"`
	UnmatchedInventory []InventoryItem `json:"unmatched_inventory"`
	UnmatchedReference []ReferenceItem `json:"unmatched_reference"`
	Stats              MatchStats      `json:"stats"`
}

// AnalysisResult is the classified outcome for one matched record. It carries
// the joined reference fields so it can be rendered or exported as a single
// flat row.
type AnalysisResult struct {
	PartID           string    `json:"part_id"`
	Description      string    `json:"description"`
	OnHandQty        float64   `json:"on_hand_qty"`
	TargetQty        float64   `json:"target_qty"`
	VariancePercent  float64   `json:"variance_percent"`
	VarianceAbsolute float64   `json:"variance_absolute"`
	Status           Status    `json:"status"`
	StockValue       int64     `json:"stock_value"`
	MatchKind        MatchKind `json:"match_kind"`
	VendorCode       string    `json:"vendor_code"`
	VendorName       string    `json:"vendor_name"`
	City             string    `json:"city"`
	State            string    `json:"state"`
}

// StatusSummary is the rollup for one status bucket.
type StatusSummary struct {
	Count      int   `json:"count"`
	TotalValue int64 `json:"total_value"`
}

// VendorSummary is the rollup for one vendor group.
type VendorSummary struct {
	VendorName      string  `json:"vendor_name"`
	VendorCode      string  `json:"vendor_code"`
	City            string  `json:"city"`
	State           string  `json:"state"`
	TotalParts      int     `json:"total_parts"`
	TotalCurrentQty float64 `json:"total_current_qty"`
	TotalTargetQty  float64 `json:"total_target_qty"`
	TotalValue      int64   `json:"total_value"`

	WithinParts int   `json:"within_parts"`
	ExcessParts int   `json:"excess_parts"`
	ShortParts  int   `json:"short_parts"`
	WithinValue int64 `json:"within_value"`
	ExcessValue int64 `json:"excess_value"`
	ShortValue  int64 `json:"short_value"`
}

// SummaryReport aggregates a classified analysis run.
type SummaryReport struct {
	ByStatus map[Status]StatusSummary `json:"by_status"`
	Vendors  []VendorSummary          `json:"vendors"`

	TotalParts             int     `json:"total_parts"`
	TotalValue             int64   `json:"total_value"`
	TotalTargetQty         float64 `json:"total_target_qty"`
	TotalOnHandQty         float64 `json:"total_on_hand_qty"`
	OverallVariancePercent float64 `json:"overall_variance_percent"`
	AvgVariancePercent     float64 `json:"avg_variance_percent"`
}

// ValidationResult scores whether the loaded datasets are analyzable.
// Warnings are informational; only zero part-identifier overlap blocks a run.
type ValidationResult struct {
	IsReady         bool     `json:"is_ready"`
	Issues          []string `json:"issues"`
	Warnings        []string `json:"warnings"`
	CoveragePercent float64  `json:"coverage_percent"`
}
