package cmd

import (
	"fmt"
	"os"

	"pfep-analyzer/core/analysis"
	"pfep-analyzer/core/config"
	"pfep-analyzer/core/logger"
	"pfep-analyzer/core/schema"
	"pfep-analyzer/core/tabular"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Flags for analyze command
	pfepPath      string
	inventoryPath string
	tolerance     float64
	exportPath    string
	useSample     bool
)

// analyzeCmd runs the full pipeline once against CSV files and prints the
// summary, without starting the server.
var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Run a one-shot analysis against CSV files",
	Long: `Run a one-shot analysis: load a PFEP reference and an inventory
snapshot from CSV, match, classify at the chosen tolerance and report the
summary.

Examples:
  # Analyze two CSV files at the default tolerance
  analyze --pfep pfep.csv --inventory stock.csv

  # Tighter band, export flat results
  analyze --pfep pfep.csv --inventory stock.csv --tolerance 10 --export results.csv

  # Demo run on the built-in sample datasets
  analyze --sample`,
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVar(&pfepPath, "pfep", "", "Path to the PFEP reference CSV")
	analyzeCmd.Flags().StringVar(&inventoryPath, "inventory", "", "Path to the inventory snapshot CSV")
	analyzeCmd.Flags().Float64Var(&tolerance, "tolerance", analysis.DefaultTolerance, "Tolerance band (10, 20, 30, 40, 50)")
	analyzeCmd.Flags().StringVar(&exportPath, "export", "", "Write flat results CSV to this path")
	analyzeCmd.Flags().BoolVar(&useSample, "sample", false, "Use the built-in sample datasets")

	RootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer l.Sync()

	if err := analysis.ValidateTolerance(tolerance); err != nil {
		return err
	}

	reference, inventory, err := loadDatasets(l)
	if err != nil {
		return err
	}

	validation := analysis.Validate(reference, inventory)
	for _, warning := range validation.Warnings {
		l.Warn(warning)
	}
	if !validation.IsReady {
		for _, issue := range validation.Issues {
			l.Error(issue)
		}
		return fmt.Errorf("datasets are not ready for analysis")
	}

	match := analysis.Match(reference, inventory)
	results := analysis.ClassifyAll(match.Matched, tolerance)
	report := analysis.Aggregate(results)

	l.Info("Analysis complete",
		zap.Float64("tolerance", tolerance),
		zap.Int("matched", len(results)),
		zap.Int("exact", match.Stats.Exact),
		zap.Int("part_only", match.Stats.PartOnly),
		zap.Int("unmatched_inventory", len(match.UnmatchedInventory)),
		zap.Int("unmatched_reference", len(match.UnmatchedReference)),
		zap.Float64("coverage_percent", validation.CoveragePercent))

	for _, status := range analysis.Statuses {
		summary := report.ByStatus[status]
		l.Info("Status bucket",
			zap.String("status", string(status)),
			zap.Int("parts", summary.Count),
			zap.Int64("value", summary.TotalValue))
	}

	l.Info("Totals",
		zap.Int("parts", report.TotalParts),
		zap.Int64("stock_value", report.TotalValue),
		zap.Float64("overall_variance_percent", report.OverallVariancePercent),
		zap.Float64("avg_variance_percent", report.AvgVariancePercent),
		zap.Int("vendors", len(report.Vendors)))

	if exportPath != "" {
		if err := writeExport(exportPath, results); err != nil {
			return err
		}
		l.Info("Exported flat results", zap.String("path", exportPath))
	}

	return nil
}

// loadDatasets reads both datasets from the flag-selected sources.
func loadDatasets(l *zap.Logger) ([]analysis.ReferenceItem, []analysis.InventoryItem, error) {
	if useSample {
		if pfepPath != "" || inventoryPath != "" {
			return nil, nil, fmt.Errorf("--sample cannot be combined with --pfep or --inventory")
		}
		l.Info("Using built-in sample datasets")
		return analysis.SampleReference(), analysis.SampleInventory(), nil
	}

	if pfepPath == "" || inventoryPath == "" {
		return nil, nil, fmt.Errorf("both --pfep and --inventory are required (or pass --sample)")
	}

	refTable, err := tabular.ReadCSVFile(pfepPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read %s: %w", pfepPath, err)
	}
	reference, refDropped, err := schema.BuildReference(refTable)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", pfepPath, err)
	}

	invTable, err := tabular.ReadCSVFile(inventoryPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read %s: %w", inventoryPath, err)
	}
	inventory, invDropped, err := schema.BuildInventory(invTable)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", inventoryPath, err)
	}

	l.Info("Datasets loaded",
		zap.Int("reference_rows", len(reference)),
		zap.Int("inventory_rows", len(inventory)),
		zap.Int("reference_dropped", refDropped),
		zap.Int("inventory_dropped", invDropped))
	return reference, inventory, nil
}

// writeExport writes the flat results CSV sorted by part number.
func writeExport(path string, results []analysis.AnalysisResult) error {
	analysis.SortResults(results, analysis.SortByPartNo)

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	if err := analysis.WriteCSV(f, results); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
