package analysis

import (
	"fmt"
	"io"

	"pfep-analyzer/core/analysis"
	"pfep-analyzer/core/session"

	"go.uber.org/zap"
)

// ErrNotReady is returned when the loaded datasets share no part identifier
// and no analyzable pair exists.
var ErrNotReady = fmt.Errorf("datasets are not ready for analysis")

// Run is the full output of one analysis run.
type Run struct {
	Tolerance          float64                   `json:"tolerance"`
	Results            []analysis.AnalysisResult `json:"results"`
	Stats              analysis.MatchStats       `json:"stats"`
	UnmatchedInventory []analysis.InventoryItem  `json:"unmatched_inventory"`
	UnmatchedReference []analysis.ReferenceItem  `json:"unmatched_reference"`
	Validation         analysis.ValidationResult `json:"validation"`
}

// Service runs the analysis pipeline over session snapshots.
type Service struct {
	session *session.Session
	logger  *zap.Logger
}

// NewService creates a new analysis service.
func NewService(sess *session.Session, logger *zap.Logger) *Service {
	return &Service{session: sess, logger: logger}
}

// Tolerance resolves the effective tolerance for a run: the session default
// unless the caller supplied one.
func (s *Service) Tolerance(requested *float64) (float64, error) {
	if requested == nil {
		return s.session.Tolerance(), nil
	}
	if err := analysis.ValidateTolerance(*requested); err != nil {
		return 0, err
	}
	return *requested, nil
}

// Validation scores the current datasets without running the pipeline.
func (s *Service) Validation() analysis.ValidationResult {
	reference, inventory := s.session.Snapshot()
	return analysis.Validate(reference, inventory)
}

// Analyze executes the full pipeline at the given tolerance. It fails with
// ErrNotReady when validation finds no analyzable pair; the validation result
// is still returned alongside the error for reporting.
func (s *Service) Analyze(tolerance float64) (*Run, error) {
	reference, inventory := s.session.Snapshot()

	validation := analysis.Validate(reference, inventory)
	run := &Run{Tolerance: tolerance, Validation: validation}
	if !validation.IsReady {
		return run, ErrNotReady
	}

	match := analysis.Match(reference, inventory)
	run.Results = analysis.ClassifyAll(match.Matched, tolerance)
	run.Stats = match.Stats
	run.UnmatchedInventory = match.UnmatchedInventory
	run.UnmatchedReference = match.UnmatchedReference

	s.logger.Info("Analysis complete",
		zap.Float64("tolerance", tolerance),
		zap.Int("matched", len(run.Results)),
		zap.Int("unmatched_inventory", len(run.UnmatchedInventory)),
		zap.Int("unmatched_reference", len(run.UnmatchedReference)))

	return run, nil
}

// Summarize runs the pipeline and aggregates the results.
func (s *Service) Summarize(tolerance float64) (analysis.SummaryReport, error) {
	run, err := s.Analyze(tolerance)
	if err != nil {
		return analysis.SummaryReport{}, err
	}
	return analysis.Aggregate(run.Results), nil
}

// ExportCSV runs the pipeline and writes the classified results as flat CSV
// rows, sorted by part number for stable exports.
func (s *Service) ExportCSV(w io.Writer, tolerance float64) error {
	run, err := s.Analyze(tolerance)
	if err != nil {
		return err
	}
	analysis.SortResults(run.Results, analysis.SortByPartNo)
	return analysis.WriteCSV(w, run.Results)
}
