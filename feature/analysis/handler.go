package analysis

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"

	"pfep-analyzer/core/analysis"
	"pfep-analyzer/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for analysis runs.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the analysis routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/analysis")
	group.Get("/", h.HandleAnalysis)
	group.Get("/summary", h.HandleSummary)
	group.Get("/vendors", h.HandleVendors)
	group.Get("/validation", h.HandleValidation)
	group.Get("/export", h.HandleExport)
}

// HandleAnalysis runs the pipeline and returns classified results.
// @Summary Run analysis
// @Description Matches inventory against the PFEP reference and classifies every part at the requested tolerance.
// @Tags analysis
// @Produce json
// @Param tolerance query number false "Tolerance band (10, 20, 30, 40, 50)"
// @Param status query string false "Filter by status"
// @Param vendor query string false "Filter by vendor name"
// @Param sort query string false "Sort key (part_no, variance, value, qty); defaults to part_no"
// @Success 200 {object} Run "Analysis results"
// @Failure 409 {object} map[string]interface{} "Datasets not ready"
// @Router /analysis [get]
func (h *Handler) HandleAnalysis(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	tolerance, err := h.tolerance(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	key, err := sortKey(c.Query("sort"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	run, err := h.service.Analyze(tolerance)
	if err != nil {
		return h.runError(c, l, run, err)
	}

	run.Results = analysis.FilterResults(run.Results,
		analysis.Status(c.Query("status")), c.Query("vendor"))
	analysis.SortResults(run.Results, key)

	return c.JSON(run)
}

// sortKey validates the optional sort query parameter. Absent, results sort
// by part number.
func sortKey(raw string) (string, error) {
	switch raw {
	case "":
		return analysis.SortByPartNo, nil
	case analysis.SortByPartNo, analysis.SortByVariance, analysis.SortByValue, analysis.SortByQty:
		return raw, nil
	default:
		return "", fmt.Errorf("sort must be one of part_no, variance, value, qty, got %q", raw)
	}
}

// HandleSummary returns the aggregated report.
// @Summary Summary report
// @Description Per-status counts and values plus global totals for the current datasets.
// @Tags analysis
// @Produce json
// @Param tolerance query number false "Tolerance band (10, 20, 30, 40, 50)"
// @Success 200 {object} map[string]interface{} "Summary report"
// @Failure 409 {object} map[string]interface{} "Datasets not ready"
// @Router /analysis/summary [get]
func (h *Handler) HandleSummary(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	tolerance, err := h.tolerance(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	report, err := h.service.Summarize(tolerance)
	if err != nil {
		return h.runError(c, l, nil, err)
	}

	return c.JSON(fiber.Map{"tolerance": tolerance, "summary": report})
}

// HandleVendors returns the per-vendor rollup.
// @Summary Vendor rollup
// @Description Per-vendor part counts, quantities and values with per-status breakdowns.
// @Tags analysis
// @Produce json
// @Param tolerance query number false "Tolerance band (10, 20, 30, 40, 50)"
// @Success 200 {object} map[string]interface{} "Vendor summaries"
// @Failure 409 {object} map[string]interface{} "Datasets not ready"
// @Router /analysis/vendors [get]
func (h *Handler) HandleVendors(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	tolerance, err := h.tolerance(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	report, err := h.service.Summarize(tolerance)
	if err != nil {
		return h.runError(c, l, nil, err)
	}

	return c.JSON(fiber.Map{"tolerance": tolerance, "vendors": report.Vendors})
}

// HandleValidation scores the datasets without running the full pipeline.
// @Summary Validate datasets
// @Description Match-coverage score and data-quality warnings for the loaded datasets.
// @Tags analysis
// @Produce json
// @Success 200 {object} map[string]interface{} "Validation result"
// @Router /analysis/validation [get]
func (h *Handler) HandleValidation(c *fiber.Ctx) error {
	return c.JSON(h.service.Validation())
}

// HandleExport streams the classified results as CSV.
// @Summary Export analysis
// @Description Flat CSV export of every classified result.
// @Tags analysis
// @Produce text/csv
// @Param tolerance query number false "Tolerance band (10, 20, 30, 40, 50)"
// @Success 200 {string} string "CSV content"
// @Failure 409 {object} map[string]interface{} "Datasets not ready"
// @Router /analysis/export [get]
func (h *Handler) HandleExport(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	tolerance, err := h.tolerance(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var buf bytes.Buffer
	if err := h.service.ExportCSV(&buf, tolerance); err != nil {
		return h.runError(c, l, nil, err)
	}

	c.Set(fiber.HeaderContentType, "text/csv")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="inventory_analysis.csv"`)
	return c.Send(buf.Bytes())
}

// tolerance resolves the optional tolerance query parameter.
func (h *Handler) tolerance(c *fiber.Ctx) (float64, error) {
	raw := c.Query("tolerance")
	if raw == "" {
		return h.service.Tolerance(nil)
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, errors.New("tolerance must be a number")
	}
	return h.service.Tolerance(&value)
}

// runError maps pipeline failures onto HTTP statuses. Unready datasets are a
// conflict carrying the validation result so callers can see why.
func (h *Handler) runError(c *fiber.Ctx, l *zap.Logger, run *Run, err error) error {
	if errors.Is(err, ErrNotReady) {
		l.Warn("Analysis rejected, datasets not ready")
		response := fiber.Map{"error": err.Error()}
		if run != nil {
			response["validation"] = run.Validation
		}
		return c.Status(fiber.StatusConflict).JSON(response)
	}
	l.Error("Analysis failed", zap.Error(err))
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
}
