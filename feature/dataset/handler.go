package dataset

import (
	"bytes"
	"errors"

	"pfep-analyzer/core/logger"
	"pfep-analyzer/core/schema"
	"pfep-analyzer/core/session"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for dataset management.
type Handler struct {
	service    *Service
	adminGuard fiber.Handler
}

// NewHandler creates a new HTTP handler. adminGuard protects PFEP
// master-data management routes.
func NewHandler(service *Service, adminGuard fiber.Handler) *Handler {
	return &Handler{service: service, adminGuard: adminGuard}
}

// RegisterRoutes registers the dataset routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/datasets")
	group.Get("/", h.HandleStatus)
	group.Get("/storage", h.HandleListStorage)

	pfep := group.Group("/pfep", h.adminGuard)
	pfep.Post("/", h.upload(session.KindReference))
	pfep.Post("/storage", h.fromStorage(session.KindReference))
	pfep.Post("/sample", h.sample(session.KindReference))
	pfep.Post("/lock", h.lock(session.KindReference, true))
	pfep.Delete("/lock", h.lock(session.KindReference, false))

	inventory := group.Group("/inventory")
	inventory.Post("/", h.upload(session.KindInventory))
	inventory.Post("/storage", h.fromStorage(session.KindInventory))
	inventory.Post("/sample", h.sample(session.KindInventory))
	inventory.Post("/lock", h.lock(session.KindInventory, true))
	inventory.Delete("/lock", h.lock(session.KindInventory, false))
}

// HandleStatus reports both datasets' metadata.
// @Summary Dataset status
// @Description Returns load metadata and lock state for the PFEP reference and the inventory snapshot.
// @Tags datasets
// @Produce json
// @Success 200 {object} map[string]interface{} "Dataset status"
// @Router /datasets [get]
func (h *Handler) HandleStatus(c *fiber.Ctx) error {
	reference, inventory := h.service.Status()
	return c.JSON(fiber.Map{
		"pfep":      reference,
		"inventory": inventory,
	})
}

// HandleListStorage lists CSV objects available for ingestion.
// @Summary List ingestible objects
// @Description Lists CSV objects in the configured dataset bucket.
// @Tags datasets
// @Produce json
// @Success 200 {object} map[string]interface{} "Object list"
// @Failure 502 {object} map[string]string "Storage unavailable"
// @Router /datasets/storage [get]
func (h *Handler) HandleListStorage(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	objects, err := h.service.ListStorageObjects(c.Context())
	if err != nil {
		l.Error("Storage listing failed", zap.Error(err))
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"objects": objects})
}

// upload loads a dataset from a CSV request body.
func (h *Handler) upload(kind session.Kind) fiber.Handler {
	return func(c *fiber.Ctx) error {
		l := logger.WithRayID(h.service.logger, c)

		body := c.Body()
		if len(body) == 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "empty request body, expected CSV"})
		}

		var info session.DatasetInfo
		var err error
		if kind == session.KindReference {
			info, err = h.service.LoadReferenceCSV(bytes.NewReader(body), "upload")
		} else {
			info, err = h.service.LoadInventoryCSV(bytes.NewReader(body), "upload")
		}
		if err != nil {
			return h.loadError(c, l, kind, err)
		}

		l.Info("Dataset loaded",
			zap.String("kind", string(kind)),
			zap.Int("rows", info.Rows),
			zap.Int("dropped", info.Dropped))
		return c.Status(fiber.StatusCreated).JSON(info)
	}
}

// fromStorage ingests a dataset object from the bucket. The object name
// comes from the "object" query parameter.
func (h *Handler) fromStorage(kind session.Kind) fiber.Handler {
	return func(c *fiber.Ctx) error {
		l := logger.WithRayID(h.service.logger, c)

		objectName := c.Query("object")
		if objectName == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "missing object query parameter"})
		}

		info, err := h.service.LoadFromStorage(c.Context(), kind, objectName)
		if err != nil {
			return h.loadError(c, l, kind, err)
		}

		l.Info("Dataset ingested from storage",
			zap.String("kind", string(kind)),
			zap.String("object", objectName),
			zap.Int("rows", info.Rows))
		return c.Status(fiber.StatusCreated).JSON(info)
	}
}

func (h *Handler) sample(kind session.Kind) fiber.Handler {
	return func(c *fiber.Ctx) error {
		info, err := h.service.LoadSample(kind)
		if err != nil {
			return h.loadError(c, logger.WithRayID(h.service.logger, c), kind, err)
		}
		return c.Status(fiber.StatusCreated).JSON(info)
	}
}

func (h *Handler) lock(kind session.Kind, locked bool) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := h.service.SetLock(kind, locked); err != nil {
			if errors.Is(err, session.ErrNotLoaded) {
				return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
		return c.JSON(fiber.Map{"kind": kind, "locked": locked})
	}
}

// loadError maps dataset load failures onto HTTP statuses: locked datasets
// conflict, schema rejections are unprocessable, anything else is a bad
// request.
func (h *Handler) loadError(c *fiber.Ctx, l *zap.Logger, kind session.Kind, err error) error {
	var schemaErr *schema.SchemaError
	switch {
	case errors.Is(err, session.ErrLocked):
		l.Warn("Rejected write to locked dataset", zap.String("kind", string(kind)))
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
	case errors.As(err, &schemaErr):
		l.Warn("Dataset rejected by schema",
			zap.String("kind", string(kind)),
			zap.Strings("missing", schemaErr.Missing))
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error":   schemaErr.Error(),
			"missing": schemaErr.Missing,
		})
	default:
		l.Error("Dataset load failed", zap.String("kind", string(kind)), zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
}
