package dataset

import (
	"pfep-analyzer/core/session"
	"pfep-analyzer/core/storage"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates the dataset feature.
func NewFeature(sess *session.Session, client storage.Client, bucket string, logger *zap.Logger, adminGuard fiber.Handler) *Feature {
	svc := NewService(sess, client, bucket, logger)
	h := NewHandler(svc, adminGuard)
	return &Feature{service: svc, handler: h}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "dataset"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
