package capture

import (
	"gear-tracker/core/storage"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	store   *Store
	service *Service
	handler *Handler
}

// NewFeature creates the capture feature on bucket.
func NewFeature(client storage.Client, bucket string, logger *zap.Logger) *Feature {
	store := NewStore(client, bucket)
	svc := NewService(store, logger)
	return &Feature{store: store, service: svc, handler: NewHandler(svc)}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "capture"
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

// Store exposes the capture store so other features can replay from it.
func (f *Feature) Store() *Store {
	return f.store
}
