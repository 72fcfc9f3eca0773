package integrity

import (
	"gear-tracker/core/storage"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates a new integrity feature. db may be nil, in which case
// the schema check reports that no database is connected.
func NewFeature(client storage.Client, bucket, region string, db *gorm.DB, logger *zap.Logger) *Feature {
	svc := NewService(client, bucket, region, db, logger)
	return &Feature{
		service: svc,
		handler: NewHandler(svc),
	}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "integrity"
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

// Service exposes the checks for the CLI.
func (f *Feature) Service() *Service {
	return f.service
}
