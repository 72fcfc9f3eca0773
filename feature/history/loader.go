package history

import (
	"context"

	"gear-tracker/core/reconcile"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	store   *Store
	service *Service
	handler *Handler
}

// NewFeature creates the history feature. It is disabled without a database.
func NewFeature(db *gorm.DB, source reconcile.Source, opts reconcile.Options, logger *zap.Logger) *Feature {
	f := &Feature{}
	if db != nil {
		f.store = NewStore(db)
		f.service = NewService(f.store, source, opts, logger)
		f.handler = NewHandler(f.service)
	}
	return f
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "history"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return f.store != nil
}

// Load migrates the change table and registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	if err := f.store.Migrate(context.Background()); err != nil {
		return err
	}
	f.handler.RegisterRoutes(app)
	return nil
}

// Service exposes the replay service for the CLI.
func (f *Feature) Service() *Service {
	return f.service
}
