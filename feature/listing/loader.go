package listing

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates the listing feature over the given store path.
func NewFeature(cfg Config, notifier Notifier, logger *zap.Logger) *Feature {
	svc := NewService(NewStore(cfg.Path), notifier, logger)
	h := NewHandler(svc, logger)
	return &Feature{service: svc, handler: h}
}

// Service returns the underlying listing service for other features.
func (f *Feature) Service() *Service {
	return f.service
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "listing"
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
