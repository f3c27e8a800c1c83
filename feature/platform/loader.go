package platform

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	publisher *Publisher
	handler   *Handler
}

// NewFeature creates the platform feature.
func NewFeature(cfg Config, listings ListingService, logger *zap.Logger) *Feature {
	pub := NewPublisher(cfg, logger)
	h := NewHandler(listings, pub, logger)
	return &Feature{publisher: pub, handler: h}
}

// Publisher returns the underlying publisher for other features.
func (f *Feature) Publisher() *Publisher {
	return f.publisher
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "platform"
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
