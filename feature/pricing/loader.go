package pricing

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	agent   *Agent
	handler *Handler
}

// NewFeature creates the pricing feature.
func NewFeature(listings ListingService, competitors CompetitorSource, logger *zap.Logger) *Feature {
	agent := NewAgent(listings, competitors, logger)
	return &Feature{agent: agent, handler: NewHandler(agent, logger)}
}

// Agent returns the underlying pricing agent.
func (f *Feature) Agent() *Agent {
	return f.agent
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "pricing"
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
