package calendar

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	agent   *Agent
	handler *Handler
}

// NewFeature creates the calendar feature.
func NewFeature(listings ListingService, remotes RemoteSource, logger *zap.Logger) *Feature {
	agent := NewAgent(listings, remotes, logger)
	return &Feature{agent: agent, handler: NewHandler(agent, logger)}
}

// Agent returns the underlying calendar sync agent.
func (f *Feature) Agent() *Agent {
	return f.agent
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "calendar"
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
