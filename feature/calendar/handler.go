package calendar

import (
	"errors"

	"listing-manager/core/logger"
	"listing-manager/feature/listing"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for the calendar sync agent.
type Handler struct {
	agent  *Agent
	logger *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(agent *Agent, logger *zap.Logger) *Handler {
	return &Handler{agent: agent, logger: logger}
}

// RegisterRoutes registers the calendar routes. The static /sync route must
// precede /:id.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/calendar")
	group.Post("/sync", h.HandleSyncAll)
	group.Post("/:id", h.HandleSyncOne)
}

// HandleSyncAll syncs every listing's availability from its remote calendar.
func (h *Handler) HandleSyncAll(c *fiber.Ctx) error {
	results, err := h.agent.SyncAll(c.Context())
	if err != nil {
		logger.WithRayID(h.logger, c).Error("Calendar sync failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"synced": len(results), "results": results})
}

// HandleSyncOne syncs a single listing's availability.
func (h *Handler) HandleSyncOne(c *fiber.Ctx) error {
	result, err := h.agent.SyncOne(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, listing.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Listing not found"})
		}
		logger.WithRayID(h.logger, c).Error("Calendar sync failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(result)
}
