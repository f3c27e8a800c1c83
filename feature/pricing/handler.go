package pricing

import (
	"errors"

	"listing-manager/core/logger"
	"listing-manager/feature/listing"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for the pricing agent.
type Handler struct {
	agent  *Agent
	logger *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(agent *Agent, logger *zap.Logger) *Handler {
	return &Handler{agent: agent, logger: logger}
}

// RegisterRoutes registers the pricing routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/pricing")
	group.Post("/run", h.HandleRunAll)
	group.Post("/:id", h.HandleRunOne)
}

// HandleRunAll runs the pricing rule for every listing.
func (h *Handler) HandleRunAll(c *fiber.Ctx) error {
	updated, err := h.agent.RunAll(c.Context())
	if err != nil {
		logger.WithRayID(h.logger, c).Error("Pricing run failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"updated": len(updated), "listings": updated})
}

// HandleRunOne runs the pricing rule for a single listing.
func (h *Handler) HandleRunOne(c *fiber.Ctx) error {
	l, err := h.agent.RunForListing(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, listing.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Listing not found"})
		}
		logger.WithRayID(h.logger, c).Error("Pricing run failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(l)
}
