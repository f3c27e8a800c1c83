package webhook

import (
	"encoding/json"

	"listing-manager/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler receives inbound platform webhooks and hands them to the queue.
type Handler struct {
	queue  Enqueuer
	logger *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(queue Enqueuer, logger *zap.Logger) *Handler {
	return &Handler{queue: queue, logger: logger}
}

// RegisterRoutes registers the webhook routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/webhooks")
	group.Post("/platform", h.HandlePlatformWebhook)
}

// HandlePlatformWebhook validates the JSON body and enqueues it for the
// background workers.
func (h *Handler) HandlePlatformWebhook(c *fiber.Ctx) error {
	body := c.Body()
	if !json.Valid(body) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid JSON body"})
	}

	if err := h.queue.Enqueue(c.Context(), append([]byte(nil), body...)); err != nil {
		logger.WithRayID(h.logger, c).Error("Failed to enqueue platform webhook", zap.Error(err))
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": "queue unavailable"})
	}

	return c.JSON(fiber.Map{"received": true})
}
