package ai

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// TextRequest is the payload for a completion request.
type TextRequest struct {
	Text     string `json:"text"`
	Provider string `json:"provider"`
}

// Handler handles the LLM proxy routes.
type Handler struct {
	service *Service
	logger  *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service, logger *zap.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// RegisterRoutes registers the AI routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/ai")
	group.Post("/text", h.HandleText)
}

// HandleText runs a prompt against the selected provider.
func (h *Handler) HandleText(c *fiber.Ctx) error {
	var req TextRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	if req.Text == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "text is required"})
	}

	reply, err := h.service.Complete(c.Context(), req.Text, req.Provider)
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"reply": reply})
}
