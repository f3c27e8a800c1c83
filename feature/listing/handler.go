package listing

import (
	"errors"

	"listing-manager/core/logger"
	"listing-manager/feature/listing/models"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for the listing store.
type Handler struct {
	service *Service
	logger  *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service, logger *zap.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// RegisterRoutes registers the listing routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/listings")
	group.Post("/", h.HandleCreate)
	group.Get("/", h.HandleList)
	group.Post("/dynamic", h.HandleDynamicAdjust)
	group.Get("/:id", h.HandleGet)
	group.Put("/:id", h.HandleUpdate)
	group.Delete("/:id", h.HandleDelete)
	group.Post("/:id/availability", h.HandleAvailability)
	group.Post("/:id/price", h.HandlePriceAdjust)
}

// HandleCreate creates a new listing and returns its identifier.
func (h *Handler) HandleCreate(c *fiber.Ctx) error {
	var req models.CreateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	l, err := h.service.Create(c.Context(), req)
	if err != nil {
		logger.WithRayID(h.logger, c).Error("Create failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"id": l.ID, "status": "created"})
}

// HandleList returns all listings, optionally only the available ones.
func (h *Handler) HandleList(c *fiber.Ctx) error {
	availableOnly := c.Query("available_only") == "true"

	listings, err := h.service.List(c.Context(), availableOnly)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(listings)
}

// HandleGet returns a single listing by id.
func (h *Handler) HandleGet(c *fiber.Ctx) error {
	l, err := h.service.Get(c.Context(), c.Params("id"))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(l)
}

// HandleUpdate merges the provided fields into an existing listing.
func (h *Handler) HandleUpdate(c *fiber.Ctx) error {
	var req models.UpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	l, err := h.service.Update(c.Context(), c.Params("id"), req)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(l)
}

// HandleDelete removes a listing.
func (h *Handler) HandleDelete(c *fiber.Ctx) error {
	if err := h.service.Delete(c.Context(), c.Params("id")); err != nil {
		return h.fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// HandleAvailability toggles a listing's availability.
func (h *Handler) HandleAvailability(c *fiber.Ctx) error {
	var req models.AvailabilityRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	l, err := h.service.SetAvailability(c.Context(), c.Params("id"), req.Available)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(l)
}

// HandlePriceAdjust recomputes a single listing's price.
func (h *Handler) HandlePriceAdjust(c *fiber.Ctx) error {
	var req models.PriceAdjustRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	l, err := h.service.AdjustPrice(c.Context(), c.Params("id"), req)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(l)
}

// HandleDynamicAdjust applies a rate to every available listing.
func (h *Handler) HandleDynamicAdjust(c *fiber.Ctx) error {
	req := models.DynamicAdjustRequest{Rate: 1.0}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	updated, err := h.service.AdjustAllDynamic(c.Context(), req.Rate)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"updated": len(updated)})
}

func (h *Handler) fail(c *fiber.Ctx, err error) error {
	if errors.Is(err, ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Listing not found"})
	}
	logger.WithRayID(h.logger, c).Error("Listing operation failed", zap.Error(err))
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
}
