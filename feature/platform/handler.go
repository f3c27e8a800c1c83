package platform

import (
	"context"
	"errors"

	"listing-manager/core/dispatch"
	"listing-manager/core/logger"
	"listing-manager/feature/listing"
	"listing-manager/feature/listing/models"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ListingService is the slice of the listing service the platform feature
// depends on.
type ListingService interface {
	Get(ctx context.Context, id string) (models.Listing, error)
	Update(ctx context.Context, id string, req models.UpdateRequest) (models.Listing, error)
}

// Handler handles the cross-platform HTTP routes.
type Handler struct {
	listings  ListingService
	publisher *Publisher
	logger    *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(listings ListingService, publisher *Publisher, logger *zap.Logger) *Handler {
	return &Handler{listings: listings, publisher: publisher, logger: logger}
}

// RegisterRoutes registers the platform routes alongside the listing ones.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/listings")
	group.Get("/compare", h.HandleCompare)
	group.Post("/:id/publish", h.HandlePublish)
	group.Post("/:id/unpublish", h.HandleUnpublish)
}

// HandleCompare returns competitor quotes for an address.
func (h *Handler) HandleCompare(c *fiber.Ctx) error {
	report, err := h.publisher.CompetitorPrices(c.Context(), c.Query("address"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(report)
}

// HandlePublish fans the listing out to the requested platforms (default:
// all) and records the returned remote ids in the listing metadata.
func (h *Handler) HandlePublish(c *fiber.Ctx) error {
	var req models.PublishRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
		}
	}

	l, err := h.listings.Get(c.Context(), c.Params("id"))
	if err != nil {
		return h.fail(c, err)
	}

	results := h.publisher.Publish(c.Context(), l, req.Platforms)

	remoteIDs := l.RemoteIDs()
	for _, r := range results {
		if r.Outcome != dispatch.OutcomeSuccess {
			continue
		}
		if rid, ok := r.Payload["remote_id"].(string); ok && rid != "" {
			remoteIDs[r.Target] = rid
		}
	}
	if len(remoteIDs) > 0 {
		if _, err := h.listings.Update(c.Context(), l.ID, models.UpdateRequest{
			Metadata: map[string]any{"remote_ids": remoteIDs},
		}); err != nil {
			logger.WithRayID(h.logger, c).Error("Failed to record remote ids",
				zap.String("id", l.ID), zap.Error(err))
		}
	}

	return c.JSON(fiber.Map{"results": results, "remote_ids": remoteIDs})
}

// HandleUnpublish removes the listing from the requested platforms (default:
// all) using the remote ids recorded at publish time.
func (h *Handler) HandleUnpublish(c *fiber.Ctx) error {
	var req models.PublishRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
		}
	}

	l, err := h.listings.Get(c.Context(), c.Params("id"))
	if err != nil {
		return h.fail(c, err)
	}

	remoteIDs := l.RemoteIDs()
	results := h.publisher.Remove(c.Context(), remoteIDs, req.Platforms)

	changed := false
	for _, r := range results {
		if r.Outcome == dispatch.OutcomeSuccess {
			delete(remoteIDs, r.Target)
			changed = true
		}
	}
	if changed {
		if _, err := h.listings.Update(c.Context(), l.ID, models.UpdateRequest{
			Metadata: map[string]any{"remote_ids": remoteIDs},
		}); err != nil {
			logger.WithRayID(h.logger, c).Error("Failed to update remote ids",
				zap.String("id", l.ID), zap.Error(err))
		}
	}

	return c.JSON(fiber.Map{"results": results})
}

func (h *Handler) fail(c *fiber.Ctx, err error) error {
	if errors.Is(err, listing.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Listing not found"})
	}
	logger.WithRayID(h.logger, c).Error("Platform operation failed", zap.Error(err))
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
}
