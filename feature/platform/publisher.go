package platform

import (
	"context"
	"fmt"
	"time"

	"listing-manager/core/dispatch"
	"listing-manager/feature/listing/models"

	"go.uber.org/zap"
)

// CompetitorQuote is one competitor's advertised price.
type CompetitorQuote struct {
	Platform string  `json:"platform"`
	Price    float64 `json:"price"`
}

// CompetitorReport holds the competitor quotes found for an address.
type CompetitorReport struct {
	Address     string            `json:"address"`
	Competitors []CompetitorQuote `json:"competitors"`
}

// Publisher fans a listing out to the external marketplaces and removes it
// again. Each platform gets two dispatch targets, one per direction, so a
// publish and a remove never share adapter state.
type Publisher struct {
	publish *dispatch.Dispatcher
	remove  *dispatch.Dispatcher
	timeout time.Duration
	logger  *zap.Logger
}

// NewPublisher registers the built-in platform adapters from the config.
func NewPublisher(cfg Config, logger *zap.Logger) *Publisher {
	if cfg.TimeoutSeconds <= 0 {
		cfg.TimeoutSeconds = 30
	}

	publishReg := dispatch.NewRegistry()
	removeReg := dispatch.NewRegistry()
	for _, p := range []struct {
		name, apiKey string
	}{
		{Airbnb, cfg.AirbnbAPIKey},
		{Booking, cfg.BookingAPIKey},
		{Vrbo, cfg.VrboAPIKey},
	} {
		publishReg.Register(&publishAdapter{name: p.name, apiKey: p.apiKey})
		removeReg.Register(&removeAdapter{name: p.name, apiKey: p.apiKey})
	}

	return &Publisher{
		publish: dispatch.NewDispatcher(publishReg, logger),
		remove:  dispatch.NewDispatcher(removeReg, logger),
		timeout: time.Duration(cfg.TimeoutSeconds) * time.Second,
		logger:  logger,
	}
}

// Platforms returns the registered platform names in registration order.
func (p *Publisher) Platforms() []string {
	return p.publish.Registry().Names()
}

// Publish pushes the listing to the named platforms, defaulting to all
// registered ones. Every platform reports its own outcome; one failure never
// aborts the batch.
func (p *Publisher) Publish(ctx context.Context, l models.Listing, platforms []string) []dispatch.Result {
	if len(platforms) == 0 {
		platforms = p.Platforms()
	}
	payload := map[string]any{
		"id":          l.ID,
		"title":       l.Title,
		"description": l.Description,
		"address":     l.Address,
		"price":       l.Price,
	}
	p.logger.Info("Publishing listing cross-platform",
		zap.String("id", l.ID),
		zap.Strings("platforms", platforms),
	)
	return p.publish.Dispatch(ctx, platforms, payload, p.timeout)
}

// Remove deletes the listing from the named platforms, defaulting to all
// registered ones, given the platform→remote-id mapping recorded at publish
// time. Platforms without a recorded remote id report a skipped outcome.
func (p *Publisher) Remove(ctx context.Context, remoteIDs map[string]string, platforms []string) []dispatch.Result {
	if len(platforms) == 0 {
		platforms = p.Platforms()
	}
	payload := map[string]any{"remote_ids": remoteIDs}
	return p.remove.Dispatch(ctx, platforms, payload, p.timeout)
}

// FetchRemoteAvailability cross-checks availability and pricing for a
// published listing on one platform.
func (p *Publisher) FetchRemoteAvailability(ctx context.Context, platform, remoteID string) (map[string]any, error) {
	if _, ok := p.publish.Registry().Lookup(platform); !ok {
		return nil, fmt.Errorf("unknown platform %q", platform)
	}
	// Stand-in for the real platform lookup.
	return map[string]any{
		"platform":  platform,
		"remote_id": remoteID,
		"available": true,
		"price":     100.0,
	}, nil
}

// CompetitorPrices returns competitor quotes for an address. The quotes are
// static stand-ins for a real market data source.
func (p *Publisher) CompetitorPrices(ctx context.Context, address string) (CompetitorReport, error) {
	return CompetitorReport{
		Address: address,
		Competitors: []CompetitorQuote{
			{Platform: "Airbnb", Price: 120},
			{Platform: "Booking.com", Price: 110},
			{Platform: "Vrbo", Price: 125},
		},
	}, nil
}
