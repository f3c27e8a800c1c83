package pricing

import (
	"context"
	"sync"

	"listing-manager/core/utils"
	"listing-manager/feature/listing/models"
	"listing-manager/feature/platform"

	"go.uber.org/zap"
)

// ListingService is the slice of the listing service the agent depends on.
type ListingService interface {
	Get(ctx context.Context, id string) (models.Listing, error)
	List(ctx context.Context, availableOnly bool) ([]models.Listing, error)
	Update(ctx context.Context, id string, req models.UpdateRequest) (models.Listing, error)
}

// CompetitorSource provides competitor quotes for an address.
type CompetitorSource interface {
	CompetitorPrices(ctx context.Context, address string) (platform.CompetitorReport, error)
}

// Agent computes a suggested price per listing from competitor quotes and
// persists it. The rule is deliberately simple: undercut the cheapest
// competitor by 1, bounded by the min_price/max_price constraints stored in
// the listing metadata.
type Agent struct {
	listings    ListingService
	competitors CompetitorSource
	logger      *zap.Logger
}

// NewAgent creates a pricing agent.
func NewAgent(listings ListingService, competitors CompetitorSource, logger *zap.Logger) *Agent {
	return &Agent{listings: listings, competitors: competitors, logger: logger}
}

// RunForListing computes and persists the suggested price for one listing.
// The new price and the suggestion both go through the listing store's
// normal update path, so they share its exclusion domain.
func (a *Agent) RunForListing(ctx context.Context, id string) (models.Listing, error) {
	l, err := a.listings.Get(ctx, id)
	if err != nil {
		return models.Listing{}, err
	}

	var quotes []platform.CompetitorQuote
	if report, err := a.competitors.CompetitorPrices(ctx, l.Address); err != nil {
		a.logger.Warn("Failed to fetch competitor prices",
			zap.String("id", id), zap.Error(err))
	} else {
		quotes = report.Competitors
	}

	suggested := suggestPrice(l.Price, quotes, constraintsFrom(l.Metadata))

	return a.listings.Update(ctx, id, models.UpdateRequest{
		Price:    suggested,
		Metadata: map[string]any{"suggested_price": suggested},
	})
}

// RunAll runs the pricing rule for every listing concurrently and returns
// the successfully updated listings. Per-listing failures are logged, not
// propagated.
func (a *Agent) RunAll(ctx context.Context) ([]models.Listing, error) {
	all, err := a.listings.List(ctx, false)
	if err != nil {
		return nil, err
	}

	updated := make([]models.Listing, len(all))
	errs := make([]error, len(all))

	var wg sync.WaitGroup
	for i, l := range all {
		wg.Add(1)
		go func(i int, id string) {
			defer wg.Done()
			updated[i], errs[i] = a.RunForListing(ctx, id)
		}(i, l.ID)
	}
	wg.Wait()

	results := make([]models.Listing, 0, len(all))
	for i := range all {
		if errs[i] != nil {
			a.logger.Warn("Pricing run failed for listing",
				zap.String("id", all[i].ID), zap.Error(errs[i]))
			continue
		}
		results = append(results, updated[i])
	}
	return results, nil
}

type constraints struct {
	minPrice *float64
	maxPrice *float64
}

// constraintsFrom reads metadata.constraints.{min_price,max_price}.
func constraintsFrom(metadata map[string]any) constraints {
	var c constraints
	raw, ok := metadata["constraints"].(map[string]any)
	if !ok {
		return c
	}
	if v, ok := raw["min_price"]; ok {
		if f, ok := utils.ToFloat(v); ok {
			c.minPrice = &f
		}
	}
	if v, ok := raw["max_price"]; ok {
		if f, ok := utils.ToFloat(v); ok {
			c.maxPrice = &f
		}
	}
	return c
}

// suggestPrice undercuts the cheapest competitor by 1, clamped to the
// constraints and never negative. Without quotes the current price stands.
func suggestPrice(current float64, quotes []platform.CompetitorQuote, c constraints) float64 {
	suggested := current
	if len(quotes) > 0 {
		cheapest := quotes[0].Price
		for _, q := range quotes[1:] {
			if q.Price < cheapest {
				cheapest = q.Price
			}
		}
		suggested = cheapest - 1
	}

	if c.minPrice != nil && suggested < *c.minPrice {
		suggested = *c.minPrice
	}
	if c.maxPrice != nil && suggested > *c.maxPrice {
		suggested = *c.maxPrice
	}
	if suggested < 0 {
		suggested = 0
	}
	return utils.RoundPrice(suggested)
}
