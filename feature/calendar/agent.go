package calendar

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"listing-manager/core/utils"
	"listing-manager/feature/listing/models"

	"go.uber.org/zap"
)

// ListingService is the slice of the listing service the agent depends on.
type ListingService interface {
	Get(ctx context.Context, id string) (models.Listing, error)
	List(ctx context.Context, availableOnly bool) ([]models.Listing, error)
	Update(ctx context.Context, id string, req models.UpdateRequest) (models.Listing, error)
}

// RemoteSource reports availability for a published listing on one platform.
type RemoteSource interface {
	FetchRemoteAvailability(ctx context.Context, platform, remoteID string) (map[string]any, error)
}

// SyncResult is the outcome of one listing's calendar sync.
type SyncResult struct {
	ID       string          `json:"id"`
	Skipped  bool            `json:"skipped,omitempty"`
	Platform string          `json:"platform,omitempty"`
	Remote   map[string]any  `json:"remote,omitempty"`
	Listing  *models.Listing `json:"listing,omitempty"`
}

// Agent reconciles each listing's available flag against the remote calendar
// of the platform it is published on. A listing with no recorded remote ids
// has nothing to reconcile and is skipped.
type Agent struct {
	listings ListingService
	remotes  RemoteSource
	logger   *zap.Logger
}

// NewAgent creates a calendar sync agent.
func NewAgent(listings ListingService, remotes RemoteSource, logger *zap.Logger) *Agent {
	return &Agent{listings: listings, remotes: remotes, logger: logger}
}

// SyncOne syncs a single listing's availability from its remote calendar.
func (a *Agent) SyncOne(ctx context.Context, id string) (SyncResult, error) {
	l, err := a.listings.Get(ctx, id)
	if err != nil {
		return SyncResult{}, err
	}
	return a.sync(ctx, l)
}

// SyncAll syncs every listing concurrently and returns the per-listing
// results. Per-listing failures are logged, not propagated.
func (a *Agent) SyncAll(ctx context.Context) ([]SyncResult, error) {
	all, err := a.listings.List(ctx, false)
	if err != nil {
		return nil, err
	}

	synced := make([]SyncResult, len(all))
	errs := make([]error, len(all))

	var wg sync.WaitGroup
	for i, l := range all {
		wg.Add(1)
		go func(i int, l models.Listing) {
			defer wg.Done()
			synced[i], errs[i] = a.sync(ctx, l)
		}(i, l)
	}
	wg.Wait()

	results := make([]SyncResult, 0, len(all))
	for i := range all {
		if errs[i] != nil {
			a.logger.Warn("Calendar sync failed for listing",
				zap.String("id", all[i].ID), zap.Error(errs[i]))
			continue
		}
		results = append(results, synced[i])
	}
	return results, nil
}

func (a *Agent) sync(ctx context.Context, l models.Listing) (SyncResult, error) {
	remoteIDs := l.RemoteIDs()
	if len(remoteIDs) == 0 {
		return SyncResult{ID: l.ID, Skipped: true}, nil
	}

	// One recorded platform is enough to reconcile against; pick the first
	// by name so repeated runs check the same calendar.
	names := make([]string, 0, len(remoteIDs))
	for name := range remoteIDs {
		names = append(names, name)
	}
	sort.Strings(names)
	name := names[0]

	info, err := a.remotes.FetchRemoteAvailability(ctx, name, remoteIDs[name])
	if err != nil {
		return SyncResult{}, fmt.Errorf("failed to fetch remote availability from %s: %w", name, err)
	}

	available := true
	if v, ok := info["available"]; ok {
		available = utils.ToBool(v)
	}

	updated, err := a.listings.Update(ctx, l.ID, models.UpdateRequest{Available: &available})
	if err != nil {
		return SyncResult{}, err
	}

	return SyncResult{ID: l.ID, Platform: name, Remote: info, Listing: &updated}, nil
}
