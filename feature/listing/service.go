package listing

import (
	"context"
	"errors"
	"sync"

	"listing-manager/core/utils"
	"listing-manager/feature/listing/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrNotFound is returned when an operation targets a nonexistent listing.
var ErrNotFound = errors.New("listing not found")

// EventListingCreated is emitted to the notifier after a successful create.
const EventListingCreated = "listing-created"

// Notifier is the slice of the notify package the service depends on.
type Notifier interface {
	// Go schedules a notification without awaiting it.
	Go(event string, payload any)
	// Drain waits for all scheduled notifications to terminate.
	Drain()
}

// Service is the in-process facade over the listing store. A single mutex
// serializes every read-modify-write sequence (Create, Update, Delete,
// AdjustPrice, AdjustAllDynamic); plain reads observe at worst the last
// committed collection, never a torn one, because Store.Replace is atomic.
type Service struct {
	mu       sync.Mutex
	store    *Store
	notifier Notifier
	logger   *zap.Logger
}

// NewService creates a listing service over the given store. notifier may be
// nil, in which case create events are not emitted.
func NewService(store *Store, notifier Notifier, logger *zap.Logger) *Service {
	return &Service{
		store:    store,
		notifier: notifier,
		logger:   logger,
	}
}

// Create assigns a fresh identifier, defaults the listing to available,
// coerces the price, appends and persists. After the write is committed a
// listing-created notification is scheduled in the background; its outcome
// never affects the returned listing.
func (s *Service) Create(ctx context.Context, req models.CreateRequest) (models.Listing, error) {
	s.mu.Lock()
	listings := s.store.Load()

	l := models.Listing{
		ID:          uuid.NewString(),
		Title:       req.Title,
		Description: req.Description,
		Address:     req.Address,
		Price:       utils.CoercePrice(req.Price),
		Available:   true,
	}
	listings = append(listings, l)
	err := s.store.Replace(listings)
	s.mu.Unlock()

	if err != nil {
		return models.Listing{}, err
	}

	s.logger.Info("Listing created", zap.String("id", l.ID), zap.String("title", l.Title))
	if s.notifier != nil {
		s.notifier.Go(EventListingCreated, l)
	}
	return l, nil
}

// Get returns the listing with the given id.
func (s *Service) Get(ctx context.Context, id string) (models.Listing, error) {
	listings := s.store.Load()
	if idx := findIndex(listings, id); idx >= 0 {
		return listings[idx], nil
	}
	return models.Listing{}, ErrNotFound
}

// List returns all listings, or only the available ones, preserving
// insertion order.
func (s *Service) List(ctx context.Context, availableOnly bool) ([]models.Listing, error) {
	listings := s.store.Load()
	if !availableOnly {
		return listings, nil
	}
	filtered := make([]models.Listing, 0, len(listings))
	for _, l := range listings {
		if l.Available {
			filtered = append(filtered, l)
		}
	}
	return filtered, nil
}

// Update merges the provided fields into the existing listing and persists.
// Nil fields are left untouched; metadata keys are merged into the existing
// metadata; an included price is re-coerced.
func (s *Service) Update(ctx context.Context, id string, req models.UpdateRequest) (models.Listing, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	listings := s.store.Load()
	idx := findIndex(listings, id)
	if idx < 0 {
		return models.Listing{}, ErrNotFound
	}

	l := &listings[idx]
	if req.Title != nil {
		l.Title = *req.Title
	}
	if req.Description != nil {
		l.Description = *req.Description
	}
	if req.Address != nil {
		l.Address = *req.Address
	}
	if req.Available != nil {
		l.Available = *req.Available
	}
	if req.Price != nil {
		l.Price = utils.CoercePrice(req.Price)
	}
	if len(req.Metadata) > 0 {
		if l.Metadata == nil {
			l.Metadata = make(map[string]any, len(req.Metadata))
		}
		for k, v := range req.Metadata {
			l.Metadata[k] = v
		}
	}

	if err := s.store.Replace(listings); err != nil {
		return models.Listing{}, err
	}
	return *l, nil
}

// Delete removes the listing with the given id and persists. Deleting a
// nonexistent id reports ErrNotFound and leaves the collection untouched.
func (s *Service) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	listings := s.store.Load()
	idx := findIndex(listings, id)
	if idx < 0 {
		return ErrNotFound
	}

	listings = append(listings[:idx], listings[idx+1:]...)
	return s.store.Replace(listings)
}

// SetAvailability is sugar over Update.
func (s *Service) SetAvailability(ctx context.Context, id string, available bool) (models.Listing, error) {
	return s.Update(ctx, id, models.UpdateRequest{Available: &available})
}

// AdjustPrice recomputes a single listing's price from the chosen strategy,
// honored in priority order SetPrice > Multiplier > Delta. With no strategy
// supplied the price is unchanged; a result below zero is floored at zero.
// The operation runs under the same mutex as every other write.
func (s *Service) AdjustPrice(ctx context.Context, id string, req models.PriceAdjustRequest) (models.Listing, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	listings := s.store.Load()
	idx := findIndex(listings, id)
	if idx < 0 {
		return models.Listing{}, ErrNotFound
	}

	l := &listings[idx]
	newPrice := l.Price
	switch {
	case req.SetPrice != nil:
		newPrice = *req.SetPrice
	case req.Multiplier != nil:
		newPrice = l.Price * *req.Multiplier
	case req.Delta != nil:
		newPrice = l.Price + *req.Delta
	}
	if newPrice < 0 {
		newPrice = 0
	}
	l.Price = utils.RoundPrice(newPrice)

	if err := s.store.Replace(listings); err != nil {
		return models.Listing{}, err
	}
	return *l, nil
}

// AdjustAllDynamic multiplies the price of every available listing by rate,
// persists the whole collection in one write, and returns it.
func (s *Service) AdjustAllDynamic(ctx context.Context, rate float64) ([]models.Listing, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	listings := s.store.Load()
	for i := range listings {
		if listings[i].Available {
			listings[i].Price = utils.RoundPrice(listings[i].Price * rate)
		}
	}

	if err := s.store.Replace(listings); err != nil {
		return nil, err
	}
	return listings, nil
}

// Drain waits for all pending background notifications. Intended for
// shutdown and deterministic tests.
func (s *Service) Drain() {
	if s.notifier != nil {
		s.notifier.Drain()
	}
}

func findIndex(listings []models.Listing, id string) int {
	for i, l := range listings {
		if l.ID == id {
			return i
		}
	}
	return -1
}
