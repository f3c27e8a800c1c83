package models

// Listing is a persisted property listing. The identifier is assigned at
// creation and immutable thereafter; the price is always normalized to two
// fraction digits when written.
type Listing struct {
	ID          string         `json:"id"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Address     string         `json:"address"`
	Price       float64        `json:"price"`
	Available   bool           `json:"available"`
	Metadata    map[string]any `json:"metadata,omitempty"`
}

// RemoteIDs returns the platform→remote-id mapping recorded in the listing
// metadata at publish time, or an empty map when none exists.
func (l Listing) RemoteIDs() map[string]string {
	out := make(map[string]string)
	raw, ok := l.Metadata["remote_ids"]
	if !ok {
		return out
	}
	switch m := raw.(type) {
	case map[string]string:
		for k, v := range m {
			out[k] = v
		}
	case map[string]any:
		// Decoded from JSON.
		for k, v := range m {
			if s, ok := v.(string); ok {
				out[k] = s
			}
		}
	}
	return out
}

// CreateRequest is the payload for creating a listing. Price is untyped on
// purpose: invalid values collapse to 0 instead of rejecting the write.
type CreateRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Address     string `json:"address"`
	Price       any    `json:"price"`
}

// UpdateRequest is a partial update. Nil fields are left untouched; the
// metadata map is merged key-wise into the existing metadata.
type UpdateRequest struct {
	Title       *string        `json:"title"`
	Description *string        `json:"description"`
	Address     *string        `json:"address"`
	Price       any            `json:"price"`
	Available   *bool          `json:"available"`
	Metadata    map[string]any `json:"metadata"`
}

// AvailabilityRequest toggles a listing's availability.
type AvailabilityRequest struct {
	Available bool `json:"available"`
}

// PriceAdjustRequest selects exactly one pricing strategy, honored in
// priority order SetPrice > Multiplier > Delta. With none supplied the
// operation is a no-op.
type PriceAdjustRequest struct {
	Multiplier *float64 `json:"multiplier"`
	Delta      *float64 `json:"delta"`
	SetPrice   *float64 `json:"set_price"`
}

// DynamicAdjustRequest applies a multiplier to every available listing.
type DynamicAdjustRequest struct {
	Rate float64 `json:"rate"`
}

// PublishRequest optionally restricts a publish or unpublish operation to a
// subset of platforms. Empty means all registered platforms.
type PublishRequest struct {
	Platforms []string `json:"platforms"`
}
