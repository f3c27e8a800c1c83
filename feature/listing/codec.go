package listing

import (
	"encoding/json"

	"listing-manager/feature/listing/models"
)

// encodeListings serializes the full collection. The encoding is total and
// deterministic for a given collection; every field round-trips.
func encodeListings(listings []models.Listing) ([]byte, error) {
	return json.MarshalIndent(listings, "", "  ")
}

// decodeListings deserializes a collection. Corrupt or empty input yields an
// empty collection, never an error: an unreadable storage file is treated the
// same as a missing one.
func decodeListings(data []byte) []models.Listing {
	if len(data) == 0 {
		return []models.Listing{}
	}
	var listings []models.Listing
	if err := json.Unmarshal(data, &listings); err != nil {
		return []models.Listing{}
	}
	if listings == nil {
		return []models.Listing{}
	}
	return listings
}
