// Package pricing implements the autonomous pricing agent. It derives a
// suggested price per listing from competitor quotes, clamps it to the
// constraints stored in the listing metadata, and persists both the new
// price and the suggestion through the listing store.
package pricing
