// Package platform implements the cross-platform publish and remove flows.
//
// Each marketplace (Airbnb, Booking.com, Vrbo) is a pair of dispatch targets
// behind the shared fan-out dispatcher. An adapter whose API key is not
// configured skips its call instead of failing, so a partially credentialed
// deployment still publishes to the platforms it can reach.
package platform
