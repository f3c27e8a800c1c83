// Package metrics registers the Prometheus collectors exposed by the
// application and adapts the promhttp handler for Fiber.
package metrics
