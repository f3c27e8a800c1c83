package metrics

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// DispatchOutcomes counts fan-out results per target and outcome
	// (success, timeout, error, skipped, unknown-target).
	DispatchOutcomes = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "listing_dispatch_outcomes_total",
		Help: "Total fan-out dispatch outcomes by target and outcome",
	}, []string{"target", "outcome"})

	// NotifyResults counts webhook notification attempts by event and result (ok, failed).
	NotifyResults = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "listing_notify_total",
		Help: "Total webhook notification attempts by event and result",
	}, []string{"event", "result"})
)

// Handler returns a Fiber handler serving the Prometheus metrics endpoint.
func Handler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.Handler())
}
