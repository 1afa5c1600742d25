// Package metrics defines and registers all custom Prometheus metrics for
// the ride-hail admin API. It is the single source of truth for metric
// names, labels, and help strings.
//
// Metrics register with the default Prometheus registry at init time; the
// router exposes them on GET /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "ridehail"

// TripCacheTotal counts active-trips listing reads by cache outcome.
// Label:
//   - result: "hit" (served from cache) or "miss" (upstream fetch)
var TripCacheTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "trip_cache_total",
		Help:      "Total number of active-trips listing reads, labelled by cache result (hit/miss).",
	},
	[]string{"result"},
)

// TripsCreatedTotal counts trips created through the API.
var TripsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "trips_created_total",
		Help:      "Total number of trips created.",
	},
)

// AuthFailuresTotal counts rejected requests at the auth gate.
// Label:
//   - reason: "missing_header", "invalid_header", "invalid_token", or "forbidden"
var AuthFailuresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_failures_total",
		Help:      "Total number of requests rejected by authentication or authorization.",
	},
	[]string{"reason"},
)
