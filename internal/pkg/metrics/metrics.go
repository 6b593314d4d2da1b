// Package metrics defines and registers all custom Prometheus metrics for the
// invitations API. It is the single source of truth for metric names, labels,
// and help strings.
//
// Metrics are registered with the default Prometheus registry on package
// initialisation (promauto) and exposed on GET /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "invitations"

// Result label values shared by the counters below.
const (
	ResultSuccess = "success"
	ResultFailure = "failure"
	ResultSkipped = "skipped"
)

// ── RSVP metrics ──────────────────────────────────────────────────────────────

// RSVPsTotal counts committed RSVP operations.
// Label:
//   - action: "created", "modified" or "cancelled"
var RSVPsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "rsvps_total",
		Help:      "Total number of RSVP operations committed, by action.",
	},
	[]string{"action"},
)

// NotificationsTotal counts host notification attempts.
// Labels:
//   - kind: "created", "modified" or "cancelled"
//   - result: "success" or "failure"
var NotificationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notifications_total",
		Help:      "Total number of host notification emails attempted, by kind and result.",
	},
	[]string{"kind", "result"},
)

// ── Geocoding metrics ─────────────────────────────────────────────────────────

// GeocodeRequestsTotal counts provider resolutions.
// Labels:
//   - provider: "google" or "nominatim"
//   - result: "success", "failure" or "skipped" (provider not configured / query not extractable)
var GeocodeRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "geocode_requests_total",
		Help:      "Total number of geocoding attempts per provider, by result.",
	},
	[]string{"provider", "result"},
)

// ── Event metrics ─────────────────────────────────────────────────────────────

// EventsCreatedTotal counts newly created events.
var EventsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "events_created_total",
		Help:      "Total number of events created.",
	},
)

// ── HTTP metrics ──────────────────────────────────────────────────────────────

// HTTPRequestDuration measures request latency.
// Labels:
//   - method: HTTP method
//   - route: the matched route pattern (e.g. "/api/events/:slug")
//   - code: response status code
var HTTPRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "Duration of HTTP requests by method, route and status code.",
		Buckets:   prometheus.DefBuckets, // .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10
	},
	[]string{"method", "route", "code"},
)
