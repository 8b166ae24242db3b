// Package metrics defines and registers the custom Prometheus metrics of the
// clinic API. It is the single source of truth for metric names, labels and
// help strings; every metric is registered with the default registry through
// promauto when the package is imported.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "clinic"

// ── Registry metrics ──────────────────────────────────────────────────────────

// ClientsCreatedTotal counts clients registered through the API.
var ClientsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "clients_created_total",
		Help:      "Total number of clients created.",
	},
)

// ProgramsCreatedTotal counts programs defined through the API.
var ProgramsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "programs_created_total",
		Help:      "Total number of programs created.",
	},
)

// EnrollmentsTotal counts enroll calls.
// Label:
//   - result: "created" (new relation) or "existing" (idempotent repeat)
var EnrollmentsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "enrollments_total",
		Help:      "Total number of successful enroll calls, by result.",
	},
	[]string{"result"},
)

// ── Outcome and activity metrics ──────────────────────────────────────────────

// OutcomesRecordedTotal counts recorded program outcomes.
var OutcomesRecordedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "outcomes_recorded_total",
		Help:      "Total number of program outcomes recorded.",
	},
)

// ActivityEntriesTotal counts activity log entries written.
// Label:
//   - kind: "enrollment" or "outcome"
var ActivityEntriesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "activity_entries_total",
		Help:      "Total number of activity log entries appended, by kind.",
	},
	[]string{"kind"},
)

// ── Auth metrics ──────────────────────────────────────────────────────────────

// AuthAttemptsTotal counts credential operations.
// Labels:
//   - operation: "register", "login" or "logout"
//   - result: "success" or "failure"
var AuthAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_attempts_total",
		Help:      "Total number of auth operations, by operation and result.",
	},
	[]string{"operation", "result"},
)

// ── HTTP metrics ──────────────────────────────────────────────────────────────

// HTTPRequestDuration measures request handling time.
// Labels:
//   - method: HTTP method
//   - route: the matched route template (e.g. "/clients/:id")
//   - status: response status code
var HTTPRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "Duration of HTTP requests by method, route and status.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"method", "route", "status"},
)

// Result converts an error into the success/failure label value.
func Result(err error) string {
	if err != nil {
		return "failure"
	}
	return "success"
}
