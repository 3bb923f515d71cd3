// Package metrics defines and registers the custom Prometheus metrics of the
// clinic portal. It is the single source of truth for metric names, labels,
// and help strings.
//
// Counters register with the default registry on package load via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "clinic"

// ── Session metrics ───────────────────────────────────────────────────────────

// LoginAttemptsTotal counts login calls.
// Labels:
//   - role: the role submitted (unknown roles are reported as "other")
//   - result: "accepted" or "rejected"
var LoginAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "login_attempts_total",
		Help:      "Total number of login attempts, by role and result.",
	},
	[]string{"role", "result"},
)

// NewAuthenticatedSessions returns a gauge that reads the number of
// persisted authenticated sessions from count on every scrape. It is not
// registered on package load; the router registers it with its registry.
func NewAuthenticatedSessions(count func() float64) prometheus.GaugeFunc {
	return prometheus.NewGaugeFunc(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "authenticated_sessions",
			Help:      "Current number of persisted authenticated sessions.",
		},
		count,
	)
}

// ── Navigation metrics ────────────────────────────────────────────────────────

// GuardDecisionsTotal counts route guard decisions.
// Labels:
//   - outcome: "render", "redirect", or "not_found"
//   - view: the rendered view, or the redirect location
var GuardDecisionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "guard_decisions_total",
		Help:      "Total number of navigation decisions, by outcome and target.",
	},
	[]string{"outcome", "view"},
)

// ── Audit metrics ─────────────────────────────────────────────────────────────

// AuditEventsTotal counts audit events by kind and result.
// Label result: "recorded", "failed", or "dropped".
var AuditEventsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "audit_events_total",
		Help:      "Total number of audit events, by kind and processing result.",
	},
	[]string{"kind", "result"},
)

// AuditQueueDepth tracks the number of events waiting in each worker channel.
var AuditQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "audit_queue_depth",
		Help:      "Current number of audit events pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)
