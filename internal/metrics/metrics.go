// Package metrics defines all custom Prometheus metrics for the portal
// directory core. It is the single source of truth for metric names, labels,
// and help strings; promauto registers everything with the default registry
// at package init, so importing packages just increment.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "portal"

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "rejected"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// SessionRestoresTotal counts session restorations at process start.
// Label:
//   - result: "restored", "empty", or "discarded" (malformed payload)
var SessionRestoresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "session_restores_total",
		Help:      "Total number of session restore attempts, by result.",
	},
	[]string{"result"},
)

// DirectoryMutationsTotal counts successful directory mutations.
// Labels:
//   - entity: "user" or "project"
//   - op: "add", "update", or "delete"
var DirectoryMutationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "directory_mutations_total",
		Help:      "Total number of applied directory mutations, by entity and operation.",
	},
	[]string{"entity", "op"},
)

// CascadeRemovalsTotal counts project-access grants stripped from users by
// project deletions.
var CascadeRemovalsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "cascade_removals_total",
		Help:      "Total number of project grants removed from users by delete cascades.",
	},
)
