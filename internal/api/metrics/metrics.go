// Package metrics defines and registers all custom Prometheus metrics for
// the Acquisitions API. It is the single source of truth for metric names,
// labels, and help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "acquisitions"

// SignupsTotal counts successfully created accounts.
// Label:
//   - role: the role assigned to the new account ("user" or "admin")
var SignupsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "signups_total",
		Help:      "Total number of accounts created via sign-up.",
	},
	[]string{"role"},
)

// SigninsTotal counts sign-in attempts.
// Label:
//   - result: "success" or "failure"
var SigninsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "signins_total",
		Help:      "Total number of sign-in attempts, by result.",
	},
	[]string{"result"},
)

// AuthFailuresTotal counts requests rejected by the auth middleware.
// Label:
//   - reason: "missing_token" or "invalid_token"
var AuthFailuresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_failures_total",
		Help:      "Total number of requests rejected during authentication.",
	},
	[]string{"reason"},
)

// ProtectionDeniedTotal counts requests denied by the protection guard.
// Label:
//   - reason: "bot", "shield", or "rate-limit"
var ProtectionDeniedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "protection_denied_total",
		Help:      "Total number of requests denied by the protection guard.",
	},
	[]string{"reason"},
)

// UserOperationsTotal counts completed user-management operations.
// Label:
//   - op: "list", "get", "update", or "delete"
var UserOperationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "user_operations_total",
		Help:      "Total number of completed user-management operations.",
	},
	[]string{"op"},
)
