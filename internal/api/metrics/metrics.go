// Package metrics defines and registers all custom Prometheus metrics for
// the case tracker. It is the single source of truth for metric names,
// labels, and help strings. Metrics register with the default registry at
// package init; the router exposes them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "casetracker"

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure" (wrong password, unknown email, and
//     unapproved account all count as failure; the split is deliberately
//     not exposed)
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// RegistrationsTotal counts completed registrations.
// Label:
//   - role: "guest" or "detective"
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of accounts registered, by role.",
	},
	[]string{"role"},
)

// ApprovalsTotal counts detective accounts approved by a boss.
var ApprovalsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "approvals_total",
		Help:      "Total number of accounts approved.",
	},
)

// ApprovalMailTotal counts approval notification sends.
// Label:
//   - result: "sent" or "failed"
var ApprovalMailTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "approval_mail_total",
		Help:      "Total number of approval emails attempted, by result.",
	},
	[]string{"result"},
)

// CasesCreatedTotal counts newly created cases.
var CasesCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "cases_created_total",
		Help:      "Total number of cases created.",
	},
)

// CasesDeletedTotal counts deleted cases.
var CasesDeletedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "cases_deleted_total",
		Help:      "Total number of cases deleted.",
	},
)

// UsersDeletedTotal counts hard-deleted user accounts.
var UsersDeletedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "users_deleted_total",
		Help:      "Total number of user accounts deleted.",
	},
)
