// Package metrics defines and registers the custom Prometheus metrics of the
// repair desk API. HTTP request metrics come from echoprometheus; everything
// here is domain level.
//
// All vars register with the default registry through promauto on import.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "repairdesk"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// LoginAttemptsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "login_attempts_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// SessionCacheTotal counts session cache lookups.
// Label:
//   - result: "hit", "miss" or "error"
var SessionCacheTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "session_cache_lookups_total",
		Help:      "Total number of session cache lookups, labelled by result.",
	},
	[]string{"result"},
)

// ── Support request metrics ───────────────────────────────────────────────────

// SupportRequestsCreatedTotal counts newly opened support requests.
// Label:
//   - device_type: e.g. "laptop", "network switch"
var SupportRequestsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "support_requests_created_total",
		Help:      "Total number of support requests created, by device type.",
	},
	[]string{"device_type"},
)

// SupportRequestStatusChangesTotal counts status updates applied by admins.
// Label:
//   - status: the new status
var SupportRequestStatusChangesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "support_request_status_changes_total",
		Help:      "Total number of support request status changes, by new status.",
	},
	[]string{"status"},
)

// JobsScheduledTotal counts jobs created.
// Label:
//   - priority: "low", "medium" or "high"
var JobsScheduledTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "jobs_scheduled_total",
		Help:      "Total number of jobs scheduled, by priority.",
	},
	[]string{"priority"},
)

// ── Audit dispatcher metrics ──────────────────────────────────────────────────

// AuditQueueDepth tracks pending audit events per worker channel.
var AuditQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "audit_queue_depth",
		Help:      "Current number of audit events pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)

// AuditEventsTotal counts audit events leaving the dispatcher.
// Label:
//   - result: "written", "failed" or "dropped" (queue full)
var AuditEventsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "audit_events_total",
		Help:      "Total number of audit events, by outcome.",
	},
	[]string{"result"},
)
