// Package metrics defines and registers all custom Prometheus metrics
// for the hotel API. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics use promauto and register with the default registry at package
// init; the router exposes them at /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "hotel"

// ── Room metrics ──────────────────────────────────────────────────────────────

// RoomsCreatedTotal counts newly created rooms.
// Label:
//   - mode: "single" or "bulk"
var RoomsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "rooms_created_total",
		Help:      "Total number of rooms created, by creation mode.",
	},
	[]string{"mode"},
)

// AvailabilityQueriesTotal counts availability lookups.
// Label:
//   - result: "hit" (at least one room returned) or "empty"
var AvailabilityQueriesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "availability_queries_total",
		Help:      "Total number of room availability queries, by result.",
	},
	[]string{"result"},
)

// ── Booking metrics ───────────────────────────────────────────────────────────

// BookingsCreatedTotal counts new bookings.
var BookingsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "bookings_created_total",
		Help:      "Total number of bookings created.",
	},
)

// CheckinsTotal counts QR check-in attempts.
// Label:
//   - result: "ok" or "rejected"
var CheckinsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "checkins_total",
		Help:      "Total number of QR check-in attempts, by result.",
	},
	[]string{"result"},
)

// ── Restaurant metrics ────────────────────────────────────────────────────────

// OrdersPlacedTotal counts restaurant orders placed.
var OrdersPlacedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "orders_placed_total",
		Help:      "Total number of restaurant orders placed.",
	},
)

// ── Audit event metrics ───────────────────────────────────────────────────────

// EventsProcessedTotal counts room status events that were recorded.
// Labels:
//   - status: the new room status (e.g. "occupied")
//   - source: what produced the event (e.g. "checkin", "status_update")
var EventsProcessedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "events_processed_total",
		Help:      "Total number of room status events successfully recorded.",
	},
	[]string{"status", "source"},
)

// EventsErrorsTotal counts events that failed recording.
// Label:
//   - reason: short description of the failure (e.g. "record_failed")
var EventsErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "events_errors_total",
		Help:      "Total number of room status events that failed recording.",
	},
	[]string{"reason"},
)

// EventsQueueDepth tracks the current number of events waiting in each
// dispatcher worker channel.
// Label:
//   - worker_id: numeric worker index (e.g. "0", "1", …)
var EventsQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "events_queue_depth",
		Help:      "Current number of events pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)

// EventProcessingDuration measures how long recording a single event
// takes from dequeue to persistence.
// Label:
//   - status: the new room status
var EventProcessingDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "event_processing_duration_seconds",
		Help:      "Duration of room status event recording from dequeue to persistence.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"status"},
)
