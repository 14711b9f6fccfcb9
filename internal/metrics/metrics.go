package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total HTTP requests by method, path and status code",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency by method and path",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	RoomStatusChanges = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "room_status_changes_total",
			Help: "Room status transitions applied, by new status",
		},
		[]string{"status"},
	)

	AssignmentsDistributed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "assignments_distributed_total",
			Help: "Assignments created by the round-robin distributor",
		},
	)

	RoomsImported = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rooms_imported_total",
			Help: "Rooms processed by bulk import, by outcome",
		},
		[]string{"outcome"},
	)
)
