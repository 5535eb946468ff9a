package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Admin-API Metrics
var (
	// Request counters
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "tickethub",
			Subsystem: "admin_api",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	// Request duration histogram
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "tickethub",
			Subsystem: "admin_api",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   []float64{0.1, 0.5, 1, 2, 5, 10, 30, 60},
		},
		[]string{"method", "endpoint"},
	)

	// Upstream booking API call counters
	UpstreamRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "tickethub",
			Subsystem: "admin_api",
			Name:      "upstream_requests_total",
			Help:      "Total booking API calls by outcome",
		},
		[]string{"path", "outcome"},
	)

	// Upstream call duration histogram
	UpstreamRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "tickethub",
			Subsystem: "admin_api",
			Name:      "upstream_request_duration_seconds",
			Help:      "Booking API call duration in seconds",
			Buckets:   []float64{0.05, 0.1, 0.5, 1, 2, 5, 10, 30},
		},
		[]string{"path"},
	)

	// Snapshot age gauge
	SnapshotAge = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: "tickethub",
			Subsystem: "admin_api",
			Name:      "snapshot_age_seconds",
			Help:      "Age of the cached resource snapshot",
		},
		[]string{"resource"},
	)

	// Refresh jobs counter
	RefreshJobsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "tickethub",
			Subsystem: "admin_api",
			Name:      "refresh_jobs_total",
			Help:      "Total snapshot refresh jobs processed",
		},
		[]string{"resource", "status"},
	)
)

// RecordRequest records an HTTP request
func RecordRequest(method, endpoint, status string, durationSec float64) {
	RequestsTotal.WithLabelValues(method, endpoint, status).Inc()
	RequestDuration.WithLabelValues(method, endpoint).Observe(durationSec)
}

// RecordUpstreamRequest records a booking API call
func RecordUpstreamRequest(path, outcome string, durationSec float64) {
	UpstreamRequestsTotal.WithLabelValues(path, outcome).Inc()
	UpstreamRequestDuration.WithLabelValues(path).Observe(durationSec)
}

// RecordRefreshJob records a snapshot refresh job
func RecordRefreshJob(resource, status string) {
	RefreshJobsTotal.WithLabelValues(resource, status).Inc()
}

// SetSnapshotAge updates the snapshot age gauge for a resource
func SetSnapshotAge(resource string, ageSec float64) {
	SnapshotAge.WithLabelValues(resource).Set(ageSec)
}
