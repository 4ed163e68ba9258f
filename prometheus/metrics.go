package prometheus

import (
	"time"

	"backoffice-service/pkg/config"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP request metrics
	HttpRequestsTotal   prometheus.CounterVec
	HttpRequestDuration prometheus.HistogramVec

	// Authentication metrics
	LoginCounter       prometheus.Counter
	RegisterCounter    prometheus.Counter
	AuthErrorsCounter  prometheus.Counter

	// Tenant context metrics
	TenantContextMissingCounter prometheus.Counter

	// Database operation metrics
	DbOperationDuration prometheus.HistogramVec

	// Content metrics
	ContentOperationsCounter prometheus.CounterVec

	// Media upload metrics
	MediaUploadsCounter prometheus.CounterVec

	// Public site metrics
	SiteRendersCounter prometheus.CounterVec
)

// InitMetrics initializes Prometheus metrics with configuration
func InitMetrics(config *config.Config) {
	// Use metric prefix from configuration
	prefix := config.Metrics.Prefix

	// HTTP request metrics
	HttpRequestsTotal = *promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	// HTTP request duration
	HttpRequestDuration = *promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    prefix + "_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	// Authentication metrics
	LoginCounter = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: prefix + "_login_total",
			Help: "Total number of login attempts",
		},
	)

	RegisterCounter = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: prefix + "_register_total",
			Help: "Total number of user registrations",
		},
	)

	AuthErrorsCounter = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: prefix + "_auth_errors_total",
			Help: "Total number of authentication errors",
		},
	)

	// Tenant context metrics
	TenantContextMissingCounter = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: prefix + "_tenant_context_missing_total",
			Help: "Total number of requests without tenant context",
		},
	)

	// Database operation metrics
	DbOperationDuration = *promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    prefix + "_db_operation_duration_seconds",
			Help:    "Duration of database operations in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation_type"},
	)

	// Content operation metrics, labeled by resource and operation
	ContentOperationsCounter = *promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_content_operations_total",
			Help: "Total number of content operations",
		},
		[]string{"resource", "operation"},
	)

	// Media upload metrics
	MediaUploadsCounter = *promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_media_uploads_total",
			Help: "Total number of media uploads",
		},
		[]string{"kind", "result"},
	)

	// Public site render metrics
	SiteRendersCounter = *promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_site_renders_total",
			Help: "Total number of public site page renders",
		},
		[]string{"template", "page"},
	)
}

// TrackDBOperation returns a function that records the duration of a database operation
func TrackDBOperation(operationType string) func(startTime time.Time) {
	return func(startTime time.Time) {
		duration := time.Since(startTime).Seconds()
		DbOperationDuration.WithLabelValues(operationType).Observe(duration)
	}
}

// RecordContentOperation increments the counter for content operations
func RecordContentOperation(resource, operation string) {
	ContentOperationsCounter.WithLabelValues(resource, operation).Inc()
}

// RecordMediaUpload increments the counter for media uploads
func RecordMediaUpload(kind, result string) {
	MediaUploadsCounter.WithLabelValues(kind, result).Inc()
}

// RecordSiteRender increments the counter for public site page renders
func RecordSiteRender(template, page string) {
	SiteRendersCounter.WithLabelValues(template, page).Inc()
}
