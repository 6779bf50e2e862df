package prometheus

import (
	"strconv"
	"time"

	"github.com/aescanero/irys-upload-service/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Collector implements MetricsCollector using Prometheus
type Collector struct {
	uploads            *prometheus.CounterVec
	uploadDuration     *prometheus.HistogramVec
	validationFailures *prometheus.CounterVec
	dependencyUp       *prometheus.GaugeVec
	httpRequests       *prometheus.CounterVec
	httpDuration       *prometheus.HistogramVec
}

// NewCollector creates a new Prometheus metrics collector registered on reg
func NewCollector(reg prometheus.Registerer) *Collector {
	factory := promauto.With(reg)

	return &Collector{
		uploads: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "irys_uploads_total",
				Help: "Total number of upload attempts",
			},
			[]string{"record_type", "status"},
		),
		uploadDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "irys_upload_duration_seconds",
				Help:    "Upload duration in seconds",
				Buckets: []float64{0.1, 0.25, 0.5, 1, 2, 5, 10, 30, 60},
			},
			[]string{"record_type"},
		),
		validationFailures: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "irys_validation_failures_total",
				Help: "Total number of rejected upload requests",
			},
			[]string{"record_type", "reason"},
		),
		dependencyUp: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "irys_dependency_up",
				Help: "Whether a dependency passed its last health check",
			},
			[]string{"dependency"},
		),
		httpRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "irys_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "route", "status"},
		),
		httpDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "irys_http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
	}
}

// RecordUpload records an upload attempt and its duration
func (c *Collector) RecordUpload(recordType domain.RecordType, status string, duration time.Duration) {
	c.uploads.WithLabelValues(string(recordType), status).Inc()
	c.uploadDuration.WithLabelValues(string(recordType)).Observe(duration.Seconds())
}

// RecordValidationFailure records a request rejected before upload
func (c *Collector) RecordValidationFailure(recordType domain.RecordType, reason string) {
	c.validationFailures.WithLabelValues(string(recordType), reason).Inc()
}

// RecordDependencyStatus sets the health gauge of a dependency
func (c *Collector) RecordDependencyStatus(name string, up bool) {
	value := 0.0
	if up {
		value = 1
	}
	c.dependencyUp.WithLabelValues(name).Set(value)
}

// ObserveHTTPRequest records a served HTTP request
func (c *Collector) ObserveHTTPRequest(method, route string, status int, duration time.Duration) {
	c.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	c.httpDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}
