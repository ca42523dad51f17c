package prometheus

import (
	"time"

	"github.com/baladi39/hippo-portal/pkg/config"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP request metrics
	HttpRequestsTotal   prometheus.CounterVec
	HttpRequestDuration prometheus.HistogramVec

	// Database operation metrics
	DbOperationDuration prometheus.HistogramVec

	// Entity operation metrics
	PlanOperationsCounter    prometheus.CounterVec
	AccountOperationsCounter prometheus.CounterVec
	CarrierOperationsCounter prometheus.CounterVec

	// Wizard metrics
	WizardSavesCounter prometheus.CounterVec
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

	// Database operation metrics
	DbOperationDuration = *promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    prefix + "_db_operation_duration_seconds",
			Help:    "Duration of database operations in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation_type"},
	)

	// Plan metrics
	PlanOperationsCounter = *promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_plan_operations_total",
			Help: "Total number of plan operations",
		},
		[]string{"operation"},
	)

	// Account metrics
	AccountOperationsCounter = *promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_account_operations_total",
			Help: "Total number of account operations",
		},
		[]string{"operation"},
	)

	// Carrier metrics
	CarrierOperationsCounter = *promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_carrier_operations_total",
			Help: "Total number of carrier operations",
		},
		[]string{"operation"},
	)

	// Wizard save metrics, labeled by flow (new or replacement)
	WizardSavesCounter = *promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_wizard_saves_total",
			Help: "Total number of wizard save operations",
		},
		[]string{"flow", "outcome"},
	)
}

// TrackDBOperation returns a function that records the duration of a database operation
func TrackDBOperation(operationType string) func(startTime time.Time) {
	return func(startTime time.Time) {
		duration := time.Since(startTime).Seconds()
		DbOperationDuration.WithLabelValues(operationType).Observe(duration)
	}
}

// RecordPlanOperation increments the counter for plan operations
func RecordPlanOperation(operation string) {
	PlanOperationsCounter.WithLabelValues(operation).Inc()
}

// RecordAccountOperation increments the counter for account operations
func RecordAccountOperation(operation string) {
	AccountOperationsCounter.WithLabelValues(operation).Inc()
}

// RecordCarrierOperation increments the counter for carrier operations
func RecordCarrierOperation(operation string) {
	CarrierOperationsCounter.WithLabelValues(operation).Inc()
}

// RecordWizardSave increments the counter for wizard saves
func RecordWizardSave(flow string, outcome string) {
	WizardSavesCounter.WithLabelValues(flow, outcome).Inc()
}
