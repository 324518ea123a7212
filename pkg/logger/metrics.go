package logger

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics registry for Prometheus metrics
// This provides a foundation for metrics collection

var (
	// Common metrics that can be used across components
	ErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "errors_total",
			Help: "Total number of errors",
		},
		[]string{"component", "error_type"},
	)
)

// InitMetrics initializes Prometheus metrics
// This is a placeholder that can be extended
func InitMetrics() {
	// Metrics are auto-registered via promauto
	// Additional initialization can be added here
}
