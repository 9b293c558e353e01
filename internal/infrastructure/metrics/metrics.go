package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"film-platform/studio-api/internal/domain/execution"
)

var (
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "film",
			Subsystem: "studio_api",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "film",
			Subsystem: "studio_api",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.5, 1, 5, 30, 120},
		},
		[]string{"method", "endpoint"},
	)

	ToolExecutionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "film",
			Subsystem: "studio_api",
			Name:      "tool_executions_total",
			Help:      "Tool executions by tool, mode and outcome",
		},
		[]string{"tool_name", "mode", "status"},
	)

	ToolDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "film",
			Subsystem: "studio_api",
			Name:      "tool_duration_seconds",
			Help:      "Tool execution duration in seconds",
			Buckets:   []float64{0.01, 0.1, 1, 5, 15, 30, 60, 120},
		},
		[]string{"tool_name", "mode"},
	)

	ProviderDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "film",
			Subsystem: "studio_api",
			Name:      "provider_request_duration_seconds",
			Help:      "Replicate prediction latency in seconds",
			Buckets:   []float64{0.5, 1, 5, 15, 30, 60, 120},
		},
		[]string{"model", "status"},
	)
)

// RecordRequest records one HTTP request.
func RecordRequest(method, endpoint, status string, elapsed time.Duration) {
	RequestsTotal.WithLabelValues(method, endpoint, status).Inc()
	RequestDuration.WithLabelValues(method, endpoint).Observe(elapsed.Seconds())
}

// RecordProviderCall records one prediction round trip.
func RecordProviderCall(model, status string, elapsed time.Duration) {
	ProviderDuration.WithLabelValues(model, status).Observe(elapsed.Seconds())
}

// ExecutionRecorder feeds dispatcher observations into the tool metrics.
type ExecutionRecorder struct{}

// NewExecutionRecorder returns the prometheus-backed execution recorder.
func NewExecutionRecorder() *ExecutionRecorder {
	return &ExecutionRecorder{}
}

// ObserveExecution implements execution.Recorder.
func (ExecutionRecorder) ObserveExecution(toolName string, mode execution.Mode, status string, elapsed time.Duration) {
	ToolExecutionsTotal.WithLabelValues(toolName, string(mode), status).Inc()
	ToolDuration.WithLabelValues(toolName, string(mode)).Observe(elapsed.Seconds())
}
