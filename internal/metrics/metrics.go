// Package metrics provides Prometheus metrics for observability.
// Metrics are organized by domain: HTTP requests, store operations,
// sign-ins and assistant calls.
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	namespace = "newsroom"
)

var (
	// HTTP metrics - track request volume and latency
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests by method, path, and status code",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"method", "path"},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_in_flight",
			Help:      "Number of HTTP requests currently being processed",
		},
	)

	// Store metrics - every collection read or write is a whole-blob operation
	StoreOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "store",
			Name:      "operations_total",
			Help:      "Total number of key-value store operations by operation and result",
		},
		[]string{"operation", "result"},
	)

	StoreOperationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "store",
			Name:      "operation_duration_seconds",
			Help:      "Key-value store operation duration in seconds",
			Buckets:   []float64{.0005, .001, .005, .01, .025, .05, .1, .25, .5, 1},
		},
		[]string{"operation"},
	)

	StoreValueBytes = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "store",
			Name:      "value_bytes",
			Help:      "Size of values written to the key-value store",
			Buckets:   prometheus.ExponentialBuckets(256, 4, 8),
		},
		[]string{"key"},
	)

	// Auth metrics
	SignInsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "auth",
			Name:      "sign_ins_total",
			Help:      "Total number of sign-in attempts by provider and result",
		},
		[]string{"provider", "result"},
	)

	// Assistant metrics
	AssistantRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "assistant",
			Name:      "requests_total",
			Help:      "Total number of generator calls by prompt kind and result",
		},
		[]string{"kind", "result"},
	)

	AssistantRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "assistant",
			Name:      "request_duration_seconds",
			Help:      "Generator call duration in seconds",
			Buckets:   []float64{.25, .5, 1, 2.5, 5, 10, 30, 60},
		},
		[]string{"kind"},
	)
)

// Result labels
const (
	ResultSuccess = "success"
	ResultFailure = "failure"
)

// Result maps an error to a result label
func Result(err error) string {
	if err != nil {
		return ResultFailure
	}
	return ResultSuccess
}

// ObserveStoreOperation records one key-value store call
func ObserveStoreOperation(operation string, err error, duration time.Duration) {
	StoreOperationsTotal.WithLabelValues(operation, Result(err)).Inc()
	StoreOperationDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

// ObserveSignIn records a sign-in attempt
func ObserveSignIn(provider string, err error) {
	SignInsTotal.WithLabelValues(provider, Result(err)).Inc()
}

// ObserveAssistantRequest records one generator call
func ObserveAssistantRequest(kind string, err error, duration time.Duration) {
	AssistantRequestsTotal.WithLabelValues(kind, Result(err)).Inc()
	AssistantRequestDuration.WithLabelValues(kind).Observe(duration.Seconds())
}

// Middleware returns a Gin middleware that records Prometheus metrics for HTTP requests.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		// Skip metrics endpoint to avoid self-referential metrics
		if c.FullPath() == "/metrics" {
			c.Next()
			return
		}

		start := time.Now()

		HTTPRequestsInFlight.Inc()
		defer HTTPRequestsInFlight.Dec()

		c.Next()

		duration := time.Since(start).Seconds()
		status := strconv.Itoa(c.Writer.Status())
		path := c.FullPath()

		if path == "" {
			path = "unmatched"
		}

		HTTPRequestsTotal.WithLabelValues(c.Request.Method, path, status).Inc()
		HTTPRequestDuration.WithLabelValues(c.Request.Method, path).Observe(duration)
	}
}
