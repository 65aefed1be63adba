// Package metrics provides Prometheus metrics for the EZ Help builder.
// Exports HTTP, pipeline, cache, order and payment metrics.
package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "ezhelp"

var (
	once     sync.Once
	instance *Metrics
)

// Metrics holds all Prometheus metric collectors
type Metrics struct {
	// HTTP Metrics
	HTTPRequestsTotal    *prometheus.CounterVec
	HTTPRequestDuration  *prometheus.HistogramVec
	HTTPRequestsInFlight prometheus.Gauge
	HTTPResponseSize     *prometheus.HistogramVec

	// Pipeline Metrics
	StageDuration         *prometheus.HistogramVec
	StageOutcomesTotal    *prometheus.CounterVec
	BuildDuration         prometheus.Histogram
	BuildsTotal           *prometheus.CounterVec
	AITokensUsed          *prometheus.CounterVec
	GeneratorRepliesTotal *prometheus.CounterVec

	// Cache Metrics
	CacheHitsTotal   *prometheus.CounterVec
	CacheMissesTotal *prometheus.CounterVec

	// Order/Payment Metrics
	OrdersTotal           *prometheus.CounterVec
	OrdersByStatus        *prometheus.GaugeVec
	CheckoutSessionsTotal *prometheus.CounterVec
	WebhookEventsTotal    *prometheus.CounterVec

	// Database Metrics
	DBConnectionsActive prometheus.Gauge
	DBConnectionsIdle   prometheus.Gauge

	// System Metrics
	BuildInfo    *prometheus.GaugeVec
	StartupTime  prometheus.Gauge
	GoroutineNum prometheus.Gauge
}

// Get returns the singleton Metrics instance
func Get() *Metrics {
	once.Do(func() {
		instance = newMetrics()
	})
	return instance
}

// newMetrics creates and registers all Prometheus metrics
func newMetrics() *Metrics {
	m := &Metrics{}

	// HTTP Metrics
	m.HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests by endpoint, method, and status code",
		},
		[]string{"endpoint", "method", "status"},
	)

	m.HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10, 30, 60},
		},
		[]string{"endpoint", "method"},
	)

	m.HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_in_flight",
			Help:      "Current number of HTTP requests being processed",
		},
	)

	m.HTTPResponseSize = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "response_size_bytes",
			Help:      "HTTP response size in bytes",
			Buckets:   prometheus.ExponentialBuckets(100, 10, 8),
		},
		[]string{"endpoint"},
	)

	// Pipeline Metrics
	m.StageDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "pipeline",
			Name:      "stage_duration_seconds",
			Help:      "Duration of one pipeline stage including the upstream call",
			Buckets:   []float64{.05, .1, .25, .5, 1, 2.5, 5, 10, 20, 40, 80},
		},
		[]string{"stage", "outcome"},
	)

	m.StageOutcomesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "pipeline",
			Name:      "stage_outcomes_total",
			Help:      "Pipeline stages by outcome (success or fallback)",
		},
		[]string{"stage", "outcome"},
	)

	m.BuildDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "pipeline",
			Name:      "build_duration_seconds",
			Help:      "End-to-end duration of a brand build",
			Buckets:   []float64{1, 5, 10, 20, 30, 45, 60, 90, 120, 180},
		},
	)

	m.BuildsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "pipeline",
			Name:      "builds_total",
			Help:      "Completed brand builds by number of stages that fell back",
		},
		[]string{"fallback_stages"},
	)

	m.AITokensUsed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "ai",
			Name:      "tokens_total",
			Help:      "Total tokens reported by the chat provider, by stage",
		},
		[]string{"stage"},
	)

	m.GeneratorRepliesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "ai",
			Name:      "generator_replies_total",
			Help:      "Replies from the chat, logo and website generators by source",
		},
		[]string{"generator", "source"},
	)

	// Cache Metrics
	m.CacheHitsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "cache",
			Name:      "hits_total",
			Help:      "Build cache hits by backend",
		},
		[]string{"backend"},
	)

	m.CacheMissesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "cache",
			Name:      "misses_total",
			Help:      "Build cache misses by backend",
		},
		[]string{"backend"},
	)

	// Order/Payment Metrics
	m.OrdersTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "orders",
			Name:      "transitions_total",
			Help:      "Order status transitions recorded by the API",
		},
		[]string{"status"},
	)

	m.OrdersByStatus = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "orders",
			Name:      "by_status",
			Help:      "Orders currently stored, by status",
		},
		[]string{"status"},
	)

	m.CheckoutSessionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "payments",
			Name:      "checkout_sessions_total",
			Help:      "Stripe Checkout Session creation attempts by result",
		},
		[]string{"result"},
	)

	m.WebhookEventsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "payments",
			Name:      "webhook_events_total",
			Help:      "Stripe webhook events by type and result",
		},
		[]string{"type", "result"},
	)

	// Database Metrics
	m.DBConnectionsActive = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "db",
			Name:      "connections_active",
			Help:      "Number of database connections in use",
		},
	)

	m.DBConnectionsIdle = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "db",
			Name:      "connections_idle",
			Help:      "Number of idle database connections",
		},
	)

	// System Metrics
	m.BuildInfo = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "build_info",
			Help:      "Build information",
		},
		[]string{"version", "ai_provider"},
	)

	m.StartupTime = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "startup_time_seconds",
			Help:      "Unix timestamp of server startup",
		},
	)

	m.GoroutineNum = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "goroutines",
			Help:      "Number of goroutines",
		},
	)

	m.StartupTime.Set(float64(time.Now().Unix()))

	return m
}

// RecordHTTPRequest records an HTTP request metric
func (m *Metrics) RecordHTTPRequest(endpoint, method string, statusCode int, duration time.Duration, responseSize int) {
	status := statusCodeToLabel(statusCode)
	m.HTTPRequestsTotal.WithLabelValues(endpoint, method, status).Inc()
	m.HTTPRequestDuration.WithLabelValues(endpoint, method).Observe(duration.Seconds())
	m.HTTPResponseSize.WithLabelValues(endpoint).Observe(float64(responseSize))
}

// RecordOrder records an order status transition
func (m *Metrics) RecordOrder(status string) {
	m.OrdersTotal.WithLabelValues(sanitizeLabel(status, "unknown")).Inc()
}

// RecordCheckout records a Checkout Session attempt
func (m *Metrics) RecordCheckout(result string) {
	m.CheckoutSessionsTotal.WithLabelValues(sanitizeLabel(result, "unknown")).Inc()
}

// RecordWebhookEvent records a processed Stripe webhook event
func (m *Metrics) RecordWebhookEvent(eventType, result string) {
	m.WebhookEventsTotal.WithLabelValues(
		sanitizeLabel(eventType, "unknown"),
		sanitizeLabel(result, "unknown"),
	).Inc()
}

// RecordGeneratorReply records where a chat, logo or website reply came from
func (m *Metrics) RecordGeneratorReply(generator, source string) {
	m.GeneratorRepliesTotal.WithLabelValues(
		sanitizeLabel(generator, "unknown"),
		sanitizeLabel(source, "unknown"),
	).Inc()
}

// SetBuildInfo sets build information
func (m *Metrics) SetBuildInfo(version, aiProvider string) {
	m.BuildInfo.WithLabelValues(version, aiProvider).Set(1)
}

// Helper function to convert status code to label
func statusCodeToLabel(code int) string {
	switch {
	case code >= 200 && code < 300:
		return "2xx"
	case code >= 300 && code < 400:
		return "3xx"
	case code >= 400 && code < 500:
		return "4xx"
	case code >= 500:
		return "5xx"
	default:
		return "unknown"
	}
}
