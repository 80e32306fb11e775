// Package metrics exposes the Prometheus collectors of the admin API
package metrics

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "studio_admin"

// Metrics holds every collector registered by the service
type Metrics struct {
	registry *prometheus.Registry

	// HTTP
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// Domain
	MemberMutations   *prometheus.CounterVec
	AccessFlagUpdates *prometheus.CounterVec
	ReportResolutions *prometheus.CounterVec
	CollaboratorFails *prometheus.CounterVec
	SnapshotsTaken    prometheus.Counter

	// WebSocket
	WSConnectionsActive prometheus.Gauge
}

// NewMetrics creates the collectors on a private registry
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		HTTPRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		HTTPRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request duration in seconds",
				Buckets:   []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
			},
			[]string{"method", "path"},
		),
		MemberMutations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "member_mutations_total",
				Help:      "Member writes by operation",
			},
			[]string{"op"},
		),
		AccessFlagUpdates: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "access_flag_updates_total",
				Help:      "Access flag writes by flag",
			},
			[]string{"flag"},
		),
		ReportResolutions: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "bug_report_resolutions_total",
				Help:      "Bug report resolve attempts by result",
			},
			[]string{"result"},
		),
		CollaboratorFails: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "collaborator_failures_total",
				Help:      "Usage and storage lookups that failed",
			},
			[]string{"collaborator"},
		),
		SnapshotsTaken: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "stats_snapshots_total",
				Help:      "Stats snapshots persisted by the scheduler",
			},
		),
		WSConnectionsActive: factory.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "websocket_connections_active",
				Help:      "Active WebSocket connections",
			},
		),
	}
}

// Registry returns the registry backing the collectors
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Middleware records request counts and latency keyed by the matched route
func (m *Metrics) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			}
		}

		// route pattern instead of raw path to keep cardinality low
		path := c.Route().Path
		m.HTTPRequestsTotal.WithLabelValues(c.Method(), path, strconv.Itoa(status)).Inc()
		m.HTTPRequestDuration.WithLabelValues(c.Method(), path).Observe(time.Since(start).Seconds())
		return err
	}
}

// Handler serves the registry in the Prometheus text format
func (m *Metrics) Handler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{}))
}

// RecordMemberMutation counts a member create, update or delete
func (m *Metrics) RecordMemberMutation(op string) {
	m.MemberMutations.WithLabelValues(op).Inc()
}

// RecordAccessFlag counts a single access flag write
func (m *Metrics) RecordAccessFlag(flag string) {
	m.AccessFlagUpdates.WithLabelValues(flag).Inc()
}

// RecordResolution counts a resolve attempt by outcome
func (m *Metrics) RecordResolution(result string) {
	m.ReportResolutions.WithLabelValues(result).Inc()
}

// RecordCollaboratorFailure counts a degraded usage or storage lookup
func (m *Metrics) RecordCollaboratorFailure(name string) {
	m.CollaboratorFails.WithLabelValues(name).Inc()
}

// WSConnectionOpened WebSocket connection opened
func (m *Metrics) WSConnectionOpened() {
	m.WSConnectionsActive.Inc()
}

// WSConnectionClosed WebSocket connection closed
func (m *Metrics) WSConnectionClosed() {
	m.WSConnectionsActive.Dec()
}
