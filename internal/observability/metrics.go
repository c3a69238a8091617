// Package observability provides Prometheus metrics for the serve
// command.
package observability

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the serve command's instruments backed by a private
// registry, so repeated construction in tests cannot collide with the
// default registry.
type Metrics struct {
	registry *prometheus.Registry

	RendersTotal   *prometheus.CounterVec
	RenderDuration prometheus.Histogram
	RequestsInFly  prometheus.Gauge
}

// NewMetrics creates the serve metrics on a fresh registry.
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	return &Metrics{
		registry: registry,
		RendersTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "solvetrack_renders_total",
			Help: "Dashboard renders by view mode.",
		}, []string{"view", "granularity"}),
		RenderDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "solvetrack_render_duration_seconds",
			Help:    "Time spent bucketing and rendering a dashboard.",
			Buckets: prometheus.DefBuckets,
		}),
		RequestsInFly: factory.NewGauge(prometheus.GaugeOpts{
			Name: "solvetrack_http_requests_in_flight",
			Help: "HTTP requests currently being served.",
		}),
	}
}

// Handler returns the /metrics scrape endpoint for this registry.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
