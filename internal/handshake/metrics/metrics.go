// Package metrics holds the Prometheus collectors for the handshake
// service. Everything hangs off a private registry so tests can run
// isolated instances side by side.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Metrics struct {
	registry *prometheus.Registry

	requests      *prometheus.CounterVec
	reaperSweeps  prometheus.Counter
	reaperRemoved *prometheus.CounterVec
}

func New() *Metrics {
	reg := prometheus.NewRegistry()

	m := &Metrics{
		registry: reg,
		requests: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "keystep_http_requests_total",
			Help: "HTTP requests by handler, method and status code.",
		}, []string{"handler", "method", "code"}),
		reaperSweeps: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Name: "keystep_reaper_sweeps_total",
			Help: "Completed reaper passes over the registries.",
		}),
		reaperRemoved: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "keystep_reaper_removed_total",
			Help: "Expired entries removed by the reaper, per registry.",
		}, []string{"registry"}),
	}

	// Materialise the per-registry series up front so the first scrape
	// shows zeros instead of nothing.
	for _, name := range []string{"verifications", "credentials", "sessions"} {
		m.reaperRemoved.WithLabelValues(name)
	}

	return m
}

// InstrumentHandler counts requests into a named handler by method and
// status code.
func (m *Metrics) InstrumentHandler(name string, h http.Handler) http.Handler {
	return promhttp.InstrumentHandlerCounter(
		m.requests.MustCurryWith(prometheus.Labels{"handler": name}),
		h,
	)
}

// TrackRegistrySize exports a gauge that follows one registry's entry
// count via the given callback.
func (m *Metrics) TrackRegistrySize(name string, size func() int) {
	promauto.With(m.registry).NewGaugeFunc(prometheus.GaugeOpts{
		Name:        "keystep_registry_entries",
		Help:        "Entries currently held, live or awaiting sweep.",
		ConstLabels: prometheus.Labels{"registry": name},
	}, func() float64 { return float64(size()) })
}

// ObserveSweep records one reaper pass and what it removed.
func (m *Metrics) ObserveSweep(verifications, credentials, sessions int) {
	m.reaperSweeps.Inc()
	m.reaperRemoved.WithLabelValues("verifications").Add(float64(verifications))
	m.reaperRemoved.WithLabelValues("credentials").Add(float64(credentials))
	m.reaperRemoved.WithLabelValues("sessions").Add(float64(sessions))
}

// Handler serves the scrape endpoint for this instance's registry.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
