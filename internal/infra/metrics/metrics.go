// Package metrics exposes Prometheus instrumentation for the storefront service.
package metrics

import (
	"net/http"
	"time"

	"storefront/internal/domain/service"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics owns a private registry so tests and multiple fx apps never collide
// on the global one.
type Metrics struct {
	registry *prometheus.Registry

	authentications        *prometheus.CounterVec
	authenticationDuration *prometheus.HistogramVec
}

// New creates the registry and registers the Go and process collectors.
func New() *Metrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	return newWithRegistry(registry)
}

func newWithRegistry(registry *prometheus.Registry) *Metrics {
	m := &Metrics{
		registry: registry,
		authentications: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "storefront_authentications_total",
				Help: "Total number of customer authentication attempts by outcome",
			},
			[]string{"outcome"},
		),
		authenticationDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "storefront_authentication_duration_seconds",
				Help:    "Customer authentication duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"outcome"},
		),
	}

	registry.MustRegister(m.authentications)
	registry.MustRegister(m.authenticationDuration)

	return m
}

// NewAuthenticationRecorder exposes m as the domain recorder.
func NewAuthenticationRecorder(m *Metrics) service.AuthenticationRecorder {
	return m
}

// RecordAuthentication counts one attempt and observes its duration.
func (m *Metrics) RecordAuthentication(outcome string, duration time.Duration) {
	m.authentications.WithLabelValues(outcome).Inc()
	m.authenticationDuration.WithLabelValues(outcome).Observe(duration.Seconds())
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{
		EnableOpenMetrics: true,
	})
}
