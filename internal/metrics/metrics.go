// Package metrics exposes the process counters on a private registry.
package metrics

import (
	"context"
	"net/http"

	"github.com/google/wire"
	"github.com/notarydesk/priorities/internal/event"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var Provider = wire.NewSet(New)

const namespace = "priorities"

// Outcomes recorded by Observe.
const (
	OutcomeOK       = "ok"
	OutcomeRejected = "rejected"
	OutcomeFailed   = "failed"
)

type Metrics struct {
	registry *prometheus.Registry

	operations  *prometheus.CounterVec
	storeEvents *prometheus.CounterVec
	backups     *prometheus.CounterVec
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "operations_total",
			Help:      "Domain operations by name and outcome.",
		}, []string{"op", "outcome"}),
		storeEvents: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "store_events_total",
			Help:      "Record store change notifications by kind and origin.",
		}, []string{"kind", "origin"}),
		backups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "backups_total",
			Help:      "Backup exports and imports by outcome.",
		}, []string{"direction", "outcome"}),
	}
	m.registry.MustRegister(
		m.operations,
		m.storeEvents,
		m.backups,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// Observe counts one domain operation.
func (m *Metrics) Observe(op, outcome string) {
	m.operations.WithLabelValues(op, outcome).Inc()
}

// Backup counts one export or import.
func (m *Metrics) Backup(direction, outcome string) {
	m.backups.WithLabelValues(direction, outcome).Inc()
}

// Watch counts every event dispatched on bus.
func (m *Metrics) Watch(bus *event.Bus) func() {
	return bus.Subscribe(func(_ context.Context, e event.Event) {
		origin := "local"
		if e.Remote {
			origin = "remote"
		}
		m.storeEvents.WithLabelValues(string(e.Kind), origin).Inc()
	})
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
