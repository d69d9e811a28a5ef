// Package metrics contadores Prometheus del inventario en un registro propio.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/OnKodr-dev/inventory-app/internal/domain"
	"github.com/OnKodr-dev/inventory-app/internal/domain/entity"
)

// Metrics implementa inventory.MutationObserver y snapshot.Observer.
type Metrics struct {
	registry         *prometheus.Registry
	mutations        *prometheus.CounterVec
	writeFailures    *prometheus.CounterVec
	snapshotFallback *prometheus.CounterVec
}

// New crea el registro con las métricas del proceso y de Go.
func New() *Metrics {
	registry := prometheus.NewRegistry()

	m := &Metrics{
		registry: registry,
		mutations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "inventory_mutations_total",
				Help: "Mutations of catalog and ledger by operation and result code",
			},
			[]string{"operation", "result"},
		),
		writeFailures: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "inventory_snapshot_write_failures_total",
				Help: "Snapshot writes that failed and were discarded",
			},
			[]string{"key", "op"},
		),
		snapshotFallback: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "inventory_snapshot_fallbacks_total",
				Help: "Snapshot loads that fell back to seed data",
			},
			[]string{"key"},
		),
	}

	registry.MustRegister(
		m.mutations,
		m.writeFailures,
		m.snapshotFallback,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// MutationDone cuenta una mutación; result es "ok" o el código de error de dominio.
func (m *Metrics) MutationDone(op string, err error) {
	result := "ok"
	if err != nil {
		result = domain.Code(err)
	}
	m.mutations.WithLabelValues(op, result).Inc()
}

// SnapshotWriteFailed cuenta una escritura descartada.
func (m *Metrics) SnapshotWriteFailed(key, op string) {
	m.writeFailures.WithLabelValues(key, op).Inc()
}

// SnapshotFallback cuenta una carga que volvió a la semilla.
func (m *Metrics) SnapshotFallback(key string) {
	m.snapshotFallback.WithLabelValues(key).Inc()
}

// RegisterStockGauges publica inventory_items{status} calculado en cada scrape.
func (m *Metrics) RegisterStockGauges(counts func() entity.StockCounts) {
	for status, pick := range map[string]func(entity.StockCounts) int{
		"all": func(c entity.StockCounts) int { return c.All },
		"low": func(c entity.StockCounts) int { return c.Low },
		"out": func(c entity.StockCounts) int { return c.Out },
	} {
		pick := pick
		m.registry.MustRegister(prometheus.NewGaugeFunc(
			prometheus.GaugeOpts{
				Name:        "inventory_items",
				Help:        "Catalog items by stock status",
				ConstLabels: prometheus.Labels{"status": status},
			},
			func() float64 { return float64(pick(counts())) },
		))
	}
}

// Registry registro subyacente (tests).
func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

// Handler expone el registro en formato texto de Prometheus.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
