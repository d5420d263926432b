// Package metrics exposes prometheus collectors for spanning-forest runs on a
// private registry, fed through the mst accept/reject hooks.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/katalvlaran/spantree/core"
	"github.com/katalvlaran/spantree/mst"
)

// Metrics groups the collectors registered on Registry.
type Metrics struct {
	Registry *prometheus.Registry

	Runs          *prometheus.CounterVec
	EdgesAccepted prometheus.Counter
	EdgesRejected prometheus.Counter
	TotalWeight   prometheus.Gauge
	Components    prometheus.Gauge
	RunDuration   prometheus.Histogram
}

// New registers a fresh set of collectors on a private registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	f := promauto.With(reg)

	return &Metrics{
		Registry: reg,
		Runs: f.NewCounterVec(prometheus.CounterOpts{
			Name: "spantree_runs_total",
			Help: "Spanning forest computations, labelled by method and outcome.",
		}, []string{"method", "status"}),
		EdgesAccepted: f.NewCounter(prometheus.CounterOpts{
			Name: "spantree_edges_accepted_total",
			Help: "Edges accepted into a spanning forest.",
		}),
		EdgesRejected: f.NewCounter(prometheus.CounterOpts{
			Name: "spantree_edges_rejected_total",
			Help: "Edges rejected because they would close a cycle.",
		}),
		TotalWeight: f.NewGauge(prometheus.GaugeOpts{
			Name: "spantree_last_total_weight",
			Help: "Total weight of the most recent forest.",
		}),
		Components: f.NewGauge(prometheus.GaugeOpts{
			Name: "spantree_last_components",
			Help: "Number of trees in the most recent forest.",
		}),
		RunDuration: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "spantree_run_duration_seconds",
			Help:    "Wall time of a spanning forest computation.",
			Buckets: prometheus.ExponentialBuckets(1e-5, 4, 10),
		}),
	}
}

// Hooks returns mst options that count every accepted and rejected edge.
func (m *Metrics) Hooks() []mst.Option {
	return []mst.Option{
		mst.WithOnAccept(func(core.Edge) { m.EdgesAccepted.Inc() }),
		mst.WithOnReject(func(core.Edge) { m.EdgesRejected.Inc() }),
	}
}

// Observe records one finished run. res may be nil when err is set.
func (m *Metrics) Observe(method string, res *mst.Result, err error, elapsed time.Duration) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	m.Runs.WithLabelValues(method, status).Inc()
	m.RunDuration.Observe(elapsed.Seconds())
	if res != nil {
		m.TotalWeight.Set(float64(res.Total))
		m.Components.Set(float64(res.Components))
	}
}

// Handler serves the private registry in the prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{Registry: m.Registry})
}
