package bench

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// metrics holds the collectors of one Runner.
type metrics struct {
	duration *prometheus.HistogramVec
	outcomes *prometheus.CounterVec
	edges    *prometheus.GaugeVec
}

func newMetrics(reg prometheus.Registerer) *metrics {
	factory := promauto.With(reg)
	return &metrics{
		duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "cycles_bench_duration_seconds",
			Help:    "Wall time of a single cycle search",
			Buckets: prometheus.ExponentialBuckets(1e-6, 4, 14),
		}, []string{"algorithm", "graph", "saturation"}),
		outcomes: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "cycles_bench_outcomes_total",
			Help: "Cycle searches by outcome",
		}, []string{"algorithm", "graph", "outcome"}),
		edges: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name: "cycles_bench_graph_edges",
			Help: "Edge count of the last generated graph per cell",
		}, []string{"graph", "nodes", "saturation"}),
	}
}

func satLabel(sat float64) string {
	return strconv.FormatFloat(sat, 'g', -1, 64)
}
