package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	ResultOK    = "ok"
	ResultError = "error"
)

type Metrics struct {
	registry     *prometheus.Registry
	DatasetLoads *prometheus.CounterVec
	PageRenders  prometheus.Counter
	VisibleTiles prometheus.Histogram
}

// New registers the dashboard collectors on a private registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		registry: reg,
		DatasetLoads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "training_board",
			Name:      "dataset_loads_total",
			Help:      "Dataset fetch and decode attempts by result.",
		}, []string{"result"}),
		PageRenders: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "training_board",
			Name:      "page_renders_total",
			Help:      "Dashboard documents rendered.",
		}),
		VisibleTiles: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "training_board",
			Name:      "visible_tiles",
			Help:      "Tiles left visible after the filters were applied.",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 9),
		}),
	}
	reg.MustRegister(m.DatasetLoads, m.PageRenders, m.VisibleTiles)
	return m
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
