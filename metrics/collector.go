package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/graphlayout/graph"
)

// maxShortestPathSpreadNodes bounds the all-pairs dijkstra pass Observe
// runs for ShortestPathSpreadStats; beyond this node count the O(V^2 log V)
// cost isn't worth paying on every layout and the gauge simply keeps its
// last value.
const maxShortestPathSpreadNodes = 500

// Recorder publishes layout-quality statistics as Prometheus gauges. A
// server wires one Recorder per process and calls Observe after every
// layout.Apply call.
type Recorder struct {
	edgeLengthMean        prometheus.Gauge
	edgeLengthStdDev      prometheus.Gauge
	nodeSpreadMean        prometheus.Gauge
	shortestPathSpreadMax prometheus.Gauge
	componentCount        prometheus.Gauge
	layoutsObserved       prometheus.Counter
}

// NewRecorder creates a Recorder and registers its collectors with reg.
// Passing nil uses prometheus.DefaultRegisterer.
func NewRecorder(reg prometheus.Registerer) *Recorder {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	r := &Recorder{
		edgeLengthMean: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "graphlayout",
			Name:      "edge_length_mean",
			Help:      "Mean Euclidean edge length of the most recently observed layout.",
		}),
		edgeLengthStdDev: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "graphlayout",
			Name:      "edge_length_stddev",
			Help:      "Standard deviation of edge length of the most recently observed layout.",
		}),
		nodeSpreadMean: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "graphlayout",
			Name:      "node_spread_mean",
			Help:      "Mean nearest-neighbor node distance of the most recently observed layout.",
		}),
		shortestPathSpreadMax: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "graphlayout",
			Name:      "shortest_path_spread_max",
			Help:      "Largest shortest-path distance between any two reachable nodes in the most recently observed layout.",
		}),
		componentCount: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "graphlayout",
			Name:      "component_count",
			Help:      "Number of connected components in the most recently observed graph.",
		}),
		layoutsObserved: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "graphlayout",
			Name:      "layouts_observed_total",
			Help:      "Count of layouts passed to Recorder.Observe.",
		}),
	}

	reg.MustRegister(r.edgeLengthMean, r.edgeLengthStdDev, r.nodeSpreadMean, r.shortestPathSpreadMax, r.componentCount, r.layoutsObserved)

	return r
}

// Observe computes edge-length and node-spread statistics for g and
// updates the recorder's gauges. Errors computing a statistic (e.g. an
// empty graph) leave the corresponding gauge at its last value.
func (r *Recorder) Observe(g *graph.Graph) {
	r.layoutsObserved.Inc()

	if stats, err := ComputeEdgeLengthStats(g); err == nil {
		r.edgeLengthMean.Set(stats.Mean)
		r.edgeLengthStdDev.Set(stats.StdDev)
	}

	if stats, err := ComputeNodeSpreadStats(g); err == nil {
		r.nodeSpreadMean.Set(stats.Mean)
	}

	if g.NodeCount() <= maxShortestPathSpreadNodes {
		if stats, err := ComputeShortestPathSpreadStats(g); err == nil {
			r.shortestPathSpreadMax.Set(stats.Max)
		}
	}

	r.componentCount.Set(float64(ComponentCount(g)))
}
