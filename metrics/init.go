package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initStoreMetrics() {
	r.StoreNodes = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "netgraph_store_nodes",
			Help: "Number of nodes in the topology store",
		},
	)

	r.StoreLinks = promauto.With(r.registry).NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "netgraph_store_links",
			Help: "Number of links in the topology store by layer",
		},
		[]string{"type"}, // trunk, route, traffic
	)
}

func (r *Registry) initSolverMetrics() {
	r.PathQueriesTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "netgraph_path_queries_total",
			Help: "Total number of shortest-path queries",
		},
		[]string{"scope", "outcome"}, // scope: global, domain, traffic
	)

	r.FlowRunsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "netgraph_flow_runs_total",
			Help: "Total number of max-flow runs",
		},
		[]string{"algorithm", "outcome"},
	)

	r.FlowValue = promauto.With(r.registry).NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "netgraph_flow_value",
			Help: "Value of the last max-flow run",
		},
		[]string{"algorithm"},
	)

	r.RoutePairsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "netgraph_route_pairs_total",
			Help: "Edge-node pairs processed while building domain routes",
		},
		[]string{"as", "outcome"},
	)
}

func (r *Registry) initLayoutMetrics() {
	r.LayoutStepsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "netgraph_layout_steps_total",
			Help: "Total number of layout iterations",
		},
		[]string{"algorithm"},
	)

	r.LayoutStepDuration = promauto.With(r.registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "netgraph_layout_step_duration_seconds",
			Help:    "Duration of one layout iteration in seconds",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5},
		},
		[]string{"algorithm"},
	)
}
