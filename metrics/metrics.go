package metrics

import (
	"time"

	"github.com/katalvlaran/netgraph/core"
)

// UpdateStore sets the store gauges from a statistics snapshot.
func (r *Registry) UpdateStore(st core.StoreStats) {
	r.StoreNodes.Set(float64(st.NodeCount))
	r.StoreLinks.WithLabelValues(core.TypeTrunk.String()).Set(float64(st.TrunkCount))
	r.StoreLinks.WithLabelValues(core.TypeRoute.String()).Set(float64(st.RouteCount))
	r.StoreLinks.WithLabelValues(core.TypeTraffic.String()).Set(float64(st.TrafficCount))
}

// RecordPathQuery counts one shortest-path query.
func (r *Registry) RecordPathQuery(scope, outcome string) {
	r.PathQueriesTotal.WithLabelValues(scope, outcome).Inc()
}

// RecordFlow counts a max-flow run and, on success, stores its value.
func (r *Registry) RecordFlow(algorithm string, value int64, err error) {
	if err != nil {
		r.FlowRunsTotal.WithLabelValues(algorithm, OutcomeError).Inc()
		return
	}
	r.FlowRunsTotal.WithLabelValues(algorithm, OutcomeFound).Inc()
	r.FlowValue.WithLabelValues(algorithm).Set(float64(value))
}

// RecordRoutePair counts one edge-node pair of a route build.
func (r *Registry) RecordRoutePair(as, outcome string) {
	r.RoutePairsTotal.WithLabelValues(as, outcome).Inc()
}

// RecordLayoutStep counts one layout iteration and observes its duration.
func (r *Registry) RecordLayoutStep(algorithm string, duration time.Duration) {
	r.LayoutStepsTotal.WithLabelValues(algorithm).Inc()
	r.LayoutStepDuration.WithLabelValues(algorithm).Observe(duration.Seconds())
}
