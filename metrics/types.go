// Package metrics instruments solver, routing and layout calls with
// Prometheus collectors on a private registry.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Outcome label values.
const (
	OutcomeFound    = "found"
	OutcomeNoPath   = "no_path"
	OutcomeError    = "error"
	OutcomeCreated  = "created"
	OutcomeExisting = "existing"
)

// Registry holds every collector of the application.
type Registry struct {
	// Store
	StoreNodes prometheus.Gauge
	StoreLinks *prometheus.GaugeVec

	// Solver
	PathQueriesTotal *prometheus.CounterVec
	FlowRunsTotal    *prometheus.CounterVec
	FlowValue        *prometheus.GaugeVec
	RoutePairsTotal  *prometheus.CounterVec

	// Layout
	LayoutStepsTotal   *prometheus.CounterVec
	LayoutStepDuration *prometheus.HistogramVec

	registry *prometheus.Registry
}

// NewRegistry creates a registry with all collectors registered.
func NewRegistry() *Registry {
	r := &Registry{registry: prometheus.NewRegistry()}
	r.initStoreMetrics()
	r.initSolverMetrics()
	r.initLayoutMetrics()
	return r
}

// Gatherer exposes the underlying registry for scraping or inspection.
func (r *Registry) Gatherer() prometheus.Gatherer { return r.registry }
