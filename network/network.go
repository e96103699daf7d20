package network

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/katalvlaran/netgraph/config"
	"github.com/katalvlaran/netgraph/core"
	"github.com/katalvlaran/netgraph/domain"
	"github.com/katalvlaran/netgraph/layout"
	"github.com/katalvlaran/netgraph/metrics"
)

// ErrFlowMismatch is returned by CrossCheckFlow when two algorithms disagree.
var ErrFlowMismatch = errors.New("network: max-flow algorithms disagree")

// Network ties the store, the domain model, the solvers and the layout
// engine together.
type Network struct {
	cfg     *config.Config
	log     *slog.Logger
	metrics *metrics.Registry

	store   *core.Store
	domains *domain.Model
	layouts map[string]layout.Layout
}

// Option configures New.
type Option func(*Network)

// WithConfig uses cfg instead of config.DefaultConfig.
func WithConfig(cfg *config.Config) Option {
	return func(n *Network) {
		if cfg != nil {
			n.cfg = cfg
		}
	}
}

// WithLogger uses l instead of a logger built from the config's log section.
func WithLogger(l *slog.Logger) Option {
	return func(n *Network) {
		if l != nil {
			n.log = l
		}
	}
}

// WithMetrics records into r instead of a fresh registry.
func WithMetrics(r *metrics.Registry) Option {
	return func(n *Network) {
		if r != nil {
			n.metrics = r
		}
	}
}

// WithStore adopts an existing store, e.g. one built by package builder.
func WithStore(s *core.Store) Option {
	return func(n *Network) {
		if s != nil {
			n.store = s
		}
	}
}

// New validates the configuration and assembles a Network.
//
// Errors: config.ErrInvalid.
func New(opts ...Option) (*Network, error) {
	n := &Network{layouts: make(map[string]layout.Layout)}
	for _, opt := range opts {
		opt(n)
	}
	if n.cfg == nil {
		n.cfg = config.DefaultConfig()
	}
	if err := n.cfg.Validate(); err != nil {
		return nil, fmt.Errorf("network: %w", err)
	}
	if n.log == nil {
		n.log = n.cfg.Log.NewLogger(os.Stderr)
	}
	if n.metrics == nil {
		n.metrics = metrics.NewRegistry()
	}
	if n.store == nil {
		n.store = core.NewStore()
	}
	n.domains = domain.NewModel(n.store)
	n.refresh()

	n.log.Debug("network ready",
		"nodes", n.store.NodeCount(),
		"links", n.store.LinkCount(),
		"flow_algorithm", n.cfg.Solver.FlowAlgorithm)

	return n, nil
}

// Store returns the topology store.
func (n *Network) Store() *core.Store { return n.store }

// Domains returns the AS/Area model.
func (n *Network) Domains() *domain.Model { return n.domains }

// Config returns the active configuration.
func (n *Network) Config() *config.Config { return n.cfg }

// Metrics returns the registry the Network records into.
func (n *Network) Metrics() *metrics.Registry { return n.metrics }

// refresh pushes the store counts into the gauges.
func (n *Network) refresh() {
	n.metrics.UpdateStore(n.store.Stats())
}
