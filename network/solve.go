package network

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/netgraph/core"
	"github.com/katalvlaran/netgraph/dfs"
	"github.com/katalvlaran/netgraph/dijkstra"
	"github.com/katalvlaran/netgraph/domain"
	"github.com/katalvlaran/netgraph/flow"
	"github.com/katalvlaran/netgraph/matrix"
	"github.com/katalvlaran/netgraph/metrics"
	"github.com/katalvlaran/netgraph/prim_kruskal"
	"github.com/katalvlaran/netgraph/routing"
)

// ScopeGlobal labels path queries that are not restricted to an AS.
const ScopeGlobal = "global"

// pathOptions prepends the configured weighting to opts.
func (n *Network) pathOptions(opts []dijkstra.Option) []dijkstra.Option {
	if !n.cfg.Solver.UseCosts {
		return opts
	}
	return append([]dijkstra.Option{dijkstra.WithCosts()}, opts...)
}

func pathOutcome(err error) string {
	switch {
	case err == nil:
		return metrics.OutcomeFound
	case errors.Is(err, dijkstra.ErrNoPathFound):
		return metrics.OutcomeNoPath
	default:
		return metrics.OutcomeError
	}
}

// ShortestPath runs dijkstra.ShortestPath over the whole store, weighted by
// cost when the solver config asks for it.
func (n *Network) ShortestPath(src, dst core.NodeID, opts ...dijkstra.Option) (*dijkstra.Path, error) {
	p, err := dijkstra.ShortestPath(n.store, src, dst, n.pathOptions(opts)...)
	n.metrics.RecordPathQuery(ScopeGlobal, pathOutcome(err))
	return p, err
}

// DomainShortestPath is ShortestPath restricted to the pools of as.
func (n *Network) DomainShortestPath(as core.ASID, src, dst core.NodeID, opts ...dijkstra.Option) (*dijkstra.Path, error) {
	owner, ok := n.domains.AS(as)
	if !ok {
		return nil, fmt.Errorf("%w: %d", domain.ErrASNotFound, as)
	}
	p, err := routing.DomainShortestPath(n.domains, src, dst, as, n.pathOptions(opts)...)
	n.metrics.RecordPathQuery(owner.Name, pathOutcome(err))
	return p, err
}

// DomainRoutes builds the missing route links between the edge nodes of as.
// Every pair is counted; pairs without a path are logged at warn level.
func (n *Network) DomainRoutes(as core.ASID) ([]routing.PairResult, error) {
	owner, ok := n.domains.AS(as)
	if !ok {
		return nil, fmt.Errorf("%w: %d", domain.ErrASNotFound, as)
	}
	results, err := routing.BuildDomainRoutes(n.domains, as, n.pathOptions(nil)...)
	if err != nil {
		return nil, err
	}
	created := 0
	for _, r := range results {
		outcome := metrics.OutcomeExisting
		switch {
		case r.Err != nil:
			outcome = pathOutcome(r.Err)
			n.log.Warn("route pair failed", "as", owner.Name, "a", r.A, "b", r.B, "error", r.Err)
		case r.ForwardCreated || r.ReverseCreated:
			outcome = metrics.OutcomeCreated
		}
		if r.ForwardCreated {
			created++
		}
		if r.ReverseCreated {
			created++
		}
		n.metrics.RecordRoutePair(owner.Name, outcome)
	}
	n.refresh()

	n.log.Info("domain routes built", "as", owner.Name, "pairs", len(results), "created", created)
	return results, nil
}

// SpanningTree returns the tree a spanning-tree domain over as converges to.
func (n *Network) SpanningTree(as core.ASID) (*prim_kruskal.Tree, error) {
	return routing.DomainSpanningTree(n.domains, as)
}

// Loops lists the trunk loops among the members of as.
func (n *Network) Loops(as core.ASID) ([]dfs.Loop, error) {
	return routing.DomainLoops(n.domains, as)
}

// DomainDistances returns the all-pairs distance matrix over the member
// nodes and trunks of as, weighted like ShortestPath.
func (n *Network) DomainDistances(as core.ASID) (*matrix.Distances, error) {
	owner, ok := n.domains.AS(as)
	if !ok {
		return nil, fmt.Errorf("%w: %d", domain.ErrASNotFound, as)
	}
	opts := []matrix.Option{
		matrix.WithNodes(owner.NodeIDs()...),
		matrix.WithLinkFilter(func(l *core.Link) bool { return owner.HasLink(l.ID) }),
	}
	if n.cfg.Solver.UseCosts {
		opts = append(opts, matrix.WithCosts())
	}
	d, err := matrix.NewDistances(n.store, opts...)
	if err != nil {
		return nil, fmt.Errorf("network: distances of %s: %w", owner.Name, err)
	}
	return d, nil
}

// flowOptions builds solver options from the config.
func (n *Network) flowOptions(ctx context.Context) flow.FlowOptions {
	opts := flow.DefaultOptions()
	if ctx != nil {
		opts.Ctx = ctx
	}
	opts.Logger = n.log
	opts.Verbose = n.cfg.Solver.VerboseFlow
	return opts
}

// MaxFlow clears every flow field and runs alg from src to dst. The store
// keeps the resulting flows.
func (n *Network) MaxFlow(ctx context.Context, alg flow.Algorithm, src, dst core.NodeID) (*flow.Result, error) {
	n.store.ResetFlows()
	return n.runFlow(ctx, n.store, alg, src, dst)
}

// runFlow runs alg on s and records the outcome.
func (n *Network) runFlow(ctx context.Context, s *core.Store, alg flow.Algorithm, src, dst core.NodeID) (*flow.Result, error) {
	res, err := flow.MaxFlow(alg, s, src, dst, n.flowOptions(ctx))
	var value int64
	if res != nil {
		value = res.Value
	}
	n.metrics.RecordFlow(alg.String(), value, err)
	if err != nil {
		return res, err
	}

	n.log.Debug("max flow", "algorithm", alg.String(), "value", res.Value, "augmentations", res.Augmentations)
	return res, nil
}

// DefaultMaxFlow runs MaxFlow with the configured algorithm.
func (n *Network) DefaultMaxFlow(ctx context.Context, src, dst core.NodeID) (*flow.Result, error) {
	alg, err := flow.ParseAlgorithm(n.cfg.Solver.FlowAlgorithm)
	if err != nil {
		return nil, err
	}
	return n.MaxFlow(ctx, alg, src, dst)
}

// crossCheckAlgorithm returns the configured cross-check algorithm, or a
// different one than primary when none is configured.
func (n *Network) crossCheckAlgorithm(primary flow.Algorithm) (flow.Algorithm, error) {
	if n.cfg.Solver.CrossCheck != "" {
		return flow.ParseAlgorithm(n.cfg.Solver.CrossCheck)
	}
	if primary == flow.AlgFordFulkerson {
		return flow.AlgEdmondsKarp, nil
	}
	return flow.AlgFordFulkerson, nil
}

// CrossCheckFlow runs the configured algorithm on the store and the
// cross-check algorithm on a flow-free clone of it, and fails with
// ErrFlowMismatch when their values differ. The store keeps the flows of the
// configured algorithm.
func (n *Network) CrossCheckFlow(ctx context.Context, src, dst core.NodeID) (*flow.Result, error) {
	primary, err := flow.ParseAlgorithm(n.cfg.Solver.FlowAlgorithm)
	if err != nil {
		return nil, err
	}
	check, err := n.crossCheckAlgorithm(primary)
	if err != nil {
		return nil, err
	}
	res, err := n.MaxFlow(ctx, primary, src, dst)
	if err != nil {
		return nil, err
	}
	shadow := n.store.Clone()
	shadow.ResetFlows()
	ref, err := n.runFlow(ctx, shadow, check, src, dst)
	if err != nil {
		return nil, err
	}
	if ref.Value != res.Value {
		n.log.Error("max-flow mismatch",
			"algorithm", primary.String(), "value", res.Value,
			"cross_check", check.String(), "cross_value", ref.Value)
		return res, fmt.Errorf("%w: %s=%d %s=%d", ErrFlowMismatch, primary, res.Value, check, ref.Value)
	}
	return res, nil
}
