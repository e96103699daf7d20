package flow

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/netgraph/core"
)

// Sentinel errors for max-flow runs.
var (
	// ErrSourceNotFound is returned when the specified source node is missing.
	ErrSourceNotFound = errors.New("flow: source node not found")

	// ErrSinkNotFound is returned when the specified sink node is missing.
	ErrSinkNotFound = errors.New("flow: sink node not found")

	// ErrSameEndpoints is returned when source == sink.
	ErrSameEndpoints = errors.New("flow: source and sink are the same node")

	// ErrUnknownAlgorithm is returned by MaxFlow and ParseAlgorithm for an unknown selector.
	ErrUnknownAlgorithm = errors.New("flow: unknown algorithm")
)

// CapacityError is returned when a trunk has a negative capacity in either direction.
type CapacityError struct {
	Link core.LinkID
	Name string
	Cap  int64
}

func (e CapacityError) Error() string {
	return fmt.Sprintf("flow: negative capacity on link %q (%d): %d", e.Name, e.Link, e.Cap)
}

// Algorithm selects a max-flow implementation.
type Algorithm int

const (
	// AlgFordFulkerson augments along depth-first paths.
	AlgFordFulkerson Algorithm = iota
	// AlgEdmondsKarp augments along breadth-first (fewest-hop) paths.
	AlgEdmondsKarp
	// AlgDinic augments by blocking flows on level graphs.
	AlgDinic
)

var algorithmNames = map[Algorithm]string{
	AlgFordFulkerson: "ford-fulkerson",
	AlgEdmondsKarp:   "edmonds-karp",
	AlgDinic:         "dinic",
}

func (a Algorithm) String() string {
	if s, ok := algorithmNames[a]; ok {
		return s
	}
	return fmt.Sprintf("Algorithm(%d)", int(a))
}

// ParseAlgorithm maps a name such as "edmonds-karp" to its Algorithm.
func ParseAlgorithm(s string) (Algorithm, error) {
	for a, name := range algorithmNames {
		if name == s {
			return a, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, s)
}

// FlowOptions configures all max-flow algorithms.
//   - Ctx: checked between augmentations; cancellation returns the partial result.
//   - Logger: receives one debug record per augmentation when Verbose is set.
//   - Verbose: if true, logs each augmentation.
//   - LevelRebuildInterval: for Dinic, rebuild the level graph every N augmentations.
type FlowOptions struct {
	Ctx                  context.Context
	Logger               *slog.Logger
	Verbose              bool
	LevelRebuildInterval int
}

// DefaultOptions returns FlowOptions with a background context, a discarding
// logger and no Dinic rebuild interval.
func DefaultOptions() FlowOptions {
	return FlowOptions{
		Ctx:    context.Background(),
		Logger: slog.New(slog.DiscardHandler),
	}
}

// normalize fills zero-valued fields with defaults.
func (o *FlowOptions) normalize() {
	if o.Ctx == nil {
		o.Ctx = context.Background()
	}
	if o.Logger == nil {
		o.Logger = slog.New(slog.DiscardHandler)
	}
	if o.LevelRebuildInterval < 0 {
		o.LevelRebuildInterval = 0
	}
}

// LinkFlow is the flow on a trunk in both orientations after a run.
// For a link touched only by solvers, SD == -DS.
type LinkFlow struct {
	SD, DS int64
}

// Result of a max-flow run.
type Result struct {
	Algorithm Algorithm
	// Value is the flow pushed from source to sink by this run.
	Value int64
	// Flows holds every trunk whose flow fields are non-zero after the run.
	Flows map[core.LinkID]LinkFlow
	// Augmentations counts augmenting paths (Dinic: blocking-flow pushes).
	Augmentations int
}
