// File: types.go
// Role: Layout contract, parameter records with validation tags, sentinel errors.

package layout

import (
	"errors"
	"fmt"
	"slices"

	"github.com/go-playground/validator/v10"

	"github.com/katalvlaran/netgraph/core"
)

// Algorithm names accepted by New.
const (
	NameSpring       = "spring"
	NameFR           = "fruchterman-reingold"
	NameHierarchical = "hierarchical"
)

// Sentinel errors for layout construction and stepping.
var (
	// ErrInvalidParams wraps every parameter validation failure.
	ErrInvalidParams = errors.New("layout: invalid parameters")

	// ErrNodeNotFound indicates a Step argument names a node absent from the store.
	ErrNodeNotFound = errors.New("layout: node not found")

	// ErrUnknownAlgorithm is returned by New for an unregistered name.
	ErrUnknownAlgorithm = errors.New("layout: unknown algorithm")
)

// maxVelocity bounds each velocity component of the spring model.
const maxVelocity = 100.0

// minDistance replaces smaller pair distances to keep forces finite.
const minDistance = 0.01

// Layout is one force-directed algorithm bound to a store.
type Layout interface {
	// Name returns the algorithm name used by New.
	Name() string
	// Step performs one iteration over nodes and updates their positions.
	Step(nodes []core.NodeID) error
}

// SpringParams configures the Eades spring model.
type SpringParams struct {
	Stiffness         float64 `yaml:"stiffness" validate:"gte=0"`
	CoulombFactor     float64 `yaml:"coulomb_factor" validate:"gte=0"`
	SpeedFactor       float64 `yaml:"speed_factor" validate:"gt=0"`
	EquilibriumLength float64 `yaml:"equilibrium_length" validate:"gt=0"`
	Damping           float64 `yaml:"damping" validate:"gt=0,lte=1"`
}

// DefaultSpringParams returns parameters under which two trunk-linked nodes
// far beyond EquilibriumLength are pulled together.
func DefaultSpringParams() SpringParams {
	return SpringParams{
		Stiffness:         0.5,
		CoulombFactor:     10000,
		SpeedFactor:       1,
		EquilibriumLength: 100,
		Damping:           0.9,
	}
}

// Rect is an axis-aligned bounding box.
type Rect struct {
	MinX float64 `yaml:"min_x"`
	MinY float64 `yaml:"min_y"`
	MaxX float64 `yaml:"max_x" validate:"gtfield=MinX"`
	MaxY float64 `yaml:"max_y" validate:"gtfield=MinY"`
}

// clamp returns (x, y) moved inside r.
func (r Rect) clamp(x, y float64) (float64, float64) {
	return min(max(x, r.MinX), r.MaxX), min(max(y, r.MinY), r.MaxY)
}

// FRParams configures the Fruchterman–Reingold model.
type FRParams struct {
	OptimalDistance float64 `yaml:"optimal_distance" validate:"gt=0"`
	MaxDisplacement float64 `yaml:"max_displacement" validate:"gt=0"`
	// Bounds, when set, confines every moved node.
	Bounds *Rect `yaml:"bounds,omitempty"`
}

// DefaultFRParams returns a 50-unit optimal distance and a 10-unit step cap.
func DefaultFRParams() FRParams {
	return FRParams{OptimalDistance: 50, MaxDisplacement: 10}
}

// HierarchicalParams configures the BFS-clusterization layout.
type HierarchicalParams struct {
	Spring SpringParams `yaml:"spring"`
	// ClusterSize caps the node count of a BFS cluster.
	ClusterSize int `yaml:"cluster_size" validate:"min=1"`
	// InnerIterations is the number of spring steps run inside each cluster.
	InnerIterations int `yaml:"inner_iterations" validate:"gte=0"`
	// ConnectClusters adds virtual links between trunk-adjacent clusters.
	ConnectClusters bool `yaml:"connect_clusters"`
}

// DefaultHierarchicalParams returns clusters of 10 relaxed 5 times each.
func DefaultHierarchicalParams() HierarchicalParams {
	return HierarchicalParams{
		Spring:          DefaultSpringParams(),
		ClusterSize:     10,
		InnerIterations: 5,
		ConnectClusters: true,
	}
}

// Config gathers the parameters of every algorithm for New.
type Config struct {
	Spring       SpringParams       `yaml:"spring"`
	FR           FRParams           `yaml:"fr"`
	Hierarchical HierarchicalParams `yaml:"hierarchical"`
}

// DefaultConfig returns the default parameters of every algorithm.
func DefaultConfig() Config {
	return Config{
		Spring:       DefaultSpringParams(),
		FR:           DefaultFRParams(),
		Hierarchical: DefaultHierarchicalParams(),
	}
}

// VirtualNode is a synthetic weighted body taking part in force computation
// without being moved. A zero Weight counts as 1.
type VirtualNode struct {
	X, Y   float64
	Weight float64
}

// validate is the shared validator instance.
var validate = validator.New()

// check validates a parameter struct and wraps the first failure in ErrInvalidParams.
func check(params any) error {
	err := validate.Struct(params)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		e := verrs[0]
		if e.Param() != "" {
			return fmt.Errorf("%w: %s must satisfy %s=%s", ErrInvalidParams, e.Namespace(), e.Tag(), e.Param())
		}
		return fmt.Errorf("%w: %s failed %s", ErrInvalidParams, e.Namespace(), e.Tag())
	}
	return fmt.Errorf("%w: %v", ErrInvalidParams, err)
}

// resolve maps ids to nodes, dropping duplicates while keeping first-seen order.
func resolve(s *core.Store, ids []core.NodeID) ([]*core.Node, error) {
	out := make([]*core.Node, 0, len(ids))
	seen := make(map[core.NodeID]struct{}, len(ids))
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			continue
		}
		n, ok := s.Node(id)
		if !ok {
			return nil, fmt.Errorf("%w: %d", ErrNodeNotFound, id)
		}
		seen[id] = struct{}{}
		out = append(out, n)
	}
	return out, nil
}

// New builds the layout registered under name with its parameters from cfg.
func New(name string, s *core.Store, cfg Config) (Layout, error) {
	switch name {
	case NameSpring:
		return NewSpring(s, cfg.Spring)
	case NameFR:
		return NewFruchtermanReingold(s, cfg.FR)
	case NameHierarchical:
		return NewHierarchical(s, cfg.Hierarchical)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
	}
}

// Names lists the algorithm names accepted by New.
func Names() []string {
	return slices.Clone(names)
}

var names = []string{NameSpring, NameFR, NameHierarchical}
