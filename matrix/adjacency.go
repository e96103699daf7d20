// SPDX-License-Identifier: MIT
// Package: matrix
//
// adjacency.go - store adapters: an id-indexed adjacency matrix of link
// multiplicities and the all-pairs distance matrix built on top of it.
//
// Determinism:
//   - Row/column i is the i-th selected node in ascending NodeID order.

package matrix

import (
	"fmt"
	"math"
	"slices"

	"github.com/katalvlaran/netgraph/core"
)

// Option configures the store adapters.
type Option func(*options)

type options struct {
	nodes      []core.NodeID
	linkTypes  []core.LinkType
	useCosts   bool
	linkFilter func(*core.Link) bool
}

// WithNodes restricts the matrix to the given nodes.
func WithNodes(ids ...core.NodeID) Option {
	return func(o *options) { o.nodes = ids }
}

// WithLinkTypes selects the layers read. Default: trunk.
func WithLinkTypes(types ...core.LinkType) Option {
	return func(o *options) {
		if len(types) > 0 {
			o.linkTypes = types
		}
	}
}

// WithCosts weights Distances by directional cost instead of hop count.
func WithCosts() Option {
	return func(o *options) { o.useCosts = true }
}

// WithLinkFilter skips links for which fn returns false.
func WithLinkFilter(fn func(*core.Link) bool) Option {
	return func(o *options) { o.linkFilter = fn }
}

// Index maps selected nodes to matrix rows.
type Index struct {
	Nodes []core.NodeID
	pos   map[core.NodeID]int
}

// Pos returns the row of id.
func (ix *Index) Pos(id core.NodeID) (int, bool) {
	i, ok := ix.pos[id]
	return i, ok
}

func newIndex(s *core.Store, o options) (*Index, error) {
	ids := s.NodeIDs()
	if len(o.nodes) > 0 {
		ids = slices.Clone(o.nodes)
		slices.Sort(ids)
		ids = slices.Compact(ids)
		for _, id := range ids {
			if !s.HasNode(id) {
				return nil, fmt.Errorf("%w: %d", ErrUnknownNode, id)
			}
		}
	}
	ix := &Index{Nodes: ids, pos: make(map[core.NodeID]int, len(ids))}
	for i, id := range ids {
		ix.pos[id] = i
	}
	return ix, nil
}

func resolve(s *core.Store, opts []Option) (options, *Index, error) {
	o := options{linkTypes: []core.LinkType{core.TypeTrunk}}
	for _, fn := range opts {
		fn(&o)
	}
	if s == nil {
		return o, nil, ErrGraphNil
	}
	ix, err := newIndex(s, o)
	if err != nil {
		return o, nil, err
	}
	if len(ix.Nodes) == 0 {
		return o, nil, fmt.Errorf("no nodes selected: %w", ErrBadShape)
	}
	return o, ix, nil
}

// edges calls fn once per selected link with both endpoints in the index.
func edges(s *core.Store, o options, ix *Index, fn func(l *core.Link, i, j int) error) error {
	for l := range s.Links(o.linkTypes...) {
		if o.linkFilter != nil && !o.linkFilter(l) {
			continue
		}
		i, okI := ix.pos[l.Source]
		j, okJ := ix.pos[l.Destination]
		if !okI || !okJ {
			continue
		}
		if err := fn(l, i, j); err != nil {
			return err
		}
	}
	return nil
}

// Adjacency is a symmetric matrix of link counts between selected nodes.
type Adjacency struct {
	*Index
	Mat *Dense
}

// NewAdjacency counts the selected links between every pair of selected
// nodes. A self-looped link counts once on the diagonal.
//
// Errors: ErrGraphNil, ErrUnknownNode, ErrBadShape (empty selection).
func NewAdjacency(s *core.Store, opts ...Option) (*Adjacency, error) {
	o, ix, err := resolve(s, opts)
	if err != nil {
		return nil, err
	}
	n := len(ix.Nodes)
	mat, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	err = edges(s, o, ix, func(_ *core.Link, i, j int) error {
		mat.data[i*n+j]++
		if i != j {
			mat.data[j*n+i]++
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &Adjacency{Index: ix, Mat: mat}, nil
}

// Degree returns the number of selected links at id.
func (a *Adjacency) Degree(id core.NodeID) (int, error) {
	i, ok := a.pos[id]
	if !ok {
		return 0, fmt.Errorf("%w: %d", ErrUnknownNode, id)
	}
	n := a.Mat.c
	var d float64
	for j := range n {
		d += a.Mat.data[i*n+j]
	}
	return int(d), nil
}

// Distances is the all-pairs shortest-path matrix: Mat[i][j] is the distance
// from Nodes[i] to Nodes[j], +Inf when unreachable.
type Distances struct {
	*Index
	Mat *Dense
}

// NewDistances builds the directional weight matrix (the cheapest parallel
// link per direction, 1 per hop without WithCosts) and closes it with
// Floyd–Warshall.
//
// Errors: ErrGraphNil, ErrUnknownNode, ErrBadShape, ErrNegativeCost.
//
// Complexity: O(E + n^3) time, O(n^2) memory.
func NewDistances(s *core.Store, opts ...Option) (*Distances, error) {
	o, ix, err := resolve(s, opts)
	if err != nil {
		return nil, err
	}
	n := len(ix.Nodes)
	mat, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	mat.Fill(math.Inf(1))
	for i := range n {
		mat.data[i*n+i] = 0
	}
	relax := func(from, to int, w int64, l *core.Link) error {
		if w < 0 {
			return fmt.Errorf("%w: %s (%d)", ErrNegativeCost, l.Name, w)
		}
		if v := float64(w); v < mat.data[from*n+to] {
			mat.data[from*n+to] = v
		}
		return nil
	}
	err = edges(s, o, ix, func(l *core.Link, i, j int) error {
		sd, ds := int64(1), int64(1)
		if o.useCosts {
			sd, ds = l.CostSD, l.CostDS
		}
		if err := relax(i, j, sd, l); err != nil {
			return err
		}
		return relax(j, i, ds, l)
	})
	if err != nil {
		return nil, err
	}
	floydWarshallInPlace(mat)

	return &Distances{Index: ix, Mat: mat}, nil
}

// Between returns the distance from a to b and whether b is reachable.
func (d *Distances) Between(a, b core.NodeID) (float64, bool) {
	i, okA := d.pos[a]
	j, okB := d.pos[b]
	if !okA || !okB {
		return math.Inf(1), false
	}
	v := d.Mat.data[i*d.Mat.c+j]
	return v, !math.IsInf(v, 1)
}

// Eccentricity returns the largest distance from id to any selected node,
// +Inf when some node is unreachable.
func (d *Distances) Eccentricity(id core.NodeID) (float64, error) {
	i, ok := d.pos[id]
	if !ok {
		return 0, fmt.Errorf("%w: %d", ErrUnknownNode, id)
	}
	n := d.Mat.c
	return slices.Max(d.Mat.data[i*n : (i+1)*n]), nil
}

// Diameter returns the largest eccentricity, +Inf for a disconnected selection.
func (d *Distances) Diameter() float64 {
	return slices.Max(d.Mat.data)
}
