// File: fruchterman_reingold.go
// Role: One Fruchterman–Reingold iteration over a node subset.

package layout

import (
	"math"

	"github.com/katalvlaran/netgraph/core"
)

// FruchtermanReingold is the Fruchterman–Reingold force model without cooling;
// MaxDisplacement plays the role of a constant temperature.
type FruchtermanReingold struct {
	store  *core.Store
	params FRParams
}

// NewFruchtermanReingold validates p and binds the model to s.
func NewFruchtermanReingold(s *core.Store, p FRParams) (*FruchtermanReingold, error) {
	if err := check(p); err != nil {
		return nil, err
	}
	return &FruchtermanReingold{store: s, params: p}, nil
}

// Name implements Layout.
func (fr *FruchtermanReingold) Name() string { return NameFR }

// Step moves every node of the subset once.
//
// Steps:
//  1. Repulsion opd²/d² between every pair of the subset.
//  2. Attraction d/opd along trunks whose both endpoints are in the subset.
//  3. Displace each node by f/|f| · min(|f|, MaxDisplacement); clamp to Bounds.
//
// Complexity: O(N² + Σ deg) for N nodes. Velocities are not used.
func (fr *FruchtermanReingold) Step(nodes []core.NodeID) error {
	set, err := resolve(fr.store, nodes)
	if err != nil {
		return err
	}
	opd := fr.params.OptimalDistance
	index := make(map[core.NodeID]int, len(set))
	for i, n := range set {
		index[n.ID] = i
	}
	forces := make([]vec, len(set))

	for i := range set {
		for j := i + 1; j < len(set); j++ {
			dx, dy := set[i].X-set[j].X, set[i].Y-set[j].Y
			d := max(math.Hypot(dx, dy), minDistance)
			rep := opd * opd / (d * d)
			fx, fy := dx/d*rep, dy/d*rep
			forces[i].x += fx
			forces[i].y += fy
			forces[j].x -= fx
			forces[j].y -= fy
		}
	}

	for i, n := range set {
		for nb := range fr.store.Neighbors(n.ID, core.TypeTrunk) {
			j, ok := index[nb.ID]
			if !ok || j == i {
				continue
			}
			dx, dy := n.X-nb.X, n.Y-nb.Y
			d := math.Hypot(dx, dy)
			if d < minDistance {
				continue
			}
			att := d / opd
			forces[i].x -= dx / d * att
			forces[i].y -= dy / d * att
		}
	}

	for i, n := range set {
		f := forces[i]
		mag := math.Hypot(f.x, f.y)
		if mag == 0 {
			continue
		}
		step := min(mag, fr.params.MaxDisplacement)
		n.X += f.x / mag * step
		n.Y += f.y / mag * step
		if fr.params.Bounds != nil {
			n.X, n.Y = fr.params.Bounds.clamp(n.X, n.Y)
		}
	}

	return nil
}
