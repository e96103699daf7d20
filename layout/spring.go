// File: spring.go
// Role: Eades spring model over real nodes, their neighbors and virtual bodies.
// Determinism:
//   - Bodies are ordered: active nodes as given, then neighbors by id, then
//     virtual nodes; forces are summed in that order.

package layout

import (
	"math"
	"slices"

	"github.com/katalvlaran/netgraph/core"
)

// body is one participant of a spring step.
type body struct {
	x, y   float64
	vx, vy float64
	weight float64
	// node is nil for virtual bodies.
	node *core.Node
}

// vec is a 2D force.
type vec struct{ x, y float64 }

// Spring is the Eades spring-electrical model.
type Spring struct {
	store  *core.Store
	params SpringParams
}

// NewSpring validates p and binds a Spring to s.
func NewSpring(s *core.Store, p SpringParams) (*Spring, error) {
	if err := check(p); err != nil {
		return nil, err
	}
	return &Spring{store: s, params: p}, nil
}

// Name implements Layout.
func (sp *Spring) Name() string { return NameSpring }

// Params returns the bound parameters.
func (sp *Spring) Params() SpringParams { return sp.params }

// Step implements Layout.
func (sp *Spring) Step(nodes []core.NodeID) error {
	return sp.StepWithVirtual(nodes, nil)
}

// StepWithVirtual runs one spring iteration for nodes. The pair set is nodes,
// their trunk neighbors and virtual; only nodes move.
//
// Steps:
//  1. Resolve nodes and gather fixed neighbor bodies.
//  2. Accumulate Hooke (trunk-connected pairs only) and Coulomb forces.
//  3. Damp, clamp and integrate velocity, then position.
//
// Complexity: O(B · A) where A = len(nodes) and B = bodies in the pair set.
func (sp *Spring) StepWithVirtual(nodes []core.NodeID, virtual []VirtualNode) error {
	active, err := resolve(sp.store, nodes)
	if err != nil {
		return err
	}

	bodies := make([]*body, 0, len(active)+len(virtual))
	inSet := make(map[core.NodeID]struct{}, len(active))
	for _, n := range active {
		bodies = append(bodies, nodeBody(n))
		inSet[n.ID] = struct{}{}
	}
	var fixed []core.NodeID
	for _, n := range active {
		for nb := range sp.store.Neighbors(n.ID, core.TypeTrunk) {
			if _, ok := inSet[nb.ID]; ok {
				continue
			}
			inSet[nb.ID] = struct{}{}
			fixed = append(fixed, nb.ID)
		}
	}
	slices.Sort(fixed)
	for _, id := range fixed {
		n, _ := sp.store.Node(id)
		bodies = append(bodies, nodeBody(n))
	}
	for _, v := range virtual {
		w := v.Weight
		if w == 0 {
			w = 1
		}
		bodies = append(bodies, &body{x: v.X, y: v.Y, weight: w})
	}

	linked := func(a, b *body) bool {
		return a.node != nil && b.node != nil && sp.store.IsConnected(a.node.ID, b.node.ID, core.TypeTrunk)
	}
	sp.params.relax(bodies, len(active), linked)
	for _, b := range bodies[:len(active)] {
		b.node.X, b.node.Y = b.x, b.y
		b.node.VX, b.node.VY = b.vx, b.vy
	}

	return nil
}

func nodeBody(n *core.Node) *body {
	return &body{x: n.X, y: n.Y, vx: n.VX, vy: n.VY, weight: 1, node: n}
}

// relax computes the force on bodies[:active] from every other body, then
// integrates them. Forces use positions from before any body moves.
func (p SpringParams) relax(bodies []*body, active int, linked func(a, b *body) bool) {
	forces := make([]vec, active)
	for i := range active {
		bi := bodies[i]
		var f vec
		for j, bj := range bodies {
			if i == j {
				continue
			}
			dx, dy := bj.x-bi.x, bj.y-bi.y
			d := max(math.Hypot(dx, dy), minDistance)
			if linked(bi, bj) {
				k := p.Stiffness * (d - p.EquilibriumLength) / d
				f.x += k * dx
				f.y += k * dy
			}
			c := -p.CoulombFactor * bj.weight / (d * d * d)
			f.x += c * dx
			f.y += c * dy
		}
		forces[i] = f
	}
	for i, f := range forces {
		b := bodies[i]
		b.vx = clampVelocity(p.Damping * (0.5*b.vx + 0.2*f.x))
		b.vy = clampVelocity(p.Damping * (0.5*b.vy + 0.2*f.y))
		b.x += b.vx * p.SpeedFactor
		b.y += b.vy * p.SpeedFactor
	}
}

func clampVelocity(v float64) float64 {
	return min(max(v, -maxVelocity), maxVelocity)
}
