// Package layout positions nodes of a core.Store with force-directed models.
//
// Every algorithm implements Layout. One Step call performs exactly one
// explicit-Euler iteration: forces are computed from the current positions of
// all participating bodies, then velocities (VX, VY) and positions (X, Y) of
// the requested nodes are updated. There are no internal loops or timers; a
// driver decides whether to call Step again.
//
// Algorithms:
//
//   - Spring (Eades): Hooke attraction along trunks and inverse-square
//     Coulomb repulsion, with damping and a velocity clamp.
//   - FruchtermanReingold: repulsion opd²/d² between all pairs and attraction
//     d/opd along trunks; the displacement is normalized and capped.
//   - Hierarchical: BFS clusters are relaxed with Spring, collapsed into
//     weighted virtual nodes, relaxed again at the cluster level, and every
//     member moves by its virtual node's delta.
//
// Parameters are validated with go-playground/validator when a layout is
// constructed; New builds any of the three from a Config by name.
//
//	sp, _ := layout.NewSpring(store, layout.DefaultSpringParams())
//	for range 50 {
//		_ = sp.Step(ids)
//	}
package layout
