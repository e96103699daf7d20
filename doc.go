// Package netgraph is an in-memory network topology core: a store of nodes
// and typed links, an Autonomous System and Area model layered over it,
// path and flow solvers, and force-directed and hierarchical layouts.
//
// The module is organized under these subpackages:
//
//	core/         — topology store: nodes, trunk/route/traffic links, adjacency
//	domain/       — AS and Area membership, edge nodes, YAML snapshots
//	bfs/          — unweighted shortest paths and components
//	dfs/          — traversal, L2 loop detection, bridges and articulations
//	dijkstra/     — weighted shortest paths over trunks
//	routing/      — per-AS route links, spanning trees and loops
//	prim_kruskal/ — minimum spanning trees used by routing
//	matrix/       — adjacency and all-pairs distance matrices
//	flow/         — max flow: Ford–Fulkerson, Edmonds–Karp, Dinic
//	layout/       — spring, Fruchterman–Reingold and hierarchical layouts
//	builder/      — deterministic topology generators for tests and demos
//	config/       — YAML configuration with validation
//	metrics/      — Prometheus collectors for solver and layout activity
//	network/      — composition root wiring all of the above
//
// A three-switch ring with a router hanging off one switch:
//
//	  sw1───sw2
//	    \   /
//	     sw3───r1
//
// has one L2 loop (sw1 sw2 sw3) and one bridge (sw3–r1).
//
//	go get github.com/katalvlaran/netgraph
package netgraph
