// Package core is the topology store: an arena of nodes and links keyed by
// integer ids, with name indexes and a per-layer adjacency index.
//
// The multigraph G = (V, E) carries three link layers:
//
//   - trunk   — physical links; the base layer for paths, flows and layout.
//   - route   — domain-scoped virtual links realized by a Path of trunks.
//   - traffic — demands between two nodes, realized once routed.
//
// Storage:
//
//	nodes[NodeID]      → *Node
//	links[LinkID]      → *Link
//	nodeNames[name]    → NodeID   (bijection with Node.Name)
//	linkNames[name]    → LinkID   (bijection with Link.Name)
//	adjacency[n][t][l] → neighbor (kept at both endpoints, or neither)
//
// Every cross-reference stores ids, never owning pointers, so Node ↔ AS ↔
// Area ↔ Link relations carry no reference cycles.
//
// Core Methods:
//
//	// Factories (get-or-create by name)
//	NodeFactory(kind, name, opts...) (*Node, Outcome, error) // O(1)
//	LinkFactory(typ, name, src, dst, opts...) (*Link, Outcome, error)
//
//	// Removal
//	RemoveNode(id) []*Link   // cascades to incident links and reports them
//	RemoveLink(id) bool      // symmetric, idempotent
//
//	// Queries
//	Nodes(kinds...) iter.Seq[*Node]
//	Links(types...) iter.Seq[*Link]
//	Adjacent(id, types...) iter.Seq2[*Node, *Link]
//	Neighbors(id, types...) iter.Seq[*Node]
//	LinksBetween(a, b, types...) iter.Seq[*Link]
//	IsConnected(a, b, typ) bool
//
//	// Copies
//	Clone() *Store      // nodes, links and memberships in fresh maps
//	CloneEmpty() *Store // nodes only
//
// Errors:
//
//	ErrInvalidKind        – unknown node kind or link type
//	ErrNodeNotFound       – endpoint or rename target missing
//	ErrLinkNotFound       – rename target missing
//	ErrSelfLoopNotAllowed – src == dst where the layer forbids it
//	ErrDuplicateName      – rename onto an existing name
//
// Lookups by id or name return (value, ok) instead of errors, since callers
// routinely probe. Removal of unknown objects is a no-op.
//
// A Store is not safe for concurrent use. It is driven by a single control
// goroutine; layout steps and solver calls never interleave with mutations.
package core
