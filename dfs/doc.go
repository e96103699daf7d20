// Package dfs implements depth-first walks over the adjacency index of a
// core.Store: plain traversal, loop detection and single-point-of-failure
// analysis. Every walk treats links as undirected and, by default, follows
// the trunk layer only.
//
// What:
//
//   - DFS: explores as far as possible along each branch before
//     backtracking. Supports pre- and post-order hooks, cancellation,
//     depth limiting, neighbor filtering, node subsets and forest mode.
//   - DetectLoops: one Loop per back link of the DFS forest, i.e. the
//     independent loops a spanning-tree protocol has to break. Parallel
//     trunks form two-node loops.
//   - FindCritical: bridges and articulation points (Tarjan low-link).
//
// Why:
//
//   - Layer-2 domains must be loop free once their spanning tree converges;
//     DetectLoops lists what the tree blocks.
//   - Bridges and articulation points are the links and devices whose
//     failure partitions the topology.
//
// Key Types:
//
//   - Option / DFSOptions: Ctx, LinkTypes, OnVisit, OnExit, MaxDepth,
//     FilterNeighbor, Nodes, FullTraversal
//   - DFSResult: post-order, Depth, Parent, Via, SkippedNeighbors
//   - Loop: closed node sequence plus the links between consecutive nodes
//   - Critical: sorted bridges and articulation points
//
// Complexity:
//
//   - DFS:          Time O(V + E log d), Memory O(V)
//   - DetectLoops:  Time O(V + E log d + B·L), Memory O(V + L_max)
//   - FindCritical: Time O(V + E log d), Memory O(V)
//
// Errors:
//
//   - ErrGraphNil             store pointer is nil
//   - ErrStartVertexNotFound  start node missing or outside WithNodes
//   - ErrOptionViolation      negative MaxDepth or unknown link type
//   - context.Canceled        walk cancelled via context
//   - hook errors             propagated from OnVisit or OnExit
package dfs
