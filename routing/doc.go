// Package routing computes domain-scoped paths and materializes them as
// route links, and realizes traffic demands over the trunk layer.
//
// DomainShortestPath is dijkstra.ShortestPath restricted to the node and
// link pools of one AS. BuildDomainRoutes walks every unordered pair of
// distinct edge nodes of an AS and creates the missing directed route links
// a→b and b→a, each carrying its own scoped trunk path. A pair without a
// path is reported in its PairResult and the remaining pairs still run.
//
// DomainSpanningTree gives the loop-free tree of an AS's member trunks,
// rooted at its lowest node id, as a spanning-tree domain would elect it.
// DomainLoops lists the loops among those trunks that the tree breaks.
package routing
