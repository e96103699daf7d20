// Package network is the composition root of netgraph. A Network owns one
// topology store and the domain model layered over it, and exposes the
// solver and layout operations a presentation layer calls, configured from
// config.Config, logged through slog and counted in a metrics.Registry.
//
// Removal goes through the Network so the domain model never keeps ids the
// store has dropped:
//
//	net, _ := network.New(network.WithConfig(cfg))
//	removed, _ := net.RemoveNode(id) // store cascade, then domain detach
//
// A Network is not safe for concurrent use.
package network
