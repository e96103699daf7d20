// SPDX-License-Identifier: MIT
// Package builder generates deterministic trunk topologies inside a core.Store.
//
// Constructors (Path, Cycle, Star, Wheel, Complete, Grid) add named nodes with
// initial positions and join them with trunks carrying the configured cost
// and capacity. They are composed with BuildStore (fresh store) or Apply
// (existing store):
//
//	s, err := builder.BuildStore(nil,
//		[]builder.BuilderOption{builder.WithNamePrefix("r"), builder.WithCapacity(10)},
//		builder.Grid(3, 4),
//	)
//
// Determinism: equal options, seed and constructor order yield identical
// stores, ids included. Randomness only enters through WithCostRange, which
// draws from the WithSeed generator.
package builder
