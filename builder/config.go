// SPDX-License-Identifier: MIT
// Package: netgraph/builder
//
// config.go - resolved builder configuration and deterministic defaults.
//
// Defaults:
//   • names    = "n0","n1",... (prefix "n")
//   • kind     = core.KindRouter
//   • cost     = 1 both directions
//   • capacity = 0 both directions
//   • origin   = (0,0), spacing = 100

package builder

import (
	"math/rand"
	"strconv"

	"github.com/katalvlaran/netgraph/core"
)

// builderConfig aggregates every knob used by constructors. It is passed by value.
type builderConfig struct {
	prefix string
	kind   core.NodeKind

	cost     int64
	capacity int64
	// costLo..costHi, when costHi > 0, replaces cost with a draw from rng.
	costLo, costHi int64
	rng            *rand.Rand

	originX, originY float64
	spacing          float64

	err error
}

const (
	defaultPrefix   = "n"
	defaultCost     = int64(1)
	defaultSpacing  = 100.0
	defaultCapacity = int64(0)
)

// newBuilderConfig applies opts in order over the defaults; the first invalid
// option is kept in cfg.err.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		prefix:   defaultPrefix,
		kind:     core.KindRouter,
		cost:     defaultCost,
		capacity: defaultCapacity,
		spacing:  defaultSpacing,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// name renders the i-th node name of the current constructor.
func (cfg builderConfig) name(i int) string {
	return cfg.prefix + strconv.Itoa(i)
}

// linkCost returns the cost of the next trunk.
func (cfg builderConfig) linkCost() int64 {
	if cfg.costHi > 0 && cfg.rng != nil {
		return cfg.costLo + cfg.rng.Int63n(cfg.costHi-cfg.costLo+1)
	}
	return cfg.cost
}
