// SPDX-License-Identifier: MIT
// Package: netgraph/builder
//
// options.go - functional options resolving into builderConfig (last wins).

package builder

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/netgraph/core"
)

// BuilderOption customizes builderConfig.
type BuilderOption func(*builderConfig)

func (cfg *builderConfig) fail(format string, args ...any) {
	if cfg.err == nil {
		cfg.err = fmt.Errorf("%w: "+format, append([]any{ErrOptionViolation}, args...)...)
	}
}

// WithNamePrefix names nodes prefix+index.
func WithNamePrefix(prefix string) BuilderOption {
	return func(cfg *builderConfig) {
		if prefix == "" {
			cfg.fail("empty name prefix")
			return
		}
		cfg.prefix = prefix
	}
}

// WithNodeKind sets the kind of every generated node.
func WithNodeKind(kind core.NodeKind) BuilderOption {
	return func(cfg *builderConfig) {
		if !kind.Valid() {
			cfg.fail("node kind %d", int(kind))
			return
		}
		cfg.kind = kind
	}
}

// WithCost sets a constant trunk cost in both directions.
func WithCost(c int64) BuilderOption {
	return func(cfg *builderConfig) {
		if c < 0 {
			cfg.fail("negative cost %d", c)
			return
		}
		cfg.cost = c
		cfg.costLo, cfg.costHi = 0, 0
	}
}

// WithCostRange draws every trunk cost uniformly from [lo, hi]; it needs WithSeed.
func WithCostRange(lo, hi int64) BuilderOption {
	return func(cfg *builderConfig) {
		if lo < 0 || hi < lo || hi == 0 {
			cfg.fail("cost range [%d, %d]", lo, hi)
			return
		}
		cfg.costLo, cfg.costHi = lo, hi
	}
}

// WithCapacity sets the trunk capacity in both directions.
func WithCapacity(c int64) BuilderOption {
	return func(cfg *builderConfig) {
		if c < 0 {
			cfg.fail("negative capacity %d", c)
			return
		}
		cfg.capacity = c
	}
}

// WithSeed installs a deterministic random source.
func WithSeed(seed int64) BuilderOption {
	return func(cfg *builderConfig) {
		cfg.rng = rand.New(rand.NewSource(seed))
	}
}

// WithOrigin places the generated shape relative to (x, y).
func WithOrigin(x, y float64) BuilderOption {
	return func(cfg *builderConfig) {
		cfg.originX, cfg.originY = x, y
	}
}

// WithSpacing sets the distance between adjacent positions.
func WithSpacing(d float64) BuilderOption {
	return func(cfg *builderConfig) {
		if d <= 0 {
			cfg.fail("spacing %v", d)
			return
		}
		cfg.spacing = d
	}
}
