// SPDX-License-Identifier: MIT
// Package: netgraph/builder
//
// api.go - public entry points. Constructors are implemented in impl_*.go.

package builder

import (
	"fmt"

	"github.com/katalvlaran/netgraph/core"
)

// Constructor adds one shape to s and returns the generated node ids in
// index order. Constructors validate sizes first and never panic.
type Constructor func(s *core.Store, cfg builderConfig) ([]core.NodeID, error)

// BuildStore creates a store with sopts and applies every constructor.
func BuildStore(sopts []core.StoreOption, bopts []BuilderOption, cons ...Constructor) (*core.Store, error) {
	s := core.NewStore(sopts...)
	if _, err := Apply(s, bopts, cons...); err != nil {
		return nil, err
	}
	return s, nil
}

// Apply runs the constructors against an existing store in order and returns
// the ids each produced. The first error aborts; earlier shapes stay in s.
func Apply(s *core.Store, bopts []BuilderOption, cons ...Constructor) ([][]core.NodeID, error) {
	cfg := newBuilderConfig(bopts...)
	if cfg.err != nil {
		return nil, fmt.Errorf("Apply: %w", cfg.err)
	}
	if cfg.costHi > 0 && cfg.rng == nil {
		return nil, fmt.Errorf("Apply: cost range without seed: %w", ErrOptionViolation)
	}
	out := make([][]core.NodeID, 0, len(cons))
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("Apply: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		ids, err := fn(s, cfg)
		if err != nil {
			return nil, fmt.Errorf("Apply: %w", err)
		}
		out = append(out, ids)
	}
	return out, nil
}
