// SPDX-License-Identifier: MIT
// Package: netgraph/builder
//
// impl_grid.go - Grid(rows, cols): row-major 4-neighborhood lattice.
// Node index = r*cols + c at (c*spacing, r*spacing). Trunks go right, then down.

package builder

import "github.com/katalvlaran/netgraph/core"

const (
	methodGrid = "Grid"
	minGridDim = 1
)

// Grid returns a Constructor for a rows×cols lattice.
func Grid(rows, cols int) Constructor {
	return func(s *core.Store, cfg builderConfig) ([]core.NodeID, error) {
		if rows < minGridDim {
			return nil, tooFew(methodGrid, "rows", rows, minGridDim)
		}
		if cols < minGridDim {
			return nil, tooFew(methodGrid, "cols", cols, minGridDim)
		}
		ids, err := addNodes(s, cfg, methodGrid, rows*cols, func(i int) (float64, float64) {
			return float64(i%cols) * cfg.spacing, float64(i/cols) * cfg.spacing
		})
		if err != nil {
			return nil, err
		}
		for r := range rows {
			for c := range cols {
				i := r*cols + c
				if c+1 < cols {
					if err = addTrunk(s, cfg, methodGrid, ids[i], ids[i+1]); err != nil {
						return nil, err
					}
				}
				if r+1 < rows {
					if err = addTrunk(s, cfg, methodGrid, ids[i], ids[i+cols]); err != nil {
						return nil, err
					}
				}
			}
		}
		return ids, nil
	}
}
