// SPDX-License-Identifier: MIT
// Package: conveyor/builder
//
// impl_topologies.go - Path, Cycle, Star, Grid and Complete constructors.
//
// Contract (all constructors):
//   - Validate sizes first (ErrTooFewVertices), no side effects on failure.
//   - Add junctions via cfg.idFn in ascending index order.
//   - Emit links in a stable, documented order; costs from cfg.costFn(cfg.rng).

package builder

import (
	"fmt"
	"strconv"
)

// File-local constants for method tagging and parameter minima.
const (
	methodPath     = "Path"
	methodCycle    = "Cycle"
	methodStar     = "Star"
	methodGrid     = "Grid"
	methodComplete = "Complete"

	minPathNodes     = 2
	minCycleNodes    = 3
	minStarNodes     = 2
	minGridDim       = 1
	minCompleteNodes = 1

	// StarCenter is the fixed name of the hub junction built by Star.
	StarCenter = "Center"
)

// Path builds a chain 0–1–…–(n-1) with n ≥ 2.
// Links are emitted as (i-1, i) for i = 1..n-1.
func Path(n int) Constructor {
	return func(net *Network, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		for i := 0; i < n; i++ {
			net.addJunction(cfg.idFn(i))
		}
		for i := 1; i < n; i++ {
			if err := net.addLink(cfg.idFn(i-1), cfg.idFn(i), cfg.costFn(cfg.rng)); err != nil {
				return fmt.Errorf("%s: %w", methodPath, err)
			}
		}

		return nil
	}
}

// Cycle builds a ring of n ≥ 3 junctions: the Path links plus (n-1, 0).
func Cycle(n int) Constructor {
	return func(net *Network, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		if err := Path(n)(net, cfg); err != nil {
			return fmt.Errorf("%s: %w", methodCycle, err)
		}
		if err := net.addLink(cfg.idFn(n-1), cfg.idFn(0), cfg.costFn(cfg.rng)); err != nil {
			return fmt.Errorf("%s: %w", methodCycle, err)
		}

		return nil
	}
}

// Star builds a hub named StarCenter with n-1 leaves (n ≥ 2), the shape of a
// sorting hall feeding several gates. Links are (Center, leaf_i) for i = 0..n-2.
func Star(n int) Constructor {
	return func(net *Network, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		net.addJunction(StarCenter)
		for i := 0; i < n-1; i++ {
			net.addJunction(cfg.idFn(i))
		}
		for i := 0; i < n-1; i++ {
			if err := net.addLink(StarCenter, cfg.idFn(i), cfg.costFn(cfg.rng)); err != nil {
				return fmt.Errorf("%s: %w", methodStar, err)
			}
		}

		return nil
	}
}

// Grid builds a rows×cols 4-neighborhood lattice with names "r,c".
// Links are emitted row-major: right neighbor first, then down neighbor.
// cfg.idFn is not used; grid names encode coordinates.
func Grid(rows, cols int) Constructor {
	return func(net *Network, cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d cols=%d < min=%d: %w", methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}
		name := func(r, c int) string { return strconv.Itoa(r) + "," + strconv.Itoa(c) }
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				net.addJunction(name(r, c))
			}
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if c+1 < cols {
					if err := net.addLink(name(r, c), name(r, c+1), cfg.costFn(cfg.rng)); err != nil {
						return fmt.Errorf("%s: %w", methodGrid, err)
					}
				}
				if r+1 < rows {
					if err := net.addLink(name(r, c), name(r+1, c), cfg.costFn(cfg.rng)); err != nil {
						return fmt.Errorf("%s: %w", methodGrid, err)
					}
				}
			}
		}

		return nil
	}
}

// Complete links every unordered pair {i, j}, i < j, of n ≥ 1 junctions.
func Complete(n int) Constructor {
	return func(net *Network, cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}
		for i := 0; i < n; i++ {
			net.addJunction(cfg.idFn(i))
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := net.addLink(cfg.idFn(i), cfg.idFn(j), cfg.costFn(cfg.rng)); err != nil {
					return fmt.Errorf("%s: %w", methodComplete, err)
				}
			}
		}

		return nil
	}
}
