// SPDX-License-Identifier: MIT
// Package: conveyor/builder
//
// api.go - public entry-points for the builder package.
//
// Design contract:
//   - One orchestrator: Build(bopts, cons...). Resolves cfg, runs cons in order.
//   - Constructors are implemented in impl_*.go.
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical networks.

package builder

import (
	"fmt"

	"github.com/katalvlaran/conveyor/core"
)

// Network is the output of Build: junction names in first-added order and
// the physical links between them, in emission order.
type Network struct {
	Junctions []string
	Links     []core.Link

	seen map[string]struct{}
}

// addJunction registers name once.
func (n *Network) addJunction(name string) {
	if _, ok := n.seen[name]; ok {
		return
	}
	n.seen[name] = struct{}{}
	n.Junctions = append(n.Junctions, name)
}

// addLink registers both endpoints and appends the link. Costs come from
// the configured CostFn; a negative value is a configuration fault.
func (n *Network) addLink(a, b string, cost int64) error {
	if cost < 0 {
		return fmt.Errorf("link %s–%s cost=%d: %w", a, b, cost, ErrConstructFailed)
	}
	n.addJunction(a)
	n.addJunction(b)
	n.Links = append(n.Links, core.Link{A: a, B: b, Cost: cost})

	return nil
}

// Graph builds the immutable core.Graph for this network, keeping isolated
// junctions that no link mentions.
func (n *Network) Graph() (*core.Graph, error) {
	conns := make([]core.Connection, 0, 2*len(n.Links))
	for _, l := range n.Links {
		conns = append(conns,
			core.Connection{From: l.A, To: l.B, Cost: l.Cost},
			core.Connection{From: l.B, To: l.A, Cost: l.Cost},
		)
	}

	return core.NewGraph(n.Junctions, conns)
}

// Constructor adds one topology to a Network using the resolved config.
// Constructors validate parameters first and never panic.
type Constructor func(n *Network, cfg builderConfig) error

// Build resolves the builder configuration from bopts and applies all
// constructors in order to a fresh Network. The first constructor error is
// wrapped with "Build: %w" and returned.
//
// Complexity: Σ cost of each constructor.
func Build(bopts []BuilderOption, cons ...Constructor) (*Network, error) {
	cfg := newBuilderConfig(bopts...)
	net := &Network{seen: make(map[string]struct{})}

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("Build: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(net, cfg); err != nil {
			return nil, fmt.Errorf("Build: %w", err)
		}
	}

	return net, nil
}
