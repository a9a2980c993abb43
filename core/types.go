// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Junction/connection value types, sentinel errors, Graph layout and options.
// Policy:
//   - Graph fields are written only inside the constructors in api.go.
//   - Every exported query in methods.go is read-only and lock-free.

package core

import (
	"errors"
	"fmt"
	"math"
)

// MaxCost is the largest accepted connection cost. Any simple route then
// sums to far below math.MaxInt64, which the engines reserve as "unreached".
const MaxCost int64 = math.MaxInt32

// Sentinel errors for graph construction and queries.
var (
	// ErrEmptyJunction indicates that a junction name is the empty string.
	ErrEmptyJunction = errors.New("core: junction name is empty")

	// ErrDuplicateJunction indicates that a junction name was listed twice
	// while the graph was built with the reject policy.
	ErrDuplicateJunction = errors.New("core: duplicate junction")

	// ErrJunctionNotFound indicates a reference to a junction that is not in the graph.
	ErrJunctionNotFound = errors.New("core: junction not found")

	// ErrNegativeCost indicates a connection with a cost below zero.
	ErrNegativeCost = errors.New("core: negative connection cost")

	// ErrCostTooLarge indicates a connection cost above MaxCost.
	ErrCostTooLarge = errors.New("core: connection cost too large")

	// ErrParallelConnection indicates a second From→To connection while the
	// graph was built with WithRejectParallel.
	ErrParallelConnection = errors.New("core: parallel connection")

	// ErrInvariantViolation marks internal consistency faults. It is never
	// returned; it is carried by the *InvariantViolation value passed to panic.
	ErrInvariantViolation = errors.New("core: invariant violation")
)

// InvariantViolation is the panic value raised when a lookup that correct
// code can never miss does miss, e.g. MustCost on an unlinked pair.
type InvariantViolation struct {
	Op     string
	Detail string
}

// Error implements error.
func (v *InvariantViolation) Error() string {
	return fmt.Sprintf("%v: %s: %s", ErrInvariantViolation, v.Op, v.Detail)
}

// Unwrap lets errors.Is(v, ErrInvariantViolation) succeed on recovered values.
func (v *InvariantViolation) Unwrap() error { return ErrInvariantViolation }

// Link is one physical, bidirectional belt between two junctions.
type Link struct {
	A    string
	B    string
	Cost int64
}

// Connection is a single directed entry From→To with a non-negative Cost.
type Connection struct {
	From string
	To   string
	Cost int64
}

// Arc is an adjacency entry: the interned index of the destination and the
// cost of reaching it.
type Arc struct {
	To   int
	Cost int64
}

// GraphStats is a snapshot of catalog sizes.
type GraphStats struct {
	Junctions   int // |V|
	Connections int // |E|, directed entries
	Isolated    int // junctions with no outgoing connection
}

// GraphOption configures construction-time policy.
type GraphOption func(*graphConfig)

type graphConfig struct {
	dedup          bool
	rejectParallel bool
}

// WithDedupJunctions collapses repeated names in the junction list instead
// of rejecting them with ErrDuplicateJunction.
func WithDedupJunctions() GraphOption {
	return func(c *graphConfig) { c.dedup = true }
}

// Graph is the immutable junction network.
//
// names[i] is the name of junction i, ascending; index is its inverse.
// connections keeps the directed entries in the order they were supplied.
// adjacency[i] lists the outgoing arcs of junction i in the same order.
type Graph struct {
	names       []string
	index       map[string]int
	connections []Connection
	adjacency   [][]Arc
}

// WithRejectParallel fails construction with ErrParallelConnection when the
// same From→To pair is supplied twice. Self-loops are exempt. By default
// parallel connections are kept and Cost reports the cheapest.
func WithRejectParallel() GraphOption {
	return func(c *graphConfig) { c.rejectParallel = true }
}
