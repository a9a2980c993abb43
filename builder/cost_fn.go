// Package builder provides belt cost distributions for generated topologies.
package builder

import (
	"fmt"
	"math/rand"
)

// DefaultBeltCost is the cost of every belt when no CostFn is configured.
const DefaultBeltCost int64 = 1

// CostFn produces a belt cost given the (possibly nil) RNG.
// It must be deterministic for a given RNG state.
type CostFn func(rng *rand.Rand) int64

// DefaultCostFn always returns DefaultBeltCost.
func DefaultCostFn(_ *rand.Rand) int64 {
	return DefaultBeltCost
}

// ConstantCostFn returns a CostFn that always yields value. Panics if value < 0.
func ConstantCostFn(value int64) CostFn {
	if value < 0 {
		panic(fmt.Sprintf("ConstantCostFn: value must be ≥ 0, got %d", value))
	}

	return func(_ *rand.Rand) int64 { return value }
}

// UniformCostFn returns a CostFn sampling uniformly in [min, max] inclusive.
// With a nil RNG it yields min. Panics if min < 0 or max < min.
func UniformCostFn(min, max int64) CostFn {
	if min < 0 || max < min {
		panic(fmt.Sprintf("UniformCostFn: require 0 ≤ min ≤ max, got min=%d, max=%d", min, max))
	}

	return func(rng *rand.Rand) int64 {
		if rng == nil || max == min {
			return min
		}

		return min + rng.Int63n(max-min+1)
	}
}
