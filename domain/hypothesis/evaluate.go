package hypothesis

import (
	"fmt"

	"nptest/domain/core"
)

// RegionStats holds the two operating characteristics of a rejection region.
//
// INVARIANTS:
// - Size is the null probability of the region (false-positive rate), in [0,1]
// - Power is the alternative probability of the region (true-positive rate), in [0,1]
type RegionStats struct {
	Size  float64 `json:"size"`
	Power float64 `json:"power"`
}

// EvaluatedRegion pairs a region with its computed stats.
type EvaluatedRegion struct {
	Region Region      `json:"region"`
	Stats  RegionStats `json:"stats"`
}

// Evaluate computes size and power of a region under the pair. Pure function:
// size sums null mass, power sums alternative mass over the region's outcomes.
// Values carry ordinary floating-point accumulation noise; rounding for
// display is a rendering concern.
func Evaluate(region Region, pair DistributionPair) (RegionStats, error) {
	var s RegionStats
	for _, outcome := range region {
		if outcome < 0 || outcome >= pair.N() {
			return RegionStats{}, fmt.Errorf("%w: outcome %d outside domain of size %d",
				core.ErrDomainMismatch, outcome, pair.N())
		}
		s.Size += pair.Null[outcome]
		s.Power += pair.Alt[outcome]
	}
	return s, nil
}
