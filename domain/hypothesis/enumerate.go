package hypothesis

import (
	"fmt"

	"nptest/domain/core"
)

// maxOutcomes caps enumeration: 2^n regions are materialized, so the
// outcome space has to stay at teaching scale.
const maxOutcomes = 24

// EnumerateRegions produces all 2^n subsets of the outcome space {0..n-1}
// as canonical Regions, ordered by ascending indicator bitmask. The order
// is stable across runs; the empty region is first and the full space last.
func EnumerateRegions(n int) ([]Region, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: n = %d", core.ErrBadOutcomeCount, n)
	}
	if n > maxOutcomes {
		return nil, fmt.Errorf("%w: n = %d exceeds limit %d", core.ErrBadOutcomeCount, n, maxOutcomes)
	}

	total := uint64(1) << uint(n)
	regions := make([]Region, 0, total)
	for mask := uint64(0); mask < total; mask++ {
		regions = append(regions, RegionFromBitmask(mask, n))
	}
	return regions, nil
}
