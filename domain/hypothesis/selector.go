package hypothesis

import (
	"nptest/domain/core"
)

// Select returns the likelihood-ratio test region of maximum power among
// those with size <= maxSize, ties in power broken by the smaller size.
// Only the prefix regions are searched: by the Neyman-Pearson Lemma no
// other region can beat the best LRT on the size/power trade-off. The
// empty region has size 0, so a region always exists for maxSize >= 0;
// a negative budget is an InvalidBudget error.
func Select(pair DistributionPair, maxSize float64) (Region, error) {
	if maxSize < 0 {
		return nil, core.NewInvalidBudgetError(maxSize)
	}

	var (
		best      Region
		bestStats RegionStats
		found     bool
	)
	for _, prefix := range PrefixRegions(pair) {
		s, err := Evaluate(prefix, pair)
		if err != nil {
			return nil, err
		}
		if s.Size > maxSize {
			continue
		}
		if !found || s.Power > bestStats.Power ||
			(s.Power == bestStats.Power && s.Size < bestStats.Size) {
			best = prefix
			bestStats = s
			found = true
		}
	}
	if !found {
		// Unreachable for maxSize >= 0: the empty prefix has size 0.
		return nil, core.NewInvalidBudgetError(maxSize)
	}
	return best, nil
}
