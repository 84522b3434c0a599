package hypothesis

// dominates reports whether b weakly dominates a: b is at least as good on
// both operating characteristics (size no larger, power no smaller) and
// strictly better on at least one.
func dominates(b, a RegionStats) bool {
	if b.Size > a.Size || b.Power < a.Power {
		return false
	}
	return b.Size < a.Size || b.Power > a.Power
}

// AnalyzeDominance computes, for every evaluated region, whether some other
// region weakly dominates it. Pairwise O(R^2) over the completed stats
// table, which is exact and fine at teaching scale. Regions sharing
// identical (size, power) never dominate one another: no inequality is
// strict between them.
func AnalyzeDominance(evaluated []EvaluatedRegion) map[string]bool {
	flags := make(map[string]bool, len(evaluated))
	for i := range evaluated {
		dominated := false
		for j := range evaluated {
			if i == j {
				continue
			}
			if dominates(evaluated[j].Stats, evaluated[i].Stats) {
				dominated = true
				break
			}
		}
		flags[evaluated[i].Region.Key()] = dominated
	}
	return flags
}
