package hypothesis

import (
	"math"
	"sort"
)

// ratioEpsilon is the relative tolerance for declaring two likelihood
// ratios tied. Ratios are quotients of caller-supplied floats, so exact
// equality would split tie-groups on representation noise.
const ratioEpsilon = 1e-9

// OutcomeRatio is one outcome together with its likelihood ratio alt/null.
type OutcomeRatio struct {
	Outcome int     `json:"outcome"`
	Ratio   float64 `json:"ratio"`
}

// LikelihoodRatios computes alt(x)/null(x) for every outcome, in outcome
// order. Conventions: null 0 with positive alt mass gives +Inf (the outcome
// is infinitely diagnostic of the alternative and sorts first); 0/0 gives 0
// (the outcome is irrelevant and sorts last).
func LikelihoodRatios(pair DistributionPair) []OutcomeRatio {
	ratios := make([]OutcomeRatio, pair.N())
	for i := range pair.Null {
		ratios[i] = OutcomeRatio{Outcome: i, Ratio: likelihoodRatio(pair.Null[i], pair.Alt[i])}
	}
	return ratios
}

func likelihoodRatio(null, alt float64) float64 {
	if null == 0 {
		if alt > 0 {
			return math.Inf(1)
		}
		return 0
	}
	return alt / null
}

func ratioEqual(a, b float64) bool {
	if math.IsInf(a, 1) || math.IsInf(b, 1) {
		return math.IsInf(a, 1) && math.IsInf(b, 1)
	}
	diff := math.Abs(a - b)
	scale := math.Max(math.Abs(a), math.Abs(b))
	return diff <= ratioEpsilon*scale
}

// PrefixRegions returns the sequence of likelihood-ratio prefix regions:
// the empty region, then the union of the highest-ratio tie-group, then the
// union of the two highest groups, and so on up to the full space. Exactly
// (number of distinct ratio values)+1 regions. Outcomes with equal ratio
// move in and out atomically, which is what makes each prefix a
// likelihood-ratio test at some achievable threshold.
func PrefixRegions(pair DistributionPair) []Region {
	ratios := LikelihoodRatios(pair)
	sort.SliceStable(ratios, func(i, j int) bool {
		if ratioEqual(ratios[i].Ratio, ratios[j].Ratio) {
			return false
		}
		// +Inf sorts before every finite ratio
		if math.IsInf(ratios[i].Ratio, 1) {
			return true
		}
		if math.IsInf(ratios[j].Ratio, 1) {
			return false
		}
		return ratios[i].Ratio > ratios[j].Ratio
	})

	prefixes := []Region{NewRegion()}
	cum := make([]int, 0, len(ratios))
	for i := 0; i < len(ratios); {
		j := i
		for j < len(ratios) && ratioEqual(ratios[i].Ratio, ratios[j].Ratio) {
			cum = append(cum, ratios[j].Outcome)
			j++
		}
		prefixes = append(prefixes, NewRegion(cum...))
		i = j
	}
	return prefixes
}

// ClassifyLRT flags, for every enumerated region, whether it is a
// likelihood-ratio test: true iff the region equals one of the prefix
// regions exactly (set equality - coinciding size and power is not enough).
// Keys are Region.Key values in enumeration order.
func ClassifyLRT(pair DistributionPair) (map[string]bool, error) {
	regions, err := EnumerateRegions(pair.N())
	if err != nil {
		return nil, err
	}

	lrtKeys := make(map[string]bool)
	for _, prefix := range PrefixRegions(pair) {
		lrtKeys[prefix.Key()] = true
	}

	flags := make(map[string]bool, len(regions))
	for _, r := range regions {
		flags[r.Key()] = lrtKeys[r.Key()]
	}
	return flags, nil
}
