package hypothesis

import (
	"testing"
)

func evaluateAll(t *testing.T, pair DistributionPair) []EvaluatedRegion {
	t.Helper()
	regions, err := EnumerateRegions(pair.N())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	evaluated := make([]EvaluatedRegion, len(regions))
	for i, r := range regions {
		s, err := Evaluate(r, pair)
		if err != nil {
			t.Fatalf("evaluate %s: %v", r, err)
		}
		evaluated[i] = EvaluatedRegion{Region: r, Stats: s}
	}
	return evaluated
}

func TestAnalyzeDominance_Tulip(t *testing.T) {
	pair := tulipPair(t)
	flags := AnalyzeDominance(evaluateAll(t, pair))

	tests := []struct {
		region    Region
		dominated bool
	}{
		{NewRegion(), false},
		{NewRegion(0, 1, 2, 3, 4, 5), false},
		{NewRegion(0), false},
		{NewRegion(0, 1), false},
		{NewRegion(2), true}, // (0,1) has smaller size and more power
		{NewRegion(5), true}, // large size, nearly no power
	}
	for _, tt := range tests {
		if flags[tt.region.Key()] != tt.dominated {
			t.Errorf("region %s: dominated %t, want %t", tt.region, flags[tt.region.Key()], tt.dominated)
		}
	}
}

func TestAnalyzeDominance_TiedStatsDoNotDominateEachOther(t *testing.T) {
	// (0) and (1) have identical (size, power); neither inequality is
	// strict between them, and nothing else beats them.
	pair, err := NewDistributionPair([]float64{.5, .5}, []float64{.5, .5})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	flags := AnalyzeDominance(evaluateAll(t, pair))
	for key, dominated := range flags {
		if dominated {
			t.Errorf("region (%s) should not be dominated", key)
		}
	}
}

func TestAnalyzeDominance_Irreflexive(t *testing.T) {
	// A lone region can never be dominated: there is no other region.
	flags := AnalyzeDominance([]EvaluatedRegion{
		{Region: NewRegion(0), Stats: RegionStats{Size: .5, Power: .5}},
	})
	if flags[NewRegion(0).Key()] {
		t.Error("single region dominated itself")
	}
}

func TestNeymanPearson_LRTsAreUndominated(t *testing.T) {
	pairs := map[string]DistributionPair{
		"tulip": tulipPair(t),
	}
	if binom, err := NewBinomialPair(6, .3, .7); err == nil {
		pairs["binomial"] = binom
	} else {
		t.Fatalf("unexpected error: %v", err)
	}
	if tied, err := NewDistributionPair([]float64{.25, .25, .25, .25}, []float64{.4, .4, .1, .1}); err == nil {
		pairs["tied"] = tied
	} else {
		t.Fatalf("unexpected error: %v", err)
	}

	for name, pair := range pairs {
		domFlags := AnalyzeDominance(evaluateAll(t, pair))
		lrtFlags, err := ClassifyLRT(pair)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", name, err)
		}
		for key, isLRT := range lrtFlags {
			if isLRT && domFlags[key] {
				t.Errorf("%s: LRT region (%s) is dominated, contradicting the lemma", name, key)
			}
		}
	}
}
