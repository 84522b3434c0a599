package hypothesis

import (
	"math"
	"testing"
)

// The 5-trial tulip example: count of red-flowering bulbs out of 5, under
// two candidate color distributions.
var (
	tulipNull = []float64{.001, .015, .088, .264, .396, .237}
	tulipAlt  = []float64{.168, .360, .309, .132, .028, .002}
)

func tulipPair(t *testing.T) DistributionPair {
	t.Helper()
	pair, err := NewDistributionPair(tulipNull, tulipAlt)
	if err != nil {
		t.Fatalf("tulip pair should be valid: %v", err)
	}
	return pair
}

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}
