package hypothesis

import (
	"testing"

	"nptest/domain/core"
)

func TestEnumerateRegions_Complete(t *testing.T) {
	for _, n := range []int{0, 1, 3, 6} {
		regions, err := EnumerateRegions(n)
		if err != nil {
			t.Fatalf("n=%d: unexpected error: %v", n, err)
		}

		want := 1 << uint(n)
		if len(regions) != want {
			t.Errorf("n=%d: expected %d regions, got %d", n, want, len(regions))
		}

		seen := make(map[string]bool, len(regions))
		for _, r := range regions {
			if seen[r.Key()] {
				t.Errorf("n=%d: duplicate region %s", n, r)
			}
			seen[r.Key()] = true
		}

		if !seen[NewRegion().Key()] {
			t.Errorf("n=%d: empty region missing", n)
		}
		full := make([]int, n)
		for i := range full {
			full[i] = i
		}
		if !seen[NewRegion(full...).Key()] {
			t.Errorf("n=%d: full region missing", n)
		}
	}
}

func TestEnumerateRegions_StableBitmaskOrder(t *testing.T) {
	regions, err := EnumerateRegions(4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i, r := range regions {
		if r.Bitmask() != uint64(i) {
			t.Errorf("position %d: expected bitmask %d, got %d for %s", i, i, r.Bitmask(), r)
		}
	}
}

func TestEnumerateRegions_Invalid(t *testing.T) {
	tests := []struct {
		name string
		n    int
	}{
		{"negative", -1},
		{"too large", maxOutcomes + 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := EnumerateRegions(tt.n); !core.IsInvalidInputError(err) {
				t.Errorf("expected invalid input error, got %v", err)
			}
		})
	}
}

func TestRegion_Canonical(t *testing.T) {
	r := NewRegion(4, 1, 1, 0)
	if !r.Equal(Region{0, 1, 4}) {
		t.Errorf("expected canonical (0,1,4), got %s", r)
	}
	if r.Key() != "0,1,4" {
		t.Errorf("unexpected key %q", r.Key())
	}
	if !r.Contains(4) || r.Contains(2) {
		t.Errorf("membership wrong for %s", r)
	}

	round := RegionFromBitmask(r.Bitmask(), 5)
	if !round.Equal(r) {
		t.Errorf("bitmask round trip changed region: %s -> %s", r, round)
	}
}
