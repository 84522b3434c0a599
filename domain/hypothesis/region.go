package hypothesis

import (
	"sort"
	"strconv"
	"strings"
)

// Region is a rejection region: the set of outcomes whose observation
// rejects the null hypothesis. Canonical representation is the ascending
// list of outcome indices, so regions compare by value and serve as
// deterministic lookup keys via Key.
type Region []int

// NewRegion canonicalizes the given outcome indices into a Region,
// sorting ascending and dropping duplicates.
func NewRegion(outcomes ...int) Region {
	r := make(Region, len(outcomes))
	copy(r, outcomes)
	sort.Ints(r)
	out := r[:0]
	for i, v := range r {
		if i == 0 || v != r[i-1] {
			out = append(out, v)
		}
	}
	return out
}

// RegionFromBitmask expands an indicator bitmask over {0..n-1} into its
// canonical Region. Bit i set means outcome i is in the region.
func RegionFromBitmask(mask uint64, n int) Region {
	r := make(Region, 0, n)
	for i := 0; i < n; i++ {
		if mask&(1<<uint(i)) != 0 {
			r = append(r, i)
		}
	}
	return r
}

// Bitmask returns the indicator bitmask of the region.
func (r Region) Bitmask() uint64 {
	var mask uint64
	for _, v := range r {
		mask |= 1 << uint(v)
	}
	return mask
}

// Key returns a stable string form usable as a map key,
// e.g. "0,1,4" or "" for the empty region.
func (r Region) Key() string {
	if len(r) == 0 {
		return ""
	}
	parts := make([]string, len(r))
	for i, v := range r {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ",")
}

// Equal reports whether two regions contain the same outcomes.
func (r Region) Equal(other Region) bool {
	if len(r) != len(other) {
		return false
	}
	for i := range r {
		if r[i] != other[i] {
			return false
		}
	}
	return true
}

// Contains reports whether the outcome is in the region.
func (r Region) Contains(outcome int) bool {
	for _, v := range r {
		if v == outcome {
			return true
		}
	}
	return false
}

// String renders the region as its ascending index tuple, e.g. "(0,1)".
func (r Region) String() string {
	return "(" + r.Key() + ")"
}
