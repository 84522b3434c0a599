package hypothesis

import (
	"fmt"

	"nptest/domain/core"

	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat/distuv"
)

// massTolerance is how far a probability mass function may drift from
// summing to exactly 1 before it is rejected. Textbook inputs are usually
// rounded to three decimals, so the tolerance has to absorb rounding on
// the order of one part in a thousand per outcome.
const massTolerance = 0.01

// DistributionPair holds the two competing hypotheses over a shared finite
// outcome space: the null distribution (used to compute size) and the
// alternative distribution (used to compute power).
//
// INVARIANTS:
// - Null and Alt have equal length (Alt is zero-padded on construction)
// - every probability is >= 0
// - each pmf sums to 1 within massTolerance
type DistributionPair struct {
	Null []float64 `json:"null"`
	Alt  []float64 `json:"alt"`
}

// NewDistributionPair validates the two pmfs and returns an immutable pair.
// A shorter alternative list is padded with zero probability up to the null
// domain length; a longer one is a domain mismatch.
func NewDistributionPair(null, alt []float64) (DistributionPair, error) {
	if len(null) == 0 {
		return DistributionPair{}, core.NewInvalidInputError("null", "empty outcome space")
	}
	if len(alt) > len(null) {
		return DistributionPair{}, fmt.Errorf("%w: alt has %d outcomes, null has %d",
			core.ErrDomainMismatch, len(alt), len(null))
	}

	padded := make([]float64, len(null))
	copy(padded, alt)

	if err := checkMass("null", null); err != nil {
		return DistributionPair{}, err
	}
	if err := checkMass("alt", padded); err != nil {
		return DistributionPair{}, err
	}

	p := DistributionPair{
		Null: make([]float64, len(null)),
		Alt:  padded,
	}
	copy(p.Null, null)
	return p, nil
}

// NewBinomialPair builds a pair of Binomial(trials, p) pmfs over the outcome
// space {0..trials}, the classic teaching setup (e.g. count of red-flowering
// bulbs out of 5 plantings under two candidate success rates).
func NewBinomialPair(trials int, p0, p1 float64) (DistributionPair, error) {
	if trials < 0 {
		return DistributionPair{}, core.NewInvalidInputError("trials", "must be non-negative")
	}
	if p0 < 0 || p0 > 1 || p1 < 0 || p1 > 1 {
		return DistributionPair{}, core.NewInvalidInputError("p", "success probability outside [0,1]")
	}

	nullDist := distuv.Binomial{N: float64(trials), P: p0}
	altDist := distuv.Binomial{N: float64(trials), P: p1}

	null := make([]float64, trials+1)
	alt := make([]float64, trials+1)
	for k := 0; k <= trials; k++ {
		null[k] = nullDist.Prob(float64(k))
		alt[k] = altDist.Prob(float64(k))
	}
	return NewDistributionPair(null, alt)
}

// N returns the outcome space size.
func (p DistributionPair) N() int {
	return len(p.Null)
}

func checkMass(field string, pmf []float64) error {
	for i, v := range pmf {
		if v < 0 {
			return fmt.Errorf("%w: %s[%d] = %v", core.ErrNegativeMass, field, i, v)
		}
	}
	total, err := stats.Sum(pmf)
	if err != nil {
		return core.NewInvalidInputError(field, err.Error())
	}
	if total < 1-massTolerance || total > 1+massTolerance {
		return fmt.Errorf("%w: %s sums to %v", core.ErrMassNotUnit, field, total)
	}
	return nil
}
