package premiumbonds

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidInput is returned, wrapped, by every operation whose preconditions
// are not met. It is never a transient condition.
var ErrInvalidInput = errors.New("invalid input")

// probabilityTolerance is the accepted error on the sum of a probability vector.
const probabilityTolerance = 1e-9

// Tier is a prize category: the prize Value and the expected Count of bonds
// winning it, per unit of the pool ratio, in one monthly draw.
type Tier struct {
	Value int64 `json:"value" yaml:"value"`
	Count int64 `json:"count" yaml:"count"`
}

// Tiers is an ordered list of prize tiers.
type Tiers []Tier

// Values returns the prize values, in tier order.
func (t Tiers) Values() []int64 {
	values := make([]int64, len(t))
	for i, tier := range t {
		values[i] = tier.Value
	}
	return values
}

// Counts returns the expected prize counts, in tier order.
func (t Tiers) Counts() []int64 {
	counts := make([]int64, len(t))
	for i, tier := range t {
		counts[i] = tier.Count
	}
	return counts
}

// Probabilities derives the monthly draw probabilities of the tiers. See DeriveProbabilities.
func (t Tiers) Probabilities(ratio int64) (Probabilities, error) {
	return DeriveProbabilities(t.Values(), t.Counts(), ratio)
}

// Probabilities is the outcome distribution of a single bond in one monthly draw.
// Entry i is the probability to win tier i, the last entry is the probability
// to win nothing.
type Probabilities []float64

// NoWin returns the probability of winning nothing.
func (p Probabilities) NoWin() float64 {
	if len(p) == 0 {
		return 0
	}
	return p[len(p)-1]
}

// Validate checks that p is a proper distribution: at least one outcome, every
// entry finite and non-negative, summing to 1.
func (p Probabilities) Validate() error {
	if len(p) == 0 {
		return fmt.Errorf("empty probability vector: %w", ErrInvalidInput)
	}
	var sum float64
	for i, v := range p {
		if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
			return fmt.Errorf("probability #%d is %v: %w", i, v, ErrInvalidInput)
		}
		sum += v
	}
	if math.Abs(sum-1) > probabilityTolerance {
		return fmt.Errorf("probabilities sum to %v instead of 1: %w", sum, ErrInvalidInput)
	}
	return nil
}

// DeriveProbabilities converts published prize tiers into the probability
// vector of one monthly draw.
//
// counts[i] is the expected number of tier i prizes, and ratio the number of
// bonds in the pool per prize. The pool therefore holds sum(counts)*ratio
// outcomes, of which sum(counts) are prizes and the rest are "no win".
// The returned vector has len(counts)+1 entries, the last one being "no win".
//
// values is only used to check that the table is consistent. Neither values
// nor counts are modified.
func DeriveProbabilities(values, counts []int64, ratio int64) (Probabilities, error) {
	if len(values) != len(counts) {
		return nil, fmt.Errorf("%d prize values for %d prize counts: %w", len(values), len(counts), ErrInvalidInput)
	}
	if ratio <= 0 {
		return nil, fmt.Errorf("pool ratio must be positive, got %d: %w", ratio, ErrInvalidInput)
	}

	var prizes int64
	for i := range counts {
		if values[i] < 0 {
			return nil, fmt.Errorf("prize value #%d is negative (%d): %w", i, values[i], ErrInvalidInput)
		}
		if counts[i] < 0 {
			return nil, fmt.Errorf("prize count #%d is negative (%d): %w", i, counts[i], ErrInvalidInput)
		}
		prizes += counts[i]
	}

	total := prizes * ratio
	if prizes != 0 && total/prizes != ratio {
		return nil, fmt.Errorf("pool of %d prizes times %d overflows: %w", prizes, ratio, ErrInvalidInput)
	}
	noWin := total - prizes
	if noWin < 0 {
		return nil, fmt.Errorf("pool ratio %d leaves a negative number of losing bonds: %w", ratio, ErrInvalidInput)
	}
	if total == 0 {
		return nil, fmt.Errorf("tier table has no prize at all: %w", ErrInvalidInput)
	}

	extended := make([]int64, 0, len(counts)+1)
	extended = append(extended, counts...)
	extended = append(extended, noWin)

	p := make(Probabilities, len(extended))
	for i, n := range extended {
		p[i] = float64(n) / float64(total)
	}
	return p, nil
}
