package premiumbonds

import (
	"fmt"
	"math"
	"math/rand/v2"

	"golang.org/x/sync/errgroup"
)

// MonthsPerYear is the number of draws in a simulated year.
const MonthsPerYear = 12

// Simulator draws years of monthly prize draws for a bond holding.
//
// Trials are split into Shards contiguous blocks, simulated concurrently, each
// block with its own random stream derived from Seed. For a given Seed and
// Shards the sample is always the same, in the same order.
type Simulator struct {
	Seed   uint64
	Shards int // number of concurrent blocks, at least 1
}

// NewSimulator returns a Simulator for the given seed and number of shards.
func NewSimulator(seed uint64, shards int) *Simulator {
	return &Simulator{Seed: seed, Shards: shards}
}

// AnnualWinnings simulates trials independent years for a holding of bonds and
// returns the total winnings of each year.
//
// p is the monthly outcome distribution of a single bond, as returned by
// DeriveProbabilities, and values the prize value of each outcome but the
// last one, that wins nothing.
//
// All inputs are checked before any random draw, and any inconsistency is
// reported as ErrInvalidInput. p is never renormalised.
func (s *Simulator) AnnualWinnings(holding int64, p Probabilities, values []int64, trials int) ([]int64, error) {
	if holding < 0 {
		return nil, fmt.Errorf("holding cannot be negative, got %d: %w", holding, ErrInvalidInput)
	}
	if trials <= 0 {
		return nil, fmt.Errorf("trial count must be positive, got %d: %w", trials, ErrInvalidInput)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if len(values) != len(p)-1 {
		return nil, fmt.Errorf("%d prize values for %d winning outcomes: %w", len(values), len(p)-1, ErrInvalidInput)
	}
	var highest int64
	for i, v := range values {
		if v < 0 {
			return nil, fmt.Errorf("prize value #%d is negative (%d): %w", i, v, ErrInvalidInput)
		}
		highest = max(highest, v)
	}
	if holding > 0 && highest > math.MaxInt64/MonthsPerYear/holding {
		return nil, fmt.Errorf("holding of %d with a top prize of %d overflows annual winnings: %w", holding, highest, ErrInvalidInput)
	}

	sample := make([]int64, trials)
	shards := s.shards(trials)

	var g errgroup.Group
	for shard := range shards {
		lo, hi := shardBounds(trials, shards, shard)
		r := s.stream(shard)
		g.Go(func() error {
			simulateYears(r, holding, p, values, sample[lo:hi])
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return sample, nil
}

// shards returns the effective number of shards for trials.
func (s *Simulator) shards(trials int) int {
	return max(1, min(s.Shards, trials))
}

// stream returns the independent random stream of a shard.
func (s *Simulator) stream(shard int) *rand.Rand {
	return rand.New(rand.NewPCG(s.Seed, splitmix64(uint64(shard))))
}

// shardBounds returns the [lo, hi) range of trials of a shard. The first
// trials%shards shards get one extra trial.
func shardBounds(trials, shards, shard int) (lo, hi int) {
	size, extra := trials/shards, trials%shards
	lo = shard*size + min(shard, extra)
	hi = lo + size
	if shard < extra {
		hi++
	}
	return lo, hi
}

// simulateYears fills years with the annual winnings of independent years.
func simulateYears(r *rand.Rand, holding int64, p Probabilities, values []int64, years []int64) {
	counts := make([]int64, len(p))
	for y := range years {
		var annual int64
		for range MonthsPerYear {
			multinomial(r, holding, p, counts)
			for i, v := range values {
				annual += v * counts[i]
			}
		}
		years[y] = annual
	}
}

// splitmix64 scrambles x so that consecutive shard indexes give unrelated seeds.
func splitmix64(x uint64) uint64 {
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	return x ^ (x >> 31)
}
