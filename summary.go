package premiumbonds

import (
	"fmt"

	"github.com/montanaflynn/stats"
)

// Summary describes the distribution of annual winnings of a holding.
type Summary struct {
	Holding Money
	Trials  int

	Median Money // median annual winnings
	Mean   Money
	Low    Money // 10th percentile of annual winnings
	High   Money // 90th percentile of annual winnings
	Min    Money
	Max    Money

	Rate     Percent // median effective annual rate
	LowRate  Percent
	HighRate Percent
	MeanRate Percent
}

// Summarize computes the statistics of a sample of annual winnings for a
// holding of bonds, valued one currency unit each.
//
// There is an 80% chance that the annual winnings fall in [Low, High].
func Summarize(sample []int64, holding int64, currency string) (*Summary, error) {
	if len(sample) == 0 {
		return nil, fmt.Errorf("cannot summarize an empty sample: %w", ErrInvalidInput)
	}
	if holding < 0 {
		return nil, fmt.Errorf("holding cannot be negative, got %d: %w", holding, ErrInvalidInput)
	}
	data := make(stats.Float64Data, len(sample))
	for i, v := range sample {
		data[i] = float64(v)
	}

	median, err := stats.Median(data)
	if err != nil {
		return nil, fmt.Errorf("median: %w", err)
	}
	mean, err := stats.Mean(data)
	if err != nil {
		return nil, fmt.Errorf("mean: %w", err)
	}
	low, err := stats.PercentileNearestRank(data, 10)
	if err != nil {
		return nil, fmt.Errorf("10th percentile: %w", err)
	}
	high, err := stats.PercentileNearestRank(data, 90)
	if err != nil {
		return nil, fmt.Errorf("90th percentile: %w", err)
	}
	lowest, _ := stats.Min(data)
	highest, _ := stats.Max(data)

	s := &Summary{
		Holding: M(holding, currency),
		Trials:  len(sample),
		Median:  M(median, currency),
		Mean:    M(mean, currency),
		Low:     M(low, currency),
		High:    M(high, currency),
		Min:     M(lowest, currency),
		Max:     M(highest, currency),
	}
	s.Rate = s.Median.RateOf(s.Holding)
	s.LowRate = s.Low.RateOf(s.Holding)
	s.HighRate = s.High.RateOf(s.Holding)
	s.MeanRate = s.Mean.RateOf(s.Holding)
	return s, nil
}
