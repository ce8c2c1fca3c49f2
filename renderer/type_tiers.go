package renderer

import (
	"fmt"

	"github.com/etnz/premiumbonds"
)

// Tiers is a struct to represent a prize table and its derived probabilities for rendering.
type Tiers struct {
	Name      string
	Ratio     int64
	Rows      []TierRow
	NoWin     string
	PrizeRate premiumbonds.Percent // expected annual winnings per currency unit held
}

// TierRow is one prize tier.
type TierRow struct {
	Prize       premiumbonds.Money
	Count       int64
	Probability string
	Odds        string
}

// NewTiers assembles the tier report of a table with its probabilities p.
func NewTiers(t *premiumbonds.Table, p premiumbonds.Probabilities, currency string) *Tiers {
	res := &Tiers{
		Name:  t.Name,
		Ratio: t.Ratio,
		NoWin: fmt.Sprintf("%.6f", p.NoWin()),
	}
	var expected float64
	for i, tier := range t.Tiers {
		res.Rows = append(res.Rows, TierRow{
			Prize:       premiumbonds.M(tier.Value, currency),
			Count:       tier.Count,
			Probability: fmt.Sprintf("%.3g", p[i]),
			Odds:        odds(p[i]),
		})
		expected += float64(tier.Value) * p[i]
	}
	res.PrizeRate = premiumbonds.Percent(expected * premiumbonds.MonthsPerYear * 100)
	return res
}

// odds formats a probability as "1 in N".
func odds(p float64) string {
	if p <= 0 {
		return "never"
	}
	return fmt.Sprintf("1 in %.0f", 1/p)
}
