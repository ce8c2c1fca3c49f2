package premiumbonds

import "fmt"

// Table is a published prize table: the prize tiers of one monthly draw and
// the number of bonds in the pool per prize.
type Table struct {
	Name  string `json:"name" yaml:"name"`
	Ratio int64  `json:"ratio" yaml:"ratio"`
	Tiers Tiers  `json:"tiers" yaml:"tiers"`
}

// Probabilities derives the monthly draw probabilities of the table.
func (t *Table) Probabilities() (Probabilities, error) {
	return t.Tiers.Probabilities(t.Ratio)
}

// Validate checks that the table can be used to derive probabilities.
func (t *Table) Validate() error {
	if len(t.Tiers) == 0 {
		return fmt.Errorf("table %q has no tier: %w", t.Name, ErrInvalidInput)
	}
	_, err := t.Probabilities()
	return err
}

// DefaultTable returns the prize table announced by NS&I in August 2023,
// effective for the draws from September 2023, with odds of 21,000 to 1 per bond.
func DefaultTable() *Table {
	return &Table{
		Name:  "NS&I September 2023",
		Ratio: 21_000,
		Tiers: Tiers{
			{Value: 1_000_000, Count: 2},
			{Value: 100_000, Count: 90},
			{Value: 50_000, Count: 181},
			{Value: 25_000, Count: 360},
			{Value: 10_000, Count: 902},
			{Value: 5_000, Count: 1_803},
			{Value: 1_000, Count: 18_832},
			{Value: 500, Count: 56_496},
			{Value: 100, Count: 2_339_817},
			{Value: 50, Count: 2_339_817},
			{Value: 25, Count: 1_027_604},
		},
	}
}
