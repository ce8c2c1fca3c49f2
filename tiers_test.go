package premiumbonds

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func sum(p Probabilities) float64 {
	var s float64
	for _, v := range p {
		s += v
	}
	return s
}

func TestDeriveProbabilities(t *testing.T) {
	testCases := []struct {
		name   string
		values []int64
		counts []int64
		ratio  int64
		want   Probabilities
	}{
		{
			name:   "single tier",
			values: []int64{100},
			counts: []int64{1},
			ratio:  4,
			want:   Probabilities{0.25, 0.75},
		},
		{
			name:   "two tiers",
			values: []int64{50, 25},
			counts: []int64{1, 3},
			ratio:  2,
			want:   Probabilities{0.125, 0.375, 0.5},
		},
		{
			name:   "everybody wins",
			values: []int64{100},
			counts: []int64{5},
			ratio:  1,
			want:   Probabilities{1, 0},
		},
		{
			name:   "tier without prizes",
			values: []int64{1000, 10},
			counts: []int64{0, 10},
			ratio:  10,
			want:   Probabilities{0, 0.1, 0.9},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := DeriveProbabilities(tc.values, tc.counts, tc.ratio)
			if err != nil {
				t.Fatalf("DeriveProbabilities() unexpected error: %v", err)
			}
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("DeriveProbabilities() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDeriveProbabilities_DefaultTable(t *testing.T) {
	table := DefaultTable()
	p, err := table.Probabilities()
	if err != nil {
		t.Fatalf("Probabilities() unexpected error: %v", err)
	}
	if got, want := len(p), len(table.Tiers)+1; got != want {
		t.Errorf("len(p) = %d, want %d", got, want)
	}
	if s := sum(p); math.Abs(s-1) > 1e-9 {
		t.Errorf("sum(p) = %v, want 1", s)
	}
	for i, v := range p {
		if v < 0 {
			t.Errorf("p[%d] = %v, want >= 0", i, v)
		}
	}
	// one bond in 21,000 wins something each month.
	if got, want := p.NoWin(), 1-1.0/21_000; math.Abs(got-want) > 1e-12 {
		t.Errorf("p.NoWin() = %v, want %v", got, want)
	}
}

func TestDeriveProbabilities_InvalidInput(t *testing.T) {
	testCases := []struct {
		name   string
		values []int64
		counts []int64
		ratio  int64
	}{
		{"more values than counts", []int64{100, 50, 25}, []int64{1, 2}, 10},
		{"more counts than values", []int64{100}, []int64{1, 2}, 10},
		{"zero ratio", []int64{100}, []int64{1}, 0},
		{"negative ratio", []int64{100}, []int64{1}, -3},
		{"negative count", []int64{100, 50}, []int64{1, -2}, 10},
		{"negative value", []int64{-100}, []int64{1}, 10},
		{"no prize", []int64{100, 50}, []int64{0, 0}, 10},
		{"overflow", []int64{100}, []int64{math.MaxInt64 / 2}, 4},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			values := append([]int64(nil), tc.values...)
			counts := append([]int64(nil), tc.counts...)

			_, err := DeriveProbabilities(values, counts, tc.ratio)
			if !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("DeriveProbabilities() error = %v, want ErrInvalidInput", err)
			}
			if diff := cmp.Diff(tc.values, values); diff != "" {
				t.Errorf("values modified (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(tc.counts, counts); diff != "" {
				t.Errorf("counts modified (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDeriveProbabilities_DoesNotMutate(t *testing.T) {
	// spare capacity would let an in place append write into the caller's array.
	backing := []int64{2, 3, -1}
	counts := backing[:2]
	values := []int64{10, 5}

	for range 2 {
		p, err := DeriveProbabilities(values, counts, 5)
		if err != nil {
			t.Fatalf("DeriveProbabilities() unexpected error: %v", err)
		}
		if len(p) != 3 {
			t.Fatalf("len(p) = %d, want 3", len(p))
		}
	}
	if diff := cmp.Diff([]int64{2, 3, -1}, backing); diff != "" {
		t.Errorf("caller array modified (-want +got):\n%s", diff)
	}
}

func TestProbabilities_Validate(t *testing.T) {
	testCases := []struct {
		name    string
		p       Probabilities
		wantErr bool
	}{
		{"valid", Probabilities{0.2, 0.8}, false},
		{"certain", Probabilities{1, 0}, false},
		{"within tolerance", Probabilities{0.5, 0.5 + 1e-12}, false},
		{"empty", nil, true},
		{"not normalised", Probabilities{0.2, 0.7}, true},
		{"negative", Probabilities{-0.2, 1.2}, true},
		{"nan", Probabilities{math.NaN(), 1}, true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.p.Validate()
			if tc.wantErr && !errors.Is(err, ErrInvalidInput) {
				t.Errorf("Validate() error = %v, want ErrInvalidInput", err)
			}
			if !tc.wantErr && err != nil {
				t.Errorf("Validate() unexpected error: %v", err)
			}
		})
	}
}

func TestTable_Validate(t *testing.T) {
	if err := DefaultTable().Validate(); err != nil {
		t.Errorf("DefaultTable().Validate() unexpected error: %v", err)
	}
	empty := &Table{Name: "empty", Ratio: 10}
	if err := empty.Validate(); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("empty.Validate() error = %v, want ErrInvalidInput", err)
	}
}
