package premiumbonds

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestMultinomial(t *testing.T) {
	testCases := []struct {
		name string
		n    int64
		p    Probabilities
		want []int64
	}{
		{"no unit", 0, Probabilities{0.3, 0.7}, []int64{0, 0}},
		{"certain first", 7, Probabilities{1, 0}, []int64{7, 0}},
		{"certain last", 7, Probabilities{0, 0, 1}, []int64{0, 0, 7}},
		{"single outcome", 3, Probabilities{1}, []int64{3}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r := rand.New(rand.NewPCG(3, 4))
			got := make([]int64, len(tc.p))
			multinomial(r, tc.n, tc.p, got)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("multinomial() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestMultinomial_Proportions(t *testing.T) {
	const (
		n     = 1000
		draws = 5000
	)
	p := Probabilities{0.1, 0.25, 0.05, 0.6}
	r := rand.New(rand.NewPCG(11, 12))

	totals := make([]float64, len(p))
	counts := make([]int64, len(p))
	for range draws {
		multinomial(r, n, p, counts)
		var s int64
		for i, c := range counts {
			s += c
			totals[i] += float64(c)
		}
		if s != n {
			t.Fatalf("counts %v sum to %d, want %d", counts, s, n)
		}
	}
	for i, pi := range p {
		mean := totals[i] / draws
		want := n * pi
		stderr := math.Sqrt(n * pi * (1 - pi) / draws)
		if math.Abs(mean-want) > 5*stderr {
			t.Errorf("mean count of outcome %d = %v, want %v ± %v", i, mean, want, 5*stderr)
		}
	}
}
