package premiumbonds

import "math/rand/v2"

// multinomial partitions n independent units among the outcomes of p and
// stores the count of each outcome in counts, which must have len(p) entries.
//
// Outcomes are drawn one at a time as binomials conditioned on the units and
// probability mass left, the last outcome takes whatever remains.
func multinomial(r *rand.Rand, n int64, p Probabilities, counts []int64) {
	remaining := n
	mass := 1.0
	last := len(p) - 1
	for i := 0; i < last; i++ {
		if remaining == 0 || p[i] == 0 {
			counts[i] = 0
			mass -= p[i]
			continue
		}
		var c int64
		if mass <= 0 || p[i] >= mass {
			c = remaining
		} else {
			c = binomial(r, remaining, p[i]/mass)
		}
		counts[i] = c
		remaining -= c
		mass -= p[i]
	}
	counts[last] = remaining
}
