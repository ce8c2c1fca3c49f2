package premiumbonds

import (
	"math"
	"math/rand/v2"
)

// inversionMean is the mean under which binomial variates are drawn by plain
// inversion from zero. Above it the search starts at the mode.
const inversionMean = 30

// binomial draws the number of successes among n independent trials of
// probability p.
func binomial(r *rand.Rand, n int64, p float64) int64 {
	switch {
	case n <= 0 || p <= 0:
		return 0
	case p >= 1:
		return n
	case p > 0.5:
		return n - binomial(r, n, 1-p)
	}
	if float64(n)*p < inversionMean {
		return binomialInversion(r, n, p)
	}
	return binomialChopDown(r, n, p)
}

// binomialInversion walks the cumulative distribution from 0.
// Expected cost is O(n*p).
func binomialInversion(r *rand.Rand, n int64, p float64) int64 {
	q := 1 - p
	s := p / q
	a := float64(n+1) * s
	f := math.Exp(float64(n) * math.Log1p(-p)) // P(X=0)
	u := r.Float64()
	var k int64
	for u > f {
		u -= f
		k++
		if k > n {
			// rounding leftover in the tail
			return n
		}
		f *= a/float64(k) - s
	}
	return k
}

// binomialChopDown searches outward from the mode, alternating below and above.
// Expected cost is O(sqrt(n*p*q)).
func binomialChopDown(r *rand.Rand, n int64, p float64) int64 {
	q := 1 - p
	m := int64(float64(n+1) * p)
	if m > n {
		m = n
	}
	nf, mf := float64(n), float64(m)
	lnN, _ := math.Lgamma(nf + 1)
	lnM, _ := math.Lgamma(mf + 1)
	lnNM, _ := math.Lgamma(nf - mf + 1)
	pm := math.Exp(lnN - lnM - lnNM + mf*math.Log(p) + (nf-mf)*math.Log1p(-p))

	u := r.Float64() - pm
	if u <= 0 {
		return m
	}
	lo, hi := m, m
	flo, fhi := pm, pm
	for lo > 0 || hi < n {
		if lo > 0 {
			flo *= float64(lo) / float64(n-lo+1) * q / p
			lo--
			if u -= flo; u <= 0 {
				return lo
			}
		}
		if hi < n {
			fhi *= float64(n-hi) / float64(hi+1) * p / q
			hi++
			if u -= fhi; u <= 0 {
				return hi
			}
		}
	}
	// the whole support was visited: rounding leftover
	return m
}
