package premiumbonds

// Bin is a histogram bucket counting the values in [Low, High).
type Bin struct {
	Low, High int64
	Count     int
}

// Histogram buckets the sample into at most bins equal width bins.
// When limit is positive, values greater or equal to limit are left out,
// which keeps the chart readable when a few large prizes stretch the range.
func Histogram(sample []int64, bins int, limit int64) []Bin {
	if bins <= 0 {
		return nil
	}
	var kept []int64
	for _, v := range sample {
		if limit > 0 && v >= limit {
			continue
		}
		kept = append(kept, v)
	}
	if len(kept) == 0 {
		return nil
	}
	lo, hi := kept[0], kept[0]
	for _, v := range kept {
		lo, hi = min(lo, v), max(hi, v)
	}

	span := hi - lo + 1
	width := (span + int64(bins) - 1) / int64(bins)
	n := int((span + width - 1) / width)

	hist := make([]Bin, n)
	for i := range hist {
		hist[i].Low = lo + int64(i)*width
		hist[i].High = hist[i].Low + width
	}
	for _, v := range kept {
		hist[(v-lo)/width].Count++
	}
	return hist
}
