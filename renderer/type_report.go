package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/premiumbonds"
)

// barWidth is the width, in characters, of the longest histogram bar.
const barWidth = 40

// Report is a struct to represent a simulation result for rendering.
type Report struct {
	RunID   string
	Table   string
	Seed    uint64
	Shards  int
	Summary *premiumbonds.Summary

	Histogram []Bar
	Truncated bool // the histogram omits winnings above the holding
}

// Bar is one line of the histogram chart.
type Bar struct {
	Label string
	Count int
	Bar   string
}

// ReportOptions describes how the report is assembled.
type ReportOptions struct {
	RunID    string
	Table    string
	Seed     uint64
	Shards   int
	Bins     int  // number of histogram bins, 0 for no histogram
	Truncate bool // leave winnings greater or equal to the holding out of the histogram
}

// NewReport assembles the report of a simulated sample and its summary.
func NewReport(s *premiumbonds.Summary, sample []int64, opts ReportOptions) *Report {
	r := &Report{
		RunID:   opts.RunID,
		Table:   opts.Table,
		Seed:    opts.Seed,
		Shards:  opts.Shards,
		Summary: s,
	}

	var limit int64
	if opts.Truncate {
		limit = s.Holding.Decimal().IntPart()
		r.Truncated = limit > 0
	}
	r.Histogram = bars(premiumbonds.Histogram(sample, opts.Bins, limit), s.Holding.Currency())
	return r
}

func bars(hist []premiumbonds.Bin, currency string) []Bar {
	highest := 0
	for _, b := range hist {
		highest = max(highest, b.Count)
	}
	res := make([]Bar, len(hist))
	for i, b := range hist {
		width := 0
		if highest > 0 {
			width = b.Count * barWidth / highest
		}
		if width == 0 && b.Count > 0 {
			width = 1
		}
		res[i] = Bar{
			Label: fmt.Sprintf("%s to %s", premiumbonds.M(b.Low, currency), premiumbonds.M(b.High-1, currency)),
			Count: b.Count,
			Bar:   strings.Repeat("#", width),
		}
	}
	return res
}
