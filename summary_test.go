package premiumbonds

import (
	"errors"
	"testing"
)

func TestSummarize(t *testing.T) {
	sample := make([]int64, 100)
	for i := range sample {
		// reversed on purpose, Summarize must not rely on order
		sample[i] = int64(100 - i)
	}

	s, err := Summarize(sample, 1000, "GBP")
	if err != nil {
		t.Fatalf("Summarize() unexpected error: %v", err)
	}

	testCases := []struct {
		name string
		got  Money
		want Money
	}{
		{"median", s.Median, M(50.5, "GBP")},
		{"mean", s.Mean, M(50.5, "GBP")},
		{"low", s.Low, M(10, "GBP")},
		{"high", s.High, M(90, "GBP")},
		{"min", s.Min, M(1, "GBP")},
		{"max", s.Max, M(100, "GBP")},
		{"holding", s.Holding, M(1000, "GBP")},
	}
	for _, tc := range testCases {
		if !tc.got.Equal(tc.want) {
			t.Errorf("%s = %v, want %v", tc.name, tc.got, tc.want)
		}
	}

	if want := Percent(5.05); !s.Rate.Equal(want) {
		t.Errorf("Rate = %v, want %v", s.Rate, want)
	}
	if want := Percent(1); !s.LowRate.Equal(want) {
		t.Errorf("LowRate = %v, want %v", s.LowRate, want)
	}
	if want := Percent(9); !s.HighRate.Equal(want) {
		t.Errorf("HighRate = %v, want %v", s.HighRate, want)
	}
	if s.Trials != 100 {
		t.Errorf("Trials = %d, want 100", s.Trials)
	}
	if sample[0] != 100 {
		t.Errorf("Summarize() modified the sample")
	}
}

func TestSummarize_NoBond(t *testing.T) {
	s, err := Summarize([]int64{0, 0, 0}, 0, "GBP")
	if err != nil {
		t.Fatalf("Summarize() unexpected error: %v", err)
	}
	if s.Rate != 0 || !s.Median.IsZero() {
		t.Errorf("Summarize() = rate %v median %v, want zeros", s.Rate, s.Median)
	}
}

func TestSummarize_InvalidInput(t *testing.T) {
	if _, err := Summarize(nil, 100, "GBP"); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("Summarize(nil) error = %v, want ErrInvalidInput", err)
	}
	if _, err := Summarize([]int64{1}, -1, "GBP"); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("Summarize(holding -1) error = %v, want ErrInvalidInput", err)
	}
}

func TestMoney_String(t *testing.T) {
	testCases := []struct {
		m    Money
		want string
	}{
		{M(1234.5, "GBP"), "£1,234.50"},
		{M(int64(25), "GBP"), "£25.00"},
		{M(0, "GBP"), "£0.00"},
		{M(10.005, "EUR"), "€10.01"},
	}
	for _, tc := range testCases {
		if got := tc.m.String(); got != tc.want {
			t.Errorf("%#v.String() = %q, want %q", tc.m, got, tc.want)
		}
	}
}
