package stats

import (
	"errors"
	"math"
	"reflect"
	"testing"

	"DataSci/internal/linalg"
)

var oneToTen = []float64{7, 2, 9, 1, 10, 4, 3, 8, 6, 5}

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestCentralTendency(t *testing.T) {
	mean, err := Mean(oneToTen)
	if err != nil || mean != 5.5 {
		t.Fatalf("Mean = %v, %v", mean, err)
	}

	median, err := Median(oneToTen)
	if err != nil || median != 5.5 {
		t.Fatalf("Median (even) = %v, %v", median, err)
	}

	odd, err := Median([]float64{3, 1, 2})
	if err != nil || odd != 2 {
		t.Fatalf("Median (odd) = %v, %v", odd, err)
	}

	modes, err := Mode([]float64{1, 3, 2, 3, 2})
	if err != nil || !reflect.DeepEqual(modes, []float64{3, 2}) {
		t.Fatalf("Mode = %v, %v", modes, err)
	}
}

func TestQuantile(t *testing.T) {
	cases := map[float64]float64{0.10: 2, 0.25: 3, 0.75: 8, 0.90: 10}
	for p, want := range cases {
		got, err := Quantile(oneToTen, p)
		if err != nil || got != want {
			t.Fatalf("Quantile(%v) = %v, %v; want %v", p, got, err, want)
		}
	}

	if _, err := Quantile(oneToTen, 1); !errors.Is(err, ErrQuantileRange) {
		t.Fatalf("expected ErrQuantileRange, got %v", err)
	}

	iqr, err := InterquartileRange(oneToTen)
	if err != nil || iqr != 5 {
		t.Fatalf("InterquartileRange = %v, %v", iqr, err)
	}
}

func TestDispersion(t *testing.T) {
	r, err := DataRange(oneToTen)
	if err != nil || r != 9 {
		t.Fatalf("DataRange = %v, %v", r, err)
	}

	v, err := Variance(oneToTen)
	if err != nil || !near(v, 82.5/9) {
		t.Fatalf("Variance = %v, %v", v, err)
	}

	sd, err := StandardDeviation(oneToTen)
	if err != nil || !near(sd, math.Sqrt(82.5/9)) {
		t.Fatalf("StandardDeviation = %v, %v", sd, err)
	}

	if _, err := Variance([]float64{1}); !errors.Is(err, ErrTooFewSamples) {
		t.Fatalf("expected ErrTooFewSamples, got %v", err)
	}
}

func TestCorrelation(t *testing.T) {
	x := []float64{1, 2, 3, 4}
	y := []float64{3, 5, 7, 9}

	cov, err := Covariance(x, y)
	if err != nil || !near(cov, 10.0/3) {
		t.Fatalf("Covariance = %v, %v", cov, err)
	}

	corr, err := Correlation(x, y)
	if err != nil || !near(corr, 1) {
		t.Fatalf("Correlation = %v, %v", corr, err)
	}

	flat, err := Correlation(x, []float64{2, 2, 2, 2})
	if err != nil || flat != 0 {
		t.Fatalf("Correlation with constant = %v, %v", flat, err)
	}

	if _, err := Covariance(x, y[:3]); !errors.Is(err, linalg.ErrDimensionMismatch) {
		t.Fatalf("expected ErrDimensionMismatch, got %v", err)
	}
}

func TestEmptyInput(t *testing.T) {
	if _, err := Mean(nil); !errors.Is(err, ErrEmpty) {
		t.Fatalf("Mean(nil) error = %v", err)
	}
	if _, err := Median(nil); !errors.Is(err, ErrEmpty) {
		t.Fatalf("Median(nil) error = %v", err)
	}
	if _, err := Summarize(nil); !errors.Is(err, ErrEmpty) {
		t.Fatalf("Summarize(nil) error = %v", err)
	}
}

func TestSummarize(t *testing.T) {
	s, err := Summarize(oneToTen)
	if err != nil {
		t.Fatalf("Summarize failed: %v", err)
	}
	if s.Count != 10 || s.Min != 1 || s.Max != 10 || s.Range != 9 || s.Mean != 5.5 {
		t.Fatalf("unexpected summary: %+v", s)
	}
	if len(s.Mode) != 10 {
		t.Fatalf("every value is a mode of distinct data, got %v", s.Mode)
	}

	single, err := Summarize([]float64{4})
	if err != nil || single.StandardDeviation != 0 || single.Median != 4 {
		t.Fatalf("Summarize single = %+v, %v", single, err)
	}
}
