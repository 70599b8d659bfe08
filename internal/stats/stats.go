// Package stats provides descriptive statistics over []float64.
package stats

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"DataSci/internal/linalg"
	"DataSci/internal/text"
)

var (
	ErrEmpty         = errors.New("empty data")
	ErrTooFewSamples = errors.New("at least two samples required")
	ErrQuantileRange = errors.New("quantile must be in [0, 1)")
)

func Sum(x []float64) float64 {
	total := 0.0
	for _, v := range x {
		total += v
	}
	return total
}

func Mean(x []float64) (float64, error) {
	if len(x) == 0 {
		return 0, ErrEmpty
	}
	return Sum(x) / float64(len(x)), nil
}

// DeMean translates x so that the result has mean 0.
func DeMean(x []float64) ([]float64, error) {
	mean, err := Mean(x)
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(x))
	for i, v := range x {
		out[i] = v - mean
	}
	return out, nil
}

func sorted(x []float64) []float64 {
	out := append([]float64(nil), x...)
	sort.Float64s(out)
	return out
}

// Median returns the middle value, or the mean of the two middle values.
func Median(x []float64) (float64, error) {
	n := len(x)
	if n == 0 {
		return 0, ErrEmpty
	}
	s := sorted(x)
	mid := n / 2
	if n%2 == 1 {
		return s[mid], nil
	}
	return (s[mid-1] + s[mid]) / 2, nil
}

// Quantile returns the value below which a fraction p of the data lies.
func Quantile(x []float64, p float64) (float64, error) {
	if len(x) == 0 {
		return 0, ErrEmpty
	}
	if p < 0 || p >= 1 {
		return 0, fmt.Errorf("%w: got %v", ErrQuantileRange, p)
	}
	idx := int(p * float64(len(x)))
	return sorted(x)[idx], nil
}

// Mode returns every most frequent value, in first-seen order.
func Mode(x []float64) ([]float64, error) {
	if len(x) == 0 {
		return nil, ErrEmpty
	}
	counts := text.NewCounter(x...)
	top := counts.MostCommon(0)

	var modes []float64
	for _, e := range top {
		if e.Count != top[0].Count {
			break
		}
		modes = append(modes, e.Key)
	}
	return modes, nil
}

func DataRange(x []float64) (float64, error) {
	if len(x) == 0 {
		return 0, ErrEmpty
	}
	lo, hi := x[0], x[0]
	for _, v := range x[1:] {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	return hi - lo, nil
}

// Variance is the sample variance, dividing by n-1.
func Variance(x []float64) (float64, error) {
	n := len(x)
	if n < 2 {
		return 0, fmt.Errorf("variance of %d values: %w", n, ErrTooFewSamples)
	}
	dev, err := DeMean(x)
	if err != nil {
		return 0, err
	}
	return linalg.SumOfSquares(dev) / float64(n-1), nil
}

func StandardDeviation(x []float64) (float64, error) {
	v, err := Variance(x)
	if err != nil {
		return 0, err
	}
	return math.Sqrt(v), nil
}

func InterquartileRange(x []float64) (float64, error) {
	q3, err := Quantile(x, 0.75)
	if err != nil {
		return 0, err
	}
	q1, err := Quantile(x, 0.25)
	if err != nil {
		return 0, err
	}
	return q3 - q1, nil
}

func Covariance(x, y []float64) (float64, error) {
	n := len(x)
	if n != len(y) {
		return 0, fmt.Errorf("covariance: %w: %d vs %d", linalg.ErrDimensionMismatch, n, len(y))
	}
	if n < 2 {
		return 0, fmt.Errorf("covariance of %d pairs: %w", n, ErrTooFewSamples)
	}
	dx, err := DeMean(x)
	if err != nil {
		return 0, err
	}
	dy, err := DeMean(y)
	if err != nil {
		return 0, err
	}
	dot, err := linalg.Dot(dx, dy)
	if err != nil {
		return 0, err
	}
	return dot / float64(n-1), nil
}

// Correlation is the Pearson correlation. It is 0 when either input has no variation.
func Correlation(x, y []float64) (float64, error) {
	sx, err := StandardDeviation(x)
	if err != nil {
		return 0, err
	}
	sy, err := StandardDeviation(y)
	if err != nil {
		return 0, err
	}
	if sx <= 0 || sy <= 0 {
		return 0, nil
	}
	cov, err := Covariance(x, y)
	if err != nil {
		return 0, err
	}
	return cov / sx / sy, nil
}

// Summary collects the common descriptive statistics of a sample.
type Summary struct {
	Count             int       `json:"count"`
	Mean              float64   `json:"mean"`
	Median            float64   `json:"median"`
	Mode              []float64 `json:"mode"`
	Min               float64   `json:"min"`
	Max               float64   `json:"max"`
	Range             float64   `json:"range"`
	Variance          float64   `json:"variance"`
	StandardDeviation float64   `json:"standard_deviation"`
}

// Summarize describes x. Variance and StandardDeviation are 0 for a single value.
func Summarize(x []float64) (Summary, error) {
	if len(x) == 0 {
		return Summary{}, ErrEmpty
	}
	s := sorted(x)
	out := Summary{Count: len(x), Min: s[0], Max: s[len(s)-1]}
	out.Range = out.Max - out.Min

	var err error
	if out.Mean, err = Mean(x); err != nil {
		return Summary{}, err
	}
	if out.Median, err = Median(x); err != nil {
		return Summary{}, err
	}
	if out.Mode, err = Mode(x); err != nil {
		return Summary{}, err
	}
	if len(x) > 1 {
		if out.Variance, err = Variance(x); err != nil {
			return Summary{}, err
		}
		out.StandardDeviation = math.Sqrt(out.Variance)
	}
	return out, nil
}
