// Package ml holds dataset splitting, classifier metrics and rescaling.
package ml

import (
	"errors"
	"fmt"
	"math/rand"

	"DataSci/internal/linalg"
	"DataSci/internal/stats"
)

// ErrZeroDivision is returned by a metric whose denominator is zero.
var ErrZeroDivision = errors.New("metric undefined: zero denominator")

// SplitData sends each item to train with probability prob, to test otherwise.
func SplitData[T any](rng *rand.Rand, data []T, prob float64) (train, test []T) {
	for _, row := range data {
		if rng.Float64() < prob {
			train = append(train, row)
		} else {
			test = append(test, row)
		}
	}
	return train, test
}

// TrainTestSplit splits paired inputs and targets, keeping pairs together.
func TrainTestSplit[X, Y any](rng *rand.Rand, x []X, y []Y, testPct float64) (xTrain, xTest []X, yTrain, yTest []Y, err error) {
	if len(x) != len(y) {
		return nil, nil, nil, nil, fmt.Errorf("%d inputs but %d targets", len(x), len(y))
	}

	idx := make([]int, len(x))
	for i := range idx {
		idx[i] = i
	}
	train, test := SplitData(rng, idx, 1-testPct)

	for _, i := range train {
		xTrain = append(xTrain, x[i])
		yTrain = append(yTrain, y[i])
	}
	for _, i := range test {
		xTest = append(xTest, x[i])
		yTest = append(yTest, y[i])
	}
	return xTrain, xTest, yTrain, yTest, nil
}

func ratio(num, den int) (float64, error) {
	if den == 0 {
		return 0, ErrZeroDivision
	}
	return float64(num) / float64(den), nil
}

// Accuracy is the fraction of correct predictions.
func Accuracy(tp, fp, fn, tn int) (float64, error) {
	return ratio(tp+tn, tp+fp+fn+tn)
}

// Precision is the fraction of positive predictions that were right.
func Precision(tp, fp, fn, tn int) (float64, error) {
	return ratio(tp, tp+fp)
}

// Recall is the fraction of actual positives that were found.
func Recall(tp, fp, fn, tn int) (float64, error) {
	return ratio(tp, tp+fn)
}

// F1Score is the harmonic mean of precision and recall.
func F1Score(tp, fp, fn, tn int) (float64, error) {
	p, err := Precision(tp, fp, fn, tn)
	if err != nil {
		return 0, fmt.Errorf("precision: %w", err)
	}
	r, err := Recall(tp, fp, fn, tn)
	if err != nil {
		return 0, fmt.Errorf("recall: %w", err)
	}
	if p+r == 0 {
		return 0, ErrZeroDivision
	}
	return 2 * p * r / (p + r), nil
}

// Scale returns the mean and standard deviation of every column.
func Scale(data linalg.Matrix) (means, stdevs []float64, err error) {
	_, cols := linalg.Shape(data)
	means = make([]float64, cols)
	stdevs = make([]float64, cols)
	for j := 0; j < cols; j++ {
		col := linalg.Column(data, j)
		if means[j], err = stats.Mean(col); err != nil {
			return nil, nil, fmt.Errorf("column %d: %w", j, err)
		}
		if stdevs[j], err = stats.StandardDeviation(col); err != nil {
			return nil, nil, fmt.Errorf("column %d: %w", j, err)
		}
	}
	return means, stdevs, nil
}

// Rescale standardizes every column to mean 0 and standard deviation 1.
// Columns with no deviation are left unchanged.
func Rescale(data linalg.Matrix) (linalg.Matrix, error) {
	means, stdevs, err := Scale(data)
	if err != nil {
		return nil, err
	}
	rows, cols := linalg.Shape(data)
	return linalg.MakeMatrix(rows, cols, func(i, j int) float64 {
		if stdevs[j] > 0 {
			return (data[i][j] - means[j]) / stdevs[j]
		}
		return data[i][j]
	}), nil
}
