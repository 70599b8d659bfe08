// Package linalg implements vectors as []float64 and matrices as [][]float64.
package linalg

import (
	"errors"
	"fmt"
	"math"
)

var ErrDimensionMismatch = errors.New("dimension mismatch")

type Vector = []float64

type Matrix = [][]float64

func checkLen(v, w Vector) error {
	if len(v) != len(w) {
		return fmt.Errorf("%w: %d vs %d", ErrDimensionMismatch, len(v), len(w))
	}
	return nil
}

func Add(v, w Vector) (Vector, error) {
	if err := checkLen(v, w); err != nil {
		return nil, err
	}
	out := make(Vector, len(v))
	for i := range v {
		out[i] = v[i] + w[i]
	}
	return out, nil
}

func Subtract(v, w Vector) (Vector, error) {
	if err := checkLen(v, w); err != nil {
		return nil, err
	}
	out := make(Vector, len(v))
	for i := range v {
		out[i] = v[i] - w[i]
	}
	return out, nil
}

// Sum adds vectors componentwise. The sum of no vectors is nil.
func Sum(vectors ...Vector) (Vector, error) {
	if len(vectors) == 0 {
		return nil, nil
	}
	out := make(Vector, len(vectors[0]))
	copy(out, vectors[0])
	for _, v := range vectors[1:] {
		var err error
		if out, err = Add(out, v); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func ScalarMultiply(c float64, v Vector) Vector {
	out := make(Vector, len(v))
	for i, x := range v {
		out[i] = c * x
	}
	return out
}

// Mean is the componentwise mean of vectors.
func Mean(vectors ...Vector) (Vector, error) {
	if len(vectors) == 0 {
		return nil, nil
	}
	total, err := Sum(vectors...)
	if err != nil {
		return nil, err
	}
	return ScalarMultiply(1/float64(len(vectors)), total), nil
}

// Dot is v_1 * w_1 + ... + v_n * w_n.
func Dot(v, w Vector) (float64, error) {
	if err := checkLen(v, w); err != nil {
		return 0, err
	}
	total := 0.0
	for i := range v {
		total += v[i] * w[i]
	}
	return total, nil
}

func SumOfSquares(v Vector) float64 {
	total := 0.0
	for _, x := range v {
		total += x * x
	}
	return total
}

func Magnitude(v Vector) float64 {
	return math.Sqrt(SumOfSquares(v))
}

func SquaredDistance(v, w Vector) (float64, error) {
	d, err := Subtract(v, w)
	if err != nil {
		return 0, err
	}
	return SumOfSquares(d), nil
}

func Distance(v, w Vector) (float64, error) {
	sq, err := SquaredDistance(v, w)
	if err != nil {
		return 0, err
	}
	return math.Sqrt(sq), nil
}
