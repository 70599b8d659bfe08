// Package gradient minimizes and maximizes functions by batch gradient descent.
package gradient

import (
	"context"
	"errors"
	"fmt"
	"math"

	"DataSci/internal/linalg"
)

// DefaultTolerance stops the descent once an improvement is smaller than this.
const DefaultTolerance = 0.000001

// StepSizes are tried on every iteration; the best one wins.
var StepSizes = []float64{100, 10, 1, 0.1, 0.01, 0.001, 0.0001, 0.00001}

// ErrNoFiniteStep is returned when every candidate step evaluates to +Inf.
var ErrNoFiniteStep = errors.New("no step size produced a finite value")

// TargetFunc is the function being minimized.
type TargetFunc func(theta []float64) (float64, error)

// GradientFunc returns the gradient of a TargetFunc at theta.
type GradientFunc func(theta []float64) ([]float64, error)

// Step moves stepSize along direction from v.
func Step(v, direction []float64, stepSize float64) ([]float64, error) {
	return linalg.Add(v, linalg.ScalarMultiply(stepSize, direction))
}

// Safe wraps f so that errors, NaN results and panics evaluate to +Inf.
func Safe(f TargetFunc) func(theta []float64) float64 {
	return func(theta []float64) (value float64) {
		defer func() {
			if recover() != nil {
				value = math.Inf(1)
			}
		}()
		v, err := f(theta)
		if err != nil || math.IsNaN(v) {
			return math.Inf(1)
		}
		return v
	}
}

// Negate returns a function computing -f.
func Negate(f TargetFunc) TargetFunc {
	return func(theta []float64) (float64, error) {
		v, err := f(theta)
		return -v, err
	}
}

// NegateAll negates every component of a gradient.
func NegateAll(f GradientFunc) GradientFunc {
	return func(theta []float64) ([]float64, error) {
		g, err := f(theta)
		if err != nil {
			return nil, err
		}
		return linalg.ScalarMultiply(-1, g), nil
	}
}

// MinimizeBatch descends from theta0 until the improvement from one iteration
// to the next is below tolerance. A non-positive tolerance selects DefaultTolerance.
func MinimizeBatch(ctx context.Context, target TargetFunc, gradient GradientFunc, theta0 []float64, tolerance float64) ([]float64, error) {
	if tolerance <= 0 {
		tolerance = DefaultTolerance
	}

	safeTarget := Safe(target)
	theta := append([]float64(nil), theta0...)
	value := safeTarget(theta)

	for {
		if err := ctx.Err(); err != nil {
			return theta, err
		}

		grad, err := gradient(theta)
		if err != nil {
			return theta, fmt.Errorf("gradient at %v: %w", theta, err)
		}

		var next []float64
		nextValue := math.Inf(1)
		for _, size := range StepSizes {
			candidate, err := Step(theta, grad, -size)
			if err != nil {
				return theta, fmt.Errorf("step of %v: %w", size, err)
			}
			if v := safeTarget(candidate); next == nil || v < nextValue {
				next, nextValue = candidate, v
			}
		}

		if math.IsInf(nextValue, 1) {
			return theta, ErrNoFiniteStep
		}
		if math.Abs(value-nextValue) < tolerance {
			return theta, nil
		}
		theta, value = next, nextValue
	}
}

// MaximizeBatch ascends target by minimizing its negation.
func MaximizeBatch(ctx context.Context, target TargetFunc, gradient GradientFunc, theta0 []float64, tolerance float64) ([]float64, error) {
	return MinimizeBatch(ctx, Negate(target), NegateAll(gradient), theta0, tolerance)
}

// SumOfSquares is sum(theta_i^2), minimized at the origin.
func SumOfSquares(theta []float64) (float64, error) {
	return linalg.SumOfSquares(theta), nil
}

// SumOfSquaresGradient is the gradient of SumOfSquares.
func SumOfSquaresGradient(theta []float64) ([]float64, error) {
	return linalg.ScalarMultiply(2, theta), nil
}
