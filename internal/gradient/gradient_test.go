package gradient

import (
	"context"
	"errors"
	"math"
	"testing"

	"DataSci/internal/linalg"
)

func TestStep(t *testing.T) {
	got, err := Step([]float64{1, 1}, []float64{2, -4}, 0.5)
	if err != nil || got[0] != 2 || got[1] != -1 {
		t.Fatalf("Step = %v, %v", got, err)
	}
	if _, err := Step([]float64{1}, []float64{1, 2}, 1); !errors.Is(err, linalg.ErrDimensionMismatch) {
		t.Fatalf("expected dimension mismatch, got %v", err)
	}
}

func TestSafe(t *testing.T) {
	failing := Safe(func([]float64) (float64, error) { return 0, errors.New("bad") })
	panicking := Safe(func(theta []float64) (float64, error) { return theta[5], nil })
	nan := Safe(func([]float64) (float64, error) { return math.NaN(), nil })
	ok := Safe(SumOfSquares)

	for name, f := range map[string]func([]float64) float64{"error": failing, "panic": panicking, "nan": nan} {
		if v := f([]float64{1}); !math.IsInf(v, 1) {
			t.Fatalf("%s: got %v, want +Inf", name, v)
		}
	}
	if v := ok([]float64{3, 4}); v != 25 {
		t.Fatalf("Safe(SumOfSquares) = %v", v)
	}
}

func TestMinimizeBatchFindsOrigin(t *testing.T) {
	theta, err := MinimizeBatch(context.Background(), SumOfSquares, SumOfSquaresGradient, []float64{4, -7, 2}, 0)
	if err != nil {
		t.Fatalf("MinimizeBatch failed: %v", err)
	}
	if linalg.Magnitude(theta) > 0.01 {
		t.Fatalf("expected theta near the origin, got %v", theta)
	}
}

func TestMaximizeBatch(t *testing.T) {
	// -(x-3)^2 peaks at x = 3.
	target := func(theta []float64) (float64, error) {
		d := theta[0] - 3
		return -d * d, nil
	}
	gradient := func(theta []float64) ([]float64, error) {
		return []float64{-2 * (theta[0] - 3)}, nil
	}

	theta, err := MaximizeBatch(context.Background(), target, gradient, []float64{-10}, 1e-9)
	if err != nil {
		t.Fatalf("MaximizeBatch failed: %v", err)
	}
	if math.Abs(theta[0]-3) > 1e-3 {
		t.Fatalf("expected 3, got %v", theta[0])
	}
}

func TestMinimizeBatchStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := MinimizeBatch(ctx, SumOfSquares, SumOfSquaresGradient, []float64{1}, 0)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestMinimizeBatchNoFiniteStep(t *testing.T) {
	target := func([]float64) (float64, error) { return 0, errors.New("undefined") }

	_, err := MinimizeBatch(context.Background(), target, SumOfSquaresGradient, []float64{1}, 0)
	if !errors.Is(err, ErrNoFiniteStep) {
		t.Fatalf("expected ErrNoFiniteStep, got %v", err)
	}
}
