package ml

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"DataSci/internal/stats"
)

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func TestSplitDataKeepsEveryItem(t *testing.T) {
	data := make([]int, 1000)
	for i := range data {
		data[i] = i
	}

	train, test := SplitData(rand.New(rand.NewSource(0)), data, 0.75)
	if len(train)+len(test) != len(data) {
		t.Fatalf("lost items: %d + %d", len(train), len(test))
	}
	if len(train) < 650 || len(train) > 850 {
		t.Fatalf("train share far from 75%%: %d", len(train))
	}

	seen := make(map[int]bool, len(data))
	for _, v := range append(append([]int{}, train...), test...) {
		if seen[v] {
			t.Fatalf("duplicate item %d", v)
		}
		seen[v] = true
	}
}

func TestTrainTestSplitKeepsPairs(t *testing.T) {
	x := []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}
	y := []string{"0", "1", "2", "3", "4", "5", "6", "7", "8", "9"}

	xTrain, xTest, yTrain, yTest, err := TrainTestSplit(rand.New(rand.NewSource(1)), x, y, 0.3)
	if err != nil {
		t.Fatalf("TrainTestSplit failed: %v", err)
	}
	if len(xTrain) != len(yTrain) || len(xTest) != len(yTest) {
		t.Fatalf("mismatched halves")
	}
	for i := range xTrain {
		if y[xTrain[i]] != yTrain[i] {
			t.Fatalf("pair broken at train %d", i)
		}
	}
	for i := range xTest {
		if y[xTest[i]] != yTest[i] {
			t.Fatalf("pair broken at test %d", i)
		}
	}

	if _, _, _, _, err := TrainTestSplit(rand.New(rand.NewSource(1)), x, y[:3], 0.3); err == nil {
		t.Fatalf("expected length mismatch error")
	}
}

func TestMetrics(t *testing.T) {
	tp, fp, fn, tn := 70, 4930, 13930, 981070

	cases := []struct {
		name   string
		metric func(int, int, int, int) (float64, error)
		want   float64
	}{
		{"accuracy", Accuracy, 0.98114},
		{"precision", Precision, 0.014},
		{"recall", Recall, 0.005},
		{"f1", F1Score, 0.00736842},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := c.metric(tp, fp, fn, tn)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !almostEqual(got, c.want, 1e-6) {
				t.Fatalf("got %v, want %v", got, c.want)
			}
		})
	}
}

func TestMetricsZeroDivision(t *testing.T) {
	if _, err := Precision(0, 0, 5, 5); !errors.Is(err, ErrZeroDivision) {
		t.Fatalf("precision: expected ErrZeroDivision, got %v", err)
	}
	if _, err := Recall(0, 5, 0, 5); !errors.Is(err, ErrZeroDivision) {
		t.Fatalf("recall: expected ErrZeroDivision, got %v", err)
	}
	if _, err := F1Score(0, 3, 3, 5); !errors.Is(err, ErrZeroDivision) {
		t.Fatalf("f1: expected ErrZeroDivision, got %v", err)
	}
	if _, err := Accuracy(0, 0, 0, 0); !errors.Is(err, ErrZeroDivision) {
		t.Fatalf("accuracy: expected ErrZeroDivision, got %v", err)
	}
}

func TestScaleAndRescale(t *testing.T) {
	data := [][]float64{{1, 20, 5}, {3, 30, 5}, {5, 40, 5}}

	means, stdevs, err := Scale(data)
	if err != nil {
		t.Fatalf("Scale failed: %v", err)
	}
	if means[0] != 3 || means[1] != 30 || stdevs[0] != 2 || stdevs[1] != 10 || stdevs[2] != 0 {
		t.Fatalf("unexpected scale: means=%v stdevs=%v", means, stdevs)
	}

	rescaled, err := Rescale(data)
	if err != nil {
		t.Fatalf("Rescale failed: %v", err)
	}
	for j := 0; j < 2; j++ {
		col := []float64{rescaled[0][j], rescaled[1][j], rescaled[2][j]}
		m, _ := stats.Mean(col)
		sd, _ := stats.StandardDeviation(col)
		if !almostEqual(m, 0, 1e-12) || !almostEqual(sd, 1, 1e-12) {
			t.Fatalf("column %d not standardized: mean=%v sd=%v", j, m, sd)
		}
	}
	if rescaled[1][2] != 5 {
		t.Fatalf("constant column should be untouched, got %v", rescaled[1][2])
	}
	if data[0][0] != 1 {
		t.Fatalf("Rescale modified its input")
	}
}

func TestScaleNeedsTwoRows(t *testing.T) {
	_, _, err := Scale([][]float64{{1, 2}})
	if !errors.Is(err, stats.ErrTooFewSamples) {
		t.Fatalf("expected ErrTooFewSamples, got %v", err)
	}
}
