package salary

import (
	"math"
	"testing"

	"DataSci/internal/dataset"
)

func TestTenureBucket(t *testing.T) {
	cases := map[float64]string{
		0.7: BucketUnderTwo,
		2:   BucketTwoToFive,
		4.9: BucketTwoToFive,
		5:   BucketOverFive,
		10:  BucketOverFive,
	}
	for tenure, want := range cases {
		if got := TenureBucket(tenure); got != want {
			t.Fatalf("TenureBucket(%v) = %q, want %q", tenure, got, want)
		}
	}
}

func TestAverageSalaryByBucket(t *testing.T) {
	got := AverageSalaryByBucket(dataset.SalariesAndTenures())

	want := map[string]float64{
		BucketUnderTwo:  48000,
		BucketTwoToFive: 61500,
		BucketOverFive:  475000.0 / 6,
	}
	if len(got) != len(want) {
		t.Fatalf("got %d buckets, want %d", len(got), len(want))
	}
	for k, v := range want {
		if math.Abs(got[k]-v) > 1e-9 {
			t.Fatalf("bucket %q = %v, want %v", k, got[k], v)
		}
	}
}

func TestAverageSalaryByTenure(t *testing.T) {
	got := AverageSalaryByTenure(dataset.SalariesAndTenures())
	if len(got) != 10 {
		t.Fatalf("every tenure is distinct, got %d groups", len(got))
	}
	if got[8.7] != 83000 || got[0.7] != 48000 {
		t.Fatalf("unexpected averages: %v", got)
	}
}

func TestPredictPaidOrUnpaid(t *testing.T) {
	if PredictPaidOrUnpaid(2) != Paid || PredictPaidOrUnpaid(6) != Unpaid || PredictPaidOrUnpaid(10) != Paid {
		t.Fatalf("rule does not match the observed pattern")
	}
	if acc := RuleAccuracy(dataset.Accounts()); acc != 0.9 {
		t.Fatalf("RuleAccuracy = %v, want 0.9", acc)
	}
}
