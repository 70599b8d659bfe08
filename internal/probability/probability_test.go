package probability

import (
	"math"
	"testing"
)

func TestUniform(t *testing.T) {
	cases := []struct{ x, cdf, pdf float64 }{
		{-1, 0, 0},
		{0.4, 0.4, 1},
		{1, 1, 0},
		{3, 1, 0},
	}
	for _, c := range cases {
		if got := UniformCDF(c.x); got != c.cdf {
			t.Fatalf("UniformCDF(%v) = %v, want %v", c.x, got, c.cdf)
		}
		if got := UniformPDF(c.x); got != c.pdf {
			t.Fatalf("UniformPDF(%v) = %v, want %v", c.x, got, c.pdf)
		}
	}
}

func TestNormal(t *testing.T) {
	if got := NormalCDF(0, 0, 1); got != 0.5 {
		t.Fatalf("NormalCDF(0) = %v", got)
	}
	if got := NormalCDF(1.96, 0, 1); math.Abs(got-0.975) > 1e-3 {
		t.Fatalf("NormalCDF(1.96) = %v", got)
	}
	if got := NormalPDF(0, 0, 1); math.Abs(got-1/math.Sqrt(2*math.Pi)) > 1e-12 {
		t.Fatalf("NormalPDF(0) = %v", got)
	}
}

func TestInverseNormalCDF(t *testing.T) {
	for _, p := range []float64{0.025, 0.3, 0.5, 0.9, 0.975} {
		z := InverseNormalCDF(p, 0, 1, 0)
		if got := NormalCDF(z, 0, 1); math.Abs(got-p) > 1e-5 {
			t.Fatalf("NormalCDF(InverseNormalCDF(%v)) = %v", p, got)
		}
	}

	z := InverseNormalCDF(0.975, 100, 15, 1e-6)
	if math.Abs(z-(100+15*1.959964)) > 1e-3 {
		t.Fatalf("InverseNormalCDF(0.975, 100, 15) = %v", z)
	}
}
