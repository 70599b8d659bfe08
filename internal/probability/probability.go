// Package probability holds the uniform and normal distributions.
package probability

import "math"

// DefaultTolerance is the search width at which InverseNormalCDF stops.
const DefaultTolerance = 0.00001

func UniformPDF(x float64) float64 {
	if x >= 0 && x < 1 {
		return 1
	}
	return 0
}

// UniformCDF is the probability that a uniform random variable is less than x.
func UniformCDF(x float64) float64 {
	switch {
	case x < 0:
		return 0
	case x < 1:
		return x
	default:
		return 1
	}
}

func NormalPDF(x, mu, sigma float64) float64 {
	z := (x - mu) / sigma
	return math.Exp(-z*z/2) / (math.Sqrt(2*math.Pi) * sigma)
}

func NormalCDF(x, mu, sigma float64) float64 {
	return (1 + math.Erf((x-mu)/math.Sqrt2/sigma)) / 2
}

// InverseNormalCDF finds z with NormalCDF(z, mu, sigma) ~= p by binary search.
// A non-positive tolerance selects DefaultTolerance.
func InverseNormalCDF(p, mu, sigma, tolerance float64) float64 {
	if tolerance <= 0 {
		tolerance = DefaultTolerance
	}
	if mu != 0 || sigma != 1 {
		return mu + sigma*InverseNormalCDF(p, 0, 1, tolerance)
	}

	// NormalCDF(-10) ~= 0 and NormalCDF(10) ~= 1.
	lowZ, hiZ := -10.0, 10.0
	midZ := 0.0
	for hiZ-lowZ > tolerance {
		midZ = (lowZ + hiZ) / 2
		midP := NormalCDF(midZ, 0, 1)
		if midP < p {
			lowZ = midZ
		} else if midP > p {
			hiZ = midZ
		} else {
			break
		}
	}
	return midZ
}
