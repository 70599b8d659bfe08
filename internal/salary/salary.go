// Package salary summarizes pay by tenure and predicts paid accounts.
package salary

import "DataSci/internal/types"

const (
	BucketUnderTwo  = "less than two years"
	BucketTwoToFive = "between two and five years"
	BucketOverFive  = "more than five years"
	Paid            = "paid"
	Unpaid          = "unpaid"
)

// SalaryByTenure groups salaries under their exact tenure.
func SalaryByTenure(records []types.SalaryTenure) map[float64][]float64 {
	out := make(map[float64][]float64)
	for _, r := range records {
		out[r.Tenure] = append(out[r.Tenure], r.Salary)
	}
	return out
}

func AverageSalaryByTenure(records []types.SalaryTenure) map[float64]float64 {
	return averages(SalaryByTenure(records))
}

func TenureBucket(tenure float64) string {
	switch {
	case tenure < 2:
		return BucketUnderTwo
	case tenure < 5:
		return BucketTwoToFive
	default:
		return BucketOverFive
	}
}

func SalaryByTenureBucket(records []types.SalaryTenure) map[string][]float64 {
	out := make(map[string][]float64)
	for _, r := range records {
		b := TenureBucket(r.Tenure)
		out[b] = append(out[b], r.Salary)
	}
	return out
}

func AverageSalaryByBucket(records []types.SalaryTenure) map[string]float64 {
	return averages(SalaryByTenureBucket(records))
}

func averages[K comparable](groups map[K][]float64) map[K]float64 {
	out := make(map[K]float64, len(groups))
	for k, salaries := range groups {
		total := 0.0
		for _, s := range salaries {
			total += s
		}
		out[k] = total / float64(len(salaries))
	}
	return out
}

// PredictPaidOrUnpaid is a hand-fit rule: very junior and very senior users pay.
func PredictPaidOrUnpaid(yearsExperience float64) string {
	switch {
	case yearsExperience < 3.0:
		return Paid
	case yearsExperience < 8.5:
		return Unpaid
	default:
		return Paid
	}
}

// RuleAccuracy is the fraction of records PredictPaidOrUnpaid classifies correctly.
func RuleAccuracy(records []types.AccountRecord) float64 {
	if len(records) == 0 {
		return 0
	}
	correct := 0
	for _, r := range records {
		if (PredictPaidOrUnpaid(r.YearsExperience) == Paid) == r.Paid {
			correct++
		}
	}
	return float64(correct) / float64(len(records))
}
