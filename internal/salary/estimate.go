package salary

import (
	"github.com/dmfrolov/salarystats/internal/models"
)

// Estimate turns a raw salary range into a single representative value.
// A bound of 0 counts as absent (providers report missing bounds as null,
// which the models decode to 0). The second return is false when no
// estimate can be made.
//
// With only an upper bound the estimate is 80% of it; with only a lower
// bound, 120% of it. With both bounds present the estimate is half the
// spread between them.
func Estimate(from, to int) (float64, bool) {
	switch {
	case from == 0 && to == 0:
		return 0, false
	case from == 0:
		return float64(to) * 0.8, true
	case to == 0:
		return float64(from) * 1.2, true
	default:
		return float64(to-from) / 2, true
	}
}

// EstimateRub estimates a vacancy's ruble salary. Vacancies without a
// salary block, or quoted in any currency other than rubCode (the
// provider's own spelling of the ruble), yield no estimate.
func EstimateRub(s *models.Salary, rubCode string) (float64, bool) {
	if s == nil || s.Currency != rubCode {
		return 0, false
	}
	return Estimate(s.From, s.To)
}
