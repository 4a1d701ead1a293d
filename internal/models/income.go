package models

import "math"

// Valid bonus division factors: how many parts a yearly bonus is split into
// when converting it to a monthly-equivalent contribution
var validBonusDivisors = map[int]bool{
	1:  true,
	2:  true,
	3:  true,
	4:  true,
	6:  true,
	12: true,
}

// IncomeProfile represents the applicant's income fields
type IncomeProfile struct {
	Salary              float64 `json:"salary"`
	PartnerSalary       float64 `json:"partner_salary"`
	YearlyBonus         float64 `json:"yearly_bonus"`
	BonusDivisionFactor int     `json:"bonus_division_factor"`
}

// TotalMonthlyIncome derives the total monthly income, rounded to the nearest
// whole currency unit. An unset or invalid bonus divisor means the yearly
// bonus contributes nothing; it never causes a division by zero.
func (p *IncomeProfile) TotalMonthlyIncome() float64 {
	total := sanitizeAmount(p.Salary) + sanitizeAmount(p.PartnerSalary)

	if validBonusDivisors[p.BonusDivisionFactor] {
		total += sanitizeAmount(p.YearlyBonus) / float64(p.BonusDivisionFactor)
	}

	return math.Round(total)
}

// sanitizeAmount coerces NaN, infinite and negative amounts to 0
func sanitizeAmount(value float64) float64 {
	if math.IsNaN(value) || math.IsInf(value, 0) || value < 0 {
		return 0
	}
	return value
}
