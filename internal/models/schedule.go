package models

import "math"

// ScheduleEntry is one month of an indicative repayment schedule
type ScheduleEntry struct {
	Month           int     `json:"month"`
	PrincipalAmount float64 `json:"principal_amount"`
	InterestAmount  float64 `json:"interest_amount"`
	TotalAmount     float64 `json:"total_amount"`
	Balance         float64 `json:"balance"`
}

// ScheduleSummary aggregates an indicative repayment schedule
type ScheduleSummary struct {
	Months         int     `json:"months"`
	MonthlyEMI     float64 `json:"monthly_emi"`
	TotalPrincipal float64 `json:"total_principal"`
	TotalInterest  float64 `json:"total_interest"`
	TotalAmount    float64 `json:"total_amount"`
}

// MonthlyInstallment calculates the EMI for an annuity loan of the given
// principal, annual rate and term
func MonthlyInstallment(principal float64, annualRatePercent float64, termMonths int) float64 {
	if termMonths <= 0 || principal <= 0 {
		return 0
	}

	monthlyRate := annualRatePercent / 12 / 100

	if monthlyRate == 0 {
		return principal / float64(termMonths)
	}

	factor := math.Pow(1+monthlyRate, float64(termMonths))
	return principal * monthlyRate * factor / (factor - 1)
}

// GenerateIndicativeSchedule produces a month-by-month principal/interest
// split for a loan of the given amount. Amounts are rounded to whole
// currency units; the last installment absorbs the rounding remainder so
// the balance always reaches exactly zero.
func GenerateIndicativeSchedule(amount float64, annualRatePercent float64, termMonths int) ([]ScheduleEntry, ScheduleSummary) {
	amount = math.Round(sanitizeAmount(amount))
	if amount <= 0 || termMonths <= 0 {
		return nil, ScheduleSummary{}
	}

	emi := MonthlyInstallment(amount, annualRatePercent, termMonths)
	monthlyRate := sanitizeAmount(annualRatePercent) / 12 / 100

	entries := make([]ScheduleEntry, 0, termMonths)
	summary := ScheduleSummary{
		Months:     termMonths,
		MonthlyEMI: math.Round(emi),
	}

	remaining := amount

	for month := 1; month <= termMonths; month++ {
		interest := math.Round(remaining * monthlyRate)

		var principal float64
		if month == termMonths {
			principal = remaining
		} else {
			principal = math.Round(emi - interest)
		}

		if principal < 0 {
			principal = 0
		}
		if principal > remaining {
			principal = remaining
		}

		remaining -= principal

		entries = append(entries, ScheduleEntry{
			Month:           month,
			PrincipalAmount: principal,
			InterestAmount:  interest,
			TotalAmount:     principal + interest,
			Balance:         remaining,
		})

		summary.TotalPrincipal += principal
		summary.TotalInterest += interest
	}

	summary.TotalAmount = summary.TotalPrincipal + summary.TotalInterest

	return entries, summary
}
