package models

import (
	"fmt"
	"math"
)

// CompanyCategory classifies the applicant's employer
type CompanyCategory string

const (
	CompanyCategoryA CompanyCategory = "Cat-A"
	CompanyCategoryB CompanyCategory = "Cat-B"
	CompanyCategoryC CompanyCategory = "Cat-C"
)

// EligibilityStatus is the final verdict of the eligibility check
type EligibilityStatus string

const (
	StatusEligible    EligibilityStatus = "Eligible"
	StatusNotEligible EligibilityStatus = "Not Eligible"
)

// Multiplier values above this are treated as an unset sentinel and the
// multiplier-based model is skipped, not rejected
const maxValidMultiplier = 35

// EligibilityParameters holds the tunable inputs of the eligibility check
type EligibilityParameters struct {
	CompanyCategory  CompanyCategory `json:"company_category"`
	FOIRPercent      float64         `json:"foir_percent"`
	MonthlyEMICanPay float64         `json:"monthly_emi_can_pay"`
	IsManualEMI      bool            `json:"is_manual_emi"`
	TenureMonths     int             `json:"tenure_months"`
	TenureYears      float64         `json:"tenure_years"`
	ROIPercent       float64         `json:"roi_percent"`
	Multiplier       float64         `json:"multiplier"`
}

// TenureYearsFromMonths derives the year figure shown alongside a tenure in
// months. Below 11 months it pins to 1 year; otherwise months/12 rounded to
// one decimal. Months never drive years the other way.
func TenureYearsFromMonths(months int) float64 {
	if months < 11 {
		return 1
	}
	return math.Round(float64(months)/12*10) / 10
}

// Normalize derives the dependent fields of the parameters: tenure years
// from tenure months, and clamping of malformed numerics
func (p *EligibilityParameters) Normalize() {
	if p.TenureMonths < 0 {
		p.TenureMonths = 0
	}
	p.TenureYears = TenureYearsFromMonths(p.TenureMonths)
	p.FOIRPercent = sanitizeAmount(p.FOIRPercent)
	p.MonthlyEMICanPay = sanitizeAmount(p.MonthlyEMICanPay)
	p.ROIPercent = sanitizeAmount(p.ROIPercent)
	p.Multiplier = sanitizeAmount(p.Multiplier)
}

// EligibilityState is the full input of the eligibility calculation: income
// fields, existing obligations and the check parameters. It is an immutable
// value; the With/Add/Remove/Update methods return a modified copy so any
// host (HTTP handler, scheduler, test) can drive it without shared state.
type EligibilityState struct {
	Income IncomeProfile         `json:"income_profile"`
	Rows   []ObligationRow       `json:"obligation_rows"`
	Params EligibilityParameters `json:"eligibility_parameters"`
}

// WithIncome returns the state with the income profile replaced
func (s EligibilityState) WithIncome(income IncomeProfile) EligibilityState {
	s.Income = income
	return s
}

// WithParameters returns the state with the parameters replaced and
// dependent fields re-derived
func (s EligibilityState) WithParameters(params EligibilityParameters) EligibilityState {
	params.Normalize()
	s.Params = params
	return s
}

// WithRows returns the state with the obligation rows replaced
func (s EligibilityState) WithRows(rows []ObligationRow) EligibilityState {
	s.Rows = rows
	return s
}

// AddRow returns the state with an empty obligation row appended
func (s EligibilityState) AddRow() EligibilityState {
	s.Rows = AddObligationRow(s.Rows)
	return s
}

// RemoveRow returns the state with the obligation row at index removed
func (s EligibilityState) RemoveRow(index int) EligibilityState {
	s.Rows = RemoveObligationRow(s.Rows, index)
	return s
}

// UpdateRow returns the state with one field of one obligation row updated
// from its string form
func (s EligibilityState) UpdateRow(index int, field, value string) (EligibilityState, error) {
	rows, err := UpdateObligationField(s.Rows, index, field, value)
	if err != nil {
		return s, err
	}
	s.Rows = rows
	return s, nil
}

// EligibilityResult is the derived output of the eligibility calculation.
// It is ephemeral: recomputed in full from the current state on every
// change and never authoritative on its own.
type EligibilityResult struct {
	TotalIncome               float64           `json:"total_income"`
	TotalObligations          float64           `json:"total_obligations"`
	TotalOutstanding          float64           `json:"total_outstanding"`
	FOIRAmount                float64           `json:"foir_amount"`
	AvailableEMI              float64           `json:"available_emi"`
	LoanEligibilityFOIR       float64           `json:"loan_eligibility_foir"`
	LoanEligibilityMultiplier float64           `json:"loan_eligibility_multiplier"`
	FinalEligibility          float64           `json:"final_eligibility"`
	Status                    EligibilityStatus `json:"status"`
	ShortfallMessage          string            `json:"shortfall_message,omitempty"`
}

// FOIREligibility computes the FOIR-based loan ceiling: the present value of
// an annuity of availableEMI over tenureMonths at the given annual rate.
// It is total: any degenerate input produces 0, never NaN or an error.
func FOIREligibility(availableEMI float64, tenureMonths int, roiPercent float64) float64 {
	availableEMI = sanitizeAmount(availableEMI)

	if tenureMonths <= 0 {
		return 0
	}

	monthlyRate := sanitizeAmount(roiPercent) / 1200
	n := float64(tenureMonths)

	if monthlyRate == 0 {
		return math.Round(availableEMI * n)
	}

	factor := math.Pow(1+monthlyRate, n)
	if factor == 1 {
		// Degenerate rate: the annuity formula would divide by zero
		return math.Round(availableEMI * n)
	}

	eligibility := availableEMI * (factor - 1) / (monthlyRate * factor)
	if math.IsNaN(eligibility) || math.IsInf(eligibility, 0) {
		return 0
	}

	return math.Round(eligibility)
}

// MultiplierEligibility computes the multiplier-based loan ceiling: net
// disposable income times the multiplier. A multiplier outside (0, 35] is
// treated as unset and yields 0.
func MultiplierEligibility(totalIncome, totalObligations, multiplier float64) float64 {
	if multiplier <= 0 || multiplier > maxValidMultiplier {
		return 0
	}

	disposable := totalIncome - totalObligations
	if disposable < 0 {
		disposable = 0
	}

	return math.Round(disposable * multiplier)
}

// ReconcileEligibility combines the two model outputs into the final
// eligibility and the verdict against the applicant's total outstanding
func ReconcileEligibility(foir, multiplier, totalOutstanding float64) (float64, EligibilityStatus, string) {
	var final float64

	switch {
	case foir > 0 && multiplier > 0:
		final = math.Min(foir, multiplier)
	case foir > 0:
		final = foir
	default:
		final = multiplier
	}

	status := StatusEligible
	var message string

	if totalOutstanding > 0 && final > 0 {
		if totalOutstanding > final {
			status = StatusNotEligible
			message = fmt.Sprintf("Shortfall of ₹%s: total outstanding ₹%s exceeds the final eligibility of ₹%s",
				FormatCurrency(totalOutstanding-final), FormatCurrency(totalOutstanding), FormatCurrency(final))
		} else {
			message = fmt.Sprintf("Congratulations! The final eligibility of ₹%s covers the total outstanding of ₹%s",
				FormatCurrency(final), FormatCurrency(totalOutstanding))
		}
	}

	return final, status, message
}

// Recompute derives the full eligibility result from the current state.
// Pure and synchronous: the caller invokes it after every mutation.
func Recompute(state EligibilityState) EligibilityResult {
	totalIncome := state.Income.TotalMonthlyIncome()
	totalObligations := TotalObligations(state.Rows)
	totalOutstanding := TotalOutstanding(state.Rows)

	foirAmount := totalIncome * sanitizeAmount(state.Params.FOIRPercent) / 100

	var availableEMI float64
	if state.Params.IsManualEMI {
		availableEMI = sanitizeAmount(state.Params.MonthlyEMICanPay)
	} else {
		availableEMI = foirAmount - totalObligations
		if availableEMI < 0 {
			availableEMI = 0
		}
	}

	foirEligibility := FOIREligibility(availableEMI, state.Params.TenureMonths, state.Params.ROIPercent)
	multiplierEligibility := MultiplierEligibility(totalIncome, totalObligations, state.Params.Multiplier)

	final, status, message := ReconcileEligibility(foirEligibility, multiplierEligibility, totalOutstanding)

	return EligibilityResult{
		TotalIncome:               totalIncome,
		TotalObligations:          math.Round(totalObligations),
		TotalOutstanding:          math.Round(totalOutstanding),
		FOIRAmount:                math.Round(foirAmount),
		AvailableEMI:              math.Round(availableEMI),
		LoanEligibilityFOIR:       foirEligibility,
		LoanEligibilityMultiplier: multiplierEligibility,
		FinalEligibility:          final,
		Status:                    status,
		ShortfallMessage:          message,
	}
}
