package models

import "fmt"

// ObligationAction classifies how an existing loan participates in the
// eligibility workflow. The action is informational: every row's EMI and
// outstanding amount count toward the totals regardless of its action.
type ObligationAction string

const (
	ActionObligate        ObligationAction = "Obligate"
	ActionBalanceTransfer ObligationAction = "BT"
	ActionCoPay           ObligationAction = "CO-PAY"
	ActionNoPay           ObligationAction = "NO-PAY"
	ActionClosed          ObligationAction = "Closed"
)

// ObligationRow represents one existing loan or credit line the applicant
// is currently repaying
type ObligationRow struct {
	Product           string           `json:"product"`
	BankName          string           `json:"bank_name"`
	TenureMonths      int              `json:"tenure_months"`
	ROIPercent        float64          `json:"roi_percent"`
	TotalLoanAmount   float64          `json:"total_loan_amount"`
	OutstandingAmount float64          `json:"outstanding_amount"`
	MonthlyEMI        float64          `json:"monthly_emi"`
	Action            ObligationAction `json:"action"`
}

// NewObligationRow creates an empty obligation row with the default action
func NewObligationRow() ObligationRow {
	return ObligationRow{Action: ActionObligate}
}

// TotalObligations sums the monthly EMI across all rows. A malformed amount
// in one row counts as 0 for that row; the row itself is never dropped.
func TotalObligations(rows []ObligationRow) float64 {
	var total float64
	for _, row := range rows {
		total += sanitizeAmount(row.MonthlyEMI)
	}
	return total
}

// TotalOutstanding sums the outstanding amount across all rows
func TotalOutstanding(rows []ObligationRow) float64 {
	var total float64
	for _, row := range rows {
		total += sanitizeAmount(row.OutstandingAmount)
	}
	return total
}

// AddObligationRow appends an empty row
func AddObligationRow(rows []ObligationRow) []ObligationRow {
	out := make([]ObligationRow, 0, len(rows)+1)
	out = append(out, rows...)
	return append(out, NewObligationRow())
}

// RemoveObligationRow removes the row at the given index. Subsequent rows
// shift down by one; no stable row identity survives a deletion. An index
// out of range leaves the list unchanged.
func RemoveObligationRow(rows []ObligationRow, index int) []ObligationRow {
	if index < 0 || index >= len(rows) {
		return rows
	}

	out := make([]ObligationRow, 0, len(rows)-1)
	out = append(out, rows[:index]...)
	return append(out, rows[index+1:]...)
}

// UpdateObligationField sets a single field of a single row from its string
// form. Numeric fields pass through the parse-at-boundary coercion, so
// malformed input becomes 0 rather than an error. An unknown field name is
// a host programming error and is reported as such.
func UpdateObligationField(rows []ObligationRow, index int, field, value string) ([]ObligationRow, error) {
	if index < 0 || index >= len(rows) {
		return rows, fmt.Errorf("obligation row index %d out of range", index)
	}

	out := make([]ObligationRow, len(rows))
	copy(out, rows)
	row := &out[index]

	switch field {
	case "product":
		row.Product = value
	case "bank_name":
		row.BankName = value
	case "tenure_months":
		row.TenureMonths = ParseTenure(value)
	case "roi_percent":
		row.ROIPercent = ParsePercent(value)
	case "total_loan_amount":
		row.TotalLoanAmount = ParseCurrency(value)
	case "outstanding_amount":
		row.OutstandingAmount = ParseCurrency(value)
	case "monthly_emi":
		row.MonthlyEMI = ParseCurrency(value)
	case "action":
		row.Action = ObligationAction(value)
	default:
		return rows, fmt.Errorf("unknown obligation field: %s", field)
	}

	return out, nil
}
