package models

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTotals_Empty(t *testing.T) {
	assert.Equal(t, float64(0), TotalObligations(nil))
	assert.Equal(t, float64(0), TotalOutstanding(nil))
}

func TestTotals(t *testing.T) {
	rows := []ObligationRow{
		{MonthlyEMI: 5000, OutstandingAmount: 200000},
		{MonthlyEMI: 3000, OutstandingAmount: 100000},
	}

	assert.Equal(t, float64(8000), TotalObligations(rows))
	assert.Equal(t, float64(300000), TotalOutstanding(rows))
}

func TestTotals_MalformedRowCountsAsZero(t *testing.T) {
	rows := []ObligationRow{
		{MonthlyEMI: 5000},
		{MonthlyEMI: math.NaN()},
		{MonthlyEMI: -3000},
	}

	assert.Equal(t, float64(5000), TotalObligations(rows))
}

func TestTotals_ActionDoesNotAffectTotals(t *testing.T) {
	rows := []ObligationRow{
		{MonthlyEMI: 5000, Action: ActionObligate},
		{MonthlyEMI: 2000, Action: ActionClosed},
		{MonthlyEMI: 1000, Action: ActionNoPay},
	}

	assert.Equal(t, float64(8000), TotalObligations(rows))
}

func TestAddObligationRow(t *testing.T) {
	rows := AddObligationRow(nil)

	require.Len(t, rows, 1)
	assert.Equal(t, ActionObligate, rows[0].Action)
}

func TestRemoveObligationRow(t *testing.T) {
	rows := []ObligationRow{
		{Product: "first"},
		{Product: "second"},
		{Product: "third"},
	}

	out := RemoveObligationRow(rows, 1)

	require.Len(t, out, 2)
	assert.Equal(t, "first", out[0].Product)
	assert.Equal(t, "third", out[1].Product)
}

func TestRemoveObligationRow_OutOfRange(t *testing.T) {
	rows := []ObligationRow{{Product: "only"}}

	assert.Len(t, RemoveObligationRow(rows, -1), 1)
	assert.Len(t, RemoveObligationRow(rows, 1), 1)
}

func TestUpdateObligationField(t *testing.T) {
	rows := []ObligationRow{NewObligationRow()}

	rows, err := UpdateObligationField(rows, 0, "monthly_emi", "₹ 5,000")
	require.NoError(t, err)
	assert.Equal(t, float64(5000), rows[0].MonthlyEMI)

	rows, err = UpdateObligationField(rows, 0, "roi_percent", "10.5%")
	require.NoError(t, err)
	assert.Equal(t, 10.5, rows[0].ROIPercent)

	rows, err = UpdateObligationField(rows, 0, "tenure_months", "36 Months")
	require.NoError(t, err)
	assert.Equal(t, 36, rows[0].TenureMonths)

	rows, err = UpdateObligationField(rows, 0, "bank_name", "HDFC")
	require.NoError(t, err)
	assert.Equal(t, "HDFC", rows[0].BankName)

	rows, err = UpdateObligationField(rows, 0, "action", "Closed")
	require.NoError(t, err)
	assert.Equal(t, ActionClosed, rows[0].Action)
}

func TestUpdateObligationField_MalformedNumericCoercesToZero(t *testing.T) {
	rows := []ObligationRow{{MonthlyEMI: 5000}}

	rows, err := UpdateObligationField(rows, 0, "monthly_emi", "garbage")
	require.NoError(t, err)
	assert.Equal(t, float64(0), rows[0].MonthlyEMI)
}

func TestUpdateObligationField_DoesNotMutateInput(t *testing.T) {
	rows := []ObligationRow{{MonthlyEMI: 5000}}

	_, err := UpdateObligationField(rows, 0, "monthly_emi", "9000")
	require.NoError(t, err)

	assert.Equal(t, float64(5000), rows[0].MonthlyEMI)
}

func TestUpdateObligationField_IndexOutOfRange(t *testing.T) {
	_, err := UpdateObligationField(nil, 0, "monthly_emi", "1000")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "out of range")
}
