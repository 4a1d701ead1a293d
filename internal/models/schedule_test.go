package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonthlyInstallment_ZeroRate(t *testing.T) {
	assert.Equal(t, float64(1000), MonthlyInstallment(12000, 0, 12))
}

func TestMonthlyInstallment_Invalid(t *testing.T) {
	assert.Equal(t, float64(0), MonthlyInstallment(0, 12, 12))
	assert.Equal(t, float64(0), MonthlyInstallment(10000, 12, 0))
}

func TestGenerateIndicativeSchedule_ZeroRate(t *testing.T) {
	entries, summary := GenerateIndicativeSchedule(12000, 0, 12)

	require.Len(t, entries, 12)
	assert.Equal(t, float64(1000), summary.MonthlyEMI)
	assert.Equal(t, float64(12000), summary.TotalPrincipal)
	assert.Equal(t, float64(0), summary.TotalInterest)
	assert.Equal(t, float64(0), entries[11].Balance)
}

func TestGenerateIndicativeSchedule_BalanceReachesZero(t *testing.T) {
	entries, summary := GenerateIndicativeSchedule(500000, 10.5, 36)

	require.Len(t, entries, 36)

	// The last installment absorbs the rounding remainder
	assert.Equal(t, float64(0), entries[35].Balance)
	assert.Equal(t, float64(500000), summary.TotalPrincipal)
	assert.Greater(t, summary.TotalInterest, float64(0))
	assert.Equal(t, summary.TotalPrincipal+summary.TotalInterest, summary.TotalAmount)

	for i := 1; i < len(entries); i++ {
		assert.Less(t, entries[i].Balance, entries[i-1].Balance)
	}
}

func TestGenerateIndicativeSchedule_InvalidAmount(t *testing.T) {
	entries, summary := GenerateIndicativeSchedule(0, 10, 12)

	assert.Nil(t, entries)
	assert.Equal(t, ScheduleSummary{}, summary)
}
