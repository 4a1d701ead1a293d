package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crm-service/internal/models"
	"crm-service/internal/repository"
)

func newEligibilityService(leads *mockLeadRepo, snapshots *mockSnapshotRepo, notifications *mockNotificationRepo, rates *mockRateService) *EligibilitySvc {
	repos := &repository.Repository{
		Lead:              leads,
		Snapshot:          snapshots,
		Notification:      notifications,
		NotificationState: &mockNotificationStateRepo{},
	}
	deps := testDeps(repos)

	return NewEligibilityService(deps, rates, NewNotificationService(deps), &mockEmailService{})
}

func calculatorState() models.EligibilityState {
	return models.EligibilityState{}.
		WithIncome(models.IncomeProfile{Salary: 60000}).
		WithParameters(models.EligibilityParameters{
			FOIRPercent:  50,
			TenureMonths: 60,
			ROIPercent:   12,
			Multiplier:   20,
		})
}

func TestCalculate(t *testing.T) {
	svc := newEligibilityService(&mockLeadRepo{}, &mockSnapshotRepo{}, &mockNotificationRepo{}, &mockRateService{})

	state, result, err := svc.Calculate(context.Background(), calculatorState(), false)

	require.NoError(t, err)
	assert.Equal(t, float64(60000), result.TotalIncome)
	assert.Equal(t, float64(30000), result.AvailableEMI)
	assert.Equal(t, float64(5), state.Params.TenureYears)
}

func TestCalculate_PrefillsBenchmarkRate(t *testing.T) {
	svc := newEligibilityService(&mockLeadRepo{}, &mockSnapshotRepo{}, &mockNotificationRepo{}, &mockRateService{rate: 8.5})

	state := calculatorState()
	params := state.Params
	params.ROIPercent = 0
	state = state.WithParameters(params)

	state, _, err := svc.Calculate(context.Background(), state, true)

	require.NoError(t, err)
	assert.Equal(t, 8.5, state.Params.ROIPercent)
}

func TestCalculate_DoesNotOverrideSuppliedRate(t *testing.T) {
	svc := newEligibilityService(&mockLeadRepo{}, &mockSnapshotRepo{}, &mockNotificationRepo{}, &mockRateService{rate: 8.5})

	state, _, err := svc.Calculate(context.Background(), calculatorState(), true)

	require.NoError(t, err)
	assert.Equal(t, float64(12), state.Params.ROIPercent)
}

func TestCalculate_RateErrorFallsThrough(t *testing.T) {
	svc := newEligibilityService(&mockLeadRepo{}, &mockSnapshotRepo{}, &mockNotificationRepo{}, &mockRateService{err: errors.New("feed down")})

	state := models.EligibilityState{}.WithIncome(models.IncomeProfile{Salary: 60000})

	state, _, err := svc.Calculate(context.Background(), state, true)

	require.NoError(t, err)
	assert.Equal(t, float64(0), state.Params.ROIPercent)
}

func TestSaveSnapshot(t *testing.T) {
	leads := &mockLeadRepo{leads: map[int]*models.Lead{
		5: {ID: 5, Name: "Asha Rao", Phone: "9876543210"},
	}}
	snapshots := &mockSnapshotRepo{}
	notifications := &mockNotificationRepo{}

	svc := newEligibilityService(leads, snapshots, notifications, &mockRateService{})

	snapshot, err := svc.SaveSnapshot(context.Background(), 5, 2, calculatorState())

	require.NoError(t, err)
	assert.Equal(t, 42, snapshot.ID)
	assert.NotEmpty(t, snapshot.Ref)
	assert.Equal(t, 5, snapshot.LeadID)
	assert.Equal(t, 2, snapshot.CreatedBy)

	// The result is always recomputed server-side before persisting
	require.NotNil(t, snapshots.created)
	assert.Equal(t, float64(60000), snapshots.created.Result.TotalIncome)
	assert.Equal(t, models.StatusEligible, snapshots.created.Result.Status)

	require.Len(t, notifications.created, 1)
	assert.Equal(t, models.NotificationCategoryEligibility, notifications.created[0].Category)
	assert.Equal(t, 2, notifications.created[0].UserID)
}

func TestSaveSnapshot_LeadNotFound(t *testing.T) {
	svc := newEligibilityService(&mockLeadRepo{}, &mockSnapshotRepo{}, &mockNotificationRepo{}, &mockRateService{})

	_, err := svc.SaveSnapshot(context.Background(), 99, 2, calculatorState())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "lead not found")
}

func TestGetSchedule(t *testing.T) {
	snapshots := &mockSnapshotRepo{byRef: map[string]*models.EligibilitySnapshot{
		"abc": {
			Ref:    "abc",
			State:  calculatorState(),
			Result: models.EligibilityResult{FinalEligibility: 600000},
		},
	}}

	svc := newEligibilityService(&mockLeadRepo{}, snapshots, &mockNotificationRepo{}, &mockRateService{})

	entries, summary, err := svc.GetSchedule(context.Background(), "abc")

	require.NoError(t, err)
	assert.Len(t, entries, 60)
	assert.Equal(t, float64(600000), summary.TotalPrincipal)
	assert.Equal(t, float64(0), entries[59].Balance)
}

func TestGetSchedule_NoEligibleAmount(t *testing.T) {
	snapshots := &mockSnapshotRepo{byRef: map[string]*models.EligibilitySnapshot{
		"abc": {Ref: "abc", State: calculatorState()},
	}}

	svc := newEligibilityService(&mockLeadRepo{}, snapshots, &mockNotificationRepo{}, &mockRateService{})

	_, _, err := svc.GetSchedule(context.Background(), "abc")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no eligible amount")
}

func TestGetSchedule_UnknownRef(t *testing.T) {
	svc := newEligibilityService(&mockLeadRepo{}, &mockSnapshotRepo{}, &mockNotificationRepo{}, &mockRateService{})

	_, _, err := svc.GetSchedule(context.Background(), "missing")

	require.Error(t, err)
}
