package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"crm-service/configs"
	"crm-service/internal/models"
	"crm-service/internal/repository"
)

// EligibilitySvc is an implementation of the service.EligibilityService interface.
// The calculation itself is pure and lives in the models package; this
// service adds rate prefill, persistence of snapshots and notifications.
type EligibilitySvc struct {
	repos         *repository.Repository
	logger        *logrus.Logger
	config        *configs.Config
	rates         RateService
	notifications NotificationService
	email         EmailService
}

// NewEligibilityService creates a new EligibilitySvc
func NewEligibilityService(deps Dependencies, rates RateService, notifications NotificationService, email EmailService) *EligibilitySvc {
	return &EligibilitySvc{
		repos:         deps.Repos,
		logger:        deps.Logger,
		config:        deps.Config,
		rates:         rates,
		notifications: notifications,
		email:         email,
	}
}

// Calculate normalizes the state and recomputes the eligibility result.
// With prefillROI set and no rate supplied, the benchmark lending rate is
// filled in before computing.
func (s *EligibilitySvc) Calculate(ctx context.Context, state models.EligibilityState, prefillROI bool) (models.EligibilityState, models.EligibilityResult, error) {
	state = state.WithParameters(state.Params)

	if prefillROI && state.Params.ROIPercent == 0 {
		rate, err := s.rates.GetBenchmarkRate(ctx)
		if err != nil {
			// The calculator must stay total: fall through with rate 0
			s.logger.Warnf("Failed to prefill benchmark rate: %v", err)
		} else {
			params := state.Params
			params.ROIPercent = rate
			state = state.WithParameters(params)
		}
	}

	return state, models.Recompute(state), nil
}

// SaveSnapshot recomputes the result server-side and persists the full
// calculation as a snapshot against the lead. The client may have shown its
// own numbers; they are never trusted or stored.
func (s *EligibilitySvc) SaveSnapshot(ctx context.Context, leadID int, userID int, state models.EligibilityState) (*models.EligibilitySnapshot, error) {
	lead, err := s.repos.Lead.GetByID(ctx, leadID)
	if err != nil {
		return nil, fmt.Errorf("lead not found: %w", err)
	}

	state = state.WithParameters(state.Params)
	result := models.Recompute(state)

	snapshot := &models.EligibilitySnapshot{
		Ref:       uuid.NewString(),
		LeadID:    leadID,
		State:     state,
		Result:    result,
		CreatedBy: userID,
	}

	id, err := s.repos.Snapshot.Create(ctx, snapshot)
	if err != nil {
		return nil, fmt.Errorf("failed to save snapshot: %w", err)
	}
	snapshot.ID = id

	s.logger.Infof("Eligibility snapshot %s saved for lead %d: %s, final eligibility %.0f",
		snapshot.Ref, leadID, result.Status, result.FinalEligibility)

	if _, err := s.notifications.Notify(ctx, userID,
		fmt.Sprintf("Eligibility saved for %s", lead.Name),
		fmt.Sprintf("Verdict: %s, final eligibility ₹%s", result.Status, models.FormatCurrency(result.FinalEligibility)),
		models.NotificationCategoryEligibility,
	); err != nil {
		s.logger.Warnf("Failed to create eligibility notification: %v", err)
	}

	// Send the decision email without blocking the save
	go func() {
		ctx := context.Background()
		if err := s.email.SendEligibilityDecision(ctx, lead, &result); err != nil {
			s.logger.Warnf("Failed to send eligibility decision email: %v", err)
		}
	}()

	return snapshot, nil
}

// GetSnapshots gets all snapshots for a lead
func (s *EligibilitySvc) GetSnapshots(ctx context.Context, leadID int) ([]*models.EligibilitySnapshot, error) {
	snapshots, err := s.repos.Snapshot.GetByLeadID(ctx, leadID)
	if err != nil {
		return nil, fmt.Errorf("failed to get snapshots: %w", err)
	}

	return snapshots, nil
}

// GetSchedule generates the indicative repayment schedule for a snapshot's
// final eligible amount at the snapshot's rate and tenure
func (s *EligibilitySvc) GetSchedule(ctx context.Context, ref string) ([]models.ScheduleEntry, models.ScheduleSummary, error) {
	snapshot, err := s.repos.Snapshot.GetByRef(ctx, ref)
	if err != nil {
		return nil, models.ScheduleSummary{}, fmt.Errorf("failed to get snapshot: %w", err)
	}

	if snapshot.Result.FinalEligibility <= 0 {
		return nil, models.ScheduleSummary{}, errors.New("snapshot has no eligible amount to amortize")
	}

	entries, summary := models.GenerateIndicativeSchedule(
		snapshot.Result.FinalEligibility,
		snapshot.State.Params.ROIPercent,
		snapshot.State.Params.TenureMonths,
	)

	return entries, summary, nil
}
