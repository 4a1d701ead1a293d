package service

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"crm-service/configs"
	"crm-service/internal/models"
	"crm-service/internal/repository"
)

// AnalyticsSvc is an implementation of the service.AnalyticsService interface
type AnalyticsSvc struct {
	repos  *repository.Repository
	logger *logrus.Logger
	config *configs.Config
}

// NewAnalyticsService creates a new AnalyticsSvc
func NewAnalyticsService(deps Dependencies) *AnalyticsSvc {
	return &AnalyticsSvc{
		repos:  deps.Repos,
		logger: deps.Logger,
		config: deps.Config,
	}
}

// GetLeadStatistics gets pipeline statistics for a period
func (s *AnalyticsSvc) GetLeadStatistics(ctx context.Context, period string) (map[string]interface{}, error) {
	// Define time range based on period
	now := time.Now()
	var startDate time.Time

	switch period {
	case "week":
		startDate = now.AddDate(0, 0, -7)
	case "month":
		startDate = now.AddDate(0, -1, 0)
	case "quarter":
		startDate = now.AddDate(0, -3, 0)
	case "year":
		startDate = now.AddDate(-1, 0, 0)
	default:
		// Default to month
		period = "month"
		startDate = now.AddDate(0, -1, 0)
	}

	counts, err := s.repos.Lead.CountByStatus(ctx, startDate)
	if err != nil {
		return nil, fmt.Errorf("failed to count leads: %w", err)
	}

	total := 0
	for _, count := range counts {
		total += count
	}

	disbursed := counts[models.LeadStatusDisbursed]

	var conversionRate float64
	if total > 0 {
		conversionRate = float64(disbursed) / float64(total) * 100
	}

	eligible, notEligible, err := s.repos.Snapshot.CountByVerdict(ctx, startDate)
	if err != nil {
		return nil, fmt.Errorf("failed to count snapshots: %w", err)
	}

	stats := map[string]interface{}{
		"period":                 period,
		"start_date":             startDate.Format("2006-01-02"),
		"end_date":               now.Format("2006-01-02"),
		"total_leads":            total,
		"leads_by_status":        counts,
		"conversion_rate":        conversionRate,
		"snapshots_eligible":     eligible,
		"snapshots_not_eligible": notEligible,
	}

	return stats, nil
}
