package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"

	"crm-service/configs"
	"crm-service/internal/service"
	"crm-service/pkg/utils"
)

// AnalyticsHandler handles analytics-related HTTP requests
type AnalyticsHandler struct {
	analyticsService service.AnalyticsService
	logger           *logrus.Logger
	config           *configs.Config
}

// NewAnalyticsHandler creates a new AnalyticsHandler
func NewAnalyticsHandler(analyticsService service.AnalyticsService, logger *logrus.Logger, config *configs.Config) *AnalyticsHandler {
	return &AnalyticsHandler{
		analyticsService: analyticsService,
		logger:           logger,
		config:           config,
	}
}

// GetLeadStatistics handles retrieving pipeline statistics
func (h *AnalyticsHandler) GetLeadStatistics(w http.ResponseWriter, r *http.Request) {
	// Get period from query parameters (default is "month")
	period := r.URL.Query().Get("period")
	if period == "" {
		period = "month"
	}

	// Valid periods: week, month, quarter, year
	validPeriods := map[string]bool{
		"week":    true,
		"month":   true,
		"quarter": true,
		"year":    true,
	}

	if !validPeriods[period] {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid period. Must be one of: week, month, quarter, year")
		return
	}

	// Get the statistics
	statistics, err := h.analyticsService.GetLeadStatistics(r.Context(), period)
	if err != nil {
		h.logger.Warnf("Failed to get statistics: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "failed to get statistics")
		return
	}

	// Return success response
	utils.RespondWithSuccess(w, http.StatusOK, "statistics retrieved successfully", statistics)
}
