package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"crm-service/configs"
	"crm-service/internal/models"
	"crm-service/internal/service"
	"crm-service/pkg/utils"
)

// EligibilityHandler handles eligibility calculator HTTP requests
type EligibilityHandler struct {
	eligibilityService service.EligibilityService
	rateService        service.RateService
	logger             *logrus.Logger
	config             *configs.Config
}

// NewEligibilityHandler creates a new EligibilityHandler
func NewEligibilityHandler(eligibilityService service.EligibilityService, rateService service.RateService, logger *logrus.Logger, config *configs.Config) *EligibilityHandler {
	return &EligibilityHandler{
		eligibilityService: eligibilityService,
		rateService:        rateService,
		logger:             logger,
		config:             config,
	}
}

// Calculate handles a stateless eligibility calculation.
// The client posts the full calculator state and gets back the
// normalized state plus the computed result.
func (h *EligibilityHandler) Calculate(w http.ResponseWriter, r *http.Request) {
	var state models.EligibilityState
	decoder := json.NewDecoder(r.Body)
	if err := decoder.Decode(&state); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}
	defer r.Body.Close()

	prefillROI := r.URL.Query().Get("prefill_roi") == "true"

	normalized, result, err := h.eligibilityService.Calculate(r.Context(), state, prefillROI)
	if err != nil {
		h.logger.Warnf("Failed to calculate eligibility: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "failed to calculate eligibility")
		return
	}

	utils.RespondWithSuccess(w, http.StatusOK, "eligibility calculated successfully", map[string]interface{}{
		"state":  normalized,
		"result": result,
	})
}

// SaveSnapshot handles persisting an eligibility snapshot for a lead
func (h *EligibilityHandler) SaveSnapshot(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("user_id").(int)
	if !ok {
		utils.RespondWithError(w, http.StatusInternalServerError, "user ID not found in context")
		return
	}

	vars := mux.Vars(r)
	leadID, err := strconv.Atoi(vars["id"])
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid lead ID")
		return
	}

	var state models.EligibilityState
	decoder := json.NewDecoder(r.Body)
	if err := decoder.Decode(&state); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}
	defer r.Body.Close()

	snapshot, err := h.eligibilityService.SaveSnapshot(r.Context(), leadID, userID, state)
	if err != nil {
		h.logger.Warnf("Failed to save eligibility snapshot: %v", err)
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	utils.RespondWithSuccess(w, http.StatusCreated, "eligibility snapshot saved successfully", snapshot)
}

// GetSnapshots handles listing saved snapshots for a lead
func (h *EligibilityHandler) GetSnapshots(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	leadID, err := strconv.Atoi(vars["id"])
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid lead ID")
		return
	}

	snapshots, err := h.eligibilityService.GetSnapshots(r.Context(), leadID)
	if err != nil {
		h.logger.Warnf("Failed to get eligibility snapshots: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "failed to retrieve snapshots")
		return
	}

	utils.RespondWithSuccess(w, http.StatusOK, "snapshots retrieved successfully", map[string]interface{}{
		"snapshots": snapshots,
		"count":     len(snapshots),
	})
}

// GetSchedule handles generating an indicative repayment schedule
// for a saved snapshot
func (h *EligibilityHandler) GetSchedule(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	ref := vars["ref"]
	if ref == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid snapshot reference")
		return
	}

	entries, summary, err := h.eligibilityService.GetSchedule(r.Context(), ref)
	if err != nil {
		h.logger.Warnf("Failed to generate schedule: %v", err)
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	utils.RespondWithSuccess(w, http.StatusOK, "schedule generated successfully", map[string]interface{}{
		"entries": entries,
		"summary": summary,
	})
}

// GetBenchmarkRate handles retrieving the current benchmark lending rate
func (h *EligibilityHandler) GetBenchmarkRate(w http.ResponseWriter, r *http.Request) {
	rate, err := h.rateService.GetBenchmarkRate(r.Context())
	if err != nil {
		h.logger.Warnf("Failed to get benchmark rate: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "failed to retrieve benchmark rate")
		return
	}

	utils.RespondWithSuccess(w, http.StatusOK, "benchmark rate retrieved successfully", map[string]interface{}{
		"rate": rate,
	})
}
