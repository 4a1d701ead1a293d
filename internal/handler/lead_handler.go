package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"crm-service/configs"
	"crm-service/internal/models"
	"crm-service/internal/service"
	"crm-service/pkg/utils"
)

// LeadHandler handles lead-related HTTP requests
type LeadHandler struct {
	leadService service.LeadService
	logger      *logrus.Logger
	config      *configs.Config
}

// NewLeadHandler creates a new LeadHandler
func NewLeadHandler(leadService service.LeadService, logger *logrus.Logger, config *configs.Config) *LeadHandler {
	return &LeadHandler{
		leadService: leadService,
		logger:      logger,
		config:      config,
	}
}

// Create handles creating a new lead
func (h *LeadHandler) Create(w http.ResponseWriter, r *http.Request) {
	var leadCreate models.LeadCreate
	decoder := json.NewDecoder(r.Body)
	if err := decoder.Decode(&leadCreate); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}
	defer r.Body.Close()

	id, err := h.leadService.Create(r.Context(), &leadCreate)
	if err != nil {
		h.logger.Warnf("Failed to create lead: %v", err)
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	utils.RespondWithSuccess(w, http.StatusCreated, "lead created successfully", map[string]interface{}{
		"lead_id": id,
	})
}

// GetByID handles retrieving a single lead
func (h *LeadHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := strconv.Atoi(vars["id"])
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid lead ID")
		return
	}

	lead, err := h.leadService.GetByID(r.Context(), id)
	if err != nil {
		h.logger.Warnf("Failed to get lead: %v", err)
		utils.RespondWithError(w, http.StatusNotFound, "lead not found")
		return
	}

	utils.RespondWithSuccess(w, http.StatusOK, "lead retrieved successfully", lead)
}

// GetAll handles listing leads, optionally filtered by status
func (h *LeadHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	status := models.LeadStatus(strings.ToUpper(r.URL.Query().Get("status")))
	if status != "" && !models.ValidLeadStatus(status) {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid lead status")
		return
	}

	leads, err := h.leadService.GetAll(r.Context(), status)
	if err != nil {
		h.logger.Warnf("Failed to get leads: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "failed to retrieve leads")
		return
	}

	utils.RespondWithSuccess(w, http.StatusOK, "leads retrieved successfully", map[string]interface{}{
		"leads": leads,
		"count": len(leads),
	})
}

// Update handles updating an existing lead
func (h *LeadHandler) Update(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := strconv.Atoi(vars["id"])
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid lead ID")
		return
	}

	var lead models.Lead
	decoder := json.NewDecoder(r.Body)
	if err := decoder.Decode(&lead); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}
	defer r.Body.Close()

	lead.ID = id

	if err := h.leadService.Update(r.Context(), &lead); err != nil {
		h.logger.Warnf("Failed to update lead: %v", err)
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	utils.RespondWithSuccess(w, http.StatusOK, "lead updated successfully", nil)
}

// UpdateStatus handles moving a lead along the pipeline
func (h *LeadHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := strconv.Atoi(vars["id"])
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid lead ID")
		return
	}

	var req struct {
		Status models.LeadStatus `json:"status"`
	}
	decoder := json.NewDecoder(r.Body)
	if err := decoder.Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}
	defer r.Body.Close()

	if err := h.leadService.UpdateStatus(r.Context(), id, req.Status); err != nil {
		h.logger.Warnf("Failed to update lead status: %v", err)
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	utils.RespondWithSuccess(w, http.StatusOK, "lead status updated successfully", nil)
}

// Assign handles assigning a lead to an employee
func (h *LeadHandler) Assign(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := strconv.Atoi(vars["id"])
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid lead ID")
		return
	}

	var req struct {
		EmployeeID int `json:"employee_id"`
	}
	decoder := json.NewDecoder(r.Body)
	if err := decoder.Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}
	defer r.Body.Close()

	if err := h.leadService.Assign(r.Context(), id, req.EmployeeID); err != nil {
		h.logger.Warnf("Failed to assign lead: %v", err)
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	utils.RespondWithSuccess(w, http.StatusOK, "lead assigned successfully", nil)
}
