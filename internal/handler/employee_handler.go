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

// EmployeeHandler handles employee-related HTTP requests
type EmployeeHandler struct {
	employeeService service.EmployeeService
	logger          *logrus.Logger
	config          *configs.Config
}

// NewEmployeeHandler creates a new EmployeeHandler
func NewEmployeeHandler(employeeService service.EmployeeService, logger *logrus.Logger, config *configs.Config) *EmployeeHandler {
	return &EmployeeHandler{
		employeeService: employeeService,
		logger:          logger,
		config:          config,
	}
}

// Create handles creating a new employee
func (h *EmployeeHandler) Create(w http.ResponseWriter, r *http.Request) {
	var employeeCreate models.EmployeeCreate
	decoder := json.NewDecoder(r.Body)
	if err := decoder.Decode(&employeeCreate); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}
	defer r.Body.Close()

	id, err := h.employeeService.Create(r.Context(), &employeeCreate)
	if err != nil {
		h.logger.Warnf("Failed to create employee: %v", err)
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	utils.RespondWithSuccess(w, http.StatusCreated, "employee created successfully", map[string]interface{}{
		"employee_id": id,
	})
}

// GetByID handles retrieving a single employee
func (h *EmployeeHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := strconv.Atoi(vars["id"])
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid employee ID")
		return
	}

	employee, err := h.employeeService.GetByID(r.Context(), id)
	if err != nil {
		h.logger.Warnf("Failed to get employee: %v", err)
		utils.RespondWithError(w, http.StatusNotFound, "employee not found")
		return
	}

	utils.RespondWithSuccess(w, http.StatusOK, "employee retrieved successfully", employee)
}

// GetAll handles listing employees
func (h *EmployeeHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	activeOnly := r.URL.Query().Get("active") == "true"

	employees, err := h.employeeService.GetAll(r.Context(), activeOnly)
	if err != nil {
		h.logger.Warnf("Failed to get employees: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "failed to retrieve employees")
		return
	}

	utils.RespondWithSuccess(w, http.StatusOK, "employees retrieved successfully", map[string]interface{}{
		"employees": employees,
		"count":     len(employees),
	})
}

// Update handles updating an existing employee
func (h *EmployeeHandler) Update(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := strconv.Atoi(vars["id"])
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid employee ID")
		return
	}

	var employee models.Employee
	decoder := json.NewDecoder(r.Body)
	if err := decoder.Decode(&employee); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}
	defer r.Body.Close()

	employee.ID = id

	if err := h.employeeService.Update(r.Context(), &employee); err != nil {
		h.logger.Warnf("Failed to update employee: %v", err)
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	utils.RespondWithSuccess(w, http.StatusOK, "employee updated successfully", nil)
}

// Deactivate handles deactivating an employee
func (h *EmployeeHandler) Deactivate(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := strconv.Atoi(vars["id"])
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid employee ID")
		return
	}

	if err := h.employeeService.Deactivate(r.Context(), id); err != nil {
		h.logger.Warnf("Failed to deactivate employee: %v", err)
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	utils.RespondWithSuccess(w, http.StatusOK, "employee deactivated successfully", nil)
}
