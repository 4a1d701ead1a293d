package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"

	"crm-service/configs"
	"crm-service/internal/service"
	"crm-service/pkg/utils"
)

// AttendanceHandler handles attendance-related HTTP requests
type AttendanceHandler struct {
	attendanceService service.AttendanceService
	logger            *logrus.Logger
	config            *configs.Config
}

// NewAttendanceHandler creates a new AttendanceHandler
func NewAttendanceHandler(attendanceService service.AttendanceService, logger *logrus.Logger, config *configs.Config) *AttendanceHandler {
	return &AttendanceHandler{
		attendanceService: attendanceService,
		logger:            logger,
		config:            config,
	}
}

// CheckIn handles an employee check-in
func (h *AttendanceHandler) CheckIn(w http.ResponseWriter, r *http.Request) {
	var req struct {
		EmployeeID int    `json:"employee_id"`
		Location   string `json:"location"`
	}
	decoder := json.NewDecoder(r.Body)
	if err := decoder.Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}
	defer r.Body.Close()

	record, err := h.attendanceService.CheckIn(r.Context(), req.EmployeeID, req.Location)
	if err != nil {
		h.logger.Warnf("Failed to check in: %v", err)
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	utils.RespondWithSuccess(w, http.StatusOK, "checked in successfully", record)
}

// CheckOut handles an employee check-out
func (h *AttendanceHandler) CheckOut(w http.ResponseWriter, r *http.Request) {
	var req struct {
		EmployeeID int `json:"employee_id"`
	}
	decoder := json.NewDecoder(r.Body)
	if err := decoder.Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}
	defer r.Body.Close()

	record, err := h.attendanceService.CheckOut(r.Context(), req.EmployeeID)
	if err != nil {
		h.logger.Warnf("Failed to check out: %v", err)
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	utils.RespondWithSuccess(w, http.StatusOK, "checked out successfully", record)
}

// GetRecords handles listing attendance records for a date range
func (h *AttendanceHandler) GetRecords(w http.ResponseWriter, r *http.Request) {
	// Employee ID 0 means all employees
	employeeID := 0
	if idStr := r.URL.Query().Get("employee_id"); idStr != "" {
		id, err := strconv.Atoi(idStr)
		if err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, "invalid employee ID")
			return
		}
		employeeID = id
	}

	// Default range is the last 30 days
	now := time.Now()
	from := now.AddDate(0, 0, -30)
	to := now

	if fromStr := r.URL.Query().Get("from"); fromStr != "" {
		parsed, err := time.Parse("2006-01-02", fromStr)
		if err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, "invalid from date, expected YYYY-MM-DD")
			return
		}
		from = parsed
	}

	if toStr := r.URL.Query().Get("to"); toStr != "" {
		parsed, err := time.Parse("2006-01-02", toStr)
		if err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, "invalid to date, expected YYYY-MM-DD")
			return
		}
		to = parsed
	}

	records, err := h.attendanceService.GetRecords(r.Context(), employeeID, from, to)
	if err != nil {
		h.logger.Warnf("Failed to get attendance records: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "failed to retrieve attendance records")
		return
	}

	utils.RespondWithSuccess(w, http.StatusOK, "attendance records retrieved successfully", map[string]interface{}{
		"records": records,
		"count":   len(records),
	})
}
