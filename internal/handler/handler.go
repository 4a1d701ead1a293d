package handler

import (
	"github.com/sirupsen/logrus"

	"crm-service/configs"
	"crm-service/internal/service"
)

// Dependencies contains handler dependencies
type Dependencies struct {
	Services *service.Service
	Logger   *logrus.Logger
	Config   *configs.Config
}

// Handler contains all HTTP handlers for the application
type Handler struct {
	User         *UserHandler
	Lead         *LeadHandler
	Employee     *EmployeeHandler
	Eligibility  *EligibilityHandler
	Notification *NotificationHandler
	Attendance   *AttendanceHandler
	Analytics    *AnalyticsHandler
}

// NewHandler creates a new Handler with all subhandlers
func NewHandler(deps Dependencies) *Handler {
	return &Handler{
		User:         NewUserHandler(deps.Services.User, deps.Logger, deps.Config),
		Lead:         NewLeadHandler(deps.Services.Lead, deps.Logger, deps.Config),
		Employee:     NewEmployeeHandler(deps.Services.Employee, deps.Logger, deps.Config),
		Eligibility:  NewEligibilityHandler(deps.Services.Eligibility, deps.Services.Rate, deps.Logger, deps.Config),
		Notification: NewNotificationHandler(deps.Services.Notification, deps.Logger, deps.Config),
		Attendance:   NewAttendanceHandler(deps.Services.Attendance, deps.Logger, deps.Config),
		Analytics:    NewAnalyticsHandler(deps.Services.Analytics, deps.Logger, deps.Config),
	}
}
