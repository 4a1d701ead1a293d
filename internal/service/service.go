package service

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"crm-service/configs"
	"crm-service/internal/models"
	"crm-service/internal/repository"
)

// UserService defines methods for user service
type UserService interface {
	Register(ctx context.Context, user *models.UserRegistration) (int, error)
	Login(ctx context.Context, login *models.UserLogin) (*models.TokenResponse, error)
	GetByID(ctx context.Context, id int) (*models.User, error)
}

// LeadService defines methods for lead service
type LeadService interface {
	Create(ctx context.Context, lead *models.LeadCreate) (int, error)
	GetByID(ctx context.Context, id int) (*models.Lead, error)
	GetAll(ctx context.Context, status models.LeadStatus) ([]*models.Lead, error)
	Update(ctx context.Context, lead *models.Lead) error
	UpdateStatus(ctx context.Context, id int, status models.LeadStatus) error
	Assign(ctx context.Context, leadID int, employeeID int) error
}

// EmployeeService defines methods for employee service
type EmployeeService interface {
	Create(ctx context.Context, employee *models.EmployeeCreate) (int, error)
	GetByID(ctx context.Context, id int) (*models.Employee, error)
	GetAll(ctx context.Context, activeOnly bool) ([]*models.Employee, error)
	Update(ctx context.Context, employee *models.Employee) error
	Deactivate(ctx context.Context, id int) error
}

// EligibilityService defines methods for the eligibility calculator service
type EligibilityService interface {
	Calculate(ctx context.Context, state models.EligibilityState, prefillROI bool) (models.EligibilityState, models.EligibilityResult, error)
	SaveSnapshot(ctx context.Context, leadID int, userID int, state models.EligibilityState) (*models.EligibilitySnapshot, error)
	GetSnapshots(ctx context.Context, leadID int) ([]*models.EligibilitySnapshot, error)
	GetSchedule(ctx context.Context, ref string) ([]models.ScheduleEntry, models.ScheduleSummary, error)
}

// NotificationService defines methods for notification service
type NotificationService interface {
	Notify(ctx context.Context, userID int, title, body string, category models.NotificationCategory) (int, error)
	GetForUser(ctx context.Context, userID int) ([]models.NotificationView, int, error)
	MarkRead(ctx context.Context, userID int, notificationID int) error
	MarkAllRead(ctx context.Context, userID int) error
	Remove(ctx context.Context, userID int, notificationID int) error
	Delete(ctx context.Context, userID int, notificationID int) error
	ExpireOld(ctx context.Context) error
}

// AttendanceService defines methods for attendance service
type AttendanceService interface {
	CheckIn(ctx context.Context, employeeID int, location string) (*models.AttendanceRecord, error)
	CheckOut(ctx context.Context, employeeID int) (*models.AttendanceRecord, error)
	GetRecords(ctx context.Context, employeeID int, from, to time.Time) ([]*models.AttendanceRecord, error)
}

// RateService defines methods for the benchmark lending rate service
type RateService interface {
	GetBenchmarkRate(ctx context.Context) (float64, error)
	Refresh(ctx context.Context) error
}

// AnalyticsService defines methods for CRM analytics
type AnalyticsService interface {
	GetLeadStatistics(ctx context.Context, period string) (map[string]interface{}, error)
}

// EmailService defines methods for email service
type EmailService interface {
	SendEligibilityDecision(ctx context.Context, lead *models.Lead, result *models.EligibilityResult) error
	SendLeadAssigned(ctx context.Context, employee *models.Employee, lead *models.Lead) error
}

// Dependencies contains dependencies for services
type Dependencies struct {
	Repos  *repository.Repository
	Logger *logrus.Logger
	Config *configs.Config
}

// Service is a composition of all services
type Service struct {
	User         UserService
	Lead         LeadService
	Employee     EmployeeService
	Eligibility  EligibilityService
	Notification NotificationService
	Attendance   AttendanceService
	Rate         RateService
	Analytics    AnalyticsService
	Email        EmailService
}

// NewService creates a new service with all sub-services
func NewService(deps Dependencies) *Service {
	email := NewEmailService(deps)
	notification := NewNotificationService(deps)
	rate := NewRateService(deps)

	return &Service{
		User:         NewUserService(deps),
		Lead:         NewLeadService(deps, notification, email),
		Employee:     NewEmployeeService(deps),
		Eligibility:  NewEligibilityService(deps, rate, notification, email),
		Notification: notification,
		Attendance:   NewAttendanceService(deps),
		Rate:         rate,
		Analytics:    NewAnalyticsService(deps),
		Email:        email,
	}
}
