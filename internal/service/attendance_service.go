package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"crm-service/configs"
	"crm-service/internal/models"
	"crm-service/internal/repository"
)

// AttendanceSvc is an implementation of the service.AttendanceService interface
type AttendanceSvc struct {
	repos  *repository.Repository
	logger *logrus.Logger
	config *configs.Config
}

// NewAttendanceService creates a new AttendanceSvc
func NewAttendanceService(deps Dependencies) *AttendanceSvc {
	return &AttendanceSvc{
		repos:  deps.Repos,
		logger: deps.Logger,
		config: deps.Config,
	}
}

// CheckIn records an employee's check-in for today. A second check-in on
// the same day returns the existing record unchanged.
func (s *AttendanceSvc) CheckIn(ctx context.Context, employeeID int, location string) (*models.AttendanceRecord, error) {
	employee, err := s.repos.Employee.GetByID(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to get employee: %w", err)
	}

	if !employee.IsActive {
		return nil, fmt.Errorf("employee %d is not active", employeeID)
	}

	now := time.Now()
	today := truncateToDay(now)

	existing, err := s.repos.Attendance.GetByEmployeeAndDate(ctx, employeeID, today)
	if err == nil {
		return existing, nil
	}

	record := &models.AttendanceRecord{
		EmployeeID: employeeID,
		Date:       today,
		CheckInAt:  now,
		Location:   location,
		Status:     models.AttendanceStatusPresent,
	}

	id, err := s.repos.Attendance.Create(ctx, record)
	if err != nil {
		return nil, fmt.Errorf("failed to create attendance record: %w", err)
	}
	record.ID = id

	s.logger.Infof("Employee %d checked in at %s", employeeID, now.Format(time.RFC3339))

	return record, nil
}

// CheckOut records an employee's check-out for today and derives the day's status
func (s *AttendanceSvc) CheckOut(ctx context.Context, employeeID int) (*models.AttendanceRecord, error) {
	now := time.Now()
	today := truncateToDay(now)

	record, err := s.repos.Attendance.GetByEmployeeAndDate(ctx, employeeID, today)
	if err != nil {
		return nil, fmt.Errorf("no check-in found for today: %w", err)
	}

	if record.CheckOutAt != nil {
		return nil, errors.New("already checked out today")
	}

	record.ApplyCheckOut(now)

	if err := s.repos.Attendance.Update(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to update attendance record: %w", err)
	}

	s.logger.Infof("Employee %d checked out at %s (%s)", employeeID, now.Format(time.RFC3339), record.Status)

	return record, nil
}

// GetRecords gets attendance records for a date range. EmployeeID 0 means
// all employees.
func (s *AttendanceSvc) GetRecords(ctx context.Context, employeeID int, from, to time.Time) ([]*models.AttendanceRecord, error) {
	if to.Before(from) {
		return nil, errors.New("invalid date range: to is before from")
	}

	records, err := s.repos.Attendance.GetByDateRange(ctx, employeeID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to get attendance records: %w", err)
	}

	return records, nil
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
