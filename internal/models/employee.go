package models

import (
	"errors"
	"strings"
	"time"
)

// Employee represents a CRM staff member shown in the employee management tables
type Employee struct {
	ID          int       `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Email       string    `json:"email" db:"email"`
	Phone       string    `json:"phone,omitempty" db:"phone"`
	Designation string    `json:"designation,omitempty" db:"designation"`
	Department  string    `json:"department,omitempty" db:"department"`
	ReportingTo int       `json:"reporting_to,omitempty" db:"reporting_to"`
	IsActive    bool      `json:"is_active" db:"is_active"`
	JoinedAt    time.Time `json:"joined_at" db:"joined_at"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

// EmployeeCreate represents the payload for creating an employee
type EmployeeCreate struct {
	Name        string    `json:"name" binding:"required"`
	Email       string    `json:"email" binding:"required"`
	Phone       string    `json:"phone,omitempty"`
	Designation string    `json:"designation,omitempty"`
	Department  string    `json:"department,omitempty"`
	ReportingTo int       `json:"reporting_to,omitempty"`
	JoinedAt    time.Time `json:"joined_at,omitempty"`
}

// ValidateEmployee validates employee creation data
func (e *EmployeeCreate) ValidateEmployee() error {
	e.Name = strings.TrimSpace(e.Name)
	e.Email = strings.TrimSpace(e.Email)
	e.Phone = strings.TrimSpace(e.Phone)

	if e.Name == "" {
		return errors.New("employee name is required")
	}

	if !leadEmailPattern.MatchString(e.Email) {
		return errors.New("invalid email format")
	}

	if e.Phone != "" && !leadPhonePattern.MatchString(e.Phone) {
		return errors.New("phone must be a 10-digit number")
	}

	return nil
}

// ToEmployee converts EmployeeCreate to Employee
func (e *EmployeeCreate) ToEmployee() *Employee {
	joined := e.JoinedAt
	if joined.IsZero() {
		joined = time.Now()
	}

	return &Employee{
		Name:        e.Name,
		Email:       e.Email,
		Phone:       e.Phone,
		Designation: e.Designation,
		Department:  e.Department,
		ReportingTo: e.ReportingTo,
		IsActive:    true,
		JoinedAt:    joined,
	}
}
