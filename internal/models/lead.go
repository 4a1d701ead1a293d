package models

import (
	"errors"
	"regexp"
	"strings"
	"time"
)

// LeadStatus defines the pipeline stage of a lead
type LeadStatus string

const (
	LeadStatusNew              LeadStatus = "NEW"
	LeadStatusInProgress       LeadStatus = "IN_PROGRESS"
	LeadStatusDocumentsPending LeadStatus = "DOCUMENTS_PENDING"
	LeadStatusLoggedIn         LeadStatus = "LOGGED_IN"
	LeadStatusDisbursed        LeadStatus = "DISBURSED"
	LeadStatusRejected         LeadStatus = "REJECTED"
	LeadStatusClosed           LeadStatus = "CLOSED"
)

var validLeadStatuses = map[LeadStatus]bool{
	LeadStatusNew:              true,
	LeadStatusInProgress:       true,
	LeadStatusDocumentsPending: true,
	LeadStatusLoggedIn:         true,
	LeadStatusDisbursed:        true,
	LeadStatusRejected:         true,
	LeadStatusClosed:           true,
}

// Lead represents a loan applicant in the CRM pipeline
type Lead struct {
	ID         int        `json:"id" db:"id"`
	Name       string     `json:"name" db:"name"`
	Phone      string     `json:"phone" db:"phone"`
	Email      string     `json:"email,omitempty" db:"email"`
	Source     string     `json:"source,omitempty" db:"source"`
	Product    string     `json:"product,omitempty" db:"product"`
	Status     LeadStatus `json:"status" db:"status"`
	AssignedTo int        `json:"assigned_to,omitempty" db:"assigned_to"`
	Remarks    string     `json:"remarks,omitempty" db:"remarks"`
	CreatedAt  time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at" db:"updated_at"`
}

// LeadCreate represents the payload for creating a lead
type LeadCreate struct {
	Name    string `json:"name" binding:"required"`
	Phone   string `json:"phone" binding:"required"`
	Email   string `json:"email,omitempty"`
	Source  string `json:"source,omitempty"`
	Product string `json:"product,omitempty"`
	Remarks string `json:"remarks,omitempty"`
}

var (
	leadPhonePattern = regexp.MustCompile(`^[0-9]{10}$`)
	leadEmailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
)

// ValidateLead validates lead creation data
func (l *LeadCreate) ValidateLead() error {
	l.Name = strings.TrimSpace(l.Name)
	l.Phone = strings.TrimSpace(l.Phone)
	l.Email = strings.TrimSpace(l.Email)

	if l.Name == "" {
		return errors.New("lead name is required")
	}

	if !leadPhonePattern.MatchString(l.Phone) {
		return errors.New("phone must be a 10-digit number")
	}

	if l.Email != "" && !leadEmailPattern.MatchString(l.Email) {
		return errors.New("invalid email format")
	}

	return nil
}

// ToLead converts LeadCreate to Lead
func (l *LeadCreate) ToLead() *Lead {
	return &Lead{
		Name:    l.Name,
		Phone:   l.Phone,
		Email:   l.Email,
		Source:  l.Source,
		Product: l.Product,
		Status:  LeadStatusNew,
		Remarks: l.Remarks,
	}
}

// ValidLeadStatus reports whether the given status is a known pipeline stage
func ValidLeadStatus(status LeadStatus) bool {
	return validLeadStatuses[status]
}
