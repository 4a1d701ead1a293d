package service

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"crm-service/configs"
	"crm-service/internal/models"
	"crm-service/internal/repository"
)

// LeadSvc is an implementation of the service.LeadService interface
type LeadSvc struct {
	repos         *repository.Repository
	logger        *logrus.Logger
	config        *configs.Config
	notifications NotificationService
	email         EmailService
}

// NewLeadService creates a new LeadSvc
func NewLeadService(deps Dependencies, notifications NotificationService, email EmailService) *LeadSvc {
	return &LeadSvc{
		repos:         deps.Repos,
		logger:        deps.Logger,
		config:        deps.Config,
		notifications: notifications,
		email:         email,
	}
}

// Create creates a new lead
func (s *LeadSvc) Create(ctx context.Context, leadReq *models.LeadCreate) (int, error) {
	if err := leadReq.ValidateLead(); err != nil {
		return 0, fmt.Errorf("invalid lead: %w", err)
	}

	lead := leadReq.ToLead()

	id, err := s.repos.Lead.Create(ctx, lead)
	if err != nil {
		return 0, fmt.Errorf("failed to create lead: %w", err)
	}

	s.logger.Infof("Lead created: %d (%s)", id, lead.Name)

	return id, nil
}

// GetByID gets a lead by ID
func (s *LeadSvc) GetByID(ctx context.Context, id int) (*models.Lead, error) {
	lead, err := s.repos.Lead.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get lead: %w", err)
	}

	return lead, nil
}

// GetAll gets all leads, optionally filtered by status
func (s *LeadSvc) GetAll(ctx context.Context, status models.LeadStatus) ([]*models.Lead, error) {
	if status != "" && !models.ValidLeadStatus(status) {
		return nil, fmt.Errorf("unknown lead status: %s", status)
	}

	leads, err := s.repos.Lead.GetAll(ctx, status)
	if err != nil {
		return nil, fmt.Errorf("failed to get leads: %w", err)
	}

	return leads, nil
}

// Update updates a lead
func (s *LeadSvc) Update(ctx context.Context, lead *models.Lead) error {
	if !models.ValidLeadStatus(lead.Status) {
		return fmt.Errorf("unknown lead status: %s", lead.Status)
	}

	if err := s.repos.Lead.Update(ctx, lead); err != nil {
		return fmt.Errorf("failed to update lead: %w", err)
	}

	s.logger.Infof("Lead updated: %d", lead.ID)

	return nil
}

// UpdateStatus moves a lead to a new pipeline stage
func (s *LeadSvc) UpdateStatus(ctx context.Context, id int, status models.LeadStatus) error {
	if !models.ValidLeadStatus(status) {
		return fmt.Errorf("unknown lead status: %s", status)
	}

	lead, err := s.repos.Lead.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to get lead: %w", err)
	}

	lead.Status = status

	if err := s.repos.Lead.Update(ctx, lead); err != nil {
		return fmt.Errorf("failed to update lead status: %w", err)
	}

	s.logger.Infof("Lead %d moved to %s", id, status)

	return nil
}

// Assign assigns a lead to an employee, notifies them and sends an email
func (s *LeadSvc) Assign(ctx context.Context, leadID int, employeeID int) error {
	lead, err := s.repos.Lead.GetByID(ctx, leadID)
	if err != nil {
		return fmt.Errorf("failed to get lead: %w", err)
	}

	employee, err := s.repos.Employee.GetByID(ctx, employeeID)
	if err != nil {
		return fmt.Errorf("failed to get employee: %w", err)
	}

	if !employee.IsActive {
		return fmt.Errorf("employee %d is not active", employeeID)
	}

	lead.AssignedTo = employeeID
	if lead.Status == models.LeadStatusNew {
		lead.Status = models.LeadStatusInProgress
	}

	if err := s.repos.Lead.Update(ctx, lead); err != nil {
		return fmt.Errorf("failed to assign lead: %w", err)
	}

	s.logger.Infof("Lead %d assigned to employee %d", leadID, employeeID)

	if _, err := s.notifications.Notify(ctx, 0,
		fmt.Sprintf("Lead assigned: %s", lead.Name),
		fmt.Sprintf("%s has been assigned to %s", lead.Name, employee.Name),
		models.NotificationCategoryLead,
	); err != nil {
		s.logger.Warnf("Failed to create assignment notification: %v", err)
	}

	go func() {
		ctx := context.Background()
		if err := s.email.SendLeadAssigned(ctx, employee, lead); err != nil {
			s.logger.Warnf("Failed to send lead assignment email: %v", err)
		}
	}()

	return nil
}
