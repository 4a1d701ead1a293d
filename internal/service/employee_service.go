package service

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"crm-service/configs"
	"crm-service/internal/models"
	"crm-service/internal/repository"
)

// EmployeeSvc is an implementation of the service.EmployeeService interface
type EmployeeSvc struct {
	repos  *repository.Repository
	logger *logrus.Logger
	config *configs.Config
}

// NewEmployeeService creates a new EmployeeSvc
func NewEmployeeService(deps Dependencies) *EmployeeSvc {
	return &EmployeeSvc{
		repos:  deps.Repos,
		logger: deps.Logger,
		config: deps.Config,
	}
}

// Create creates a new employee
func (s *EmployeeSvc) Create(ctx context.Context, employeeReq *models.EmployeeCreate) (int, error) {
	if err := employeeReq.ValidateEmployee(); err != nil {
		return 0, fmt.Errorf("invalid employee: %w", err)
	}

	employee := employeeReq.ToEmployee()

	id, err := s.repos.Employee.Create(ctx, employee)
	if err != nil {
		return 0, fmt.Errorf("failed to create employee: %w", err)
	}

	s.logger.Infof("Employee created: %d (%s)", id, employee.Name)

	return id, nil
}

// GetByID gets an employee by ID
func (s *EmployeeSvc) GetByID(ctx context.Context, id int) (*models.Employee, error) {
	employee, err := s.repos.Employee.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get employee: %w", err)
	}

	return employee, nil
}

// GetAll gets all employees
func (s *EmployeeSvc) GetAll(ctx context.Context, activeOnly bool) ([]*models.Employee, error) {
	employees, err := s.repos.Employee.GetAll(ctx, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to get employees: %w", err)
	}

	return employees, nil
}

// Update updates an employee
func (s *EmployeeSvc) Update(ctx context.Context, employee *models.Employee) error {
	if _, err := s.repos.Employee.GetByID(ctx, employee.ID); err != nil {
		return fmt.Errorf("failed to get employee: %w", err)
	}

	if err := s.repos.Employee.Update(ctx, employee); err != nil {
		return fmt.Errorf("failed to update employee: %w", err)
	}

	s.logger.Infof("Employee updated: %d", employee.ID)

	return nil
}

// Deactivate marks an employee inactive; records are never hard-deleted
func (s *EmployeeSvc) Deactivate(ctx context.Context, id int) error {
	if err := s.repos.Employee.Deactivate(ctx, id); err != nil {
		return fmt.Errorf("failed to deactivate employee: %w", err)
	}

	s.logger.Infof("Employee deactivated: %d", id)

	return nil
}
