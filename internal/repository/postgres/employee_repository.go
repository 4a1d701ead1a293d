package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"crm-service/internal/models"
)

// EmployeeRepo is a PostgreSQL implementation of the repository.EmployeeRepository interface
type EmployeeRepo struct {
	db *sql.DB
}

// NewEmployeeRepository creates a new EmployeeRepo
func NewEmployeeRepository(db *sql.DB) *EmployeeRepo {
	return &EmployeeRepo{db: db}
}

const employeeColumns = `id, name, email, phone, designation, department, reporting_to, is_active, joined_at, created_at, updated_at`

// Create creates a new employee in the database
func (r *EmployeeRepo) Create(ctx context.Context, employee *models.Employee) (int, error) {
	query := `INSERT INTO employees (name, email, phone, designation, department, reporting_to, is_active, joined_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`

	var id int
	err := r.db.QueryRowContext(
		ctx,
		query,
		employee.Name,
		employee.Email,
		employee.Phone,
		employee.Designation,
		employee.Department,
		employee.ReportingTo,
		employee.IsActive,
		employee.JoinedAt,
	).Scan(&id)

	if err != nil {
		return 0, fmt.Errorf("failed to create employee: %w", err)
	}

	return id, nil
}

// GetByID gets an employee by ID
func (r *EmployeeRepo) GetByID(ctx context.Context, id int) (*models.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees WHERE id = $1`

	employee := &models.Employee{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&employee.ID,
		&employee.Name,
		&employee.Email,
		&employee.Phone,
		&employee.Designation,
		&employee.Department,
		&employee.ReportingTo,
		&employee.IsActive,
		&employee.JoinedAt,
		&employee.CreatedAt,
		&employee.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("employee not found: %w", err)
		}
		return nil, fmt.Errorf("failed to get employee: %w", err)
	}

	return employee, nil
}

// GetAll gets all employees, optionally only active ones
func (r *EmployeeRepo) GetAll(ctx context.Context, activeOnly bool) ([]*models.Employee, error) {
	var rows *sql.Rows
	var err error

	if activeOnly {
		query := `SELECT ` + employeeColumns + ` FROM employees WHERE is_active = TRUE ORDER BY name`
		rows, err = r.db.QueryContext(ctx, query)
	} else {
		query := `SELECT ` + employeeColumns + ` FROM employees ORDER BY name`
		rows, err = r.db.QueryContext(ctx, query)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get employees: %w", err)
	}
	defer rows.Close()

	var employees []*models.Employee

	for rows.Next() {
		employee := &models.Employee{}
		err := rows.Scan(
			&employee.ID,
			&employee.Name,
			&employee.Email,
			&employee.Phone,
			&employee.Designation,
			&employee.Department,
			&employee.ReportingTo,
			&employee.IsActive,
			&employee.JoinedAt,
			&employee.CreatedAt,
			&employee.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}

		employees = append(employees, employee)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return employees, nil
}

// Update updates an employee
func (r *EmployeeRepo) Update(ctx context.Context, employee *models.Employee) error {
	query := `UPDATE employees
			  SET name = $1, email = $2, phone = $3, designation = $4, department = $5,
			      reporting_to = $6, is_active = $7, updated_at = NOW()
			  WHERE id = $8`

	result, err := r.db.ExecContext(
		ctx,
		query,
		employee.Name,
		employee.Email,
		employee.Phone,
		employee.Designation,
		employee.Department,
		employee.ReportingTo,
		employee.IsActive,
		employee.ID,
	)

	if err != nil {
		return fmt.Errorf("failed to update employee: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rows == 0 {
		return fmt.Errorf("employee not found")
	}

	return nil
}

// Deactivate marks an employee as inactive instead of deleting the record
func (r *EmployeeRepo) Deactivate(ctx context.Context, id int) error {
	query := `UPDATE employees SET is_active = FALSE, updated_at = NOW() WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to deactivate employee: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rows == 0 {
		return fmt.Errorf("employee not found")
	}

	return nil
}
