package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"crm-service/internal/models"
)

// LeadRepo is a PostgreSQL implementation of the repository.LeadRepository interface
type LeadRepo struct {
	db *sql.DB
}

// NewLeadRepository creates a new LeadRepo
func NewLeadRepository(db *sql.DB) *LeadRepo {
	return &LeadRepo{db: db}
}

const leadColumns = `id, name, phone, email, source, product, status, assigned_to, remarks, created_at, updated_at`

// Create creates a new lead in the database
func (r *LeadRepo) Create(ctx context.Context, lead *models.Lead) (int, error) {
	query := `INSERT INTO leads (name, phone, email, source, product, status, assigned_to, remarks)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`

	var id int
	err := r.db.QueryRowContext(
		ctx,
		query,
		lead.Name,
		lead.Phone,
		lead.Email,
		lead.Source,
		lead.Product,
		lead.Status,
		lead.AssignedTo,
		lead.Remarks,
	).Scan(&id)

	if err != nil {
		return 0, fmt.Errorf("failed to create lead: %w", err)
	}

	return id, nil
}

// GetByID gets a lead by ID
func (r *LeadRepo) GetByID(ctx context.Context, id int) (*models.Lead, error) {
	query := `SELECT ` + leadColumns + ` FROM leads WHERE id = $1`

	lead := &models.Lead{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&lead.ID,
		&lead.Name,
		&lead.Phone,
		&lead.Email,
		&lead.Source,
		&lead.Product,
		&lead.Status,
		&lead.AssignedTo,
		&lead.Remarks,
		&lead.CreatedAt,
		&lead.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("lead not found: %w", err)
		}
		return nil, fmt.Errorf("failed to get lead: %w", err)
	}

	return lead, nil
}

// GetAll gets all leads, optionally filtered by status
func (r *LeadRepo) GetAll(ctx context.Context, status models.LeadStatus) ([]*models.Lead, error) {
	var rows *sql.Rows
	var err error

	if status == "" {
		query := `SELECT ` + leadColumns + ` FROM leads ORDER BY created_at DESC`
		rows, err = r.db.QueryContext(ctx, query)
	} else {
		query := `SELECT ` + leadColumns + ` FROM leads WHERE status = $1 ORDER BY created_at DESC`
		rows, err = r.db.QueryContext(ctx, query, status)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get leads: %w", err)
	}
	defer rows.Close()

	return r.scanLeads(rows)
}

// GetByAssignee gets all leads assigned to an employee
func (r *LeadRepo) GetByAssignee(ctx context.Context, employeeID int) ([]*models.Lead, error) {
	query := `SELECT ` + leadColumns + ` FROM leads WHERE assigned_to = $1 ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to get leads: %w", err)
	}
	defer rows.Close()

	return r.scanLeads(rows)
}

// Update updates a lead
func (r *LeadRepo) Update(ctx context.Context, lead *models.Lead) error {
	query := `UPDATE leads
			  SET name = $1, phone = $2, email = $3, source = $4, product = $5,
			      status = $6, assigned_to = $7, remarks = $8, updated_at = NOW()
			  WHERE id = $9`

	result, err := r.db.ExecContext(
		ctx,
		query,
		lead.Name,
		lead.Phone,
		lead.Email,
		lead.Source,
		lead.Product,
		lead.Status,
		lead.AssignedTo,
		lead.Remarks,
		lead.ID,
	)

	if err != nil {
		return fmt.Errorf("failed to update lead: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rows == 0 {
		return fmt.Errorf("lead not found")
	}

	return nil
}

// CountByStatus counts leads created since the given time, grouped by status
func (r *LeadRepo) CountByStatus(ctx context.Context, since time.Time) (map[models.LeadStatus]int, error) {
	query := `SELECT status, COUNT(*) FROM leads WHERE created_at >= $1 GROUP BY status`

	rows, err := r.db.QueryContext(ctx, query, since)
	if err != nil {
		return nil, fmt.Errorf("failed to count leads: %w", err)
	}
	defer rows.Close()

	counts := make(map[models.LeadStatus]int)

	for rows.Next() {
		var status models.LeadStatus
		var count int

		if err := rows.Scan(&status, &count); err != nil {
			return nil, fmt.Errorf("failed to scan lead count: %w", err)
		}

		counts[status] = count
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return counts, nil
}

// Helper function to scan multiple leads
func (r *LeadRepo) scanLeads(rows *sql.Rows) ([]*models.Lead, error) {
	var leads []*models.Lead

	for rows.Next() {
		lead := &models.Lead{}
		err := rows.Scan(
			&lead.ID,
			&lead.Name,
			&lead.Phone,
			&lead.Email,
			&lead.Source,
			&lead.Product,
			&lead.Status,
			&lead.AssignedTo,
			&lead.Remarks,
			&lead.CreatedAt,
			&lead.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan lead: %w", err)
		}

		leads = append(leads, lead)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return leads, nil
}
