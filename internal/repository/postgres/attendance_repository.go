package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"crm-service/internal/models"
)

// AttendanceRepo is a PostgreSQL implementation of the repository.AttendanceRepository interface
type AttendanceRepo struct {
	db *sql.DB
}

// NewAttendanceRepository creates a new AttendanceRepo
func NewAttendanceRepository(db *sql.DB) *AttendanceRepo {
	return &AttendanceRepo{db: db}
}

// Create creates a new attendance record in the database
func (r *AttendanceRepo) Create(ctx context.Context, record *models.AttendanceRecord) (int, error) {
	query := `INSERT INTO attendance (employee_id, date, check_in_at, check_out_at, location, status)
			  VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`

	var id int
	err := r.db.QueryRowContext(
		ctx,
		query,
		record.EmployeeID,
		record.Date,
		record.CheckInAt,
		record.CheckOutAt,
		record.Location,
		record.Status,
	).Scan(&id)

	if err != nil {
		return 0, fmt.Errorf("failed to create attendance record: %w", err)
	}

	return id, nil
}

// GetByEmployeeAndDate gets the attendance record for one employee on one day
func (r *AttendanceRepo) GetByEmployeeAndDate(ctx context.Context, employeeID int, date time.Time) (*models.AttendanceRecord, error) {
	query := `SELECT id, employee_id, date, check_in_at, check_out_at, location, status
			  FROM attendance WHERE employee_id = $1 AND date = $2`

	record := &models.AttendanceRecord{}
	err := r.db.QueryRowContext(ctx, query, employeeID, date).Scan(
		&record.ID,
		&record.EmployeeID,
		&record.Date,
		&record.CheckInAt,
		&record.CheckOutAt,
		&record.Location,
		&record.Status,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("attendance record not found: %w", err)
		}
		return nil, fmt.Errorf("failed to get attendance record: %w", err)
	}

	return record, nil
}

// Update updates an attendance record
func (r *AttendanceRepo) Update(ctx context.Context, record *models.AttendanceRecord) error {
	query := `UPDATE attendance
			  SET check_out_at = $1, location = $2, status = $3
			  WHERE id = $4`

	result, err := r.db.ExecContext(
		ctx,
		query,
		record.CheckOutAt,
		record.Location,
		record.Status,
		record.ID,
	)

	if err != nil {
		return fmt.Errorf("failed to update attendance record: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rows == 0 {
		return fmt.Errorf("attendance record not found")
	}

	return nil
}

// GetByDateRange gets attendance records in a date range, optionally for a
// single employee (employeeID 0 means all employees)
func (r *AttendanceRepo) GetByDateRange(ctx context.Context, employeeID int, from, to time.Time) ([]*models.AttendanceRecord, error) {
	var rows *sql.Rows
	var err error

	if employeeID > 0 {
		query := `SELECT id, employee_id, date, check_in_at, check_out_at, location, status
				  FROM attendance WHERE employee_id = $1 AND date BETWEEN $2 AND $3
				  ORDER BY date DESC`
		rows, err = r.db.QueryContext(ctx, query, employeeID, from, to)
	} else {
		query := `SELECT id, employee_id, date, check_in_at, check_out_at, location, status
				  FROM attendance WHERE date BETWEEN $1 AND $2
				  ORDER BY date DESC, employee_id`
		rows, err = r.db.QueryContext(ctx, query, from, to)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get attendance records: %w", err)
	}
	defer rows.Close()

	var records []*models.AttendanceRecord

	for rows.Next() {
		record := &models.AttendanceRecord{}
		err := rows.Scan(
			&record.ID,
			&record.EmployeeID,
			&record.Date,
			&record.CheckInAt,
			&record.CheckOutAt,
			&record.Location,
			&record.Status,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance record: %w", err)
		}

		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return records, nil
}
