package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"crm-service/internal/models"
)

// SnapshotRepo is a PostgreSQL implementation of the repository.SnapshotRepository interface.
// The calculation state and result are stored as JSONB documents.
type SnapshotRepo struct {
	db *sql.DB
}

// NewSnapshotRepository creates a new SnapshotRepo
func NewSnapshotRepository(db *sql.DB) *SnapshotRepo {
	return &SnapshotRepo{db: db}
}

// Create creates a new eligibility snapshot in the database
func (r *SnapshotRepo) Create(ctx context.Context, snapshot *models.EligibilitySnapshot) (int, error) {
	stateJSON, err := json.Marshal(snapshot.State)
	if err != nil {
		return 0, fmt.Errorf("failed to marshal snapshot state: %w", err)
	}

	resultJSON, err := json.Marshal(snapshot.Result)
	if err != nil {
		return 0, fmt.Errorf("failed to marshal snapshot result: %w", err)
	}

	query := `INSERT INTO eligibility_snapshots (ref, lead_id, state, result, status, final_eligibility, created_by)
			  VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`

	var id int
	err = r.db.QueryRowContext(
		ctx,
		query,
		snapshot.Ref,
		snapshot.LeadID,
		stateJSON,
		resultJSON,
		snapshot.Result.Status,
		snapshot.Result.FinalEligibility,
		snapshot.CreatedBy,
	).Scan(&id)

	if err != nil {
		return 0, fmt.Errorf("failed to create snapshot: %w", err)
	}

	return id, nil
}

// GetByRef gets a snapshot by its reference
func (r *SnapshotRepo) GetByRef(ctx context.Context, ref string) (*models.EligibilitySnapshot, error) {
	query := `SELECT id, ref, lead_id, state, result, created_by, created_at
			  FROM eligibility_snapshots WHERE ref = $1`

	var stateJSON, resultJSON []byte
	snapshot := &models.EligibilitySnapshot{}

	err := r.db.QueryRowContext(ctx, query, ref).Scan(
		&snapshot.ID,
		&snapshot.Ref,
		&snapshot.LeadID,
		&stateJSON,
		&resultJSON,
		&snapshot.CreatedBy,
		&snapshot.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("snapshot not found: %w", err)
		}
		return nil, fmt.Errorf("failed to get snapshot: %w", err)
	}

	if err := unmarshalSnapshot(snapshot, stateJSON, resultJSON); err != nil {
		return nil, err
	}

	return snapshot, nil
}

// GetByLeadID gets all snapshots for a lead, newest first
func (r *SnapshotRepo) GetByLeadID(ctx context.Context, leadID int) ([]*models.EligibilitySnapshot, error) {
	query := `SELECT id, ref, lead_id, state, result, created_by, created_at
			  FROM eligibility_snapshots WHERE lead_id = $1
			  ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, leadID)
	if err != nil {
		return nil, fmt.Errorf("failed to get snapshots: %w", err)
	}
	defer rows.Close()

	var snapshots []*models.EligibilitySnapshot

	for rows.Next() {
		var stateJSON, resultJSON []byte
		snapshot := &models.EligibilitySnapshot{}

		err := rows.Scan(
			&snapshot.ID,
			&snapshot.Ref,
			&snapshot.LeadID,
			&stateJSON,
			&resultJSON,
			&snapshot.CreatedBy,
			&snapshot.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan snapshot: %w", err)
		}

		if err := unmarshalSnapshot(snapshot, stateJSON, resultJSON); err != nil {
			return nil, err
		}

		snapshots = append(snapshots, snapshot)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return snapshots, nil
}

// CountByVerdict counts snapshots created since the given time, split by verdict
func (r *SnapshotRepo) CountByVerdict(ctx context.Context, since time.Time) (int, int, error) {
	query := `SELECT status, COUNT(*) FROM eligibility_snapshots
			  WHERE created_at >= $1 GROUP BY status`

	rows, err := r.db.QueryContext(ctx, query, since)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to count snapshots: %w", err)
	}
	defer rows.Close()

	var eligible, notEligible int

	for rows.Next() {
		var status models.EligibilityStatus
		var count int

		if err := rows.Scan(&status, &count); err != nil {
			return 0, 0, fmt.Errorf("failed to scan snapshot count: %w", err)
		}

		if status == models.StatusEligible {
			eligible = count
		} else {
			notEligible = count
		}
	}

	if err := rows.Err(); err != nil {
		return 0, 0, fmt.Errorf("rows error: %w", err)
	}

	return eligible, notEligible, nil
}

func unmarshalSnapshot(snapshot *models.EligibilitySnapshot, stateJSON, resultJSON []byte) error {
	if err := json.Unmarshal(stateJSON, &snapshot.State); err != nil {
		return fmt.Errorf("failed to unmarshal snapshot state: %w", err)
	}

	if err := json.Unmarshal(resultJSON, &snapshot.Result); err != nil {
		return fmt.Errorf("failed to unmarshal snapshot result: %w", err)
	}

	return nil
}
