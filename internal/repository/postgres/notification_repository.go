package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"crm-service/internal/models"
)

// NotificationRepo is a PostgreSQL implementation of the repository.NotificationRepository interface
type NotificationRepo struct {
	db *sql.DB
}

// NewNotificationRepository creates a new NotificationRepo
func NewNotificationRepository(db *sql.DB) *NotificationRepo {
	return &NotificationRepo{db: db}
}

// Create creates a new notification in the database
func (r *NotificationRepo) Create(ctx context.Context, notification *models.Notification) (int, error) {
	query := `INSERT INTO notifications (user_id, title, body, category)
			  VALUES ($1, $2, $3, $4) RETURNING id`

	var id int
	err := r.db.QueryRowContext(
		ctx,
		query,
		notification.UserID,
		notification.Title,
		notification.Body,
		notification.Category,
	).Scan(&id)

	if err != nil {
		return 0, fmt.Errorf("failed to create notification: %w", err)
	}

	return id, nil
}

// GetForUser gets all notifications visible to a user: their own plus
// broadcasts (user_id = 0), newest first
func (r *NotificationRepo) GetForUser(ctx context.Context, userID int) ([]*models.Notification, error) {
	query := `SELECT id, user_id, title, body, category, created_at
			  FROM notifications WHERE user_id = $1 OR user_id = 0
			  ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get notifications: %w", err)
	}
	defer rows.Close()

	var notifications []*models.Notification

	for rows.Next() {
		notification := &models.Notification{}
		err := rows.Scan(
			&notification.ID,
			&notification.UserID,
			&notification.Title,
			&notification.Body,
			&notification.Category,
			&notification.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan notification: %w", err)
		}

		notifications = append(notifications, notification)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return notifications, nil
}

// DeleteOlderThan removes notifications created before the cutoff and
// returns how many were removed
func (r *NotificationRepo) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	query := `DELETE FROM notifications WHERE created_at < $1`

	result, err := r.db.ExecContext(ctx, query, cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to delete notifications: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return rows, nil
}
