package service

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"crm-service/configs"
	"crm-service/internal/models"
	"crm-service/internal/repository"
)

// NotificationSvc is an implementation of the service.NotificationService
// interface. Notifications live in Postgres; each user's read/removed/deleted
// overlay lives in Redis and is reconciled against the server list on read.
type NotificationSvc struct {
	repos  *repository.Repository
	logger *logrus.Logger
	config *configs.Config
}

// NewNotificationService creates a new NotificationSvc
func NewNotificationService(deps Dependencies) *NotificationSvc {
	return &NotificationSvc{
		repos:  deps.Repos,
		logger: deps.Logger,
		config: deps.Config,
	}
}

// Notify creates a notification. UserID 0 creates a broadcast.
func (s *NotificationSvc) Notify(ctx context.Context, userID int, title, body string, category models.NotificationCategory) (int, error) {
	notification := &models.Notification{
		UserID:   userID,
		Title:    title,
		Body:     body,
		Category: category,
	}

	id, err := s.repos.Notification.Create(ctx, notification)
	if err != nil {
		return 0, fmt.Errorf("failed to create notification: %w", err)
	}

	return id, nil
}

// GetForUser returns the user's reconciled bell contents and unread count.
// State entries for notifications that no longer exist server-side are
// pruned from Redis as a side effect.
func (s *NotificationSvc) GetForUser(ctx context.Context, userID int) ([]models.NotificationView, int, error) {
	server, err := s.repos.Notification.GetForUser(ctx, userID)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to get notifications: %w", err)
	}

	state, err := s.repos.NotificationState.GetState(ctx, userID)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to get notification state: %w", err)
	}

	notifications := make([]models.Notification, len(server))
	for i, n := range server {
		notifications[i] = *n
	}

	views, unread, stale := models.ReconcileNotifications(notifications, state)

	if len(stale) > 0 {
		if err := s.repos.NotificationState.Prune(ctx, userID, stale); err != nil {
			s.logger.Warnf("Failed to prune stale notification state for user %d: %v", userID, err)
		}
	}

	return views, unread, nil
}

// MarkRead marks one notification as read for the user
func (s *NotificationSvc) MarkRead(ctx context.Context, userID int, notificationID int) error {
	if err := s.repos.NotificationState.MarkRead(ctx, userID, notificationID); err != nil {
		return fmt.Errorf("failed to mark notification read: %w", err)
	}

	return nil
}

// MarkAllRead marks every currently visible notification as read for the user
func (s *NotificationSvc) MarkAllRead(ctx context.Context, userID int) error {
	views, _, err := s.GetForUser(ctx, userID)
	if err != nil {
		return err
	}

	ids := make([]int, 0, len(views))
	for _, view := range views {
		if !view.IsRead {
			ids = append(ids, view.ID)
		}
	}

	if err := s.repos.NotificationState.MarkRead(ctx, userID, ids...); err != nil {
		return fmt.Errorf("failed to mark notifications read: %w", err)
	}

	return nil
}

// Remove hides a notification from the user's bell without deleting it
func (s *NotificationSvc) Remove(ctx context.Context, userID int, notificationID int) error {
	if err := s.repos.NotificationState.MarkRemoved(ctx, userID, notificationID); err != nil {
		return fmt.Errorf("failed to remove notification: %w", err)
	}

	return nil
}

// Delete permanently hides a notification for the user. The server row
// survives for other users; only the janitor deletes rows.
func (s *NotificationSvc) Delete(ctx context.Context, userID int, notificationID int) error {
	if err := s.repos.NotificationState.MarkDeleted(ctx, userID, notificationID); err != nil {
		return fmt.Errorf("failed to delete notification: %w", err)
	}

	return nil
}

// ExpireOld removes notifications older than the retention window
func (s *NotificationSvc) ExpireOld(ctx context.Context) error {
	cutoff := time.Now().AddDate(0, 0, -s.config.Notifications.RetentionDays)

	removed, err := s.repos.Notification.DeleteOlderThan(ctx, cutoff)
	if err != nil {
		return fmt.Errorf("failed to expire notifications: %w", err)
	}

	if removed > 0 {
		s.logger.Infof("Expired %d notifications older than %s", removed, cutoff.Format("2006-01-02"))
	}

	return nil
}
