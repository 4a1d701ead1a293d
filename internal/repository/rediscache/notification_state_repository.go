package rediscache

import (
	"context"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"

	"crm-service/internal/models"
)

// NotificationStateRepo keeps each user's read/removed/deleted notification
// sets in Redis sets. The notification rows themselves live in Postgres;
// these sets only overlay them.
type NotificationStateRepo struct {
	client *redis.Client
}

// NewNotificationStateRepository creates a new NotificationStateRepo
func NewNotificationStateRepository(client *redis.Client) *NotificationStateRepo {
	return &NotificationStateRepo{client: client}
}

func readKey(userID int) string    { return fmt.Sprintf("notif:read:%d", userID) }
func removedKey(userID int) string { return fmt.Sprintf("notif:removed:%d", userID) }
func deletedKey(userID int) string { return fmt.Sprintf("notif:deleted:%d", userID) }

// GetState loads the user's full notification state
func (r *NotificationStateRepo) GetState(ctx context.Context, userID int) (models.NotificationState, error) {
	state := models.NewNotificationState()

	sets := []struct {
		key  string
		dest map[int]bool
	}{
		{readKey(userID), state.Read},
		{removedKey(userID), state.Removed},
		{deletedKey(userID), state.Deleted},
	}

	for _, set := range sets {
		members, err := r.client.SMembers(ctx, set.key).Result()
		if err != nil {
			return state, fmt.Errorf("failed to load notification state: %w", err)
		}

		for _, member := range members {
			id, err := strconv.Atoi(member)
			if err != nil {
				continue
			}
			set.dest[id] = true
		}
	}

	return state, nil
}

// MarkRead adds notification IDs to the user's read set
func (r *NotificationStateRepo) MarkRead(ctx context.Context, userID int, notificationIDs ...int) error {
	if len(notificationIDs) == 0 {
		return nil
	}

	if err := r.client.SAdd(ctx, readKey(userID), toMembers(notificationIDs)...).Err(); err != nil {
		return fmt.Errorf("failed to mark notifications read: %w", err)
	}

	return nil
}

// MarkRemoved hides a notification from the user's bell without deleting it
func (r *NotificationStateRepo) MarkRemoved(ctx context.Context, userID int, notificationID int) error {
	if err := r.client.SAdd(ctx, removedKey(userID), notificationID).Err(); err != nil {
		return fmt.Errorf("failed to mark notification removed: %w", err)
	}

	return nil
}

// MarkDeleted permanently hides a notification for the user
func (r *NotificationStateRepo) MarkDeleted(ctx context.Context, userID int, notificationID int) error {
	if err := r.client.SAdd(ctx, deletedKey(userID), notificationID).Err(); err != nil {
		return fmt.Errorf("failed to mark notification deleted: %w", err)
	}

	return nil
}

// Prune drops state entries for notifications that no longer exist server-side
func (r *NotificationStateRepo) Prune(ctx context.Context, userID int, notificationIDs []int) error {
	if len(notificationIDs) == 0 {
		return nil
	}

	members := toMembers(notificationIDs)

	for _, key := range []string{readKey(userID), removedKey(userID), deletedKey(userID)} {
		if err := r.client.SRem(ctx, key, members...).Err(); err != nil {
			return fmt.Errorf("failed to prune notification state: %w", err)
		}
	}

	return nil
}

func toMembers(ids []int) []interface{} {
	members := make([]interface{}, len(ids))
	for i, id := range ids {
		members[i] = id
	}
	return members
}
