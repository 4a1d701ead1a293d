package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crm-service/internal/models"
	"crm-service/internal/repository"
)

func newNotificationService(notifications *mockNotificationRepo, state *mockNotificationStateRepo) *NotificationSvc {
	return NewNotificationService(testDeps(&repository.Repository{
		Notification:      notifications,
		NotificationState: state,
	}))
}

func TestNotify(t *testing.T) {
	notifications := &mockNotificationRepo{}
	svc := newNotificationService(notifications, &mockNotificationStateRepo{})

	id, err := svc.Notify(context.Background(), 3, "title", "body", models.NotificationCategoryLead)

	require.NoError(t, err)
	assert.Equal(t, 1, id)
	require.Len(t, notifications.created, 1)
	assert.Equal(t, 3, notifications.created[0].UserID)
}

func TestGetForUser_Reconciles(t *testing.T) {
	notifications := &mockNotificationRepo{server: []*models.Notification{
		{ID: 1, Title: "read one"},
		{ID: 2, Title: "removed one"},
		{ID: 3, Title: "fresh one"},
	}}

	state := models.NewNotificationState()
	state.Read[1] = true
	state.Removed[2] = true
	stateRepo := &mockNotificationStateRepo{state: state}

	svc := newNotificationService(notifications, stateRepo)

	views, unread, err := svc.GetForUser(context.Background(), 3)

	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.Equal(t, 1, unread)
	assert.Empty(t, stateRepo.pruned)
}

func TestGetForUser_PrunesStaleState(t *testing.T) {
	notifications := &mockNotificationRepo{server: []*models.Notification{{ID: 10}}}

	state := models.NewNotificationState()
	state.Read[1] = true
	stateRepo := &mockNotificationStateRepo{state: state}

	svc := newNotificationService(notifications, stateRepo)

	_, _, err := svc.GetForUser(context.Background(), 3)

	require.NoError(t, err)
	assert.Equal(t, []int{1}, stateRepo.pruned)
}

func TestMarkAllRead_OnlyUnreadVisible(t *testing.T) {
	notifications := &mockNotificationRepo{server: []*models.Notification{
		{ID: 1},
		{ID: 2},
		{ID: 3},
	}}

	state := models.NewNotificationState()
	state.Read[1] = true
	state.Removed[2] = true
	stateRepo := &mockNotificationStateRepo{state: state}

	svc := newNotificationService(notifications, stateRepo)

	err := svc.MarkAllRead(context.Background(), 3)

	require.NoError(t, err)
	assert.Equal(t, []int{3}, stateRepo.read)
}

func TestRemoveAndDelete(t *testing.T) {
	stateRepo := &mockNotificationStateRepo{}
	svc := newNotificationService(&mockNotificationRepo{}, stateRepo)

	require.NoError(t, svc.Remove(context.Background(), 3, 7))
	require.NoError(t, svc.Delete(context.Background(), 3, 8))

	assert.Equal(t, []int{7}, stateRepo.removed)
	assert.Equal(t, []int{8}, stateRepo.deleted)
}

func TestExpireOld(t *testing.T) {
	notifications := &mockNotificationRepo{}
	svc := newNotificationService(notifications, &mockNotificationStateRepo{})

	err := svc.ExpireOld(context.Background())

	require.NoError(t, err)

	expected := time.Now().AddDate(0, 0, -90)
	assert.WithinDuration(t, expected, notifications.deleteCutoff, time.Minute)
}
