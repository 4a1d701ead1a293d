package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReconcileNotifications(t *testing.T) {
	server := []Notification{
		{ID: 1, Title: "one"},
		{ID: 2, Title: "two"},
		{ID: 3, Title: "three"},
		{ID: 4, Title: "four"},
	}

	state := NewNotificationState()
	state.Read[1] = true
	state.Removed[2] = true
	state.Deleted[3] = true

	views, unread, stale := ReconcileNotifications(server, state)

	// Removed and deleted entries disappear from the bell
	require.Len(t, views, 2)
	assert.Equal(t, 1, views[0].ID)
	assert.True(t, views[0].IsRead)
	assert.Equal(t, 4, views[1].ID)
	assert.False(t, views[1].IsRead)

	assert.Equal(t, 1, unread)
	assert.Empty(t, stale)
}

func TestReconcileNotifications_EmptyState(t *testing.T) {
	server := []Notification{{ID: 1}, {ID: 2}}

	views, unread, stale := ReconcileNotifications(server, NewNotificationState())

	assert.Len(t, views, 2)
	assert.Equal(t, 2, unread)
	assert.Empty(t, stale)
}

func TestReconcileNotifications_StaleState(t *testing.T) {
	server := []Notification{{ID: 5}}

	state := NewNotificationState()
	state.Read[1] = true
	state.Removed[1] = true
	state.Deleted[2] = true

	_, _, stale := ReconcileNotifications(server, state)

	// Entries for notifications the server no longer has come back
	// deduplicated so the caller can prune them
	assert.ElementsMatch(t, []int{1, 2}, stale)
}

func TestReconcileNotifications_NoServerNotifications(t *testing.T) {
	views, unread, stale := ReconcileNotifications(nil, NewNotificationState())

	assert.Empty(t, views)
	assert.Equal(t, 0, unread)
	assert.Empty(t, stale)
}
