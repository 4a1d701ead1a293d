package models

import "time"

// NotificationCategory groups notifications in the bell dropdown
type NotificationCategory string

const (
	NotificationCategoryLead        NotificationCategory = "LEAD"
	NotificationCategoryEligibility NotificationCategory = "ELIGIBILITY"
	NotificationCategoryAttendance  NotificationCategory = "ATTENDANCE"
	NotificationCategorySystem      NotificationCategory = "SYSTEM"
)

// Notification is a server-side notification. UserID 0 means a broadcast
// visible to every user.
type Notification struct {
	ID        int                  `json:"id" db:"id"`
	UserID    int                  `json:"user_id,omitempty" db:"user_id"`
	Title     string               `json:"title" db:"title"`
	Body      string               `json:"body,omitempty" db:"body"`
	Category  NotificationCategory `json:"category" db:"category"`
	CreatedAt time.Time            `json:"created_at" db:"created_at"`
}

// NotificationState holds a user's per-notification flags: which server
// notifications they have read, removed from the bell, or deleted outright.
// The server list stays authoritative; these sets only overlay it.
type NotificationState struct {
	Read    map[int]bool
	Removed map[int]bool
	Deleted map[int]bool
}

// NewNotificationState creates an empty notification state
func NewNotificationState() NotificationState {
	return NotificationState{
		Read:    make(map[int]bool),
		Removed: make(map[int]bool),
		Deleted: make(map[int]bool),
	}
}

// NotificationView is a notification as presented in the bell, with the
// user's read flag applied
type NotificationView struct {
	Notification
	IsRead bool `json:"is_read"`
}

// ReconcileNotifications merges the server-provided notification list with
// the user's persisted read/removed/deleted sets. Removed and deleted
// notifications are excluded, the read flag is applied to the rest, and any
// state entry whose notification no longer exists on the server is returned
// as a prune candidate so the caller can drop it from storage.
func ReconcileNotifications(server []Notification, state NotificationState) ([]NotificationView, int, []int) {
	present := make(map[int]bool, len(server))
	views := make([]NotificationView, 0, len(server))
	unread := 0

	for _, n := range server {
		present[n.ID] = true

		if state.Removed[n.ID] || state.Deleted[n.ID] {
			continue
		}

		view := NotificationView{Notification: n, IsRead: state.Read[n.ID]}
		if !view.IsRead {
			unread++
		}

		views = append(views, view)
	}

	var stale []int
	for _, set := range []map[int]bool{state.Read, state.Removed, state.Deleted} {
		for id := range set {
			if !present[id] {
				stale = append(stale, id)
			}
		}
	}

	return views, unread, dedupeInts(stale)
}

func dedupeInts(ids []int) []int {
	if len(ids) < 2 {
		return ids
	}

	seen := make(map[int]bool, len(ids))
	out := ids[:0]

	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}

	return out
}
