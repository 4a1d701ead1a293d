package models

import "time"

// EligibilitySnapshot is a persisted point-in-time copy of an eligibility
// calculation for a lead: the full input state plus the server-side
// recomputed result. The live calculation itself stays ephemeral; only an
// explicit save produces a snapshot.
type EligibilitySnapshot struct {
	ID        int               `json:"id" db:"id"`
	Ref       string            `json:"ref" db:"ref"`
	LeadID    int               `json:"lead_id" db:"lead_id"`
	State     EligibilityState  `json:"state"`
	Result    EligibilityResult `json:"result"`
	CreatedBy int               `json:"created_by,omitempty" db:"created_by"`
	CreatedAt time.Time         `json:"created_at" db:"created_at"`
}
