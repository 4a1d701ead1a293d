package models

import "time"

// AttendanceStatus defines the day's outcome for an employee
type AttendanceStatus string

const (
	AttendanceStatusPresent AttendanceStatus = "PRESENT"
	AttendanceStatusHalfDay AttendanceStatus = "HALF_DAY"
	AttendanceStatusAbsent  AttendanceStatus = "ABSENT"
)

// A checked-out day shorter than this counts as a half day
const halfDayThreshold = 4*time.Hour + 30*time.Minute

// AttendanceRecord is one employee's punch record for one day. The face
// capture itself happens in the browser; only the punch survives here.
type AttendanceRecord struct {
	ID         int              `json:"id" db:"id"`
	EmployeeID int              `json:"employee_id" db:"employee_id"`
	Date       time.Time        `json:"date" db:"date"`
	CheckInAt  time.Time        `json:"check_in_at" db:"check_in_at"`
	CheckOutAt *time.Time       `json:"check_out_at,omitempty" db:"check_out_at"`
	Location   string           `json:"location,omitempty" db:"location"`
	Status     AttendanceStatus `json:"status" db:"status"`
}

// ApplyCheckOut records the check-out time and derives the day's status
// from the worked duration
func (a *AttendanceRecord) ApplyCheckOut(at time.Time) {
	a.CheckOutAt = &at

	if at.Sub(a.CheckInAt) < halfDayThreshold {
		a.Status = AttendanceStatusHalfDay
	} else {
		a.Status = AttendanceStatusPresent
	}
}
