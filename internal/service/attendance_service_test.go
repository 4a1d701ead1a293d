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

func newAttendanceService(employees *mockEmployeeRepo, attendance *mockAttendanceRepo) *AttendanceSvc {
	return NewAttendanceService(testDeps(&repository.Repository{
		Employee:   employees,
		Attendance: attendance,
	}))
}

func activeEmployee(id int) *mockEmployeeRepo {
	return &mockEmployeeRepo{employees: map[int]*models.Employee{
		id: {ID: id, Name: "Ravi Kumar", IsActive: true},
	}}
}

func TestCheckIn(t *testing.T) {
	attendance := &mockAttendanceRepo{}
	svc := newAttendanceService(activeEmployee(4), attendance)

	record, err := svc.CheckIn(context.Background(), 4, "Mumbai HQ")

	require.NoError(t, err)
	assert.Equal(t, 7, record.ID)
	assert.Equal(t, 4, record.EmployeeID)
	assert.Equal(t, "Mumbai HQ", record.Location)
	assert.Equal(t, models.AttendanceStatusPresent, record.Status)
}

func TestCheckIn_Idempotent(t *testing.T) {
	existing := &models.AttendanceRecord{ID: 1, EmployeeID: 4, CheckInAt: time.Now()}
	attendance := &mockAttendanceRepo{records: map[int]*models.AttendanceRecord{4: existing}}

	svc := newAttendanceService(activeEmployee(4), attendance)

	record, err := svc.CheckIn(context.Background(), 4, "elsewhere")

	require.NoError(t, err)
	assert.Equal(t, existing, record)
	assert.Nil(t, attendance.created)
}

func TestCheckIn_InactiveEmployee(t *testing.T) {
	employees := &mockEmployeeRepo{employees: map[int]*models.Employee{
		4: {ID: 4, IsActive: false},
	}}
	svc := newAttendanceService(employees, &mockAttendanceRepo{})

	_, err := svc.CheckIn(context.Background(), 4, "")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "not active")
}

func TestCheckOut(t *testing.T) {
	checkIn := time.Now().Add(-8 * time.Hour)
	attendance := &mockAttendanceRepo{records: map[int]*models.AttendanceRecord{
		4: {ID: 1, EmployeeID: 4, CheckInAt: checkIn},
	}}

	svc := newAttendanceService(activeEmployee(4), attendance)

	record, err := svc.CheckOut(context.Background(), 4)

	require.NoError(t, err)
	require.NotNil(t, record.CheckOutAt)
	assert.Equal(t, models.AttendanceStatusPresent, record.Status)
	assert.Equal(t, record, attendance.updated)
}

func TestCheckOut_ShortDayIsHalfDay(t *testing.T) {
	checkIn := time.Now().Add(-2 * time.Hour)
	attendance := &mockAttendanceRepo{records: map[int]*models.AttendanceRecord{
		4: {ID: 1, EmployeeID: 4, CheckInAt: checkIn},
	}}

	svc := newAttendanceService(activeEmployee(4), attendance)

	record, err := svc.CheckOut(context.Background(), 4)

	require.NoError(t, err)
	assert.Equal(t, models.AttendanceStatusHalfDay, record.Status)
}

func TestCheckOut_NoCheckIn(t *testing.T) {
	svc := newAttendanceService(activeEmployee(4), &mockAttendanceRepo{})

	_, err := svc.CheckOut(context.Background(), 4)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no check-in found")
}

func TestCheckOut_AlreadyCheckedOut(t *testing.T) {
	out := time.Now()
	attendance := &mockAttendanceRepo{records: map[int]*models.AttendanceRecord{
		4: {ID: 1, EmployeeID: 4, CheckInAt: out.Add(-9 * time.Hour), CheckOutAt: &out},
	}}

	svc := newAttendanceService(activeEmployee(4), attendance)

	_, err := svc.CheckOut(context.Background(), 4)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "already checked out")
}

func TestGetRecords_InvalidRange(t *testing.T) {
	svc := newAttendanceService(activeEmployee(4), &mockAttendanceRepo{})

	now := time.Now()
	_, err := svc.GetRecords(context.Background(), 4, now, now.AddDate(0, 0, -1))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid date range")
}
