package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crm-service/internal/models"
	"crm-service/internal/repository"
)

func newLeadService(leads *mockLeadRepo, employees *mockEmployeeRepo, notifications *mockNotificationRepo) *LeadSvc {
	deps := testDeps(&repository.Repository{
		Lead:              leads,
		Employee:          employees,
		Notification:      notifications,
		NotificationState: &mockNotificationStateRepo{},
	})

	return NewLeadService(deps, NewNotificationService(deps), &mockEmailService{})
}

func TestLeadCreate(t *testing.T) {
	svc := newLeadService(&mockLeadRepo{}, &mockEmployeeRepo{}, &mockNotificationRepo{})

	id, err := svc.Create(context.Background(), &models.LeadCreate{
		Name:  "Asha Rao",
		Phone: "9876543210",
	})

	require.NoError(t, err)
	assert.Equal(t, 1, id)
}

func TestLeadCreate_InvalidPhone(t *testing.T) {
	svc := newLeadService(&mockLeadRepo{}, &mockEmployeeRepo{}, &mockNotificationRepo{})

	_, err := svc.Create(context.Background(), &models.LeadCreate{
		Name:  "Asha Rao",
		Phone: "12345",
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "10-digit")
}

func TestLeadGetAll_UnknownStatus(t *testing.T) {
	svc := newLeadService(&mockLeadRepo{}, &mockEmployeeRepo{}, &mockNotificationRepo{})

	_, err := svc.GetAll(context.Background(), models.LeadStatus("BOGUS"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown lead status")
}

func TestLeadUpdateStatus(t *testing.T) {
	leads := &mockLeadRepo{leads: map[int]*models.Lead{
		1: {ID: 1, Name: "Asha Rao", Status: models.LeadStatusInProgress},
	}}
	svc := newLeadService(leads, &mockEmployeeRepo{}, &mockNotificationRepo{})

	err := svc.UpdateStatus(context.Background(), 1, models.LeadStatusDisbursed)

	require.NoError(t, err)
	require.NotNil(t, leads.updated)
	assert.Equal(t, models.LeadStatusDisbursed, leads.updated.Status)
}

func TestLeadAssign(t *testing.T) {
	leads := &mockLeadRepo{leads: map[int]*models.Lead{
		1: {ID: 1, Name: "Asha Rao", Status: models.LeadStatusNew},
	}}
	employees := &mockEmployeeRepo{employees: map[int]*models.Employee{
		4: {ID: 4, Name: "Ravi Kumar", IsActive: true},
	}}
	notifications := &mockNotificationRepo{}

	svc := newLeadService(leads, employees, notifications)

	err := svc.Assign(context.Background(), 1, 4)

	require.NoError(t, err)
	require.NotNil(t, leads.updated)
	assert.Equal(t, 4, leads.updated.AssignedTo)

	// A fresh lead moves into the pipeline on assignment
	assert.Equal(t, models.LeadStatusInProgress, leads.updated.Status)

	// The assignment announcement is a broadcast
	require.Len(t, notifications.created, 1)
	assert.Equal(t, 0, notifications.created[0].UserID)
	assert.Equal(t, models.NotificationCategoryLead, notifications.created[0].Category)
}

func TestLeadAssign_InactiveEmployee(t *testing.T) {
	leads := &mockLeadRepo{leads: map[int]*models.Lead{
		1: {ID: 1, Name: "Asha Rao", Status: models.LeadStatusNew},
	}}
	employees := &mockEmployeeRepo{employees: map[int]*models.Employee{
		4: {ID: 4, IsActive: false},
	}}

	svc := newLeadService(leads, employees, &mockNotificationRepo{})

	err := svc.Assign(context.Background(), 1, 4)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "not active")
	assert.Nil(t, leads.updated)
}
