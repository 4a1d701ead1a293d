package service

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/sirupsen/logrus"

	"crm-service/configs"
	"crm-service/internal/models"
	"crm-service/internal/repository"
)

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func testConfig() *configs.Config {
	return &configs.Config{
		Rates:         configs.RatesConfig{DefaultRate: 8.5, CacheMinutes: 60},
		Notifications: configs.NotificationConfig{RetentionDays: 90},
	}
}

func testDeps(repos *repository.Repository) Dependencies {
	return Dependencies{
		Repos:  repos,
		Logger: testLogger(),
		Config: testConfig(),
	}
}

type mockLeadRepo struct {
	leads   map[int]*models.Lead
	updated *models.Lead
}

func (m *mockLeadRepo) Create(ctx context.Context, lead *models.Lead) (int, error) {
	return 1, nil
}

func (m *mockLeadRepo) GetByID(ctx context.Context, id int) (*models.Lead, error) {
	lead, ok := m.leads[id]
	if !ok {
		return nil, errors.New("lead not found")
	}
	return lead, nil
}

func (m *mockLeadRepo) GetAll(ctx context.Context, status models.LeadStatus) ([]*models.Lead, error) {
	var out []*models.Lead
	for _, lead := range m.leads {
		out = append(out, lead)
	}
	return out, nil
}

func (m *mockLeadRepo) GetByAssignee(ctx context.Context, employeeID int) ([]*models.Lead, error) {
	return nil, nil
}

func (m *mockLeadRepo) Update(ctx context.Context, lead *models.Lead) error {
	m.updated = lead
	return nil
}

func (m *mockLeadRepo) CountByStatus(ctx context.Context, since time.Time) (map[models.LeadStatus]int, error) {
	return nil, nil
}

type mockEmployeeRepo struct {
	employees map[int]*models.Employee
}

func (m *mockEmployeeRepo) Create(ctx context.Context, employee *models.Employee) (int, error) {
	return 1, nil
}

func (m *mockEmployeeRepo) GetByID(ctx context.Context, id int) (*models.Employee, error) {
	employee, ok := m.employees[id]
	if !ok {
		return nil, errors.New("employee not found")
	}
	return employee, nil
}

func (m *mockEmployeeRepo) GetAll(ctx context.Context, activeOnly bool) ([]*models.Employee, error) {
	return nil, nil
}

func (m *mockEmployeeRepo) Update(ctx context.Context, employee *models.Employee) error {
	return nil
}

func (m *mockEmployeeRepo) Deactivate(ctx context.Context, id int) error {
	return nil
}

type mockSnapshotRepo struct {
	created *models.EligibilitySnapshot
	byRef   map[string]*models.EligibilitySnapshot
}

func (m *mockSnapshotRepo) Create(ctx context.Context, snapshot *models.EligibilitySnapshot) (int, error) {
	m.created = snapshot
	return 42, nil
}

func (m *mockSnapshotRepo) GetByRef(ctx context.Context, ref string) (*models.EligibilitySnapshot, error) {
	snapshot, ok := m.byRef[ref]
	if !ok {
		return nil, errors.New("snapshot not found")
	}
	return snapshot, nil
}

func (m *mockSnapshotRepo) GetByLeadID(ctx context.Context, leadID int) ([]*models.EligibilitySnapshot, error) {
	return nil, nil
}

func (m *mockSnapshotRepo) CountByVerdict(ctx context.Context, since time.Time) (int, int, error) {
	return 0, 0, nil
}

type mockNotificationRepo struct {
	created      []*models.Notification
	server       []*models.Notification
	deleteCutoff time.Time
}

func (m *mockNotificationRepo) Create(ctx context.Context, notification *models.Notification) (int, error) {
	m.created = append(m.created, notification)
	return len(m.created), nil
}

func (m *mockNotificationRepo) GetForUser(ctx context.Context, userID int) ([]*models.Notification, error) {
	return m.server, nil
}

func (m *mockNotificationRepo) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	m.deleteCutoff = cutoff
	return 3, nil
}

type mockNotificationStateRepo struct {
	state   models.NotificationState
	read    []int
	removed []int
	deleted []int
	pruned  []int
}

func (m *mockNotificationStateRepo) GetState(ctx context.Context, userID int) (models.NotificationState, error) {
	if m.state.Read == nil {
		return models.NewNotificationState(), nil
	}
	return m.state, nil
}

func (m *mockNotificationStateRepo) MarkRead(ctx context.Context, userID int, notificationIDs ...int) error {
	m.read = append(m.read, notificationIDs...)
	return nil
}

func (m *mockNotificationStateRepo) MarkRemoved(ctx context.Context, userID int, notificationID int) error {
	m.removed = append(m.removed, notificationID)
	return nil
}

func (m *mockNotificationStateRepo) MarkDeleted(ctx context.Context, userID int, notificationID int) error {
	m.deleted = append(m.deleted, notificationID)
	return nil
}

func (m *mockNotificationStateRepo) Prune(ctx context.Context, userID int, notificationIDs []int) error {
	m.pruned = append(m.pruned, notificationIDs...)
	return nil
}

type mockAttendanceRepo struct {
	records map[int]*models.AttendanceRecord
	created *models.AttendanceRecord
	updated *models.AttendanceRecord
}

func (m *mockAttendanceRepo) Create(ctx context.Context, record *models.AttendanceRecord) (int, error) {
	m.created = record
	return 7, nil
}

func (m *mockAttendanceRepo) GetByEmployeeAndDate(ctx context.Context, employeeID int, date time.Time) (*models.AttendanceRecord, error) {
	record, ok := m.records[employeeID]
	if !ok {
		return nil, errors.New("no record")
	}
	return record, nil
}

func (m *mockAttendanceRepo) Update(ctx context.Context, record *models.AttendanceRecord) error {
	m.updated = record
	return nil
}

func (m *mockAttendanceRepo) GetByDateRange(ctx context.Context, employeeID int, from, to time.Time) ([]*models.AttendanceRecord, error) {
	return nil, nil
}

type mockRateCacheRepo struct {
	cached    float64
	hasCached bool
	setRate   float64
	setTTL    time.Duration
}

func (m *mockRateCacheRepo) Get(ctx context.Context) (float64, bool, error) {
	return m.cached, m.hasCached, nil
}

func (m *mockRateCacheRepo) Set(ctx context.Context, rate float64, ttl time.Duration) error {
	m.setRate = rate
	m.setTTL = ttl
	return nil
}

type mockRateService struct {
	rate float64
	err  error
}

func (m *mockRateService) GetBenchmarkRate(ctx context.Context) (float64, error) {
	return m.rate, m.err
}

func (m *mockRateService) Refresh(ctx context.Context) error {
	return nil
}

type mockEmailService struct{}

func (m *mockEmailService) SendEligibilityDecision(ctx context.Context, lead *models.Lead, result *models.EligibilityResult) error {
	return nil
}

func (m *mockEmailService) SendLeadAssigned(ctx context.Context, employee *models.Employee, lead *models.Lead) error {
	return nil
}
