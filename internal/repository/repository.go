package repository

import (
	"context"
	"database/sql"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"crm-service/internal/models"
	"crm-service/internal/repository/postgres"
	"crm-service/internal/repository/rediscache"
)

// UserRepository defines methods for user repository
type UserRepository interface {
	Create(ctx context.Context, user *models.User) (int, error)
	GetByID(ctx context.Context, id int) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Update(ctx context.Context, user *models.User) error
}

// LeadRepository defines methods for lead repository
type LeadRepository interface {
	Create(ctx context.Context, lead *models.Lead) (int, error)
	GetByID(ctx context.Context, id int) (*models.Lead, error)
	GetAll(ctx context.Context, status models.LeadStatus) ([]*models.Lead, error)
	GetByAssignee(ctx context.Context, employeeID int) ([]*models.Lead, error)
	Update(ctx context.Context, lead *models.Lead) error
	CountByStatus(ctx context.Context, since time.Time) (map[models.LeadStatus]int, error)
}

// EmployeeRepository defines methods for employee repository
type EmployeeRepository interface {
	Create(ctx context.Context, employee *models.Employee) (int, error)
	GetByID(ctx context.Context, id int) (*models.Employee, error)
	GetAll(ctx context.Context, activeOnly bool) ([]*models.Employee, error)
	Update(ctx context.Context, employee *models.Employee) error
	Deactivate(ctx context.Context, id int) error
}

// SnapshotRepository defines methods for eligibility snapshot repository
type SnapshotRepository interface {
	Create(ctx context.Context, snapshot *models.EligibilitySnapshot) (int, error)
	GetByRef(ctx context.Context, ref string) (*models.EligibilitySnapshot, error)
	GetByLeadID(ctx context.Context, leadID int) ([]*models.EligibilitySnapshot, error)
	CountByVerdict(ctx context.Context, since time.Time) (eligible int, notEligible int, err error)
}

// NotificationRepository defines methods for notification repository
type NotificationRepository interface {
	Create(ctx context.Context, notification *models.Notification) (int, error)
	GetForUser(ctx context.Context, userID int) ([]*models.Notification, error)
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

// AttendanceRepository defines methods for attendance repository
type AttendanceRepository interface {
	Create(ctx context.Context, record *models.AttendanceRecord) (int, error)
	GetByEmployeeAndDate(ctx context.Context, employeeID int, date time.Time) (*models.AttendanceRecord, error)
	Update(ctx context.Context, record *models.AttendanceRecord) error
	GetByDateRange(ctx context.Context, employeeID int, from, to time.Time) ([]*models.AttendanceRecord, error)
}

// NotificationStateRepository defines methods for the per-user
// read/removed/deleted notification sets
type NotificationStateRepository interface {
	GetState(ctx context.Context, userID int) (models.NotificationState, error)
	MarkRead(ctx context.Context, userID int, notificationIDs ...int) error
	MarkRemoved(ctx context.Context, userID int, notificationID int) error
	MarkDeleted(ctx context.Context, userID int, notificationID int) error
	Prune(ctx context.Context, userID int, notificationIDs []int) error
}

// RateCacheRepository defines methods for the benchmark rate cache
type RateCacheRepository interface {
	Get(ctx context.Context) (float64, bool, error)
	Set(ctx context.Context, rate float64, ttl time.Duration) error
}

// Repository is a composition of all repositories
type Repository struct {
	DB                *sql.DB
	User              UserRepository
	Lead              LeadRepository
	Employee          EmployeeRepository
	Snapshot          SnapshotRepository
	Notification      NotificationRepository
	Attendance        AttendanceRepository
	NotificationState NotificationStateRepository
	RateCache         RateCacheRepository
}

// NewRepository creates a new repository with all sub-repositories
func NewRepository(db *sql.DB, rdb *goredis.Client) *Repository {
	return &Repository{
		DB:                db,
		User:              postgres.NewUserRepository(db),
		Lead:              postgres.NewLeadRepository(db),
		Employee:          postgres.NewEmployeeRepository(db),
		Snapshot:          postgres.NewSnapshotRepository(db),
		Notification:      postgres.NewNotificationRepository(db),
		Attendance:        postgres.NewAttendanceRepository(db),
		NotificationState: rediscache.NewNotificationStateRepository(rdb),
		RateCache:         rediscache.NewRateCache(rdb),
	}
}

// BeginTx begins a new transaction
func (r *Repository) BeginTx(ctx context.Context) (*sql.Tx, error) {
	return r.DB.BeginTx(ctx, nil)
}
