// Package repositories contains the pgx data access layer.
package repositories

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nkurunziza/erinda/internal/app/models"
)

// UserStore defines user persistence operations
type UserStore interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	CountAll(ctx context.Context) (int64, error)
	CountByRole(ctx context.Context, role models.Role) (int64, error)
}

// AttendanceStore defines attendance persistence operations
type AttendanceStore interface {
	Create(ctx context.Context, record *models.AttendanceRecord) error
	ListAll(ctx context.Context) ([]models.AttendanceRecord, error)
	ListByUser(ctx context.Context, userID int64) ([]models.AttendanceRecord, error)
	CloseLatestOpen(ctx context.Context, userID int64) (*models.AttendanceRecord, error)
}

// ReportStore defines report persistence operations
type ReportStore interface {
	Create(ctx context.Context, report *models.Report) error
	ListAll(ctx context.Context) ([]models.Report, error)
	UpdateStatus(ctx context.Context, id int64, status models.ReportStatus) (*models.Report, error)
	CountByStatus(ctx context.Context, status models.ReportStatus) (int64, error)
}

// Repositories is the container for all data access objects
type Repositories struct {
	UserRepository       *UserRepository
	AttendanceRepository *AttendanceRepository
	ReportRepository     *ReportRepository
}

// NewRepositories creates all repositories sharing one connection pool
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		UserRepository:       NewUserRepository(db),
		AttendanceRepository: NewAttendanceRepository(db),
		ReportRepository:     NewReportRepository(db),
	}
}
