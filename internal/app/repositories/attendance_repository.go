package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nkurunziza/erinda/internal/app/models"
	"github.com/nkurunziza/erinda/internal/pkg/apperrors"
)

// AttendanceRepository handles database operations for attendance records
type AttendanceRepository struct {
	db *pgxpool.Pool
}

// NewAttendanceRepository creates a new AttendanceRepository
func NewAttendanceRepository(db *pgxpool.Pool) *AttendanceRepository {
	return &AttendanceRepository{db: db}
}

// Create inserts a new attendance record and fills in the
// store-assigned id and timestamps.
func (r *AttendanceRepository) Create(ctx context.Context, record *models.AttendanceRecord) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO attendance_records (user_id, status, remarks)
		VALUES ($1, $2, $3)
		RETURNING id, date, check_in_time`,
		record.UserID, record.Status, record.Remarks).Scan(&record.ID, &record.Date, &record.CheckInTime)

	if err != nil {
		return fmt.Errorf("error creating attendance record: %w", err)
	}

	return nil
}

// ListAll retrieves every attendance record joined with the owning
// user's username and full name, newest first.
func (r *AttendanceRepository) ListAll(ctx context.Context) ([]models.AttendanceRecord, error) {
	return r.list(ctx, nil)
}

// ListByUser retrieves one user's attendance records, newest first.
func (r *AttendanceRepository) ListByUser(ctx context.Context, userID int64) ([]models.AttendanceRecord, error) {
	return r.list(ctx, &userID)
}

func (r *AttendanceRepository) list(ctx context.Context, userID *int64) ([]models.AttendanceRecord, error) {
	query := squirrel.Select(
		"a.id", "a.user_id", "a.date", "a.status", "a.check_in_time",
		"a.check_out_time", "a.remarks", "u.username", "u.full_name").
		From("attendance_records a").
		Join("users u ON u.id = a.user_id").
		OrderBy("a.date DESC").
		PlaceholderFormat(squirrel.Dollar)

	if userID != nil {
		query = query.Where("a.user_id = ?", *userID)
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing attendance records: %w", err)
	}
	defer rows.Close()

	records := make([]models.AttendanceRecord, 0)
	for rows.Next() {
		var rec models.AttendanceRecord
		if err := rows.Scan(
			&rec.ID, &rec.UserID, &rec.Date, &rec.Status, &rec.CheckInTime,
			&rec.CheckOutTime, &rec.Remarks, &rec.Username, &rec.FullName); err != nil {
			return nil, fmt.Errorf("error scanning attendance record: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating attendance records: %w", err)
	}

	return records, nil
}

// CloseLatestOpen stamps check_out_time on the user's most recent
// record that has not been checked out yet.
func (r *AttendanceRepository) CloseLatestOpen(ctx context.Context, userID int64) (*models.AttendanceRecord, error) {
	record := &models.AttendanceRecord{}
	err := r.db.QueryRow(ctx, `
		UPDATE attendance_records
		SET check_out_time = NOW()
		WHERE id = (
			SELECT id FROM attendance_records
			WHERE user_id = $1 AND check_out_time IS NULL
			ORDER BY check_in_time DESC
			LIMIT 1
		)
		RETURNING id, user_id, date, status, check_in_time, check_out_time, remarks`,
		userID).Scan(
		&record.ID, &record.UserID, &record.Date, &record.Status,
		&record.CheckInTime, &record.CheckOutTime, &record.Remarks)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNoOpenCheckIn
		}
		return nil, fmt.Errorf("error closing attendance record: %w", err)
	}

	return record, nil
}
