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

// ReportRepository handles database operations for incident reports
type ReportRepository struct {
	db *pgxpool.Pool
}

// NewReportRepository creates a new ReportRepository
func NewReportRepository(db *pgxpool.Pool) *ReportRepository {
	return &ReportRepository{db: db}
}

// Create inserts a new report and fills in the store-assigned id and
// creation timestamp.
func (r *ReportRepository) Create(ctx context.Context, report *models.Report) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO reports (title, description, location, category, submitted_by, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at`,
		report.Title, report.Description, report.Location, report.Category,
		report.SubmittedBy, report.Status).Scan(&report.ID, &report.CreatedAt)

	if err != nil {
		return fmt.Errorf("error creating report: %w", err)
	}

	return nil
}

// ListAll retrieves every report, newest first.
func (r *ReportRepository) ListAll(ctx context.Context) ([]models.Report, error) {
	query := squirrel.Select(
		"id", "title", "description", "location", "category", "submitted_by", "status", "created_at").
		From("reports").
		OrderBy("created_at DESC").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing reports: %w", err)
	}
	defer rows.Close()

	reports := make([]models.Report, 0)
	for rows.Next() {
		var rep models.Report
		if err := rows.Scan(
			&rep.ID, &rep.Title, &rep.Description, &rep.Location, &rep.Category,
			&rep.SubmittedBy, &rep.Status, &rep.CreatedAt); err != nil {
			return nil, fmt.Errorf("error scanning report: %w", err)
		}
		reports = append(reports, rep)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating reports: %w", err)
	}

	return reports, nil
}

// UpdateStatus overwrites the status of the identified report and
// returns the updated row.
func (r *ReportRepository) UpdateStatus(ctx context.Context, id int64, status models.ReportStatus) (*models.Report, error) {
	report := &models.Report{}
	err := r.db.QueryRow(ctx, `
		UPDATE reports
		SET status = $1
		WHERE id = $2
		RETURNING id, title, description, location, category, submitted_by, status, created_at`,
		status, id).Scan(
		&report.ID, &report.Title, &report.Description, &report.Location,
		&report.Category, &report.SubmittedBy, &report.Status, &report.CreatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrReportNotFound
		}
		return nil, fmt.Errorf("error updating report status: %w", err)
	}

	return report, nil
}

// CountByStatus returns the number of reports in the given state
func (r *ReportRepository) CountByStatus(ctx context.Context, status models.ReportStatus) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM reports WHERE status = $1`, status).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting reports: %w", err)
	}
	return count, nil
}
