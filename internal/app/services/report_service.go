package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/nkurunziza/erinda/internal/app/models"
	"github.com/nkurunziza/erinda/internal/app/models/dto"
	"github.com/nkurunziza/erinda/internal/app/repositories"
	"github.com/nkurunziza/erinda/internal/metrics"
	"github.com/nkurunziza/erinda/internal/pkg/apperrors"
)

// ReportService handles the incident report lifecycle
type ReportService interface {
	Create(ctx context.Context, submittedBy string, req *dto.CreateReportRequest) (*models.Report, error)
	List(ctx context.Context) ([]models.Report, error)
	UpdateStatus(ctx context.Context, id int64, status string) (*models.Report, error)
}

type reportService struct {
	reportRepo repositories.ReportStore
	logger     zerolog.Logger
}

// NewReportService creates a new ReportService
func NewReportService(reportRepo repositories.ReportStore, logger zerolog.Logger) ReportService {
	return &reportService{
		reportRepo: reportRepo,
		logger:     logger,
	}
}

// Create persists a new report. Status is always Pending at creation
// regardless of input, and submittedBy comes from the authenticated
// identity, never the payload.
func (s *reportService) Create(ctx context.Context, submittedBy string, req *dto.CreateReportRequest) (*models.Report, error) {
	report := &models.Report{
		Title:       req.Title,
		Description: req.Description,
		Location:    req.Location,
		Category:    req.Category,
		SubmittedBy: submittedBy,
		Status:      models.ReportPending,
	}

	if err := s.reportRepo.Create(ctx, report); err != nil {
		return nil, err
	}

	metrics.ReportsCreatedTotal.Inc()
	s.logger.Info().Int64("reportId", report.ID).Str("submittedBy", submittedBy).Msg("Report created")
	return report, nil
}

// List returns all reports newest first, visible to every
// authenticated caller.
func (s *reportService) List(ctx context.Context) ([]models.Report, error) {
	return s.reportRepo.ListAll(ctx)
}

// UpdateStatus normalizes the requested status onto the enumerated set
// and overwrites the report's status field.
func (s *reportService) UpdateStatus(ctx context.Context, id int64, status string) (*models.Report, error) {
	normalized, ok := models.ParseReportStatus(status)
	if !ok {
		return nil, fmt.Errorf("%w: %q", apperrors.ErrInvalidReportStatus, status)
	}

	report, err := s.reportRepo.UpdateStatus(ctx, id, normalized)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("reportId", id).Str("status", string(normalized)).Msg("Report status updated")
	return report, nil
}
