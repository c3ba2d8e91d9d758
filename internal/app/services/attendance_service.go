package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/nkurunziza/erinda/internal/app/models"
	"github.com/nkurunziza/erinda/internal/app/repositories"
	"github.com/nkurunziza/erinda/internal/metrics"
)

// AttendanceService handles the check-in/check-out lifecycle
type AttendanceService interface {
	CheckIn(ctx context.Context, callerID int64, targetUserID *int64, remarks *string) (*models.AttendanceRecord, error)
	CheckOut(ctx context.Context, callerID int64) (*models.AttendanceRecord, error)
	List(ctx context.Context, callerID int64, role models.Role) ([]models.AttendanceRecord, error)
}

type attendanceService struct {
	attendanceRepo repositories.AttendanceStore
	logger         zerolog.Logger
}

// NewAttendanceService creates a new AttendanceService
func NewAttendanceService(attendanceRepo repositories.AttendanceStore, logger zerolog.Logger) AttendanceService {
	return &attendanceService{
		attendanceRepo: attendanceRepo,
		logger:         logger,
	}
}

// CheckIn records a Present attendance event for the target user, or
// the caller when no target is supplied. Each check-in is an
// independent event; nothing enforces one record per day.
func (s *attendanceService) CheckIn(ctx context.Context, callerID int64, targetUserID *int64, remarks *string) (*models.AttendanceRecord, error) {
	userID := callerID
	if targetUserID != nil {
		userID = *targetUserID
	}

	record := &models.AttendanceRecord{
		UserID:  userID,
		Status:  models.AttendancePresent,
		Remarks: remarks,
	}

	if err := s.attendanceRepo.Create(ctx, record); err != nil {
		return nil, err
	}

	metrics.CheckInsTotal.Inc()
	s.logger.Info().Int64("userId", userID).Int64("recordId", record.ID).Msg("Attendance check-in recorded")
	return record, nil
}

// CheckOut closes the caller's latest open check-in.
func (s *attendanceService) CheckOut(ctx context.Context, callerID int64) (*models.AttendanceRecord, error) {
	record, err := s.attendanceRepo.CloseLatestOpen(ctx, callerID)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("userId", callerID).Int64("recordId", record.ID).Msg("Attendance check-out recorded")
	return record, nil
}

// List returns attendance history newest first. Privileged roles see
// every user's records; everyone else sees only their own.
func (s *attendanceService) List(ctx context.Context, callerID int64, role models.Role) ([]models.AttendanceRecord, error) {
	if role.IsPrivileged() {
		return s.attendanceRepo.ListAll(ctx)
	}
	return s.attendanceRepo.ListByUser(ctx, callerID)
}
