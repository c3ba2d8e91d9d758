package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/nkurunziza/erinda/internal/app/models"
	"github.com/nkurunziza/erinda/internal/app/models/dto"
	"github.com/nkurunziza/erinda/internal/app/repositories"
)

// DashboardService computes role-dashboard aggregates
type DashboardService interface {
	Stats(ctx context.Context) (*dto.DashboardStats, error)
}

type dashboardService struct {
	userRepo   repositories.UserStore
	reportRepo repositories.ReportStore
	logger     zerolog.Logger
}

// NewDashboardService creates a new DashboardService
func NewDashboardService(userRepo repositories.UserStore, reportRepo repositories.ReportStore, logger zerolog.Logger) DashboardService {
	return &dashboardService{
		userRepo:   userRepo,
		reportRepo: reportRepo,
		logger:     logger,
	}
}

// Stats recomputes the three dashboard counters from the stores on
// every call; nothing is cached.
func (s *dashboardService) Stats(ctx context.Context) (*dto.DashboardStats, error) {
	totalUsers, err := s.userRepo.CountAll(ctx)
	if err != nil {
		return nil, err
	}

	pendingReports, err := s.reportRepo.CountByStatus(ctx, models.ReportPending)
	if err != nil {
		return nil, err
	}

	activeGuards, err := s.userRepo.CountByRole(ctx, models.RoleGuard)
	if err != nil {
		return nil, err
	}

	return &dto.DashboardStats{
		TotalUsers:     totalUsers,
		PendingReports: pendingReports,
		ActiveGuards:   activeGuards,
	}, nil
}
