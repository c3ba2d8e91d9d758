package services

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/nkurunziza/erinda/internal/app/models"
	"github.com/nkurunziza/erinda/internal/app/models/dto"
)

func TestDashboardStats(t *testing.T) {
	users := &fakeUserStore{}
	reports := &fakeReportStore{}

	for _, u := range []*models.User{
		{Username: "a", Email: "a@x", Role: models.RoleGuard},
		{Username: "b", Email: "b@x", Role: models.RoleGuard},
		{Username: "c", Email: "c@x", Role: models.RoleUser},
	} {
		if err := users.Create(context.Background(), u); err != nil {
			t.Fatalf("seed user: %v", err)
		}
	}

	reportSvc := NewReportService(reports, zerolog.Nop())
	r1, err := reportSvc.Create(context.Background(), "a", &dto.CreateReportRequest{Title: "t1", Description: "d"})
	if err != nil {
		t.Fatalf("seed report: %v", err)
	}
	if _, err := reportSvc.Create(context.Background(), "b", &dto.CreateReportRequest{Title: "t2", Description: "d"}); err != nil {
		t.Fatalf("seed report: %v", err)
	}
	if _, err := reportSvc.UpdateStatus(context.Background(), r1.ID, "Resolved"); err != nil {
		t.Fatalf("resolve report: %v", err)
	}

	svc := NewDashboardService(users, reports, zerolog.Nop())
	stats, err := svc.Stats(context.Background())
	if err != nil {
		t.Fatalf("stats error: %v", err)
	}

	if stats.TotalUsers != 3 {
		t.Fatalf("expected 3 users, got %d", stats.TotalUsers)
	}
	if stats.PendingReports != 1 {
		t.Fatalf("expected 1 pending report, got %d", stats.PendingReports)
	}
	if stats.ActiveGuards != 2 {
		t.Fatalf("expected 2 guards, got %d", stats.ActiveGuards)
	}
}
