package services

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/nkurunziza/erinda/internal/app/models"
	"github.com/nkurunziza/erinda/internal/app/models/dto"
	"github.com/nkurunziza/erinda/internal/pkg/apperrors"
)

func TestCreateReportForcesPendingAndReporter(t *testing.T) {
	store := &fakeReportStore{}
	svc := NewReportService(store, zerolog.Nop())

	report, err := svc.Create(context.Background(), "alice", &dto.CreateReportRequest{
		Title:       "Broken street light",
		Description: "The light at the cell office has been out for a week.",
	})
	if err != nil {
		t.Fatalf("create error: %v", err)
	}

	if report.Status != models.ReportPending {
		t.Fatalf("new report must be Pending, got %q", report.Status)
	}
	if report.SubmittedBy != "alice" {
		t.Fatalf("submittedBy must come from the identity, got %q", report.SubmittedBy)
	}
	if report.ID == 0 {
		t.Fatalf("expected store-assigned id")
	}
}

func TestUpdateReportStatusNormalizes(t *testing.T) {
	store := &fakeReportStore{}
	svc := NewReportService(store, zerolog.Nop())

	created, err := svc.Create(context.Background(), "alice", &dto.CreateReportRequest{
		Title: "t", Description: "d",
	})
	if err != nil {
		t.Fatalf("create error: %v", err)
	}

	updated, err := svc.UpdateStatus(context.Background(), created.ID, "resolved")
	if err != nil {
		t.Fatalf("update error: %v", err)
	}
	if updated.Status != models.ReportResolved {
		t.Fatalf("expected Resolved, got %q", updated.Status)
	}
}

func TestUpdateReportStatusRejectsUnknown(t *testing.T) {
	svc := NewReportService(&fakeReportStore{}, zerolog.Nop())

	_, err := svc.UpdateStatus(context.Background(), 1, "archived")
	if !errors.Is(err, apperrors.ErrInvalidReportStatus) {
		t.Fatalf("expected ErrInvalidReportStatus, got %v", err)
	}
}

func TestUpdateReportStatusMissingReport(t *testing.T) {
	svc := NewReportService(&fakeReportStore{}, zerolog.Nop())

	_, err := svc.UpdateStatus(context.Background(), 404, "Resolved")
	if !errors.Is(err, apperrors.ErrReportNotFound) {
		t.Fatalf("expected ErrReportNotFound, got %v", err)
	}
}
