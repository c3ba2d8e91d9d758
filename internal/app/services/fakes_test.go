package services

import (
	"context"
	"time"

	"github.com/nkurunziza/erinda/internal/app/models"
	"github.com/nkurunziza/erinda/internal/pkg/apperrors"
)

// In-memory stores standing in for the pgx repositories.

type fakeUserStore struct {
	users  []*models.User
	nextID int64
}

func (f *fakeUserStore) Create(_ context.Context, user *models.User) error {
	for _, u := range f.users {
		if u.Username == user.Username || u.Email == user.Email {
			return apperrors.ErrIdentityTaken
		}
	}
	f.nextID++
	user.ID = f.nextID
	user.CreatedAt = time.Now()
	cp := *user
	f.users = append(f.users, &cp)
	return nil
}

func (f *fakeUserStore) GetByID(_ context.Context, id int64) (*models.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			cp := *u
			return &cp, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

func (f *fakeUserStore) GetByUsername(_ context.Context, username string) (*models.User, error) {
	for _, u := range f.users {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

func (f *fakeUserStore) CountAll(_ context.Context) (int64, error) {
	return int64(len(f.users)), nil
}

func (f *fakeUserStore) CountByRole(_ context.Context, role models.Role) (int64, error) {
	var n int64
	for _, u := range f.users {
		if u.Role == role {
			n++
		}
	}
	return n, nil
}

type fakeAttendanceStore struct {
	records []models.AttendanceRecord
	nextID  int64
}

func (f *fakeAttendanceStore) Create(_ context.Context, record *models.AttendanceRecord) error {
	f.nextID++
	record.ID = f.nextID
	record.Date = time.Now().Truncate(24 * time.Hour)
	record.CheckInTime = time.Now()
	f.records = append(f.records, *record)
	return nil
}

func (f *fakeAttendanceStore) ListAll(_ context.Context) ([]models.AttendanceRecord, error) {
	out := make([]models.AttendanceRecord, len(f.records))
	copy(out, f.records)
	return out, nil
}

func (f *fakeAttendanceStore) ListByUser(_ context.Context, userID int64) ([]models.AttendanceRecord, error) {
	var out []models.AttendanceRecord
	for _, r := range f.records {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeAttendanceStore) CloseLatestOpen(_ context.Context, userID int64) (*models.AttendanceRecord, error) {
	for i := len(f.records) - 1; i >= 0; i-- {
		r := &f.records[i]
		if r.UserID == userID && r.CheckOutTime == nil {
			now := time.Now()
			r.CheckOutTime = &now
			cp := *r
			return &cp, nil
		}
	}
	return nil, apperrors.ErrNoOpenCheckIn
}

type fakeReportStore struct {
	reports []models.Report
	nextID  int64
}

func (f *fakeReportStore) Create(_ context.Context, report *models.Report) error {
	f.nextID++
	report.ID = f.nextID
	report.CreatedAt = time.Now()
	f.reports = append(f.reports, *report)
	return nil
}

func (f *fakeReportStore) ListAll(_ context.Context) ([]models.Report, error) {
	out := make([]models.Report, len(f.reports))
	copy(out, f.reports)
	return out, nil
}

func (f *fakeReportStore) UpdateStatus(_ context.Context, id int64, status models.ReportStatus) (*models.Report, error) {
	for i := range f.reports {
		if f.reports[i].ID == id {
			f.reports[i].Status = status
			cp := f.reports[i]
			return &cp, nil
		}
	}
	return nil, apperrors.ErrReportNotFound
}

func (f *fakeReportStore) CountByStatus(_ context.Context, status models.ReportStatus) (int64, error) {
	var n int64
	for _, r := range f.reports {
		if r.Status == status {
			n++
		}
	}
	return n, nil
}
