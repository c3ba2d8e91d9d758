package models

import (
	"strings"
	"time"
)

// ReportStatus enumerates the incident report lifecycle states.
type ReportStatus string

const (
	ReportPending       ReportStatus = "Pending"
	ReportInvestigating ReportStatus = "Investigating"
	ReportResolved      ReportStatus = "Resolved"
)

// ParseReportStatus normalizes a status string onto the enumerated set,
// case-insensitively ("RESOLVED" and "resolved" both map to Resolved).
// Returns false for values outside the set.
func ParseReportStatus(s string) (ReportStatus, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "pending":
		return ReportPending, true
	case "investigating":
		return ReportInvestigating, true
	case "resolved":
		return ReportResolved, true
	}
	return "", false
}

// Report defines an incident report based on the 'reports' table.
// SubmittedBy is the reporter's username captured at creation time and
// immutable thereafter; Status is the only mutable field.
type Report struct {
	ID          int64        `json:"id" db:"id"`
	Title       string       `json:"title" db:"title"`
	Description string       `json:"description" db:"description"`
	Location    *string      `json:"location,omitempty" db:"location"`
	Category    *string      `json:"category,omitempty" db:"category"`
	SubmittedBy string       `json:"submittedBy" db:"submitted_by"`
	Status      ReportStatus `json:"status" db:"status"`
	CreatedAt   time.Time    `json:"createdAt" db:"created_at"`
}
