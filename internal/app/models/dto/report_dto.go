package dto

// CreateReportRequest is the incident report payload
type CreateReportRequest struct {
	Title       string  `json:"title" binding:"required"`
	Description string  `json:"description" binding:"required"`
	Location    *string `json:"location"`
	Category    *string `json:"category"`
}

// UpdateReportStatusRequest carries the new status for a report
type UpdateReportStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
