package dto

// DashboardStats is the role-based dashboard aggregate, recomputed from
// the stores on every request.
type DashboardStats struct {
	TotalUsers     int64 `json:"totalUsers"`
	PendingReports int64 `json:"pendingReports"`
	ActiveGuards   int64 `json:"activeGuards"`
}
