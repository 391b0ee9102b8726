package dtos

type DashboardStats struct {
	TotalJobs           int64 `json:"totalJobs"`
	ActiveJobs          int64 `json:"activeJobs"`
	TotalApplications   int64 `json:"totalApplications"`
	PendingApplications int64 `json:"pendingApplications"`
}

type MonthCount struct {
	Year  int   `json:"year"`
	Month int   `json:"month"`
	Count int64 `json:"count"`
}

type StatusCount struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

type DashboardCharts struct {
	ApplicationsByMonth  []MonthCount  `json:"applicationsByMonth"`
	ApplicationsByStatus []StatusCount `json:"applicationsByStatus"`
}

type DashboardData struct {
	Stats      DashboardStats  `json:"stats"`
	Charts     DashboardCharts `json:"charts"`
	RecentJobs []JobWithCount  `json:"recentJobs"`
}
