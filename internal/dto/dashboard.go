package dto

// AdminDashboardStats is the admin landing-page summary.
type AdminDashboardStats struct {
	TotalUsers      int64 `json:"total_users"`
	TotalKetuaTim   int64 `json:"total_ketua_tim"`
	TotalPegawai    int64 `json:"total_pegawai"`
	TotalProjects   int64 `json:"total_projects"`
	ActiveProjects  int64 `json:"active_projects"`
	TotalTasks      int64 `json:"total_tasks"`
	PendingTasks    int64 `json:"pending_tasks"`
	TotalMitra      int64 `json:"total_mitra"`
	MonthlyEarnings int64 `json:"monthly_earnings"`
}
