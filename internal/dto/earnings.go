package dto

import "github.com/habstrakT808/Sistem-Manajemen-Project-BPS-sub003/internal/model"

// UserEarningsSummary is one user's transport total for a month.
type UserEarningsSummary struct {
	UserID      string `json:"user_id"`
	NamaLengkap string `json:"nama_lengkap"`
	Total       int64  `json:"total"`
	Entries     int    `json:"entries"`
}

// DailyEarnings is one calendar day's totals within a month. The
// monthly breakdown always has exactly as many elements as the month
// has days, zero-filled.
type DailyEarnings struct {
	Date           model.DateOnly `json:"date"`
	TransportTotal int64          `json:"transport_total"`
	HonorTotal     int64          `json:"honor_total"`
	Total          int64          `json:"total"`
}

// MonthlyEarningsResponse is the month-level aggregation.
type MonthlyEarningsResponse struct {
	Bulan          int                   `json:"bulan"`
	Tahun          int                   `json:"tahun"`
	TransportTotal int64                 `json:"transport_total"`
	HonorTotal     int64                 `json:"honor_total"`
	Total          int64                 `json:"total"`
	PerUser        []UserEarningsSummary `json:"per_user"`
	PerDay         []DailyEarnings       `json:"per_day"`
}

// DailyDetailResponse lists the ledger entries and mitra honor tasks
// behind one day.
type DailyDetailResponse struct {
	Date           model.DateOnly              `json:"date"`
	TransportTotal int64                       `json:"transport_total"`
	HonorTotal     int64                       `json:"honor_total"`
	Total          int64                       `json:"total"`
	Entries        []model.EarningsLedgerEntry `json:"entries"`
	HonorTasks     []model.Task                `json:"honor_tasks,omitempty"`
}

// MonthHistory is one month's total in the rolling history.
type MonthHistory struct {
	Bulan int   `json:"bulan"`
	Tahun int   `json:"tahun"`
	Total int64 `json:"total"`
}

// MyEarningsResponse is the pegawai self-service earnings view.
type MyEarningsResponse struct {
	Bulan   int                         `json:"bulan"`
	Tahun   int                         `json:"tahun"`
	Total   int64                       `json:"total"`
	PerDay  []DailyEarnings             `json:"per_day"`
	Entries []model.EarningsLedgerEntry `json:"entries"`
	History []MonthHistory              `json:"history"`
}
