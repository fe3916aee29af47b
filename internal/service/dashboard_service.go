package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/habstrakT808/Sistem-Manajemen-Project-BPS-sub003/internal/dto"
	"github.com/habstrakT808/Sistem-Manajemen-Project-BPS-sub003/internal/model"
	"github.com/habstrakT808/Sistem-Manajemen-Project-BPS-sub003/internal/repository"
)

// DashboardService aggregates counters for the admin landing page.
type DashboardService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

func NewDashboardService(repo *repository.Repository, logger *zap.Logger) *DashboardService {
	return &DashboardService{repo: repo, logger: logger}
}

// AdminStats collects the admin dashboard counters. Monthly earnings
// cover the current calendar month.
func (s *DashboardService) AdminStats(ctx context.Context) (*dto.AdminDashboardStats, error) {
	stats := &dto.AdminDashboardStats{}

	_, totalUsers, err := s.repo.User.List(ctx, "", 0, 1)
	if err != nil {
		return nil, err
	}
	stats.TotalUsers = totalUsers

	_, totalKetua, err := s.repo.User.List(ctx, model.RoleKetuaTim, 0, 1)
	if err != nil {
		return nil, err
	}
	stats.TotalKetuaTim = totalKetua

	_, totalPegawai, err := s.repo.User.List(ctx, model.RolePegawai, 0, 1)
	if err != nil {
		return nil, err
	}
	stats.TotalPegawai = totalPegawai

	_, totalProjects, err := s.repo.Project.List(ctx, "", "", 0, 1)
	if err != nil {
		return nil, err
	}
	stats.TotalProjects = totalProjects

	_, activeProjects, err := s.repo.Project.List(ctx, "", model.ProjectStatusActive, 0, 1)
	if err != nil {
		return nil, err
	}
	stats.ActiveProjects = activeProjects

	_, totalTasks, err := s.repo.Task.List(ctx, repository.TaskFilter{}, 0, 1)
	if err != nil {
		return nil, err
	}
	stats.TotalTasks = totalTasks

	_, pendingTasks, err := s.repo.Task.List(ctx, repository.TaskFilter{Status: model.TaskStatusPending}, 0, 1)
	if err != nil {
		return nil, err
	}
	stats.PendingTasks = pendingTasks

	_, totalMitra, err := s.repo.Mitra.List(ctx, "", false, 0, 1)
	if err != nil {
		return nil, err
	}
	stats.TotalMitra = totalMitra

	now := timeNow()
	start, end := monthRange(int(now.Month()), now.Year())
	entries, err := s.repo.Ledger.ListTransportInRange(ctx, start, end, repository.LedgerScope{})
	if err != nil {
		return nil, err
	}
	for _, e := range entries {
		stats.MonthlyEarnings += e.Amount
	}

	return stats, nil
}
