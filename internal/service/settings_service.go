package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/habstrakT808/Sistem-Manajemen-Project-BPS-sub003/config"
	"github.com/habstrakT808/Sistem-Manajemen-Project-BPS-sub003/internal/dto"
	"github.com/habstrakT808/Sistem-Manajemen-Project-BPS-sub003/internal/model"
	"github.com/habstrakT808/Sistem-Manajemen-Project-BPS-sub003/internal/repository"
)

// SettingsService reads and updates the runtime financial rules. The
// database row wins; config supplies the fallback when the row is
// missing.
type SettingsService struct {
	repo    *repository.Repository
	finance *config.FinanceConfig
	logger  *zap.Logger
}

func NewSettingsService(repo *repository.Repository, finance *config.FinanceConfig, logger *zap.Logger) *SettingsService {
	return &SettingsService{repo: repo, finance: finance, logger: logger}
}

// Get returns the effective settings.
func (s *SettingsService) Get(ctx context.Context) (*model.SystemSetting, error) {
	setting, err := s.repo.SystemSetting.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("get settings: %w", err)
	}
	if setting == nil {
		setting = &model.SystemSetting{
			ID:                 1,
			TransportDailyRate: s.finance.TransportDailyRate,
			MitraMonthlyLimit:  s.finance.MitraMonthlyLimit,
		}
	}
	return setting, nil
}

// TransportDailyRate is the amount posted per reimbursable day.
func (s *SettingsService) TransportDailyRate(ctx context.Context) (int64, error) {
	setting, err := s.Get(ctx)
	if err != nil {
		return 0, err
	}
	return setting.TransportDailyRate, nil
}

// MitraMonthlyLimit is the cap on a mitra's honor per calendar month.
func (s *SettingsService) MitraMonthlyLimit(ctx context.Context) (int64, error) {
	setting, err := s.Get(ctx)
	if err != nil {
		return 0, err
	}
	return setting.MitraMonthlyLimit, nil
}

// Update applies the provided fields. Changes affect future postings
// only; amounts already in the ledger keep the rate they were posted
// with.
func (s *SettingsService) Update(ctx context.Context, adminID string, req *dto.UpdateSettingsRequest) (*model.SystemSetting, error) {
	setting, err := s.Get(ctx)
	if err != nil {
		return nil, err
	}

	if req.TransportDailyRate != nil {
		setting.TransportDailyRate = *req.TransportDailyRate
	}
	if req.MitraMonthlyLimit != nil {
		setting.MitraMonthlyLimit = *req.MitraMonthlyLimit
	}
	setting.UpdatedBy = &adminID

	if err := s.repo.SystemSetting.Update(ctx, setting); err != nil {
		return nil, fmt.Errorf("update settings: %w", err)
	}

	s.logger.Info("system settings updated",
		zap.String("admin_id", adminID),
		zap.Int64("transport_daily_rate", setting.TransportDailyRate),
		zap.Int64("mitra_monthly_limit", setting.MitraMonthlyLimit),
	)
	return setting, nil
}
