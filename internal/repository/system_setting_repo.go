package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/habstrakT808/Sistem-Manajemen-Project-BPS-sub003/internal/model"
)

// SystemSettingRepository handles the singleton settings row.
type SystemSettingRepository interface {
	Get(ctx context.Context) (*model.SystemSetting, error)
	Update(ctx context.Context, setting *model.SystemSetting) error
}

type systemSettingRepo struct {
	db *gorm.DB
}

func NewSystemSettingRepo(db *gorm.DB) SystemSettingRepository {
	return &systemSettingRepo{db: db}
}

func (r *systemSettingRepo) Get(ctx context.Context) (*model.SystemSetting, error) {
	var setting model.SystemSetting
	err := r.db.WithContext(ctx).Where("id = ?", 1).First(&setting).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &setting, nil
}

func (r *systemSettingRepo) Update(ctx context.Context, setting *model.SystemSetting) error {
	setting.ID = 1
	return r.db.WithContext(ctx).Save(setting).Error
}
