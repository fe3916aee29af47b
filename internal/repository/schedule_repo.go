package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/habstrakT808/Sistem-Manajemen-Project-BPS-sub003/internal/model"
)

// GlobalScheduleRepository handles blackout schedule persistence.
type GlobalScheduleRepository interface {
	Create(ctx context.Context, schedule *model.GlobalSchedule) error
	GetByID(ctx context.Context, id string) (*model.GlobalSchedule, error)
	List(ctx context.Context) ([]model.GlobalSchedule, error)
	ListCovering(ctx context.Context, date model.DateOnly) ([]model.GlobalSchedule, error)
	Delete(ctx context.Context, id string) error
}

type globalScheduleRepo struct {
	db *gorm.DB
}

func NewGlobalScheduleRepo(db *gorm.DB) GlobalScheduleRepository {
	return &globalScheduleRepo{db: db}
}

func (r *globalScheduleRepo) Create(ctx context.Context, schedule *model.GlobalSchedule) error {
	return r.db.WithContext(ctx).Create(schedule).Error
}

func (r *globalScheduleRepo) GetByID(ctx context.Context, id string) (*model.GlobalSchedule, error) {
	var schedule model.GlobalSchedule
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&schedule).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &schedule, nil
}

func (r *globalScheduleRepo) List(ctx context.Context) ([]model.GlobalSchedule, error) {
	var schedules []model.GlobalSchedule
	err := r.db.WithContext(ctx).Order("start_date ASC").Find(&schedules).Error
	return schedules, err
}

func (r *globalScheduleRepo) ListCovering(ctx context.Context, date model.DateOnly) ([]model.GlobalSchedule, error) {
	var schedules []model.GlobalSchedule
	err := r.db.WithContext(ctx).
		Where("start_date <= ? AND end_date >= ?", date, date).
		Find(&schedules).Error
	return schedules, err
}

func (r *globalScheduleRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.GlobalSchedule{}).Error
}
