package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/habstrakT808/Sistem-Manajemen-Project-BPS-sub003/internal/model"
	pkgerrors "github.com/habstrakT808/Sistem-Manajemen-Project-BPS-sub003/pkg/errors"
)

// TransportAllocationRepository handles transport allocation rows.
type TransportAllocationRepository interface {
	BatchCreate(ctx context.Context, allocations []model.TransportAllocation) error
	GetByID(ctx context.Context, id string) (*model.TransportAllocation, error)
	ListByTask(ctx context.Context, taskID string, activeOnly bool) ([]model.TransportAllocation, error)
	ListByUser(ctx context.Context, userID string, activeOnly bool) ([]model.TransportAllocation, error)
	ListActiveDatedInRange(ctx context.Context, start, end model.DateOnly) ([]model.TransportAllocation, error)
	HasActiveOnDate(ctx context.Context, userID string, date model.DateOnly) (bool, error)
	SetDate(ctx context.Context, id string, date model.DateOnly, at time.Time) error
	ClearDate(ctx context.Context, id string) error
	Cancel(ctx context.Context, id string, at time.Time) error
	CountActiveByTask(ctx context.Context, taskID string) (int64, error)
}

type transportAllocationRepo struct {
	db *gorm.DB
}

func NewTransportAllocationRepo(db *gorm.DB) TransportAllocationRepository {
	return &transportAllocationRepo{db: db}
}

func (r *transportAllocationRepo) BatchCreate(ctx context.Context, allocations []model.TransportAllocation) error {
	if len(allocations) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&allocations).Error
}

func (r *transportAllocationRepo) GetByID(ctx context.Context, id string) (*model.TransportAllocation, error) {
	var alloc model.TransportAllocation
	err := r.db.WithContext(ctx).Preload("Task").Where("id = ?", id).First(&alloc).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &alloc, nil
}

func (r *transportAllocationRepo) ListByTask(ctx context.Context, taskID string, activeOnly bool) ([]model.TransportAllocation, error) {
	var allocations []model.TransportAllocation
	q := r.db.WithContext(ctx).Where("task_id = ?", taskID)
	if activeOnly {
		q = q.Where("canceled_at IS NULL")
	}
	err := q.Order("created_at ASC").Find(&allocations).Error
	return allocations, err
}

func (r *transportAllocationRepo) ListByUser(ctx context.Context, userID string, activeOnly bool) ([]model.TransportAllocation, error) {
	var allocations []model.TransportAllocation
	q := r.db.WithContext(ctx).Preload("Task").Where("user_id = ?", userID)
	if activeOnly {
		q = q.Where("canceled_at IS NULL")
	}
	err := q.Order("created_at ASC").Find(&allocations).Error
	return allocations, err
}

func (r *transportAllocationRepo) ListActiveDatedInRange(ctx context.Context, start, end model.DateOnly) ([]model.TransportAllocation, error) {
	var allocations []model.TransportAllocation
	err := r.db.WithContext(ctx).
		Where("canceled_at IS NULL").
		Where("allocation_date IS NOT NULL").
		Where("allocation_date >= ? AND allocation_date <= ?", start, end).
		Find(&allocations).Error
	return allocations, err
}

func (r *transportAllocationRepo) HasActiveOnDate(ctx context.Context, userID string, date model.DateOnly) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.TransportAllocation{}).
		Where("user_id = ?", userID).
		Where("allocation_date = ?", date).
		Where("canceled_at IS NULL").
		Count(&count).Error
	return count > 0, err
}

// SetDate assigns a calendar date to an undated allocation. The partial
// unique index on (user_id, allocation_date) rejects a second active
// allocation on the same day; that violation surfaces as ErrDateTaken.
func (r *transportAllocationRepo) SetDate(ctx context.Context, id string, date model.DateOnly, at time.Time) error {
	result := r.db.WithContext(ctx).Model(&model.TransportAllocation{}).
		Where("id = ?", id).
		Where("allocation_date IS NULL").
		Where("canceled_at IS NULL").
		Updates(map[string]interface{}{
			"allocation_date": date,
			"allocated_at":    at,
		})
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return pkgerrors.ErrDateTaken
		}
		return result.Error
	}
	if result.RowsAffected == 0 {
		return pkgerrors.ErrOptimisticLock
	}
	return nil
}

func (r *transportAllocationRepo) ClearDate(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Model(&model.TransportAllocation{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"allocation_date": nil,
			"allocated_at":    nil,
		}).Error
}

// Cancel soft-deletes an allocation. The guard on canceled_at makes a
// double cancel a no-op reported as ErrOptimisticLock.
func (r *transportAllocationRepo) Cancel(ctx context.Context, id string, at time.Time) error {
	result := r.db.WithContext(ctx).Model(&model.TransportAllocation{}).
		Where("id = ?", id).
		Where("canceled_at IS NULL").
		Update("canceled_at", at)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return pkgerrors.ErrOptimisticLock
	}
	return nil
}

func (r *transportAllocationRepo) CountActiveByTask(ctx context.Context, taskID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.TransportAllocation{}).
		Where("task_id = ? AND canceled_at IS NULL", taskID).
		Count(&count).Error
	return count, err
}
