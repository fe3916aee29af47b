package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/habstrakT808/Sistem-Manajemen-Project-BPS-sub003/internal/model"
)

// MitraRepository handles mitra persistence.
type MitraRepository interface {
	Create(ctx context.Context, mitra *model.Mitra) error
	GetByID(ctx context.Context, id string) (*model.Mitra, error)
	List(ctx context.Context, search string, activeOnly bool, offset, limit int) ([]model.Mitra, int64, error)
	Update(ctx context.Context, mitra *model.Mitra) error
	UpdateRating(ctx context.Context, id string, average float64) error
}

type mitraRepo struct {
	db *gorm.DB
}

func NewMitraRepo(db *gorm.DB) MitraRepository {
	return &mitraRepo{db: db}
}

func (r *mitraRepo) Create(ctx context.Context, mitra *model.Mitra) error {
	return r.db.WithContext(ctx).Create(mitra).Error
}

func (r *mitraRepo) GetByID(ctx context.Context, id string) (*model.Mitra, error) {
	var mitra model.Mitra
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&mitra).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &mitra, nil
}

func (r *mitraRepo) List(ctx context.Context, search string, activeOnly bool, offset, limit int) ([]model.Mitra, int64, error) {
	var (
		mitras []model.Mitra
		total  int64
	)
	q := r.db.WithContext(ctx).Model(&model.Mitra{})
	if search != "" {
		q = q.Where("nama_mitra ILIKE ?", "%"+search+"%")
	}
	if activeOnly {
		q = q.Where("is_active = ?", true)
	}
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := q.Order("nama_mitra ASC").Offset(offset).Limit(limit).Find(&mitras).Error
	if err != nil {
		return nil, 0, err
	}
	return mitras, total, nil
}

func (r *mitraRepo) Update(ctx context.Context, mitra *model.Mitra) error {
	return r.db.WithContext(ctx).Save(mitra).Error
}

func (r *mitraRepo) UpdateRating(ctx context.Context, id string, average float64) error {
	return r.db.WithContext(ctx).Model(&model.Mitra{}).
		Where("id = ?", id).
		Update("rating_average", average).Error
}

// MitraReviewRepository handles reviews pegawai leave for mitra.
type MitraReviewRepository interface {
	Create(ctx context.Context, review *model.MitraReview) error
	ListByMitra(ctx context.Context, mitraID string) ([]model.MitraReview, error)
	Exists(ctx context.Context, projectID, mitraID, pegawaiID string) (bool, error)
	AverageRating(ctx context.Context, mitraID string) (float64, error)
}

type mitraReviewRepo struct {
	db *gorm.DB
}

func NewMitraReviewRepo(db *gorm.DB) MitraReviewRepository {
	return &mitraReviewRepo{db: db}
}

func (r *mitraReviewRepo) Create(ctx context.Context, review *model.MitraReview) error {
	return r.db.WithContext(ctx).Create(review).Error
}

func (r *mitraReviewRepo) ListByMitra(ctx context.Context, mitraID string) ([]model.MitraReview, error) {
	var reviews []model.MitraReview
	err := r.db.WithContext(ctx).Preload("Pegawai").
		Where("mitra_id = ?", mitraID).
		Order("created_at DESC").
		Find(&reviews).Error
	return reviews, err
}

func (r *mitraReviewRepo) Exists(ctx context.Context, projectID, mitraID, pegawaiID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.MitraReview{}).
		Where("project_id = ? AND mitra_id = ? AND pegawai_id = ?", projectID, mitraID, pegawaiID).
		Count(&count).Error
	return count > 0, err
}

func (r *mitraReviewRepo) AverageRating(ctx context.Context, mitraID string) (float64, error) {
	var average float64
	err := r.db.WithContext(ctx).Model(&model.MitraReview{}).
		Where("mitra_id = ?", mitraID).
		Select("COALESCE(AVG(rating), 0)").
		Scan(&average).Error
	return average, err
}
