package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/habstrakT808/Sistem-Manajemen-Project-BPS-sub003/internal/dto"
	"github.com/habstrakT808/Sistem-Manajemen-Project-BPS-sub003/internal/model"
	"github.com/habstrakT808/Sistem-Manajemen-Project-BPS-sub003/internal/repository"
)

// MitraService handles mitra management, the monthly honor cap and
// reviews.
type MitraService struct {
	repo     *repository.Repository
	settings *SettingsService
	logger   *zap.Logger
}

func NewMitraService(repo *repository.Repository, settings *SettingsService, logger *zap.Logger) *MitraService {
	return &MitraService{repo: repo, settings: settings, logger: logger}
}

func (s *MitraService) Create(ctx context.Context, req *dto.CreateMitraRequest) (*model.Mitra, error) {
	mitra := &model.Mitra{
		NamaMitra: req.NamaMitra,
		Jenis:     req.Jenis,
		Kontak:    req.Kontak,
		Alamat:    req.Alamat,
		Deskripsi: req.Deskripsi,
		IsActive:  true,
	}
	if err := s.repo.Mitra.Create(ctx, mitra); err != nil {
		return nil, fmt.Errorf("create mitra: %w", err)
	}
	s.logger.Info("mitra created", zap.String("mitra_id", mitra.ID))
	return mitra, nil
}

func (s *MitraService) GetByID(ctx context.Context, id string) (*model.Mitra, error) {
	mitra, err := s.repo.Mitra.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get mitra: %w", err)
	}
	if mitra == nil {
		return nil, fmt.Errorf("%w: mitra", ErrNotFound)
	}
	return mitra, nil
}

func (s *MitraService) List(ctx context.Context, req *dto.ListMitraRequest) ([]model.Mitra, int64, error) {
	return s.repo.Mitra.List(ctx, req.Search, req.ActiveOnly, req.Offset(), req.PageSize)
}

func (s *MitraService) Update(ctx context.Context, id string, req *dto.UpdateMitraRequest) (*model.Mitra, error) {
	mitra, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.NamaMitra != nil {
		mitra.NamaMitra = *req.NamaMitra
	}
	if req.Jenis != nil {
		mitra.Jenis = *req.Jenis
	}
	if req.Kontak != nil {
		mitra.Kontak = req.Kontak
	}
	if req.Alamat != nil {
		mitra.Alamat = req.Alamat
	}
	if req.Deskripsi != nil {
		mitra.Deskripsi = req.Deskripsi
	}
	if req.IsActive != nil {
		mitra.IsActive = *req.IsActive
	}

	if err := s.repo.Mitra.Update(ctx, mitra); err != nil {
		return nil, fmt.Errorf("update mitra: %w", err)
	}
	return mitra, nil
}

// MonthlyTotal sums the honor already committed to a mitra in a
// calendar month: project-level honor recorded in financial_records
// plus honor on individually assigned tasks.
func (s *MitraService) MonthlyTotal(ctx context.Context, r *repository.Repository, mitraID string, bulan, tahun int) (int64, error) {
	fromRecords, err := r.FinancialRecord.SumByRecipientMonth(ctx, model.AssigneeMitra, mitraID, bulan, tahun)
	if err != nil {
		return 0, fmt.Errorf("sum financial records: %w", err)
	}
	fromTasks, err := r.Task.SumHonorByMitraMonth(ctx, mitraID, bulan, tahun)
	if err != nil {
		return 0, fmt.Errorf("sum task honor: %w", err)
	}
	return fromRecords + fromTasks, nil
}

// CheckMonthlyCap rejects an addition that would push the mitra's
// committed total past the monthly limit. The error carries the
// would-be total so the caller can show it.
func (s *MitraService) CheckMonthlyCap(ctx context.Context, r *repository.Repository, mitraID string, bulan, tahun int, additional int64) error {
	limit, err := s.settings.MitraMonthlyLimit(ctx)
	if err != nil {
		return err
	}
	current, err := s.MonthlyTotal(ctx, r, mitraID, bulan, tahun)
	if err != nil {
		return err
	}
	if current+additional > limit {
		return fmt.Errorf("%w: honor mitra melebihi batas bulanan (total menjadi Rp %d, batas Rp %d)",
			ErrConflict, current+additional, limit)
	}
	return nil
}

// MonthlyTotalReport is the read-side view of the cap for the UI.
func (s *MitraService) MonthlyTotalReport(ctx context.Context, mitraID string, bulan, tahun int) (*dto.MitraMonthlyTotalResponse, error) {
	if _, err := s.GetByID(ctx, mitraID); err != nil {
		return nil, err
	}
	limit, err := s.settings.MitraMonthlyLimit(ctx)
	if err != nil {
		return nil, err
	}
	total, err := s.MonthlyTotal(ctx, s.repo, mitraID, bulan, tahun)
	if err != nil {
		return nil, err
	}
	remaining := limit - total
	if remaining < 0 {
		remaining = 0
	}
	return &dto.MitraMonthlyTotalResponse{
		MitraID:   mitraID,
		Bulan:     bulan,
		Tahun:     tahun,
		Total:     total,
		Limit:     limit,
		Remaining: remaining,
	}, nil
}

// CreateReview records a pegawai's rating for a mitra on a completed
// project and recomputes the mitra's average.
func (s *MitraService) CreateReview(ctx context.Context, pegawaiID, mitraID string, req *dto.CreateMitraReviewRequest) (*model.MitraReview, error) {
	if _, err := s.GetByID(ctx, mitraID); err != nil {
		return nil, err
	}
	project, err := s.repo.Project.GetByID(ctx, req.ProjectID)
	if err != nil {
		return nil, fmt.Errorf("get project: %w", err)
	}
	if project == nil {
		return nil, fmt.Errorf("%w: project", ErrNotFound)
	}

	isMember, err := s.repo.Member.IsMember(ctx, req.ProjectID, pegawaiID)
	if err != nil {
		return nil, fmt.Errorf("check membership: %w", err)
	}
	if !isMember {
		return nil, fmt.Errorf("%w: bukan anggota project ini", ErrForbidden)
	}

	exists, err := s.repo.MitraReview.Exists(ctx, req.ProjectID, mitraID, pegawaiID)
	if err != nil {
		return nil, fmt.Errorf("check review: %w", err)
	}
	if exists {
		return nil, fmt.Errorf("%w: review untuk project ini sudah ada", ErrConflict)
	}

	review := &model.MitraReview{
		ProjectID: req.ProjectID,
		MitraID:   mitraID,
		PegawaiID: pegawaiID,
		Rating:    req.Rating,
		Komentar:  req.Komentar,
	}

	err = s.repo.Tx.InTx(ctx, func(txRepo *repository.Repository) error {
		if err := txRepo.MitraReview.Create(ctx, review); err != nil {
			return fmt.Errorf("create review: %w", err)
		}
		average, err := txRepo.MitraReview.AverageRating(ctx, mitraID)
		if err != nil {
			return fmt.Errorf("average rating: %w", err)
		}
		return txRepo.Mitra.UpdateRating(ctx, mitraID, average)
	})
	if err != nil {
		return nil, err
	}

	return review, nil
}

// ListReviews returns a mitra's reviews, newest first.
func (s *MitraService) ListReviews(ctx context.Context, mitraID string) ([]model.MitraReview, error) {
	if _, err := s.GetByID(ctx, mitraID); err != nil {
		return nil, err
	}
	return s.repo.MitraReview.ListByMitra(ctx, mitraID)
}
