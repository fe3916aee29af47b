package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/habstrakT808/Sistem-Manajemen-Project-BPS-sub003/internal/model"
	pkgerrors "github.com/habstrakT808/Sistem-Manajemen-Project-BPS-sub003/pkg/errors"
)

// LedgerScope restricts ledger queries to what a caller may see. Zero
// value means no restriction (admin).
type LedgerScope struct {
	// KetuaTimID limits entries to allocations under projects owned by
	// this ketua tim.
	KetuaTimID string
	// UserID limits entries to one pegawai's own rows.
	UserID string
}

// EarningsLedgerRepository handles the append-only earnings ledger.
type EarningsLedgerRepository interface {
	Create(ctx context.Context, entry *model.EarningsLedgerEntry) error
	GetBySource(ctx context.Context, sourceTable, sourceID string) (*model.EarningsLedgerEntry, error)
	VoidBySource(ctx context.Context, sourceTable, sourceID string, at time.Time) error
	ListByUserInRange(ctx context.Context, userID string, start, end model.DateOnly) ([]model.EarningsLedgerEntry, error)
	ListTransportInRange(ctx context.Context, start, end model.DateOnly, scope LedgerScope) ([]model.EarningsLedgerEntry, error)
}

type earningsLedgerRepo struct {
	db *gorm.DB
}

func NewEarningsLedgerRepo(db *gorm.DB) EarningsLedgerRepository {
	return &earningsLedgerRepo{db: db}
}

// Create appends one entry. The partial unique index on (source_table,
// source_id) WHERE voided_at IS NULL surfaces a repeat live posting as
// ErrDuplicateLedgerEntry; voided history never blocks a new posting.
func (r *earningsLedgerRepo) Create(ctx context.Context, entry *model.EarningsLedgerEntry) error {
	err := r.db.WithContext(ctx).Create(entry).Error
	if err != nil && errors.Is(err, gorm.ErrDuplicatedKey) {
		return pkgerrors.ErrDuplicateLedgerEntry
	}
	return err
}

// GetBySource returns the live (non-voided) posting for a source row,
// or nil when none exists.
func (r *earningsLedgerRepo) GetBySource(ctx context.Context, sourceTable, sourceID string) (*model.EarningsLedgerEntry, error) {
	var entry model.EarningsLedgerEntry
	err := r.db.WithContext(ctx).
		Where("source_table = ? AND source_id = ? AND voided_at IS NULL", sourceTable, sourceID).
		First(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &entry, nil
}

// VoidBySource marks the entry for a source row as voided. Entries are
// never deleted; voided rows drop out of every aggregate.
func (r *earningsLedgerRepo) VoidBySource(ctx context.Context, sourceTable, sourceID string, at time.Time) error {
	return r.db.WithContext(ctx).Model(&model.EarningsLedgerEntry{}).
		Where("source_table = ? AND source_id = ?", sourceTable, sourceID).
		Where("voided_at IS NULL").
		Update("voided_at", at).Error
}

func (r *earningsLedgerRepo) ListByUserInRange(ctx context.Context, userID string, start, end model.DateOnly) ([]model.EarningsLedgerEntry, error) {
	var entries []model.EarningsLedgerEntry
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Where("voided_at IS NULL").
		Where("occurred_on >= ? AND occurred_on <= ?", start, end).
		Order("occurred_on ASC").
		Find(&entries).Error
	return entries, err
}

func (r *earningsLedgerRepo) ListTransportInRange(ctx context.Context, start, end model.DateOnly, scope LedgerScope) ([]model.EarningsLedgerEntry, error) {
	var entries []model.EarningsLedgerEntry
	q := r.db.WithContext(ctx).Model(&model.EarningsLedgerEntry{}).
		Where("earnings_ledger.type = ?", model.EarningTypeTransport).
		Where("earnings_ledger.voided_at IS NULL").
		Where("earnings_ledger.occurred_on >= ? AND earnings_ledger.occurred_on <= ?", start, end)
	if scope.UserID != "" {
		q = q.Where("earnings_ledger.user_id = ?", scope.UserID)
	}
	if scope.KetuaTimID != "" {
		q = q.
			Joins("JOIN task_transport_allocations a ON earnings_ledger.source_table = ? AND a.id = earnings_ledger.source_id",
				model.SourceTableAllocations).
			Joins("JOIN tasks t ON t.id = a.task_id").
			Joins("JOIN projects p ON p.id = t.project_id").
			Where("p.ketua_tim_id = ?", scope.KetuaTimID)
	}
	err := q.Order("earnings_ledger.occurred_on ASC").Find(&entries).Error
	return entries, err
}

// FinancialRecordRepository handles monthly project spending records.
type FinancialRecordRepository interface {
	BatchCreate(ctx context.Context, records []model.FinancialRecord) error
	ListByProject(ctx context.Context, projectID string) ([]model.FinancialRecord, error)
	ListByMonth(ctx context.Context, projectIDs []string, bulan, tahun int) ([]model.FinancialRecord, error)
	SumByRecipientMonth(ctx context.Context, recipientType, recipientID string, bulan, tahun int) (int64, error)
	DeleteByProject(ctx context.Context, projectID string) error
}

type financialRecordRepo struct {
	db *gorm.DB
}

func NewFinancialRecordRepo(db *gorm.DB) FinancialRecordRepository {
	return &financialRecordRepo{db: db}
}

func (r *financialRecordRepo) BatchCreate(ctx context.Context, records []model.FinancialRecord) error {
	if len(records) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&records).Error
}

func (r *financialRecordRepo) ListByProject(ctx context.Context, projectID string) ([]model.FinancialRecord, error) {
	var records []model.FinancialRecord
	err := r.db.WithContext(ctx).Where("project_id = ?", projectID).Order("created_at ASC").Find(&records).Error
	return records, err
}

func (r *financialRecordRepo) ListByMonth(ctx context.Context, projectIDs []string, bulan, tahun int) ([]model.FinancialRecord, error) {
	var records []model.FinancialRecord
	q := r.db.WithContext(ctx).Where("bulan = ? AND tahun = ?", bulan, tahun)
	if projectIDs != nil {
		if len(projectIDs) == 0 {
			return nil, nil
		}
		q = q.Where("project_id IN ?", projectIDs)
	}
	err := q.Order("created_at ASC").Find(&records).Error
	return records, err
}

func (r *financialRecordRepo) SumByRecipientMonth(ctx context.Context, recipientType, recipientID string, bulan, tahun int) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&model.FinancialRecord{}).
		Where("recipient_type = ? AND recipient_id = ?", recipientType, recipientID).
		Where("bulan = ? AND tahun = ?", bulan, tahun).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total).Error
	return total, err
}

func (r *financialRecordRepo) DeleteByProject(ctx context.Context, projectID string) error {
	return r.db.WithContext(ctx).Where("project_id = ?", projectID).Delete(&model.FinancialRecord{}).Error
}
