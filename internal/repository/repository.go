package repository

import (
	"context"

	"gorm.io/gorm"
)

// Repository aggregates every data-access interface.
type Repository struct {
	User            UserRepository
	Team            TeamRepository
	Project         ProjectRepository
	Assignment      ProjectAssignmentRepository
	Member          ProjectMemberRepository
	Task            TaskRepository
	Allocation      TransportAllocationRepository
	Ledger          EarningsLedgerRepository
	FinancialRecord FinancialRecordRepository
	Mitra           MitraRepository
	MitraReview     MitraReviewRepository
	GlobalSchedule  GlobalScheduleRepository
	Notification    NotificationRepository
	SystemSetting   SystemSettingRepository

	// Tx runs a function with a Repository bound to one database
	// transaction. Multi-step writes (task + allocations, cap check +
	// insert, date + ledger posting) must go through it.
	Tx TxRunner
}

// TxRunner runs a function inside a single transaction.
type TxRunner interface {
	InTx(ctx context.Context, fn func(txRepo *Repository) error) error
}

// NewRepository wires the GORM implementations.
func NewRepository(db *gorm.DB) *Repository {
	r := &Repository{
		User:            NewUserRepo(db),
		Team:            NewTeamRepo(db),
		Project:         NewProjectRepo(db),
		Assignment:      NewProjectAssignmentRepo(db),
		Member:          NewProjectMemberRepo(db),
		Task:            NewTaskRepo(db),
		Allocation:      NewTransportAllocationRepo(db),
		Ledger:          NewEarningsLedgerRepo(db),
		FinancialRecord: NewFinancialRecordRepo(db),
		Mitra:           NewMitraRepo(db),
		MitraReview:     NewMitraReviewRepo(db),
		GlobalSchedule:  NewGlobalScheduleRepo(db),
		Notification:    NewNotificationRepo(db),
		SystemSetting:   NewSystemSettingRepo(db),
	}
	r.Tx = &gormTxRunner{db: db}
	return r
}

type gormTxRunner struct {
	db *gorm.DB
}

func (t *gormTxRunner) InTx(ctx context.Context, fn func(txRepo *Repository) error) error {
	return t.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewRepository(tx))
	})
}
