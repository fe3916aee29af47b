package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/habstrakT808/Sistem-Manajemen-Project-BPS-sub003/internal/dto"
	"github.com/habstrakT808/Sistem-Manajemen-Project-BPS-sub003/internal/model"
	"github.com/habstrakT808/Sistem-Manajemen-Project-BPS-sub003/internal/repository"
	pkgerrors "github.com/habstrakT808/Sistem-Manajemen-Project-BPS-sub003/pkg/errors"
)

// TransportService handles dating and canceling transport allocations.
// Every date assignment posts exactly one earnings ledger entry in the
// same transaction; cancellation voids that entry the same way.
type TransportService struct {
	repo         *repository.Repository
	notification *NotificationService
	logger       *zap.Logger
}

func NewTransportService(repo *repository.Repository, notification *NotificationService, logger *zap.Logger) *TransportService {
	return &TransportService{repo: repo, notification: notification, logger: logger}
}

// AllocateDate assigns a calendar date to one of the pegawai's undated
// allocations. The date must lie inside the task's range, outside every
// blackout schedule, and not collide with another active allocation of
// the same pegawai.
func (s *TransportService) AllocateDate(ctx context.Context, allocationID, pegawaiID string, req *dto.AllocateDateRequest) (*model.TransportAllocation, error) {
	alloc, err := s.repo.Allocation.GetByID(ctx, allocationID)
	if err != nil {
		return nil, fmt.Errorf("get allocation: %w", err)
	}
	if alloc == nil || !alloc.IsActive() {
		return nil, fmt.Errorf("%w: alokasi transport", ErrNotFound)
	}
	if alloc.UserID != pegawaiID {
		return nil, fmt.Errorf("%w: bukan alokasi anda", ErrForbidden)
	}
	if alloc.IsDated() {
		return nil, fmt.Errorf("%w: alokasi sudah punya tanggal", ErrConflict)
	}
	if alloc.Task == nil {
		return nil, fmt.Errorf("get allocation: task not loaded")
	}

	date := req.AllocationDate
	if !date.InRange(alloc.Task.StartDate, alloc.Task.EndDate) {
		return nil, fmt.Errorf("%w: tanggal di luar rentang tugas (%s s.d. %s)",
			ErrValidation, alloc.Task.StartDate, alloc.Task.EndDate)
	}

	blackouts, err := s.repo.GlobalSchedule.ListCovering(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("check blackout: %w", err)
	}
	if len(blackouts) > 0 {
		return nil, fmt.Errorf("%w: tanggal %s diblokir oleh jadwal %q", ErrValidation, date, blackouts[0].Title)
	}

	taken, err := s.repo.Allocation.HasActiveOnDate(ctx, pegawaiID, date)
	if err != nil {
		return nil, fmt.Errorf("check date: %w", err)
	}
	if taken {
		return nil, fmt.Errorf("%w: sudah ada alokasi transport pada %s", ErrConflict, date)
	}

	now := timeNow()
	err = s.repo.Tx.InTx(ctx, func(txRepo *repository.Repository) error {
		if err := txRepo.Allocation.SetDate(ctx, alloc.ID, date, now); err != nil {
			return err
		}
		entry := &model.EarningsLedgerEntry{
			UserID:      pegawaiID,
			Type:        model.EarningTypeTransport,
			Amount:      alloc.Amount,
			Description: "Uang transport: " + alloc.Task.DeskripsiTugas,
			OccurredOn:  date,
			PostedAt:    now,
			SourceTable: model.SourceTableAllocations,
			SourceID:    alloc.ID,
		}
		return txRepo.Ledger.Create(ctx, entry)
	})
	if err != nil {
		switch {
		case errors.Is(err, pkgerrors.ErrDateTaken):
			return nil, fmt.Errorf("%w: sudah ada alokasi transport pada %s", ErrConflict, date)
		case errors.Is(err, pkgerrors.ErrDuplicateLedgerEntry):
			return nil, fmt.Errorf("%w: alokasi sudah pernah dibukukan", ErrConflict)
		case errors.Is(err, pkgerrors.ErrOptimisticLock):
			return nil, fmt.Errorf("%w: alokasi berubah, muat ulang dan coba lagi", ErrConflict)
		}
		return nil, err
	}

	alloc.AllocationDate = &date
	alloc.AllocatedAt = &now

	s.logger.Info("transport date allocated",
		zap.String("allocation_id", alloc.ID),
		zap.String("user_id", pegawaiID),
		zap.String("date", date.String()),
	)
	return alloc, nil
}

// Cancel soft-deletes an allocation and voids its ledger entry if one
// was posted. The pegawai may cancel their own; the ketua tim may
// cancel any allocation under their projects.
func (s *TransportService) Cancel(ctx context.Context, allocationID, requesterID, requesterRole string) error {
	alloc, err := s.repo.Allocation.GetByID(ctx, allocationID)
	if err != nil {
		return fmt.Errorf("get allocation: %w", err)
	}
	if alloc == nil || !alloc.IsActive() {
		return fmt.Errorf("%w: alokasi transport", ErrNotFound)
	}

	switch requesterRole {
	case model.RoleAdmin:
	case model.RolePegawai:
		if alloc.UserID != requesterID {
			return fmt.Errorf("%w: bukan alokasi anda", ErrForbidden)
		}
	case model.RoleKetuaTim:
		task, err := s.repo.Task.GetByID(ctx, alloc.TaskID)
		if err != nil {
			return fmt.Errorf("get task: %w", err)
		}
		if task == nil || task.Project == nil || task.Project.KetuaTimID != requesterID {
			return fmt.Errorf("%w: bukan alokasi dari project anda", ErrForbidden)
		}
	default:
		return fmt.Errorf("%w: role tidak dikenal", ErrForbidden)
	}

	now := timeNow()
	err = s.repo.Tx.InTx(ctx, func(txRepo *repository.Repository) error {
		if err := txRepo.Allocation.Cancel(ctx, alloc.ID, now); err != nil {
			return err
		}
		if alloc.IsDated() {
			if err := txRepo.Ledger.VoidBySource(ctx, model.SourceTableAllocations, alloc.ID, now); err != nil {
				return fmt.Errorf("void ledger entry: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, pkgerrors.ErrOptimisticLock) {
			return fmt.Errorf("%w: alokasi sudah dibatalkan", ErrConflict)
		}
		return err
	}

	if requesterRole != model.RolePegawai {
		s.notification.Notify(ctx, alloc.UserID,
			"Alokasi transport dibatalkan",
			"Salah satu alokasi transport anda dibatalkan oleh ketua tim.", "warning")
	}

	s.logger.Info("transport allocation canceled",
		zap.String("allocation_id", alloc.ID),
		zap.String("by", requesterID),
	)
	return nil
}

// ListMine returns the pegawai's active allocations with task context.
func (s *TransportService) ListMine(ctx context.Context, pegawaiID string) ([]dto.AllocationResponse, error) {
	allocations, err := s.repo.Allocation.ListByUser(ctx, pegawaiID, true)
	if err != nil {
		return nil, fmt.Errorf("list allocations: %w", err)
	}
	out := make([]dto.AllocationResponse, 0, len(allocations))
	for _, a := range allocations {
		out = append(out, toAllocationResponse(a))
	}
	return out, nil
}

// TaskSummary reports quota usage for one task, for the task's leader
// or its pegawai.
func (s *TransportService) TaskSummary(ctx context.Context, taskID, requesterID, requesterRole string) (*dto.TaskAllocationSummary, error) {
	task, err := s.repo.Task.GetByID(ctx, taskID)
	if err != nil {
		return nil, fmt.Errorf("get task: %w", err)
	}
	if task == nil {
		return nil, fmt.Errorf("%w: task", ErrNotFound)
	}
	switch requesterRole {
	case model.RoleAdmin:
	case model.RoleKetuaTim:
		if task.Project == nil || task.Project.KetuaTimID != requesterID {
			return nil, fmt.Errorf("%w: bukan tugas dari project anda", ErrForbidden)
		}
	case model.RolePegawai:
		if task.AssigneeUserID == nil || *task.AssigneeUserID != requesterID {
			return nil, fmt.Errorf("%w: bukan tugas anda", ErrForbidden)
		}
	default:
		return nil, fmt.Errorf("%w: role tidak dikenal", ErrForbidden)
	}

	allocations, err := s.repo.Allocation.ListByTask(ctx, taskID, true)
	if err != nil {
		return nil, fmt.Errorf("list allocations: %w", err)
	}

	summary := &dto.TaskAllocationSummary{
		TaskID:      taskID,
		Quota:       task.TransportDays,
		Allocations: make([]dto.AllocationResponse, 0, len(allocations)),
	}
	for _, a := range allocations {
		if a.IsDated() {
			summary.Dated++
		} else {
			summary.Undated++
		}
		resp := toAllocationResponse(a)
		resp.DeskripsiTugas = task.DeskripsiTugas
		start, end := task.StartDate, task.EndDate
		resp.StartDate, resp.EndDate = &start, &end
		summary.Allocations = append(summary.Allocations, resp)
	}
	return summary, nil
}

func toAllocationResponse(a model.TransportAllocation) dto.AllocationResponse {
	resp := dto.AllocationResponse{
		ID:             a.ID,
		TaskID:         a.TaskID,
		UserID:         a.UserID,
		Amount:         a.Amount,
		AllocationDate: a.AllocationDate,
	}
	if a.Task != nil {
		resp.DeskripsiTugas = a.Task.DeskripsiTugas
		start, end := a.Task.StartDate, a.Task.EndDate
		resp.StartDate, resp.EndDate = &start, &end
	}
	return resp
}
