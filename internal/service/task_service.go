package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/habstrakT808/Sistem-Manajemen-Project-BPS-sub003/internal/dto"
	"github.com/habstrakT808/Sistem-Manajemen-Project-BPS-sub003/internal/model"
	"github.com/habstrakT808/Sistem-Manajemen-Project-BPS-sub003/internal/repository"
)

// TaskService handles task management including the transport quota
// materialization at creation time.
type TaskService struct {
	repo         *repository.Repository
	settings     *SettingsService
	mitra        *MitraService
	notification *NotificationService
	logger       *zap.Logger
}

func NewTaskService(repo *repository.Repository, settings *SettingsService, mitra *MitraService, notification *NotificationService, logger *zap.Logger) *TaskService {
	return &TaskService{repo: repo, settings: settings, mitra: mitra, notification: notification, logger: logger}
}

// Create validates the task and materializes its transport quota. The
// task row and its undated allocation rows are written in one
// transaction; a pegawai task with transport_days = N ends up with
// exactly N active allocations, each at the current daily rate.
func (s *TaskService) Create(ctx context.Context, ketuaTimID string, req *dto.CreateTaskRequest) (*model.Task, error) {
	if (req.AssigneeUserID == nil) == (req.AssigneeMitraID == nil) {
		return nil, fmt.Errorf("%w: tugas harus punya tepat satu assignee (pegawai atau mitra)", ErrValidation)
	}
	if req.EndDate.Before(req.StartDate) {
		return nil, fmt.Errorf("%w: end_date sebelum start_date", ErrValidation)
	}

	project, err := s.repo.Project.GetByID(ctx, req.ProjectID)
	if err != nil {
		return nil, fmt.Errorf("get project: %w", err)
	}
	if project == nil {
		return nil, fmt.Errorf("%w: project", ErrNotFound)
	}
	if project.KetuaTimID != ketuaTimID {
		return nil, fmt.Errorf("%w: bukan project anda", ErrForbidden)
	}
	if !req.StartDate.InRange(project.TanggalMulai, project.Deadline) ||
		!req.EndDate.InRange(project.TanggalMulai, project.Deadline) {
		return nil, fmt.Errorf("%w: rentang tugas di luar rentang project", ErrValidation)
	}

	task := &model.Task{
		ProjectID:       req.ProjectID,
		AssigneeUserID:  req.AssigneeUserID,
		AssigneeMitraID: req.AssigneeMitraID,
		DeskripsiTugas:  req.DeskripsiTugas,
		StartDate:       req.StartDate,
		EndDate:         req.EndDate,
		Status:          model.TaskStatusPending,
	}

	if req.AssigneeUserID != nil {
		user, err := s.repo.User.GetByID(ctx, *req.AssigneeUserID)
		if err != nil {
			return nil, fmt.Errorf("get pegawai: %w", err)
		}
		if user == nil || user.Role != model.RolePegawai {
			return nil, fmt.Errorf("%w: pegawai", ErrNotFound)
		}
		if req.HonorAmount != nil {
			return nil, fmt.Errorf("%w: honor hanya untuk tugas mitra", ErrValidation)
		}

		days := req.StartDate.DaysUntil(req.EndDate) + 1
		if req.TransportDays > days {
			return nil, fmt.Errorf("%w: transport_days (%d) melebihi jumlah hari tugas (%d)",
				ErrValidation, req.TransportDays, days)
		}
		task.TransportDays = req.TransportDays
	} else {
		mitra, err := s.repo.Mitra.GetByID(ctx, *req.AssigneeMitraID)
		if err != nil {
			return nil, fmt.Errorf("get mitra: %w", err)
		}
		if mitra == nil || !mitra.IsActive {
			return nil, fmt.Errorf("%w: mitra", ErrNotFound)
		}
		if req.TransportDays > 0 {
			return nil, fmt.Errorf("%w: transport hanya untuk tugas pegawai", ErrValidation)
		}
		task.HonorAmount = req.HonorAmount
	}

	rate, err := s.settings.TransportDailyRate(ctx)
	if err != nil {
		return nil, err
	}

	err = s.repo.Tx.InTx(ctx, func(txRepo *repository.Repository) error {
		if task.IsMitraTask() && task.HonorAmount != nil && *task.HonorAmount > 0 {
			if err := s.mitra.CheckMonthlyCap(ctx, txRepo, *task.AssigneeMitraID,
				int(task.StartDate.Month()), task.StartDate.Year(), *task.HonorAmount); err != nil {
				return err
			}
		}

		if err := txRepo.Task.Create(ctx, task); err != nil {
			return fmt.Errorf("create task: %w", err)
		}

		if task.AssigneeUserID != nil && task.TransportDays > 0 {
			allocations := make([]model.TransportAllocation, 0, task.TransportDays)
			for i := 0; i < task.TransportDays; i++ {
				allocations = append(allocations, model.TransportAllocation{
					TaskID: task.ID,
					UserID: *task.AssigneeUserID,
					Amount: rate,
				})
			}
			if err := txRepo.Allocation.BatchCreate(ctx, allocations); err != nil {
				return fmt.Errorf("materialize transport quota: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if task.AssigneeUserID != nil {
		s.notification.Notify(ctx, *task.AssigneeUserID,
			"Tugas baru", "Anda mendapat tugas baru: "+task.DeskripsiTugas, "info")
	}

	s.logger.Info("task created",
		zap.String("task_id", task.ID),
		zap.String("project_id", task.ProjectID),
		zap.Int("transport_days", task.TransportDays),
	)
	return task, nil
}

// GetByID loads a task with the requester's visibility rules.
func (s *TaskService) GetByID(ctx context.Context, id, requesterID, requesterRole string) (*model.Task, error) {
	task, err := s.repo.Task.GetByID(ctx, id)
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
	return task, nil
}

// List pages through tasks the requester may see.
func (s *TaskService) List(ctx context.Context, requesterID, requesterRole string, req *dto.ListTasksRequest) ([]model.Task, int64, error) {
	filter := repository.TaskFilter{
		ProjectID: req.ProjectID,
		Status:    req.Status,
		Bulan:     req.Bulan,
		Tahun:     req.Tahun,
	}

	switch requesterRole {
	case model.RoleAdmin:
		return s.repo.Task.List(ctx, filter, req.Offset(), req.PageSize)
	case model.RoleKetuaTim:
		ids, err := s.repo.Project.ListIDsByKetuaTim(ctx, requesterID)
		if err != nil {
			return nil, 0, fmt.Errorf("list project ids: %w", err)
		}
		return s.repo.Task.ListByProjects(ctx, ids, filter, req.Offset(), req.PageSize)
	case model.RolePegawai:
		filter.AssigneeUserID = requesterID
		return s.repo.Task.List(ctx, filter, req.Offset(), req.PageSize)
	}
	return nil, 0, fmt.Errorf("%w: role tidak dikenal", ErrForbidden)
}

// Update applies leader-side field changes. The transport quota is
// fixed at creation; dates may only move while they still contain every
// dated allocation.
func (s *TaskService) Update(ctx context.Context, id, ketuaTimID string, req *dto.UpdateTaskRequest) (*model.Task, error) {
	task, err := s.GetByID(ctx, id, ketuaTimID, model.RoleKetuaTim)
	if err != nil {
		return nil, err
	}

	if req.DeskripsiTugas != nil {
		task.DeskripsiTugas = *req.DeskripsiTugas
	}
	if req.StartDate != nil {
		task.StartDate = *req.StartDate
	}
	if req.EndDate != nil {
		task.EndDate = *req.EndDate
	}
	if task.EndDate.Before(task.StartDate) {
		return nil, fmt.Errorf("%w: end_date sebelum start_date", ErrValidation)
	}
	if req.Status != nil {
		task.Status = *req.Status
	}

	if req.StartDate != nil || req.EndDate != nil {
		if !task.StartDate.InRange(task.Project.TanggalMulai, task.Project.Deadline) ||
			!task.EndDate.InRange(task.Project.TanggalMulai, task.Project.Deadline) {
			return nil, fmt.Errorf("%w: rentang tugas di luar rentang project", ErrValidation)
		}

		allocations, err := s.repo.Allocation.ListByTask(ctx, id, true)
		if err != nil {
			return nil, fmt.Errorf("list allocations: %w", err)
		}
		for _, a := range allocations {
			if a.AllocationDate != nil && !a.AllocationDate.InRange(task.StartDate, task.EndDate) {
				return nil, fmt.Errorf("%w: ada alokasi transport bertanggal %s di luar rentang baru",
					ErrConflict, a.AllocationDate.String())
			}
		}
	}

	task.Project = nil
	task.AssigneeUser = nil
	task.AssigneeMitra = nil

	if err := s.repo.Task.Update(ctx, task); err != nil {
		return nil, fmt.Errorf("update task: %w", err)
	}
	return task, nil
}

// Respond lets the assigned pegawai report progress.
func (s *TaskService) Respond(ctx context.Context, id, pegawaiID string, req *dto.RespondTaskRequest) (*model.Task, error) {
	task, err := s.GetByID(ctx, id, pegawaiID, model.RolePegawai)
	if err != nil {
		return nil, err
	}

	task.Status = req.Status
	if req.ResponsePegawai != nil {
		task.ResponsePegawai = req.ResponsePegawai
	}

	task.Project = nil
	task.AssigneeUser = nil
	task.AssigneeMitra = nil

	if err := s.repo.Task.Update(ctx, task); err != nil {
		return nil, fmt.Errorf("update task: %w", err)
	}
	return task, nil
}

// Delete removes a task. Ledger entries posted from its allocations are
// voided in the same transaction so earnings totals drop accordingly.
func (s *TaskService) Delete(ctx context.Context, id, ketuaTimID string) error {
	task, err := s.GetByID(ctx, id, ketuaTimID, model.RoleKetuaTim)
	if err != nil {
		return err
	}

	return s.repo.Tx.InTx(ctx, func(txRepo *repository.Repository) error {
		allocations, err := txRepo.Allocation.ListByTask(ctx, task.ID, false)
		if err != nil {
			return fmt.Errorf("list allocations: %w", err)
		}
		now := timeNow()
		for _, a := range allocations {
			if a.IsDated() && a.IsActive() {
				if err := txRepo.Ledger.VoidBySource(ctx, model.SourceTableAllocations, a.ID, now); err != nil {
					return fmt.Errorf("void ledger entry: %w", err)
				}
			}
		}
		if err := txRepo.Task.Delete(ctx, task.ID); err != nil {
			return fmt.Errorf("delete task: %w", err)
		}
		return nil
	})
}
