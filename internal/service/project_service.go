package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/habstrakT808/Sistem-Manajemen-Project-BPS-sub003/internal/dto"
	"github.com/habstrakT808/Sistem-Manajemen-Project-BPS-sub003/internal/model"
	"github.com/habstrakT808/Sistem-Manajemen-Project-BPS-sub003/internal/repository"
)

// ProjectService handles ketua tim project management.
type ProjectService struct {
	repo         *repository.Repository
	mitra        *MitraService
	notification *NotificationService
	logger       *zap.Logger
}

func NewProjectService(repo *repository.Repository, mitra *MitraService, notification *NotificationService, logger *zap.Logger) *ProjectService {
	return &ProjectService{repo: repo, mitra: mitra, notification: notification, logger: logger}
}

// Create creates the project with its assignments, memberships and
// financial records in one transaction. Mitra honor is checked against
// the monthly cap before anything is written.
func (s *ProjectService) Create(ctx context.Context, ketuaTimID string, req *dto.CreateProjectRequest) (*model.Project, error) {
	if req.Deadline.Before(req.TanggalMulai) {
		return nil, fmt.Errorf("%w: deadline sebelum tanggal mulai", ErrValidation)
	}

	bulan := int(req.TanggalMulai.Month())
	tahun := req.TanggalMulai.Year()

	for _, a := range req.Assignments {
		switch a.AssigneeType {
		case model.AssigneePegawai:
			user, err := s.repo.User.GetByID(ctx, a.AssigneeID)
			if err != nil {
				return nil, fmt.Errorf("get pegawai: %w", err)
			}
			if user == nil || user.Role != model.RolePegawai {
				return nil, fmt.Errorf("%w: pegawai %s", ErrNotFound, a.AssigneeID)
			}
		case model.AssigneeMitra:
			mitra, err := s.repo.Mitra.GetByID(ctx, a.AssigneeID)
			if err != nil {
				return nil, fmt.Errorf("get mitra: %w", err)
			}
			if mitra == nil || !mitra.IsActive {
				return nil, fmt.Errorf("%w: mitra %s", ErrNotFound, a.AssigneeID)
			}
		}
	}

	project := &model.Project{
		NamaProject:  req.NamaProject,
		Deskripsi:    req.Deskripsi,
		TanggalMulai: req.TanggalMulai,
		Deadline:     req.Deadline,
		KetuaTimID:   ketuaTimID,
		TeamID:       req.TeamID,
		Status:       model.ProjectStatusUpcoming,
	}

	var memberIDs []string

	err := s.repo.Tx.InTx(ctx, func(txRepo *repository.Repository) error {
		// Cap checks run inside the transaction so concurrent project
		// creation cannot slip past the limit together.
		for _, a := range req.Assignments {
			if a.AssigneeType == model.AssigneeMitra && a.Honor != nil && *a.Honor > 0 {
				if err := s.mitra.CheckMonthlyCap(ctx, txRepo, a.AssigneeID, bulan, tahun, *a.Honor); err != nil {
					return err
				}
			}
		}

		if err := txRepo.Project.Create(ctx, project); err != nil {
			return fmt.Errorf("create project: %w", err)
		}

		assignments := make([]model.ProjectAssignment, 0, len(req.Assignments))
		members := make([]model.ProjectMember, 0, len(req.Assignments))
		records := make([]model.FinancialRecord, 0, len(req.Assignments))

		for _, a := range req.Assignments {
			assignments = append(assignments, model.ProjectAssignment{
				ProjectID:     project.ID,
				AssigneeType:  a.AssigneeType,
				AssigneeID:    a.AssigneeID,
				UangTransport: a.UangTransport,
				Honor:         a.Honor,
			})

			if a.AssigneeType == model.AssigneePegawai {
				members = append(members, model.ProjectMember{
					ProjectID: project.ID,
					UserID:    a.AssigneeID,
				})
				memberIDs = append(memberIDs, a.AssigneeID)
				if a.UangTransport != nil && *a.UangTransport > 0 {
					records = append(records, model.FinancialRecord{
						ProjectID:     project.ID,
						RecipientType: model.AssigneePegawai,
						RecipientID:   a.AssigneeID,
						Amount:        *a.UangTransport,
						Description:   "Uang transport project " + project.NamaProject,
						Bulan:         bulan,
						Tahun:         tahun,
					})
				}
			} else if a.Honor != nil && *a.Honor > 0 {
				records = append(records, model.FinancialRecord{
					ProjectID:     project.ID,
					RecipientType: model.AssigneeMitra,
					RecipientID:   a.AssigneeID,
					Amount:        *a.Honor,
					Description:   "Honor project " + project.NamaProject,
					Bulan:         bulan,
					Tahun:         tahun,
				})
			}
		}

		if err := txRepo.Assignment.BatchCreate(ctx, assignments); err != nil {
			return fmt.Errorf("create assignments: %w", err)
		}
		if err := txRepo.Member.BatchCreate(ctx, members); err != nil {
			return fmt.Errorf("create members: %w", err)
		}
		if err := txRepo.FinancialRecord.BatchCreate(ctx, records); err != nil {
			return fmt.Errorf("create financial records: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.notification.NotifyMany(ctx, memberIDs,
		"Project baru", "Anda ditambahkan ke project "+project.NamaProject, "info")

	s.logger.Info("project created",
		zap.String("project_id", project.ID),
		zap.String("ketua_tim_id", ketuaTimID),
		zap.Int("assignments", len(req.Assignments)),
	)
	return project, nil
}

// GetByID loads a project. A ketua tim sees only their own projects; a
// pegawai must be a member.
func (s *ProjectService) GetByID(ctx context.Context, id, requesterID, requesterRole string) (*model.Project, error) {
	project, err := s.repo.Project.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get project: %w", err)
	}
	if project == nil {
		return nil, fmt.Errorf("%w: project", ErrNotFound)
	}

	switch requesterRole {
	case model.RoleAdmin:
	case model.RoleKetuaTim:
		if project.KetuaTimID != requesterID {
			return nil, fmt.Errorf("%w: bukan project anda", ErrForbidden)
		}
	case model.RolePegawai:
		isMember, err := s.repo.Member.IsMember(ctx, id, requesterID)
		if err != nil {
			return nil, fmt.Errorf("check membership: %w", err)
		}
		if !isMember {
			return nil, fmt.Errorf("%w: bukan anggota project ini", ErrForbidden)
		}
	default:
		return nil, fmt.Errorf("%w: role tidak dikenal", ErrForbidden)
	}

	return project, nil
}

// List pages through projects visible to the requester.
func (s *ProjectService) List(ctx context.Context, requesterID, requesterRole string, req *dto.ListProjectsRequest) ([]model.Project, int64, error) {
	switch requesterRole {
	case model.RoleAdmin:
		return s.repo.Project.List(ctx, "", req.Status, req.Offset(), req.PageSize)
	case model.RoleKetuaTim:
		return s.repo.Project.List(ctx, requesterID, req.Status, req.Offset(), req.PageSize)
	case model.RolePegawai:
		return s.repo.Project.ListByMember(ctx, requesterID, req.Offset(), req.PageSize)
	}
	return nil, 0, fmt.Errorf("%w: role tidak dikenal", ErrForbidden)
}

// Update applies field changes on a project the ketua tim owns.
func (s *ProjectService) Update(ctx context.Context, id, ketuaTimID string, req *dto.UpdateProjectRequest) (*model.Project, error) {
	project, err := s.GetByID(ctx, id, ketuaTimID, model.RoleKetuaTim)
	if err != nil {
		return nil, err
	}

	if req.NamaProject != nil {
		project.NamaProject = *req.NamaProject
	}
	if req.Deskripsi != nil {
		project.Deskripsi = *req.Deskripsi
	}
	if req.TanggalMulai != nil {
		project.TanggalMulai = *req.TanggalMulai
	}
	if req.Deadline != nil {
		project.Deadline = *req.Deadline
	}
	if project.Deadline.Before(project.TanggalMulai) {
		return nil, fmt.Errorf("%w: deadline sebelum tanggal mulai", ErrValidation)
	}
	if req.Status != nil {
		project.Status = *req.Status
	}

	// Save skips associations loaded by GetByID.
	project.KetuaTim = nil
	project.Assignments = nil
	project.Members = nil

	if err := s.repo.Project.Update(ctx, project); err != nil {
		return nil, fmt.Errorf("update project: %w", err)
	}
	return project, nil
}

// Delete removes a project and its dependent rows.
func (s *ProjectService) Delete(ctx context.Context, id, ketuaTimID string) error {
	if _, err := s.GetByID(ctx, id, ketuaTimID, model.RoleKetuaTim); err != nil {
		return err
	}

	return s.repo.Tx.InTx(ctx, func(txRepo *repository.Repository) error {
		if err := txRepo.FinancialRecord.DeleteByProject(ctx, id); err != nil {
			return fmt.Errorf("delete financial records: %w", err)
		}
		if err := txRepo.Member.DeleteByProject(ctx, id); err != nil {
			return fmt.Errorf("delete members: %w", err)
		}
		if err := txRepo.Assignment.DeleteByProject(ctx, id); err != nil {
			return fmt.Errorf("delete assignments: %w", err)
		}
		if err := txRepo.Project.Delete(ctx, id); err != nil {
			return fmt.Errorf("delete project: %w", err)
		}
		return nil
	})
}
