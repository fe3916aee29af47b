package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/habstrakT808/Sistem-Manajemen-Project-BPS-sub003/internal/model"
)

// ProjectRepository handles project persistence.
type ProjectRepository interface {
	Create(ctx context.Context, project *model.Project) error
	GetByID(ctx context.Context, id string) (*model.Project, error)
	List(ctx context.Context, ketuaTimID, status string, offset, limit int) ([]model.Project, int64, error)
	ListByMember(ctx context.Context, userID string, offset, limit int) ([]model.Project, int64, error)
	ListIDsByKetuaTim(ctx context.Context, ketuaTimID string) ([]string, error)
	Update(ctx context.Context, project *model.Project) error
	Delete(ctx context.Context, id string) error
}

// ProjectAssignmentRepository handles per-project pay assignments.
type ProjectAssignmentRepository interface {
	BatchCreate(ctx context.Context, assignments []model.ProjectAssignment) error
	ListByProject(ctx context.Context, projectID string) ([]model.ProjectAssignment, error)
	DeleteByProject(ctx context.Context, projectID string) error
	SumHonorByMitraMonth(ctx context.Context, mitraID string, bulan, tahun int) (int64, error)
}

// ProjectMemberRepository handles project membership rows.
type ProjectMemberRepository interface {
	BatchCreate(ctx context.Context, members []model.ProjectMember) error
	ListByProject(ctx context.Context, projectID string) ([]model.ProjectMember, error)
	DeleteByProject(ctx context.Context, projectID string) error
	IsMember(ctx context.Context, projectID, userID string) (bool, error)
}

type projectRepo struct {
	db *gorm.DB
}

func NewProjectRepo(db *gorm.DB) ProjectRepository {
	return &projectRepo{db: db}
}

func (r *projectRepo) Create(ctx context.Context, project *model.Project) error {
	return r.db.WithContext(ctx).Create(project).Error
}

func (r *projectRepo) GetByID(ctx context.Context, id string) (*model.Project, error) {
	var project model.Project
	err := r.db.WithContext(ctx).
		Preload("KetuaTim").
		Preload("Assignments").
		Preload("Members").
		Where("id = ?", id).
		First(&project).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &project, nil
}

func (r *projectRepo) List(ctx context.Context, ketuaTimID, status string, offset, limit int) ([]model.Project, int64, error) {
	var (
		projects []model.Project
		total    int64
	)
	q := r.db.WithContext(ctx).Model(&model.Project{})
	if ketuaTimID != "" {
		q = q.Where("ketua_tim_id = ?", ketuaTimID)
	}
	if status != "" {
		q = q.Where("status = ?", status)
	}
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := q.Preload("KetuaTim").Order("created_at DESC").Offset(offset).Limit(limit).Find(&projects).Error
	if err != nil {
		return nil, 0, err
	}
	return projects, total, nil
}

func (r *projectRepo) ListByMember(ctx context.Context, userID string, offset, limit int) ([]model.Project, int64, error) {
	var (
		projects []model.Project
		total    int64
	)
	q := r.db.WithContext(ctx).Model(&model.Project{}).
		Joins("JOIN project_members pm ON pm.project_id = projects.id").
		Where("pm.user_id = ?", userID)
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := q.Preload("KetuaTim").Order("projects.created_at DESC").Offset(offset).Limit(limit).Find(&projects).Error
	if err != nil {
		return nil, 0, err
	}
	return projects, total, nil
}

func (r *projectRepo) ListIDsByKetuaTim(ctx context.Context, ketuaTimID string) ([]string, error) {
	var ids []string
	err := r.db.WithContext(ctx).Model(&model.Project{}).
		Where("ketua_tim_id = ?", ketuaTimID).
		Pluck("id", &ids).Error
	return ids, err
}

func (r *projectRepo) Update(ctx context.Context, project *model.Project) error {
	return r.db.WithContext(ctx).Save(project).Error
}

func (r *projectRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Project{}).Error
}

type projectAssignmentRepo struct {
	db *gorm.DB
}

func NewProjectAssignmentRepo(db *gorm.DB) ProjectAssignmentRepository {
	return &projectAssignmentRepo{db: db}
}

func (r *projectAssignmentRepo) BatchCreate(ctx context.Context, assignments []model.ProjectAssignment) error {
	if len(assignments) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&assignments).Error
}

func (r *projectAssignmentRepo) ListByProject(ctx context.Context, projectID string) ([]model.ProjectAssignment, error) {
	var assignments []model.ProjectAssignment
	err := r.db.WithContext(ctx).Where("project_id = ?", projectID).Find(&assignments).Error
	return assignments, err
}

func (r *projectAssignmentRepo) DeleteByProject(ctx context.Context, projectID string) error {
	return r.db.WithContext(ctx).Where("project_id = ?", projectID).Delete(&model.ProjectAssignment{}).Error
}

// SumHonorByMitraMonth totals the honor already committed to a mitra
// across projects whose start date falls in the given month.
func (r *projectAssignmentRepo) SumHonorByMitraMonth(ctx context.Context, mitraID string, bulan, tahun int) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&model.ProjectAssignment{}).
		Joins("JOIN projects p ON p.id = project_assignments.project_id").
		Where("project_assignments.assignee_type = ?", model.AssigneeMitra).
		Where("project_assignments.assignee_id = ?", mitraID).
		Where("EXTRACT(MONTH FROM p.tanggal_mulai) = ? AND EXTRACT(YEAR FROM p.tanggal_mulai) = ?", bulan, tahun).
		Select("COALESCE(SUM(project_assignments.honor), 0)").
		Scan(&total).Error
	return total, err
}

type projectMemberRepo struct {
	db *gorm.DB
}

func NewProjectMemberRepo(db *gorm.DB) ProjectMemberRepository {
	return &projectMemberRepo{db: db}
}

func (r *projectMemberRepo) BatchCreate(ctx context.Context, members []model.ProjectMember) error {
	if len(members) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&members).Error
}

func (r *projectMemberRepo) ListByProject(ctx context.Context, projectID string) ([]model.ProjectMember, error) {
	var members []model.ProjectMember
	err := r.db.WithContext(ctx).Preload("User").Where("project_id = ?", projectID).Find(&members).Error
	return members, err
}

func (r *projectMemberRepo) DeleteByProject(ctx context.Context, projectID string) error {
	return r.db.WithContext(ctx).Where("project_id = ?", projectID).Delete(&model.ProjectMember{}).Error
}

func (r *projectMemberRepo) IsMember(ctx context.Context, projectID, userID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.ProjectMember{}).
		Where("project_id = ? AND user_id = ?", projectID, userID).
		Count(&count).Error
	return count > 0, err
}
