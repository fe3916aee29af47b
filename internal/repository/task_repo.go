package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/habstrakT808/Sistem-Manajemen-Project-BPS-sub003/internal/model"
)

// TaskFilter narrows task listings.
type TaskFilter struct {
	ProjectID      string
	AssigneeUserID string
	Status         string
	Bulan          int
	Tahun          int
}

// TaskRepository handles task persistence.
type TaskRepository interface {
	Create(ctx context.Context, task *model.Task) error
	GetByID(ctx context.Context, id string) (*model.Task, error)
	List(ctx context.Context, filter TaskFilter, offset, limit int) ([]model.Task, int64, error)
	ListByProjects(ctx context.Context, projectIDs []string, filter TaskFilter, offset, limit int) ([]model.Task, int64, error)
	Update(ctx context.Context, task *model.Task) error
	Delete(ctx context.Context, id string) error
	SumHonorByMitraMonth(ctx context.Context, mitraID string, bulan, tahun int) (int64, error)
	ListHonorTasksInRange(ctx context.Context, start, end model.DateOnly, ketuaTimID string) ([]model.Task, error)
}

type taskRepo struct {
	db *gorm.DB
}

func NewTaskRepo(db *gorm.DB) TaskRepository {
	return &taskRepo{db: db}
}

func (r *taskRepo) Create(ctx context.Context, task *model.Task) error {
	return r.db.WithContext(ctx).Create(task).Error
}

func (r *taskRepo) GetByID(ctx context.Context, id string) (*model.Task, error) {
	var task model.Task
	err := r.db.WithContext(ctx).
		Preload("Project").
		Preload("AssigneeUser").
		Preload("AssigneeMitra").
		Where("id = ?", id).
		First(&task).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &task, nil
}

func applyTaskFilter(q *gorm.DB, filter TaskFilter) *gorm.DB {
	if filter.ProjectID != "" {
		q = q.Where("tasks.project_id = ?", filter.ProjectID)
	}
	if filter.AssigneeUserID != "" {
		q = q.Where("tasks.assignee_user_id = ?", filter.AssigneeUserID)
	}
	if filter.Status != "" {
		q = q.Where("tasks.status = ?", filter.Status)
	}
	if filter.Bulan != 0 && filter.Tahun != 0 {
		q = q.Where("EXTRACT(MONTH FROM tasks.start_date) = ? AND EXTRACT(YEAR FROM tasks.start_date) = ?",
			filter.Bulan, filter.Tahun)
	}
	return q
}

func (r *taskRepo) List(ctx context.Context, filter TaskFilter, offset, limit int) ([]model.Task, int64, error) {
	var (
		tasks []model.Task
		total int64
	)
	q := applyTaskFilter(r.db.WithContext(ctx).Model(&model.Task{}), filter)
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := q.Preload("Project").Preload("AssigneeUser").Preload("AssigneeMitra").
		Order("tasks.start_date ASC").Offset(offset).Limit(limit).Find(&tasks).Error
	if err != nil {
		return nil, 0, err
	}
	return tasks, total, nil
}

func (r *taskRepo) ListByProjects(ctx context.Context, projectIDs []string, filter TaskFilter, offset, limit int) ([]model.Task, int64, error) {
	if len(projectIDs) == 0 {
		return nil, 0, nil
	}
	var (
		tasks []model.Task
		total int64
	)
	q := applyTaskFilter(r.db.WithContext(ctx).Model(&model.Task{}), filter).
		Where("tasks.project_id IN ?", projectIDs)
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := q.Preload("Project").Preload("AssigneeUser").Preload("AssigneeMitra").
		Order("tasks.start_date ASC").Offset(offset).Limit(limit).Find(&tasks).Error
	if err != nil {
		return nil, 0, err
	}
	return tasks, total, nil
}

func (r *taskRepo) Update(ctx context.Context, task *model.Task) error {
	return r.db.WithContext(ctx).Save(task).Error
}

func (r *taskRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Task{}).Error
}

// SumHonorByMitraMonth totals honor on mitra tasks whose start date
// falls in the given month. Used by the monthly cap guard.
func (r *taskRepo) SumHonorByMitraMonth(ctx context.Context, mitraID string, bulan, tahun int) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&model.Task{}).
		Where("assignee_mitra_id = ?", mitraID).
		Where("EXTRACT(MONTH FROM start_date) = ? AND EXTRACT(YEAR FROM start_date) = ?", bulan, tahun).
		Select("COALESCE(SUM(honor_amount), 0)").
		Scan(&total).Error
	return total, err
}

// ListHonorTasksInRange returns mitra tasks carrying honor whose start
// date falls in [start, end]. A non-empty ketuaTimID narrows the
// result to that leader's projects.
func (r *taskRepo) ListHonorTasksInRange(ctx context.Context, start, end model.DateOnly, ketuaTimID string) ([]model.Task, error) {
	q := r.db.WithContext(ctx).Model(&model.Task{}).
		Where("tasks.assignee_mitra_id IS NOT NULL").
		Where("tasks.honor_amount IS NOT NULL").
		Where("tasks.start_date BETWEEN ? AND ?", start, end)
	if ketuaTimID != "" {
		q = q.Joins("JOIN projects p ON p.id = tasks.project_id").
			Where("p.ketua_tim_id = ?", ketuaTimID)
	}

	var tasks []model.Task
	err := q.Order("tasks.start_date ASC").Find(&tasks).Error
	return tasks, err
}
