package service

import (
	"context"
	"time"

	"github.com/habstrakT808/Sistem-Manajemen-Project-BPS-sub003/internal/model"
	"github.com/habstrakT808/Sistem-Manajemen-Project-BPS-sub003/internal/repository"
)

// Hand-written repository mocks. Each struct carries optional function
// fields; unset fields return zero values.

type mockUserRepo struct {
	createFn     func(ctx context.Context, user *model.User) error
	getByIDFn    func(ctx context.Context, id string) (*model.User, error)
	getByEmailFn func(ctx context.Context, email string) (*model.User, error)
	listByIDsFn  func(ctx context.Context, ids []string) ([]model.User, error)
	updateFn     func(ctx context.Context, user *model.User) error
}

func (m *mockUserRepo) Create(ctx context.Context, user *model.User) error {
	if m.createFn != nil {
		return m.createFn(ctx, user)
	}
	return nil
}

func (m *mockUserRepo) GetByID(ctx context.Context, id string) (*model.User, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, nil
}

func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	if m.getByEmailFn != nil {
		return m.getByEmailFn(ctx, email)
	}
	return nil, nil
}

func (m *mockUserRepo) List(ctx context.Context, role string, offset, limit int) ([]model.User, int64, error) {
	return nil, 0, nil
}

func (m *mockUserRepo) ListByRole(ctx context.Context, role string) ([]model.User, error) {
	return nil, nil
}

func (m *mockUserRepo) ListByIDs(ctx context.Context, ids []string) ([]model.User, error) {
	if m.listByIDsFn != nil {
		return m.listByIDsFn(ctx, ids)
	}
	return nil, nil
}

func (m *mockUserRepo) Update(ctx context.Context, user *model.User) error {
	if m.updateFn != nil {
		return m.updateFn(ctx, user)
	}
	return nil
}

type mockTeamRepo struct{}

func (m *mockTeamRepo) Create(ctx context.Context, team *model.Team) error { return nil }
func (m *mockTeamRepo) GetByID(ctx context.Context, id string) (*model.Team, error) {
	return nil, nil
}
func (m *mockTeamRepo) List(ctx context.Context) ([]model.Team, error)     { return nil, nil }
func (m *mockTeamRepo) Update(ctx context.Context, team *model.Team) error { return nil }
func (m *mockTeamRepo) Delete(ctx context.Context, id string) error        { return nil }

type mockProjectRepo struct {
	createFn            func(ctx context.Context, project *model.Project) error
	getByIDFn           func(ctx context.Context, id string) (*model.Project, error)
	listIDsByKetuaTimFn func(ctx context.Context, ketuaTimID string) ([]string, error)
}

func (m *mockProjectRepo) Create(ctx context.Context, project *model.Project) error {
	if m.createFn != nil {
		return m.createFn(ctx, project)
	}
	return nil
}

func (m *mockProjectRepo) GetByID(ctx context.Context, id string) (*model.Project, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, nil
}

func (m *mockProjectRepo) List(ctx context.Context, ketuaTimID, status string, offset, limit int) ([]model.Project, int64, error) {
	return nil, 0, nil
}

func (m *mockProjectRepo) ListByMember(ctx context.Context, userID string, offset, limit int) ([]model.Project, int64, error) {
	return nil, 0, nil
}

func (m *mockProjectRepo) ListIDsByKetuaTim(ctx context.Context, ketuaTimID string) ([]string, error) {
	if m.listIDsByKetuaTimFn != nil {
		return m.listIDsByKetuaTimFn(ctx, ketuaTimID)
	}
	return nil, nil
}

func (m *mockProjectRepo) Update(ctx context.Context, project *model.Project) error { return nil }
func (m *mockProjectRepo) Delete(ctx context.Context, id string) error              { return nil }

type mockAssignmentRepo struct {
	batchCreateFn func(ctx context.Context, assignments []model.ProjectAssignment) error
}

func (m *mockAssignmentRepo) BatchCreate(ctx context.Context, assignments []model.ProjectAssignment) error {
	if m.batchCreateFn != nil {
		return m.batchCreateFn(ctx, assignments)
	}
	return nil
}

func (m *mockAssignmentRepo) ListByProject(ctx context.Context, projectID string) ([]model.ProjectAssignment, error) {
	return nil, nil
}

func (m *mockAssignmentRepo) DeleteByProject(ctx context.Context, projectID string) error {
	return nil
}

func (m *mockAssignmentRepo) SumHonorByMitraMonth(ctx context.Context, mitraID string, bulan, tahun int) (int64, error) {
	return 0, nil
}

type mockMemberRepo struct {
	batchCreateFn func(ctx context.Context, members []model.ProjectMember) error
	isMemberFn    func(ctx context.Context, projectID, userID string) (bool, error)
}

func (m *mockMemberRepo) BatchCreate(ctx context.Context, members []model.ProjectMember) error {
	if m.batchCreateFn != nil {
		return m.batchCreateFn(ctx, members)
	}
	return nil
}

func (m *mockMemberRepo) ListByProject(ctx context.Context, projectID string) ([]model.ProjectMember, error) {
	return nil, nil
}

func (m *mockMemberRepo) DeleteByProject(ctx context.Context, projectID string) error { return nil }

func (m *mockMemberRepo) IsMember(ctx context.Context, projectID, userID string) (bool, error) {
	if m.isMemberFn != nil {
		return m.isMemberFn(ctx, projectID, userID)
	}
	return false, nil
}

type mockTaskRepo struct {
	createFn               func(ctx context.Context, task *model.Task) error
	getByIDFn              func(ctx context.Context, id string) (*model.Task, error)
	updateFn               func(ctx context.Context, task *model.Task) error
	deleteFn               func(ctx context.Context, id string) error
	sumHonorByMitraMonthFn func(ctx context.Context, mitraID string, bulan, tahun int) (int64, error)
	listHonorInRangeFn     func(ctx context.Context, start, end model.DateOnly, ketuaTimID string) ([]model.Task, error)
}

func (m *mockTaskRepo) Create(ctx context.Context, task *model.Task) error {
	if m.createFn != nil {
		return m.createFn(ctx, task)
	}
	return nil
}

func (m *mockTaskRepo) GetByID(ctx context.Context, id string) (*model.Task, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, nil
}

func (m *mockTaskRepo) List(ctx context.Context, filter repository.TaskFilter, offset, limit int) ([]model.Task, int64, error) {
	return nil, 0, nil
}

func (m *mockTaskRepo) ListByProjects(ctx context.Context, projectIDs []string, filter repository.TaskFilter, offset, limit int) ([]model.Task, int64, error) {
	return nil, 0, nil
}

func (m *mockTaskRepo) Update(ctx context.Context, task *model.Task) error {
	if m.updateFn != nil {
		return m.updateFn(ctx, task)
	}
	return nil
}

func (m *mockTaskRepo) Delete(ctx context.Context, id string) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

func (m *mockTaskRepo) SumHonorByMitraMonth(ctx context.Context, mitraID string, bulan, tahun int) (int64, error) {
	if m.sumHonorByMitraMonthFn != nil {
		return m.sumHonorByMitraMonthFn(ctx, mitraID, bulan, tahun)
	}
	return 0, nil
}

func (m *mockTaskRepo) ListHonorTasksInRange(ctx context.Context, start, end model.DateOnly, ketuaTimID string) ([]model.Task, error) {
	if m.listHonorInRangeFn != nil {
		return m.listHonorInRangeFn(ctx, start, end, ketuaTimID)
	}
	return nil, nil
}

type mockAllocationRepo struct {
	batchCreateFn            func(ctx context.Context, allocations []model.TransportAllocation) error
	getByIDFn                func(ctx context.Context, id string) (*model.TransportAllocation, error)
	listByTaskFn             func(ctx context.Context, taskID string, activeOnly bool) ([]model.TransportAllocation, error)
	listByUserFn             func(ctx context.Context, userID string, activeOnly bool) ([]model.TransportAllocation, error)
	listActiveDatedInRangeFn func(ctx context.Context, start, end model.DateOnly) ([]model.TransportAllocation, error)
	hasActiveOnDateFn        func(ctx context.Context, userID string, date model.DateOnly) (bool, error)
	setDateFn                func(ctx context.Context, id string, date model.DateOnly, at time.Time) error
	clearDateFn              func(ctx context.Context, id string) error
	cancelFn                 func(ctx context.Context, id string, at time.Time) error
}

func (m *mockAllocationRepo) BatchCreate(ctx context.Context, allocations []model.TransportAllocation) error {
	if m.batchCreateFn != nil {
		return m.batchCreateFn(ctx, allocations)
	}
	return nil
}

func (m *mockAllocationRepo) GetByID(ctx context.Context, id string) (*model.TransportAllocation, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, nil
}

func (m *mockAllocationRepo) ListByTask(ctx context.Context, taskID string, activeOnly bool) ([]model.TransportAllocation, error) {
	if m.listByTaskFn != nil {
		return m.listByTaskFn(ctx, taskID, activeOnly)
	}
	return nil, nil
}

func (m *mockAllocationRepo) ListByUser(ctx context.Context, userID string, activeOnly bool) ([]model.TransportAllocation, error) {
	if m.listByUserFn != nil {
		return m.listByUserFn(ctx, userID, activeOnly)
	}
	return nil, nil
}

func (m *mockAllocationRepo) ListActiveDatedInRange(ctx context.Context, start, end model.DateOnly) ([]model.TransportAllocation, error) {
	if m.listActiveDatedInRangeFn != nil {
		return m.listActiveDatedInRangeFn(ctx, start, end)
	}
	return nil, nil
}

func (m *mockAllocationRepo) HasActiveOnDate(ctx context.Context, userID string, date model.DateOnly) (bool, error) {
	if m.hasActiveOnDateFn != nil {
		return m.hasActiveOnDateFn(ctx, userID, date)
	}
	return false, nil
}

func (m *mockAllocationRepo) SetDate(ctx context.Context, id string, date model.DateOnly, at time.Time) error {
	if m.setDateFn != nil {
		return m.setDateFn(ctx, id, date, at)
	}
	return nil
}

func (m *mockAllocationRepo) ClearDate(ctx context.Context, id string) error {
	if m.clearDateFn != nil {
		return m.clearDateFn(ctx, id)
	}
	return nil
}

func (m *mockAllocationRepo) Cancel(ctx context.Context, id string, at time.Time) error {
	if m.cancelFn != nil {
		return m.cancelFn(ctx, id, at)
	}
	return nil
}

func (m *mockAllocationRepo) CountActiveByTask(ctx context.Context, taskID string) (int64, error) {
	return 0, nil
}

type mockLedgerRepo struct {
	createFn               func(ctx context.Context, entry *model.EarningsLedgerEntry) error
	getBySourceFn          func(ctx context.Context, sourceTable, sourceID string) (*model.EarningsLedgerEntry, error)
	voidBySourceFn         func(ctx context.Context, sourceTable, sourceID string, at time.Time) error
	listByUserInRangeFn    func(ctx context.Context, userID string, start, end model.DateOnly) ([]model.EarningsLedgerEntry, error)
	listTransportInRangeFn func(ctx context.Context, start, end model.DateOnly, scope repository.LedgerScope) ([]model.EarningsLedgerEntry, error)
}

func (m *mockLedgerRepo) Create(ctx context.Context, entry *model.EarningsLedgerEntry) error {
	if m.createFn != nil {
		return m.createFn(ctx, entry)
	}
	return nil
}

func (m *mockLedgerRepo) GetBySource(ctx context.Context, sourceTable, sourceID string) (*model.EarningsLedgerEntry, error) {
	if m.getBySourceFn != nil {
		return m.getBySourceFn(ctx, sourceTable, sourceID)
	}
	return nil, nil
}

func (m *mockLedgerRepo) VoidBySource(ctx context.Context, sourceTable, sourceID string, at time.Time) error {
	if m.voidBySourceFn != nil {
		return m.voidBySourceFn(ctx, sourceTable, sourceID, at)
	}
	return nil
}

func (m *mockLedgerRepo) ListByUserInRange(ctx context.Context, userID string, start, end model.DateOnly) ([]model.EarningsLedgerEntry, error) {
	if m.listByUserInRangeFn != nil {
		return m.listByUserInRangeFn(ctx, userID, start, end)
	}
	return nil, nil
}

func (m *mockLedgerRepo) ListTransportInRange(ctx context.Context, start, end model.DateOnly, scope repository.LedgerScope) ([]model.EarningsLedgerEntry, error) {
	if m.listTransportInRangeFn != nil {
		return m.listTransportInRangeFn(ctx, start, end, scope)
	}
	return nil, nil
}

type mockFinancialRecordRepo struct {
	batchCreateFn         func(ctx context.Context, records []model.FinancialRecord) error
	sumByRecipientMonthFn func(ctx context.Context, recipientType, recipientID string, bulan, tahun int) (int64, error)
}

func (m *mockFinancialRecordRepo) BatchCreate(ctx context.Context, records []model.FinancialRecord) error {
	if m.batchCreateFn != nil {
		return m.batchCreateFn(ctx, records)
	}
	return nil
}

func (m *mockFinancialRecordRepo) ListByProject(ctx context.Context, projectID string) ([]model.FinancialRecord, error) {
	return nil, nil
}

func (m *mockFinancialRecordRepo) ListByMonth(ctx context.Context, projectIDs []string, bulan, tahun int) ([]model.FinancialRecord, error) {
	return nil, nil
}

func (m *mockFinancialRecordRepo) SumByRecipientMonth(ctx context.Context, recipientType, recipientID string, bulan, tahun int) (int64, error) {
	if m.sumByRecipientMonthFn != nil {
		return m.sumByRecipientMonthFn(ctx, recipientType, recipientID, bulan, tahun)
	}
	return 0, nil
}

func (m *mockFinancialRecordRepo) DeleteByProject(ctx context.Context, projectID string) error {
	return nil
}

type mockMitraRepo struct {
	getByIDFn      func(ctx context.Context, id string) (*model.Mitra, error)
	updateRatingFn func(ctx context.Context, id string, average float64) error
}

func (m *mockMitraRepo) Create(ctx context.Context, mitra *model.Mitra) error { return nil }

func (m *mockMitraRepo) GetByID(ctx context.Context, id string) (*model.Mitra, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, nil
}

func (m *mockMitraRepo) List(ctx context.Context, search string, activeOnly bool, offset, limit int) ([]model.Mitra, int64, error) {
	return nil, 0, nil
}

func (m *mockMitraRepo) Update(ctx context.Context, mitra *model.Mitra) error { return nil }

func (m *mockMitraRepo) UpdateRating(ctx context.Context, id string, average float64) error {
	if m.updateRatingFn != nil {
		return m.updateRatingFn(ctx, id, average)
	}
	return nil
}

type mockMitraReviewRepo struct {
	createFn        func(ctx context.Context, review *model.MitraReview) error
	existsFn        func(ctx context.Context, projectID, mitraID, pegawaiID string) (bool, error)
	averageRatingFn func(ctx context.Context, mitraID string) (float64, error)
}

func (m *mockMitraReviewRepo) Create(ctx context.Context, review *model.MitraReview) error {
	if m.createFn != nil {
		return m.createFn(ctx, review)
	}
	return nil
}

func (m *mockMitraReviewRepo) ListByMitra(ctx context.Context, mitraID string) ([]model.MitraReview, error) {
	return nil, nil
}

func (m *mockMitraReviewRepo) Exists(ctx context.Context, projectID, mitraID, pegawaiID string) (bool, error) {
	if m.existsFn != nil {
		return m.existsFn(ctx, projectID, mitraID, pegawaiID)
	}
	return false, nil
}

func (m *mockMitraReviewRepo) AverageRating(ctx context.Context, mitraID string) (float64, error) {
	if m.averageRatingFn != nil {
		return m.averageRatingFn(ctx, mitraID)
	}
	return 0, nil
}

type mockScheduleRepo struct {
	createFn       func(ctx context.Context, schedule *model.GlobalSchedule) error
	getByIDFn      func(ctx context.Context, id string) (*model.GlobalSchedule, error)
	listFn         func(ctx context.Context) ([]model.GlobalSchedule, error)
	listCoveringFn func(ctx context.Context, date model.DateOnly) ([]model.GlobalSchedule, error)
}

func (m *mockScheduleRepo) Create(ctx context.Context, schedule *model.GlobalSchedule) error {
	if m.createFn != nil {
		return m.createFn(ctx, schedule)
	}
	return nil
}

func (m *mockScheduleRepo) GetByID(ctx context.Context, id string) (*model.GlobalSchedule, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, nil
}

func (m *mockScheduleRepo) List(ctx context.Context) ([]model.GlobalSchedule, error) {
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return nil, nil
}

func (m *mockScheduleRepo) ListCovering(ctx context.Context, date model.DateOnly) ([]model.GlobalSchedule, error) {
	if m.listCoveringFn != nil {
		return m.listCoveringFn(ctx, date)
	}
	return nil, nil
}

func (m *mockScheduleRepo) Delete(ctx context.Context, id string) error { return nil }

type mockNotificationRepo struct {
	created []model.Notification
}

func (m *mockNotificationRepo) Create(ctx context.Context, notification *model.Notification) error {
	m.created = append(m.created, *notification)
	return nil
}

func (m *mockNotificationRepo) BatchCreate(ctx context.Context, notifications []model.Notification) error {
	m.created = append(m.created, notifications...)
	return nil
}

func (m *mockNotificationRepo) ListByUser(ctx context.Context, userID string, unreadOnly bool, offset, limit int) ([]model.Notification, int64, error) {
	return nil, 0, nil
}

func (m *mockNotificationRepo) CountUnread(ctx context.Context, userID string) (int64, error) {
	return 0, nil
}

func (m *mockNotificationRepo) MarkRead(ctx context.Context, id, userID string) error { return nil }
func (m *mockNotificationRepo) MarkAllRead(ctx context.Context, userID string) error  { return nil }

type mockSettingRepo struct {
	setting *model.SystemSetting
}

func (m *mockSettingRepo) Get(ctx context.Context) (*model.SystemSetting, error) {
	return m.setting, nil
}

func (m *mockSettingRepo) Update(ctx context.Context, setting *model.SystemSetting) error {
	m.setting = setting
	return nil
}

// passthroughTx runs the function against the same repository, no real
// transaction involved.
type passthroughTx struct {
	repo *repository.Repository
}

func (t *passthroughTx) InTx(ctx context.Context, fn func(txRepo *repository.Repository) error) error {
	return fn(t.repo)
}

// newMockRepository builds a repository aggregate entirely backed by
// mocks, with a passthrough transaction runner.
func newMockRepository() *repository.Repository {
	r := &repository.Repository{
		User:            &mockUserRepo{},
		Team:            &mockTeamRepo{},
		Project:         &mockProjectRepo{},
		Assignment:      &mockAssignmentRepo{},
		Member:          &mockMemberRepo{},
		Task:            &mockTaskRepo{},
		Allocation:      &mockAllocationRepo{},
		Ledger:          &mockLedgerRepo{},
		FinancialRecord: &mockFinancialRecordRepo{},
		Mitra:           &mockMitraRepo{},
		MitraReview:     &mockMitraReviewRepo{},
		GlobalSchedule:  &mockScheduleRepo{},
		Notification:    &mockNotificationRepo{},
		SystemSetting:   &mockSettingRepo{},
	}
	r.Tx = &passthroughTx{repo: r}
	return r
}
