package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/habstrakT808/Sistem-Manajemen-Project-BPS-sub003/internal/dto"
	"github.com/habstrakT808/Sistem-Manajemen-Project-BPS-sub003/internal/model"
	"github.com/habstrakT808/Sistem-Manajemen-Project-BPS-sub003/internal/repository"
)

// EarningsService aggregates the earnings ledger. All totals come from
// ledger entries only; voided entries never count.
type EarningsService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

func NewEarningsService(repo *repository.Repository, logger *zap.Logger) *EarningsService {
	return &EarningsService{repo: repo, logger: logger}
}

func monthRange(bulan int, tahun int) (model.DateOnly, model.DateOnly) {
	start := model.NewDate(tahun, time.Month(bulan), 1)
	end := model.NewDate(tahun, time.Month(bulan), model.DaysInMonth(tahun, time.Month(bulan)))
	return start, end
}

func scopeFor(requesterID, requesterRole string) (repository.LedgerScope, error) {
	switch requesterRole {
	case model.RoleAdmin:
		return repository.LedgerScope{}, nil
	case model.RoleKetuaTim:
		return repository.LedgerScope{KetuaTimID: requesterID}, nil
	case model.RolePegawai:
		return repository.LedgerScope{UserID: requesterID}, nil
	}
	return repository.LedgerScope{}, fmt.Errorf("%w: role tidak dikenal", ErrForbidden)
}

// zeroFilledDays builds one bucket per day of the month. The result
// always has exactly DaysInMonth elements, days without entries at 0.
func zeroFilledDays(bulan, tahun int) []dto.DailyEarnings {
	n := model.DaysInMonth(tahun, time.Month(bulan))
	days := make([]dto.DailyEarnings, n)
	for i := 0; i < n; i++ {
		days[i] = dto.DailyEarnings{Date: model.NewDate(tahun, time.Month(bulan), i+1)}
	}
	return days
}

// MonthlySummary aggregates transport and mitra honor for one month
// within the requester's visibility.
func (s *EarningsService) MonthlySummary(ctx context.Context, requesterID, requesterRole string, bulan, tahun int) (*dto.MonthlyEarningsResponse, error) {
	scope, err := scopeFor(requesterID, requesterRole)
	if err != nil {
		return nil, err
	}

	start, end := monthRange(bulan, tahun)
	entries, err := s.repo.Ledger.ListTransportInRange(ctx, start, end, scope)
	if err != nil {
		return nil, fmt.Errorf("list ledger entries: %w", err)
	}

	resp := &dto.MonthlyEarningsResponse{
		Bulan:  bulan,
		Tahun:  tahun,
		PerDay: zeroFilledDays(bulan, tahun),
	}

	perUser := make(map[string]*dto.UserEarningsSummary)
	for _, e := range entries {
		resp.TransportTotal += e.Amount
		resp.Total += e.Amount
		day := &resp.PerDay[e.OccurredOn.Day()-1]
		day.TransportTotal += e.Amount
		day.Total += e.Amount

		u, ok := perUser[e.UserID]
		if !ok {
			u = &dto.UserEarningsSummary{UserID: e.UserID}
			perUser[e.UserID] = u
		}
		u.Total += e.Amount
		u.Entries++
	}

	// mitra honor has no personal ledger side, so the self view skips it
	if scope.UserID == "" {
		honorTasks, err := s.repo.Task.ListHonorTasksInRange(ctx, start, end, scope.KetuaTimID)
		if err != nil {
			return nil, fmt.Errorf("list honor tasks: %w", err)
		}
		for _, task := range honorTasks {
			if task.HonorAmount == nil {
				continue
			}
			resp.HonorTotal += *task.HonorAmount
			resp.Total += *task.HonorAmount
			day := &resp.PerDay[task.StartDate.Day()-1]
			day.HonorTotal += *task.HonorAmount
			day.Total += *task.HonorAmount
		}
	}

	ids := make([]string, 0, len(perUser))
	for id := range perUser {
		ids = append(ids, id)
	}
	users, err := s.repo.User.ListByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	for _, u := range users {
		if summary, ok := perUser[u.ID]; ok {
			summary.NamaLengkap = u.NamaLengkap
		}
	}

	resp.PerUser = make([]dto.UserEarningsSummary, 0, len(perUser))
	for _, u := range perUser {
		resp.PerUser = append(resp.PerUser, *u)
	}
	sort.Slice(resp.PerUser, func(i, j int) bool {
		if resp.PerUser[i].Total != resp.PerUser[j].Total {
			return resp.PerUser[i].Total > resp.PerUser[j].Total
		}
		return resp.PerUser[i].UserID < resp.PerUser[j].UserID
	})

	return resp, nil
}

// DailyDetail lists the ledger entries behind one calendar day.
func (s *EarningsService) DailyDetail(ctx context.Context, requesterID, requesterRole string, date model.DateOnly) (*dto.DailyDetailResponse, error) {
	scope, err := scopeFor(requesterID, requesterRole)
	if err != nil {
		return nil, err
	}

	entries, err := s.repo.Ledger.ListTransportInRange(ctx, date, date, scope)
	if err != nil {
		return nil, fmt.Errorf("list ledger entries: %w", err)
	}

	resp := &dto.DailyDetailResponse{Date: date, Entries: entries}
	for _, e := range entries {
		resp.TransportTotal += e.Amount
		resp.Total += e.Amount
	}

	// mitra honor has no personal ledger side, so the self view skips it
	if scope.UserID == "" {
		honorTasks, err := s.repo.Task.ListHonorTasksInRange(ctx, date, date, scope.KetuaTimID)
		if err != nil {
			return nil, fmt.Errorf("list honor tasks: %w", err)
		}
		for _, task := range honorTasks {
			if task.HonorAmount == nil {
				continue
			}
			resp.HonorTotal += *task.HonorAmount
			resp.Total += *task.HonorAmount
		}
		resp.HonorTasks = honorTasks
	}
	return resp, nil
}

// MyEarnings is the pegawai self-service view: the selected month in
// daily buckets plus a rolling six month history, all earning types
// included.
func (s *EarningsService) MyEarnings(ctx context.Context, userID string, bulan, tahun int) (*dto.MyEarningsResponse, error) {
	start, end := monthRange(bulan, tahun)
	entries, err := s.repo.Ledger.ListByUserInRange(ctx, userID, start, end)
	if err != nil {
		return nil, fmt.Errorf("list ledger entries: %w", err)
	}

	resp := &dto.MyEarningsResponse{
		Bulan:   bulan,
		Tahun:   tahun,
		PerDay:  zeroFilledDays(bulan, tahun),
		Entries: entries,
	}
	for _, e := range entries {
		resp.Total += e.Amount
		day := &resp.PerDay[e.OccurredOn.Day()-1]
		day.Total += e.Amount
		if e.Type == model.EarningTypeTransport {
			day.TransportTotal += e.Amount
		} else {
			day.HonorTotal += e.Amount
		}
	}

	// previous five months plus the selected one
	historyStart := model.NewDate(tahun, time.Month(bulan)-5, 1)
	history, err := s.repo.Ledger.ListByUserInRange(ctx, userID, historyStart, end)
	if err != nil {
		return nil, fmt.Errorf("list ledger history: %w", err)
	}

	totals := make(map[string]*dto.MonthHistory)
	cursor := historyStart
	for i := 0; i < 6; i++ {
		key := fmt.Sprintf("%04d-%02d", cursor.Year(), int(cursor.Month()))
		totals[key] = &dto.MonthHistory{Bulan: int(cursor.Month()), Tahun: cursor.Year()}
		resp.History = append(resp.History, dto.MonthHistory{})
		cursor = model.NewDate(cursor.Year(), cursor.Month()+1, 1)
	}
	for _, e := range history {
		key := fmt.Sprintf("%04d-%02d", e.OccurredOn.Year(), int(e.OccurredOn.Month()))
		if m, ok := totals[key]; ok {
			m.Total += e.Amount
		}
	}
	cursor = historyStart
	for i := 0; i < 6; i++ {
		key := fmt.Sprintf("%04d-%02d", cursor.Year(), int(cursor.Month()))
		resp.History[i] = *totals[key]
		cursor = model.NewDate(cursor.Year(), cursor.Month()+1, 1)
	}

	return resp, nil
}
