package service

import (
	"context"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/habstrakT808/Sistem-Manajemen-Project-BPS-sub003/internal/model"
	"github.com/habstrakT808/Sistem-Manajemen-Project-BPS-sub003/internal/repository"
)

func ledgerEntry(userID string, day int, amount int64) model.EarningsLedgerEntry {
	return model.EarningsLedgerEntry{
		UserID:     userID,
		Type:       model.EarningTypeTransport,
		Amount:     amount,
		OccurredOn: model.NewDate(2026, time.February, day),
	}
}

func TestMonthlySummaryZeroFilledCalendar(t *testing.T) {
	repo := newMockRepository()
	repo.Ledger.(*mockLedgerRepo).listTransportInRangeFn = func(ctx context.Context, start, end model.DateOnly, scope repository.LedgerScope) ([]model.EarningsLedgerEntry, error) {
		return []model.EarningsLedgerEntry{
			ledgerEntry("peg-1", 3, 150000),
			ledgerEntry("peg-1", 3, 150000),
			ledgerEntry("peg-2", 10, 150000),
		}, nil
	}
	repo.User.(*mockUserRepo).listByIDsFn = func(ctx context.Context, ids []string) ([]model.User, error) {
		return []model.User{
			{ID: "peg-1", NamaLengkap: "Andi"},
			{ID: "peg-2", NamaLengkap: "Budi"},
		}, nil
	}

	svc := NewEarningsService(repo, zap.NewNop())
	got, err := svc.MonthlySummary(context.Background(), "admin-1", model.RoleAdmin, 2, 2026)
	if err != nil {
		t.Fatalf("MonthlySummary: %v", err)
	}

	// 2026 is not a leap year
	if len(got.PerDay) != 28 {
		t.Fatalf("PerDay has %d buckets, want 28", len(got.PerDay))
	}
	if got.Total != 450000 {
		t.Errorf("total = %d, want 450000", got.Total)
	}
	if got.PerDay[2].Total != 300000 {
		t.Errorf("day 3 total = %d, want 300000", got.PerDay[2].Total)
	}
	if got.PerDay[9].Total != 150000 {
		t.Errorf("day 10 total = %d, want 150000", got.PerDay[9].Total)
	}
	for i, d := range got.PerDay {
		if i != 2 && i != 9 && d.Total != 0 {
			t.Errorf("day %d total = %d, want 0", i+1, d.Total)
		}
		want := model.NewDate(2026, time.February, i+1)
		if !d.Date.Equal(want) {
			t.Errorf("day %d date = %s, want %s", i+1, d.Date, want)
		}
	}

	if len(got.PerUser) != 2 {
		t.Fatalf("PerUser has %d rows, want 2", len(got.PerUser))
	}
	if got.PerUser[0].UserID != "peg-1" || got.PerUser[0].Total != 300000 || got.PerUser[0].Entries != 2 {
		t.Errorf("top user = %+v", got.PerUser[0])
	}
	if got.PerUser[0].NamaLengkap != "Andi" || got.PerUser[1].NamaLengkap != "Budi" {
		t.Errorf("names not resolved: %+v", got.PerUser)
	}
}

func TestMonthlySummaryLeapFebruary(t *testing.T) {
	repo := newMockRepository()
	svc := NewEarningsService(repo, zap.NewNop())
	got, err := svc.MonthlySummary(context.Background(), "admin-1", model.RoleAdmin, 2, 2028)
	if err != nil {
		t.Fatalf("MonthlySummary: %v", err)
	}
	if len(got.PerDay) != 29 {
		t.Errorf("PerDay has %d buckets, want 29", len(got.PerDay))
	}
}

func TestMonthlySummaryScopes(t *testing.T) {
	repo := newMockRepository()
	var gotScope repository.LedgerScope
	repo.Ledger.(*mockLedgerRepo).listTransportInRangeFn = func(ctx context.Context, start, end model.DateOnly, scope repository.LedgerScope) ([]model.EarningsLedgerEntry, error) {
		gotScope = scope
		return nil, nil
	}

	svc := NewEarningsService(repo, zap.NewNop())

	if _, err := svc.MonthlySummary(context.Background(), "ketua-1", model.RoleKetuaTim, 2, 2026); err != nil {
		t.Fatal(err)
	}
	if gotScope.KetuaTimID != "ketua-1" || gotScope.UserID != "" {
		t.Errorf("ketua tim scope = %+v", gotScope)
	}

	if _, err := svc.MonthlySummary(context.Background(), "peg-1", model.RolePegawai, 2, 2026); err != nil {
		t.Fatal(err)
	}
	if gotScope.UserID != "peg-1" || gotScope.KetuaTimID != "" {
		t.Errorf("pegawai scope = %+v", gotScope)
	}
}

func TestDailyDetail(t *testing.T) {
	repo := newMockRepository()
	date := model.NewDate(2026, time.February, 3)
	repo.Ledger.(*mockLedgerRepo).listTransportInRangeFn = func(ctx context.Context, start, end model.DateOnly, scope repository.LedgerScope) ([]model.EarningsLedgerEntry, error) {
		if !start.Equal(date) || !end.Equal(date) {
			t.Errorf("range = %s..%s, want single day %s", start, end, date)
		}
		return []model.EarningsLedgerEntry{ledgerEntry("peg-1", 3, 150000)}, nil
	}

	svc := NewEarningsService(repo, zap.NewNop())
	got, err := svc.DailyDetail(context.Background(), "admin-1", model.RoleAdmin, date)
	if err != nil {
		t.Fatalf("DailyDetail: %v", err)
	}
	if got.Total != 150000 || len(got.Entries) != 1 {
		t.Errorf("total = %d entries = %d", got.Total, len(got.Entries))
	}
}

func TestMyEarningsSixMonthHistory(t *testing.T) {
	repo := newMockRepository()
	repo.Ledger.(*mockLedgerRepo).listByUserInRangeFn = func(ctx context.Context, userID string, start, end model.DateOnly) ([]model.EarningsLedgerEntry, error) {
		// single-month query for the detail view
		if start.Month() == time.June && end.Month() == time.June {
			return []model.EarningsLedgerEntry{
				{UserID: userID, Type: model.EarningTypeTransport, Amount: 150000, OccurredOn: model.NewDate(2026, time.June, 2)},
			}, nil
		}
		// six-month history query
		return []model.EarningsLedgerEntry{
			{UserID: userID, Type: model.EarningTypeTransport, Amount: 150000, OccurredOn: model.NewDate(2026, time.June, 2)},
			{UserID: userID, Type: model.EarningTypeHonor, Amount: 200000, OccurredOn: model.NewDate(2026, time.April, 20)},
		}, nil
	}

	svc := NewEarningsService(repo, zap.NewNop())
	got, err := svc.MyEarnings(context.Background(), "peg-1", 6, 2026)
	if err != nil {
		t.Fatalf("MyEarnings: %v", err)
	}

	if got.Total != 150000 {
		t.Errorf("month total = %d, want 150000", got.Total)
	}
	if len(got.PerDay) != 30 {
		t.Errorf("PerDay has %d buckets, want 30", len(got.PerDay))
	}
	if len(got.History) != 6 {
		t.Fatalf("history has %d months, want 6", len(got.History))
	}
	if got.History[0].Bulan != 1 || got.History[5].Bulan != 6 {
		t.Errorf("history spans %d..%d, want 1..6", got.History[0].Bulan, got.History[5].Bulan)
	}
	if got.History[3].Total != 200000 { // April
		t.Errorf("April total = %d, want 200000", got.History[3].Total)
	}
	if got.History[5].Total != 150000 { // June
		t.Errorf("June total = %d, want 150000", got.History[5].Total)
	}
}

func TestMonthlySummaryIncludesMitraHonor(t *testing.T) {
	repo := newMockRepository()
	repo.Ledger.(*mockLedgerRepo).listTransportInRangeFn = func(ctx context.Context, start, end model.DateOnly, scope repository.LedgerScope) ([]model.EarningsLedgerEntry, error) {
		return []model.EarningsLedgerEntry{ledgerEntry("peg-1", 3, 150000)}, nil
	}
	repo.User.(*mockUserRepo).listByIDsFn = func(ctx context.Context, ids []string) ([]model.User, error) {
		return []model.User{{ID: "peg-1", NamaLengkap: "Andi"}}, nil
	}
	repo.Task.(*mockTaskRepo).listHonorInRangeFn = func(ctx context.Context, start, end model.DateOnly, ketuaTimID string) ([]model.Task, error) {
		return []model.Task{{
			ID:              "task-1",
			AssigneeMitraID: strPtr("mitra-1"),
			HonorAmount:     i64Ptr(500000),
			StartDate:       model.NewDate(2026, time.February, 10),
		}}, nil
	}

	svc := NewEarningsService(repo, zap.NewNop())
	got, err := svc.MonthlySummary(context.Background(), "admin-1", model.RoleAdmin, 2, 2026)
	if err != nil {
		t.Fatalf("MonthlySummary: %v", err)
	}

	if got.TransportTotal != 150000 || got.HonorTotal != 500000 || got.Total != 650000 {
		t.Errorf("totals = %d/%d/%d, want 150000/500000/650000",
			got.TransportTotal, got.HonorTotal, got.Total)
	}
	if got.PerDay[9].HonorTotal != 500000 || got.PerDay[9].Total != 500000 {
		t.Errorf("day 10 = %+v", got.PerDay[9])
	}
	if got.PerDay[2].TransportTotal != 150000 {
		t.Errorf("day 3 = %+v", got.PerDay[2])
	}
}

func TestMonthlySummaryPegawaiScopeSkipsHonor(t *testing.T) {
	repo := newMockRepository()
	repo.Task.(*mockTaskRepo).listHonorInRangeFn = func(ctx context.Context, start, end model.DateOnly, ketuaTimID string) ([]model.Task, error) {
		t.Error("honor tasks queried for self scope")
		return nil, nil
	}

	svc := NewEarningsService(repo, zap.NewNop())
	if _, err := svc.MonthlySummary(context.Background(), "peg-1", model.RolePegawai, 2, 2026); err != nil {
		t.Fatal(err)
	}
}

func TestDailyDetailIncludesMitraHonor(t *testing.T) {
	repo := newMockRepository()
	date := model.NewDate(2026, time.February, 10)
	repo.Ledger.(*mockLedgerRepo).listTransportInRangeFn = func(ctx context.Context, start, end model.DateOnly, scope repository.LedgerScope) ([]model.EarningsLedgerEntry, error) {
		return []model.EarningsLedgerEntry{ledgerEntry("peg-1", 10, 150000)}, nil
	}
	repo.Task.(*mockTaskRepo).listHonorInRangeFn = func(ctx context.Context, start, end model.DateOnly, ketuaTimID string) ([]model.Task, error) {
		if !start.Equal(date) || !end.Equal(date) {
			t.Errorf("honor range = %s..%s, want single day %s", start, end, date)
		}
		if ketuaTimID != "ketua-1" {
			t.Errorf("ketuaTimID = %q, want ketua-1", ketuaTimID)
		}
		return []model.Task{{
			ID:              "task-1",
			AssigneeMitraID: strPtr("mitra-1"),
			HonorAmount:     i64Ptr(500000),
			StartDate:       date,
		}}, nil
	}

	svc := NewEarningsService(repo, zap.NewNop())
	got, err := svc.DailyDetail(context.Background(), "ketua-1", model.RoleKetuaTim, date)
	if err != nil {
		t.Fatalf("DailyDetail: %v", err)
	}
	if got.TransportTotal != 150000 || got.HonorTotal != 500000 || got.Total != 650000 {
		t.Errorf("totals = %d/%d/%d, want 150000/500000/650000",
			got.TransportTotal, got.HonorTotal, got.Total)
	}
	if len(got.HonorTasks) != 1 {
		t.Errorf("honor tasks = %d, want 1", len(got.HonorTasks))
	}
}
