package service

import (
	"context"
	"testing"

	"go.uber.org/zap"

	"github.com/habstrakT808/Sistem-Manajemen-Project-BPS-sub003/internal/model"
	"github.com/habstrakT808/Sistem-Manajemen-Project-BPS-sub003/internal/repository"
)

func TestMonthlyRecapWorkbook(t *testing.T) {
	repo := newMockRepository()
	repo.Ledger.(*mockLedgerRepo).listTransportInRangeFn = func(ctx context.Context, start, end model.DateOnly, scope repository.LedgerScope) ([]model.EarningsLedgerEntry, error) {
		return []model.EarningsLedgerEntry{
			ledgerEntry("peg-1", 3, 150000),
			ledgerEntry("peg-1", 4, 150000),
		}, nil
	}
	repo.User.(*mockUserRepo).listByIDsFn = func(ctx context.Context, ids []string) ([]model.User, error) {
		return []model.User{{ID: "peg-1", NamaLengkap: "Andi"}}, nil
	}

	svc := NewExportService(repo, NewEarningsService(repo, zap.NewNop()), zap.NewNop())
	f, err := svc.MonthlyRecap(context.Background(), "admin-1", model.RoleAdmin, 2, 2026)
	if err != nil {
		t.Fatalf("MonthlyRecap: %v", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) != 2 || sheets[0] != "Per Pegawai" || sheets[1] != "Per Hari" {
		t.Fatalf("sheets = %v", sheets)
	}

	title, err := f.GetCellValue("Per Pegawai", "A1")
	if err != nil {
		t.Fatal(err)
	}
	if title != "Rekap Transport Februari 2026" {
		t.Errorf("title = %q", title)
	}

	name, _ := f.GetCellValue("Per Pegawai", "A3")
	total, _ := f.GetCellValue("Per Pegawai", "C3")
	if name != "Andi" || total != "300000" {
		t.Errorf("row = %q / %q, want Andi / 300000", name, total)
	}

	// daily sheet has one row per calendar day of February
	rows, err := f.GetRows("Per Hari")
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 29 { // header + 28 days
		t.Errorf("%d rows, want 29", len(rows))
	}
}
