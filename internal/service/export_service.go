package service

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/habstrakT808/Sistem-Manajemen-Project-BPS-sub003/internal/repository"
)

// ExportService renders earnings recaps as Excel workbooks.
type ExportService struct {
	repo     *repository.Repository
	earnings *EarningsService
	logger   *zap.Logger
}

func NewExportService(repo *repository.Repository, earnings *EarningsService, logger *zap.Logger) *ExportService {
	return &ExportService{repo: repo, earnings: earnings, logger: logger}
}

var monthNames = [...]string{"", "Januari", "Februari", "Maret", "April", "Mei", "Juni",
	"Juli", "Agustus", "September", "Oktober", "November", "Desember"}

// MonthlyRecap builds a workbook with a per-pegawai sheet and a daily
// breakdown sheet for one month, scoped to the requester's visibility.
func (s *ExportService) MonthlyRecap(ctx context.Context, requesterID, requesterRole string, bulan, tahun int) (*excelize.File, error) {
	summary, err := s.earnings.MonthlySummary(ctx, requesterID, requesterRole, bulan, tahun)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	title := fmt.Sprintf("Rekap Transport %s %d", monthNames[bulan], tahun)

	sheet := "Per Pegawai"
	f.SetSheetName("Sheet1", sheet)
	_ = f.SetCellValue(sheet, "A1", title)
	_ = f.SetCellValue(sheet, "A2", "Nama")
	_ = f.SetCellValue(sheet, "B2", "Jumlah Entri")
	_ = f.SetCellValue(sheet, "C2", "Total (Rp)")

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"DDEBF7"}, Pattern: 1},
	})
	if err == nil {
		_ = f.SetCellStyle(sheet, "A2", "C2", headerStyle)
	}

	row := 3
	for _, u := range summary.PerUser {
		name := u.NamaLengkap
		if name == "" {
			name = u.UserID
		}
		_ = f.SetCellValue(sheet, fmt.Sprintf("A%d", row), name)
		_ = f.SetCellValue(sheet, fmt.Sprintf("B%d", row), u.Entries)
		_ = f.SetCellValue(sheet, fmt.Sprintf("C%d", row), u.Total)
		row++
	}
	_ = f.SetCellValue(sheet, fmt.Sprintf("A%d", row), "Total")
	_ = f.SetCellValue(sheet, fmt.Sprintf("C%d", row), summary.Total)
	_ = f.SetColWidth(sheet, "A", "A", 32)
	_ = f.SetColWidth(sheet, "B", "C", 16)

	daily := "Per Hari"
	if _, err := f.NewSheet(daily); err != nil {
		return nil, fmt.Errorf("create sheet: %w", err)
	}
	_ = f.SetCellValue(daily, "A1", "Tanggal")
	_ = f.SetCellValue(daily, "B1", "Total (Rp)")
	if headerStyle != 0 {
		_ = f.SetCellStyle(daily, "A1", "B1", headerStyle)
	}
	for i, d := range summary.PerDay {
		_ = f.SetCellValue(daily, fmt.Sprintf("A%d", i+2), d.Date.String())
		_ = f.SetCellValue(daily, fmt.Sprintf("B%d", i+2), d.Total)
	}
	_ = f.SetColWidth(daily, "A", "B", 16)

	s.logger.Info("earnings recap exported",
		zap.Int("bulan", bulan),
		zap.Int("tahun", tahun),
		zap.String("requester", requesterID),
	)
	return f, nil
}
