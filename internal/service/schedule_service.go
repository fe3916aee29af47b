package service

import (
	"context"
	"fmt"
	"io"

	ics "github.com/arran4/golang-ical"
	"go.uber.org/zap"

	"github.com/habstrakT808/Sistem-Manajemen-Project-BPS-sub003/internal/dto"
	"github.com/habstrakT808/Sistem-Manajemen-Project-BPS-sub003/internal/model"
	"github.com/habstrakT808/Sistem-Manajemen-Project-BPS-sub003/internal/repository"
)

// ScheduleService manages blackout schedules. Creating one clears any
// allocation dates already inside the range and voids their ledger
// entries, so a new blackout never leaves money booked on blocked days.
type ScheduleService struct {
	repo         *repository.Repository
	notification *NotificationService
	logger       *zap.Logger
}

func NewScheduleService(repo *repository.Repository, notification *NotificationService, logger *zap.Logger) *ScheduleService {
	return &ScheduleService{repo: repo, notification: notification, logger: logger}
}

// List returns all blackout schedules ordered by start date.
func (s *ScheduleService) List(ctx context.Context) ([]model.GlobalSchedule, error) {
	return s.repo.GlobalSchedule.List(ctx)
}

// Create stores the blackout range and displaces the allocations caught
// inside it back to undated.
func (s *ScheduleService) Create(ctx context.Context, adminID string, req *dto.CreateScheduleRequest) (*model.GlobalSchedule, error) {
	if req.EndDate.Before(req.StartDate) {
		return nil, fmt.Errorf("%w: end_date sebelum start_date", ErrValidation)
	}

	schedule := &model.GlobalSchedule{
		Title:       req.Title,
		Description: req.Description,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		CreatedBy:   adminID,
	}

	var displaced []model.TransportAllocation

	err := s.repo.Tx.InTx(ctx, func(txRepo *repository.Repository) error {
		if err := txRepo.GlobalSchedule.Create(ctx, schedule); err != nil {
			return fmt.Errorf("create schedule: %w", err)
		}

		caught, err := txRepo.Allocation.ListActiveDatedInRange(ctx, req.StartDate, req.EndDate)
		if err != nil {
			return fmt.Errorf("list affected allocations: %w", err)
		}

		now := timeNow()
		for _, a := range caught {
			if err := txRepo.Allocation.ClearDate(ctx, a.ID); err != nil {
				return fmt.Errorf("clear allocation date: %w", err)
			}
			if err := txRepo.Ledger.VoidBySource(ctx, model.SourceTableAllocations, a.ID, now); err != nil {
				return fmt.Errorf("void ledger entry: %w", err)
			}
		}
		displaced = caught
		return nil
	})
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	for _, a := range displaced {
		if seen[a.UserID] {
			continue
		}
		seen[a.UserID] = true
		s.notification.Notify(ctx, a.UserID,
			"Jadwal diblokir",
			fmt.Sprintf("Tanggal alokasi transport anda dalam %s s.d. %s dikosongkan karena %q. Silakan pilih tanggal lain.",
				req.StartDate, req.EndDate, req.Title),
			"warning")
	}

	s.logger.Info("blackout schedule created",
		zap.String("schedule_id", schedule.ID),
		zap.String("range", req.StartDate.String()+".."+req.EndDate.String()),
		zap.Int("allocations_displaced", len(displaced)),
	)
	return schedule, nil
}

// Delete removes a blackout schedule. Previously displaced allocations
// stay undated; the pegawai re-picks dates.
func (s *ScheduleService) Delete(ctx context.Context, id string) error {
	schedule, err := s.repo.GlobalSchedule.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get schedule: %w", err)
	}
	if schedule == nil {
		return fmt.Errorf("%w: schedule", ErrNotFound)
	}
	return s.repo.GlobalSchedule.Delete(ctx, id)
}

// ImportHolidays reads an iCalendar feed and creates one blackout
// schedule per event. Events already covered by an identical range and
// title are skipped.
func (s *ScheduleService) ImportHolidays(ctx context.Context, adminID string, r io.Reader) (*dto.ImportHolidaysResult, error) {
	cal, err := ics.ParseCalendar(r)
	if err != nil {
		return nil, fmt.Errorf("%w: file ics tidak valid: %v", ErrValidation, err)
	}

	existing, err := s.repo.GlobalSchedule.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list schedules: %w", err)
	}
	known := make(map[string]bool, len(existing))
	for _, sch := range existing {
		known[sch.Title+"|"+sch.StartDate.String()+"|"+sch.EndDate.String()] = true
	}

	result := &dto.ImportHolidaysResult{}
	for _, event := range cal.Events() {
		summary := ""
		if p := event.GetProperty(ics.ComponentPropertySummary); p != nil {
			summary = p.Value
		}
		if summary == "" {
			summary = "Hari libur"
		}

		startAt, err := event.GetAllDayStartAt()
		if err != nil {
			if startAt, err = event.GetStartAt(); err != nil {
				result.Skipped++
				continue
			}
		}
		start := model.DateOf(startAt)

		end := start
		if endAt, err := event.GetAllDayEndAt(); err == nil {
			// DTEND on all-day events is exclusive
			end = model.DateOf(endAt).AddDays(-1)
		} else if endAt, err := event.GetEndAt(); err == nil {
			end = model.DateOf(endAt)
		}
		if end.Before(start) {
			end = start
		}

		if known[summary+"|"+start.String()+"|"+end.String()] {
			result.Skipped++
			continue
		}

		if _, err := s.Create(ctx, adminID, &dto.CreateScheduleRequest{
			Title:     summary,
			StartDate: start,
			EndDate:   end,
		}); err != nil {
			return nil, fmt.Errorf("import event %q: %w", summary, err)
		}
		result.Imported++
		result.Titles = append(result.Titles, summary)
	}

	s.logger.Info("holiday calendar imported",
		zap.Int("imported", result.Imported),
		zap.Int("skipped", result.Skipped),
	)
	return result, nil
}
