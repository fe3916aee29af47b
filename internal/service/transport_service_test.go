package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/habstrakT808/Sistem-Manajemen-Project-BPS-sub003/internal/dto"
	"github.com/habstrakT808/Sistem-Manajemen-Project-BPS-sub003/internal/model"
	pkgerrors "github.com/habstrakT808/Sistem-Manajemen-Project-BPS-sub003/pkg/errors"
)

func testAllocation(dated bool) *model.TransportAllocation {
	alloc := &model.TransportAllocation{
		ID:     "alloc-1",
		TaskID: "task-1",
		UserID: "peg-1",
		Amount: 150000,
		Task: &model.Task{
			ID:             "task-1",
			ProjectID:      "proj-1",
			DeskripsiTugas: "Survei lapangan",
			StartDate:      model.NewDate(2026, time.June, 1),
			EndDate:        model.NewDate(2026, time.June, 10),
		},
	}
	if dated {
		d := model.NewDate(2026, time.June, 3)
		at := time.Now()
		alloc.AllocationDate = &d
		alloc.AllocatedAt = &at
	}
	return alloc
}

func TestAllocateDatePostsLedgerEntry(t *testing.T) {
	repo := newMockRepository()
	alloc := testAllocation(false)

	var dated *model.DateOnly
	repo.Allocation.(*mockAllocationRepo).getByIDFn = func(ctx context.Context, id string) (*model.TransportAllocation, error) {
		return alloc, nil
	}
	repo.Allocation.(*mockAllocationRepo).setDateFn = func(ctx context.Context, id string, date model.DateOnly, at time.Time) error {
		dated = &date
		return nil
	}

	var posted *model.EarningsLedgerEntry
	repo.Ledger.(*mockLedgerRepo).createFn = func(ctx context.Context, entry *model.EarningsLedgerEntry) error {
		posted = entry
		return nil
	}

	svc := NewTransportService(repo, NewNotificationService(repo, zap.NewNop()), zap.NewNop())
	date := model.NewDate(2026, time.June, 3)
	got, err := svc.AllocateDate(context.Background(), "alloc-1", "peg-1", &dto.AllocateDateRequest{AllocationDate: date})
	if err != nil {
		t.Fatalf("AllocateDate: %v", err)
	}

	if dated == nil || !dated.Equal(date) {
		t.Fatalf("allocation date not set, got %v", dated)
	}
	if posted == nil {
		t.Fatal("no ledger entry posted")
	}
	if posted.UserID != "peg-1" || posted.Type != model.EarningTypeTransport {
		t.Errorf("entry user/type = %s/%s", posted.UserID, posted.Type)
	}
	if posted.Amount != 150000 {
		t.Errorf("entry amount = %d, want 150000", posted.Amount)
	}
	if !posted.OccurredOn.Equal(date) {
		t.Errorf("entry occurred_on = %s, want %s", posted.OccurredOn, date)
	}
	if posted.SourceTable != model.SourceTableAllocations || posted.SourceID != "alloc-1" {
		t.Errorf("entry source = %s/%s", posted.SourceTable, posted.SourceID)
	}
	if got.AllocationDate == nil || !got.AllocationDate.Equal(date) {
		t.Errorf("returned allocation not dated")
	}
}

func TestAllocateDateOutsideTaskRange(t *testing.T) {
	repo := newMockRepository()
	repo.Allocation.(*mockAllocationRepo).getByIDFn = func(ctx context.Context, id string) (*model.TransportAllocation, error) {
		return testAllocation(false), nil
	}

	svc := NewTransportService(repo, NewNotificationService(repo, zap.NewNop()), zap.NewNop())
	_, err := svc.AllocateDate(context.Background(), "alloc-1", "peg-1",
		&dto.AllocateDateRequest{AllocationDate: model.NewDate(2026, time.June, 11)})
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("err = %v, want ErrValidation", err)
	}
}

func TestAllocateDateBlackout(t *testing.T) {
	repo := newMockRepository()
	repo.Allocation.(*mockAllocationRepo).getByIDFn = func(ctx context.Context, id string) (*model.TransportAllocation, error) {
		return testAllocation(false), nil
	}
	repo.GlobalSchedule.(*mockScheduleRepo).listCoveringFn = func(ctx context.Context, date model.DateOnly) ([]model.GlobalSchedule, error) {
		return []model.GlobalSchedule{{Title: "Libur Nasional"}}, nil
	}

	var ledgerCalled bool
	repo.Ledger.(*mockLedgerRepo).createFn = func(ctx context.Context, entry *model.EarningsLedgerEntry) error {
		ledgerCalled = true
		return nil
	}

	svc := NewTransportService(repo, NewNotificationService(repo, zap.NewNop()), zap.NewNop())
	_, err := svc.AllocateDate(context.Background(), "alloc-1", "peg-1",
		&dto.AllocateDateRequest{AllocationDate: model.NewDate(2026, time.June, 3)})
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("err = %v, want ErrValidation", err)
	}
	if ledgerCalled {
		t.Error("ledger entry posted despite blackout")
	}
}

func TestAllocateDateDoubleBooking(t *testing.T) {
	repo := newMockRepository()
	repo.Allocation.(*mockAllocationRepo).getByIDFn = func(ctx context.Context, id string) (*model.TransportAllocation, error) {
		return testAllocation(false), nil
	}
	repo.Allocation.(*mockAllocationRepo).hasActiveOnDateFn = func(ctx context.Context, userID string, date model.DateOnly) (bool, error) {
		return true, nil
	}

	svc := NewTransportService(repo, NewNotificationService(repo, zap.NewNop()), zap.NewNop())
	_, err := svc.AllocateDate(context.Background(), "alloc-1", "peg-1",
		&dto.AllocateDateRequest{AllocationDate: model.NewDate(2026, time.June, 3)})
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("err = %v, want ErrConflict", err)
	}
}

func TestAllocateDateRaceMapsToConflict(t *testing.T) {
	repo := newMockRepository()
	repo.Allocation.(*mockAllocationRepo).getByIDFn = func(ctx context.Context, id string) (*model.TransportAllocation, error) {
		return testAllocation(false), nil
	}
	repo.Allocation.(*mockAllocationRepo).setDateFn = func(ctx context.Context, id string, date model.DateOnly, at time.Time) error {
		return pkgerrors.ErrDateTaken
	}

	svc := NewTransportService(repo, NewNotificationService(repo, zap.NewNop()), zap.NewNop())
	_, err := svc.AllocateDate(context.Background(), "alloc-1", "peg-1",
		&dto.AllocateDateRequest{AllocationDate: model.NewDate(2026, time.June, 3)})
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("err = %v, want ErrConflict", err)
	}
}

func TestAllocateDateAlreadyDated(t *testing.T) {
	repo := newMockRepository()
	repo.Allocation.(*mockAllocationRepo).getByIDFn = func(ctx context.Context, id string) (*model.TransportAllocation, error) {
		return testAllocation(true), nil
	}

	svc := NewTransportService(repo, NewNotificationService(repo, zap.NewNop()), zap.NewNop())
	_, err := svc.AllocateDate(context.Background(), "alloc-1", "peg-1",
		&dto.AllocateDateRequest{AllocationDate: model.NewDate(2026, time.June, 4)})
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("err = %v, want ErrConflict", err)
	}
}

func TestAllocateDateNotOwner(t *testing.T) {
	repo := newMockRepository()
	repo.Allocation.(*mockAllocationRepo).getByIDFn = func(ctx context.Context, id string) (*model.TransportAllocation, error) {
		return testAllocation(false), nil
	}

	svc := NewTransportService(repo, NewNotificationService(repo, zap.NewNop()), zap.NewNop())
	_, err := svc.AllocateDate(context.Background(), "alloc-1", "peg-2",
		&dto.AllocateDateRequest{AllocationDate: model.NewDate(2026, time.June, 3)})
	if !errors.Is(err, ErrForbidden) {
		t.Fatalf("err = %v, want ErrForbidden", err)
	}
}

func TestAllocateDateCanceledAllocation(t *testing.T) {
	repo := newMockRepository()
	repo.Allocation.(*mockAllocationRepo).getByIDFn = func(ctx context.Context, id string) (*model.TransportAllocation, error) {
		alloc := testAllocation(false)
		now := time.Now()
		alloc.CanceledAt = &now
		return alloc, nil
	}

	svc := NewTransportService(repo, NewNotificationService(repo, zap.NewNop()), zap.NewNop())
	_, err := svc.AllocateDate(context.Background(), "alloc-1", "peg-1",
		&dto.AllocateDateRequest{AllocationDate: model.NewDate(2026, time.June, 3)})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestCancelVoidsLedgerEntry(t *testing.T) {
	repo := newMockRepository()
	repo.Allocation.(*mockAllocationRepo).getByIDFn = func(ctx context.Context, id string) (*model.TransportAllocation, error) {
		return testAllocation(true), nil
	}

	var canceled bool
	repo.Allocation.(*mockAllocationRepo).cancelFn = func(ctx context.Context, id string, at time.Time) error {
		canceled = true
		return nil
	}

	var voidedSource string
	repo.Ledger.(*mockLedgerRepo).voidBySourceFn = func(ctx context.Context, sourceTable, sourceID string, at time.Time) error {
		voidedSource = sourceTable + "/" + sourceID
		return nil
	}

	svc := NewTransportService(repo, NewNotificationService(repo, zap.NewNop()), zap.NewNop())
	if err := svc.Cancel(context.Background(), "alloc-1", "peg-1", model.RolePegawai); err != nil {
		t.Fatalf("Cancel: %v", err)
	}
	if !canceled {
		t.Error("allocation not canceled")
	}
	if voidedSource != model.SourceTableAllocations+"/alloc-1" {
		t.Errorf("voided source = %q", voidedSource)
	}
}

func TestCancelUndatedSkipsVoid(t *testing.T) {
	repo := newMockRepository()
	repo.Allocation.(*mockAllocationRepo).getByIDFn = func(ctx context.Context, id string) (*model.TransportAllocation, error) {
		return testAllocation(false), nil
	}

	var voided bool
	repo.Ledger.(*mockLedgerRepo).voidBySourceFn = func(ctx context.Context, sourceTable, sourceID string, at time.Time) error {
		voided = true
		return nil
	}

	svc := NewTransportService(repo, NewNotificationService(repo, zap.NewNop()), zap.NewNop())
	if err := svc.Cancel(context.Background(), "alloc-1", "peg-1", model.RolePegawai); err != nil {
		t.Fatalf("Cancel: %v", err)
	}
	if voided {
		t.Error("void called for an undated allocation")
	}
}

func TestCancelByKetuaTimNotifiesPegawai(t *testing.T) {
	repo := newMockRepository()
	repo.Allocation.(*mockAllocationRepo).getByIDFn = func(ctx context.Context, id string) (*model.TransportAllocation, error) {
		return testAllocation(true), nil
	}
	repo.Task.(*mockTaskRepo).getByIDFn = func(ctx context.Context, id string) (*model.Task, error) {
		return &model.Task{
			ID:        "task-1",
			ProjectID: "proj-1",
			Project:   &model.Project{ID: "proj-1", KetuaTimID: "ketua-1"},
		}, nil
	}

	notifRepo := repo.Notification.(*mockNotificationRepo)
	svc := NewTransportService(repo, NewNotificationService(repo, zap.NewNop()), zap.NewNop())
	if err := svc.Cancel(context.Background(), "alloc-1", "ketua-1", model.RoleKetuaTim); err != nil {
		t.Fatalf("Cancel: %v", err)
	}
	if len(notifRepo.created) != 1 || notifRepo.created[0].UserID != "peg-1" {
		t.Errorf("expected one notification for peg-1, got %v", notifRepo.created)
	}
}

func TestCancelByOtherKetuaTimForbidden(t *testing.T) {
	repo := newMockRepository()
	repo.Allocation.(*mockAllocationRepo).getByIDFn = func(ctx context.Context, id string) (*model.TransportAllocation, error) {
		return testAllocation(true), nil
	}
	repo.Task.(*mockTaskRepo).getByIDFn = func(ctx context.Context, id string) (*model.Task, error) {
		return &model.Task{
			ID:        "task-1",
			ProjectID: "proj-1",
			Project:   &model.Project{ID: "proj-1", KetuaTimID: "ketua-1"},
		}, nil
	}

	svc := NewTransportService(repo, NewNotificationService(repo, zap.NewNop()), zap.NewNop())
	err := svc.Cancel(context.Background(), "alloc-1", "ketua-2", model.RoleKetuaTim)
	if !errors.Is(err, ErrForbidden) {
		t.Fatalf("err = %v, want ErrForbidden", err)
	}
}

// A blackout displaces a dated allocation and voids its posting; the
// pegawai must then be able to pick a fresh date for the same
// allocation, with the voided row kept as history.
func TestAllocateDateAfterBlackoutDisplacement(t *testing.T) {
	repo := newMockRepository()

	alloc := testAllocation(false)
	repo.Allocation.(*mockAllocationRepo).getByIDFn = func(ctx context.Context, id string) (*model.TransportAllocation, error) {
		copied := *alloc
		return &copied, nil
	}
	repo.Allocation.(*mockAllocationRepo).setDateFn = func(ctx context.Context, id string, date model.DateOnly, at time.Time) error {
		alloc.AllocationDate = &date
		alloc.AllocatedAt = &at
		return nil
	}
	repo.Allocation.(*mockAllocationRepo).clearDateFn = func(ctx context.Context, id string) error {
		alloc.AllocationDate = nil
		alloc.AllocatedAt = nil
		return nil
	}
	repo.Allocation.(*mockAllocationRepo).listActiveDatedInRangeFn = func(ctx context.Context, start, end model.DateOnly) ([]model.TransportAllocation, error) {
		if alloc.AllocationDate != nil && alloc.AllocationDate.InRange(start, end) {
			return []model.TransportAllocation{*alloc}, nil
		}
		return nil, nil
	}

	// one live posting per source, as the partial unique index enforces
	var entries []*model.EarningsLedgerEntry
	repo.Ledger.(*mockLedgerRepo).createFn = func(ctx context.Context, entry *model.EarningsLedgerEntry) error {
		for _, e := range entries {
			if e.SourceTable == entry.SourceTable && e.SourceID == entry.SourceID && e.VoidedAt == nil {
				return pkgerrors.ErrDuplicateLedgerEntry
			}
		}
		copied := *entry
		entries = append(entries, &copied)
		return nil
	}
	repo.Ledger.(*mockLedgerRepo).voidBySourceFn = func(ctx context.Context, sourceTable, sourceID string, at time.Time) error {
		for _, e := range entries {
			if e.SourceTable == sourceTable && e.SourceID == sourceID && e.VoidedAt == nil {
				voidedAt := at
				e.VoidedAt = &voidedAt
			}
		}
		return nil
	}

	blackout := model.NewDate(2026, time.June, 3)
	repo.GlobalSchedule.(*mockScheduleRepo).listCoveringFn = func(ctx context.Context, date model.DateOnly) ([]model.GlobalSchedule, error) {
		if date.Equal(blackout) {
			return []model.GlobalSchedule{{Title: "Libur Nasional"}}, nil
		}
		return nil, nil
	}

	notif := NewNotificationService(repo, zap.NewNop())
	transport := NewTransportService(repo, notif, zap.NewNop())
	schedules := NewScheduleService(repo, notif, zap.NewNop())

	if _, err := transport.AllocateDate(context.Background(), "alloc-1", "peg-1",
		&dto.AllocateDateRequest{AllocationDate: model.NewDate(2026, time.June, 2)}); err != nil {
		t.Fatalf("first AllocateDate: %v", err)
	}

	if _, err := schedules.Create(context.Background(), "admin-1", &dto.CreateScheduleRequest{
		Title:     "Libur Nasional",
		StartDate: model.NewDate(2026, time.June, 1),
		EndDate:   model.NewDate(2026, time.June, 4),
	}); err != nil {
		t.Fatalf("blackout Create: %v", err)
	}
	if alloc.AllocationDate != nil {
		t.Fatal("allocation not displaced by blackout")
	}

	if _, err := transport.AllocateDate(context.Background(), "alloc-1", "peg-1",
		&dto.AllocateDateRequest{AllocationDate: model.NewDate(2026, time.June, 5)}); err != nil {
		t.Fatalf("AllocateDate after displacement: %v", err)
	}

	if len(entries) != 2 {
		t.Fatalf("ledger rows = %d, want 2", len(entries))
	}
	if entries[0].VoidedAt == nil {
		t.Error("displaced posting not voided")
	}
	if entries[1].VoidedAt != nil || !entries[1].OccurredOn.Equal(model.NewDate(2026, time.June, 5)) {
		t.Errorf("live posting = %+v", entries[1])
	}
}
