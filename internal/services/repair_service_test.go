package services_test

import (
	"testing"

	"fixpos/internal/domain"
	"fixpos/internal/repos"
	"fixpos/internal/services"
)

func TestRepairCompletionStampsDateOnce(t *testing.T) {
	db := memdb(t)
	svc := services.NewRepairService(repos.NewRepairRepo(db))

	r, err := svc.Add(services.AddRepairInput{
		CustomerName: "Dana",
		Device:       "Pixel 7",
		Issue:        "cracked screen",
		Cost:         80,
		Status:       domain.StatusPending,
	})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if r.CompletedAt != nil {
		t.Fatalf("new repair already has completion date")
	}

	events, err := svc.UpdateStatus(r.ID, domain.StatusCompleted)
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("want 1 event, got %d", len(events))
	}
	done, ok := events[0].(domain.RepairCompleted)
	if !ok {
		t.Fatalf("want RepairCompleted, got %T", events[0])
	}
	if done.RepairID != r.ID || done.Cost != 80 {
		t.Fatalf("bad event: %+v", done)
	}

	got, err := repos.NewRepairRepo(db).Get(r.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Status != domain.StatusCompleted || got.CompletedAt == nil {
		t.Fatalf("completion not recorded: %+v", got)
	}
	first := *got.CompletedAt

	// re-completing is inert
	events, err = svc.UpdateStatus(r.ID, domain.StatusCompleted)
	if err != nil {
		t.Fatalf("re-complete: %v", err)
	}
	if len(events) != 0 {
		t.Fatalf("re-completion emitted events: %+v", events)
	}
	got, _ = repos.NewRepairRepo(db).Get(r.ID)
	if got.CompletedAt == nil || !got.CompletedAt.Equal(first) {
		t.Fatalf("completion date moved: %v vs %v", got.CompletedAt, first)
	}
}

func TestRepairMovedAwayFromCompletedKeepsDate(t *testing.T) {
	db := memdb(t)
	svc := services.NewRepairService(repos.NewRepairRepo(db))

	r, err := svc.Add(services.AddRepairInput{
		CustomerName: "Omar",
		Device:       "iPhone 12",
		Cost:         60,
		Status:       domain.StatusInProgress,
	})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if _, err := svc.UpdateStatus(r.ID, domain.StatusCompleted); err != nil {
		t.Fatalf("complete: %v", err)
	}
	if _, err := svc.UpdateStatus(r.ID, domain.StatusCancelled); err != nil {
		t.Fatalf("cancel: %v", err)
	}

	got, err := repos.NewRepairRepo(db).Get(r.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Status != domain.StatusCancelled {
		t.Fatalf("want Cancelled, got %s", got.Status)
	}
	if got.CompletedAt == nil {
		t.Fatalf("completion date was cleared")
	}
}

func TestRepairUnknownIDIsSilentNoop(t *testing.T) {
	db := memdb(t)
	svc := services.NewRepairService(repos.NewRepairRepo(db))

	events, err := svc.UpdateStatus("no-such-repair", domain.StatusCompleted)
	if err != nil {
		t.Fatalf("want nil error, got %v", err)
	}
	if events != nil {
		t.Fatalf("want no events, got %+v", events)
	}
}
