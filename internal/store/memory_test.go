package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/iwvelando/prepay-planner/internal/engine"
)

func testRecord(owner string) *PlanRecord {
	return &PlanRecord{
		Owner: owner,
		Request: engine.Request{
			Principal:   3200000,
			AnnualRate:  8.35,
			EMI:         31231,
			TotalTenure: 180,
			PaidEMIs:    4,
		},
		CalculatedAt: time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestMemory_LoadMissing(t *testing.T) {
	repo := NewMemory()
	_, err := repo.Load(context.Background(), "nobody")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestMemory_SaveAssignsVersions(t *testing.T) {
	repo := NewMemory()
	ctx := context.Background()

	saved, err := repo.Save(ctx, testRecord("alice"), 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if saved.Version != 1 {
		t.Errorf("expected version 1 on first save, got %d", saved.Version)
	}

	saved, err = repo.Save(ctx, testRecord("alice"), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if saved.Version != 2 {
		t.Errorf("expected version 2 on second save, got %d", saved.Version)
	}

	loaded, err := repo.Load(ctx, "alice")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if loaded.Version != 2 {
		t.Errorf("expected loaded version 2, got %d", loaded.Version)
	}
}

func TestMemory_VersionConflict(t *testing.T) {
	repo := NewMemory()
	ctx := context.Background()

	if _, err := repo.Save(ctx, testRecord("alice"), 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// A writer that still believes the record is unsaved loses.
	_, err := repo.Save(ctx, testRecord("alice"), 0)
	if !errors.Is(err, ErrVersionConflict) {
		t.Fatalf("expected ErrVersionConflict, got %v", err)
	}

	// A stale expected version loses too.
	if _, err := repo.Save(ctx, testRecord("alice"), 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	_, err = repo.Save(ctx, testRecord("alice"), 1)
	if !errors.Is(err, ErrVersionConflict) {
		t.Fatalf("expected ErrVersionConflict, got %v", err)
	}
}

func TestMemory_OwnersAreIndependent(t *testing.T) {
	repo := NewMemory()
	ctx := context.Background()

	if _, err := repo.Save(ctx, testRecord("alice"), 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := repo.Save(ctx, testRecord("bob"), 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	alice, err := repo.Load(ctx, "alice")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if alice.Owner != "alice" || alice.Version != 1 {
		t.Errorf("unexpected record %+v", alice)
	}
}

func TestMemory_LoadReturnsCopy(t *testing.T) {
	repo := NewMemory()
	ctx := context.Background()

	if _, err := repo.Save(ctx, testRecord("alice"), 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	loaded, err := repo.Load(ctx, "alice")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	loaded.Request.Principal = 0

	again, err := repo.Load(ctx, "alice")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if again.Request.Principal != 3200000 {
		t.Errorf("expected the stored record to be unaffected by caller mutation, got %v", again.Request.Principal)
	}
}
