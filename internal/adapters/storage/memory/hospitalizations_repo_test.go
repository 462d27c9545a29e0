package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"pet-hospitalization/internal/domain/hospitalizations"
)

func TestAdministrationRepo_CreateBatchSkipsDuplicates(t *testing.T) {
	ctx := context.Background()
	repo := NewAdministrationRepo()
	at := time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)

	err := repo.CreateBatch(ctx, []hospitalizations.Administration{
		{ID: "a1", StayID: "s1", PrescriptionID: "p1", ScheduledAt: at.Add(8 * time.Hour)},
		{ID: "a2", StayID: "s1", PrescriptionID: "p1", ScheduledAt: at},
		{ID: "a3", StayID: "s1", PrescriptionID: "p1", ScheduledAt: at},
	})
	if err != nil {
		t.Fatalf("CreateBatch error: %v", err)
	}

	items, _ := repo.ListByPrescription(ctx, "p1")
	if len(items) != 2 {
		t.Fatalf("expected 2 administrations, got %d", len(items))
	}
	if items[0].ID != "a2" || items[1].ID != "a1" {
		t.Fatalf("expected ordering by scheduled_at, got %s,%s", items[0].ID, items[1].ID)
	}
	if _, err := repo.GetByID(ctx, "a3"); !errors.Is(err, hospitalizations.ErrNotFound) {
		t.Fatalf("duplicate should not be stored, got %v", err)
	}
}

func TestStayRepo_ListFilters(t *testing.T) {
	ctx := context.Background()
	repo := NewStayRepo()
	base := time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)

	_ = repo.Create(ctx, hospitalizations.Hospitalization{ID: "s1", PetID: "p1", Status: hospitalizations.StayStatusActive, AdmittedAt: base})
	_ = repo.Create(ctx, hospitalizations.Hospitalization{ID: "s2", PetID: "p2", Status: hospitalizations.StayStatusDischarged, AdmittedAt: base.Add(time.Hour)})
	_ = repo.Create(ctx, hospitalizations.Hospitalization{ID: "s3", PetID: "p1", Status: hospitalizations.StayStatusActive, AdmittedAt: base.Add(2 * time.Hour)})

	active, _ := repo.List(ctx, hospitalizations.StayFilter{Status: hospitalizations.StayStatusActive})
	if len(active) != 2 || active[0].ID != "s3" {
		t.Fatalf("unexpected active list: %#v", active)
	}
	limited, _ := repo.List(ctx, hospitalizations.StayFilter{PetID: "p1", Limit: 1})
	if len(limited) != 1 || limited[0].ID != "s3" {
		t.Fatalf("unexpected limited list: %#v", limited)
	}

	if err := repo.Update(ctx, hospitalizations.Hospitalization{ID: "missing"}); !errors.Is(err, hospitalizations.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
