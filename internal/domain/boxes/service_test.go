package boxes

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"
)

// -------------------------
// Test repo (in-memory)
// -------------------------

type testRepo struct {
	mu   sync.Mutex
	byID map[string]Box
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[string]Box{}}
}

func (r *testRepo) Create(ctx context.Context, b Box) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[b.ID]; ok {
		return errors.New("repo: already exists")
	}
	r.byID[b.ID] = b
	return nil
}

func (r *testRepo) GetByID(ctx context.Context, id string) (Box, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.byID[id]
	if !ok {
		return Box{}, ErrNotFound
	}
	return b, nil
}

func (r *testRepo) List(ctx context.Context, filter ListFilter) ([]Box, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Box, 0)
	for _, b := range r.byID {
		if filter.ActiveOnly && !b.Active {
			continue
		}
		if filter.FreeOnly && b.Occupied() {
			continue
		}
		out = append(out, b)
	}
	return out, nil
}

func (r *testRepo) Claim(ctx context.Context, boxID, stayID string, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.byID[boxID]
	if !ok {
		return ErrNotFound
	}
	if !b.Active {
		return ErrInactive
	}
	if b.Occupied() {
		if *b.OccupantStayID == stayID {
			return nil
		}
		return ErrOccupied
	}
	id := stayID
	b.OccupantStayID = &id
	b.UpdatedAt = at
	r.byID[boxID] = b
	return nil
}

func (r *testRepo) Release(ctx context.Context, boxID, stayID string, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.byID[boxID]
	if !ok {
		return ErrNotFound
	}
	if b.Occupied() && *b.OccupantStayID == stayID {
		b.OccupantStayID = nil
		b.UpdatedAt = at
		r.byID[boxID] = b
	}
	return nil
}

func (r *testRepo) Deactivate(ctx context.Context, boxID string, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.byID[boxID]
	if !ok {
		return ErrNotFound
	}
	if b.Occupied() {
		return ErrOccupied
	}
	b.Active = false
	b.UpdatedAt = at
	r.byID[boxID] = b
	return nil
}

// -------------------------
// Tests
// -------------------------

func newTestService(t *testing.T) (*Service, *testRepo) {
	t.Helper()
	repo := newTestRepo()
	svc := NewService(repo)
	now := time.Date(2024, 1, 5, 9, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }
	return svc, repo
}

func TestService_Create_RequiresName(t *testing.T) {
	svc, _ := newTestService(t)

	if _, err := svc.Create(context.Background(), CreateInput{Name: "   "}); err != ErrInvalidInput {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}

	b, err := svc.Create(context.Background(), CreateInput{Name: " Box 1 ", Description: "aislamiento"})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if b.Name != "Box 1" || !b.Active || b.Occupied() {
		t.Fatalf("unexpected box: %#v", b)
	}
}

func TestService_Claim_IsExclusive(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	b, _ := svc.Create(ctx, CreateInput{Name: "Box 1"})

	if err := svc.Claim(ctx, b.ID, "stay-1"); err != nil {
		t.Fatalf("first claim error: %v", err)
	}
	if err := svc.Claim(ctx, b.ID, "stay-1"); err != nil {
		t.Fatalf("re-claim by same stay should be idempotent, got %v", err)
	}
	if err := svc.Claim(ctx, b.ID, "stay-2"); !errors.Is(err, ErrOccupied) {
		t.Fatalf("expected ErrOccupied, got %v", err)
	}

	// Release de un stay que no es el ocupante no libera
	if err := svc.Release(ctx, b.ID, "stay-2"); err != nil {
		t.Fatalf("release error: %v", err)
	}
	if err := svc.Claim(ctx, b.ID, "stay-2"); !errors.Is(err, ErrOccupied) {
		t.Fatalf("expected box still occupied, got %v", err)
	}

	if err := svc.Release(ctx, b.ID, "stay-1"); err != nil {
		t.Fatalf("release error: %v", err)
	}
	if err := svc.Claim(ctx, b.ID, "stay-2"); err != nil {
		t.Fatalf("claim after release error: %v", err)
	}
}

func TestService_Deactivate(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	b, _ := svc.Create(ctx, CreateInput{Name: "Box 1"})
	_ = svc.Claim(ctx, b.ID, "stay-1")

	if _, err := svc.Deactivate(ctx, b.ID); !errors.Is(err, ErrOccupied) {
		t.Fatalf("expected ErrOccupied, got %v", err)
	}

	_ = svc.Release(ctx, b.ID, "stay-1")
	got, err := svc.Deactivate(ctx, b.ID)
	if err != nil {
		t.Fatalf("Deactivate error: %v", err)
	}
	if got.Active {
		t.Fatalf("expected inactive box")
	}
	if err := svc.Claim(ctx, b.ID, "stay-3"); !errors.Is(err, ErrInactive) {
		t.Fatalf("expected ErrInactive, got %v", err)
	}
}
