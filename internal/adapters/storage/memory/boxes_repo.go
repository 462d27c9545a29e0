package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	"pet-hospitalization/internal/domain/boxes"
)

type boxRepo struct {
	mu   sync.RWMutex
	byID map[string]boxes.Box
}

func NewBoxRepo() boxes.Repository {
	return &boxRepo{
		byID: make(map[string]boxes.Box),
	}
}

func (r *boxRepo) Create(ctx context.Context, b boxes.Box) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(b.ID) == "" {
		return errors.New("box id required")
	}
	if _, exists := r.byID[b.ID]; exists {
		return errors.New("box already exists")
	}
	r.byID[b.ID] = b
	return nil
}

func (r *boxRepo) GetByID(ctx context.Context, id string) (boxes.Box, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	b, ok := r.byID[id]
	if !ok {
		return boxes.Box{}, boxes.ErrNotFound
	}
	return b, nil
}

func (r *boxRepo) List(ctx context.Context, filter boxes.ListFilter) ([]boxes.Box, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]boxes.Box, 0, len(r.byID))
	for _, b := range r.byID {
		if filter.ActiveOnly && !b.Active {
			continue
		}
		if filter.FreeOnly && b.Occupied() {
			continue
		}
		out = append(out, b)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].Name < out[j].Name
	})
	return out, nil
}

// Claim es compare-and-set bajo el lock del repo.
func (r *boxRepo) Claim(ctx context.Context, boxID, stayID string, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	b, ok := r.byID[boxID]
	if !ok {
		return boxes.ErrNotFound
	}
	if !b.Active {
		return boxes.ErrInactive
	}
	if b.OccupantStayID != nil {
		if *b.OccupantStayID == stayID {
			return nil
		}
		return boxes.ErrOccupied
	}

	occupant := stayID
	b.OccupantStayID = &occupant
	b.UpdatedAt = at
	r.byID[boxID] = b
	return nil
}

func (r *boxRepo) Release(ctx context.Context, boxID, stayID string, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	b, ok := r.byID[boxID]
	if !ok {
		return boxes.ErrNotFound
	}
	if b.OccupantStayID == nil || *b.OccupantStayID != stayID {
		return nil
	}
	b.OccupantStayID = nil
	b.UpdatedAt = at
	r.byID[boxID] = b
	return nil
}

func (r *boxRepo) Deactivate(ctx context.Context, boxID string, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	b, ok := r.byID[boxID]
	if !ok {
		return boxes.ErrNotFound
	}
	if b.Occupied() {
		return boxes.ErrOccupied
	}
	b.Active = false
	b.UpdatedAt = at
	r.byID[boxID] = b
	return nil
}
