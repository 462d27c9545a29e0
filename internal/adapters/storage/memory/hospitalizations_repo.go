package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	"pet-hospitalization/internal/domain/hospitalizations"
)

// NewHospitalizationRepos arma los cuatro repos del aggregate en memoria.
func NewHospitalizationRepos() hospitalizations.Repositories {
	return hospitalizations.Repositories{
		Stays:           NewStayRepo(),
		Prescriptions:   NewPrescriptionRepo(),
		Administrations: NewAdministrationRepo(),
		Checklist:       NewChecklistRepo(),
	}
}

type stayRepo struct {
	mu   sync.RWMutex
	byID map[string]hospitalizations.Hospitalization
}

func NewStayRepo() hospitalizations.StayRepository {
	return &stayRepo{byID: make(map[string]hospitalizations.Hospitalization)}
}

func (r *stayRepo) Create(ctx context.Context, h hospitalizations.Hospitalization) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(h.ID) == "" {
		return errors.New("stay id required")
	}
	if _, exists := r.byID[h.ID]; exists {
		return errors.New("stay already exists")
	}
	r.byID[h.ID] = h
	return nil
}

func (r *stayRepo) Update(ctx context.Context, h hospitalizations.Hospitalization) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[h.ID]; !exists {
		return hospitalizations.ErrNotFound
	}
	r.byID[h.ID] = h
	return nil
}

func (r *stayRepo) GetByID(ctx context.Context, id string) (hospitalizations.Hospitalization, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	h, ok := r.byID[id]
	if !ok {
		return hospitalizations.Hospitalization{}, hospitalizations.ErrNotFound
	}
	return h, nil
}

func (r *stayRepo) List(ctx context.Context, filter hospitalizations.StayFilter) ([]hospitalizations.Hospitalization, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]hospitalizations.Hospitalization, 0)
	for _, h := range r.byID {
		if filter.Status != "" && h.Status != filter.Status {
			continue
		}
		if filter.PetID != "" && h.PetID != filter.PetID {
			continue
		}
		if filter.BoxID != "" && h.BoxID != filter.BoxID {
			continue
		}
		out = append(out, h)
	}

	// más recientes primero, como en postgres
	sort.Slice(out, func(i, j int) bool {
		if out[i].AdmittedAt.Equal(out[j].AdmittedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].AdmittedAt.After(out[j].AdmittedAt)
	})
	if filter.Limit > 0 && len(out) > filter.Limit {
		out = out[:filter.Limit]
	}
	return out, nil
}

type prescriptionRepo struct {
	mu   sync.RWMutex
	byID map[string]hospitalizations.Prescription
}

func NewPrescriptionRepo() hospitalizations.PrescriptionRepository {
	return &prescriptionRepo{byID: make(map[string]hospitalizations.Prescription)}
}

func (r *prescriptionRepo) Create(ctx context.Context, p hospitalizations.Prescription) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(p.ID) == "" {
		return errors.New("prescription id required")
	}
	if _, exists := r.byID[p.ID]; exists {
		return errors.New("prescription already exists")
	}
	r.byID[p.ID] = p
	return nil
}

func (r *prescriptionRepo) Update(ctx context.Context, p hospitalizations.Prescription) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[p.ID]; !exists {
		return hospitalizations.ErrNotFound
	}
	r.byID[p.ID] = p
	return nil
}

func (r *prescriptionRepo) GetByID(ctx context.Context, id string) (hospitalizations.Prescription, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.byID[id]
	if !ok {
		return hospitalizations.Prescription{}, hospitalizations.ErrNotFound
	}
	return p, nil
}

func (r *prescriptionRepo) ListByStay(ctx context.Context, stayID string) ([]hospitalizations.Prescription, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]hospitalizations.Prescription, 0)
	for _, p := range r.byID {
		if p.StayID == stayID {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

type doseKey struct {
	prescriptionID string
	scheduledAt    int64
}

type administrationRepo struct {
	mu     sync.RWMutex
	byID   map[string]hospitalizations.Administration
	byDose map[doseKey]string
}

func NewAdministrationRepo() hospitalizations.AdministrationRepository {
	return &administrationRepo{
		byID:   make(map[string]hospitalizations.Administration),
		byDose: make(map[doseKey]string),
	}
}

func (r *administrationRepo) CreateBatch(ctx context.Context, items []hospitalizations.Administration) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, a := range items {
		if strings.TrimSpace(a.ID) == "" {
			return errors.New("administration id required")
		}
		k := doseKey{a.PrescriptionID, a.ScheduledAt.UnixNano()}
		if _, dup := r.byDose[k]; dup {
			continue
		}
		r.byID[a.ID] = a
		r.byDose[k] = a.ID
	}
	return nil
}

func (r *administrationRepo) Update(ctx context.Context, a hospitalizations.Administration) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[a.ID]; !exists {
		return hospitalizations.ErrNotFound
	}
	r.byID[a.ID] = a
	return nil
}

func (r *administrationRepo) GetByID(ctx context.Context, id string) (hospitalizations.Administration, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.byID[id]
	if !ok {
		return hospitalizations.Administration{}, hospitalizations.ErrNotFound
	}
	return a, nil
}

func (r *administrationRepo) ListByPrescription(ctx context.Context, prescriptionID string) ([]hospitalizations.Administration, error) {
	return r.list(func(a hospitalizations.Administration) bool { return a.PrescriptionID == prescriptionID }), nil
}

func (r *administrationRepo) ListByStay(ctx context.Context, stayID string) ([]hospitalizations.Administration, error) {
	return r.list(func(a hospitalizations.Administration) bool { return a.StayID == stayID }), nil
}

func (r *administrationRepo) list(keep func(hospitalizations.Administration) bool) []hospitalizations.Administration {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]hospitalizations.Administration, 0)
	for _, a := range r.byID {
		if keep(a) {
			out = append(out, a)
		}
	}
	sortBySchedule(out, func(a hospitalizations.Administration) (time.Time, string) { return a.ScheduledAt, a.ID })
	return out
}

type checklistRepo struct {
	mu   sync.RWMutex
	byID map[string]hospitalizations.ChecklistItem
}

func NewChecklistRepo() hospitalizations.ChecklistRepository {
	return &checklistRepo{byID: make(map[string]hospitalizations.ChecklistItem)}
}

func (r *checklistRepo) Create(ctx context.Context, c hospitalizations.ChecklistItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(c.ID) == "" {
		return errors.New("checklist item id required")
	}
	if _, exists := r.byID[c.ID]; exists {
		return errors.New("checklist item already exists")
	}
	r.byID[c.ID] = c
	return nil
}

func (r *checklistRepo) Update(ctx context.Context, c hospitalizations.ChecklistItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[c.ID]; !exists {
		return hospitalizations.ErrNotFound
	}
	r.byID[c.ID] = c
	return nil
}

func (r *checklistRepo) GetByID(ctx context.Context, id string) (hospitalizations.ChecklistItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.byID[id]
	if !ok {
		return hospitalizations.ChecklistItem{}, hospitalizations.ErrNotFound
	}
	return c, nil
}

func (r *checklistRepo) ListByStay(ctx context.Context, stayID string) ([]hospitalizations.ChecklistItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]hospitalizations.ChecklistItem, 0)
	for _, c := range r.byID {
		if c.StayID == stayID {
			out = append(out, c)
		}
	}
	sortBySchedule(out, func(c hospitalizations.ChecklistItem) (time.Time, string) { return c.ScheduledAt, c.ID })
	return out, nil
}

func sortBySchedule[T any](items []T, key func(T) (time.Time, string)) {
	sort.Slice(items, func(i, j int) bool {
		ti, idi := key(items[i])
		tj, idj := key(items[j])
		if ti.Equal(tj) {
			return idi < idj
		}
		return ti.Before(tj)
	})
}
