package hospitalizations

import (
	"cmp"
	"context"
	"errors"
	"slices"
	"sync"
	"time"

	"pet-hospitalization/internal/domain/boxes"
)

// testStore guarda todo en mapas; cada repo es una vista sobre el mismo store.
type testStore struct {
	mu sync.Mutex

	stays           map[string]Hospitalization
	prescriptions   map[string]Prescription
	administrations map[string]Administration
	checklist       map[string]ChecklistItem

	failUpdates bool
}

func newTestStore() *testStore {
	return &testStore{
		stays:           map[string]Hospitalization{},
		prescriptions:   map[string]Prescription{},
		administrations: map[string]Administration{},
		checklist:       map[string]ChecklistItem{},
	}
}

var errStoreDown = errors.New("store down")

func (s *testStore) repos() Repositories {
	return Repositories{
		Stays:           testStays{s},
		Prescriptions:   testPrescriptions{s},
		Administrations: testAdministrations{s},
		Checklist:       testChecklist{s},
	}
}

type testStays struct{ s *testStore }

func (r testStays) Create(_ context.Context, h Hospitalization) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.stays[h.ID] = h
	return nil
}

func (r testStays) Update(_ context.Context, h Hospitalization) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.failUpdates {
		return errStoreDown
	}
	if _, ok := r.s.stays[h.ID]; !ok {
		return ErrNotFound
	}
	r.s.stays[h.ID] = h
	return nil
}

func (r testStays) GetByID(_ context.Context, id string) (Hospitalization, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	h, ok := r.s.stays[id]
	if !ok {
		return Hospitalization{}, ErrNotFound
	}
	return h, nil
}

func (r testStays) List(_ context.Context, f StayFilter) ([]Hospitalization, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []Hospitalization
	for _, h := range r.s.stays {
		if f.Status != "" && h.Status != f.Status {
			continue
		}
		out = append(out, h)
	}
	slices.SortFunc(out, func(a, b Hospitalization) int { return cmp.Compare(a.ID, b.ID) })
	return out, nil
}

type testPrescriptions struct{ s *testStore }

func (r testPrescriptions) Create(_ context.Context, p Prescription) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.prescriptions[p.ID] = p
	return nil
}

func (r testPrescriptions) Update(_ context.Context, p Prescription) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.failUpdates {
		return errStoreDown
	}
	r.s.prescriptions[p.ID] = p
	return nil
}

func (r testPrescriptions) GetByID(_ context.Context, id string) (Prescription, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.prescriptions[id]
	if !ok {
		return Prescription{}, ErrNotFound
	}
	return p, nil
}

func (r testPrescriptions) ListByStay(_ context.Context, stayID string) ([]Prescription, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []Prescription
	for _, p := range r.s.prescriptions {
		if p.StayID == stayID {
			out = append(out, p)
		}
	}
	slices.SortFunc(out, func(a, b Prescription) int {
		return cmp.Or(a.CreatedAt.Compare(b.CreatedAt), cmp.Compare(a.ID, b.ID))
	})
	return out, nil
}

type testAdministrations struct{ s *testStore }

func (r testAdministrations) CreateBatch(_ context.Context, items []Administration) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, a := range items {
		r.s.administrations[a.ID] = a
	}
	return nil
}

func (r testAdministrations) Update(_ context.Context, a Administration) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.failUpdates {
		return errStoreDown
	}
	r.s.administrations[a.ID] = a
	return nil
}

func (r testAdministrations) GetByID(_ context.Context, id string) (Administration, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	a, ok := r.s.administrations[id]
	if !ok {
		return Administration{}, ErrNotFound
	}
	return a, nil
}

func (r testAdministrations) ListByPrescription(_ context.Context, prescriptionID string) ([]Administration, error) {
	return r.list(func(a Administration) bool { return a.PrescriptionID == prescriptionID }), nil
}

func (r testAdministrations) ListByStay(_ context.Context, stayID string) ([]Administration, error) {
	return r.list(func(a Administration) bool { return a.StayID == stayID }), nil
}

func (r testAdministrations) list(keep func(Administration) bool) []Administration {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []Administration
	for _, a := range r.s.administrations {
		if keep(a) {
			out = append(out, a)
		}
	}
	slices.SortFunc(out, func(a, b Administration) int {
		return cmp.Or(a.ScheduledAt.Compare(b.ScheduledAt), cmp.Compare(a.ID, b.ID))
	})
	return out
}

type testChecklist struct{ s *testStore }

func (r testChecklist) Create(_ context.Context, c ChecklistItem) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.checklist[c.ID] = c
	return nil
}

func (r testChecklist) Update(_ context.Context, c ChecklistItem) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.failUpdates {
		return errStoreDown
	}
	r.s.checklist[c.ID] = c
	return nil
}

func (r testChecklist) GetByID(_ context.Context, id string) (ChecklistItem, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c, ok := r.s.checklist[id]
	if !ok {
		return ChecklistItem{}, ErrNotFound
	}
	return c, nil
}

func (r testChecklist) ListByStay(_ context.Context, stayID string) ([]ChecklistItem, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []ChecklistItem
	for _, c := range r.s.checklist {
		if c.StayID == stayID {
			out = append(out, c)
		}
	}
	slices.SortFunc(out, func(a, b ChecklistItem) int {
		return cmp.Or(a.ScheduledAt.Compare(b.ScheduledAt), cmp.Compare(a.ID, b.ID))
	})
	return out, nil
}

// testBoxes es un registro de boxes mínimo con claim atómico.
type testBoxes struct {
	mu       sync.Mutex
	occupant map[string]string
	inactive map[string]bool
}

func newTestBoxes(ids ...string) *testBoxes {
	b := &testBoxes{occupant: map[string]string{}, inactive: map[string]bool{}}
	for _, id := range ids {
		b.occupant[id] = ""
	}
	return b
}

func (b *testBoxes) Claim(_ context.Context, boxID, stayID string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	cur, ok := b.occupant[boxID]
	switch {
	case !ok:
		return boxes.ErrNotFound
	case b.inactive[boxID]:
		return boxes.ErrInactive
	case cur != "" && cur != stayID:
		return boxes.ErrOccupied
	}
	b.occupant[boxID] = stayID
	return nil
}

func (b *testBoxes) Release(_ context.Context, boxID, stayID string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.occupant[boxID] == stayID {
		b.occupant[boxID] = ""
	}
	return nil
}

func (b *testBoxes) occupantOf(boxID string) string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.occupant[boxID]
}

type testDirectory struct {
	pets  map[string]string // petID -> clientID
	staff map[string]bool
}

func (d testDirectory) CheckPet(_ context.Context, petID, clientID string) error {
	if d.pets[petID] != clientID {
		return ErrUnknownReference
	}
	return nil
}

func (d testDirectory) CheckStaff(_ context.Context, staffID string) error {
	if !d.staff[staffID] {
		return ErrUnknownReference
	}
	return nil
}

type testNotifier struct {
	mu    sync.Mutex
	items []LateItem
	fail  bool
}

func (n *testNotifier) NotifyLate(_ context.Context, item LateItem) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.fail {
		return errStoreDown
	}
	n.items = append(n.items, item)
	return nil
}

type testEnv struct {
	svc   *Service
	store *testStore
	boxes *testBoxes
	clock *time.Time
}

func newTestEnv(now time.Time, boxIDs ...string) *testEnv {
	store := newTestStore()
	bx := newTestBoxes(boxIDs...)
	svc := NewService(store.repos(), Options{Boxes: bx})
	clock := now
	svc.now = func() time.Time { return clock }
	return &testEnv{svc: svc, store: store, boxes: bx, clock: &clock}
}

func (e *testEnv) setNow(t time.Time) { *e.clock = t }
