package hospitalizations

import (
	"cmp"
	"context"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
)

type RecordInput struct {
	At    time.Time // zero = ahora
	Actor string
	Notes string
}

type SkipInput struct {
	Reason string
	Actor  string
}

// RecordGiven marca una administración como dada. Solo pending o late pueden pasar a done.
func (s *Service) RecordGiven(ctx context.Context, administrationID string, in RecordInput) (Administration, error) {
	a, err := s.getAdministration(ctx, administrationID)
	if err != nil {
		return Administration{}, err
	}
	actor := strings.TrimSpace(in.Actor)
	if err := s.checkStaff(ctx, "actor", actor); err != nil {
		return Administration{}, err
	}

	unlock := s.locks.Lock(a.StayID)
	defer unlock()

	if a, err = s.administrations.GetByID(ctx, a.ID); err != nil {
		return Administration{}, storageErr("get administration", err)
	}
	now := s.now()
	if st := a.StatusAt(now, s.grace); st.Terminal() {
		return Administration{}, &InvalidTransitionError{Entity: "administration", ID: a.ID, From: string(st), To: string(ItemStatusDone)}
	}

	at := in.At
	if at.IsZero() {
		at = now
	}
	p, err := s.prescriptions.GetByID(ctx, a.PrescriptionID)
	if err != nil {
		return Administration{}, storageErr("get prescription", err)
	}
	if at.Before(p.StartDate) {
		return Administration{}, invalid("at", "before prescription start")
	}

	a.CompletedAt = &at
	a.Actor = actor
	a.Notes = joinNotes(a.Notes, in.Notes)
	a.UpdatedAt = now
	if err := s.administrations.Update(ctx, a); err != nil {
		return Administration{}, storageErr("update administration", err)
	}

	s.metrics.ItemRecorded(string(ItemKindAdministration))
	s.log.Info("administration recorded", map[string]any{
		"stay_id": a.StayID, "administration_id": a.ID, "actor": actor, "delay_minutes": int(at.Sub(a.ScheduledAt).Minutes()),
	})
	return a, nil
}

// Skip marca una administración como salteada con el motivo en las notas.
func (s *Service) Skip(ctx context.Context, administrationID string, in SkipInput) (Administration, error) {
	reason := strings.TrimSpace(in.Reason)
	if reason == "" {
		return Administration{}, invalid("reason", "required")
	}
	a, err := s.getAdministration(ctx, administrationID)
	if err != nil {
		return Administration{}, err
	}
	actor := strings.TrimSpace(in.Actor)
	if err := s.checkStaff(ctx, "actor", actor); err != nil {
		return Administration{}, err
	}

	unlock := s.locks.Lock(a.StayID)
	defer unlock()

	if a, err = s.administrations.GetByID(ctx, a.ID); err != nil {
		return Administration{}, storageErr("get administration", err)
	}
	now := s.now()
	if st := a.StatusAt(now, s.grace); st.Terminal() {
		return Administration{}, &InvalidTransitionError{Entity: "administration", ID: a.ID, From: string(st), To: string(ItemStatusSkipped)}
	}

	a.SkippedAt = &now
	a.Actor = actor
	a.Notes = joinNotes(a.Notes, reason)
	a.UpdatedAt = now
	if err := s.administrations.Update(ctx, a); err != nil {
		return Administration{}, storageErr("update administration", err)
	}

	s.metrics.ItemSkipped(string(ItemKindAdministration), "staff")
	s.log.Info("administration skipped", map[string]any{"stay_id": a.StayID, "administration_id": a.ID, "reason": reason})
	return a, nil
}

func (s *Service) getAdministration(ctx context.Context, id string) (Administration, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Administration{}, invalid("administration_id", "required")
	}
	a, err := s.administrations.GetByID(ctx, id)
	if err != nil {
		return Administration{}, storageErr("get administration", err)
	}
	return a, nil
}

type ChecklistInput struct {
	Title          string
	ScheduledAt    time.Time
	PrescriptionID string // opcional
	Notes          string
}

func (s *Service) AddChecklistItem(ctx context.Context, stayID string, in ChecklistInput) (ChecklistItem, error) {
	stayID = strings.TrimSpace(stayID)
	title := strings.TrimSpace(in.Title)
	prescriptionID := strings.TrimSpace(in.PrescriptionID)
	switch {
	case stayID == "":
		return ChecklistItem{}, invalid("stay_id", "required")
	case title == "":
		return ChecklistItem{}, invalid("title", "required")
	case in.ScheduledAt.IsZero():
		return ChecklistItem{}, invalid("scheduled_at", "required")
	}

	unlock := s.locks.Lock(stayID)
	defer unlock()

	h, err := s.stays.GetByID(ctx, stayID)
	if err != nil {
		return ChecklistItem{}, storageErr("get stay", err)
	}
	if h.Status != StayStatusActive {
		return ChecklistItem{}, &InvalidTransitionError{Entity: "stay", ID: stayID, From: string(h.Status), To: "add checklist item"}
	}
	if in.ScheduledAt.Before(h.AdmittedAt) {
		return ChecklistItem{}, invalid("scheduled_at", "before admission")
	}
	if prescriptionID != "" {
		p, err := s.prescriptions.GetByID(ctx, prescriptionID)
		if err != nil || p.StayID != stayID {
			return ChecklistItem{}, invalid("prescription_id", "not a prescription of this stay")
		}
	}

	now := s.now()
	c := ChecklistItem{
		ID:             uuid.NewString(),
		StayID:         stayID,
		PrescriptionID: prescriptionID,
		Title:          title,
		ScheduledAt:    in.ScheduledAt,
		Notes:          strings.TrimSpace(in.Notes),
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := s.checklist.Create(ctx, c); err != nil {
		return ChecklistItem{}, storageErr("create checklist item", err)
	}

	s.log.Info("checklist item added", map[string]any{"stay_id": stayID, "item_id": c.ID, "title": title})
	return c, nil
}

func (s *Service) CompleteChecklistItem(ctx context.Context, itemID string, in RecordInput) (ChecklistItem, error) {
	c, err := s.getChecklistItem(ctx, itemID)
	if err != nil {
		return ChecklistItem{}, err
	}
	actor := strings.TrimSpace(in.Actor)
	if err := s.checkStaff(ctx, "actor", actor); err != nil {
		return ChecklistItem{}, err
	}

	unlock := s.locks.Lock(c.StayID)
	defer unlock()

	if c, err = s.checklist.GetByID(ctx, c.ID); err != nil {
		return ChecklistItem{}, storageErr("get checklist item", err)
	}
	now := s.now()
	if st := c.StatusAt(now, s.grace); st.Terminal() {
		return ChecklistItem{}, &InvalidTransitionError{Entity: "checklist item", ID: c.ID, From: string(st), To: string(ItemStatusDone)}
	}

	at := in.At
	if at.IsZero() {
		at = now
	}
	c.CompletedAt = &at
	c.Actor = actor
	c.Notes = joinNotes(c.Notes, in.Notes)
	c.UpdatedAt = now
	if err := s.checklist.Update(ctx, c); err != nil {
		return ChecklistItem{}, storageErr("update checklist item", err)
	}

	s.metrics.ItemRecorded(string(ItemKindChecklist))
	s.log.Info("checklist item done", map[string]any{"stay_id": c.StayID, "item_id": c.ID, "actor": actor})
	return c, nil
}

func (s *Service) SkipChecklistItem(ctx context.Context, itemID string, in SkipInput) (ChecklistItem, error) {
	reason := strings.TrimSpace(in.Reason)
	if reason == "" {
		return ChecklistItem{}, invalid("reason", "required")
	}
	c, err := s.getChecklistItem(ctx, itemID)
	if err != nil {
		return ChecklistItem{}, err
	}

	unlock := s.locks.Lock(c.StayID)
	defer unlock()

	if c, err = s.checklist.GetByID(ctx, c.ID); err != nil {
		return ChecklistItem{}, storageErr("get checklist item", err)
	}
	now := s.now()
	if st := c.StatusAt(now, s.grace); st.Terminal() {
		return ChecklistItem{}, &InvalidTransitionError{Entity: "checklist item", ID: c.ID, From: string(st), To: string(ItemStatusSkipped)}
	}

	c.SkippedAt = &now
	c.Actor = strings.TrimSpace(in.Actor)
	c.Notes = joinNotes(c.Notes, reason)
	c.UpdatedAt = now
	if err := s.checklist.Update(ctx, c); err != nil {
		return ChecklistItem{}, storageErr("update checklist item", err)
	}

	s.metrics.ItemSkipped(string(ItemKindChecklist), "staff")
	return c, nil
}

func (s *Service) getChecklistItem(ctx context.Context, id string) (ChecklistItem, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return ChecklistItem{}, invalid("item_id", "required")
	}
	c, err := s.checklist.GetByID(ctx, id)
	if err != nil {
		return ChecklistItem{}, storageErr("get checklist item", err)
	}
	return c, nil
}

// Board es la vista de la tablet del box: dosis y tareas con estado derivado a AsOf.
type Board struct {
	Stay            Hospitalization
	AsOf            time.Time
	Administrations []AdministrationView
	Checklist       []ChecklistView
	Counts          Counts
}

type AdministrationView struct {
	Administration
	Status     ItemStatus
	Medication string
	Dosage     string
	Route      string
}

type ChecklistView struct {
	ChecklistItem
	Status ItemStatus
}

type Counts struct {
	Pending int
	Late    int
	Done    int
	Skipped int
}

func (c *Counts) add(st ItemStatus) {
	switch st {
	case ItemStatusPending:
		c.Pending++
	case ItemStatusLate:
		c.Late++
	case ItemStatusDone:
		c.Done++
	case ItemStatusSkipped:
		c.Skipped++
	}
}

// ListForStay devuelve la board a asOf (zero = ahora). No muta nada.
func (s *Service) ListForStay(ctx context.Context, stayID string, asOf time.Time) (Board, error) {
	h, err := s.GetStay(ctx, stayID)
	if err != nil {
		return Board{}, err
	}
	if asOf.IsZero() {
		asOf = s.now()
	}

	prescriptions, err := s.prescriptions.ListByStay(ctx, h.ID)
	if err != nil {
		return Board{}, storageErr("list prescriptions", err)
	}
	byID := make(map[string]Prescription, len(prescriptions))
	for _, p := range prescriptions {
		byID[p.ID] = p
	}

	admins, err := s.administrations.ListByStay(ctx, h.ID)
	if err != nil {
		return Board{}, storageErr("list administrations", err)
	}
	items, err := s.checklist.ListByStay(ctx, h.ID)
	if err != nil {
		return Board{}, storageErr("list checklist", err)
	}

	b := Board{
		Stay:            h,
		AsOf:            asOf,
		Administrations: make([]AdministrationView, 0, len(admins)),
		Checklist:       make([]ChecklistView, 0, len(items)),
	}
	for _, a := range admins {
		p := byID[a.PrescriptionID]
		v := AdministrationView{
			Administration: a,
			Status:         a.StatusAt(asOf, s.grace),
			Medication:     p.Medication,
			Dosage:         p.Dosage,
			Route:          p.Route,
		}
		b.Counts.add(v.Status)
		b.Administrations = append(b.Administrations, v)
	}
	for _, c := range items {
		v := ChecklistView{ChecklistItem: c, Status: c.StatusAt(asOf, s.grace)}
		b.Counts.add(v.Status)
		b.Checklist = append(b.Checklist, v)
	}

	slices.SortStableFunc(b.Administrations, func(x, y AdministrationView) int {
		return cmp.Or(x.ScheduledAt.Compare(y.ScheduledAt), cmp.Compare(x.ID, y.ID))
	})
	slices.SortStableFunc(b.Checklist, func(x, y ChecklistView) int {
		return cmp.Or(x.ScheduledAt.Compare(y.ScheduledAt), cmp.Compare(x.ID, y.ID))
	})
	return b, nil
}

// LateItems devuelve los items late de la board, ordenados por hora programada.
func (b Board) LateItems() []LateItem {
	var out []LateItem
	for _, a := range b.Administrations {
		if a.Status != ItemStatusLate {
			continue
		}
		out = append(out, LateItem{
			Kind: ItemKindAdministration, ItemID: a.ID, StayID: a.StayID, PrescriptionID: a.PrescriptionID,
			BoxID: b.Stay.BoxID, Title: a.Medication, ScheduledAt: a.ScheduledAt, DetectedAt: b.AsOf,
		})
	}
	for _, c := range b.Checklist {
		if c.Status != ItemStatusLate {
			continue
		}
		out = append(out, LateItem{
			Kind: ItemKindChecklist, ItemID: c.ID, StayID: c.StayID, PrescriptionID: c.PrescriptionID,
			BoxID: b.Stay.BoxID, Title: c.Title, ScheduledAt: c.ScheduledAt, DetectedAt: b.AsOf,
		})
	}
	slices.SortStableFunc(out, func(x, y LateItem) int { return x.ScheduledAt.Compare(y.ScheduledAt) })
	return out
}
