package hospitalizations

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
)

type AdmitInput struct {
	PetID       string
	ClientID    string
	ClinicianID string
	BoxID       string // opcional
	Reason      string
	Notes       string

	// AdmittedAt opcional; zero = ahora.
	AdmittedAt time.Time
}

// Admit abre una internación activa y, si se indicó, toma el box.
func (s *Service) Admit(ctx context.Context, in AdmitInput) (Hospitalization, error) {
	petID := strings.TrimSpace(in.PetID)
	clientID := strings.TrimSpace(in.ClientID)
	reason := strings.TrimSpace(in.Reason)
	boxID := strings.TrimSpace(in.BoxID)
	clinicianID := strings.TrimSpace(in.ClinicianID)

	switch {
	case petID == "":
		return Hospitalization{}, invalid("pet_id", "required")
	case clientID == "":
		return Hospitalization{}, invalid("client_id", "required")
	case reason == "":
		return Hospitalization{}, invalid("reason", "required")
	}

	if err := s.checkPet(ctx, petID, clientID); err != nil {
		return Hospitalization{}, err
	}
	if err := s.checkStaff(ctx, "clinician_id", clinicianID); err != nil {
		return Hospitalization{}, err
	}

	now := s.now()
	admittedAt := in.AdmittedAt
	if admittedAt.IsZero() {
		admittedAt = now
	}
	admittedAt = storedTime(admittedAt)

	h := Hospitalization{
		ID:          uuid.NewString(),
		PetID:       petID,
		ClientID:    clientID,
		ClinicianID: clinicianID,
		Status:      StayStatusActive,
		AdmittedAt:  admittedAt,
		BoxID:       boxID,
		Reason:      reason,
		Notes:       strings.TrimSpace(in.Notes),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if boxID != "" {
		if err := s.claimBox(ctx, boxID, h.ID); err != nil {
			return Hospitalization{}, err
		}
	}

	if err := s.stays.Create(ctx, h); err != nil {
		// best-effort: no dejar el box tomado por un stay que no existe
		if rerr := s.releaseBox(ctx, boxID, h.ID); rerr != nil {
			s.log.Error("release box after failed admit", map[string]any{"box_id": boxID, "stay_id": h.ID, "error": rerr.Error()})
		}
		return Hospitalization{}, storageErr("create stay", err)
	}

	s.metrics.StayTransition(string(StayStatusActive))
	s.log.Info("stay admitted", map[string]any{"stay_id": h.ID, "pet_id": petID, "box_id": boxID})
	return h, nil
}

func (s *Service) GetStay(ctx context.Context, id string) (Hospitalization, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Hospitalization{}, invalid("stay_id", "required")
	}
	h, err := s.stays.GetByID(ctx, id)
	if err != nil {
		return Hospitalization{}, storageErr("get stay", err)
	}
	return h, nil
}

func (s *Service) ListStays(ctx context.Context, filter StayFilter) ([]Hospitalization, error) {
	if filter.Status != "" {
		if _, ok := ParseStayStatus(string(filter.Status)); !ok {
			return nil, invalid("status", "unknown stay status")
		}
	}
	if filter.Limit < 0 {
		return nil, invalid("limit", "must be >= 0")
	}
	out, err := s.stays.List(ctx, filter)
	if err != nil {
		return nil, storageErr("list stays", err)
	}
	return out, nil
}

// Transition cierra la internación (discharged/cancelled/deceased).
// Antes de cerrar discontinúa toda prescripción activa y saltea las tareas
// de checklist sin resolver; al final libera el box.
func (s *Service) Transition(ctx context.Context, stayID string, target StayStatus, at time.Time) (Hospitalization, error) {
	stayID = strings.TrimSpace(stayID)
	if stayID == "" {
		return Hospitalization{}, invalid("stay_id", "required")
	}
	if _, ok := ParseStayStatus(string(target)); !ok {
		return Hospitalization{}, invalid("status", "unknown stay status")
	}
	if at.IsZero() {
		at = s.now()
	}

	unlock := s.locks.Lock(stayID)
	defer unlock()

	h, err := s.stays.GetByID(ctx, stayID)
	if err != nil {
		return Hospitalization{}, storageErr("get stay", err)
	}
	if h.Status.Terminal() || !target.Terminal() {
		return Hospitalization{}, &InvalidTransitionError{Entity: "stay", ID: stayID, From: string(h.Status), To: string(target)}
	}
	if at.Before(h.AdmittedAt) {
		return Hospitalization{}, invalid("at", "before admission")
	}

	prescriptions, err := s.prescriptions.ListByStay(ctx, stayID)
	if err != nil {
		return Hospitalization{}, storageErr("list prescriptions", err)
	}
	for _, p := range prescriptions {
		if !p.Active {
			continue
		}
		if _, err := s.discontinueLocked(ctx, p, at); err != nil {
			return Hospitalization{}, err
		}
	}

	if err := s.skipOpenChecklist(ctx, stayID, at); err != nil {
		return Hospitalization{}, err
	}

	boxID := h.BoxID
	closedAt := at
	h.Status = target
	h.ClosedAt = &closedAt
	h.BoxID = ""
	h.UpdatedAt = s.now()
	if err := s.stays.Update(ctx, h); err != nil {
		return Hospitalization{}, storageErr("update stay", err)
	}

	if err := s.releaseBox(ctx, boxID, stayID); err != nil {
		s.log.Error("release box on close", map[string]any{"stay_id": stayID, "box_id": boxID, "error": err.Error()})
		return h, err
	}

	s.metrics.StayTransition(string(target))
	s.log.Info("stay closed", map[string]any{"stay_id": stayID, "status": string(target), "box_id": boxID})
	return h, nil
}

func (s *Service) skipOpenChecklist(ctx context.Context, stayID string, at time.Time) error {
	items, err := s.checklist.ListByStay(ctx, stayID)
	if err != nil {
		return storageErr("list checklist", err)
	}
	for _, c := range items {
		if c.Resolved() {
			continue
		}
		skippedAt := at
		c.SkippedAt = &skippedAt
		c.Actor = SystemActor
		c.Notes = joinNotes(c.Notes, NoteStayClosed)
		c.UpdatedAt = s.now()
		if err := s.checklist.Update(ctx, c); err != nil {
			return storageErr("update checklist item", err)
		}
		s.metrics.ItemSkipped(string(ItemKindChecklist), SystemActor)
	}
	return nil
}

// ReassignBox mueve una internación activa a otro box.
// El box nuevo se toma antes de soltar el anterior; si falla, la internación queda donde estaba.
func (s *Service) ReassignBox(ctx context.Context, stayID, boxID string) (Hospitalization, error) {
	stayID = strings.TrimSpace(stayID)
	boxID = strings.TrimSpace(boxID)
	if stayID == "" {
		return Hospitalization{}, invalid("stay_id", "required")
	}
	if boxID == "" {
		return Hospitalization{}, invalid("box_id", "required")
	}

	unlock := s.locks.Lock(stayID)
	defer unlock()

	h, err := s.stays.GetByID(ctx, stayID)
	if err != nil {
		return Hospitalization{}, storageErr("get stay", err)
	}
	if h.Status != StayStatusActive {
		return Hospitalization{}, &InvalidTransitionError{Entity: "stay", ID: stayID, From: string(h.Status), To: "reassign box"}
	}
	if h.BoxID == boxID {
		return h, nil
	}

	if err := s.claimBox(ctx, boxID, stayID); err != nil {
		return Hospitalization{}, err
	}

	oldBox := h.BoxID
	h.BoxID = boxID
	h.UpdatedAt = s.now()
	if err := s.stays.Update(ctx, h); err != nil {
		if rerr := s.releaseBox(ctx, boxID, stayID); rerr != nil {
			s.log.Error("release box after failed reassign", map[string]any{"stay_id": stayID, "box_id": boxID, "error": rerr.Error()})
		}
		return Hospitalization{}, storageErr("update stay", err)
	}

	if err := s.releaseBox(ctx, oldBox, stayID); err != nil {
		s.log.Warn("release previous box", map[string]any{"stay_id": stayID, "box_id": oldBox, "error": err.Error()})
	}

	s.log.Info("stay box reassigned", map[string]any{"stay_id": stayID, "from": oldBox, "to": boxID})
	return h, nil
}
