package hospitalizations

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"pet-hospitalization/internal/domain/schedule"
)

type PrescriptionInput struct {
	Medication string
	Dosage     string
	Frequency  string // "every 8 hours", "daily at 08:00,20:00 [America/Argentina/Buenos_Aires]"
	Route      string
	StartDate  time.Time
	EndDate    *time.Time // opcional, inclusivo
	Notes      string
}

func (in PrescriptionInput) validate() (schedule.Rule, error) {
	switch {
	case strings.TrimSpace(in.Medication) == "":
		return nil, invalid("medication", "required")
	case strings.TrimSpace(in.Dosage) == "":
		return nil, invalid("dosage", "required")
	case strings.TrimSpace(in.Frequency) == "":
		return nil, invalid("frequency", "required")
	case strings.TrimSpace(in.Route) == "":
		return nil, invalid("route", "required")
	case in.StartDate.IsZero():
		return nil, invalid("start_date", "required")
	}
	rule, err := schedule.ParseRule(in.Frequency)
	if err != nil {
		return nil, invalid("frequency", err.Error())
	}
	if in.EndDate != nil && in.EndDate.Before(in.StartDate) {
		return nil, invalid("end_date", "before start_date")
	}
	// las horas de reloj quedan atadas a la zona del inicio, no a la del storage
	if daily, ok := rule.(schedule.DailyTimes); ok {
		rule = daily.InZoneOf(in.StartDate)
	}
	return rule, nil
}

// AddPrescription registra la orden y materializa sus dosis hasta
// min(end_date, ahora+horizonte).
func (s *Service) AddPrescription(ctx context.Context, stayID string, in PrescriptionInput) (Prescription, error) {
	stayID = strings.TrimSpace(stayID)
	if stayID == "" {
		return Prescription{}, invalid("stay_id", "required")
	}
	rule, err := in.validate()
	if err != nil {
		return Prescription{}, err
	}

	unlock := s.locks.Lock(stayID)
	defer unlock()

	h, err := s.stays.GetByID(ctx, stayID)
	if err != nil {
		return Prescription{}, storageErr("get stay", err)
	}
	if h.Status != StayStatusActive {
		return Prescription{}, &InvalidTransitionError{Entity: "stay", ID: stayID, From: string(h.Status), To: "add prescription"}
	}

	start, end := storedTime(in.StartDate), in.EndDate
	if end != nil {
		e := storedTime(*end)
		end = &e
	}
	// acota la generación: nada anterior a la internación
	if start.Before(h.AdmittedAt) {
		return Prescription{}, invalid("start_date", "before admission")
	}

	now := s.now()
	p := Prescription{
		ID:         uuid.NewString(),
		StayID:     stayID,
		Medication: strings.TrimSpace(in.Medication),
		Dosage:     strings.TrimSpace(in.Dosage),
		Frequency:  rule,
		Route:      strings.TrimSpace(in.Route),
		StartDate:  start,
		EndDate:    end,
		Active:     true,
		Notes:      strings.TrimSpace(in.Notes),
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := s.prescriptions.Create(ctx, p); err != nil {
		return Prescription{}, storageErr("create prescription", err)
	}

	n, err := s.generateLocked(ctx, p)
	if err != nil {
		return Prescription{}, err
	}

	s.log.Info("prescription added", map[string]any{
		"stay_id": stayID, "prescription_id": p.ID, "frequency": rule.String(), "generated": n,
	})
	return p, nil
}

// storedTime recorta a microsegundos, la precisión de timestamptz, para que
// las dosis generadas coincidan con las que se releen del storage.
func storedTime(t time.Time) time.Time {
	return t.Truncate(time.Microsecond)
}

func (s *Service) GetPrescription(ctx context.Context, id string) (Prescription, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Prescription{}, invalid("prescription_id", "required")
	}
	p, err := s.prescriptions.GetByID(ctx, id)
	if err != nil {
		return Prescription{}, storageErr("get prescription", err)
	}
	return p, nil
}

func (s *Service) ListPrescriptions(ctx context.Context, stayID string) ([]Prescription, error) {
	if _, err := s.GetStay(ctx, stayID); err != nil {
		return nil, err
	}
	out, err := s.prescriptions.ListByStay(ctx, strings.TrimSpace(stayID))
	if err != nil {
		return nil, storageErr("list prescriptions", err)
	}
	return out, nil
}

// Discontinue desactiva la prescripción y saltea las dosis pendientes posteriores a at.
// Las dosis anteriores a at quedan como están (pueden seguir late para auditoría).
func (s *Service) Discontinue(ctx context.Context, prescriptionID string, at time.Time) (Prescription, error) {
	p, err := s.GetPrescription(ctx, prescriptionID)
	if err != nil {
		return Prescription{}, err
	}
	if at.IsZero() {
		at = s.now()
	}

	unlock := s.locks.Lock(p.StayID)
	defer unlock()

	// releer bajo lock
	p, err = s.prescriptions.GetByID(ctx, p.ID)
	if err != nil {
		return Prescription{}, storageErr("get prescription", err)
	}
	if !p.Active {
		return Prescription{}, &InvalidTransitionError{Entity: "prescription", ID: p.ID, From: "inactive", To: "inactive"}
	}
	return s.discontinueLocked(ctx, p, at)
}

func (s *Service) discontinueLocked(ctx context.Context, p Prescription, at time.Time) (Prescription, error) {
	deactivatedAt := at
	p.Active = false
	p.DeactivatedAt = &deactivatedAt
	if p.EndDate == nil {
		end := at
		if end.Before(p.StartDate) {
			end = p.StartDate
		}
		p.EndDate = &end
	}
	p.UpdatedAt = s.now()
	if err := s.prescriptions.Update(ctx, p); err != nil {
		return Prescription{}, storageErr("update prescription", err)
	}

	items, err := s.administrations.ListByPrescription(ctx, p.ID)
	if err != nil {
		return Prescription{}, storageErr("list administrations", err)
	}
	skipped := 0
	for _, a := range items {
		if a.Resolved() || !a.ScheduledAt.After(at) {
			continue
		}
		skippedAt := at
		a.SkippedAt = &skippedAt
		a.Actor = SystemActor
		a.Notes = joinNotes(a.Notes, NoteDiscontinued)
		a.UpdatedAt = s.now()
		if err := s.administrations.Update(ctx, a); err != nil {
			return Prescription{}, storageErr("update administration", err)
		}
		s.metrics.ItemSkipped(string(ItemKindAdministration), SystemActor)
		skipped++
	}

	s.log.Info("prescription discontinued", map[string]any{
		"stay_id": p.StayID, "prescription_id": p.ID, "skipped": skipped,
	})
	return p, nil
}

// ExtendSchedules corre la generación de nuevo para todas las prescripciones
// de la internación. Es idempotente: nunca duplica dosis existentes.
func (s *Service) ExtendSchedules(ctx context.Context, stayID string) (int, error) {
	stayID = strings.TrimSpace(stayID)
	if stayID == "" {
		return 0, invalid("stay_id", "required")
	}

	unlock := s.locks.Lock(stayID)
	defer unlock()

	if _, err := s.stays.GetByID(ctx, stayID); err != nil {
		return 0, storageErr("get stay", err)
	}
	prescriptions, err := s.prescriptions.ListByStay(ctx, stayID)
	if err != nil {
		return 0, storageErr("list prescriptions", err)
	}

	total := 0
	for _, p := range prescriptions {
		n, err := s.generateLocked(ctx, p)
		if err != nil {
			return total, err
		}
		total += n
	}
	if total > 0 {
		s.log.Debug("schedules extended", map[string]any{"stay_id": stayID, "generated": total})
	}
	return total, nil
}

// generateLocked materializa las dosis faltantes de p. Requiere el lock del stay.
func (s *Service) generateLocked(ctx context.Context, p Prescription) (int, error) {
	if !p.Active || p.Frequency == nil {
		return 0, nil
	}

	now := s.now()
	w := schedule.Window{Anchor: p.StartDate, Until: now.Add(s.horizon)}
	if p.EndDate != nil && !p.EndDate.After(w.Until) {
		w.Until = *p.EndDate
		w.IncludeUntil = true
	}

	existing, err := s.administrations.ListByPrescription(ctx, p.ID)
	if err != nil {
		return 0, storageErr("list administrations", err)
	}
	seen := make(map[int64]struct{}, len(existing))
	for _, a := range existing {
		seen[a.ScheduledAt.UnixNano()] = struct{}{}
		if a.ScheduledAt.After(w.From) {
			w.From = a.ScheduledAt
		}
	}

	var batch []Administration
	for t := range schedule.Doses(p.Frequency, w) {
		if _, ok := seen[t.UnixNano()]; ok {
			continue
		}
		batch = append(batch, Administration{
			ID:             uuid.NewString(),
			StayID:         p.StayID,
			PrescriptionID: p.ID,
			ScheduledAt:    t,
			CreatedAt:      now,
			UpdatedAt:      now,
		})
	}
	if len(batch) == 0 {
		return 0, nil
	}

	if err := s.administrations.CreateBatch(ctx, batch); err != nil {
		return 0, storageErr("create administrations", err)
	}
	s.metrics.AdministrationsGenerated(len(batch))
	return len(batch), nil
}
