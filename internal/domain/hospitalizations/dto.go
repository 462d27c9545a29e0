package hospitalizations

import (
	"time"
)

// stayResponse representa una internación devuelta por la API.
type stayResponse struct {
	ID          string     `json:"id"`
	PetID       string     `json:"pet_id"`
	ClientID    string     `json:"client_id"`
	ClinicianID string     `json:"clinician_id,omitempty"`
	Status      StayStatus `json:"status"`
	AdmittedAt  time.Time  `json:"admitted_at"`
	ClosedAt    *time.Time `json:"closed_at,omitempty"`
	BoxID       string     `json:"box_id,omitempty"`
	Reason      string     `json:"reason"`
	Notes       string     `json:"notes,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// prescriptionResponse representa una prescripción devuelta por la API.
type prescriptionResponse struct {
	ID            string     `json:"id"`
	StayID        string     `json:"stay_id"`
	Medication    string     `json:"medication"`
	Dosage        string     `json:"dosage"`
	Frequency     string     `json:"frequency"`
	Route         string     `json:"route"`
	StartDate     time.Time  `json:"start_date"`
	EndDate       *time.Time `json:"end_date,omitempty"`
	Active        bool       `json:"active"`
	DeactivatedAt *time.Time `json:"deactivated_at,omitempty"`
	Notes         string     `json:"notes,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
}

// administrationResponse representa una dosis con su estado derivado.
type administrationResponse struct {
	ID             string     `json:"id"`
	StayID         string     `json:"stay_id"`
	PrescriptionID string     `json:"prescription_id"`
	Medication     string     `json:"medication,omitempty"`
	Dosage         string     `json:"dosage,omitempty"`
	Route          string     `json:"route,omitempty"`
	ScheduledAt    time.Time  `json:"scheduled_at"`
	Status         ItemStatus `json:"status" enums:"pending,late,done,skipped"`
	CompletedAt    *time.Time `json:"completed_at,omitempty"`
	SkippedAt      *time.Time `json:"skipped_at,omitempty"`
	Actor          string     `json:"actor,omitempty"`
	Notes          string     `json:"notes,omitempty"`
}

// checklistResponse representa una tarea de checklist con su estado derivado.
type checklistResponse struct {
	ID             string     `json:"id"`
	StayID         string     `json:"stay_id"`
	PrescriptionID string     `json:"prescription_id,omitempty"`
	Title          string     `json:"title"`
	ScheduledAt    time.Time  `json:"scheduled_at"`
	Status         ItemStatus `json:"status" enums:"pending,late,done,skipped"`
	CompletedAt    *time.Time `json:"completed_at,omitempty"`
	SkippedAt      *time.Time `json:"skipped_at,omitempty"`
	Actor          string     `json:"actor,omitempty"`
	Notes          string     `json:"notes,omitempty"`
}

type countsResponse struct {
	Pending int `json:"pending"`
	Late    int `json:"late"`
	Done    int `json:"done"`
	Skipped int `json:"skipped"`
}

// boardResponse es la vista de la tablet para una internación.
type boardResponse struct {
	Stay            stayResponse             `json:"stay"`
	AsOf            time.Time                `json:"as_of"`
	Counts          countsResponse           `json:"counts"`
	Administrations []administrationResponse `json:"administrations"`
	Checklist       []checklistResponse      `json:"checklist"`
}

func toStayResponse(h Hospitalization) stayResponse {
	return stayResponse{
		ID:          h.ID,
		PetID:       h.PetID,
		ClientID:    h.ClientID,
		ClinicianID: h.ClinicianID,
		Status:      h.Status,
		AdmittedAt:  h.AdmittedAt,
		ClosedAt:    h.ClosedAt,
		BoxID:       h.BoxID,
		Reason:      h.Reason,
		Notes:       h.Notes,
		CreatedAt:   h.CreatedAt,
		UpdatedAt:   h.UpdatedAt,
	}
}

func toPrescriptionResponse(p Prescription) prescriptionResponse {
	freq := ""
	if p.Frequency != nil {
		freq = p.Frequency.String()
	}
	return prescriptionResponse{
		ID:            p.ID,
		StayID:        p.StayID,
		Medication:    p.Medication,
		Dosage:        p.Dosage,
		Frequency:     freq,
		Route:         p.Route,
		StartDate:     p.StartDate,
		EndDate:       p.EndDate,
		Active:        p.Active,
		DeactivatedAt: p.DeactivatedAt,
		Notes:         p.Notes,
		CreatedAt:     p.CreatedAt,
	}
}

func toAdministrationResponse(v AdministrationView) administrationResponse {
	return administrationResponse{
		ID:             v.ID,
		StayID:         v.StayID,
		PrescriptionID: v.PrescriptionID,
		Medication:     v.Medication,
		Dosage:         v.Dosage,
		Route:          v.Route,
		ScheduledAt:    v.ScheduledAt,
		Status:         v.Status,
		CompletedAt:    v.CompletedAt,
		SkippedAt:      v.SkippedAt,
		Actor:          v.Actor,
		Notes:          v.Notes,
	}
}

func toChecklistResponse(v ChecklistView) checklistResponse {
	return checklistResponse{
		ID:             v.ID,
		StayID:         v.StayID,
		PrescriptionID: v.PrescriptionID,
		Title:          v.Title,
		ScheduledAt:    v.ScheduledAt,
		Status:         v.Status,
		CompletedAt:    v.CompletedAt,
		SkippedAt:      v.SkippedAt,
		Actor:          v.Actor,
		Notes:          v.Notes,
	}
}

func toBoardResponse(b Board) boardResponse {
	out := boardResponse{
		Stay: toStayResponse(b.Stay),
		AsOf: b.AsOf,
		Counts: countsResponse{
			Pending: b.Counts.Pending,
			Late:    b.Counts.Late,
			Done:    b.Counts.Done,
			Skipped: b.Counts.Skipped,
		},
		Administrations: make([]administrationResponse, 0, len(b.Administrations)),
		Checklist:       make([]checklistResponse, 0, len(b.Checklist)),
	}
	for _, a := range b.Administrations {
		out.Administrations = append(out.Administrations, toAdministrationResponse(a))
	}
	for _, c := range b.Checklist {
		out.Checklist = append(out.Checklist, toChecklistResponse(c))
	}
	return out
}
