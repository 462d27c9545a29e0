package hospitalizations

import (
	"time"

	"pet-hospitalization/internal/domain/schedule"
)

// Hospitalization es el aggregate root de una internación.
// Nunca se borra: solo pasa a un estado terminal.
type Hospitalization struct {
	ID string

	PetID       string
	ClientID    string
	ClinicianID string // opcional

	Status     StayStatus
	AdmittedAt time.Time
	// ClosedAt es el momento del alta, cancelación o fallecimiento.
	ClosedAt *time.Time

	BoxID string // opcional; se limpia al cerrar la internación

	Reason string
	Notes  string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Prescription es una orden de medicación dentro de una internación.
type Prescription struct {
	ID     string
	StayID string

	Medication string
	Dosage     string
	Frequency  schedule.Rule
	Route      string

	StartDate time.Time
	EndDate   *time.Time

	Active        bool
	DeactivatedAt *time.Time

	Notes string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Administration es una dosis concreta generada desde una Prescription.
type Administration struct {
	ID             string
	StayID         string
	PrescriptionID string

	ScheduledAt time.Time
	CompletedAt *time.Time
	SkippedAt   *time.Time

	Actor string
	Notes string

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (a Administration) StatusAt(now time.Time, grace time.Duration) ItemStatus {
	return DeriveStatus(now, a.ScheduledAt, a.CompletedAt, a.SkippedAt, grace)
}

func (a Administration) Resolved() bool {
	return a.CompletedAt != nil || a.SkippedAt != nil
}

// ChecklistItem es una tarea de cuidado no medicamentosa (p.ej. "cambiar vendaje").
type ChecklistItem struct {
	ID     string
	StayID string
	// PrescriptionID es opcional; solo para trazabilidad.
	PrescriptionID string

	Title       string
	ScheduledAt time.Time
	CompletedAt *time.Time
	SkippedAt   *time.Time

	Actor string
	Notes string

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (c ChecklistItem) StatusAt(now time.Time, grace time.Duration) ItemStatus {
	return DeriveStatus(now, c.ScheduledAt, c.CompletedAt, c.SkippedAt, grace)
}

func (c ChecklistItem) Resolved() bool {
	return c.CompletedAt != nil || c.SkippedAt != nil
}
