package hospitalizations

import (
	"context"
)

// Los repos devuelven ErrNotFound cuando el id no existe.

type StayRepository interface {
	Create(ctx context.Context, h Hospitalization) error
	Update(ctx context.Context, h Hospitalization) error
	GetByID(ctx context.Context, id string) (Hospitalization, error)
	List(ctx context.Context, filter StayFilter) ([]Hospitalization, error)
}

type StayFilter struct {
	Status StayStatus // opcional
	PetID  string     // opcional
	BoxID  string     // opcional
	Limit  int        // 0 = sin límite
}

type PrescriptionRepository interface {
	Create(ctx context.Context, p Prescription) error
	Update(ctx context.Context, p Prescription) error
	GetByID(ctx context.Context, id string) (Prescription, error)
	// ListByStay ordena por CreatedAt asc.
	ListByStay(ctx context.Context, stayID string) ([]Prescription, error)
}

type AdministrationRepository interface {
	// CreateBatch ignora duplicados (misma prescription + scheduled_at).
	CreateBatch(ctx context.Context, items []Administration) error
	Update(ctx context.Context, a Administration) error
	GetByID(ctx context.Context, id string) (Administration, error)
	// ListByPrescription y ListByStay ordenan por ScheduledAt asc.
	ListByPrescription(ctx context.Context, prescriptionID string) ([]Administration, error)
	ListByStay(ctx context.Context, stayID string) ([]Administration, error)
}

type ChecklistRepository interface {
	Create(ctx context.Context, c ChecklistItem) error
	Update(ctx context.Context, c ChecklistItem) error
	GetByID(ctx context.Context, id string) (ChecklistItem, error)
	ListByStay(ctx context.Context, stayID string) ([]ChecklistItem, error)
}

// Repositories agrupa los repos del aggregate; el router arma uno por backend.
type Repositories struct {
	Stays           StayRepository
	Prescriptions   PrescriptionRepository
	Administrations AdministrationRepository
	Checklist       ChecklistRepository
}
