package hospitalizations

import (
	"context"
	"time"
)

// BoxClaimer es lo que la internación necesita del registro de boxes.
// *boxes.Service lo implementa.
type BoxClaimer interface {
	Claim(ctx context.Context, boxID, stayID string) error
	Release(ctx context.Context, boxID, stayID string) error
}

// Directory valida referencias externas (mascota, cliente, staff).
// Opcional: sin Directory los ids se aceptan tal cual.
// Debe devolver ErrUnknownReference si la referencia no existe.
type Directory interface {
	CheckPet(ctx context.Context, petID, clientID string) error
	CheckStaff(ctx context.Context, staffID string) error
}

// LateItem es lo que se publica cuando un item pasa a late.
type LateItem struct {
	Kind           ItemKind
	ItemID         string
	StayID         string
	PrescriptionID string
	BoxID          string
	// Title es el nombre de la medicación o el título de la tarea.
	Title       string
	ScheduledAt time.Time
	DetectedAt  time.Time
}

// LateNotifier publica items atrasados (fire-and-forget).
type LateNotifier interface {
	NotifyLate(ctx context.Context, item LateItem) error
}
