package boxes

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, b Box) error
	GetByID(ctx context.Context, id string) (Box, error)
	List(ctx context.Context, filter ListFilter) ([]Box, error)

	// Claim asigna stayID como ocupante solo si el box está activo y libre.
	// Debe ser atómico: ErrOccupied si otro stay lo tomó, ErrInactive si está dado de baja.
	// Reclamar un box que ya es de stayID no es error.
	Claim(ctx context.Context, boxID, stayID string, at time.Time) error

	// Release limpia el ocupante solo si sigue siendo stayID (no pisa a otro stay).
	Release(ctx context.Context, boxID, stayID string, at time.Time) error

	// Deactivate da de baja el box si está libre; ErrOccupied si no.
	Deactivate(ctx context.Context, boxID string, at time.Time) error
}

type ListFilter struct {
	ActiveOnly bool
	FreeOnly   bool
}
