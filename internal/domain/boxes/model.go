package boxes

import "time"

// Box es un lugar físico de internación (jaula, canil, box de aislamiento).
// Un box puede estar referenciado por a lo sumo una internación activa.
type Box struct {
	ID string

	Name        string
	Description string
	Active      bool

	// OccupantStayID es la celda compare-and-set de ocupación.
	OccupantStayID *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (b Box) Occupied() bool {
	return b.OccupantStayID != nil && *b.OccupantStayID != ""
}
