package hospitalizations

type StayStatus string

const (
	StayStatusActive     StayStatus = "active"
	StayStatusDischarged StayStatus = "discharged"
	StayStatusCancelled  StayStatus = "cancelled"
	StayStatusDeceased   StayStatus = "deceased"
)

// Terminal: discharged, cancelled y deceased no admiten más transiciones.
func (s StayStatus) Terminal() bool {
	switch s {
	case StayStatusDischarged, StayStatusCancelled, StayStatusDeceased:
		return true
	default:
		return false
	}
}

func ParseStayStatus(s string) (StayStatus, bool) {
	switch st := StayStatus(s); st {
	case StayStatusActive, StayStatusDischarged, StayStatusCancelled, StayStatusDeceased:
		return st, true
	default:
		return "", false
	}
}

// ItemStatus es el estado de una administración o tarea de checklist.
// pending y late son derivados (no se persisten).
type ItemStatus string

const (
	ItemStatusPending ItemStatus = "pending"
	ItemStatusLate    ItemStatus = "late"
	ItemStatusDone    ItemStatus = "done"
	ItemStatusSkipped ItemStatus = "skipped"
)

func (s ItemStatus) Terminal() bool {
	return s == ItemStatusDone || s == ItemStatusSkipped
}

type ItemKind string

const (
	ItemKindAdministration ItemKind = "administration"
	ItemKindChecklist      ItemKind = "checklist"
)

const (
	SystemActor = "system"

	NoteDiscontinued = "prescription discontinued"
	NoteStayClosed   = "stay closed"
)
