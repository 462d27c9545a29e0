package hospitalizations

import (
	"strings"
	"time"
)

// DeriveStatus aplica la misma regla a administraciones y tareas de checklist.
// Un item resuelto (done/skipped) queda fijo; si no, depende de now vs scheduled+grace.
func DeriveStatus(now, scheduled time.Time, completedAt, skippedAt *time.Time, grace time.Duration) ItemStatus {
	switch {
	case completedAt != nil:
		return ItemStatusDone
	case skippedAt != nil:
		return ItemStatusSkipped
	case now.Before(scheduled.Add(grace)):
		return ItemStatusPending
	default:
		return ItemStatusLate
	}
}

func joinNotes(existing, extra string) string {
	existing = strings.TrimSpace(existing)
	extra = strings.TrimSpace(extra)
	switch {
	case existing == "":
		return extra
	case extra == "":
		return existing
	default:
		return existing + "; " + extra
	}
}
