package schedule

import (
	"iter"
	"slices"
	"time"
)

// Window acota la expansión de una regla.
type Window struct {
	// Anchor es el inicio de la prescripción (primera dosis en Interval).
	Anchor time.Time
	// From descarta dosis anteriores; zero = Anchor. Se usa al extender el horizonte.
	From time.Time
	// Until es obligatorio: sin él la secuencia no es finita.
	Until time.Time
	// IncludeUntil: true cuando Until es la fecha de fin de la prescripción,
	// false cuando es el horizonte de generación.
	IncludeUntil bool
}

func (w Window) admits(t time.Time) bool {
	if w.IncludeUntil {
		return !t.After(w.Until)
	}
	return t.Before(w.Until)
}

func (w Window) lower() time.Time {
	if w.From.After(w.Anchor) {
		return w.From
	}
	return w.Anchor
}

// Doses expande la regla sobre la ventana.
// La secuencia es lazy, finita y se puede recorrer varias veces.
func Doses(r Rule, w Window) iter.Seq[time.Time] {
	if w.Until.IsZero() || w.Anchor.IsZero() {
		return empty
	}
	switch rule := r.(type) {
	case Interval:
		return intervalDoses(rule, w)
	case DailyTimes:
		return dailyDoses(rule, w)
	default:
		return empty
	}
}

// Collect materializa la secuencia.
func Collect(r Rule, w Window) []time.Time {
	return slices.Collect(Doses(r, w))
}

func empty(func(time.Time) bool) {}

func intervalDoses(r Interval, w Window) iter.Seq[time.Time] {
	return func(yield func(time.Time) bool) {
		if r.Every <= 0 {
			return
		}

		t := w.Anchor
		if from := w.lower(); from.After(t) {
			steps := from.Sub(t) / r.Every
			t = t.Add(steps * r.Every)
			if t.Before(from) {
				t = t.Add(r.Every)
			}
		}

		for w.admits(t) {
			if !yield(t) {
				return
			}
			t = t.Add(r.Every)
		}
	}
}

func dailyDoses(r DailyTimes, w Window) iter.Seq[time.Time] {
	times := slices.Clone(r.Times)
	slices.SortFunc(times, func(a, b ClockTime) int { return a.minutes() - b.minutes() })

	return func(yield func(time.Time) bool) {
		if len(times) == 0 {
			return
		}

		loc := w.Anchor.Location()
		if r.Zone != nil {
			loc = r.Zone
		}
		lower := w.lower().In(loc)
		y, m, d := lower.Date()

		for day := 0; ; day++ {
			for _, c := range times {
				t := time.Date(y, m, d+day, c.Hour, c.Minute, 0, 0, loc)
				if t.Before(lower) {
					continue
				}
				if !w.admits(t) {
					return
				}
				if !yield(t) {
					return
				}
			}
		}
	}
}
