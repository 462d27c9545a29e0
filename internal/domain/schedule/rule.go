package schedule

import (
	"errors"
	"fmt"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata" // zonas IANA de la regla diaria sin depender del tzdata del host
)

var (
	ErrInvalidRule = errors.New("invalid frequency rule")
)

// Rule es la regla de frecuencia de una prescripción.
// Es un union cerrado: solo Interval y DailyTimes la implementan.
type Rule interface {
	// String devuelve la forma canónica (la que acepta ParseRule).
	String() string
	Validate() error

	sealed()
}

// Interval: "every N hours" / "every N minutes".
// La primera dosis cae exactamente en el inicio de la prescripción.
type Interval struct {
	Every time.Duration
}

// DailyTimes: "daily at 08:00,20:00 [ZONA]".
// Las dosis caen en esas horas de reloj en Zone. Zone viaja en la forma
// canónica (nombre IANA o "UTC-03:00") para que sobreviva al storage;
// nil = zona del inicio de la prescripción.
type DailyTimes struct {
	Times []ClockTime
	Zone  *time.Location
}

type ClockTime struct {
	Hour   int
	Minute int
}

const MinInterval = time.Minute

func (Interval) sealed()   {}
func (DailyTimes) sealed() {}

func (r Interval) Validate() error {
	if r.Every < MinInterval {
		return fmt.Errorf("%w: interval must be at least %s", ErrInvalidRule, MinInterval)
	}
	if r.Every%time.Minute != 0 {
		return fmt.Errorf("%w: interval must be a whole number of minutes", ErrInvalidRule)
	}
	return nil
}

func (r Interval) String() string {
	if r.Every%time.Hour == 0 {
		return fmt.Sprintf("every %d %s", int(r.Every/time.Hour), plural(int(r.Every/time.Hour), "hour"))
	}
	n := int(r.Every / time.Minute)
	return fmt.Sprintf("every %d %s", n, plural(n, "minute"))
}

func (r DailyTimes) Validate() error {
	if len(r.Times) == 0 {
		return fmt.Errorf("%w: at least one clock time required", ErrInvalidRule)
	}
	for _, c := range r.Times {
		if !c.valid() {
			return fmt.Errorf("%w: bad clock time %02d:%02d", ErrInvalidRule, c.Hour, c.Minute)
		}
	}
	return nil
}

func (r DailyTimes) String() string {
	parts := make([]string, 0, len(r.Times))
	for _, c := range r.Times {
		parts = append(parts, c.String())
	}
	out := "daily at " + strings.Join(parts, ",")
	if r.Zone != nil {
		out += " " + r.Zone.String()
	}
	return out
}

// InZoneOf fija la zona de la regla a la de t si todavía no tiene una.
// Zonas sin nombre portable (offsets fijos, Local) se guardan como offset fijo.
func (r DailyTimes) InZoneOf(t time.Time) DailyTimes {
	if r.Zone != nil {
		return r
	}
	r.Zone = ZoneOf(t)
	return r
}

// ZoneOf devuelve una zona de t que se puede reconstruir con ParseZone.
func ZoneOf(t time.Time) *time.Location {
	loc := t.Location()
	if loc == time.UTC {
		return time.UTC
	}
	if name := loc.String(); name != "" && name != "Local" && !offsetRe.MatchString(name) {
		// un FixedZone con nombre de zona real ("CET") solo vale si coincide el offset
		if named, err := time.LoadLocation(name); err == nil {
			_, want := t.Zone()
			if _, got := t.In(named).Zone(); got == want {
				return named
			}
		}
	}
	_, off := t.Zone()
	return fixedZone(off)
}

// ParseZone acepta "UTC", "UTC±HH:MM" o un nombre IANA.
func ParseZone(s string) (*time.Location, error) {
	if strings.EqualFold(s, "UTC") {
		return time.UTC, nil
	}
	if m := offsetRe.FindStringSubmatch(strings.ToUpper(s)); m != nil {
		h, _ := strconv.Atoi(m[2])
		mi, _ := strconv.Atoi(m[3])
		if h > 14 || mi > 59 {
			return nil, fmt.Errorf("%w: bad utc offset %q", ErrInvalidRule, s)
		}
		off := h*3600 + mi*60
		if m[1] == "-" {
			off = -off
		}
		return fixedZone(off), nil
	}
	loc, err := time.LoadLocation(s)
	if err != nil || s == "Local" {
		return nil, fmt.Errorf("%w: unknown time zone %q", ErrInvalidRule, s)
	}
	return loc, nil
}

func fixedZone(off int) *time.Location {
	if off == 0 {
		return time.UTC
	}
	sign := "+"
	abs := off
	if off < 0 {
		sign = "-"
		abs = -off
	}
	return time.FixedZone(fmt.Sprintf("UTC%s%02d:%02d", sign, abs/3600, abs%3600/60), off)
}

func (c ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
}

func (c ClockTime) valid() bool {
	return c.Hour >= 0 && c.Hour < 24 && c.Minute >= 0 && c.Minute < 60
}

func (c ClockTime) minutes() int { return c.Hour*60 + c.Minute }

var (
	intervalRe = regexp.MustCompile(`^every\s+(\d+)\s*(h|hr|hrs|hour|hours|m|min|mins|minute|minutes)$`)
	dailyRe    = regexp.MustCompile(`(?i)^daily\s+at\s+([\d:,\s]+?)(?:\s+([a-z]\S*))?$`)
	offsetRe   = regexp.MustCompile(`^UTC([+-])(\d{2}):(\d{2})$`)
)

// ParseRule interpreta la gramática canónica de frecuencias.
// Cualquier otro texto libre se rechaza con ErrInvalidRule.
func ParseRule(s string) (Rule, error) {
	norm := strings.ToLower(strings.Join(strings.Fields(s), " "))
	if norm == "" {
		return nil, fmt.Errorf("%w: empty", ErrInvalidRule)
	}

	if m := intervalRe.FindStringSubmatch(norm); m != nil {
		n, err := strconv.Atoi(m[1])
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("%w: %q", ErrInvalidRule, s)
		}
		unit := time.Minute
		if strings.HasPrefix(m[2], "h") {
			unit = time.Hour
		}
		r := Interval{Every: time.Duration(n) * unit}
		if err := r.Validate(); err != nil {
			return nil, err
		}
		return r, nil
	}

	// la zona es case-sensitive: daily se matchea sobre el texto sin pasar a minúsculas
	if m := dailyRe.FindStringSubmatch(strings.Join(strings.Fields(s), " ")); m != nil {
		times := make([]ClockTime, 0)
		seen := map[int]struct{}{}
		for _, raw := range strings.Split(m[1], ",") {
			c, err := parseClock(strings.TrimSpace(raw))
			if err != nil {
				return nil, err
			}
			if _, ok := seen[c.minutes()]; ok {
				continue
			}
			seen[c.minutes()] = struct{}{}
			times = append(times, c)
		}
		slices.SortFunc(times, func(a, b ClockTime) int { return a.minutes() - b.minutes() })

		r := DailyTimes{Times: times}
		if m[2] != "" {
			loc, err := ParseZone(m[2])
			if err != nil {
				return nil, err
			}
			r.Zone = loc
		}
		if err := r.Validate(); err != nil {
			return nil, err
		}
		return r, nil
	}

	return nil, fmt.Errorf("%w: %q", ErrInvalidRule, s)
}

func parseClock(s string) (ClockTime, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return ClockTime{}, fmt.Errorf("%w: clock time %q must be HH:MM", ErrInvalidRule, s)
	}
	return ClockTime{Hour: t.Hour(), Minute: t.Minute()}, nil
}

func plural(n int, word string) string {
	if n == 1 {
		return word
	}
	return word + "s"
}
