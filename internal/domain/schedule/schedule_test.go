package schedule

import (
	"errors"
	"testing"
	"time"
)

func mustParse(t *testing.T, s string) Rule {
	t.Helper()
	r, err := ParseRule(s)
	if err != nil {
		t.Fatalf("ParseRule(%q) error: %v", s, err)
	}
	return r
}

func TestDoses_Every8Hours_EndInclusive(t *testing.T) {
	start := time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 2, 8, 0, 0, 0, time.UTC)

	got := Collect(mustParse(t, "every 8 hours"), Window{Anchor: start, Until: end, IncludeUntil: true})

	want := []time.Time{
		start,
		start.Add(8 * time.Hour),
		start.Add(16 * time.Hour),
		end,
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d doses, got %d (%v)", len(want), len(got), got)
	}
	for i := range want {
		if !got[i].Equal(want[i]) {
			t.Fatalf("dose %d: expected %s, got %s", i, want[i], got[i])
		}
	}
}

func TestDoses_Interval_SpacingAndFirstDose(t *testing.T) {
	start := time.Date(2024, 3, 10, 7, 13, 0, 0, time.UTC)

	for _, n := range []int{1, 2, 6, 8, 12, 24} {
		every := time.Duration(n) * time.Hour
		got := Collect(Interval{Every: every}, Window{Anchor: start, Until: start.Add(72 * time.Hour)})
		if len(got) == 0 {
			t.Fatalf("every %dh: no doses", n)
		}
		if !got[0].Equal(start) {
			t.Fatalf("every %dh: first dose %s, expected %s", n, got[0], start)
		}
		for i := 1; i < len(got); i++ {
			if d := got[i].Sub(got[i-1]); d != every {
				t.Fatalf("every %dh: gap %s between dose %d and %d", n, d, i-1, i)
			}
		}
		// horizonte exclusivo
		if last := got[len(got)-1]; !last.Before(start.Add(72 * time.Hour)) {
			t.Fatalf("every %dh: dose %s at or past exclusive horizon", n, last)
		}
	}
}

func TestDoses_EndMidInterval(t *testing.T) {
	start := time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 1, 20, 0, 0, 0, time.UTC)

	got := Collect(Interval{Every: 8 * time.Hour}, Window{Anchor: start, Until: end, IncludeUntil: true})
	if len(got) != 2 {
		t.Fatalf("expected 2 doses (08:00, 16:00), got %v", got)
	}
}

func TestDoses_FromResumesOnGrid(t *testing.T) {
	start := time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)
	from := time.Date(2024, 1, 2, 3, 0, 0, 0, time.UTC)

	got := Collect(Interval{Every: 8 * time.Hour}, Window{
		Anchor: start,
		From:   from,
		Until:  time.Date(2024, 1, 3, 8, 0, 0, 0, time.UTC),
	})

	want := []time.Time{
		time.Date(2024, 1, 2, 8, 0, 0, 0, time.UTC),
		time.Date(2024, 1, 2, 16, 0, 0, 0, time.UTC),
		time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC),
	}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if !got[i].Equal(want[i]) {
			t.Fatalf("dose %d: expected %s, got %s", i, want[i], got[i])
		}
	}
}

func TestDoses_Restartable(t *testing.T) {
	start := time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)
	seq := Doses(Interval{Every: 6 * time.Hour}, Window{Anchor: start, Until: start.Add(24 * time.Hour)})

	count := func() int {
		n := 0
		for range seq {
			n++
		}
		return n
	}
	if a, b := count(), count(); a != 4 || b != 4 {
		t.Fatalf("expected 4 doses on both passes, got %d and %d", a, b)
	}

	// corte temprano no rompe la secuencia
	for range seq {
		break
	}
	if n := count(); n != 4 {
		t.Fatalf("expected 4 doses after early break, got %d", n)
	}
}

func TestDoses_DailyTimes(t *testing.T) {
	start := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 3, 8, 0, 0, 0, time.UTC)

	got := Collect(mustParse(t, "daily at 20:00, 08:00"), Window{Anchor: start, Until: end, IncludeUntil: true})

	want := []time.Time{
		time.Date(2024, 1, 1, 20, 0, 0, 0, time.UTC),
		time.Date(2024, 1, 2, 8, 0, 0, 0, time.UTC),
		time.Date(2024, 1, 2, 20, 0, 0, 0, time.UTC),
		time.Date(2024, 1, 3, 8, 0, 0, 0, time.UTC),
	}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if !got[i].Equal(want[i]) {
			t.Fatalf("dose %d: expected %s, got %s", i, want[i], got[i])
		}
	}
}

func TestDoses_NoUntilIsEmpty(t *testing.T) {
	start := time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)
	if got := Collect(Interval{Every: time.Hour}, Window{Anchor: start}); len(got) != 0 {
		t.Fatalf("expected no doses without Until, got %d", len(got))
	}
}

func TestParseRule(t *testing.T) {
	ok := map[string]string{
		"every 8 hours":            "every 8 hours",
		"Every  1 hour":            "every 1 hour",
		"every 90 minutes":         "every 90 minutes",
		"every 120 min":            "every 2 hours",
		"every 12h":                "every 12 hours",
		"daily at 08:00":           "daily at 08:00",
		"daily at 20:00,08:00":     "daily at 08:00,20:00",
		"daily at 08:00, 08:00":    "daily at 08:00",

		// zona de la regla diaria
		"daily at 08:00,20:00 America/Argentina/Buenos_Aires": "daily at 08:00,20:00 America/Argentina/Buenos_Aires",
		"Daily at 08:00 utc-03:00":                            "daily at 08:00 UTC-03:00",
		"daily at 08:00, 20:00 UTC":                           "daily at 08:00,20:00 UTC",
	}
	for in, canon := range ok {
		r, err := ParseRule(in)
		if err != nil {
			t.Fatalf("ParseRule(%q) error: %v", in, err)
		}
		if r.String() != canon {
			t.Fatalf("ParseRule(%q).String() = %q, expected %q", in, r.String(), canon)
		}
		again, err := ParseRule(r.String())
		if err != nil || again.String() != canon {
			t.Fatalf("canonical form %q does not round-trip: %v", canon, err)
		}
	}

	bad := []string{
		"",
		"cada 12h",
		"twice a day",
		"every 0 hours",
		"every -2 hours",
		"daily at 25:00",
		"daily at",
		"every 8 hours please",
		"daily at 08:00 Mars/Olympus",
		"daily at 08:00 UTC+15:00",
		"daily at 08:00 Local",
	}
	for _, in := range bad {
		if _, err := ParseRule(in); !errors.Is(err, ErrInvalidRule) {
			t.Fatalf("ParseRule(%q): expected ErrInvalidRule, got %v", in, err)
		}
	}
}

func TestDoses_DailyTimes_ZoneSurvivesUTCAnchor(t *testing.T) {
	art := time.FixedZone("", -3*3600)
	local := time.Date(2024, 1, 1, 8, 0, 0, 0, art)

	r := mustParse(t, "daily at 08:00,20:00").(DailyTimes).InZoneOf(local)
	if r.String() != "daily at 08:00,20:00 UTC-03:00" {
		t.Fatalf("unexpected canonical form %q", r.String())
	}

	// como vuelve de timestamptz: mismo instante, zona UTC
	reloaded := mustParse(t, r.String())
	anchor := local.UTC()
	got := Collect(reloaded, Window{Anchor: anchor, Until: anchor.Add(48 * time.Hour)})

	if len(got) != 4 {
		t.Fatalf("expected 4 doses, got %v", got)
	}
	for i, d := range got {
		if h := d.In(art).Hour(); h != 8 && h != 20 {
			t.Fatalf("dose %d at %s: expected 08:00 or 20:00 in -03:00", i, d.In(art))
		}
	}
	if !got[0].Equal(local) {
		t.Fatalf("first dose: expected %s, got %s", local, got[0])
	}
}

func TestZoneOf(t *testing.T) {
	cases := map[string]time.Time{
		"UTC":       time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC),
		"UTC-03:00": time.Date(2024, 1, 1, 8, 0, 0, 0, time.FixedZone("", -3*3600)),
		"UTC+05:30": time.Date(2024, 1, 1, 8, 0, 0, 0, time.FixedZone("XST", 5*3600+1800)),
	}
	for want, in := range cases {
		loc := ZoneOf(in)
		if loc.String() != want {
			t.Fatalf("ZoneOf(%s) = %q, expected %q", in, loc.String(), want)
		}
		back, err := ParseZone(loc.String())
		if err != nil {
			t.Fatalf("ParseZone(%q) error: %v", loc.String(), err)
		}
		_, wantOff := in.Zone()
		if _, off := in.In(back).Zone(); off != wantOff {
			t.Fatalf("zone %q does not round-trip the offset: %d != %d", want, off, wantOff)
		}
	}

	ba, err := time.LoadLocation("America/Argentina/Buenos_Aires")
	if err != nil {
		t.Fatalf("LoadLocation error: %v", err)
	}
	if got := ZoneOf(time.Date(2024, 1, 1, 8, 0, 0, 0, ba)); got.String() != "America/Argentina/Buenos_Aires" {
		t.Fatalf("expected IANA zone kept, got %q", got.String())
	}
}
