package shared

import (
	"time"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_clock.go -package mocks skimbox/shared IClock

// IClock exists so the dispatch path can be tested with fixed instants.
type IClock interface {
	Now() time.Time
}

type clock struct {
}

func NewClock() IClock {
	return &clock{}
}

func (c *clock) Now() time.Time {
	return time.Now().UTC()
}

// LocalDate converts an instant to a calendar date in the given IANA timezone.
// An empty or unknown timezone falls back to UTC.
func LocalDate(t time.Time, tz string) (year int, month time.Month, day int) {
	loc := time.UTC
	if tz != "" {
		if parsed, err := time.LoadLocation(tz); err == nil {
			loc = parsed
		}
	}
	return t.In(loc).Date()
}

// SameLocalDay reports whether two instants fall on the same calendar date
// in the given timezone.
func SameLocalDay(a, b time.Time, tz string) bool {
	ay, am, ad := LocalDate(a, tz)
	by, bm, bd := LocalDate(b, tz)
	return ay == by && am == bm && ad == bd
}
