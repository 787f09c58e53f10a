package timeutil

import (
	"time"
)

const (
	DateLayout     = "2006-01-02"
	DateTimeLayout = "2006-01-02 15:04:05"
)

// WeekStartDay is the first day of a payroll week.
const WeekStartDay = time.Wednesday

// Window is a payroll week. Start is Wednesday 00:00; Cutoff is the following Tuesday 23:59:59.
// End is the exclusive bound used in queries.
type Window struct {
	Start  time.Time
	Cutoff time.Time
	End    time.Time
}

// WeekWindow builds the window starting on the calendar day of start in loc.
func WeekWindow(start time.Time, loc *time.Location) Window {
	s := StartOfDay(start, loc)
	end := s.AddDate(0, 0, 7)
	return Window{
		Start:  s,
		Cutoff: end.Add(-time.Second),
		End:    end,
	}
}

// Contains reports whether t falls in [Start, End).
func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Start) && t.Before(w.End)
}

// StartOfDay returns midnight of t's calendar day in loc.
func StartOfDay(t time.Time, loc *time.Location) time.Time {
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}

// DateIn reinterprets a date-only value (as decoded from a DATE column) as midnight in loc.
func DateIn(d time.Time, loc *time.Location) time.Time {
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, loc)
}

// LastClosedWeekStart returns the start of the most recent week whose cutoff has passed at now.
func LastClosedWeekStart(now time.Time, loc *time.Location) time.Time {
	today := StartOfDay(now, loc)
	back := (int(today.Weekday()) - int(WeekStartDay) + 7) % 7
	current := today.AddDate(0, 0, -back)
	return current.AddDate(0, 0, -7)
}

// Clock supplies the current time; tests use a fixed clock.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

var SystemClock Clock = systemClock{}

type FixedClock time.Time

func (c FixedClock) Now() time.Time { return time.Time(c) }
