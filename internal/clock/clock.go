// ABOUTME: Clock abstraction and calendar day-key helpers.
// ABOUTME: Single source of "what day is it" so tests can substitute a fixed clock.
package clock

import "time"

// DayKeyLayout is the calendar-day format used as a map key for per-day data.
const DayKeyLayout = "2006-01-02"

// Clock provides the current time. Stores take a Clock rather than calling
// time.Now directly so day-boundary behavior is testable.
type Clock interface {
	Now() time.Time
}

// System is the real wall clock in the local timezone.
type System struct{}

func (System) Now() time.Time { return time.Now() }

// Fixed is a settable clock for tests.
type Fixed struct {
	Current time.Time
}

func NewFixed(t time.Time) *Fixed { return &Fixed{Current: t} }

func (f *Fixed) Now() time.Time { return f.Current }

// Advance moves the fixed clock forward by d.
func (f *Fixed) Advance(d time.Duration) { f.Current = f.Current.Add(d) }

// AdvanceDays moves the fixed clock forward by n calendar days.
func (f *Fixed) AdvanceDays(n int) { f.Current = f.Current.AddDate(0, 0, n) }

// DayKey formats a time as its calendar day in the local timezone.
func DayKey(t time.Time) string {
	return t.Format(DayKeyLayout)
}

// Today returns the day-key at the moment of call.
func Today(c Clock) string {
	return DayKey(c.Now())
}

// DaysAgo returns the day-key n calendar days before today. AddDate handles
// month and year boundaries; direct day subtraction does not.
func DaysAgo(c Clock, n int) string {
	return DayKey(c.Now().AddDate(0, 0, -n))
}

// Yesterday returns the day-key one calendar day before today.
func Yesterday(c Clock) string {
	return DaysAgo(c, 1)
}

// WeekdayLabel returns the short weekday name ("Mon", "Tue", ...) for a
// day-key, or an empty string if the key does not parse.
func WeekdayLabel(dayKey string) string {
	t, err := time.ParseInLocation(DayKeyLayout, dayKey, time.Local)
	if err != nil {
		return ""
	}
	return t.Format("Mon")
}

// ParseDayKey parses a day-key in the local timezone.
func ParseDayKey(dayKey string) (time.Time, error) {
	return time.ParseInLocation(DayKeyLayout, dayKey, time.Local)
}
