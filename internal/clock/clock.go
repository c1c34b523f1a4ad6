package clock

import "time"

// Clock is the time source for the dashboard's clock and task labels.
type Clock interface {
	Now() time.Time
}

// Real reads the wall clock.
type Real struct{}

func (Real) Now() time.Time { return time.Now() }

// Fixed always reports the same instant.
type Fixed time.Time

func (f Fixed) Now() time.Time { return time.Time(f) }

const (
	dateLayout   = "Monday, January 2, 2006"
	time24Layout = "15:04:05"
	time12Layout = "03:04:05 PM"
)

// Date renders the long date line, e.g. "Saturday, March 14, 2026".
func Date(t time.Time) string { return t.Format(dateLayout) }

// Time renders hours, minutes and seconds on a 24- or 12-hour clock.
func Time(t time.Time, hour12 bool) string {
	if hour12 {
		return t.Format(time12Layout)
	}
	return t.Format(time24Layout)
}
