// Package civil holds the zone-aware calendar helpers the attendance and
// report services share. A "civil day" is a calendar date interpreted in the
// organization's IANA zone, independent of the instant's offset.
package civil

import (
	"fmt"
	"time"
)

const DateLayout = "2006-01-02"

// DefaultZone is used when an organization has no timezone configured.
const DefaultZone = "Asia/Kolkata"

// LoadLocation resolves an IANA zone name, falling back to DefaultZone and
// then UTC so callers never receive nil.
func LoadLocation(name string) *time.Location {
	if name != "" {
		if loc, err := time.LoadLocation(name); err == nil {
			return loc
		}
	}
	if loc, err := time.LoadLocation(DefaultZone); err == nil {
		return loc
	}
	return time.UTC
}

// TruncateMinute drops sub-minute precision so duration math is always
// whole-minute.
func TruncateMinute(t time.Time) time.Time {
	return t.Truncate(time.Minute)
}

// DayStart returns midnight of t's civil day in loc.
func DayStart(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}

// DayEnd returns the last nanosecond of t's civil day in loc.
func DayEnd(t time.Time, loc *time.Location) time.Time {
	return DayStart(t, loc).AddDate(0, 0, 1).Add(-time.Nanosecond)
}

// SameDay reports whether a and b fall on the same civil day in loc.
func SameDay(a, b time.Time, loc *time.Location) bool {
	ay, am, ad := a.In(loc).Date()
	by, bm, bd := b.In(loc).Date()
	return ay == by && am == bm && ad == bd
}

// ParseDate parses a YYYY-MM-DD string as midnight in loc.
func ParseDate(s string, loc *time.Location) (time.Time, error) {
	return time.ParseInLocation(DateLayout, s, loc)
}

// DaysInclusive counts calendar days in [start, end] by civil date. Returns 0
// when end's day precedes start's day.
func DaysInclusive(start, end time.Time, loc *time.Location) int {
	s := DayStart(start, loc)
	e := DayStart(end, loc)
	if e.Before(s) {
		return 0
	}
	days := 0
	for d := s; !d.After(e); d = d.AddDate(0, 0, 1) {
		days++
	}
	return days
}

// CoversDay reports whether the inclusive civil range [from, to] contains
// date's civil day.
func CoversDay(from, to, date time.Time, loc *time.Location) bool {
	d := DayStart(date, loc)
	return !d.Before(DayStart(from, loc)) && !d.After(DayStart(to, loc))
}

// AtTimeOfDay applies an "HH:MM" time of day to date's civil day in loc.
func AtTimeOfDay(date time.Time, hhmm string, loc *time.Location) (time.Time, error) {
	t, err := time.Parse("15:04", hhmm)
	if err != nil {
		return time.Time{}, err
	}
	y, m, d := date.In(loc).Date()
	return time.Date(y, m, d, t.Hour(), t.Minute(), 0, 0, loc), nil
}

// MinutesBetween returns the whole-minute difference between two instants
// after truncating both to the minute. Negative results clamp to 0.
func MinutesBetween(in, out time.Time) int {
	mins := int(TruncateMinute(out).Sub(TruncateMinute(in)) / time.Minute)
	if mins < 0 {
		return 0
	}
	return mins
}

// FormatDuration renders worked minutes as "{hours}h {minutes}m".
func FormatDuration(minutes int) string {
	return fmt.Sprintf("%dh %dm", minutes/60, minutes%60)
}

// FormatClock renders an instant as a local wall-clock time, or "" when nil.
func FormatClock(t *time.Time, loc *time.Location) string {
	if t == nil {
		return ""
	}
	return t.In(loc).Format("15:04")
}
