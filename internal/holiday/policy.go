package holiday

import (
	"time"

	"github.com/tech1210/empthics-backend/internal/shared/civil"
)

// window is a holiday span normalized to civil day starts.
type window struct {
	from time.Time
	to   time.Time
}

// Policy answers working-day questions for one organization. It is built
// once from the weekly-off day and the active holiday windows and does no
// store access afterwards, so the report loops can call it per day.
type Policy struct {
	weeklyOffDay time.Weekday
	loc          *time.Location
	windows      []window
}

func NewPolicy(weeklyOffDay time.Weekday, loc *time.Location, holidays []Holiday) Policy {
	p := Policy{
		weeklyOffDay: weeklyOffDay,
		loc:          loc,
		windows:      make([]window, 0, len(holidays)),
	}
	for _, h := range holidays {
		if !h.IsActive {
			continue
		}
		p.windows = append(p.windows, window{
			from: civil.DayStart(h.FromDate, loc),
			to:   civil.DayStart(h.ToDate, loc),
		})
	}
	return p
}

func (p Policy) Location() *time.Location {
	return p.loc
}

// IsNonWorkingDay reports whether date falls on the weekly-off weekday or
// inside any holiday window, compared by civil day.
func (p Policy) IsNonWorkingDay(date time.Time) bool {
	d := civil.DayStart(date, p.loc)
	if d.Weekday() == p.weeklyOffDay {
		return true
	}
	for _, w := range p.windows {
		if !d.Before(w.from) && !d.After(w.to) {
			return true
		}
	}
	return false
}

// WorkingDays counts working days in the inclusive civil range [from, to].
func (p Policy) WorkingDays(from, to time.Time) int {
	start := civil.DayStart(from, p.loc)
	end := civil.DayStart(to, p.loc)
	if end.Before(start) {
		return 0
	}
	count := 0
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		if !p.IsNonWorkingDay(d) {
			count++
		}
	}
	return count
}
