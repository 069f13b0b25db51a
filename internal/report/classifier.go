package report

import (
	"time"

	"github.com/tech1210/empthics-backend/internal/attendance"
	"github.com/tech1210/empthics-backend/internal/organization"
	"github.com/tech1210/empthics-backend/internal/shared/civil"
)

const (
	StatusHoliday = "Holiday"
	StatusOnLeave = "On Leave"
	StatusAbsent  = "Absent"
	StatusPresent = "Present"
	StatusLate    = "Late"
	StatusHalfDay = "Half Day"
)

// DayResult is one employee-day classification. Late and HalfDay stay
// independent flags so tallies can count both even though only one label is
// displayed.
type DayResult struct {
	Status        string
	InTime        string
	OutTime       string
	TotalHours    string
	WorkedMinutes int
	Late          bool
	HalfDay       bool
}

// ClassifyDay resolves a single employee-day. Guards run in order: a
// non-working day wins over everything, then approved leave, then absence.
// A present day may additionally be Late or Half Day; Half Day wins the
// displayed label.
func ClassifyDay(
	date time.Time,
	att *attendance.Attendance,
	onLeave bool,
	nonWorking bool,
	cfg organization.ShiftConfig,
	loc *time.Location,
) DayResult {
	if nonWorking {
		return DayResult{Status: StatusHoliday, TotalHours: "0h 0m"}
	}
	if onLeave {
		return DayResult{Status: StatusOnLeave, TotalHours: "0h 0m"}
	}
	if att == nil || att.Status == attendance.StatusAbsent {
		return DayResult{Status: StatusAbsent, TotalHours: "0h 0m"}
	}

	res := DayResult{
		Status:     StatusPresent,
		InTime:     att.PunchIn.In(loc).Format("15:04"),
		OutTime:    civil.FormatClock(att.PunchOut, loc),
		TotalHours: "0h 0m",
	}

	if shiftStart, err := civil.AtTimeOfDay(date, cfg.ShiftStart, loc); err == nil {
		if att.PunchIn.After(shiftStart) {
			res.Late = true
			res.Status = StatusLate
		}
	}

	if att.PunchOut != nil {
		res.WorkedMinutes = civil.MinutesBetween(att.PunchIn, *att.PunchOut)
		res.TotalHours = civil.FormatDuration(res.WorkedMinutes)

		hours := float64(res.WorkedMinutes) / 60
		if hours > 0 && hours < cfg.HalfDayHours {
			res.HalfDay = true
			res.Status = StatusHalfDay
		}
	}

	return res
}
