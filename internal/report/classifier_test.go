package report_test

import (
	"testing"
	"time"

	"github.com/tech1210/empthics-backend/internal/attendance"
	"github.com/tech1210/empthics-backend/internal/organization"
	"github.com/tech1210/empthics-backend/internal/report"
	"github.com/tech1210/empthics-backend/internal/shared/civil"

	"github.com/stretchr/testify/assert"
)

func shiftCfg() organization.ShiftConfig {
	return organization.ShiftConfig{
		ShiftStart:   "09:30",
		HalfDayHours: 4,
		WeeklyOffDay: time.Sunday,
		Timezone:     "Asia/Kolkata",
	}
}

func attRecord(loc *time.Location, inHour, inMin int, out *time.Time) *attendance.Attendance {
	return &attendance.Attendance{
		PunchIn:  time.Date(2026, 3, 2, inHour, inMin, 0, 0, loc),
		PunchOut: out,
		Status:   attendance.StatusPresent,
	}
}

func TestClassifyDay_Precedence(t *testing.T) {
	loc := civil.LoadLocation("Asia/Kolkata")
	date := time.Date(2026, 3, 2, 0, 0, 0, 0, loc)
	out := time.Date(2026, 3, 2, 18, 0, 0, 0, loc)

	tests := []struct {
		name       string
		att        *attendance.Attendance
		onLeave    bool
		nonWorking bool
		want       string
	}{
		{"non-working day beats a full punch pair", attRecord(loc, 9, 0, &out), false, true, report.StatusHoliday},
		{"non-working day beats leave", nil, true, true, report.StatusHoliday},
		{"approved leave beats absence", nil, true, false, report.StatusOnLeave},
		{"leave beats an existing record", attRecord(loc, 9, 0, &out), true, false, report.StatusOnLeave},
		{"no record on a working day is absent", nil, false, false, report.StatusAbsent},
		{"on-time full day is present", attRecord(loc, 9, 0, &out), false, false, report.StatusPresent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := report.ClassifyDay(date, tt.att, tt.onLeave, tt.nonWorking, shiftCfg(), loc)
			assert.Equal(t, tt.want, res.Status)
		})
	}
}

func TestClassifyDay_LateAndHalfDay(t *testing.T) {
	loc := civil.LoadLocation("Asia/Kolkata")
	date := time.Date(2026, 3, 2, 0, 0, 0, 0, loc)

	t.Run("late when punch in is strictly after shift start", func(t *testing.T) {
		out := time.Date(2026, 3, 2, 18, 0, 0, 0, loc)
		res := report.ClassifyDay(date, attRecord(loc, 9, 31, &out), false, false, shiftCfg(), loc)
		assert.Equal(t, report.StatusLate, res.Status)
		assert.True(t, res.Late)
		assert.False(t, res.HalfDay)
	})

	t.Run("punch in exactly at shift start is not late", func(t *testing.T) {
		out := time.Date(2026, 3, 2, 18, 0, 0, 0, loc)
		res := report.ClassifyDay(date, attRecord(loc, 9, 30, &out), false, false, shiftCfg(), loc)
		assert.Equal(t, report.StatusPresent, res.Status)
		assert.False(t, res.Late)
	})

	t.Run("09:15 to 09:50 with a 4h threshold is a half day of 0h 35m", func(t *testing.T) {
		out := time.Date(2026, 3, 2, 9, 50, 0, 0, loc)
		res := report.ClassifyDay(date, attRecord(loc, 9, 15, &out), false, false, shiftCfg(), loc)

		assert.Equal(t, report.StatusHalfDay, res.Status)
		assert.True(t, res.HalfDay)
		assert.False(t, res.Late)
		assert.Equal(t, "0h 35m", res.TotalHours)
		assert.Equal(t, 35, res.WorkedMinutes)
	})

	t.Run("half day label wins over late but both flags survive", func(t *testing.T) {
		out := time.Date(2026, 3, 2, 12, 0, 0, 0, loc)
		res := report.ClassifyDay(date, attRecord(loc, 10, 0, &out), false, false, shiftCfg(), loc)

		assert.Equal(t, report.StatusHalfDay, res.Status)
		assert.True(t, res.HalfDay)
		assert.True(t, res.Late)
		assert.Equal(t, "2h 0m", res.TotalHours)
	})

	t.Run("open record shows zero hours but keeps times", func(t *testing.T) {
		res := report.ClassifyDay(date, attRecord(loc, 9, 15, nil), false, false, shiftCfg(), loc)
		assert.Equal(t, report.StatusPresent, res.Status)
		assert.Equal(t, "0h 0m", res.TotalHours)
		assert.Equal(t, "09:15", res.InTime)
		assert.Equal(t, "", res.OutTime)
	})

	t.Run("working exactly the threshold is a full day", func(t *testing.T) {
		out := time.Date(2026, 3, 2, 13, 15, 0, 0, loc)
		res := report.ClassifyDay(date, attRecord(loc, 9, 15, &out), false, false, shiftCfg(), loc)
		assert.Equal(t, report.StatusPresent, res.Status)
		assert.False(t, res.HalfDay)
	})
}
