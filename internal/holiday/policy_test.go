package holiday_test

import (
	"testing"
	"time"

	"github.com/tech1210/empthics-backend/internal/holiday"
	"github.com/tech1210/empthics-backend/internal/shared/civil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustDate(t *testing.T, s string, loc *time.Location) time.Time {
	t.Helper()
	d, err := civil.ParseDate(s, loc)
	require.NoError(t, err)
	return d
}

func TestPolicy_IsNonWorkingDay(t *testing.T) {
	loc := civil.LoadLocation("Asia/Kolkata")

	holidays := []holiday.Holiday{
		{
			Name:     "Holi",
			FromDate: mustDate(t, "2026-03-03", loc),
			ToDate:   mustDate(t, "2026-03-04", loc),
			IsActive: true,
		},
		{
			Name:     "Inactive",
			FromDate: mustDate(t, "2026-03-10", loc),
			ToDate:   mustDate(t, "2026-03-10", loc),
			IsActive: false,
		},
	}
	// Weekly off on Sunday.
	p := holiday.NewPolicy(0, loc, holidays)

	assert.True(t, p.IsNonWorkingDay(mustDate(t, "2026-03-01", loc)), "Sunday")
	assert.True(t, p.IsNonWorkingDay(mustDate(t, "2026-03-03", loc)), "holiday start")
	assert.True(t, p.IsNonWorkingDay(mustDate(t, "2026-03-04", loc)), "holiday end")
	assert.False(t, p.IsNonWorkingDay(mustDate(t, "2026-03-05", loc)), "day after holiday")
	assert.False(t, p.IsNonWorkingDay(mustDate(t, "2026-03-10", loc)), "inactive holiday ignored")
	assert.False(t, p.IsNonWorkingDay(mustDate(t, "2026-03-02", loc)), "Monday")
}

func TestPolicy_IsNonWorkingDay_NormalizesInstants(t *testing.T) {
	loc := civil.LoadLocation("Asia/Kolkata")
	p := holiday.NewPolicy(0, loc, []holiday.Holiday{
		{
			Name:     "Republic Day",
			FromDate: mustDate(t, "2026-01-26", loc),
			ToDate:   mustDate(t, "2026-01-26", loc),
			IsActive: true,
		},
	})

	// 2026-01-25T20:00Z is already Jan 26 in IST.
	utcEvening := time.Date(2026, 1, 25, 20, 0, 0, 0, time.UTC)
	assert.True(t, p.IsNonWorkingDay(utcEvening))
}

func TestPolicy_WorkingDays(t *testing.T) {
	loc := civil.LoadLocation("Asia/Kolkata")

	t.Run("march 2026 with sunday off", func(t *testing.T) {
		p := holiday.NewPolicy(0, loc, nil)
		// March 2026 has 31 days and five Sundays (1, 8, 15, 22, 29).
		got := p.WorkingDays(mustDate(t, "2026-03-01", loc), mustDate(t, "2026-03-31", loc))
		assert.Equal(t, 26, got)
	})

	t.Run("holiday window subtracts only working days", func(t *testing.T) {
		p := holiday.NewPolicy(0, loc, []holiday.Holiday{
			{
				Name:     "Holi",
				FromDate: mustDate(t, "2026-03-03", loc),
				ToDate:   mustDate(t, "2026-03-04", loc),
				IsActive: true,
			},
		})
		got := p.WorkingDays(mustDate(t, "2026-03-01", loc), mustDate(t, "2026-03-31", loc))
		assert.Equal(t, 24, got)
	})

	t.Run("holiday on the weekly off is not double counted", func(t *testing.T) {
		p := holiday.NewPolicy(0, loc, []holiday.Holiday{
			{
				Name:     "Sunday festival",
				FromDate: mustDate(t, "2026-03-08", loc),
				ToDate:   mustDate(t, "2026-03-08", loc),
				IsActive: true,
			},
		})
		got := p.WorkingDays(mustDate(t, "2026-03-01", loc), mustDate(t, "2026-03-31", loc))
		assert.Equal(t, 26, got)
	})

	t.Run("inverted range yields zero", func(t *testing.T) {
		p := holiday.NewPolicy(0, loc, nil)
		got := p.WorkingDays(mustDate(t, "2026-03-31", loc), mustDate(t, "2026-03-01", loc))
		assert.Equal(t, 0, got)
	})
}
