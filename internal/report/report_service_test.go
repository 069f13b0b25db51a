package report_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/tech1210/empthics-backend/internal/attendance"
	"github.com/tech1210/empthics-backend/internal/employee"
	"github.com/tech1210/empthics-backend/internal/holiday"
	"github.com/tech1210/empthics-backend/internal/leave"
	"github.com/tech1210/empthics-backend/internal/organization"
	"github.com/tech1210/empthics-backend/internal/report"
	reporterrors "github.com/tech1210/empthics-backend/internal/report/errors"
	"github.com/tech1210/empthics-backend/internal/shared/civil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEmpRepo struct {
	findByOrgFn       func(ctx context.Context, orgID, nameSearch string) ([]employee.Employee, error)
	findActiveByOrgFn func(ctx context.Context, orgID, nameSearch string) ([]employee.Employee, error)
	countActiveFn     func(ctx context.Context, orgID string) (int64, error)
	findRecentFn      func(ctx context.Context, orgID string, limit int) ([]employee.Employee, error)
}

func (f *fakeEmpRepo) WithTx(tx *sql.Tx) employee.Repository { return f }
func (f *fakeEmpRepo) Create(ctx context.Context, e *employee.Employee) error {
	return nil
}
func (f *fakeEmpRepo) FindByIDAndOrg(ctx context.Context, orgID, id string) (*employee.Employee, error) {
	return nil, nil
}
func (f *fakeEmpRepo) FindAllByOrg(ctx context.Context, orgID string, filter employee.ListFilter) ([]employee.Employee, int64, error) {
	return nil, 0, nil
}
func (f *fakeEmpRepo) FindActiveByOrg(ctx context.Context, orgID, nameSearch string) ([]employee.Employee, error) {
	if f.findActiveByOrgFn != nil {
		return f.findActiveByOrgFn(ctx, orgID, nameSearch)
	}
	return nil, nil
}
func (f *fakeEmpRepo) FindByOrg(ctx context.Context, orgID, nameSearch string) ([]employee.Employee, error) {
	if f.findByOrgFn != nil {
		return f.findByOrgFn(ctx, orgID, nameSearch)
	}
	return nil, nil
}
func (f *fakeEmpRepo) Update(ctx context.Context, e *employee.Employee) error { return nil }
func (f *fakeEmpRepo) ExistsByPhone(ctx context.Context, orgID, phone, excludeID string) (bool, error) {
	return false, nil
}
func (f *fakeEmpRepo) ExistsByEmail(ctx context.Context, orgID, email, excludeID string) (bool, error) {
	return false, nil
}
func (f *fakeEmpRepo) CountActiveByOrg(ctx context.Context, orgID string) (int64, error) {
	if f.countActiveFn != nil {
		return f.countActiveFn(ctx, orgID)
	}
	return 0, nil
}
func (f *fakeEmpRepo) FindRecentByOrg(ctx context.Context, orgID string, limit int) ([]employee.Employee, error) {
	if f.findRecentFn != nil {
		return f.findRecentFn(ctx, orgID, limit)
	}
	return nil, nil
}

type fakeAttRepo struct {
	findByOrgAndDateRangeFn func(ctx context.Context, orgID string, from, to time.Time) ([]attendance.Attendance, error)
}

func (f *fakeAttRepo) WithTx(tx *sql.Tx) attendance.Repository                 { return f }
func (f *fakeAttRepo) Create(ctx context.Context, a *attendance.Attendance) error { return nil }
func (f *fakeAttRepo) Update(ctx context.Context, a *attendance.Attendance) error { return nil }
func (f *fakeAttRepo) FindOpenByEmployee(ctx context.Context, orgID, employeeID string) (*attendance.Attendance, error) {
	return nil, nil
}
func (f *fakeAttRepo) FindByEmployeeAndDateRange(ctx context.Context, orgID, employeeID string, from, to time.Time) ([]attendance.Attendance, error) {
	return nil, nil
}
func (f *fakeAttRepo) FindByEmployeeAndDate(ctx context.Context, orgID, employeeID string, date time.Time) (*attendance.Attendance, error) {
	return nil, nil
}
func (f *fakeAttRepo) FindPage(ctx context.Context, orgID, employeeID string, filter attendance.SummaryFilter, from, to *time.Time) ([]attendance.Attendance, int64, error) {
	return nil, 0, nil
}
func (f *fakeAttRepo) FindAllByOrg(ctx context.Context, orgID string, filter attendance.OrgFilter, from, to *time.Time) ([]attendance.Attendance, int64, error) {
	return nil, 0, nil
}
func (f *fakeAttRepo) FindByOrgAndDateRange(ctx context.Context, orgID string, from, to time.Time) ([]attendance.Attendance, error) {
	if f.findByOrgAndDateRangeFn != nil {
		return f.findByOrgAndDateRangeFn(ctx, orgID, from, to)
	}
	return nil, nil
}

type fakeLeaveRepo struct {
	findApprovedByOrgFn func(ctx context.Context, orgID string, from, to time.Time) ([]leave.Leave, error)
}

func (f *fakeLeaveRepo) WithTx(tx *sql.Tx) leave.Repository              { return f }
func (f *fakeLeaveRepo) Create(ctx context.Context, l *leave.Leave) error { return nil }
func (f *fakeLeaveRepo) Update(ctx context.Context, l *leave.Leave) error { return nil }
func (f *fakeLeaveRepo) FindByIDAndOrg(ctx context.Context, orgID, id string) (*leave.Leave, error) {
	return nil, nil
}
func (f *fakeLeaveRepo) FindByEmployee(ctx context.Context, orgID, employeeID string, filter leave.ListFilter) ([]leave.Leave, int64, error) {
	return nil, 0, nil
}
func (f *fakeLeaveRepo) FindAllByOrg(ctx context.Context, orgID string, filter leave.ListFilter) ([]leave.Leave, int64, error) {
	return nil, 0, nil
}
func (f *fakeLeaveRepo) HasOverlap(ctx context.Context, orgID, employeeID string, from, to time.Time) (bool, error) {
	return false, nil
}
func (f *fakeLeaveRepo) FindApprovedByEmployeeAndRange(ctx context.Context, orgID, employeeID string, from, to time.Time) ([]leave.Leave, error) {
	return nil, nil
}
func (f *fakeLeaveRepo) FindApprovedByOrgAndRange(ctx context.Context, orgID string, from, to time.Time) ([]leave.Leave, error) {
	if f.findApprovedByOrgFn != nil {
		return f.findApprovedByOrgFn(ctx, orgID, from, to)
	}
	return nil, nil
}
func (f *fakeLeaveRepo) CreateType(ctx context.Context, t *leave.LeaveType) error { return nil }
func (f *fakeLeaveRepo) UpdateType(ctx context.Context, t *leave.LeaveType) error { return nil }
func (f *fakeLeaveRepo) FindTypeByIDAndOrg(ctx context.Context, orgID, id string) (*leave.LeaveType, error) {
	return nil, nil
}
func (f *fakeLeaveRepo) FindTypesByOrg(ctx context.Context, orgID string) ([]leave.LeaveType, error) {
	return nil, nil
}
func (f *fakeLeaveRepo) TypeCodeExists(ctx context.Context, orgID, code, excludeID string) (bool, error) {
	return false, nil
}
func (f *fakeLeaveRepo) FindBalance(ctx context.Context, orgID, employeeID, leaveTypeID string) (*leave.LeaveBalance, error) {
	return nil, nil
}
func (f *fakeLeaveRepo) FindBalancesByEmployee(ctx context.Context, orgID, employeeID string) ([]leave.LeaveBalance, error) {
	return nil, nil
}
func (f *fakeLeaveRepo) AdjustBalance(ctx context.Context, orgID, employeeID, leaveTypeID string, allocatedDelta, usedDelta, remainingDelta int) error {
	return nil
}
func (f *fakeLeaveRepo) UpsertBalance(ctx context.Context, b *leave.LeaveBalance) error { return nil }

type fakeHolidaySvc struct {
	holidays []holiday.Holiday
}

func (f *fakeHolidaySvc) BulkUpload(ctx context.Context, orgID string, req holiday.BulkUploadRequest) (holiday.BulkUploadResponse, error) {
	return holiday.BulkUploadResponse{}, nil
}
func (f *fakeHolidaySvc) List(ctx context.Context, orgID string, year int) ([]holiday.HolidayResponse, error) {
	return nil, nil
}
func (f *fakeHolidaySvc) PolicyFor(ctx context.Context, orgID string) (holiday.Policy, error) {
	loc := civil.LoadLocation("Asia/Kolkata")
	return holiday.NewPolicy(time.Sunday, loc, f.holidays), nil
}
func (f *fakeHolidaySvc) PolicyForRange(ctx context.Context, orgID string, from, to time.Time) (holiday.Policy, error) {
	return f.PolicyFor(ctx, orgID)
}

type fakeOrgSvc struct {
	cfg organization.ShiftConfig
}

func (f *fakeOrgSvc) GetSettings(ctx context.Context, orgID string) (organization.SettingsResponse, error) {
	return organization.SettingsResponse{}, nil
}
func (f *fakeOrgSvc) UpdateSettings(ctx context.Context, orgID string, req organization.UpdateSettingsRequest) (organization.SettingsResponse, error) {
	return organization.SettingsResponse{}, nil
}
func (f *fakeOrgSvc) ToggleRegularization(ctx context.Context, orgID string) (organization.SettingsResponse, error) {
	return organization.SettingsResponse{}, nil
}
func (f *fakeOrgSvc) GetShiftConfig(ctx context.Context, orgID string) (organization.ShiftConfig, bool, error) {
	return f.cfg, true, nil
}

func reportShiftConfig() organization.ShiftConfig {
	return organization.ShiftConfig{
		ShiftStart:   "09:30",
		HalfDayHours: 4,
		WeeklyOffDay: time.Sunday,
		Timezone:     "Asia/Kolkata",
	}
}

func newReportService(
	emp *fakeEmpRepo,
	att *fakeAttRepo,
	lv *fakeLeaveRepo,
	hol *fakeHolidaySvc,
	now func() time.Time,
) report.Service {
	if now == nil {
		now = time.Now
	}
	return report.NewServiceWithClock(emp, att, lv, hol, &fakeOrgSvc{cfg: reportShiftConfig()}, now)
}

// fullMonthAttendance makes a 09:00-18:00 punch pair on every non-Sunday day
// of March 2026 for one employee.
func fullMonthAttendance(empID, orgID uuid.UUID, loc *time.Location) []attendance.Attendance {
	var rows []attendance.Attendance
	for d := 1; d <= 31; d++ {
		day := time.Date(2026, 3, d, 0, 0, 0, 0, loc)
		if day.Weekday() == time.Sunday {
			continue
		}
		out := time.Date(2026, 3, d, 18, 0, 0, 0, loc)
		rows = append(rows, attendance.Attendance{
			ID:         uuid.New(),
			OrgID:      orgID,
			EmployeeID: empID,
			Date:       day,
			PunchIn:    time.Date(2026, 3, d, 9, 0, 0, 0, loc),
			PunchOut:   &out,
			Status:     attendance.StatusPresent,
		})
	}
	return rows
}

func TestCustomReport_MarchFullAttendance(t *testing.T) {
	loc := civil.LoadLocation("Asia/Kolkata")
	orgID := uuid.New()
	empID := uuid.New()

	emp := &fakeEmpRepo{
		findActiveByOrgFn: func(ctx context.Context, _, _ string) ([]employee.Employee, error) {
			return []employee.Employee{{ID: empID, OrgID: orgID, Name: "Asha", EmployeeCode: "EMP-0001", Status: employee.StatusActive}}, nil
		},
	}
	att := &fakeAttRepo{
		findByOrgAndDateRangeFn: func(ctx context.Context, _ string, _, _ time.Time) ([]attendance.Attendance, error) {
			return fullMonthAttendance(empID, orgID, loc), nil
		},
	}

	svc := newReportService(emp, att, &fakeLeaveRepo{}, &fakeHolidaySvc{}, nil)

	rep, err := svc.Custom(context.Background(), orgID.String(), report.CustomRangeRequest{Month: 3, Year: 2026})
	require.NoError(t, err)

	// March 2026 has five Sundays, leaving 26 working days.
	assert.Equal(t, 26, rep.TotalWorkingDays)
	require.Len(t, rep.Rows, 1)
	assert.Equal(t, 26, rep.Rows[0].Present)
	assert.Equal(t, 0, rep.Rows[0].Absent)
	assert.Equal(t, "100%", rep.Rows[0].AttendancePercentage)
	assert.Equal(t, 1, rep.EmployeesWithFullAttendance)
	assert.Equal(t, 26, rep.DaysWithFullAttendance)
}

func TestCustomReport_PercentageAndTallies(t *testing.T) {
	loc := civil.LoadLocation("Asia/Kolkata")
	orgID := uuid.New()
	empID := uuid.New()

	emp := &fakeEmpRepo{
		findActiveByOrgFn: func(ctx context.Context, _, _ string) ([]employee.Employee, error) {
			return []employee.Employee{{ID: empID, OrgID: orgID, Name: "Ravi", EmployeeCode: "EMP-0002", Status: employee.StatusActive}}, nil
		},
	}
	// One late full day, one half day, the rest of the month unrecorded.
	att := &fakeAttRepo{
		findByOrgAndDateRangeFn: func(ctx context.Context, _ string, _, _ time.Time) ([]attendance.Attendance, error) {
			lateOut := time.Date(2026, 3, 2, 19, 0, 0, 0, loc)
			halfOut := time.Date(2026, 3, 3, 11, 0, 0, 0, loc)
			return []attendance.Attendance{
				{
					ID: uuid.New(), OrgID: orgID, EmployeeID: empID,
					Date:    time.Date(2026, 3, 2, 0, 0, 0, 0, loc),
					PunchIn: time.Date(2026, 3, 2, 10, 0, 0, 0, loc), PunchOut: &lateOut,
					Status: attendance.StatusPresent,
				},
				{
					ID: uuid.New(), OrgID: orgID, EmployeeID: empID,
					Date:    time.Date(2026, 3, 3, 0, 0, 0, 0, loc),
					PunchIn: time.Date(2026, 3, 3, 9, 0, 0, 0, loc), PunchOut: &halfOut,
					Status: attendance.StatusPresent,
				},
			}, nil
		},
	}
	// Approved leave covering two working days.
	lv := &fakeLeaveRepo{
		findApprovedByOrgFn: func(ctx context.Context, _ string, _, _ time.Time) ([]leave.Leave, error) {
			return []leave.Leave{{
				ID: uuid.New(), OrgID: orgID, EmployeeID: empID,
				FromDate: time.Date(2026, 3, 4, 0, 0, 0, 0, loc),
				ToDate:   time.Date(2026, 3, 5, 0, 0, 0, 0, loc),
				Days:     2, Status: leave.StatusApproved,
			}}, nil
		},
	}

	svc := newReportService(emp, att, lv, &fakeHolidaySvc{}, nil)

	rep, err := svc.Custom(context.Background(), orgID.String(), report.CustomRangeRequest{Month: 3, Year: 2026})
	require.NoError(t, err)

	require.Len(t, rep.Rows, 1)
	row := rep.Rows[0]
	assert.Equal(t, 2, row.Present)
	assert.Equal(t, 1, row.Late)
	assert.Equal(t, 1, row.HalfDays)
	assert.Equal(t, 2, row.OnLeave)
	assert.Equal(t, 22, row.Absent)
	// round(2/26*100) = 8
	assert.Equal(t, "8%", row.AttendancePercentage)
	assert.Equal(t, 0, rep.EmployeesWithFullAttendance)
}

func TestCustomReport_ZeroWorkingDays(t *testing.T) {
	orgID := uuid.New()
	empID := uuid.New()

	emp := &fakeEmpRepo{
		findActiveByOrgFn: func(ctx context.Context, _, _ string) ([]employee.Employee, error) {
			return []employee.Employee{{ID: empID, OrgID: orgID, Name: "Meera", Status: employee.StatusActive}}, nil
		},
	}

	svc := newReportService(emp, &fakeAttRepo{}, &fakeLeaveRepo{}, &fakeHolidaySvc{}, nil)

	// 2026-03-01 is a Sunday, so the single-day range has no working days.
	rep, err := svc.Custom(context.Background(), orgID.String(), report.CustomRangeRequest{Date: "2026-03-01"})
	require.NoError(t, err)

	assert.Equal(t, 0, rep.TotalWorkingDays)
	require.Len(t, rep.Rows, 1)
	assert.Equal(t, "0%", rep.Rows[0].AttendancePercentage)
	assert.Equal(t, 0, rep.EmployeesWithFullAttendance)
	assert.Equal(t, 0, rep.DaysWithFullAttendance)
}

func TestCustomReport_HolidayWindowShrinksWorkingDays(t *testing.T) {
	orgID := uuid.New()
	loc := civil.LoadLocation("Asia/Kolkata")

	hol := &fakeHolidaySvc{holidays: []holiday.Holiday{{
		Name:     "Holi",
		FromDate: time.Date(2026, 3, 3, 0, 0, 0, 0, loc),
		ToDate:   time.Date(2026, 3, 4, 0, 0, 0, 0, loc),
		IsActive: true,
	}}}

	svc := newReportService(&fakeEmpRepo{}, &fakeAttRepo{}, &fakeLeaveRepo{}, hol, nil)

	rep, err := svc.Custom(context.Background(), orgID.String(), report.CustomRangeRequest{Month: 3, Year: 2026})
	require.NoError(t, err)
	assert.Equal(t, 24, rep.TotalWorkingDays)
}

func TestCustomReport_RangeValidation(t *testing.T) {
	svc := newReportService(&fakeEmpRepo{}, &fakeAttRepo{}, &fakeLeaveRepo{}, &fakeHolidaySvc{}, nil)
	orgID := uuid.New().String()

	tests := []struct {
		name string
		req  report.CustomRangeRequest
		want error
	}{
		{"no filter at all", report.CustomRangeRequest{}, reporterrors.ErrRangeRequired},
		{"month without year", report.CustomRangeRequest{Month: 3}, reporterrors.ErrMonthRequiresYear},
		{"month out of range", report.CustomRangeRequest{Month: 13, Year: 2026}, reporterrors.ErrInvalidMonth},
		{"negative month", report.CustomRangeRequest{Month: -5, Year: 2026}, reporterrors.ErrInvalidMonth},
		{"negative year with month", report.CustomRangeRequest{Month: 3, Year: -2026}, reporterrors.ErrInvalidYear},
		{"negative year alone", report.CustomRangeRequest{Year: -2026}, reporterrors.ErrInvalidYear},
		{"garbage date", report.CustomRangeRequest{Date: "03-2026"}, reporterrors.ErrInvalidReportDate},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Custom(context.Background(), orgID, tt.req)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestDailyReport_SummaryAndClamp(t *testing.T) {
	loc := civil.LoadLocation("Asia/Kolkata")
	orgID := uuid.New()
	present := uuid.New()
	onLeave := uuid.New()
	absent := uuid.New()
	inactive := uuid.New()

	emp := &fakeEmpRepo{
		findByOrgFn: func(ctx context.Context, _, _ string) ([]employee.Employee, error) {
			return []employee.Employee{
				{ID: present, Name: "Asha", EmployeeCode: "EMP-0001", Status: employee.StatusActive},
				{ID: onLeave, Name: "Ravi", EmployeeCode: "EMP-0002", Status: employee.StatusActive},
				{ID: absent, Name: "Meera", EmployeeCode: "EMP-0003", Status: employee.StatusActive},
				{ID: inactive, Name: "Kiran", EmployeeCode: "EMP-0004", Status: employee.StatusInactive},
			}, nil
		},
	}
	att := &fakeAttRepo{
		findByOrgAndDateRangeFn: func(ctx context.Context, _ string, _, _ time.Time) ([]attendance.Attendance, error) {
			out := time.Date(2026, 3, 2, 18, 0, 0, 0, loc)
			return []attendance.Attendance{{
				ID: uuid.New(), OrgID: orgID, EmployeeID: present,
				Date:    time.Date(2026, 3, 2, 0, 0, 0, 0, loc),
				PunchIn: time.Date(2026, 3, 2, 9, 0, 0, 0, loc), PunchOut: &out,
				Status: attendance.StatusPresent, PunchInAddress: "HQ",
			}}, nil
		},
	}
	lv := &fakeLeaveRepo{
		findApprovedByOrgFn: func(ctx context.Context, _ string, _, _ time.Time) ([]leave.Leave, error) {
			return []leave.Leave{{
				ID: uuid.New(), OrgID: orgID, EmployeeID: onLeave,
				FromDate: time.Date(2026, 3, 2, 0, 0, 0, 0, loc),
				ToDate:   time.Date(2026, 3, 2, 0, 0, 0, 0, loc),
				Days:     1, Status: leave.StatusApproved,
			}}, nil
		},
	}

	svc := newReportService(emp, att, lv, &fakeHolidaySvc{}, nil)

	rep, err := svc.Daily(context.Background(), orgID.String(), "2026-03-02", "")
	require.NoError(t, err)

	// Inactive staff stay visible in the rows but out of the summary.
	require.Len(t, rep.Rows, 4)
	assert.Equal(t, 3, rep.Summary.TotalEmployees)
	assert.Equal(t, 1, rep.Summary.Present)
	assert.Equal(t, 1, rep.Summary.OnLeave)
	assert.Equal(t, 1, rep.Summary.Absent)

	byName := make(map[string]report.DailyReportRow, len(rep.Rows))
	for _, r := range rep.Rows {
		byName[r.EmployeeName] = r
	}
	assert.Equal(t, report.StatusPresent, byName["Asha"].Status)
	assert.Equal(t, "9h 0m", byName["Asha"].TotalHours)
	assert.Equal(t, "HQ", byName["Asha"].Address)
	assert.Equal(t, report.StatusOnLeave, byName["Ravi"].Status)
	assert.Equal(t, report.StatusAbsent, byName["Meera"].Status)
	assert.Equal(t, employee.StatusInactive, byName["Kiran"].EmployeeStatus)
}

func TestDailyReport_NonWorkingDay(t *testing.T) {
	orgID := uuid.New()
	emp := &fakeEmpRepo{
		findByOrgFn: func(ctx context.Context, _, _ string) ([]employee.Employee, error) {
			return []employee.Employee{{ID: uuid.New(), Name: "Asha", Status: employee.StatusActive}}, nil
		},
	}

	svc := newReportService(emp, &fakeAttRepo{}, &fakeLeaveRepo{}, &fakeHolidaySvc{}, nil)

	// Sunday: everyone classifies as Holiday and nobody counts absent.
	rep, err := svc.Daily(context.Background(), orgID.String(), "2026-03-01", "")
	require.NoError(t, err)

	require.Len(t, rep.Rows, 1)
	assert.Equal(t, report.StatusHoliday, rep.Rows[0].Status)
	assert.Equal(t, 0, rep.Summary.Present)
	assert.Equal(t, 0, rep.Summary.Absent)
}

func TestDailyReport_BadDate(t *testing.T) {
	svc := newReportService(&fakeEmpRepo{}, &fakeAttRepo{}, &fakeLeaveRepo{}, &fakeHolidaySvc{}, nil)

	_, err := svc.Daily(context.Background(), uuid.New().String(), "yesterday", "")
	assert.ErrorIs(t, err, reporterrors.ErrInvalidReportDate)
}

func TestDashboard_Summary(t *testing.T) {
	loc := civil.LoadLocation("Asia/Kolkata")
	orgID := uuid.New()
	a := uuid.New()
	b := uuid.New()
	joined := time.Date(2026, 2, 10, 0, 0, 0, 0, loc)

	emp := &fakeEmpRepo{
		countActiveFn: func(ctx context.Context, _ string) (int64, error) { return 12, nil },
		findRecentFn: func(ctx context.Context, _ string, limit int) ([]employee.Employee, error) {
			assert.Equal(t, 5, limit)
			return []employee.Employee{{ID: a, Name: "Asha", Designation: "Engineer", JoiningDate: &joined}}, nil
		},
	}
	att := &fakeAttRepo{
		findByOrgAndDateRangeFn: func(ctx context.Context, _ string, _, _ time.Time) ([]attendance.Attendance, error) {
			now := time.Date(2026, 3, 2, 9, 0, 0, 0, loc)
			return []attendance.Attendance{
				{ID: uuid.New(), EmployeeID: a, PunchIn: now, Status: attendance.StatusPresent},
				// a second record for the same employee must not double-count
				{ID: uuid.New(), EmployeeID: a, PunchIn: now, Status: attendance.StatusPresent},
				// force-closed records never count as present
				{ID: uuid.New(), EmployeeID: b, PunchIn: now, Status: attendance.StatusAbsent},
			}, nil
		},
	}
	lv := &fakeLeaveRepo{
		findApprovedByOrgFn: func(ctx context.Context, _ string, _, _ time.Time) ([]leave.Leave, error) {
			return []leave.Leave{{ID: uuid.New(), EmployeeID: b, Status: leave.StatusApproved}}, nil
		},
	}

	now := func() time.Time { return time.Date(2026, 3, 2, 10, 0, 0, 0, loc) }
	svc := newReportService(emp, att, lv, &fakeHolidaySvc{}, now)

	sum, err := svc.Dashboard(context.Background(), orgID.String())
	require.NoError(t, err)

	assert.Equal(t, 12, sum.TotalEmployees)
	assert.Equal(t, 1, sum.PresentToday)
	assert.Equal(t, 1, sum.OnLeaveToday)
	require.Len(t, sum.Recent, 1)
	assert.Equal(t, "Asha", sum.Recent[0].Name)
	assert.Equal(t, "2026-02-10", sum.Recent[0].JoinedAt)
}
