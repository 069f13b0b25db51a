package report

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/tech1210/empthics-backend/internal/attendance"
	"github.com/tech1210/empthics-backend/internal/employee"
	"github.com/tech1210/empthics-backend/internal/holiday"
	"github.com/tech1210/empthics-backend/internal/leave"
	"github.com/tech1210/empthics-backend/internal/organization"
	reporterrors "github.com/tech1210/empthics-backend/internal/report/errors"
	"github.com/tech1210/empthics-backend/internal/shared/civil"

	"go.uber.org/zap"
)

type Service interface {
	Daily(ctx context.Context, orgID, dateStr, nameSearch string) (DailyReport, error)
	Custom(ctx context.Context, orgID string, req CustomRangeRequest) (CustomReport, error)
	Dashboard(ctx context.Context, orgID string) (DashboardSummary, error)
	ExportCustomXLSX(ctx context.Context, orgID string, req CustomRangeRequest) ([]byte, string, error)
}

type service struct {
	empRepo    employee.Repository
	attRepo    attendance.Repository
	leaveRepo  leave.Repository
	holidaySvc holiday.Service
	orgSvc     organization.Service
	now        func() time.Time
	logger     *zap.Logger
}

func NewService(
	empRepo employee.Repository,
	attRepo attendance.Repository,
	leaveRepo leave.Repository,
	holidaySvc holiday.Service,
	orgSvc organization.Service,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("report.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("report.service")
	}
	return &service{
		empRepo:    empRepo,
		attRepo:    attRepo,
		leaveRepo:  leaveRepo,
		holidaySvc: holidaySvc,
		orgSvc:     orgSvc,
		now:        time.Now,
		logger:     l,
	}
}

// NewServiceWithClock pins the report clock for tests.
func NewServiceWithClock(
	empRepo employee.Repository,
	attRepo attendance.Repository,
	leaveRepo leave.Repository,
	holidaySvc holiday.Service,
	orgSvc organization.Service,
	now func() time.Time,
) Service {
	return &service{
		empRepo:    empRepo,
		attRepo:    attRepo,
		leaveRepo:  leaveRepo,
		holidaySvc: holidaySvc,
		orgSvc:     orgSvc,
		now:        now,
		logger:     zap.L().Named("report.service"),
	}
}

func (s *service) Daily(ctx context.Context, orgID, dateStr, nameSearch string) (DailyReport, error) {
	cfg, _, err := s.orgSvc.GetShiftConfig(ctx, orgID)
	if err != nil {
		return DailyReport{}, err
	}
	loc := civil.LoadLocation(cfg.Timezone)

	date := civil.DayStart(s.now(), loc)
	if dateStr != "" {
		date, err = civil.ParseDate(dateStr, loc)
		if err != nil {
			return DailyReport{}, reporterrors.ErrInvalidReportDate
		}
	}

	policy, err := s.holidaySvc.PolicyForRange(ctx, orgID, date, date)
	if err != nil {
		return DailyReport{}, err
	}

	emps, err := s.empRepo.FindByOrg(ctx, orgID, nameSearch)
	if err != nil {
		return DailyReport{}, err
	}

	atts, err := s.attRepo.FindByOrgAndDateRange(ctx, orgID, date, date)
	if err != nil {
		return DailyReport{}, err
	}
	attByEmployee := make(map[string]*attendance.Attendance, len(atts))
	for i := range atts {
		a := atts[i]
		attByEmployee[a.EmployeeID.String()] = &a
	}

	leaves, err := s.leaveRepo.FindApprovedByOrgAndRange(ctx, orgID, date, date)
	if err != nil {
		return DailyReport{}, err
	}
	onLeave := make(map[string]bool, len(leaves))
	for _, l := range leaves {
		onLeave[l.EmployeeID.String()] = true
	}

	nonWorking := policy.IsNonWorkingDay(date)

	report := DailyReport{Date: date.Format(civil.DateLayout)}
	for _, e := range emps {
		id := e.ID.String()
		att := attByEmployee[id]
		res := ClassifyDay(date, att, onLeave[id], nonWorking, cfg, loc)

		row := DailyReportRow{
			EmployeeID:     id,
			EmployeeName:   e.Name,
			EmployeeCode:   e.EmployeeCode,
			EmployeeStatus: e.Status,
			Status:         res.Status,
			InTime:         res.InTime,
			OutTime:        res.OutTime,
			TotalHours:     res.TotalHours,
		}
		if att != nil {
			row.Address = att.PunchInAddress
		}
		report.Rows = append(report.Rows, row)

		if e.Status != employee.StatusActive {
			continue
		}
		report.Summary.TotalEmployees++
		switch {
		case res.Status == StatusOnLeave:
			report.Summary.OnLeave++
		case res.Status == StatusPresent || res.Status == StatusLate || res.Status == StatusHalfDay:
			report.Summary.Present++
		}
		if res.Late {
			report.Summary.Late++
		}
		if res.HalfDay {
			report.Summary.HalfDay++
		}
	}

	absent := report.Summary.TotalEmployees - report.Summary.Present - report.Summary.OnLeave
	if absent < 0 {
		absent = 0
	}
	report.Summary.Absent = absent

	return report, nil
}

func (s *service) Custom(ctx context.Context, orgID string, req CustomRangeRequest) (CustomReport, error) {
	cfg, _, err := s.orgSvc.GetShiftConfig(ctx, orgID)
	if err != nil {
		return CustomReport{}, err
	}
	loc := civil.LoadLocation(cfg.Timezone)

	from, to, err := resolveRange(req, loc)
	if err != nil {
		return CustomReport{}, err
	}

	policy, err := s.holidaySvc.PolicyForRange(ctx, orgID, from, to)
	if err != nil {
		return CustomReport{}, err
	}

	var workingDates []time.Time
	for d := civil.DayStart(from, loc); !d.After(civil.DayStart(to, loc)); d = d.AddDate(0, 0, 1) {
		if !policy.IsNonWorkingDay(d) {
			workingDates = append(workingDates, d)
		}
	}
	totalWorkingDays := len(workingDates)

	emps, err := s.empRepo.FindActiveByOrg(ctx, orgID, "")
	if err != nil {
		return CustomReport{}, err
	}

	atts, err := s.attRepo.FindByOrgAndDateRange(ctx, orgID, from, to)
	if err != nil {
		return CustomReport{}, err
	}
	type dayKey struct {
		employee string
		day      string
	}
	attByDay := make(map[dayKey]*attendance.Attendance, len(atts))
	for i := range atts {
		a := atts[i]
		k := dayKey{a.EmployeeID.String(), civil.DayStart(a.Date, loc).Format(civil.DateLayout)}
		attByDay[k] = &a
	}

	leaves, err := s.leaveRepo.FindApprovedByOrgAndRange(ctx, orgID, from, to)
	if err != nil {
		return CustomReport{}, err
	}
	leavesByEmployee := make(map[string][]leave.Leave)
	for _, l := range leaves {
		id := l.EmployeeID.String()
		leavesByEmployee[id] = append(leavesByEmployee[id], l)
	}
	coversDay := func(employeeID string, d time.Time) bool {
		for _, l := range leavesByEmployee[employeeID] {
			if civil.CoversDay(l.FromDate, l.ToDate, d, loc) {
				return true
			}
		}
		return false
	}

	report := CustomReport{
		FromDate:         from.Format(civil.DateLayout),
		ToDate:           to.Format(civil.DateLayout),
		TotalWorkingDays: totalWorkingDays,
	}

	presentPerDay := make(map[string]int, totalWorkingDays)
	for _, e := range emps {
		id := e.ID.String()
		row := CustomReportRow{
			EmployeeID:   id,
			EmployeeName: e.Name,
			EmployeeCode: e.EmployeeCode,
		}

		for _, d := range workingDates {
			dk := d.Format(civil.DateLayout)
			if coversDay(id, d) {
				row.OnLeave++
				continue
			}
			res := ClassifyDay(d, attByDay[dayKey{id, dk}], false, false, cfg, loc)
			switch res.Status {
			case StatusAbsent:
				row.Absent++
				continue
			default:
				row.Present++
				presentPerDay[dk]++
			}
			if res.Late {
				row.Late++
			}
			if res.HalfDay {
				row.HalfDays++
			}
		}

		if totalWorkingDays == 0 {
			row.AttendancePercentage = "0%"
		} else {
			pct := math.Round(float64(row.Present) / float64(totalWorkingDays) * 100)
			row.AttendancePercentage = fmt.Sprintf("%d%%", int(pct))
		}

		if totalWorkingDays > 0 && row.Present == totalWorkingDays {
			report.EmployeesWithFullAttendance++
		}
		report.Rows = append(report.Rows, row)
	}

	for _, d := range workingDates {
		if len(emps) > 0 && presentPerDay[d.Format(civil.DateLayout)] == len(emps) {
			report.DaysWithFullAttendance++
		}
	}

	return report, nil
}

func (s *service) Dashboard(ctx context.Context, orgID string) (DashboardSummary, error) {
	cfg, _, err := s.orgSvc.GetShiftConfig(ctx, orgID)
	if err != nil {
		return DashboardSummary{}, err
	}
	loc := civil.LoadLocation(cfg.Timezone)
	today := civil.DayStart(s.now(), loc)

	total, err := s.empRepo.CountActiveByOrg(ctx, orgID)
	if err != nil {
		return DashboardSummary{}, err
	}

	atts, err := s.attRepo.FindByOrgAndDateRange(ctx, orgID, today, today)
	if err != nil {
		return DashboardSummary{}, err
	}
	seen := make(map[string]bool, len(atts))
	present := 0
	for _, a := range atts {
		id := a.EmployeeID.String()
		if !seen[id] && a.Status != attendance.StatusAbsent {
			seen[id] = true
			present++
		}
	}

	leaves, err := s.leaveRepo.FindApprovedByOrgAndRange(ctx, orgID, today, today)
	if err != nil {
		return DashboardSummary{}, err
	}
	leaveSeen := make(map[string]bool, len(leaves))
	for _, l := range leaves {
		leaveSeen[l.EmployeeID.String()] = true
	}

	recent, err := s.empRepo.FindRecentByOrg(ctx, orgID, 5)
	if err != nil {
		return DashboardSummary{}, err
	}

	summary := DashboardSummary{
		TotalEmployees: int(total),
		PresentToday:   present,
		OnLeaveToday:   len(leaveSeen),
		Recent:         make([]RecentEmployee, 0, len(recent)),
	}
	for _, e := range recent {
		re := RecentEmployee{
			ID:          e.ID.String(),
			Name:        e.Name,
			Designation: e.Designation,
		}
		if e.JoiningDate != nil {
			re.JoinedAt = e.JoiningDate.Format(civil.DateLayout)
		}
		summary.Recent = append(summary.Recent, re)
	}
	return summary, nil
}

// resolveRange turns the three accepted filter shapes into an inclusive
// civil range.
func resolveRange(req CustomRangeRequest, loc *time.Location) (time.Time, time.Time, error) {
	switch {
	case req.Date != "":
		d, err := civil.ParseDate(req.Date, loc)
		if err != nil {
			return time.Time{}, time.Time{}, reporterrors.ErrInvalidReportDate
		}
		return d, d, nil
	case req.Month != 0:
		if req.Month < 1 || req.Month > 12 {
			return time.Time{}, time.Time{}, reporterrors.ErrInvalidMonth
		}
		if req.Year < 0 {
			return time.Time{}, time.Time{}, reporterrors.ErrInvalidYear
		}
		if req.Year == 0 {
			return time.Time{}, time.Time{}, reporterrors.ErrMonthRequiresYear
		}
		from := time.Date(req.Year, time.Month(req.Month), 1, 0, 0, 0, 0, loc)
		return from, from.AddDate(0, 1, -1), nil
	case req.Year != 0:
		if req.Year < 0 {
			return time.Time{}, time.Time{}, reporterrors.ErrInvalidYear
		}
		from := time.Date(req.Year, time.January, 1, 0, 0, 0, 0, loc)
		return from, time.Date(req.Year, time.December, 31, 0, 0, 0, 0, loc), nil
	default:
		return time.Time{}, time.Time{}, reporterrors.ErrRangeRequired
	}
}
