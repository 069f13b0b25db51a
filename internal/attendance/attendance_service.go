package attendance

import (
	"context"
	"database/sql"
	"time"

	attendanceerrors "github.com/tech1210/empthics-backend/internal/attendance/errors"
	"github.com/tech1210/empthics-backend/internal/organization"
	"github.com/tech1210/empthics-backend/internal/shared/civil"
	"github.com/tech1210/empthics-backend/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// minPunchGap is the smallest allowed distance between a punch in and the
// matching punch out.
const minPunchGap = 60 * time.Second

type Service interface {
	Punch(ctx context.Context, orgID, employeeID string, req PunchRequest) (PunchResponse, error)
	Summary(ctx context.Context, orgID, employeeID string, filter SummaryFilter) (SummaryResponse, error)
	GetAll(ctx context.Context, orgID string, filter OrgFilter) ([]AttendanceResponse, int64, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	orgSvc organization.Service
	now    func() time.Time
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, orgSvc organization.Service, logger ...*zap.Logger) Service {
	l := zap.L().Named("attendance.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("attendance.service")
	}
	return &service{db: db, repo: repo, orgSvc: orgSvc, now: time.Now, logger: l}
}

// NewServiceWithClock is used by tests that need a deterministic clock.
func NewServiceWithClock(db *sql.DB, repo Repository, orgSvc organization.Service, now func() time.Time) Service {
	return &service{db: db, repo: repo, orgSvc: orgSvc, now: now, logger: zap.L().Named("attendance.service")}
}

// Punch toggles the employee's attendance state. A punch against an open
// same-day record closes it; a stale open record from an earlier day is
// force-closed as Absent before a fresh punch in is written.
func (s *service) Punch(ctx context.Context, orgID, employeeID string, req PunchRequest) (PunchResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	if req.Latitude == nil || req.Longitude == nil || req.Address == "" {
		return PunchResponse{}, attendanceerrors.ErrMissingGeolocation
	}

	cfg, _, err := s.orgSvc.GetShiftConfig(ctx, orgID)
	if err != nil {
		return PunchResponse{}, err
	}
	loc := civil.LoadLocation(cfg.Timezone)

	now := s.now().In(loc)
	punchInstant := civil.TruncateMinute(now)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("punch begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return PunchResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	open, err := qtx.FindOpenByEmployee(ctx, orgID, employeeID)
	if err != nil {
		return PunchResponse{}, err
	}

	if open != nil && civil.SameDay(open.PunchIn, now, loc) {
		if now.Sub(open.PunchIn) < minPunchGap {
			return PunchResponse{}, attendanceerrors.ErrPunchTooSoon
		}

		out := punchInstant
		open.PunchOut = &out
		open.PunchOutLat = req.Latitude
		open.PunchOutLng = req.Longitude
		open.PunchOutAddress = req.Address
		if err := qtx.Update(ctx, open); err != nil {
			s.logger.Error("punch out persist failed", zap.String("request_id", rid), zap.Error(err))
			return PunchResponse{}, err
		}
		if err := tx.Commit(); err != nil {
			return PunchResponse{}, err
		}

		s.logger.Info("employee punched out",
			zap.String("request_id", rid),
			zap.String("employee_id", employeeID),
			zap.Time("punch_out", out),
		)
		return PunchResponse{Action: "punched out", Attendance: mapToResponse(*open, loc)}, nil
	}

	if open != nil {
		// Stale open record from an earlier day. Close it as Absent with a
		// zero-length span so exactly one open record can exist.
		closedAt := open.PunchIn
		open.PunchOut = &closedAt
		open.Status = StatusAbsent
		if err := qtx.Update(ctx, open); err != nil {
			s.logger.Error("force close stale punch failed", zap.String("request_id", rid), zap.Error(err))
			return PunchResponse{}, err
		}
		s.logger.Warn("stale open attendance force closed",
			zap.String("employee_id", employeeID),
			zap.Time("punch_in", open.PunchIn),
		)
	}

	row := &Attendance{
		ID:         uuid.New(),
		OrgID:      uuid.MustParse(orgID),
		EmployeeID: uuid.MustParse(employeeID),
		Date:       civil.DayStart(now, loc),
		PunchIn:    punchInstant,
		PunchInLat:     req.Latitude,
		PunchInLng:     req.Longitude,
		PunchInAddress: req.Address,
		Status:     StatusPresent,
	}
	if err := qtx.Create(ctx, row); err != nil {
		s.logger.Error("punch in persist failed", zap.String("request_id", rid), zap.Error(err))
		return PunchResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		return PunchResponse{}, err
	}

	s.logger.Info("employee punched in",
		zap.String("request_id", rid),
		zap.String("employee_id", employeeID),
		zap.Time("punch_in", punchInstant),
	)
	return PunchResponse{Action: "punched in", Attendance: mapToResponse(*row, loc)}, nil
}

func (s *service) Summary(ctx context.Context, orgID, employeeID string, filter SummaryFilter) (SummaryResponse, error) {
	cfg, _, err := s.orgSvc.GetShiftConfig(ctx, orgID)
	if err != nil {
		return SummaryResponse{}, err
	}
	loc := civil.LoadLocation(cfg.Timezone)

	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.Limit <= 0 || filter.Limit > 100 {
		filter.Limit = 20
	}

	from, to, err := parseOptionalRange(filter.FromDate, filter.ToDate, loc)
	if err != nil {
		return SummaryResponse{}, err
	}

	rows, total, err := s.repo.FindPage(ctx, orgID, employeeID, filter, from, to)
	if err != nil {
		return SummaryResponse{}, err
	}

	open, err := s.repo.FindOpenByEmployee(ctx, orgID, employeeID)
	if err != nil {
		return SummaryResponse{}, err
	}

	totalMinutes := 0
	records := make([]AttendanceResponse, 0, len(rows))
	for _, a := range rows {
		resp := mapToResponse(a, loc)
		if a.PunchOut != nil {
			totalMinutes += civil.MinutesBetween(a.PunchIn, *a.PunchOut)
		}
		records = append(records, resp)
	}

	return SummaryResponse{
		IsPunchedIn: open != nil && civil.SameDay(open.PunchIn, s.now().In(loc), loc),
		TotalHours:  civil.FormatDuration(totalMinutes),
		Total:       total,
		Page:        filter.Page,
		Limit:       filter.Limit,
		Records:     records,
	}, nil
}

func (s *service) GetAll(ctx context.Context, orgID string, filter OrgFilter) ([]AttendanceResponse, int64, error) {
	cfg, _, err := s.orgSvc.GetShiftConfig(ctx, orgID)
	if err != nil {
		return nil, 0, err
	}
	loc := civil.LoadLocation(cfg.Timezone)

	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.Limit <= 0 || filter.Limit > 100 {
		filter.Limit = 20
	}

	from, to, err := parseOptionalRange(filter.FromDate, filter.ToDate, loc)
	if err != nil {
		return nil, 0, err
	}

	rows, total, err := s.repo.FindAllByOrg(ctx, orgID, filter, from, to)
	if err != nil {
		return nil, 0, err
	}

	records := make([]AttendanceResponse, 0, len(rows))
	for _, a := range rows {
		records = append(records, mapToResponse(a, loc))
	}
	return records, total, nil
}

func parseOptionalRange(fromStr, toStr string, loc *time.Location) (*time.Time, *time.Time, error) {
	var from, to *time.Time
	if fromStr != "" {
		d, err := civil.ParseDate(fromStr, loc)
		if err != nil {
			return nil, nil, attendanceerrors.ErrInvalidDateFilter
		}
		from = &d
	}
	if toStr != "" {
		d, err := civil.ParseDate(toStr, loc)
		if err != nil {
			return nil, nil, attendanceerrors.ErrInvalidDateFilter
		}
		to = &d
	}
	return from, to, nil
}

func mapToResponse(a Attendance, loc *time.Location) AttendanceResponse {
	resp := AttendanceResponse{
		ID:         a.ID.String(),
		EmployeeID: a.EmployeeID.String(),
		Date:       a.Date.In(loc).Format(civil.DateLayout),
		PunchIn:    a.PunchIn.In(loc).Format("15:04"),
		PunchOut:   civil.FormatClock(a.PunchOut, loc),
		Status:     a.Status,
		PunchInLat:      a.PunchInLat,
		PunchInLng:      a.PunchInLng,
		PunchInAddress:  a.PunchInAddress,
		PunchOutLat:     a.PunchOutLat,
		PunchOutLng:     a.PunchOutLng,
		PunchOutAddress: a.PunchOutAddress,
	}
	if a.Employee != nil {
		resp.EmployeeName = a.Employee.Name
	}
	if a.PunchOut != nil {
		resp.HoursWorked = civil.FormatDuration(civil.MinutesBetween(a.PunchIn, *a.PunchOut))
	} else {
		resp.HoursWorked = "0h 0m"
	}
	return resp
}
