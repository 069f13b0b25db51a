package regularization

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/tech1210/empthics-backend/internal/attendance"
	"github.com/tech1210/empthics-backend/internal/organization"
	regularizationerrors "github.com/tech1210/empthics-backend/internal/regularization/errors"
	"github.com/tech1210/empthics-backend/internal/shared/civil"
	"github.com/tech1210/empthics-backend/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	ActionAccept = "Accept"
	ActionReject = "Reject"
)

type Service interface {
	Create(ctx context.Context, orgID, employeeID string, req CreateRequest) (RequestResponse, error)
	MyRequests(ctx context.Context, orgID, employeeID string, filter ListFilter) ([]RequestResponse, int64, error)
	ListOrgRequests(ctx context.Context, orgID string, filter ListFilter) ([]RequestResponse, int64, error)
	Review(ctx context.Context, orgID, reviewerID, requestID string, req ReviewRequest) (RequestResponse, error)
}

type service struct {
	db      *sql.DB
	repo    Repository
	attRepo attendance.Repository
	orgSvc  organization.Service
	now     func() time.Time
	logger  *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	attRepo attendance.Repository,
	orgSvc organization.Service,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("regularization.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("regularization.service")
	}
	return &service{db: db, repo: repo, attRepo: attRepo, orgSvc: orgSvc, now: time.Now, logger: l}
}

func (s *service) Create(ctx context.Context, orgID, employeeID string, req CreateRequest) (RequestResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	cfg, enabled, err := s.orgSvc.GetShiftConfig(ctx, orgID)
	if err != nil {
		return RequestResponse{}, err
	}
	if !enabled {
		return RequestResponse{}, regularizationerrors.ErrRegularizationDisabled
	}
	loc := civil.LoadLocation(cfg.Timezone)

	date, err := civil.ParseDate(req.Date, loc)
	if err != nil {
		return RequestResponse{}, regularizationerrors.ErrInvalidRequestDate
	}

	reqIn, err := civil.AtTimeOfDay(date, req.RequestedPunchIn, loc)
	if err != nil {
		return RequestResponse{}, regularizationerrors.ErrInvalidRequestedTimes
	}
	reqOut, err := civil.AtTimeOfDay(date, req.RequestedPunchOut, loc)
	if err != nil {
		return RequestResponse{}, regularizationerrors.ErrInvalidRequestedTimes
	}
	if !reqOut.After(reqIn) {
		return RequestResponse{}, regularizationerrors.ErrInvalidRequestedTimes
	}

	if pending, err := s.repo.HasPendingForDate(ctx, orgID, employeeID, date); err != nil {
		return RequestResponse{}, err
	} else if pending {
		return RequestResponse{}, regularizationerrors.ErrPendingRequestExists
	}

	row := &Request{
		ID:                uuid.New(),
		OrgID:             uuid.MustParse(orgID),
		EmployeeID:        uuid.MustParse(employeeID),
		Date:              date,
		Reason:            strings.TrimSpace(req.Reason),
		RequestedPunchIn:  reqIn,
		RequestedPunchOut: reqOut,
		Status:            StatusPending,
	}

	// Snapshot whatever the ledger has for that day, if anything.
	att, err := s.attRepo.FindByEmployeeAndDate(ctx, orgID, employeeID, date)
	if err != nil {
		return RequestResponse{}, err
	}
	if att != nil {
		attID := att.ID
		row.AttendanceID = &attID
		in := att.PunchIn
		row.OriginalPunchIn = &in
		row.OriginalPunchOut = att.PunchOut
	}

	if err := s.repo.Create(ctx, row); err != nil {
		s.logger.Error("create regularization persist failed", zap.String("request_id", rid), zap.Error(err))
		return RequestResponse{}, err
	}

	s.logger.Info("regularization requested",
		zap.String("request_id", rid),
		zap.String("employee_id", employeeID),
		zap.String("date", req.Date),
	)
	return mapToResponse(*row, loc), nil
}

func (s *service) MyRequests(ctx context.Context, orgID, employeeID string, filter ListFilter) ([]RequestResponse, int64, error) {
	cfg, _, err := s.orgSvc.GetShiftConfig(ctx, orgID)
	if err != nil {
		return nil, 0, err
	}
	loc := civil.LoadLocation(cfg.Timezone)

	normalizePage(&filter)
	rows, total, err := s.repo.FindByEmployee(ctx, orgID, employeeID, filter)
	if err != nil {
		return nil, 0, err
	}
	return mapToListResponse(rows, loc), total, nil
}

func (s *service) ListOrgRequests(ctx context.Context, orgID string, filter ListFilter) ([]RequestResponse, int64, error) {
	cfg, _, err := s.orgSvc.GetShiftConfig(ctx, orgID)
	if err != nil {
		return nil, 0, err
	}
	loc := civil.LoadLocation(cfg.Timezone)

	normalizePage(&filter)
	rows, total, err := s.repo.FindAllByOrg(ctx, orgID, filter)
	if err != nil {
		return nil, 0, err
	}
	return mapToListResponse(rows, loc), total, nil
}

// Review settles a pending request exactly once. Acceptance is an
// administrative override: it rewrites the referenced attendance's punch
// pair, or files a fresh Present record when the day had none, without the
// ledger's punch-gap checks.
func (s *service) Review(ctx context.Context, orgID, reviewerID, requestID string, req ReviewRequest) (RequestResponse, error) {
	cfg, _, err := s.orgSvc.GetShiftConfig(ctx, orgID)
	if err != nil {
		return RequestResponse{}, err
	}
	loc := civil.LoadLocation(cfg.Timezone)

	row, err := s.repo.FindByIDAndOrg(ctx, orgID, requestID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return RequestResponse{}, regularizationerrors.ErrRequestNotFound
		}
		return RequestResponse{}, err
	}
	if row.Status != StatusPending {
		return RequestResponse{}, regularizationerrors.ErrAlreadyReviewed
	}
	if req.Action == ActionReject && strings.TrimSpace(req.Remarks) == "" {
		return RequestResponse{}, regularizationerrors.ErrRemarksRequired
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return RequestResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	attTx := s.attRepo.WithTx(tx)

	reviewedAt := s.now().UTC()
	reviewer := uuid.MustParse(reviewerID)
	row.ReviewedBy = &reviewer
	row.ReviewedAt = &reviewedAt
	row.Remarks = req.Remarks

	if req.Action == ActionAccept {
		row.Status = StatusAccepted

		if err := s.applyToLedger(ctx, attTx, row, loc); err != nil {
			s.logger.Error("apply regularization to ledger failed",
				zap.String("regularization_id", requestID),
				zap.Error(err),
			)
			return RequestResponse{}, err
		}
	} else {
		row.Status = StatusRejected
	}

	if err := qtx.Update(ctx, row); err != nil {
		return RequestResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		return RequestResponse{}, err
	}

	s.logger.Info("regularization reviewed",
		zap.String("regularization_id", requestID),
		zap.String("status", row.Status),
		zap.String("reviewed_by", reviewerID),
	)
	return mapToResponse(*row, loc), nil
}

func (s *service) applyToLedger(ctx context.Context, attRepo attendance.Repository, row *Request, loc *time.Location) error {
	reqOut := row.RequestedPunchOut

	if row.AttendanceID != nil {
		att, err := attRepo.FindByEmployeeAndDate(ctx, row.OrgID.String(), row.EmployeeID.String(), row.Date)
		if err != nil {
			return err
		}
		if att != nil {
			att.PunchIn = row.RequestedPunchIn
			att.PunchOut = &reqOut
			att.Status = attendance.StatusPresent
			return attRepo.Update(ctx, att)
		}
	}

	return attRepo.Create(ctx, &attendance.Attendance{
		ID:         uuid.New(),
		OrgID:      row.OrgID,
		EmployeeID: row.EmployeeID,
		Date:       civil.DayStart(row.Date, loc),
		PunchIn:    row.RequestedPunchIn,
		PunchOut:   &reqOut,
		Status:     attendance.StatusPresent,
	})
}

func normalizePage(filter *ListFilter) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.Limit <= 0 || filter.Limit > 100 {
		filter.Limit = 20
	}
}

func mapToResponse(r Request, loc *time.Location) RequestResponse {
	resp := RequestResponse{
		ID:                r.ID.String(),
		EmployeeID:        r.EmployeeID.String(),
		Date:              r.Date.In(loc).Format(civil.DateLayout),
		Reason:            r.Reason,
		OriginalPunchIn:   civil.FormatClock(r.OriginalPunchIn, loc),
		OriginalPunchOut:  civil.FormatClock(r.OriginalPunchOut, loc),
		RequestedPunchIn:  r.RequestedPunchIn.In(loc).Format("15:04"),
		RequestedPunchOut: r.RequestedPunchOut.In(loc).Format("15:04"),
		Status:            r.Status,
		Remarks:           r.Remarks,
	}
	if r.Employee != nil {
		resp.EmployeeName = r.Employee.Name
	}

	if r.OriginalPunchIn != nil && r.OriginalPunchOut != nil {
		resp.OriginalHours = civil.FormatDuration(civil.MinutesBetween(*r.OriginalPunchIn, *r.OriginalPunchOut))
	} else {
		resp.OriginalHours = "0h 0m"
	}
	resp.RequestedHours = civil.FormatDuration(civil.MinutesBetween(r.RequestedPunchIn, r.RequestedPunchOut))

	return resp
}

func mapToListResponse(rows []Request, loc *time.Location) []RequestResponse {
	resp := make([]RequestResponse, 0, len(rows))
	for _, r := range rows {
		resp = append(resp, mapToResponse(r, loc))
	}
	return resp
}
