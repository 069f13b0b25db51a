package leave

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/tech1210/empthics-backend/internal/events"
	leaveerrors "github.com/tech1210/empthics-backend/internal/leave/errors"
	"github.com/tech1210/empthics-backend/internal/messaging/kafka"
	"github.com/tech1210/empthics-backend/internal/organization"
	"github.com/tech1210/empthics-backend/internal/shared/civil"
	"github.com/tech1210/empthics-backend/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	ActionApprove = "Approve"
	ActionReject  = "Reject"
)

type Service interface {
	Apply(ctx context.Context, orgID, employeeID string, req ApplyLeaveRequest) (LeaveResponse, error)
	Decide(ctx context.Context, orgID, deciderID, leaveID string, req DecideLeaveRequest) (LeaveResponse, error)
	MyLeaves(ctx context.Context, orgID, employeeID string, filter ListFilter) ([]LeaveResponse, int64, error)
	GetAll(ctx context.Context, orgID string, filter ListFilter) ([]LeaveResponse, int64, error)
	CreateDirect(ctx context.Context, orgID string, req CreateDirectRequest) (LeaveResponse, error)

	CreateType(ctx context.Context, orgID string, req CreateLeaveTypeRequest) (LeaveTypeResponse, error)
	UpdateType(ctx context.Context, orgID, id string, req UpdateLeaveTypeRequest) (LeaveTypeResponse, error)
	ListTypes(ctx context.Context, orgID string) ([]LeaveTypeResponse, error)

	AllocateBalance(ctx context.Context, orgID string, req AllocateBalanceRequest) (BalanceResponse, error)
	MyBalances(ctx context.Context, orgID, employeeID string) ([]BalanceResponse, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	orgSvc organization.Service
	outbox kafka.OutboxRepository
	now    func() time.Time
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, orgSvc organization.Service, logger ...*zap.Logger) Service {
	return NewServiceWithOutbox(db, repo, orgSvc, nil, logger...)
}

func NewServiceWithOutbox(
	db *sql.DB,
	repo Repository,
	orgSvc organization.Service,
	outboxRepo kafka.OutboxRepository,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("leave.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leave.service")
	}
	return &service{
		db:     db,
		repo:   repo,
		orgSvc: orgSvc,
		outbox: outboxRepo,
		now:    time.Now,
		logger: l,
	}
}

func (s *service) Apply(ctx context.Context, orgID, employeeID string, req ApplyLeaveRequest) (LeaveResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	loc, err := s.orgLocation(ctx, orgID)
	if err != nil {
		return LeaveResponse{}, err
	}

	from, to, days, err := parseLeaveRange(req.FromDate, req.ToDate, loc)
	if err != nil {
		return LeaveResponse{}, err
	}

	if overlap, err := s.repo.HasOverlap(ctx, orgID, employeeID, from, to); err != nil {
		return LeaveResponse{}, err
	} else if overlap {
		return LeaveResponse{}, leaveerrors.ErrLeaveOverlap
	}

	balance, err := s.repo.FindBalance(ctx, orgID, employeeID, req.LeaveTypeID)
	if err != nil {
		return LeaveResponse{}, err
	}
	if balance == nil {
		return LeaveResponse{}, leaveerrors.ErrBalanceNotAssigned
	}
	if balance.Remaining < days {
		return LeaveResponse{}, leaveerrors.ErrInsufficientBalance
	}

	row := &Leave{
		ID:          uuid.New(),
		OrgID:       uuid.MustParse(orgID),
		EmployeeID:  uuid.MustParse(employeeID),
		LeaveTypeID: uuid.MustParse(req.LeaveTypeID),
		FromDate:    from,
		ToDate:      to,
		Days:        days,
		Reason:      req.Reason,
		Status:      StatusPending,
	}
	if err := s.repo.Create(ctx, row); err != nil {
		s.logger.Error("apply leave persist failed", zap.String("request_id", rid), zap.Error(err))
		return LeaveResponse{}, err
	}

	s.logger.Info("leave applied",
		zap.String("request_id", rid),
		zap.String("employee_id", employeeID),
		zap.String("leave_id", row.ID.String()),
		zap.Int("days", days),
	)
	return mapToResponse(*row), nil
}

// Decide approves or rejects a pending leave. Approval and the balance
// movement commit in the same transaction together with the outbox row, so
// the used/remaining counters can never drift from the decision.
func (s *service) Decide(ctx context.Context, orgID, deciderID, leaveID string, req DecideLeaveRequest) (LeaveResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	row, err := s.repo.FindByIDAndOrg(ctx, orgID, leaveID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return LeaveResponse{}, leaveerrors.ErrLeaveNotFound
		}
		return LeaveResponse{}, err
	}
	if row.Status != StatusPending {
		return LeaveResponse{}, leaveerrors.ErrLeaveAlreadyDecided
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("decide leave begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return LeaveResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	decidedAt := s.now().UTC()
	decider := uuid.MustParse(deciderID)
	row.DecidedBy = &decider
	row.DecidedAt = &decidedAt
	row.Remarks = req.Remarks

	switch req.Action {
	case ActionApprove:
		row.Status = StatusApproved
		err = qtx.AdjustBalance(ctx, orgID, row.EmployeeID.String(), row.LeaveTypeID.String(), 0, row.Days, -row.Days)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return LeaveResponse{}, leaveerrors.ErrBalanceNotAssigned
		}
		if err != nil {
			s.logger.Error("decide leave balance update failed", zap.String("leave_id", leaveID), zap.Error(err))
			return LeaveResponse{}, err
		}
	case ActionReject:
		row.Status = StatusRejected
	}

	if err := qtx.Update(ctx, row); err != nil {
		s.logger.Error("decide leave persist failed", zap.String("leave_id", leaveID), zap.Error(err))
		return LeaveResponse{}, err
	}

	if s.outbox != nil {
		event := events.LeaveDecidedEvent{
			EventType:  "leave_decided",
			LeaveID:    row.ID.String(),
			EmployeeID: row.EmployeeID.String(),
			OrgID:      orgID,
			Status:     row.Status,
			FromDate:   row.FromDate.Format(civil.DateLayout),
			ToDate:     row.ToDate.Format(civil.DateLayout),
			Days:       row.Days,
			DecidedBy:  deciderID,
			OccurredAt: decidedAt,
		}
		payload, err := json.Marshal(event)
		if err != nil {
			return LeaveResponse{}, err
		}
		if err := s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
			ID:            uuid.NewString(),
			RequestID:     rid,
			AggregateType: "leave",
			AggregateID:   row.ID.String(),
			EventType:     event.EventType,
			Topic:         events.LeaveDecidedTopic,
			Payload:       payload,
			Status:        kafka.OutboxStatusPending,
		}); err != nil {
			s.logger.Error("decide leave outbox persist failed", zap.String("leave_id", leaveID), zap.Error(err))
			return LeaveResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		return LeaveResponse{}, err
	}

	s.logger.Info("leave decided",
		zap.String("request_id", rid),
		zap.String("leave_id", leaveID),
		zap.String("status", row.Status),
		zap.String("decided_by", deciderID),
	)
	return mapToResponse(*row), nil
}

func (s *service) MyLeaves(ctx context.Context, orgID, employeeID string, filter ListFilter) ([]LeaveResponse, int64, error) {
	normalizePage(&filter)
	rows, total, err := s.repo.FindByEmployee(ctx, orgID, employeeID, filter)
	if err != nil {
		return nil, 0, err
	}
	return mapToListResponse(rows), total, nil
}

func (s *service) GetAll(ctx context.Context, orgID string, filter ListFilter) ([]LeaveResponse, int64, error) {
	normalizePage(&filter)
	rows, total, err := s.repo.FindAllByOrg(ctx, orgID, filter)
	if err != nil {
		return nil, 0, err
	}
	return mapToListResponse(rows), total, nil
}

// CreateDirect records an approved leave on the employee's behalf, moving
// the balance immediately.
func (s *service) CreateDirect(ctx context.Context, orgID string, req CreateDirectRequest) (LeaveResponse, error) {
	loc, err := s.orgLocation(ctx, orgID)
	if err != nil {
		return LeaveResponse{}, err
	}

	from, to, days, err := parseLeaveRange(req.FromDate, req.ToDate, loc)
	if err != nil {
		return LeaveResponse{}, err
	}

	if overlap, err := s.repo.HasOverlap(ctx, orgID, req.EmployeeID, from, to); err != nil {
		return LeaveResponse{}, err
	} else if overlap {
		return LeaveResponse{}, leaveerrors.ErrLeaveOverlap
	}

	balance, err := s.repo.FindBalance(ctx, orgID, req.EmployeeID, req.LeaveTypeID)
	if err != nil {
		return LeaveResponse{}, err
	}
	if balance == nil {
		return LeaveResponse{}, leaveerrors.ErrBalanceNotAssigned
	}
	if balance.Remaining < days {
		return LeaveResponse{}, leaveerrors.ErrInsufficientBalance
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return LeaveResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	row := &Leave{
		ID:          uuid.New(),
		OrgID:       uuid.MustParse(orgID),
		EmployeeID:  uuid.MustParse(req.EmployeeID),
		LeaveTypeID: uuid.MustParse(req.LeaveTypeID),
		FromDate:    from,
		ToDate:      to,
		Days:        days,
		Reason:      req.Reason,
		Status:      StatusApproved,
	}
	if err := qtx.Create(ctx, row); err != nil {
		return LeaveResponse{}, err
	}
	if err := qtx.AdjustBalance(ctx, orgID, req.EmployeeID, req.LeaveTypeID, 0, days, -days); err != nil {
		return LeaveResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		return LeaveResponse{}, err
	}

	s.logger.Info("direct leave recorded",
		zap.String("org_id", orgID),
		zap.String("employee_id", req.EmployeeID),
		zap.Int("days", days),
	)
	return mapToResponse(*row), nil
}

func (s *service) CreateType(ctx context.Context, orgID string, req CreateLeaveTypeRequest) (LeaveTypeResponse, error) {
	if exists, err := s.repo.TypeCodeExists(ctx, orgID, req.Code, ""); err != nil {
		return LeaveTypeResponse{}, err
	} else if exists {
		return LeaveTypeResponse{}, leaveerrors.ErrDuplicateLeaveTypeCode
	}

	isPaid := true
	if req.IsPaid != nil {
		isPaid = *req.IsPaid
	}
	row := &LeaveType{
		ID:          uuid.New(),
		OrgID:       uuid.MustParse(orgID),
		Code:        req.Code,
		Name:        req.Name,
		AnnualQuota: req.AnnualQuota,
		IsPaid:      isPaid,
		IsActive:    true,
	}
	if err := s.repo.CreateType(ctx, row); err != nil {
		return LeaveTypeResponse{}, err
	}

	s.logger.Info("leave type created",
		zap.String("org_id", orgID),
		zap.String("code", row.Code),
	)
	return mapTypeToResponse(*row), nil
}

func (s *service) UpdateType(ctx context.Context, orgID, id string, req UpdateLeaveTypeRequest) (LeaveTypeResponse, error) {
	row, err := s.repo.FindTypeByIDAndOrg(ctx, orgID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return LeaveTypeResponse{}, leaveerrors.ErrLeaveTypeNotFound
		}
		return LeaveTypeResponse{}, err
	}

	if req.Name != nil {
		row.Name = *req.Name
	}
	if req.AnnualQuota != nil {
		row.AnnualQuota = *req.AnnualQuota
	}
	if req.IsPaid != nil {
		row.IsPaid = *req.IsPaid
	}
	if req.IsActive != nil {
		row.IsActive = *req.IsActive
	}

	if err := s.repo.UpdateType(ctx, row); err != nil {
		return LeaveTypeResponse{}, err
	}
	return mapTypeToResponse(*row), nil
}

func (s *service) ListTypes(ctx context.Context, orgID string) ([]LeaveTypeResponse, error) {
	rows, err := s.repo.FindTypesByOrg(ctx, orgID)
	if err != nil {
		return nil, err
	}
	resp := make([]LeaveTypeResponse, 0, len(rows))
	for _, t := range rows {
		resp = append(resp, mapTypeToResponse(t))
	}
	return resp, nil
}

// AllocateBalance grants quota: allocated and remaining both move by the
// grant, used is untouched.
func (s *service) AllocateBalance(ctx context.Context, orgID string, req AllocateBalanceRequest) (BalanceResponse, error) {
	if _, err := s.repo.FindTypeByIDAndOrg(ctx, orgID, req.LeaveTypeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return BalanceResponse{}, leaveerrors.ErrLeaveTypeNotFound
		}
		return BalanceResponse{}, err
	}

	b := &LeaveBalance{
		ID:          uuid.New(),
		OrgID:       uuid.MustParse(orgID),
		EmployeeID:  uuid.MustParse(req.EmployeeID),
		LeaveTypeID: uuid.MustParse(req.LeaveTypeID),
		Allocated:   req.Quota,
		Used:        0,
		Remaining:   req.Quota,
	}
	if err := s.repo.UpsertBalance(ctx, b); err != nil {
		return BalanceResponse{}, err
	}

	current, err := s.repo.FindBalance(ctx, orgID, req.EmployeeID, req.LeaveTypeID)
	if err != nil {
		return BalanceResponse{}, err
	}
	if current == nil {
		current = b
	}

	s.logger.Info("leave balance allocated",
		zap.String("org_id", orgID),
		zap.String("employee_id", req.EmployeeID),
		zap.Int("quota", req.Quota),
	)
	return mapBalanceToResponse(*current), nil
}

func (s *service) MyBalances(ctx context.Context, orgID, employeeID string) ([]BalanceResponse, error) {
	rows, err := s.repo.FindBalancesByEmployee(ctx, orgID, employeeID)
	if err != nil {
		return nil, err
	}
	resp := make([]BalanceResponse, 0, len(rows))
	for _, b := range rows {
		resp = append(resp, mapBalanceToResponse(b))
	}
	return resp, nil
}

func (s *service) orgLocation(ctx context.Context, orgID string) (*time.Location, error) {
	cfg, _, err := s.orgSvc.GetShiftConfig(ctx, orgID)
	if err != nil {
		return nil, err
	}
	return civil.LoadLocation(cfg.Timezone), nil
}

func parseLeaveRange(fromStr, toStr string, loc *time.Location) (time.Time, time.Time, int, error) {
	from, err := civil.ParseDate(fromStr, loc)
	if err != nil {
		return time.Time{}, time.Time{}, 0, leaveerrors.ErrInvalidLeaveDates
	}
	to, err := civil.ParseDate(toStr, loc)
	if err != nil {
		return time.Time{}, time.Time{}, 0, leaveerrors.ErrInvalidLeaveDates
	}
	days := civil.DaysInclusive(from, to, loc)
	if days == 0 {
		return time.Time{}, time.Time{}, 0, leaveerrors.ErrInvalidLeaveDates
	}
	return from, to, days, nil
}

func normalizePage(filter *ListFilter) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.Limit <= 0 || filter.Limit > 100 {
		filter.Limit = 20
	}
}

func mapToResponse(l Leave) LeaveResponse {
	resp := LeaveResponse{
		ID:          l.ID.String(),
		EmployeeID:  l.EmployeeID.String(),
		LeaveTypeID: l.LeaveTypeID.String(),
		FromDate:    l.FromDate.Format(civil.DateLayout),
		ToDate:      l.ToDate.Format(civil.DateLayout),
		Days:        l.Days,
		Reason:      l.Reason,
		Status:      l.Status,
		Remarks:     l.Remarks,
	}
	if l.LeaveType != nil {
		resp.LeaveTypeName = l.LeaveType.Name
	}
	if l.Employee != nil {
		resp.EmployeeName = l.Employee.Name
	}
	return resp
}

func mapToListResponse(rows []Leave) []LeaveResponse {
	resp := make([]LeaveResponse, 0, len(rows))
	for _, l := range rows {
		resp = append(resp, mapToResponse(l))
	}
	return resp
}

func mapTypeToResponse(t LeaveType) LeaveTypeResponse {
	return LeaveTypeResponse{
		ID:          t.ID.String(),
		Code:        t.Code,
		Name:        t.Name,
		AnnualQuota: t.AnnualQuota,
		IsPaid:      t.IsPaid,
		IsActive:    t.IsActive,
	}
}

func mapBalanceToResponse(b LeaveBalance) BalanceResponse {
	return BalanceResponse{
		EmployeeID:  b.EmployeeID.String(),
		LeaveTypeID: b.LeaveTypeID.String(),
		Allocated:   b.Allocated,
		Used:        b.Used,
		Remaining:   b.Remaining,
	}
}
