package leave_test

import (
	"context"
	"database/sql"
	"encoding/json"
	"testing"
	"time"

	"github.com/tech1210/empthics-backend/internal/events"
	"github.com/tech1210/empthics-backend/internal/leave"
	leaveerrors "github.com/tech1210/empthics-backend/internal/leave/errors"
	"github.com/tech1210/empthics-backend/internal/messaging/kafka"
	"github.com/tech1210/empthics-backend/internal/organization"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type balanceDelta struct {
	allocated, used, remaining int
}

type fakeLeaveRepo struct {
	overlap     bool
	balance     *leave.LeaveBalance
	leaveRow    *leave.Leave
	findErr     error
	created     []*leave.Leave
	updated     []*leave.Leave
	adjustments []balanceDelta
	adjustErr   error
}

func (f *fakeLeaveRepo) WithTx(tx *sql.Tx) leave.Repository { return f }
func (f *fakeLeaveRepo) Create(ctx context.Context, l *leave.Leave) error {
	f.created = append(f.created, l)
	return nil
}
func (f *fakeLeaveRepo) Update(ctx context.Context, l *leave.Leave) error {
	f.updated = append(f.updated, l)
	return nil
}
func (f *fakeLeaveRepo) FindByIDAndOrg(ctx context.Context, orgID, id string) (*leave.Leave, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	return f.leaveRow, nil
}
func (f *fakeLeaveRepo) FindByEmployee(ctx context.Context, orgID, employeeID string, filter leave.ListFilter) ([]leave.Leave, int64, error) {
	return nil, 0, nil
}
func (f *fakeLeaveRepo) FindAllByOrg(ctx context.Context, orgID string, filter leave.ListFilter) ([]leave.Leave, int64, error) {
	return nil, 0, nil
}
func (f *fakeLeaveRepo) HasOverlap(ctx context.Context, orgID, employeeID string, from, to time.Time) (bool, error) {
	return f.overlap, nil
}
func (f *fakeLeaveRepo) FindApprovedByEmployeeAndRange(ctx context.Context, orgID, employeeID string, from, to time.Time) ([]leave.Leave, error) {
	return nil, nil
}
func (f *fakeLeaveRepo) FindApprovedByOrgAndRange(ctx context.Context, orgID string, from, to time.Time) ([]leave.Leave, error) {
	return nil, nil
}
func (f *fakeLeaveRepo) CreateType(ctx context.Context, t *leave.LeaveType) error { return nil }
func (f *fakeLeaveRepo) UpdateType(ctx context.Context, t *leave.LeaveType) error { return nil }
func (f *fakeLeaveRepo) FindTypeByIDAndOrg(ctx context.Context, orgID, id string) (*leave.LeaveType, error) {
	return &leave.LeaveType{}, nil
}
func (f *fakeLeaveRepo) FindTypesByOrg(ctx context.Context, orgID string) ([]leave.LeaveType, error) {
	return nil, nil
}
func (f *fakeLeaveRepo) TypeCodeExists(ctx context.Context, orgID, code, excludeID string) (bool, error) {
	return false, nil
}
func (f *fakeLeaveRepo) FindBalance(ctx context.Context, orgID, employeeID, leaveTypeID string) (*leave.LeaveBalance, error) {
	return f.balance, nil
}
func (f *fakeLeaveRepo) FindBalancesByEmployee(ctx context.Context, orgID, employeeID string) ([]leave.LeaveBalance, error) {
	return nil, nil
}
func (f *fakeLeaveRepo) AdjustBalance(ctx context.Context, orgID, employeeID, leaveTypeID string, allocatedDelta, usedDelta, remainingDelta int) error {
	if f.adjustErr != nil {
		return f.adjustErr
	}
	f.adjustments = append(f.adjustments, balanceDelta{allocatedDelta, usedDelta, remainingDelta})
	return nil
}
func (f *fakeLeaveRepo) UpsertBalance(ctx context.Context, b *leave.LeaveBalance) error { return nil }

type fakeOrgService struct{}

func (f *fakeOrgService) GetSettings(ctx context.Context, orgID string) (organization.SettingsResponse, error) {
	return organization.SettingsResponse{}, nil
}
func (f *fakeOrgService) UpdateSettings(ctx context.Context, orgID string, req organization.UpdateSettingsRequest) (organization.SettingsResponse, error) {
	return organization.SettingsResponse{}, nil
}
func (f *fakeOrgService) ToggleRegularization(ctx context.Context, orgID string) (organization.SettingsResponse, error) {
	return organization.SettingsResponse{}, nil
}
func (f *fakeOrgService) GetShiftConfig(ctx context.Context, orgID string) (organization.ShiftConfig, bool, error) {
	return organization.ShiftConfig{
		ShiftStart:   "09:30",
		HalfDayHours: 4,
		WeeklyOffDay: time.Sunday,
		Timezone:     "Asia/Kolkata",
	}, true, nil
}

type fakeOutbox struct {
	created []kafka.OutboxEvent
}

func (f *fakeOutbox) WithTx(tx *sql.Tx) kafka.OutboxRepository { return f }
func (f *fakeOutbox) Create(ctx context.Context, event kafka.OutboxEvent) error {
	f.created = append(f.created, event)
	return nil
}
func (f *fakeOutbox) ListPending(ctx context.Context, limit int) ([]kafka.OutboxEvent, error) {
	return nil, nil
}
func (f *fakeOutbox) MarkSent(ctx context.Context, id string) error           { return nil }
func (f *fakeOutbox) MarkFailed(ctx context.Context, id, reason string) error { return nil }

func TestLeaveService_Apply(t *testing.T) {
	ctx := context.Background()
	orgID := uuid.New().String()
	empID := uuid.New().String()
	typeID := uuid.New().String()

	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	baseReq := leave.ApplyLeaveRequest{
		LeaveTypeID: typeID,
		FromDate:    "2026-03-10",
		ToDate:      "2026-03-12",
		Reason:      "family function",
	}

	t.Run("creates pending leave with inclusive day count", func(t *testing.T) {
		repo := &fakeLeaveRepo{balance: &leave.LeaveBalance{Allocated: 12, Used: 2, Remaining: 10}}
		svc := leave.NewService(db, repo, &fakeOrgService{})

		resp, err := svc.Apply(ctx, orgID, empID, baseReq)
		require.NoError(t, err)

		assert.Equal(t, leave.StatusPending, resp.Status)
		assert.Equal(t, 3, resp.Days)
		require.Len(t, repo.created, 1)
		assert.Empty(t, repo.adjustments, "applying must not move the balance")
	})

	t.Run("overlap with a non-rejected leave conflicts", func(t *testing.T) {
		repo := &fakeLeaveRepo{overlap: true, balance: &leave.LeaveBalance{Remaining: 10}}
		svc := leave.NewService(db, repo, &fakeOrgService{})

		_, err := svc.Apply(ctx, orgID, empID, baseReq)
		assert.ErrorIs(t, err, leaveerrors.ErrLeaveOverlap)
	})

	t.Run("missing balance row is a validation error", func(t *testing.T) {
		repo := &fakeLeaveRepo{balance: nil}
		svc := leave.NewService(db, repo, &fakeOrgService{})

		_, err := svc.Apply(ctx, orgID, empID, baseReq)
		assert.ErrorIs(t, err, leaveerrors.ErrBalanceNotAssigned)
	})

	t.Run("insufficient remaining balance", func(t *testing.T) {
		repo := &fakeLeaveRepo{balance: &leave.LeaveBalance{Allocated: 12, Used: 10, Remaining: 2}}
		svc := leave.NewService(db, repo, &fakeOrgService{})

		_, err := svc.Apply(ctx, orgID, empID, baseReq)
		assert.ErrorIs(t, err, leaveerrors.ErrInsufficientBalance)
	})

	t.Run("inverted range rejected", func(t *testing.T) {
		repo := &fakeLeaveRepo{balance: &leave.LeaveBalance{Remaining: 10}}
		svc := leave.NewService(db, repo, &fakeOrgService{})

		req := baseReq
		req.FromDate, req.ToDate = "2026-03-12", "2026-03-10"
		_, err := svc.Apply(ctx, orgID, empID, req)
		assert.ErrorIs(t, err, leaveerrors.ErrInvalidLeaveDates)
	})
}

func TestLeaveService_Decide(t *testing.T) {
	ctx := context.Background()
	orgID := uuid.New().String()
	deciderID := uuid.New().String()

	pendingLeave := func() *leave.Leave {
		return &leave.Leave{
			ID:          uuid.New(),
			OrgID:       uuid.MustParse(orgID),
			EmployeeID:  uuid.New(),
			LeaveTypeID: uuid.New(),
			FromDate:    time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
			ToDate:      time.Date(2026, 3, 12, 0, 0, 0, 0, time.UTC),
			Days:        3,
			Status:      leave.StatusPending,
		}
	}

	t.Run("approve moves used up and remaining down by the same amount", func(t *testing.T) {
		db, sqlMock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()
		sqlMock.ExpectBegin()
		sqlMock.ExpectCommit()

		repo := &fakeLeaveRepo{leaveRow: pendingLeave()}
		outbox := &fakeOutbox{}
		svc := leave.NewServiceWithOutbox(db, repo, &fakeOrgService{}, outbox)

		resp, err := svc.Decide(ctx, orgID, deciderID, repo.leaveRow.ID.String(), leave.DecideLeaveRequest{Action: leave.ActionApprove})
		require.NoError(t, err)

		assert.Equal(t, leave.StatusApproved, resp.Status)
		require.Len(t, repo.adjustments, 1)
		assert.Equal(t, balanceDelta{allocated: 0, used: 3, remaining: -3}, repo.adjustments[0])

		require.Len(t, outbox.created, 1)
		assert.Equal(t, events.LeaveDecidedTopic, outbox.created[0].Topic)
		var evt events.LeaveDecidedEvent
		require.NoError(t, json.Unmarshal(outbox.created[0].Payload, &evt))
		assert.Equal(t, leave.StatusApproved, evt.Status)
		assert.Equal(t, 3, evt.Days)

		assert.NoError(t, sqlMock.ExpectationsWereMet())
	})

	t.Run("reject leaves the balance untouched", func(t *testing.T) {
		db, sqlMock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()
		sqlMock.ExpectBegin()
		sqlMock.ExpectCommit()

		repo := &fakeLeaveRepo{leaveRow: pendingLeave()}
		svc := leave.NewService(db, repo, &fakeOrgService{})

		resp, err := svc.Decide(ctx, orgID, deciderID, repo.leaveRow.ID.String(), leave.DecideLeaveRequest{
			Action:  leave.ActionReject,
			Remarks: "coverage too thin that week",
		})
		require.NoError(t, err)

		assert.Equal(t, leave.StatusRejected, resp.Status)
		assert.Equal(t, "coverage too thin that week", resp.Remarks)
		assert.Empty(t, repo.adjustments)
	})

	t.Run("already decided leave conflicts", func(t *testing.T) {
		db, _, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		decided := pendingLeave()
		decided.Status = leave.StatusApproved
		repo := &fakeLeaveRepo{leaveRow: decided}
		svc := leave.NewService(db, repo, &fakeOrgService{})

		_, err = svc.Decide(ctx, orgID, deciderID, decided.ID.String(), leave.DecideLeaveRequest{Action: leave.ActionReject})
		assert.ErrorIs(t, err, leaveerrors.ErrLeaveAlreadyDecided)
	})

	t.Run("unknown leave id maps to not found", func(t *testing.T) {
		db, _, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		repo := &fakeLeaveRepo{findErr: gorm.ErrRecordNotFound}
		svc := leave.NewService(db, repo, &fakeOrgService{})

		_, err = svc.Decide(ctx, orgID, deciderID, uuid.NewString(), leave.DecideLeaveRequest{Action: leave.ActionApprove})
		assert.ErrorIs(t, err, leaveerrors.ErrLeaveNotFound)
	})

	t.Run("approve without a balance row rolls back", func(t *testing.T) {
		db, sqlMock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()
		sqlMock.ExpectBegin()
		sqlMock.ExpectRollback()

		repo := &fakeLeaveRepo{leaveRow: pendingLeave(), adjustErr: gorm.ErrRecordNotFound}
		svc := leave.NewService(db, repo, &fakeOrgService{})

		_, err = svc.Decide(ctx, orgID, deciderID, repo.leaveRow.ID.String(), leave.DecideLeaveRequest{Action: leave.ActionApprove})
		assert.ErrorIs(t, err, leaveerrors.ErrBalanceNotAssigned)
		assert.Empty(t, repo.updated)
		assert.NoError(t, sqlMock.ExpectationsWereMet())
	})
}
