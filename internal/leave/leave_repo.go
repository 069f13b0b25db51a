package leave

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"gorm.io/gorm"
)

type Repository interface {
	WithTx(tx *sql.Tx) Repository

	Create(ctx context.Context, l *Leave) error
	Update(ctx context.Context, l *Leave) error
	FindByIDAndOrg(ctx context.Context, orgID, id string) (*Leave, error)
	FindByEmployee(ctx context.Context, orgID, employeeID string, filter ListFilter) ([]Leave, int64, error)
	FindAllByOrg(ctx context.Context, orgID string, filter ListFilter) ([]Leave, int64, error)
	// HasOverlap reports whether a non-rejected leave of the employee
	// intersects [from, to].
	HasOverlap(ctx context.Context, orgID, employeeID string, from, to time.Time) (bool, error)
	FindApprovedByEmployeeAndRange(ctx context.Context, orgID, employeeID string, from, to time.Time) ([]Leave, error)
	FindApprovedByOrgAndRange(ctx context.Context, orgID string, from, to time.Time) ([]Leave, error)

	CreateType(ctx context.Context, t *LeaveType) error
	UpdateType(ctx context.Context, t *LeaveType) error
	FindTypeByIDAndOrg(ctx context.Context, orgID, id string) (*LeaveType, error)
	FindTypesByOrg(ctx context.Context, orgID string) ([]LeaveType, error)
	TypeCodeExists(ctx context.Context, orgID, code, excludeID string) (bool, error)

	FindBalance(ctx context.Context, orgID, employeeID, leaveTypeID string) (*LeaveBalance, error)
	FindBalancesByEmployee(ctx context.Context, orgID, employeeID string) ([]LeaveBalance, error)
	// AdjustBalance applies explicit increments; it never recomputes.
	AdjustBalance(ctx context.Context, orgID, employeeID, leaveTypeID string, allocatedDelta, usedDelta, remainingDelta int) error
	UpsertBalance(ctx context.Context, b *LeaveBalance) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// WithTx returns a repository whose statements run on tx, so balance
// movement and status change commit or roll back together.
func (r *repository) WithTx(tx *sql.Tx) Repository {
	db := r.db.Session(&gorm.Session{NewDB: true})
	db.Statement.ConnPool = tx
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, l *Leave) error {
	return r.db.WithContext(ctx).Create(l).Error
}

func (r *repository) Update(ctx context.Context, l *Leave) error {
	return r.db.WithContext(ctx).Save(l).Error
}

func (r *repository) FindByIDAndOrg(ctx context.Context, orgID, id string) (*Leave, error) {
	var l Leave
	err := r.db.WithContext(ctx).
		Preload("LeaveType").
		Preload("Employee").
		Where("org_id = ?", orgID).
		First(&l, "id = ?", id).Error
	return &l, err
}

func (r *repository) FindByEmployee(ctx context.Context, orgID, employeeID string, filter ListFilter) ([]Leave, int64, error) {
	q := r.db.WithContext(ctx).
		Model(&Leave{}).
		Where("org_id = ?", orgID).
		Where("employee_id = ?", employeeID)
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []Leave
	err := q.
		Preload("LeaveType").
		Order("from_date DESC").
		Offset((filter.Page - 1) * filter.Limit).
		Limit(filter.Limit).
		Find(&rows).Error
	return rows, total, err
}

func (r *repository) FindAllByOrg(ctx context.Context, orgID string, filter ListFilter) ([]Leave, int64, error) {
	q := r.db.WithContext(ctx).
		Model(&Leave{}).
		Where("org_id = ?", orgID)
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.EmployeeID != "" {
		q = q.Where("employee_id = ?", filter.EmployeeID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []Leave
	err := q.
		Preload("LeaveType").
		Preload("Employee").
		Order("created_at DESC").
		Offset((filter.Page - 1) * filter.Limit).
		Limit(filter.Limit).
		Find(&rows).Error
	return rows, total, err
}

func (r *repository) HasOverlap(ctx context.Context, orgID, employeeID string, from, to time.Time) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&Leave{}).
		Where("org_id = ?", orgID).
		Where("employee_id = ?", employeeID).
		Where("status <> ?", StatusRejected).
		Where("from_date <= ? AND to_date >= ?", to, from).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) FindApprovedByEmployeeAndRange(ctx context.Context, orgID, employeeID string, from, to time.Time) ([]Leave, error) {
	var rows []Leave
	err := r.db.WithContext(ctx).
		Where("org_id = ?", orgID).
		Where("employee_id = ?", employeeID).
		Where("status = ?", StatusApproved).
		Where("from_date <= ? AND to_date >= ?", to, from).
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindApprovedByOrgAndRange(ctx context.Context, orgID string, from, to time.Time) ([]Leave, error) {
	var rows []Leave
	err := r.db.WithContext(ctx).
		Where("org_id = ?", orgID).
		Where("status = ?", StatusApproved).
		Where("from_date <= ? AND to_date >= ?", to, from).
		Find(&rows).Error
	return rows, err
}

func (r *repository) CreateType(ctx context.Context, t *LeaveType) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *repository) UpdateType(ctx context.Context, t *LeaveType) error {
	return r.db.WithContext(ctx).Save(t).Error
}

func (r *repository) FindTypeByIDAndOrg(ctx context.Context, orgID, id string) (*LeaveType, error) {
	var t LeaveType
	err := r.db.WithContext(ctx).
		Where("org_id = ?", orgID).
		First(&t, "id = ?", id).Error
	return &t, err
}

func (r *repository) FindTypesByOrg(ctx context.Context, orgID string) ([]LeaveType, error) {
	var rows []LeaveType
	err := r.db.WithContext(ctx).
		Where("org_id = ?", orgID).
		Order("code ASC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) TypeCodeExists(ctx context.Context, orgID, code, excludeID string) (bool, error) {
	q := r.db.WithContext(ctx).
		Model(&LeaveType{}).
		Where("org_id = ?", orgID).
		Where("code = ?", code)
	if excludeID != "" {
		q = q.Where("id <> ?", excludeID)
	}
	var count int64
	err := q.Count(&count).Error
	return count > 0, err
}

func (r *repository) FindBalance(ctx context.Context, orgID, employeeID, leaveTypeID string) (*LeaveBalance, error) {
	var b LeaveBalance
	err := r.db.WithContext(ctx).
		Where("org_id = ?", orgID).
		Where("employee_id = ?", employeeID).
		Where("leave_type_id = ?", leaveTypeID).
		First(&b).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *repository) FindBalancesByEmployee(ctx context.Context, orgID, employeeID string) ([]LeaveBalance, error) {
	var rows []LeaveBalance
	err := r.db.WithContext(ctx).
		Where("org_id = ?", orgID).
		Where("employee_id = ?", employeeID).
		Find(&rows).Error
	return rows, err
}

func (r *repository) AdjustBalance(ctx context.Context, orgID, employeeID, leaveTypeID string, allocatedDelta, usedDelta, remainingDelta int) error {
	res := r.db.WithContext(ctx).Exec(`
		UPDATE leave_balances
		SET allocated = allocated + ?,
		    used = used + ?,
		    remaining = remaining + ?,
		    updated_at = now()
		WHERE org_id = ? AND employee_id = ? AND leave_type_id = ?
	`, allocatedDelta, usedDelta, remainingDelta, orgID, employeeID, leaveTypeID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) UpsertBalance(ctx context.Context, b *LeaveBalance) error {
	return r.db.WithContext(ctx).Exec(`
		INSERT INTO leave_balances (id, org_id, employee_id, leave_type_id, allocated, used, remaining, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, now(), now())
		ON CONFLICT (org_id, employee_id, leave_type_id) DO UPDATE
		SET allocated = leave_balances.allocated + EXCLUDED.allocated,
		    remaining = leave_balances.remaining + EXCLUDED.remaining,
		    updated_at = now()
	`, b.ID, b.OrgID, b.EmployeeID, b.LeaveTypeID, b.Allocated, b.Used, b.Remaining).Error
}
