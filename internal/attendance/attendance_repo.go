package attendance

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"gorm.io/gorm"
)

type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, a *Attendance) error
	Update(ctx context.Context, a *Attendance) error
	// FindOpenByEmployee returns the employee's record with no punch-out,
	// or nil when none exists.
	FindOpenByEmployee(ctx context.Context, orgID, employeeID string) (*Attendance, error)
	FindByEmployeeAndDateRange(ctx context.Context, orgID, employeeID string, from, to time.Time) ([]Attendance, error)
	FindByEmployeeAndDate(ctx context.Context, orgID, employeeID string, date time.Time) (*Attendance, error)
	FindPage(ctx context.Context, orgID, employeeID string, filter SummaryFilter, from, to *time.Time) ([]Attendance, int64, error)
	FindAllByOrg(ctx context.Context, orgID string, filter OrgFilter, from, to *time.Time) ([]Attendance, int64, error)
	FindByOrgAndDateRange(ctx context.Context, orgID string, from, to time.Time) ([]Attendance, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	db := r.db.Session(&gorm.Session{NewDB: true})
	db.Statement.ConnPool = tx
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, a *Attendance) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *repository) Update(ctx context.Context, a *Attendance) error {
	return r.db.WithContext(ctx).Save(a).Error
}

func (r *repository) FindOpenByEmployee(ctx context.Context, orgID, employeeID string) (*Attendance, error) {
	var a Attendance
	err := r.db.WithContext(ctx).
		Where("org_id = ?", orgID).
		Where("employee_id = ?", employeeID).
		Where("punch_out IS NULL").
		Order("punch_in DESC").
		First(&a).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *repository) FindByEmployeeAndDateRange(ctx context.Context, orgID, employeeID string, from, to time.Time) ([]Attendance, error) {
	var rows []Attendance
	err := r.db.WithContext(ctx).
		Where("org_id = ?", orgID).
		Where("employee_id = ?", employeeID).
		Where("date >= ? AND date <= ?", from, to).
		Order("date ASC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindByEmployeeAndDate(ctx context.Context, orgID, employeeID string, date time.Time) (*Attendance, error) {
	var a Attendance
	err := r.db.WithContext(ctx).
		Where("org_id = ?", orgID).
		Where("employee_id = ?", employeeID).
		Where("date = ?", date).
		Order("punch_in DESC").
		First(&a).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *repository) FindPage(ctx context.Context, orgID, employeeID string, filter SummaryFilter, from, to *time.Time) ([]Attendance, int64, error) {
	q := r.db.WithContext(ctx).
		Model(&Attendance{}).
		Where("org_id = ?", orgID).
		Where("employee_id = ?", employeeID)

	if from != nil {
		q = q.Where("date >= ?", *from)
	}
	if to != nil {
		q = q.Where("date <= ?", *to)
	}
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []Attendance
	err := q.
		Order("punch_in DESC").
		Offset((filter.Page - 1) * filter.Limit).
		Limit(filter.Limit).
		Find(&rows).Error
	return rows, total, err
}

func (r *repository) FindAllByOrg(ctx context.Context, orgID string, filter OrgFilter, from, to *time.Time) ([]Attendance, int64, error) {
	q := r.db.WithContext(ctx).
		Model(&Attendance{}).
		Where("attendances.org_id = ?", orgID)

	if filter.EmployeeID != "" {
		q = q.Where("attendances.employee_id = ?", filter.EmployeeID)
	}
	if filter.Status != "" {
		q = q.Where("attendances.status = ?", filter.Status)
	}
	if from != nil {
		q = q.Where("attendances.date >= ?", *from)
	}
	if to != nil {
		q = q.Where("attendances.date <= ?", *to)
	}
	if filter.Search != "" {
		q = q.Joins("JOIN employees ON employees.id = attendances.employee_id").
			Where("employees.name ILIKE ?", "%"+filter.Search+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []Attendance
	err := q.
		Preload("Employee").
		Order("attendances.punch_in DESC").
		Offset((filter.Page - 1) * filter.Limit).
		Limit(filter.Limit).
		Find(&rows).Error
	return rows, total, err
}

func (r *repository) FindByOrgAndDateRange(ctx context.Context, orgID string, from, to time.Time) ([]Attendance, error) {
	var rows []Attendance
	err := r.db.WithContext(ctx).
		Where("org_id = ?", orgID).
		Where("date >= ? AND date <= ?", from, to).
		Order("date ASC").
		Find(&rows).Error
	return rows, err
}
