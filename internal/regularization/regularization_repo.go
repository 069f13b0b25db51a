package regularization

import (
	"context"
	"database/sql"
	"time"

	"gorm.io/gorm"
)

type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, r *Request) error
	Update(ctx context.Context, r *Request) error
	FindByIDAndOrg(ctx context.Context, orgID, id string) (*Request, error)
	HasPendingForDate(ctx context.Context, orgID, employeeID string, date time.Time) (bool, error)
	FindAllByOrg(ctx context.Context, orgID string, filter ListFilter) ([]Request, int64, error)
	FindByEmployee(ctx context.Context, orgID, employeeID string, filter ListFilter) ([]Request, int64, error)
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

func (r *repository) Create(ctx context.Context, req *Request) error {
	return r.db.WithContext(ctx).Create(req).Error
}

func (r *repository) Update(ctx context.Context, req *Request) error {
	return r.db.WithContext(ctx).Save(req).Error
}

func (r *repository) FindByIDAndOrg(ctx context.Context, orgID, id string) (*Request, error) {
	var req Request
	err := r.db.WithContext(ctx).
		Preload("Employee").
		Where("org_id = ?", orgID).
		First(&req, "id = ?", id).Error
	return &req, err
}

func (r *repository) HasPendingForDate(ctx context.Context, orgID, employeeID string, date time.Time) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&Request{}).
		Where("org_id = ?", orgID).
		Where("employee_id = ?", employeeID).
		Where("date = ?", date).
		Where("status = ?", StatusPending).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) FindAllByOrg(ctx context.Context, orgID string, filter ListFilter) ([]Request, int64, error) {
	q := r.db.WithContext(ctx).
		Model(&Request{}).
		Where("org_id = ?", orgID)

	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.Year > 0 {
		q = q.Where("EXTRACT(YEAR FROM date) = ?", filter.Year)
	}
	if filter.Month > 0 {
		q = q.Where("EXTRACT(MONTH FROM date) = ?", filter.Month)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []Request
	err := q.
		Preload("Employee").
		Order("created_at DESC").
		Offset((filter.Page - 1) * filter.Limit).
		Limit(filter.Limit).
		Find(&rows).Error
	return rows, total, err
}

func (r *repository) FindByEmployee(ctx context.Context, orgID, employeeID string, filter ListFilter) ([]Request, int64, error) {
	q := r.db.WithContext(ctx).
		Model(&Request{}).
		Where("org_id = ?", orgID).
		Where("employee_id = ?", employeeID)
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []Request
	err := q.
		Order("created_at DESC").
		Offset((filter.Page - 1) * filter.Limit).
		Limit(filter.Limit).
		Find(&rows).Error
	return rows, total, err
}
