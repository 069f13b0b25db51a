package employee

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, e *Employee) error
	FindByIDAndOrg(ctx context.Context, orgID, id string) (*Employee, error)
	FindAllByOrg(ctx context.Context, orgID string, filter ListFilter) ([]Employee, int64, error)
	FindActiveByOrg(ctx context.Context, orgID, nameSearch string) ([]Employee, error)
	// FindByOrg returns every employee regardless of status, for report
	// rows that must still show deactivated staff.
	FindByOrg(ctx context.Context, orgID, nameSearch string) ([]Employee, error)
	Update(ctx context.Context, e *Employee) error
	ExistsByPhone(ctx context.Context, orgID, phone, excludeID string) (bool, error)
	ExistsByEmail(ctx context.Context, orgID, email, excludeID string) (bool, error)
	CountActiveByOrg(ctx context.Context, orgID string) (int64, error)
	FindRecentByOrg(ctx context.Context, orgID string, limit int) ([]Employee, error)
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

func (r *repository) Create(ctx context.Context, e *Employee) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *repository) FindByIDAndOrg(ctx context.Context, orgID, id string) (*Employee, error) {
	var e Employee
	err := r.db.WithContext(ctx).
		Where("org_id = ?", orgID).
		First(&e, "id = ?", id).Error
	return &e, err
}

func (r *repository) FindAllByOrg(ctx context.Context, orgID string, filter ListFilter) ([]Employee, int64, error) {
	q := r.db.WithContext(ctx).
		Model(&Employee{}).
		Where("org_id = ?", orgID)

	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		q = q.Where(
			"name ILIKE ? OR email ILIKE ? OR phone ILIKE ? OR designation ILIKE ?",
			like, like, like, like,
		)
	}
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []Employee
	err := q.
		Order("created_at DESC").
		Offset((filter.Page - 1) * filter.Limit).
		Limit(filter.Limit).
		Find(&rows).Error
	return rows, total, err
}

func (r *repository) FindActiveByOrg(ctx context.Context, orgID, nameSearch string) ([]Employee, error) {
	q := r.db.WithContext(ctx).
		Where("org_id = ?", orgID).
		Where("status = ?", StatusActive)

	if nameSearch != "" {
		q = q.Where("name ILIKE ?", "%"+nameSearch+"%")
	}

	var rows []Employee
	err := q.Order("name ASC").Find(&rows).Error
	return rows, err
}

func (r *repository) FindByOrg(ctx context.Context, orgID, nameSearch string) ([]Employee, error) {
	q := r.db.WithContext(ctx).Where("org_id = ?", orgID)
	if nameSearch != "" {
		q = q.Where("name ILIKE ?", "%"+nameSearch+"%")
	}
	var rows []Employee
	err := q.Order("name ASC").Find(&rows).Error
	return rows, err
}

func (r *repository) Update(ctx context.Context, e *Employee) error {
	return r.db.WithContext(ctx).Save(e).Error
}

func (r *repository) ExistsByPhone(ctx context.Context, orgID, phone, excludeID string) (bool, error) {
	return r.exists(ctx, orgID, "phone = ?", phone, excludeID)
}

func (r *repository) ExistsByEmail(ctx context.Context, orgID, email, excludeID string) (bool, error) {
	return r.exists(ctx, orgID, "email = ?", email, excludeID)
}

func (r *repository) exists(ctx context.Context, orgID, cond, value, excludeID string) (bool, error) {
	q := r.db.WithContext(ctx).
		Model(&Employee{}).
		Where("org_id = ?", orgID).
		Where(cond, value)
	if excludeID != "" {
		q = q.Where("id <> ?", excludeID)
	}
	var count int64
	err := q.Count(&count).Error
	return count > 0, err
}

func (r *repository) CountActiveByOrg(ctx context.Context, orgID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&Employee{}).
		Where("org_id = ?", orgID).
		Where("status = ?", StatusActive).
		Count(&count).Error
	return count, err
}

func (r *repository) FindRecentByOrg(ctx context.Context, orgID string, limit int) ([]Employee, error) {
	var rows []Employee
	err := r.db.WithContext(ctx).
		Where("org_id = ?", orgID).
		Order("created_at DESC").
		Limit(limit).
		Find(&rows).Error
	return rows, err
}
