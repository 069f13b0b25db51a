package holiday

import (
	"context"
	"database/sql"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Upsert(ctx context.Context, h *Holiday) (created bool, err error)
	FindActiveByOrg(ctx context.Context, orgID string) ([]Holiday, error)
	FindActiveByOrgAndRange(ctx context.Context, orgID string, from, to time.Time) ([]Holiday, error)
	FindByOrgAndYear(ctx context.Context, orgID string, year int) ([]Holiday, error)
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

// Upsert keys on (org_id, from_date, to_date) so re-uploading the same
// window renames it rather than duplicating the row.
func (r *repository) Upsert(ctx context.Context, h *Holiday) (bool, error) {
	res := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "org_id"}, {Name: "from_date"}, {Name: "to_date"},
		},
		DoUpdates: clause.AssignmentColumns([]string{"name", "year", "is_active", "updated_at"}),
	}).Create(h)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

func (r *repository) FindActiveByOrg(ctx context.Context, orgID string) ([]Holiday, error) {
	var rows []Holiday
	err := r.db.WithContext(ctx).
		Where("org_id = ?", orgID).
		Where("is_active = ?", true).
		Order("from_date ASC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindActiveByOrgAndRange(ctx context.Context, orgID string, from, to time.Time) ([]Holiday, error) {
	var rows []Holiday
	err := r.db.WithContext(ctx).
		Where("org_id = ?", orgID).
		Where("is_active = ?", true).
		Where("from_date <= ? AND to_date >= ?", to, from).
		Order("from_date ASC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindByOrgAndYear(ctx context.Context, orgID string, year int) ([]Holiday, error) {
	var rows []Holiday
	err := r.db.WithContext(ctx).
		Where("org_id = ?", orgID).
		Where("year = ?", year).
		Order("from_date ASC").
		Find(&rows).Error
	return rows, err
}
