package employee

import (
	"context"
	"database/sql"

	"hr-dashboard/internal/shared/listquery"

	"gorm.io/gorm"
)

// sortColumns membatasi sortBy ke kolom yang memang boleh diurutkan;
// nilai di luar whitelist jatuh ke created_at.
var sortColumns = map[string]string{
	"createdAt":  "created_at",
	"updatedAt":  "updated_at",
	"firstName":  "first_name",
	"lastName":   "last_name",
	"status":     "status",
	"department": "department_id",
}

//go:generate mockgen -source=employee_repo.go -destination=mock/employee_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, empl *Employee) error
	List(ctx context.Context, q listquery.Query) ([]Employee, int64, error)
	FindByID(ctx context.Context, id int64) (*Employee, error)
	FindOptions(ctx context.Context) ([]Employee, error)
	Update(ctx context.Context, empl *Employee) error
	SoftDelete(ctx context.Context, id int64) error
	DepartmentExists(ctx context.Context, id int64) (bool, error)
	UserExists(ctx context.Context, id int64) (bool, error)
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{
		db: r.db,
		tx: tx,
	}
}

func (r *repository) Create(ctx context.Context, empl *Employee) error {
	return r.db.WithContext(ctx).Create(empl).Error
}

func (r *repository) List(ctx context.Context, q listquery.Query) ([]Employee, int64, error) {
	base := r.db.WithContext(ctx).
		Model(&Employee{}).
		Where("is_deleted = ?", false)

	if q.Search != "" {
		pattern := "%" + q.Search + "%"
		base = base.Where(
			"first_name ILIKE ? OR last_name ILIKE ? OR work_email ILIKE ?",
			pattern, pattern, pattern,
		)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	column, ok := sortColumns[q.SortBy]
	if !ok {
		column = "created_at"
	}
	direction := "DESC"
	if q.SortOrder == "asc" {
		direction = "ASC"
	}

	var empls []Employee
	err := base.
		Preload("Department").
		Preload("User").
		Order(column + " " + direction).
		Offset((q.Page - 1) * q.Limit).
		Limit(q.Limit).
		Find(&empls).Error

	return empls, total, err
}

func (r *repository) FindByID(ctx context.Context, id int64) (*Employee, error) {
	var empl Employee
	err := r.db.WithContext(ctx).
		Preload("Department").
		Preload("User").
		Where("is_deleted = ?", false).
		First(&empl, "id = ?", id).Error
	return &empl, err
}

func (r *repository) FindOptions(ctx context.Context) ([]Employee, error) {
	var empls []Employee
	err := r.db.WithContext(ctx).
		Select("id", "first_name", "last_name").
		Where("is_deleted = ?", false).
		Order("first_name ASC").
		Find(&empls).Error
	return empls, err
}

func (r *repository) Update(ctx context.Context, empl *Employee) error {
	return r.db.WithContext(ctx).Save(empl).Error
}

func (r *repository) SoftDelete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).
		Model(&Employee{}).
		Where("id = ? AND is_deleted = ?", id, false).
		Update("is_deleted", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) DepartmentExists(ctx context.Context, id int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("departments").
		Where("id = ?", id).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) UserExists(ctx context.Context, id int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("users").
		Where("id = ?", id).
		Count(&count).Error
	return count > 0, err
}
