package department

import (
	"context"

	"gorm.io/gorm"

	"go-hrpay/internal/shared/listquery"
)

// searchColumns is the fixed free-text search surface for departments.
var searchColumns = []string{"name", "description"}

//go:generate mockgen -source=department_repo.go -destination=mock/department_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, dept *Department) error
	FindByID(ctx context.Context, id string) (*Department, error)
	List(ctx context.Context, req listquery.Request, includeSub bool) (listquery.Result[Department], error)
	ListChildren(ctx context.Context, parentID string) ([]Department, error)
	Update(ctx context.Context, dept *Department) error
	Delete(ctx context.Context, id string) error
	CountChildren(ctx context.Context, id string) (int64, error)
	CountEmployees(ctx context.Context, id string) (int64, error)
	CountPositions(ctx context.Context, id string) (int64, error)
	EmployeeCounts(ctx context.Context, ids []string) (map[string]int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	return &repository{db: tx}
}

func (r *repository) Create(ctx context.Context, dept *Department) error {
	return r.db.WithContext(ctx).Create(dept).Error
}

func (r *repository) FindByID(ctx context.Context, id string) (*Department, error) {
	var dept Department
	err := r.db.WithContext(ctx).
		Preload("Manager").
		Preload("ParentDepartment").
		First(&dept, "id = ?", id).Error
	return &dept, err
}

func (r *repository) List(ctx context.Context, req listquery.Request, includeSub bool) (listquery.Result[Department], error) {
	scopes := []listquery.Scope{
		listquery.SearchILike(req.SearchTerm, searchColumns...),
		func(db *gorm.DB) *gorm.DB {
			if includeSub {
				return db
			}
			return db.Where("parent_department_id IS NULL")
		},
		func(db *gorm.DB) *gorm.DB {
			return db.Preload("Manager").Preload("ParentDepartment")
		},
	}
	return listquery.Find[Department](ctx, r.db, req, "name ASC", scopes...)
}

func (r *repository) ListChildren(ctx context.Context, parentID string) ([]Department, error) {
	var depts []Department
	err := r.db.WithContext(ctx).
		Preload("Manager").
		Where("parent_department_id = ?", parentID).
		Order("name ASC").
		Find(&depts).Error
	return depts, err
}

func (r *repository) Update(ctx context.Context, dept *Department) error {
	return r.db.WithContext(ctx).Save(dept).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&Department{}, "id = ?", id).Error
}

func (r *repository) CountChildren(ctx context.Context, id string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&Department{}).
		Where("parent_department_id = ?", id).
		Count(&count).Error
	return count, err
}

func (r *repository) CountEmployees(ctx context.Context, id string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("employees").
		Where("department_id = ?", id).
		Count(&count).Error
	return count, err
}

func (r *repository) CountPositions(ctx context.Context, id string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("positions").
		Where("department_id = ?", id).
		Count(&count).Error
	return count, err
}

func (r *repository) EmployeeCounts(ctx context.Context, ids []string) (map[string]int64, error) {
	counts := make(map[string]int64, len(ids))
	if len(ids) == 0 {
		return counts, nil
	}

	type row struct {
		DepartmentID string
		Total        int64
	}
	var rows []row
	err := r.db.WithContext(ctx).
		Table("employees").
		Select("department_id, COUNT(*) AS total").
		Where("department_id IN ?", ids).
		Group("department_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	for _, rw := range rows {
		counts[rw.DepartmentID] = rw.Total
	}
	return counts, nil
}
