package employee

import (
	"context"

	"gorm.io/gorm"

	"go-hrpay/internal/shared/listquery"
)

var searchColumns = []string{"first_name", "last_name", "email"}

// ListFilters are the exact-match filters AND-composed onto a list query.
type ListFilters struct {
	Status       string
	DepartmentID string
	PositionID   string
}

//go:generate mockgen -source=employee_repo.go -destination=mock/employee_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, empl *Employee) error
	FindByID(ctx context.Context, id string) (*Employee, error)
	List(ctx context.Context, req listquery.Request, filters ListFilters) (listquery.Result[Employee], error)
	Search(ctx context.Context, term string) ([]Employee, error)
	FindOptions(ctx context.Context) ([]Employee, error)
	Update(ctx context.Context, empl *Employee) error
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

func (r *repository) Create(ctx context.Context, empl *Employee) error {
	return r.db.WithContext(ctx).Create(empl).Error
}

func (r *repository) FindByID(ctx context.Context, id string) (*Employee, error) {
	var empl Employee
	err := r.db.WithContext(ctx).
		Preload("Department").
		Preload("Position").
		Preload("Manager").
		First(&empl, "id = ?", id).Error
	return &empl, err
}

func (r *repository) List(ctx context.Context, req listquery.Request, filters ListFilters) (listquery.Result[Employee], error) {
	scopes := []listquery.Scope{
		listquery.SearchILike(req.SearchTerm, searchColumns...),
		listquery.Eq("status", filters.Status),
		listquery.Eq("department_id", filters.DepartmentID),
		listquery.Eq("position_id", filters.PositionID),
		func(db *gorm.DB) *gorm.DB {
			return db.Preload("Department").Preload("Position").Preload("Manager")
		},
	}
	return listquery.Find[Employee](ctx, r.db, req, "last_name ASC, first_name ASC", scopes...)
}

func (r *repository) Search(ctx context.Context, term string) ([]Employee, error) {
	var empls []Employee
	err := r.db.WithContext(ctx).
		Scopes(listquery.SearchILike(term, searchColumns...)).
		Preload("Department").
		Preload("Position").
		Order("last_name ASC, first_name ASC").
		Find(&empls).Error
	return empls, err
}

func (r *repository) FindOptions(ctx context.Context) ([]Employee, error) {
	var empls []Employee
	err := r.db.WithContext(ctx).
		Select("id", "first_name", "last_name").
		Where("status <> ?", StatusTerminated).
		Order("last_name ASC, first_name ASC").
		Find(&empls).Error
	return empls, err
}

func (r *repository) Update(ctx context.Context, empl *Employee) error {
	return r.db.WithContext(ctx).Save(empl).Error
}
